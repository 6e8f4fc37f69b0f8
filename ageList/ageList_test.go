// ageList_test
/*
Copyright 2021 Bruce Golden and Matt Spangler

Permission is hereby granted, free of charge, to any person obtaining a copy of
this software and associated documentation files (the "Software"), to deal in
the Software without restriction, including without limitation the rights to
use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies
of the Software, and to permit persons to whom the Software is furnished to do
so, subject to the following conditions:
The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

package ageList

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/APSIMInitiative/ApsimX-sub000/randFactory"
)

func newList(t *testing.T) *AgeList {
	t.Helper()
	a := NewAgeList(randFactory.NewRandFactory(2021))
	a.Input(400, 3, 7)
	a.Input(100, 5, 5)
	a.Input(800, 2, 11)
	return a
}

func TestInputKeepsOrder(t *testing.T) {
	a := newList(t)
	a.Input(400, 1, 1)

	e := a.Elements()
	require.Len(t, e, 3)
	assert.Equal(t, []int{100, 400, 800}, []int{e[0].AgeDays, e[1].AgeDays, e[2].AgeDays})
	assert.Equal(t, 4, e[1].NumMales)
	assert.Equal(t, 8, e[1].NumFemales)
}

func TestPackRemovesEmpty(t *testing.T) {
	a := newList(t)
	a.Input(50, 0, 0)
	assert.Equal(t, 4, a.Count())
	a.Pack()
	assert.Equal(t, 3, a.Count())
}

func TestMeanAge(t *testing.T) {
	a := NewAgeList(randFactory.NewRandFactory(1))
	assert.Equal(t, 0, a.MeanAge())

	a.Input(200, 1, 0)
	assert.Equal(t, 200, a.MeanAge())

	a.Input(300, 0, 1)
	// 250 exactly
	assert.Equal(t, 250, a.MeanAge())

	a.Input(301, 0, 2)
	// (200 + 300 + 602) / 4 = 275.5, rounds to even
	assert.Equal(t, 276, a.MeanAge())
}

func TestGetOlderAndAgeBy(t *testing.T) {
	a := newList(t)
	m, f := a.GetOlder(200)
	assert.Equal(t, 5, m)
	assert.Equal(t, 18, f)

	a.AgeBy(10)
	assert.Equal(t, 110, a.Elements()[0].AgeDays)
}

func TestResize(t *testing.T) {
	a := newList(t)
	a.Resize(20, 46)
	m, f := a.GetOlder(-1)
	assert.Equal(t, 20, m)
	assert.Equal(t, 46, f)

	empty := NewAgeList(randFactory.NewRandFactory(1))
	empty.Resize(2, 3)
	require.Equal(t, 1, empty.Count())
	assert.Equal(t, 365*3, empty.Elements()[0].AgeDays)

	// males borrow the female age structure when there were none
	b := NewAgeList(randFactory.NewRandFactory(1))
	b.Input(100, 0, 10)
	b.Input(200, 0, 30)
	b.Resize(8, 40)
	e := b.Elements()
	assert.Equal(t, 2, e[0].NumMales)
	assert.Equal(t, 6, e[1].NumMales)
}

func TestSplitProportionalConserves(t *testing.T) {
	for seed := uint64(1); seed <= 25; seed++ {
		a := NewAgeList(randFactory.NewRandFactory(seed))
		a.Input(100, 3, 7)
		a.Input(200, 5, 1)
		a.Input(300, 1, 9)

		part, err := a.Split(4, 6, false)
		require.NoError(t, err)

		pm, pf := part.GetOlder(-1)
		rm, rf := a.GetOlder(-1)
		assert.Equal(t, 4, pm)
		assert.Equal(t, 6, pf)
		assert.Equal(t, 5, rm)
		assert.Equal(t, 11, rf)
	}
}

func TestSplitByAgeTakesOldest(t *testing.T) {
	a := newList(t)
	part, err := a.Split(2, 12, true)
	require.NoError(t, err)

	e := part.Elements()
	require.Len(t, e, 2)
	assert.Equal(t, 800, e[1].AgeDays)
	assert.Equal(t, 2, e[1].NumMales)
	assert.Equal(t, 11, e[1].NumFemales)
	assert.Equal(t, 400, e[0].AgeDays)
	assert.Equal(t, 1, e[0].NumFemales)
}

func TestSplitTooMany(t *testing.T) {
	a := newList(t)
	_, err := a.Split(11, 0, false)
	assert.ErrorIs(t, err, ErrSplitTooMany)
}

func TestMergeLeavesOther(t *testing.T) {
	a := newList(t)
	b := NewAgeList(randFactory.NewRandFactory(5))
	b.Input(100, 1, 1)
	b.Input(50, 0, 4)

	a.Merge(b)
	m, f := a.GetOlder(-1)
	assert.Equal(t, 11, m)
	assert.Equal(t, 28, f)
	assert.Equal(t, 2, b.Count())
}
