// ageList project ageList.go
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
	"errors"
	"fmt"
	"math"

	"github.com/APSIMInitiative/ApsimX-sub000/grazMath"
)

// ErrSplitTooMany is returned when a split asks for more animals than the list holds
var ErrSplitTooMany = errors.New("split exceeds the number of animals in the age list")

// Uniform is the part of the simulation's random stream an AgeList needs
type Uniform interface {
	RandomValue() float64
}

// Element is one age cohort of the list
type Element struct {
	AgeDays    int
	NumMales   int
	NumFemales int
}

// AgeList holds the numbers of males and females at each age, sorted by age.
// No two elements share an age and, after Pack, no element is empty.
type AgeList struct {
	data []Element
	rnd  Uniform
}

func NewAgeList(rnd Uniform) *AgeList {
	return &AgeList{rnd: rnd}
}

// Copy returns an independent list drawing from the same random stream
func (a *AgeList) Copy() *AgeList {
	c := &AgeList{rnd: a.rnd, data: make([]Element, len(a.data))}
	copy(c.data, a.data)
	return c
}

func (a *AgeList) Count() int {
	return len(a.data)
}

// Elements returns a copy of the cohorts, youngest first
func (a *AgeList) Elements() []Element {
	e := make([]Element, len(a.data))
	copy(e, a.data)
	return e
}

// Pack removes elements holding no animals
func (a *AgeList) Pack() {
	kept := a.data[:0]
	for _, e := range a.data {
		if e.NumMales > 0 || e.NumFemales > 0 {
			kept = append(kept, e)
		}
	}
	a.data = kept
}

// Input adds animals at an age, inserting a new element if the age is not present
func (a *AgeList) Input(ageDays, numMales, numFemales int) {
	pos := 0
	for pos < len(a.data) && a.data[pos].AgeDays < ageDays {
		pos++
	}
	if pos < len(a.data) && a.data[pos].AgeDays == ageDays {
		a.data[pos].NumMales += numMales
		a.data[pos].NumFemales += numFemales
		return
	}

	a.data = append(a.data, Element{})
	copy(a.data[pos+1:], a.data[pos:])
	a.data[pos] = Element{AgeDays: ageDays, NumMales: numMales, NumFemales: numFemales}
}

// Resize rescales the list to new totals while keeping the age structure.
// Truncation leftovers go into the oldest cohorts, one animal at a time.
func (a *AgeList) Resize(numMales, numFemales int) {
	a.Pack()

	switch len(a.data) {
	case 0:
		a.Input(365*3, numMales, numFemales) // no age information to go on
	case 1:
		a.data[0].NumMales = numMales
		a.data[0].NumFemales = numFemales
	default:
		currM, currF := a.GetOlder(-1)
		mLeft, fLeft := numMales, numFemales
		for i := range a.data {
			e := &a.data[i]
			oldM, oldF := float64(e.NumMales), float64(e.NumFemales)
			if numMales == 0 || currM > 0 {
				e.NumMales = int(math.Trunc(float64(numMales) * grazMath.XDiv(oldM, float64(currM))))
			} else {
				e.NumMales = int(math.Trunc(float64(numMales) * grazMath.XDiv(oldF, float64(currF))))
			}
			if numFemales == 0 || currF > 0 {
				e.NumFemales = int(math.Trunc(float64(numFemales) * grazMath.XDiv(oldF, float64(currF))))
			} else {
				e.NumFemales = int(math.Trunc(float64(numFemales) * grazMath.XDiv(oldM, float64(currM))))
			}
			mLeft -= e.NumMales
			fLeft -= e.NumFemales
		}

		idx := len(a.data) - 1
		for mLeft > 0 || fLeft > 0 {
			if mLeft > 0 {
				a.data[idx].NumMales++
				mLeft--
			}
			if fLeft > 0 {
				a.data[idx].NumFemales++
				fLeft--
			}
			idx--
			if idx < 0 {
				idx = len(a.data) - 1
			}
		}
	}
	a.Pack()
}

func (a *AgeList) Clear() {
	a.data = a.data[:0]
}

// Merge adds every cohort of other into this list. other is not changed.
func (a *AgeList) Merge(other *AgeList) {
	for _, e := range other.data {
		a.Input(e.AgeDays, e.NumMales, e.NumFemales)
	}
}

// Split removes numMale males and numFemale females into a new list.
// byAge takes the oldest animals first; otherwise every cohort gives up the same
// proportion and the rounding error is reconciled by picking individual animals
// at random.
func (a *AgeList) Split(numMale, numFemale int, byAge bool) (*AgeList, error) {
	totalM, totalF := a.GetOlder(-1)
	if numMale < 0 || numFemale < 0 || numMale > totalM || numFemale > totalF {
		return nil, fmt.Errorf("%w: asked for %d males and %d females of %d and %d",
			ErrSplitTooMany, numMale, numFemale, totalM, totalF)
	}

	result := NewAgeList(a.rnd)
	for _, e := range a.data {
		result.Input(e.AgeDays, 0, 0)
	}

	n := len(a.data)
	transferNo := [2][]int{make([]int, n), make([]int, n)}
	reqd := [2]int{numMale, numFemale}
	done := [2]int{}
	count := func(sex, idx int) int {
		if sex == 0 {
			return a.data[idx].NumMales
		}
		return a.data[idx].NumFemales
	}

	if byAge {
		for idx := n - 1; idx >= 0; idx-- {
			for sex := 0; sex < 2; sex++ {
				transferNo[sex][idx] = minInt(reqd[sex]-done[sex], count(sex, idx))
				done[sex] += transferNo[sex][idx]
			}
		}
	} else {
		total := [2]int{totalM, totalF}
		var propn [2]float64
		for sex := 0; sex < 2; sex++ {
			propn[sex] = grazMath.XDiv(float64(reqd[sex]), float64(total[sex]))
		}
		for idx := 0; idx < n; idx++ {
			for sex := 0; sex < 2; sex++ {
				transferNo[sex][idx] = grazMath.Round(propn[sex] * float64(count(sex, idx)))
				done[sex] += transferNo[sex][idx]
			}
		}

		for sex := 0; sex < 2; sex++ {
			// too few transfers: pick one of the untransferred animals
			for done[sex] < reqd[sex] {
				left := total[sex] - done[sex]
				iAnimal := minInt(int(math.Trunc(a.rnd.RandomValue()*float64(left))), left-1)
				idx := a.locate(iAnimal, func(i int) int { return count(sex, i) - transferNo[sex][i] })
				transferNo[sex][idx]++
				done[sex]++
			}
			// too many transfers: give back one of the transferred animals
			for done[sex] > reqd[sex] {
				iAnimal := minInt(int(math.Trunc(a.rnd.RandomValue()*float64(done[sex]))), done[sex]-1)
				idx := a.locate(iAnimal, func(i int) int { return transferNo[sex][i] })
				transferNo[sex][idx]--
				done[sex]--
			}
		}
	}

	for idx := 0; idx < n; idx++ {
		a.data[idx].NumMales -= transferNo[0][idx]
		result.data[idx].NumMales += transferNo[0][idx]
		a.data[idx].NumFemales -= transferNo[1][idx]
		result.data[idx].NumFemales += transferNo[1][idx]
	}

	a.Pack()
	result.Pack()
	return result, nil
}

// locate walks the cohorts, each covering width(idx) animals, and returns the
// cohort holding animal number iAnimal. The last cohort catches any overrun.
func (a *AgeList) locate(iAnimal int, width func(idx int) int) int {
	idx := -1
	last := 0
	for {
		idx++
		first := last
		last = first + width(idx)
		if idx == len(a.data)-1 || (iAnimal >= first && iAnimal < last) {
			return idx
		}
	}
}

// AgeBy ages every cohort by noDays
func (a *AgeList) AgeBy(noDays int) {
	for i := range a.data {
		a.data[i].AgeDays += noDays
	}
}

// MeanAge is the count-weighted mean age, rounded to the nearest day
func (a *AgeList) MeanAge() int {
	switch len(a.data) {
	case 0:
		return 0
	case 1:
		return a.data[0].AgeDays
	}

	var axn, nn float64
	for _, e := range a.data {
		dn := float64(e.NumMales + e.NumFemales)
		axn += dn * float64(e.AgeDays)
		nn += dn
	}
	if nn <= 0.0 {
		return 0
	}
	return grazMath.Round(axn / nn)
}

// GetOlder counts the males and females older than ageDays
func (a *AgeList) GetOlder(ageDays int) (numMale, numFemale int) {
	for _, e := range a.data {
		if e.AgeDays > ageDays {
			numMale += e.NumMales
			numFemale += e.NumFemales
		}
	}
	return numMale, numFemale
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
