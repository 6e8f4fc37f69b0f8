// aging_test
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

package animal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/APSIMInitiative/ApsimX-sub000/grazType"
)

func TestChillIndex(t *testing.T) {
	assert.InDelta(t, 481.0, ChillIndex(40, 0, 0), 1e-9)
	// wind, cold and rain all add to the heat loss
	base := ChillIndex(10, 2, 0)
	assert.Greater(t, ChillIndex(5, 2, 0), base)
	assert.Greater(t, ChillIndex(10, 8, 0), base)
	assert.Greater(t, ChillIndex(10, 2, 20), base)
}

func TestAgeNeedsWeather(t *testing.T) {
	a, err := NewAnimalGroup(genotype(t, "Merino"), grazType.Castrated, 10, 500, 40, 1, stubRandom{}, nil, nil)
	require.NoError(t, err)
	_, err = a.Age(1)
	assert.Error(t, err)
}

func TestAgeOneDay(t *testing.T) {
	wethers := newGroup(t, "Merino", grazType.Castrated, 100, 730, 45, 3)
	newGroups, err := wethers.Age(1)
	require.NoError(t, err)
	assert.Empty(t, newGroups)
	assert.Equal(t, 731, wethers.AgeDays)
	assert.Equal(t, 100, wethers.NoAnimals())
	assert.Equal(t, 0, wethers.Deaths)
	require.Len(t, wethers.Ages(), 1)
	assert.Equal(t, 731, wethers.Ages()[0].AgeDays)
}

func TestBirth(t *testing.T) {
	ewes := newGroup(t, "Merino", grazType.Empty, 100, 1095, 55, 2)
	gestation := ewes.Genotype.Gestation()
	ewes.SetPregnancy(gestation - 1)
	require.Equal(t, grazType.LatePreg, ewes.ReproState())
	foetalWt := ewes.FoetalWeight()

	_, err := ewes.Age(1)
	require.NoError(t, err)

	assert.Equal(t, grazType.Empty, ewes.ReproState())
	assert.Equal(t, grazType.Lactating, ewes.LactStatus())
	assert.Equal(t, 1, ewes.Lactation())
	assert.Equal(t, 1, ewes.NoOffspring())
	assert.Equal(t, 0.0, ewes.ConceptusWeight())
	require.NotNil(t, ewes.Young)
	assert.Equal(t, 100, ewes.Young.NoAnimals())
	assert.InDelta(t, foetalWt, ewes.Young.LiveWeight(), 1e-9)
	assert.InDelta(t, ewes.BaseWeight+ewes.WoolWeight(), ewes.LiveWeight(), 1e-9)
}

func TestWean(t *testing.T) {
	ewes := newGroup(t, "Merino", grazType.Empty, 100, 1095, 50, 2)
	ewes.SetLactation(100)
	require.NotNil(t, ewes.Young)
	young := ewes.Young.NoAnimals()

	newGroups, weaned, err := ewes.Wean(true, true)
	require.NoError(t, err)
	assert.Empty(t, newGroups)
	require.Len(t, weaned, 2)

	total := 0
	for _, w := range weaned {
		total += w.NoAnimals()
		assert.Nil(t, w.Mothers())
		assert.Equal(t, grazType.Dry, w.LactStatus())
		assert.Equal(t, grazType.Weaner, w.AgeClass())
	}
	assert.Equal(t, young, total)
	assert.Nil(t, ewes.Young)
	assert.Equal(t, grazType.Dry, ewes.LactStatus())
	assert.Equal(t, 0, ewes.NoOffspring())
}

func TestWeanMalesOnly(t *testing.T) {
	ewes := newGroup(t, "Merino", grazType.Empty, 100, 1095, 50, 2)
	ewes.SetLactation(100)
	females := ewes.Young.FemaleNo

	newGroups, weaned, err := ewes.Wean(false, true)
	require.NoError(t, err)
	require.Len(t, weaned, 1)
	assert.Equal(t, 0, weaned[0].FemaleNo)

	// the mothers of the ewe lambs keep them
	kept := 0
	mothers := 0
	for _, g := range newGroups {
		require.NotNil(t, g.Young)
		assert.Same(t, g, g.Young.Mothers())
		kept += g.Young.FemaleNo
		mothers += g.FemaleNo
	}
	assert.Equal(t, females, kept)
	assert.Equal(t, 100, mothers+ewes.FemaleNo)
}

func TestExpectedSurvival(t *testing.T) {
	wethers := newGroup(t, "Merino", grazType.Castrated, 100, 730, 45, 3)
	short := wethers.ExpectedSurvival(10)
	long := wethers.ExpectedSurvival(365)
	assert.LessOrEqual(t, short, 1.0)
	assert.Greater(t, short, long)
	assert.Greater(t, long, 0.0)
}

func TestConceptionRates(t *testing.T) {
	ewes := newGroup(t, "Merino", grazType.Empty, 100, 1095, 55, 2)
	rates := ewes.ConceptionRates()
	assert.Equal(t, 0.0, rates[0])
	sum := 0.0
	for n := 1; n < len(rates); n++ {
		assert.GreaterOrEqual(t, rates[n], 0.0)
		sum += rates[n]
	}
	assert.Greater(t, sum, 0.0)
	assert.LessOrEqual(t, sum, 1.0)
}

func TestMatingProducesPregnancies(t *testing.T) {
	ewes := newGroup(t, "Merino", grazType.Empty, 200, 1095, 55, 2)
	require.NoError(t, ewes.Join(genotype(t, "Merino"), 40))

	var pregnant []*AnimalGroup
	for day := 0; day < 40; day++ {
		ng, err := ewes.Age(1)
		require.NoError(t, err)
		pregnant = append(pregnant, ng...)
	}
	require.NotEmpty(t, pregnant)
	n := ewes.NoAnimals()
	for _, g := range pregnant {
		assert.True(t, g.ReproState() == grazType.EarlyPreg || g.ReproState() == grazType.LatePreg)
		assert.Greater(t, g.NoFoetuses(), 0)
		n += g.NoAnimals()
	}
	assert.Equal(t, 200, n)
}
