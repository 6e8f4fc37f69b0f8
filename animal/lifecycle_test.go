// animal project lifecycle_test.go
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

	"github.com/APSIMInitiative/ApsimX-sub000/grazMath"
	"github.com/APSIMInitiative/ApsimX-sub000/grazType"
)

// queuedRandom hands out fixed numbers of animals in call order, then none
type queuedRandom struct {
	next []int
}

func (q *queuedRandom) RandomValue() float64 { return 0.5 }
func (q *queuedRandom) RndPropn(n int, p float64) int {
	if len(q.next) == 0 {
		return 0
	}
	k := q.next[0]
	q.next = q.next[1:]
	return minInt(k, n)
}

// newbornTwins gives n ewes with twin lambs one day old
func newbornTwins(t *testing.T, n int) *AnimalGroup {
	t.Helper()
	ewes := newGroup(t, "Merino", grazType.Empty, n, 1095, 50, 2)
	ewes.SetLactation(1)
	ewes.SetNoOffspring(2)
	require.NotNil(t, ewes.Young)
	require.Equal(t, 2*n, ewes.Young.NoAnimals())
	require.Equal(t, 1, ewes.Young.AgeDays)
	return ewes
}

func TestCalculateWeightsIsStable(t *testing.T) {
	for _, a := range []*AnimalGroup{
		newGroup(t, "Merino", grazType.Castrated, 100, 730, 45, 3),
		newGroup(t, "Merino", grazType.Empty, 100, 300, 25, 1),
		newGroup(t, "Angus", grazType.Castrated, 20, 500, 350, 0),
	} {
		a.CalculateWeights()
		rs, bc := a.RelativeSize(), a.BodyCondition()
		a.CalculateWeights()
		assert.Equal(t, rs, a.RelativeSize(), a.Genotype.Name)
		assert.Equal(t, bc, a.BodyCondition(), a.Genotype.Name)
	}
}

func TestSplitEverybody(t *testing.T) {
	ewes := newGroup(t, "Merino", grazType.Empty, 100, 1095, 50, 2)
	ewes.SetLactation(30)
	mixed := ewes.Young
	require.Greater(t, mixed.MaleNo, 0)
	require.Greater(t, mixed.FemaleNo, 0)
	males, females := mixed.MaleNo, mixed.FemaleNo

	all, err := mixed.Split(mixed.NoAnimals(), false, NoDiff, NoDiff)
	require.NoError(t, err)
	assert.Equal(t, 0, mixed.MaleNo)
	assert.Equal(t, 0, mixed.FemaleNo)
	assert.Equal(t, males, all.MaleNo)
	assert.Equal(t, females, all.FemaleNo)

	twins := newbornTwins(t, 11)
	youngMales, youngFemales := twins.Young.MaleNo, twins.Young.FemaleNo
	moved, err := twins.Split(twins.NoAnimals(), false, NoDiff, NoDiff)
	require.NoError(t, err)
	assert.Equal(t, 0, twins.NoAnimals())
	assert.Equal(t, 11, moved.FemaleNo)
	require.NotNil(t, moved.Young)
	assert.Same(t, moved, moved.Young.Mothers())
	assert.Equal(t, youngMales, moved.Young.MaleNo)
	assert.Equal(t, youngFemales, moved.Young.FemaleNo)
	assert.Equal(t, 0, twins.Young.MaleNo+twins.Young.FemaleNo)
}

func TestPartialSplitKeepsSexes(t *testing.T) {
	ewes := newGroup(t, "Merino", grazType.Empty, 101, 1095, 50, 2)
	ewes.SetLactation(30)
	mixed := ewes.Young
	males, females := mixed.MaleNo, mixed.FemaleNo

	part, err := mixed.Split(33, false, NoDiff, NoDiff)
	require.NoError(t, err)
	assert.Equal(t, 33, part.NoAnimals())
	assert.Equal(t, males, part.MaleNo+mixed.MaleNo)
	assert.Equal(t, females, part.FemaleNo+mixed.FemaleNo)
}

func TestMaintenanceFeedingHoldsWeight(t *testing.T) {
	wethers := newGroup(t, "Merino", grazType.Castrated, 100, 730, 45, 3)
	require.NoError(t, wethers.Grow(pasture(500), nil, springDay, springDay))
	st := wethers.AnimalState
	gc := wethers.Genotype.GainC

	setup := func(mei float64) {
		st.MEIntake.Total = mei
		st.EnergyUse.Preg, st.EnergyUse.Lact, st.EnergyUse.Wool = 0, 0, 0
		st.ProteinUse.Preg, st.ProteinUse.Lact = 0, 0
		st.DPLSMilk = 0
		// protein to spare, so energy sets the gain
		st.DPLS = st.ProteinUse.Maint/gc[2] + st.ProteinUse.Wool/gc[1] + 1.0
	}

	base := wethers.BaseWeight
	setup(st.EnergyUse.Maint)
	wethers.computeGain()
	assert.InDelta(t, 0.0, wethers.WeightChange(), 1e-9)
	assert.InDelta(t, base, wethers.BaseWeight, 1e-9)

	setup(1.2 * st.EnergyUse.Maint)
	wethers.computeGain()
	assert.Greater(t, wethers.WeightChange(), 0.0)

	setup(0.8 * st.EnergyUse.Maint)
	wethers.computeGain()
	assert.Less(t, wethers.WeightChange(), 0.0)
}

func TestMakePregnantAnimals(t *testing.T) {
	for _, rates := range [][4]float64{
		{0, 0.5, 0.3, 0},
		{0, 0.7, 0.6, 0.1},
	} {
		ewes := newGroup(t, "Merino", grazType.Empty, 100, 1095, 55, 2)
		var newGroups []*AnimalGroup
		require.NoError(t, ewes.makePregnantAnimals(rates, &newGroups))
		require.NotEmpty(t, newGroups)

		pregnant := 0
		for _, g := range newGroups {
			assert.Equal(t, 1, g.Pregnancy())
			assert.Equal(t, grazType.EarlyPreg, g.ReproState())
			assert.Greater(t, g.NoFoetuses(), 0)
			pregnant += g.NoAnimals()
		}
		assert.LessOrEqual(t, pregnant, 100)
		assert.Equal(t, 100, pregnant+ewes.NoAnimals())
		assert.Equal(t, 0, ewes.Pregnancy())
	}

	ewes := newGroup(t, "Merino", grazType.Empty, 100, 1095, 55, 2)
	var newGroups []*AnimalGroup
	require.NoError(t, ewes.makePregnantAnimals([4]float64{0, 0.5, 0.3, 0}, &newGroups))
	require.Len(t, newGroups, 2)
	assert.Equal(t, 1, newGroups[0].NoFoetuses())
	assert.Equal(t, 50, newGroups[0].NoAnimals())
	assert.Equal(t, 2, newGroups[1].NoFoetuses())
	assert.Equal(t, 30, newGroups[1].NoAnimals())
}

func TestWeanMalesFromOddTwins(t *testing.T) {
	ewes := newbornTwins(t, 11)
	ewes.SetLactation(100)
	ewes.SetNoOffspring(2)
	keptFemales := ewes.Young.FemaleNo
	weanedMales := ewes.Young.MaleNo
	require.Equal(t, 1, keptFemales%2)

	newGroups, weaned, err := ewes.Wean(false, true)
	require.NoError(t, err)
	require.Len(t, weaned, 1)
	assert.Equal(t, weanedMales, weaned[0].MaleNo)

	kept, mothers := 0, 0
	for _, g := range newGroups {
		require.NotNil(t, g.Young)
		assert.Equal(t, 0, g.Young.MaleNo)
		assert.Equal(t, g.NoOffspring()*g.FemaleNo, g.Young.NoAnimals())
		kept += g.Young.NoAnimals()
		mothers += g.FemaleNo
	}
	assert.Equal(t, keptFemales, kept)
	assert.Equal(t, 11, mothers+ewes.FemaleNo)
	assert.Nil(t, ewes.Young)
}

func TestLambExposureFollowsEweCondition(t *testing.T) {
	lambDeaths := func(score float64) (*AnimalGroup, []*AnimalGroup) {
		ewes := newGroup(t, "Merino", grazType.Empty, 100, 1095, 50, 2)
		ewes.SetConditionScore(score, Cond1to5)
		ewes.SetLactation(1)
		ewes.SetEnvironment(winterDay, winterDay)
		newGroups, err := ewes.Age(1)
		require.NoError(t, err)
		require.NotNil(t, ewes.Young)
		return ewes, newGroups
	}

	thin, thinGroups := lambDeaths(1.5)
	fat, _ := lambDeaths(4.5)
	require.Less(t, thin.BodyCondition(), fat.BodyCondition())
	assert.Greater(t, thin.Young.Deaths, fat.Young.Deaths)
	assert.Equal(t, grazMath.Round(100*thin.exposure(thin.chillIndex)), thin.Young.Deaths)

	// ewes that lost their single lamb are carved off without young
	ewesLeft := thin.NoAnimals()
	for _, g := range thinGroups {
		assert.Nil(t, g.Young)
		ewesLeft += g.NoAnimals()
	}
	assert.Equal(t, 100, ewesLeft)
	assert.Equal(t, thin.NoAnimals(), thin.Young.NoAnimals())
	assert.Equal(t, 100, thin.Young.NoAnimals()+thin.Young.Deaths)
}

func TestKillSpreadsLambLosses(t *testing.T) {
	ewes := newbornTwins(t, 10)
	// no ewes or rams die; 13 of the 20 lambs do
	ewes.rnd = &queuedRandom{next: []int{0, 0, 13}}
	var newGroups []*AnimalGroup
	require.NoError(t, ewes.kill(&newGroups))

	assert.Equal(t, 13, ewes.Young.Deaths)
	assert.Equal(t, 0, ewes.Deaths)
	assert.Equal(t, 7, ewes.NoAnimals())
	assert.Equal(t, 1, ewes.NoOffspring())
	assert.Equal(t, 7, ewes.Young.NoAnimals())
	require.Len(t, newGroups, 1)
	assert.Equal(t, 3, newGroups[0].NoAnimals())
	assert.Nil(t, newGroups[0].Young)
	assert.Equal(t, 0, newGroups[0].NoOffspring())
}

func TestKillTakesLambsWithMothers(t *testing.T) {
	ewes := newbornTwins(t, 10)
	// 2 ewes die with their 4 lambs; 1 more lamb dies
	ewes.rnd = &queuedRandom{next: []int{2, 0, 5}}
	var newGroups []*AnimalGroup
	require.NoError(t, ewes.kill(&newGroups))

	assert.Equal(t, 2, ewes.Deaths)
	assert.Equal(t, 7, ewes.NoAnimals())
	assert.Equal(t, 14, ewes.Young.NoAnimals())
	require.Len(t, newGroups, 1)
	sg := newGroups[0]
	assert.Equal(t, 1, sg.NoAnimals())
	require.NotNil(t, sg.Young)
	assert.Equal(t, 1, sg.NoOffspring())
	assert.Equal(t, 1, sg.Young.NoAnimals())
	assert.Equal(t, 20-5, ewes.Young.NoAnimals()+sg.Young.NoAnimals())
}

func TestLoseYoung(t *testing.T) {
	ewes := newbornTwins(t, 10)
	require.NoError(t, ewes.loseYoung(ewes, 1))
	assert.Equal(t, 1, ewes.NoOffspring())
	assert.Equal(t, 1, ewes.Young.NoOffspring())
	assert.Equal(t, 10, ewes.Young.NoAnimals())

	require.NoError(t, ewes.loseYoung(ewes, 1))
	assert.Nil(t, ewes.Young)
	assert.Equal(t, 0, ewes.NoOffspring())
	require.NoError(t, ewes.loseYoung(ewes, 1))
}

func TestAgeAdvancesSplitGroups(t *testing.T) {
	ewes := newbornTwins(t, 10)
	ewes.rnd = &queuedRandom{next: []int{2, 0, 5}}
	newGroups, err := ewes.Age(1)
	require.NoError(t, err)
	require.Len(t, newGroups, 1)
	assert.Equal(t, ewes.AgeDays, newGroups[0].AgeDays)
	require.NotNil(t, newGroups[0].Young)
	assert.Equal(t, 2, ewes.Young.AgeDays)
	assert.Equal(t, 2, newGroups[0].Young.AgeDays)
}

func TestDystokiaSplitsOffEmptyEwes(t *testing.T) {
	ewes := newGroup(t, "Merino", grazType.Empty, 100, 1095, 55, 2)
	gestation := ewes.Genotype.Gestation()
	ewes.SetPregnancy(gestation - 1)
	require.Equal(t, 1, ewes.NoFoetuses())
	ewes.rnd = &queuedRandom{next: []int{7}}

	var newGroups []*AnimalGroup
	require.NoError(t, ewes.killEndPreg(&newGroups))
	require.Len(t, newGroups, 1)
	assert.Equal(t, 7, newGroups[0].NoAnimals())
	assert.Equal(t, 0, newGroups[0].Pregnancy())
	assert.Equal(t, grazType.Empty, newGroups[0].ReproState())
	assert.Equal(t, 93, ewes.NoAnimals())
	assert.Equal(t, gestation-1, ewes.Pregnancy())
	assert.Equal(t, 0, ewes.Deaths)
}

func TestToxaemiaKillsTwinBearers(t *testing.T) {
	ewes := newGroup(t, "Merino", grazType.Empty, 100, 1095, 55, 2)
	gestation := ewes.Genotype.Gestation()
	ewes.SetPregnancy(gestation - 1)
	ewes.SetNoFoetuses(2)
	require.Equal(t, gestation-1, ewes.Pregnancy())
	ewes.rnd = &queuedRandom{next: []int{5}}

	var newGroups []*AnimalGroup
	require.NoError(t, ewes.killEndPreg(&newGroups))
	assert.Empty(t, newGroups)
	assert.Equal(t, 5, ewes.Deaths)
	assert.Equal(t, 95, ewes.NoAnimals())
	assert.Equal(t, 2, ewes.NoFoetuses())
}

func TestEndOfPregnancyOnlyOnTheLastDay(t *testing.T) {
	ewes := newGroup(t, "Merino", grazType.Empty, 100, 1095, 55, 2)
	ewes.SetPregnancy(ewes.Genotype.Gestation() - 10)
	q := &queuedRandom{next: []int{7}}
	ewes.rnd = q
	var newGroups []*AnimalGroup
	require.NoError(t, ewes.killEndPreg(&newGroups))
	assert.Empty(t, newGroups)
	assert.Equal(t, 100, ewes.NoAnimals())
	assert.Len(t, q.next, 1)

	cows := newGroup(t, "Angus", grazType.Empty, 20, 1500, 500, 0)
	cows.SetPregnancy(cows.Genotype.Gestation() - 1)
	cows.rnd = &queuedRandom{next: []int{7}}
	require.NoError(t, cows.killEndPreg(&newGroups))
	assert.Empty(t, newGroups)
	assert.Equal(t, 20, cows.NoAnimals())
}

func TestBirthDayAgeConservesEwes(t *testing.T) {
	ewes := newGroup(t, "Merino", grazType.Empty, 100, 1095, 55, 2)
	ewes.SetPregnancy(ewes.Genotype.Gestation() - 2)
	newGroups, err := ewes.Age(1)
	require.NoError(t, err)
	n := ewes.NoAnimals()
	for _, g := range newGroups {
		assert.Equal(t, 0, g.Pregnancy())
		n += g.NoAnimals()
	}
	assert.Equal(t, 100, n)
}
