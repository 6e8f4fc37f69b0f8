// aging
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
	"fmt"
	"math"

	"github.com/APSIMInitiative/ApsimX-sub000/grazMath"
	"github.com/APSIMInitiative/ApsimX-sub000/grazType"
)

// ChillIndex is the heat loss of a wet, newborn lamb, kJ/m2/h
func ChillIndex(meanTemp, windSpeed, rain float64) float64 {
	return 481.0 + (11.7+3.1*math.Sqrt(windSpeed))*(40.0-meanTemp) +
		418.0*(1.0-math.Exp(-0.04*math.Min(80.0, rain)))
}

// Age moves the group on by numDays: deaths, ageing, mating, conception and
// birth. Animals that die are removed; the groups returned are those split
// off along the way (survivors of partial litter losses, new pregnancies,
// ewes losing their lambs to dystokia).
func (a *AnimalGroup) Age(numDays int) ([]*AnimalGroup, error) {
	if a.weather == nil || a.clock == nil {
		return nil, fmt.Errorf("%s group has no weather or date set", a.Genotype.Name)
	}
	var newGroups []*AnimalGroup

	chill := ChillIndex(a.weather.MeanTemp(), a.weather.WindSpeed(), a.weather.Rainfall())
	if !a.chillIndexSet {
		a.chillIndex = chill
		a.chillIndexSet = true
	} else {
		a.chillIndex = 16.0/17.0*a.chillIndex + 1.0/17.0*chill
	}

	if a.mothers == nil {
		if err := a.kill(&newGroups); err != nil {
			return nil, err
		}
	}
	if a.youngStopSuckling() {
		a.SetLactation(0)
	}

	if err := a.advanceAge(numDays, &newGroups); err != nil {
		return nil, err
	}
	// groups split off by the young of new groups are aged as well
	for i := 0; i < len(newGroups); i++ {
		if err := newGroups[i].advanceAge(numDays, &newGroups); err != nil {
			return nil, err
		}
	}

	gestation := a.Genotype.Gestation()
	switch a.reproState {
	case grazType.Empty:
		if a.mateCycle >= 0 {
			a.daysToMate--
			if a.daysToMate <= 0 {
				a.mateCycle = -1
			} else {
				a.mateCycle = (a.mateCycle + 1) % a.Genotype.OvulationPeriod
			}
			if a.mateCycle == 0 {
				if err := a.conceive(&newGroups); err != nil {
					return nil, err
				}
			}
		}
	case grazType.EarlyPreg:
		a.foetalAge++
		if a.foetalAge >= gestation-latePregLength {
			a.reproState = grazType.LatePreg
		}
	case grazType.LatePreg:
		a.foetalAge++
		switch {
		case a.Genotype.Animal == grazType.Sheep && a.foetalAge == gestation-latePregLength/2:
			a.midLatePregWeight = a.BaseWeight
		case a.foetalAge == gestation-1:
			if err := a.killEndPreg(&newGroups); err != nil {
				return nil, err
			}
		case a.foetalAge >= gestation:
			a.giveBirth()
		}
	}
	return newGroups, nil
}

func (a *AnimalGroup) giveBirth() {
	birthWt := a.foetalWeight
	a.SetLactation(1)
	a.SetNoOffspring(a.numberFoetuses)
	if a.Young != nil {
		a.Young.BaseWeight = birthWt - a.Young.woolWt
		a.Young.maxPrevWeight = a.Young.BaseWeight
		a.Young.totalWeight = birthWt
		a.Young.CalculateWeights()
	}
	a.SetPregnancy(0)
	a.totalWeight = a.BaseWeight + a.woolWt
}

func (a *AnimalGroup) advanceAge(numDays int, newGroups *[]*AnimalGroup) error {
	a.AgeDays += numDays
	a.ages.AgeBy(numDays)
	if a.Young != nil {
		ng, err := a.Young.Age(numDays)
		if err != nil {
			return err
		}
		if newGroups != nil {
			*newGroups = append(*newGroups, ng...)
		}
	}
	if a.lactStatus == grazType.Lactating {
		a.daysLactating += numDays
	} else if a.dryOffTime > 0.0 {
		a.dryOffTime += a.Genotype.IntakeC[19] * float64(numDays)
	}
	return nil
}

// youngStopSuckling is true once milk is a trivial part of the young's diet
func (a *AnimalGroup) youngStopSuckling() bool {
	if a.Young == nil || a.Young.lactStatus != grazType.Suckling || a.Young.AgeDays < 7 {
		return false
	}
	solid := a.Young.AnimalState.PaddockIntake.Biomass + a.Young.AnimalState.SuppIntake.Biomass
	return grazMath.XDiv(a.milkYield, float64(a.noSuckling())) < a.Genotype.SelfWeanPropn*solid
}

// Mortality

func (a *AnimalGroup) kill(newGroups *[]*AnimalGroup) error {
	diffs := DifferenceRecord{BaseWeight: -a.Genotype.MortWtDiff * a.BaseWeight}

	rate := a.deathRate()
	femaleLosses := a.rnd.RndPropn(a.FemaleNo, rate)
	maleLosses := a.rnd.RndPropn(a.MaleNo, rate)
	youngLosses := 0
	if a.Young != nil {
		a.Young.Deaths = 0
	}
	if a.Genotype.Animal == grazType.Sheep && a.Young != nil && a.Young.AgeDays == 1 {
		youngLosses = a.rnd.RndPropn(a.Young.NoAnimals(), a.exposure(a.chillIndex))
		a.Young.Deaths = youngLosses
	}
	a.Deaths = maleLosses + femaleLosses

	switch {
	case a.Young == nil && a.Deaths > 0:
		if _, err := a.SplitSex(maleLosses, femaleLosses, false, diffs); err != nil {
			return err
		}
	case a.Young != nil && femaleLosses+youngLosses > 0:
		toKill := youngLosses
		if femaleLosses > 0 {
			// unweaned young die with their mothers
			dead, err := a.Split(femaleLosses, false, diffs, NoDiff)
			if err != nil {
				return err
			}
			if dead.Young != nil {
				toKill = grazMath.IDim(youngLosses, dead.Young.NoAnimals())
			}
		}
		if toKill > 0 && a.FemaleNo > 0 {
			// further losses are spread as evenly as possible over the mothers
			if err := a.loseYoung(a, toKill/a.FemaleNo); err != nil {
				return err
			}
			if rem := toKill % a.FemaleNo; rem > 0 {
				sg, err := a.Split(rem, false, NoDiff, NoDiff)
				if err != nil {
					return err
				}
				if err := a.loseYoung(sg, 1); err != nil {
					return err
				}
				*newGroups = append(*newGroups, sg)
			}
		}
	}
	return nil
}

// deathRate is the daily probability of death from age and undernutrition
func (a *AnimalGroup) deathRate() float64 {
	g := a.Genotype
	growthRate := g.GrowthC[1] / math.Pow(a.stdRefWt, g.GrowthC[2])
	dayDeltaNW := (a.stdRefWt - a.birthWeight) *
		(math.Exp(-growthRate*float64(a.AgeDays-1)) - math.Exp(-growthRate*float64(a.AgeDays)))

	rate := 1.0 - a.ExpectedSurvival(1)
	if a.lactStatus != grazType.Suckling && a.bodyCondition < g.MortCondConst &&
		a.weightChange < 0.2*dayDeltaNW {
		rate += g.MortIntensity * (g.MortCondConst - a.bodyCondition)
	}
	return rate
}

// ExpectedSurvival is the proportion expected to survive overDays from
// background mortality alone
func (a *AnimalGroup) ExpectedSurvival(overDays int) float64 {
	g := a.Genotype
	age := a.AgeDays
	result := 1.0
	for overDays > 0 {
		var dayDeath float64
		var dayCount int
		switch {
		case a.lactStatus == grazType.Suckling || age >= grazMath.Round(g.MortAge[2]):
			dayDeath = g.MortRate[1]
			dayCount = overDays
		case age < grazMath.Round(g.MortAge[1]):
			dayDeath = g.MortRate[2]
			dayCount = minInt(overDays, grazMath.Round(g.MortAge[1])-age)
		default:
			dayDeath = g.MortRate[1] + (g.MortRate[2]-g.MortRate[1])*grazMath.Ramp(float64(age), g.MortAge[2], g.MortAge[1])
			dayCount = 1
		}
		result *= math.Pow(1.0-dayDeath, float64(dayCount))
		overDays -= dayCount
		age += dayCount
	}
	return result
}

// exposure is the death rate of newborn young from cold, taken from the
// mothers' condition and litter size
func (a *AnimalGroup) exposure(chill float64) float64 {
	ec := a.Genotype.ExposureConsts
	x := ec[0] - ec[1]*a.bodyCondition + ec[2]*chill
	if a.numberOffspring > 1 {
		x += ec[3]
	}
	return 1.0 / (1.0 + math.Exp(-x))
}

// loseYoung takes n young per mother from grp
func (a *AnimalGroup) loseYoung(grp *AnimalGroup, n int) error {
	if grp.Young == nil || n <= 0 {
		return nil
	}
	if n >= grp.numberOffspring {
		grp.Young = nil
		grp.SetNoOffspring(0)
		return nil
	}

	young := grp.Young
	youngDiffs := DifferenceRecord{BaseWeight: -young.Genotype.MortWtDiff * young.BaseWeight}
	toLose := n * grp.FemaleNo
	malesToLose := grazMath.Round(float64(toLose) * grazMath.XDiv(float64(young.MaleNo), float64(young.NoAnimals())))
	malesToLose = minInt(malesToLose, young.MaleNo)
	femalesToLose := toLose - malesToLose
	if femalesToLose > young.FemaleNo {
		malesToLose += femalesToLose - young.FemaleNo
		femalesToLose = young.FemaleNo
	}
	if _, err := young.SplitSex(malesToLose, femalesToLose, false, youngDiffs); err != nil {
		return fmt.Errorf("losing %d young per head: %w", n, err)
	}
	grp.numberOffspring -= n
	young.numberOffspring -= n
	return nil
}

// killEndPreg applies dystokia to single-bearing ewes and pregnancy
// toxaemia to multiple-bearing ewes on the day before birth
func (a *AnimalGroup) killEndPreg(newGroups *[]*AnimalGroup) error {
	g := a.Genotype
	if g.Animal != grazType.Sheep || a.foetalAge != g.Gestation()-1 {
		return nil
	}
	switch {
	case a.numberFoetuses == 1:
		rate := grazMath.Sig(a.foetalWeight/g.StdBirthWt(1)*math.Max(a.relativeSize, 1.0), g.DystokiaSigs)
		losses := a.rnd.RndPropn(a.FemaleNo, rate)
		if losses > 0 {
			dg, err := a.Split(losses, false, NoDiff, NoDiff)
			if err != nil {
				return err
			}
			dg.SetPregnancy(0)
			*newGroups = append(*newGroups, dg)
		}
	case a.numberFoetuses >= 2:
		rate := grazMath.Sig((a.midLatePregWeight-a.BaseWeight)/a.normalWeight, g.ToxaemiaSigs)
		losses := a.rnd.RndPropn(a.FemaleNo, rate)
		a.Deaths += losses
		if losses > 0 {
			if _, err := a.Split(losses, false, NoDiff, NoDiff); err != nil {
				return err
			}
		}
	}
	return nil
}

// Reproduction

func (a *AnimalGroup) conceive(newGroups *[]*AnimalGroup) error {
	if a.reproState != grazType.Empty || a.mateCycle != 0 {
		return nil
	}
	if a.Genotype.Animal == grazType.Sheep && a.lactStatus == grazType.Lactating {
		return nil
	}
	return a.makePregnantAnimals(a.ConceptionRates(), newGroups)
}

// ConceptionRates are the proportions of the group conceiving 1, 2 and 3
// young at one ovulation. Element 0 is unused.
func (a *AnimalGroup) ConceptionRates() [4]float64 {
	const stdLatitude = -35.0
	var result [4]float64
	g := a.Genotype

	doy := a.clock.DayOfYear()
	dlFactor := (1.0 - math.Sin(grazMath.Day2Rad*float64(doy+10))) *
		math.Sin(grazMath.Deg2Rad*a.weather.Latitude()) / math.Sin(grazMath.Deg2Rad*stdLatitude)

	// first the proportion with at least n young
	for n := 1; n <= g.MaxYoung; n++ {
		propn := 0.0
		if g.ConceiveSigs[n][0] < 5.0 {
			propn = grazMath.Dim(1.0, g.DayLengthConst[n]*dlFactor) *
				grazMath.Sig(a.relativeSize*a.bodyCondition, g.ConceiveSigs[n])
		}
		if n == 1 {
			result[n] = propn
		} else {
			result[n] = propn * result[n-1]
			result[n-1] -= result[n]
		}
	}
	for n := 1; n <= g.MaxYoung-1; n++ {
		result[n] = grazMath.Dim(result[n], result[n+1])
	}
	return result
}

func (a *AnimalGroup) makePregnantAnimals(rates [4]float64, newGroups *[]*AnimalGroup) error {
	fertileDiff := DifferenceRecord{BaseWeight: a.Genotype.FertWtDiff}
	initial := a.NoAnimals()
	for n := 1; n <= a.Genotype.MaxYoung; n++ {
		numPreg := minInt(a.NoAnimals(), a.rnd.RndPropn(initial, rates[n]))
		pg, err := a.Split(numPreg, false, fertileDiff, NoDiff)
		if err != nil {
			return err
		}
		if pg != nil {
			pg.SetPregnancy(1)
			pg.SetNoFoetuses(n)
			*newGroups = append(*newGroups, pg)
		}
	}
	return nil
}

// Weaning

// maleScalar is the SRW scalar for the males of a mixed-sex group
func (a *AnimalGroup) maleScalar() float64 {
	if a.reproState == grazType.Castrated {
		return a.Genotype.SRWScalars[grazType.Castrated]
	}
	return a.Genotype.SRWScalars[grazType.Male]
}

// MaleWeight is the live weight of the males of a mixed-sex group
func (a *AnimalGroup) MaleWeight() float64 {
	switch {
	case a.MaleNo == 0:
		return 0.0
	case a.FemaleNo == 0:
		return a.totalWeight
	}
	scalar := a.maleScalar()
	n := float64(a.NoAnimals())
	srwFemale := a.stdRefWt * grazMath.XDiv(n, scalar*float64(a.MaleNo)+float64(a.FemaleNo))
	srwMale := scalar * srwFemale
	maleNW := maxNormWt(srwMale, a.birthWeight, a.AgeDays, a.Genotype)
	femaleNW := maxNormWt(srwFemale, a.birthWeight, a.AgeDays, a.Genotype)
	groupNW := grazMath.XDiv(maleNW*float64(a.MaleNo)+femaleNW*float64(a.FemaleNo), n)
	male2Fem := 1.0 + (maleNW/femaleNW-1.0)*math.Min(1.0, a.BaseWeight/groupNW)*a.baseWtGainSolid
	return a.totalWeight * n / (float64(a.MaleNo) + float64(a.FemaleNo)/male2Fem)
}

// FemaleWeight is the live weight of the females of a mixed-sex group
func (a *AnimalGroup) FemaleWeight() float64 {
	if a.FemaleNo == 0 {
		return 0.0
	}
	return a.totalWeight + float64(a.MaleNo)/float64(a.FemaleNo)*(a.totalWeight-a.MaleWeight())
}

// Wean removes the young of the requested sexes. Weaned young come back in
// weanedOff; mothers keeping young of the other sex are split into
// newGroups by litter size.
func (a *AnimalGroup) Wean(weanFemales, weanMales bool) (newGroups, weanedOff []*AnimalGroup, err error) {
	if a.NoAnimals() == 0 {
		a.Young = nil
		a.SetLactation(0)
		return nil, nil, nil
	}
	if a.Young == nil || !((weanMales && a.Young.MaleNo > 0) || (weanFemales && a.Young.FemaleNo > 0)) {
		return nil, nil, nil
	}

	young := a.Young
	totalYoung := young.NoAnimals()
	var maleYoung, femaleYoung *AnimalGroup
	switch {
	case young.MaleNo == 0:
		femaleYoung = young
	case young.FemaleNo == 0:
		maleYoung = young
	default:
		femaleDiff := grazMath.XDiv(young.FemaleWeight()-young.MaleWeight(), young.LiveWeight())
		scalar := young.maleScalar()
		diffs := DifferenceRecord{
			BaseWeight: femaleDiff * young.BaseWeight,
			FleeceWt:   femaleDiff * young.woolWt,
			StdRefWt: young.stdRefWt * grazMath.XDiv(float64(totalYoung), scalar*float64(young.MaleNo)+float64(young.FemaleNo)) *
				(1.0 - scalar),
		}
		maleYoung = young
		femaleYoung, err = maleYoung.SplitSex(0, young.FemaleNo, false, diffs)
		if err != nil {
			return nil, nil, err
		}
	}
	if femaleYoung != nil {
		femaleYoung.reproState = grazType.Empty
	}

	a.Young = nil
	a.previousOffspring = a.numberOffspring

	if weanMales {
		weanedOff = exportWeaners(maleYoung, weanedOff)
	}
	if weanFemales {
		weanedOff = exportWeaners(femaleYoung, weanedOff)
	}
	if !weanMales {
		if newGroups, err = a.splitMothers(maleYoung, newGroups); err != nil {
			return nil, nil, err
		}
	}
	if !weanFemales {
		if newGroups, err = a.splitMothers(femaleYoung, newGroups); err != nil {
			return nil, nil, err
		}
	}

	if a.Genotype.Animal == grazType.Sheep {
		a.SetLactation(0)
	}
	a.numberOffspring = 0
	return newGroups, weanedOff, nil
}

func exportWeaners(weaned *AnimalGroup, weanedOff []*AnimalGroup) []*AnimalGroup {
	if weaned == nil {
		return weanedOff
	}
	weaned.lactStatus = grazType.Dry
	weaned.numberOffspring = 0
	weaned.mothers = nil
	return append(weanedOff, weaned)
}

func exportWithYoung(mothers, young *AnimalGroup, numYoung int, newGroups []*AnimalGroup) []*AnimalGroup {
	mothers.Young = young
	mothers.numberOffspring = numYoung
	young.mothers = mothers
	young.numberOffspring = numYoung
	return append(newGroups, mothers)
}

// remainingLitterPropn gives, by litter size before weaning, the proportion
// of unweaned young that end up as singles, twins and triplets
var remainingLitterPropn = [4][4]float64{
	{0, 0, 0, 0},
	{0, 1, 0, 0},
	{0, 0.5, 0.5, 0},
	{0, 0.25, 0.5, 0.25},
}

// splitMothers re-forms groups of mothers with the young of one sex that
// were not weaned, leaving a with the mothers whose young have all gone
func (a *AnimalGroup) splitMothers(young *AnimalGroup, newGroups []*AnimalGroup) ([]*AnimalGroup, error) {
	if a.numberOffspring > 3 || a.numberOffspring < 0 {
		return nil, fmt.Errorf("%w: litters of %d", ErrWeanBySex, a.numberOffspring)
	}
	if young == nil {
		return newGroups, nil
	}
	if young.MaleNo > 0 && young.FemaleNo > 0 {
		return nil, fmt.Errorf("%w: young of both sexes", ErrWeanBySex)
	}
	doFemales := young.reproState == grazType.Empty

	var lambs, ewes [4]int
	kept := young.NoAnimals()
	for ny := 3; ny >= 2; ny-- {
		lambs[ny] = int(math.Trunc(remainingLitterPropn[a.numberOffspring][ny]*float64(kept) + 0.5))
		ewes[ny] = lambs[ny] / ny
		lambs[ny] = ny * ewes[ny]
	}
	lambs[1] = kept - lambs[2] - lambs[3]
	ewes[1] = minInt(lambs[1], a.FemaleNo-ewes[2]-ewes[3])

	for ny := 3; ny >= 1; ny-- {
		if ewes[ny] <= 0 {
			continue
		}
		stillMothers, err := a.Split(ewes[ny], false, NoDiff, NoDiff)
		if err != nil {
			return nil, err
		}
		var stillYoung *AnimalGroup
		if doFemales {
			stillYoung, err = young.SplitSex(0, lambs[ny], false, NoDiff)
		} else {
			stillYoung, err = young.SplitSex(lambs[ny], 0, false, NoDiff)
		}
		if err != nil {
			return nil, err
		}
		newGroups = exportWithYoung(stillMothers, stillYoung, ny, newGroups)
	}
	if young.NoAnimals() != 0 {
		return nil, fmt.Errorf("%w: %d young left over", ErrWeanBySex, young.NoAnimals())
	}
	return newGroups, nil
}
