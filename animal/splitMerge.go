// animal project splitMerge.go
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

// adjustRecords shifts the per-head weights by x times the differences
func (a *AnimalGroup) adjustRecords(x float64, d DifferenceRecord) {
	a.BaseWeight += x * d.BaseWeight
	if a.Genotype.Animal == grazType.Sheep {
		a.woolWt += x * d.FleeceWt
	}
	a.stdRefWt += x * d.StdRefWt
	a.CalculateWeights()
	a.totalWeight = a.BaseWeight + a.ConceptusWeight()
	if a.Genotype.Animal == grazType.Sheep {
		a.totalWeight += a.woolWt
	}
}

// SplitSex moves numMale males and numFemale females into a new group. The
// young are copied untouched, so callers that keep a litter must split it
// themselves. diffs are the per-head weight differences of the new group
// from the one left behind.
func (a *AnimalGroup) SplitSex(numMale, numFemale int, byAge bool, diffs DifferenceRecord) (*AnimalGroup, error) {
	if numMale < 0 || numFemale < 0 || numMale > a.MaleNo || numFemale > a.FemaleNo {
		return nil, fmt.Errorf("%w: %d males and %d females from a group of %d and %d",
			ErrSplitCount, numMale, numFemale, a.MaleNo, a.FemaleNo)
	}

	result := a.Copy()
	if numMale == a.MaleNo && numFemale == a.FemaleNo {
		a.MaleNo = 0
		a.FemaleNo = 0
		a.ages.Clear()
		return result, nil
	}

	ages, err := a.ages.Split(numMale, numFemale, byAge)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSplitCount, err)
	}
	propnGoing := grazMath.XDiv(float64(numMale+numFemale), float64(a.MaleNo+a.FemaleNo))
	a.adjustRecords(-propnGoing, diffs)
	result.adjustRecords(1.0-propnGoing, diffs)

	result.MaleNo = numMale
	result.FemaleNo = numFemale
	a.MaleNo -= numMale
	a.FemaleNo -= numFemale
	result.ages = ages
	a.AgeDays = a.ages.MeanAge()
	result.AgeDays = result.ages.MeanAge()
	return result, nil
}

// Split moves number animals, with their young, into a new group. Splitting
// nobody returns nil and leaves the group alone.
func (a *AnimalGroup) Split(number int, byAge bool, diffs, youngDiffs DifferenceRecord) (*AnimalGroup, error) {
	if number < 0 || number > a.NoAnimals() {
		return nil, fmt.Errorf("%w: %d from a group of %d", ErrSplitCount, number, a.NoAnimals())
	}
	if number == 0 {
		return nil, nil
	}

	var numMale, numFemale int
	switch {
	case a.MaleNo == 0:
		numFemale = number
	case a.FemaleNo == 0:
		numMale = number
	default:
		numMale = grazMath.Round(float64(number) * float64(a.MaleNo) / float64(a.NoAnimals()))
		if numMale > a.MaleNo {
			numMale = a.MaleNo
		}
		numFemale = number - numMale
		if numFemale > a.FemaleNo {
			numFemale = a.FemaleNo
			numMale = number - numFemale
		}
	}

	result, err := a.SplitSex(numMale, numFemale, byAge, diffs)
	if err != nil {
		return nil, err
	}
	result.Young = nil
	if a.Young != nil {
		y, err := a.Young.Split(number*a.numberOffspring, false, youngDiffs, NoDiff)
		if err != nil {
			return nil, fmt.Errorf("splitting young: %w", err)
		}
		if y != nil {
			y.mothers = result
		}
		result.Young = y
	}
	return result, nil
}

// SplitYoung breaks a group suckling more than one young per mother, or
// young of both sexes, into groups whose litters are all alike in sex
func (a *AnimalGroup) SplitYoung() ([]*AnimalGroup, error) {
	var groups []*AnimalGroup
	if a.Young == nil {
		return nil, nil
	}

	switch a.numberOffspring {
	case 1:
		if err := a.splitNumbers(&groups, a.Young.FemaleNo, 0, a.Young.FemaleNo); err != nil {
			return nil, err
		}
	case 2:
		// mothers of one of each sex, then mothers of two females
		mixed := minInt(a.Young.MaleNo, a.Young.FemaleNo) / 2
		if (a.Young.FemaleNo-mixed)%2 != 0 {
			mixed++
		}
		if err := a.splitNumbers(&groups, mixed, mixed, mixed); err != nil {
			return nil, err
		}
		twoFemale := a.Young.FemaleNo / 2
		if err := a.splitNumbers(&groups, twoFemale, 0, 2*twoFemale); err != nil {
			return nil, err
		}
	}
	return groups, nil
}

func sexAverage(maleScale float64, numMale, numFemale int) float64 {
	return grazMath.XDiv(maleScale*float64(numMale)+float64(numFemale), float64(numMale+numFemale))
}

// splitNumbers moves numMothers mothers with numYoungMale male and
// numYoungFemale female young into a new group
func (a *AnimalGroup) splitNumbers(groups *[]*AnimalGroup, numMothers, numYoungMale, numYoungFemale int) error {
	if numMothers <= 0 {
		return nil
	}
	young := a.Young
	youngDiffs := NoDiff
	if young.MaleNo > 0 && young.FemaleNo > 0 {
		scale := a.Genotype.SRWScalars[grazType.Male]
		if young.reproState == grazType.Castrated {
			scale = a.Genotype.SRWScalars[grazType.Castrated]
		}
		diffRatio := (sexAverage(scale, numYoungMale, numYoungFemale) -
			sexAverage(scale, young.MaleNo-numYoungMale, young.FemaleNo-numYoungFemale)) /
			sexAverage(scale, young.MaleNo, young.FemaleNo)
		youngDiffs = DifferenceRecord{
			StdRefWt:   young.stdRefWt * diffRatio,
			BaseWeight: young.BaseWeight * diffRatio,
			FleeceWt:   young.woolWt * diffRatio,
		}
	}

	a.Young = nil
	sg, err := a.SplitSex(0, numMothers, false, NoDiff)
	if err != nil {
		a.Young = young
		return err
	}
	sy, err := young.SplitSex(numYoungMale, numYoungFemale, false, youngDiffs)
	a.Young = young
	if err != nil {
		return err
	}
	sg.Young = sy
	sy.mothers = sg
	*groups = append(*groups, sg)
	return nil
}

// Similar reports whether two groups are alike enough to merge
func (a *AnimalGroup) Similar(other *AnimalGroup) bool {
	same := a.Genotype.Name == other.Genotype.Name &&
		a.reproState == other.reproState &&
		a.numberFoetuses == other.numberFoetuses &&
		a.numberOffspring == other.numberOffspring &&
		a.mateCycle == other.mateCycle &&
		a.daysToMate == other.daysToMate &&
		a.foetalAge == other.foetalAge &&
		a.lactStatus == other.lactStatus &&
		math.Abs(float64(a.daysLactating-other.daysLactating)) < 7.0 &&
		(a.Young == nil) == (other.Young == nil)
	if !same {
		return false
	}

	if a.AgeDays < 365 || other.AgeDays < 365 {
		same = a.AgeDays == other.AgeDays
	} else {
		same = minInt(a.AgeDays/30, 37) == minInt(other.AgeDays/30, 37)
	}
	if same && a.Young != nil {
		same = a.Young.reproState == other.Young.reproState
	}
	return same
}

// Merge adds the animals of other to the group, averaging the state by
// head count. other should be discarded afterwards.
func (a *AnimalGroup) Merge(other *AnimalGroup) error {
	switch {
	case a.numberFoetuses != other.numberFoetuses:
		return fmt.Errorf("%w: %d and %d foetuses", ErrMergeMismatch, a.numberFoetuses, other.numberFoetuses)
	case a.numberOffspring != other.numberOffspring:
		return fmt.Errorf("%w: %d and %d offspring", ErrMergeMismatch, a.numberOffspring, other.numberOffspring)
	case a.mothers == nil && a.reproState != other.reproState:
		return fmt.Errorf("%w: %s and %s", ErrMergeMismatch, a.reproState, other.reproState)
	case a.lactStatus != other.lactStatus:
		return fmt.Errorf("%w: %s and %s", ErrMergeMismatch, a.lactStatus, other.lactStatus)
	}

	f1 := a.FemaleNo
	n1 := float64(a.NoAnimals())
	n2 := float64(other.NoAnimals())
	ave := func(x1, x2 float64) float64 {
		if n1+n2 == 0.0 {
			return x1
		}
		return (x1*n1 + x2*n2) / (n1 + n2)
	}
	iave := func(x1, x2 int) int {
		return grazMath.Round(ave(float64(x1), float64(x2)))
	}

	a.totalWeight = ave(a.totalWeight, other.totalWeight)
	a.woolWt = ave(a.woolWt, other.woolWt)
	a.greasyFleeceGrow = ave(a.greasyFleeceGrow, other.greasyFleeceGrow)
	a.FibreDiam = ave(a.FibreDiam, other.FibreDiam)
	a.coatDepth = ave(a.coatDepth, other.coatDepth)
	a.BaseWeight = ave(a.BaseWeight, other.BaseWeight)
	a.weightChange = ave(a.weightChange, other.weightChange)
	a.maxPrevWeight = ave(a.maxPrevWeight, other.maxPrevWeight)
	a.birthWeight = ave(a.birthWeight, other.birthWeight)
	a.stdRefWt = ave(a.stdRefWt, other.stdRefWt)
	a.PotIntake = ave(a.PotIntake, other.PotIntake)
	a.basePhosWt = ave(a.basePhosWt, other.basePhosWt)
	a.baseSulfWt = ave(a.baseSulfWt, other.baseSulfWt)

	a.MaleNo += other.MaleNo
	a.FemaleNo += other.FemaleNo
	a.ages.Merge(other.ages)
	a.AgeDays = a.ages.MeanAge()
	a.CalculateWeights()

	if a.pregnant() {
		a.foetalAge = iave(a.foetalAge, other.foetalAge)
		a.foetalWeight = ave(a.foetalWeight, other.foetalWeight)
		a.midLatePregWeight = ave(a.midLatePregWeight, other.midLatePregWeight)
	}

	otherBirthCond := other.BirthCondition
	switch {
	case a.lactStatus == grazType.Lactating:
		a.daysLactating = iave(a.daysLactating, other.daysLactating)
		a.milkEnergy = ave(a.milkEnergy, other.milkEnergy)
		a.milkProtein = ave(a.milkProtein, other.milkProtein)
		a.milkYield = ave(a.milkYield, other.milkYield)
		a.lactationRatio = ave(a.lactationRatio, other.lactationRatio)
	case a.previousOffspring == 0 && other.previousOffspring == 0:
		a.dryOffTime = 0.0
		a.BirthCondition = 0.0
		otherBirthCond = 0.0
	default:
		if a.previousOffspring == 0 || (other.previousOffspring > 0 && other.FemaleNo > f1) {
			a.previousOffspring = other.previousOffspring
		}
		ic := a.Genotype.IntakeC
		wood := ave(grazMath.Wood(a.dryOffTime, ic[8], ic[9]), grazMath.Wood(other.dryOffTime, ic[8], ic[9]))
		a.dryOffTime = grazMath.InverseWood(wood, ic[8], ic[9], true)
		if a.BirthCondition == 0.0 {
			a.BirthCondition = 1.0
		}
		if otherBirthCond == 0.0 {
			otherBirthCond = 1.0
		}
	}
	a.BirthCondition = ave(a.BirthCondition, otherBirthCond)
	a.propnMaxMilk = ave(a.propnMaxMilk, other.propnMaxMilk)
	a.lactAdjust = ave(a.lactAdjust, other.lactAdjust)

	if a.Young != nil && other.Young != nil {
		if err := a.Young.Merge(other.Young); err != nil {
			return fmt.Errorf("merging young: %w", err)
		}
	}
	return nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
