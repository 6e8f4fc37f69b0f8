// animal project growth.go
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
	"math"

	"github.com/APSIMInitiative/ApsimX-sub000/grazMath"
	"github.com/APSIMInitiative/ApsimX-sub000/grazType"
	"github.com/APSIMInitiative/ApsimX-sub000/supplement"
)

const (
	maxRDPPasses = 2
	rdpIters     = 5
	rdpTol       = 0.001
)

// StoreStateInfo records the state that Nutrition changes so that the day
// can be rerun if rumen-degradable protein turns out to be short
func (a *AnimalGroup) StoreStateInfo() StateInfo {
	return StateInfo{
		BaseWeight: a.BaseWeight,
		WoolWt:     a.woolWt,
		WoolMicron: a.FibreDiam,
		CoatDepth:  a.coatDepth,
		FoetalWt:   a.foetalWeight,
		LactAdjust: a.lactAdjust,
		LactRatio:  a.lactationRatio,
		BasePhos:   a.basePhosWt,
		BaseSulf:   a.baseSulfWt,
	}
}

func (a *AnimalGroup) RevertStateInfo(s StateInfo) {
	a.BaseWeight = s.BaseWeight
	a.woolWt = s.WoolWt
	a.FibreDiam = s.WoolMicron
	a.coatDepth = s.CoatDepth
	a.foetalWeight = s.FoetalWt
	a.lactAdjust = s.LactAdjust
	a.lactationRatio = s.LactRatio
	a.basePhosWt = s.BasePhos
	a.baseSulfWt = s.BaseSulf
}

// RDPIntakeFactor is the proportion of the day's intake that the rumen can
// support when degradable protein intake falls short of the requirement.
// It is 1 when there is no shortfall.
func (a *AnimalGroup) RDPIntakeFactor() float64 {
	st := a.AnimalState
	if st.DMIntake.Solid < grazType.VerySmall || st.RDPIntake >= st.RDPReqd {
		return 1.0
	}

	damp := a.Genotype.IntakeC[16]
	damped := func(x float64) float64 {
		if damp > 0.0 && damp < 1.0 {
			return 1.0 + damp*(x-1.0)
		}
		return x
	}

	result := damped(st.RDPIntake / st.RDPReqd)
	for i := 0; i < rdpIters; i++ {
		old := result
		tempFL := grazMath.XDiv(old*st.MEIntake.Total, st.EnergyUse.Maint) - 1.0
		rdpi, rdpr, _ := a.computeRDP(old, tempFL)
		result = math.Max(0.0, math.Min(1.0-0.5*(1.0-old), damped(grazMath.XDiv(rdpi, rdpr))))
		if math.Abs(result-old) < rdpTol {
			break
		}
	}
	return result
}

// CompleteGrowth closes the day once the RDP passes are done
func (a *AnimalGroup) CompleteGrowth(rdpFactor float64) {
	a.AnimalState.RDPIntakeEffect = rdpFactor

	if a.MaleNo == 0 || a.FemaleNo == 0 {
		a.baseWtGainSolid = 0.0
		return
	}
	// running proportion of lifetime gain made on solid feed
	lifeWG := grazMath.Dim(a.BaseWeight-a.weightChange, a.birthWeight)
	dayWG := math.Max(a.weightChange, 0.0)
	a.baseWtGainSolid = grazMath.XDiv(lifeWG*a.baseWtGainSolid+dayWG*grazMath.XDiv(a.AnimalState.MEIntake.Solid, a.AnimalState.MEIntake.Total),
		lifeWG+dayWG)
}

// Grow runs one whole day of intake and nutrition for a group and its young
// on a single pasture, with the ration given per head of the mothers. It
// does not age the animals. A shortage of degradable protein reruns the day
// once at reduced intake.
func (a *AnimalGroup) Grow(herbage grazType.GrazingInputs, ration *supplement.Ration, w Weather, c Clock) error {
	a.SetEnvironment(w, c)
	groups := []*AnimalGroup{a}
	if a.Young != nil {
		groups = append(groups, a.Young)
	}

	initial := make([]StateInfo, len(groups))
	for i, grp := range groups {
		initial[i] = grp.StoreStateInfo()
		if err := grp.CalculateIntakeLimit(); err != nil {
			return err
		}
	}

	rdp := make([]float64, len(groups))
	for pass := 1; ; pass++ {
		for _, grp := range groups {
			grp.Herbage = herbage.Copy()
			grp.RationFed = ration.Copy()
			if grp.RationFed == nil {
				grp.RationFed = &supplement.Ration{}
			}
			if grp != a {
				grp.RationFed.SetTotalAmount(ration.TotalAmount() * grazMath.XDiv(grp.PotIntake, a.PotIntake))
			}
			grp.Grazing(1.0, true, false)
		}

		availRDP := 1.0
		for i, grp := range groups {
			if err := grp.Nutrition(); err != nil {
				return err
			}
			rdp[i] = grp.RDPIntakeFactor()
			availRDP = math.Min(availRDP, rdp[i])
		}
		if pass == maxRDPPasses || availRDP == 1.0 {
			break
		}
		for i, grp := range groups {
			grp.RevertStateInfo(initial[i])
			grp.PotIntake *= rdp[i]
		}
	}

	for i, grp := range groups {
		grp.CompleteGrowth(rdp[i])
	}
	return nil
}
