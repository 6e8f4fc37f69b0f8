// intake
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

const (
	classWidth    = 0.1  // width of a digestibility class
	trivialIntake = 1e-6 // kg/head
)

// RelIntake holds the relative intakes (fractions of potential intake) of
// each herbage class, each seed pool and the ration
type RelIntake struct {
	Herbage [grazType.DigClassNo]float64
	Seed    [][2]float64
	Supp    float64
}

// CalculateIntakeLimit sets PotIntake from size, condition, the weather and
// stage of lactation
func (a *AnimalGroup) CalculateIntakeLimit() error {
	if a.weather == nil {
		return fmt.Errorf("%s group has no weather set", a.Genotype.Name)
	}
	g := a.Genotype
	ic := g.IntakeC
	a.CalculateWeights()

	condFactor := 1.0
	if a.bodyCondition > 1.0 {
		condFactor = a.bodyCondition * (ic[20] - a.bodyCondition) / (ic[20] - 1.0)
	}

	youngFactor := 1.0
	if a.lactStatus == grazType.Suckling && a.mothers != nil {
		youngFactor = (1.0 - a.mothers.propnMaxMilk) / (1.0 + math.Exp(-ic[3]*(float64(a.AgeDays)-ic[4])))
	}

	heatFactor := 1.0
	w := a.weather
	if w.MinTemp() < a.AnimalState.LowerCritTemp {
		// integrate a sinusoidal temperature cycle over the part below LCT
		tempDiff := w.MeanTemp() - a.AnimalState.LowerCritTemp
		tempAmpl := 0.5 * (w.MaxTemp() - w.MinTemp())
		x := math.Acos(math.Max(-1.0, math.Min(1.0, grazMath.XDiv(tempDiff, tempAmpl))))
		belowLCT := (-tempDiff*x + tempAmpl*math.Sin(x)) / math.Pi
		heatFactor = 1.0 + ic[17]*belowLCT*grazMath.Dim(1.0, w.Rainfall()/ic[18])
	}
	if w.MinTemp() >= ic[7] {
		heatFactor *= 1.0 - ic[5]*grazMath.Dim(w.MeanTemp(), ic[6])
	}
	if a.lactStatus != grazType.Lactating {
		a.lactAdjust = 1.0
	}

	var lactTime float64
	var lactNum int
	if a.lactStatus == grazType.Lactating {
		lactTime = float64(a.daysLactating)
		lactNum = a.noSuckling()
	} else {
		lactTime = a.dryOffTime
		lactNum = a.previousOffspring
	}

	lactFactor := 1.0
	if a.reproState != grazType.Male && a.reproState != grazType.Castrated && a.mothers == nil {
		shape := ic[21]
		if a.noSuckling() > 0 {
			shape = ic[9]
		}
		lactFactor = 1.0 + g.IntakeLactC[lactNum]*((1.0-ic[15])+ic[15]*a.BirthCondition)*
			grazMath.Wood(lactTime, ic[8], shape)*a.lactAdjust
	}

	a.PotIntake = ic[1] * a.stdRefWt * a.relativeSize * (ic[2] - a.relativeSize) *
		condFactor * youngFactor * heatFactor * lactFactor * a.IntakeModifier
	return nil
}

// ResetGrazing clears the day's intake record before the first time step
func (a *AnimalGroup) ResetGrazing() {
	a.AnimalState = &AnimalOutput{}
	a.suppFWIntake = 0.0
	a.startFU = 1.0
	n := a.RationFed.Count()
	a.netSupplementDMI = make([]float64, n)
	a.tsNetSupplementDMI = make([]float64, n)
}

// Grazing runs one time step of deltaT (fraction of the day) against the
// herbage and ration currently set on the group. It returns the herbage and
// seed removed per head and the supplement eaten, kg fresh weight per head.
func (a *AnimalGroup) Grazing(deltaT float64, reset, feedSuppFirst bool) (grazType.GrazingOutputs, float64) {
	// computed from yesterday's state, before any reset
	waterLogScalar := 1.0
	st := a.AnimalState
	if st.MEIntake.Total != 0.0 && a.WaterLogging != 0.0 && a.PaddSteep <= 1.0 &&
		st.EnergyUse.Gain != 0.0 && st.Efficiency.Gain != 0.0 {
		maintMEIScalar := math.Max(0.0, (st.EnergyUse.Gain/st.Efficiency.Gain)/st.MEIntake.Total)
		waterLogScalar = grazMath.Dim(1.0, maintMEIScalar*a.WaterLogging)
	}

	if reset || len(a.netSupplementDMI) != a.RationFed.Count() {
		a.ResetGrazing()
	}
	a.timeStepState = &AnimalOutput{}

	ri := a.CalculateRelIntake(deltaT, feedSuppFirst, waterLogScalar)
	a.describeTheDiet(ri, a.timeStepState)
	a.updateAnimalState(deltaT, feedSuppFirst, ri.Supp)

	past := a.timeStepState.IntakePerHead
	past.Seed = append([][2]float64(nil), past.Seed...)
	return past, grazMath.XDiv(a.PotIntake*ri.Supp, a.intakeSupplement.DMPropn)
}

func (a *AnimalGroup) updateAnimalState(timeStep float64, suppFullDay bool, suppRI float64) {
	suppTS := timeStep
	if suppFullDay {
		suppTS = 1.0
	}
	if timeStep == 1.0 {
		a.AnimalState = a.timeStepState.Copy()
	} else {
		a.AnimalState.accumulate(a.timeStepState, timeStep, suppFullDay)
	}
	a.suppFWIntake += suppTS * grazMath.XDiv(a.PotIntake*suppRI, a.intakeSupplement.DMPropn)
	for i := range a.netSupplementDMI {
		a.netSupplementDMI[i] += suppTS * a.tsNetSupplementDMI[i]
	}
}

// CalculateRelIntake works through the digestibility classes from best to
// worst, filling the animals' appetite from herbage, seed and supplement
func (a *AnimalGroup) CalculateRelIntake(timeStepLength float64, feedSuppFirst bool, waterLogScalar float64) RelIntake {
	const nClass = grazType.DigClassNo + 1 // plus an empty class below the worst
	g := a.Genotype
	gc := g.GrazeC
	h := &a.Herbage

	var availFeed, heightRatio, relQ, relIntake [nClass]float64
	for c := 0; c < grazType.DigClassNo; c++ {
		availFeed[c] = h.Herbage[c].Biomass
		heightRatio[c] = h.Herbage[c].HeightRatio
	}
	availFeed[nClass-1] = 0.0
	heightRatio[nClass-1] = 1.0

	for sp := range h.Seeds {
		for r := grazType.Unripe; r <= grazType.Ripe; r++ {
			c := seedClass(h, sp, r)
			if c >= 0 && h.Seeds[sp][r].Biomass > grazType.VerySmall {
				heightRatio[c] = grazMath.XDiv(heightRatio[c]*availFeed[c]+h.Seeds[sp][r].HeightRatio*h.Seeds[sp][r].Biomass,
					availFeed[c]+h.Seeds[sp][r].Biomass)
				availFeed[c] += h.Seeds[sp][r].Biomass
			}
		}
	}

	var totalFeed float64
	for c := 0; c < nClass; c++ {
		totalFeed += availFeed[c]
	}

	legume := h.LegumePropn
	a.intakeSupplement = a.RationFed.AverageSuppt()
	suppDWPerHead := a.RationFed.TotalAmount() * a.intakeSupplement.DMPropn

	result := RelIntake{Seed: make([][2]float64, len(h.Seeds))}

	selectFactor := (1.0 - legume*(1.0-h.LegumeTrop)) * h.SelectFactor
	for c := 0; c < grazType.DigClassNo; c++ {
		relQ[c] = 1.0 - gc[3]*grazMath.Dim(gc[1]-selectFactor, h.Herbage[c].Digestibility)
	}
	relQ[nClass-1] = 1.0

	var suppRelQ, substSuppRelQ float64
	suppRemains := a.RationFed.TotalAmount() > grazType.VerySmall
	if suppRemains {
		supp := a.intakeSupplement
		suppRelQ = math.Min(gc[14], 1.0-gc[3]*(gc[1]-supp.DMDigestibility))
		milkFactor := 0.0
		if a.lactStatus == grazType.Lactating {
			milkFactor = gc[15] * math.Exp(-grazMath.Sqr(float64(a.daysLactating)/gc[8]))
		}
		proteinFactor := 0.0
		if omd := math.Min(1.0, 1.05*supp.DMDigestibility-0.01); omd > 0.0 {
			proteinFactor = gc[16] * grazMath.Ramp(supp.CrudeProt/omd, gc[9], gc[10])
		}
		substSuppRelQ = suppRelQ - milkFactor - proteinFactor
	}

	fillRemaining := a.startFU
	if suppRemains && (feedSuppFirst || totalFeed <= grazType.VerySmall) {
		a.eatSupplement(timeStepLength, suppDWPerHead, suppRelQ, true, &result.Supp, &fillRemaining)
		a.startFU = fillRemaining
		suppRemains = false
	}

	if totalFeed > grazType.VerySmall {
		for c := 0; c < nClass && fillRemaining >= grazType.VerySmall; c++ {
			suppEntry := math.Min(1.0, 0.5+(substSuppRelQ-relQ[c])/(classWidth*gc[3]))
			if suppRemains && suppEntry > 0.0 {
				// a continuous response to changes in supplement quality
				a.eatPasture((1.0-suppEntry)*availFeed[c], totalFeed, heightRatio[c], relQ[c], &relIntake[c], &fillRemaining)
				a.eatSupplement(timeStepLength, suppDWPerHead, suppRelQ, false, &result.Supp, &fillRemaining)
				a.eatPasture(suppEntry*availFeed[c], totalFeed, heightRatio[c], relQ[c], &relIntake[c], &fillRemaining)
				suppRemains = false
			} else {
				a.eatPasture(availFeed[c], totalFeed, heightRatio[c], relQ[c], &relIntake[c], &fillRemaining)
			}
		}
		if suppRemains {
			a.eatSupplement(timeStepLength, suppDWPerHead, suppRelQ, false, &result.Supp, &fillRemaining)
		}

		legumeAdjust := gc[2] * grazMath.Sqr(1.0-fillRemaining) * legume
		for c := 0; c < grazType.DigClassNo; c++ {
			relIntake[c] *= waterLogScalar * (1.0 + legumeAdjust)
		}
	}

	// share each class's intake between herbage and seed
	for c := 0; c < grazType.DigClassNo; c++ {
		result.Herbage[c] = relIntake[c] * grazMath.XDiv(h.Herbage[c].Biomass, availFeed[c])
	}
	for sp := range h.Seeds {
		for r := grazType.Unripe; r <= grazType.Ripe; r++ {
			c := seedClass(h, sp, r)
			if c >= 0 && h.Seeds[sp][r].Biomass > grazType.VerySmall {
				result.Seed[sp][r] = relIntake[c] * h.Seeds[sp][r].Biomass / availFeed[c]
			}
		}
	}
	return result
}

// seedClass is the 0-based class a seed pool is grazed with, or -1
func seedClass(h *grazType.GrazingInputs, sp, ripe int) int {
	if sp >= len(h.SeedClass) {
		return -1
	}
	c := h.SeedClass[sp][ripe]
	if c < 1 || c > grazType.DigClassNo {
		return -1
	}
	return c - 1
}

func (a *AnimalGroup) eatSupplement(timeStepLength, suppDWPerHead, suppRQ float64, eatenFirst bool, suppRI, fracUnsat *float64) {
	var suppRelFill float64
	if a.PotIntake >= grazType.VerySmall {
		if eatenFirst {
			suppRelFill = math.Min(*fracUnsat, suppDWPerHead/(a.PotIntake*suppRQ))
		} else {
			suppRelFill = math.Min(*fracUnsat, suppDWPerHead/(a.PotIntake*timeStepLength*suppRQ))
		}
		supp := a.intakeSupplement
		if supp.ME2DM > 0.0 && !supp.IsRoughage {
			if a.lactStatus == grazType.Lactating {
				suppRelFill = math.Min(suppRelFill, a.Genotype.GrazeC[20]/supp.ME2DM)
			} else {
				suppRelFill = math.Min(suppRelFill, a.Genotype.GrazeC[11]/supp.ME2DM)
			}
		}
	}
	*suppRI = suppRQ * suppRelFill
	*fracUnsat = grazMath.Dim(*fracUnsat, suppRelFill)
}

// relativeFill is the fraction of the remaining appetite fu that one class
// of feed satisfies
func (a *AnimalGroup) relativeFill(fu, classFeed, totalFeed, hr float64) float64 {
	gc := a.Genotype.GrazeC
	heightFactor := math.Max(0.0, (1.0-gc[12])+gc[12]*hr)
	sizeFactor := 1.0 + grazMath.Dim(gc[7], a.relativeSize)
	scaledFeed := heightFactor * sizeFactor * classFeed
	propnFactor := 1.0 + gc[13]*grazMath.XDiv(classFeed, totalFeed)
	rateTerm := 1.0 - math.Exp(-propnFactor*gc[4]*scaledFeed)
	timeTerm := 1.0 + gc[5]*math.Exp(-propnFactor*grazMath.Sqr(gc[6]*scaledFeed))
	return fu * rateTerm * timeTerm
}

func (a *AnimalGroup) eatPasture(classFeed, totalFeed, hr, relQ float64, ri, fu *float64) {
	relFill := math.Min(*fu, a.relativeFill(*fu, classFeed, totalFeed, hr))
	*ri += relFill * relQ
	*fu = grazMath.Dim(*fu, relFill)
}

func addDietElement(classAttr grazType.IntakeRecord, netIntake float64, summary *grazType.IntakeRecord) {
	if netIntake <= 0.0 {
		return
	}
	summary.Biomass += netIntake
	summary.Digestibility += netIntake * classAttr.Digestibility
	summary.CrudeProtein += netIntake * classAttr.CrudeProtein
	summary.Degradability += netIntake * classAttr.CrudeProtein * classAttr.Degradability
	summary.PhosContent += netIntake * classAttr.PhosContent
	summary.SulfContent += netIntake * classAttr.SulfContent
	summary.AshAlkalinity += netIntake * classAttr.AshAlkalinity
}

// summariseIntakeRecord turns the sums built by addDietElement into means
func summariseIntakeRecord(s *grazType.IntakeRecord) {
	if s.Biomass < trivialIntake {
		*s = grazType.IntakeRecord{}
		return
	}
	s.Digestibility /= s.Biomass
	if s.CrudeProtein > 0.0 {
		s.Degradability /= s.CrudeProtein
	} else {
		s.Degradability = 0.75
	}
	s.CrudeProtein /= s.Biomass
	s.PhosContent /= s.Biomass
	s.SulfContent /= s.Biomass
	s.AshAlkalinity /= s.Biomass
}

// describeTheDiet converts relative intakes into the amounts and qualities
// of herbage, supplement and milk eaten in the time step
func (a *AnimalGroup) describeTheDiet(ri RelIntake, ts *AnimalOutput) {
	h := &a.Herbage
	ts.IntakePerHead = grazType.NewGrazingOutputs(len(h.Seeds))
	for c := 0; c < grazType.DigClassNo; c++ {
		ts.IntakePerHead.Herbage[c] = a.PotIntake * ri.Herbage[c]
	}
	for sp := range h.Seeds {
		for r := grazType.Unripe; r <= grazType.Ripe; r++ {
			ts.IntakePerHead.Seed[sp][r] = a.PotIntake * ri.Seed[sp][r]
		}
	}

	ts.PaddockIntake = grazType.IntakeRecord{}
	for c := 0; c < grazType.DigClassNo; c++ {
		addDietElement(h.Herbage[c], ts.IntakePerHead.Herbage[c], &ts.PaddockIntake)
	}
	for sp := range h.Seeds {
		for r := grazType.Unripe; r <= grazType.Ripe; r++ {
			addDietElement(h.Seeds[sp][r], ts.IntakePerHead.Seed[sp][r], &ts.PaddockIntake)
		}
	}
	summariseIntakeRecord(&ts.PaddockIntake)
	if ts.PaddockIntake.Biomass == 0.0 {
		ts.IntakePerHead = grazType.NewGrazingOutputs(len(h.Seeds))
	}

	// supplements are taken one at a time because gut passage is not linear
	ts.SuppIntake = grazType.IntakeRecord{}
	var suppME2DM float64
	for i := range a.tsNetSupplementDMI {
		a.tsNetSupplementDMI[i] = 0.0
	}
	total := a.RationFed.TotalAmount()
	if total > 0.0 && ri.Supp*a.PotIntake > 0.0 {
		for i, item := range a.RationFed.Items {
			in := grazType.IntakeRecord{
				Digestibility: item.DMDigestibility,
				CrudeProtein:  item.CrudeProt,
				Degradability: item.DegProt,
				PhosContent:   item.Phosphorus,
				SulfContent:   item.Sulphur,
				AshAlkalinity: item.AshAlkalinity,
			}
			gutPassage := 0.0
			if a.Genotype.Animal == grazType.Cattle {
				gutPassage = item.MaxPassage * grazMath.Ramp(total/a.PotIntake, 0.20, 0.75)
			}
			a.tsNetSupplementDMI[i] = (1.0 - gutPassage) * a.RationFed.FWFract(i) * (a.PotIntake * ri.Supp)
			addDietElement(in, a.tsNetSupplementDMI[i], &ts.SuppIntake)
			suppME2DM += a.tsNetSupplementDMI[i] * item.ME2DM
		}
		summariseIntakeRecord(&ts.SuppIntake)
		if ts.SuppIntake.Biomass == 0.0 {
			for i := range a.tsNetSupplementDMI {
				a.tsNetSupplementDMI[i] = 0.0
			}
			suppME2DM = 0.0
		} else {
			suppME2DM = grazMath.XDiv(suppME2DM, ts.SuppIntake.Biomass)
		}
	}

	ts.DMIntake.Herbage = ts.PaddockIntake.Biomass
	ts.DMIntake.Supp = ts.SuppIntake.Biomass
	ts.DMIntake.Solid = ts.DMIntake.Herbage + ts.DMIntake.Supp
	ts.DMIntake.Total = ts.DMIntake.Solid // milk is not counted as dry matter

	ts.Digestibility.Herbage = ts.PaddockIntake.Digestibility
	ts.Digestibility.Supp = ts.SuppIntake.Digestibility
	ts.Digestibility.Solid = grazMath.XDiv(ts.Digestibility.Supp*ts.DMIntake.Supp+ts.Digestibility.Herbage*ts.DMIntake.Herbage,
		ts.DMIntake.Solid)

	if a.lactStatus == grazType.Suckling && a.mothers != nil && a.numberOffspring > 0 {
		n := float64(a.numberOffspring)
		ts.CPIntake.Milk = a.mothers.milkProtein / n
		ts.PhosIntake.Milk = a.mothers.milkPhosProdn / n
		ts.SulfIntake.Milk = a.mothers.milkSulfProdn / n
		ts.MEIntake.Milk = a.mothers.milkEnergy / n
	}

	ts.CPIntake.Herbage = ts.PaddockIntake.Biomass * ts.PaddockIntake.CrudeProtein
	ts.CPIntake.Supp = ts.SuppIntake.Biomass * ts.SuppIntake.CrudeProtein
	ts.CPIntake.Solid = ts.CPIntake.Herbage + ts.CPIntake.Supp
	ts.CPIntake.Total = ts.CPIntake.Solid + ts.CPIntake.Milk
	ts.ProteinConc.Herbage = ts.PaddockIntake.CrudeProtein
	ts.ProteinConc.Supp = ts.SuppIntake.CrudeProtein
	ts.ProteinConc.Solid = grazMath.XDiv(ts.CPIntake.Solid, ts.DMIntake.Solid)

	// supplement P and S are not counted
	ts.PhosIntake.Herbage = ts.PaddockIntake.Biomass * ts.PaddockIntake.PhosContent
	ts.PhosIntake.Solid = ts.PhosIntake.Herbage
	ts.PhosIntake.Total = ts.PhosIntake.Solid + ts.PhosIntake.Milk
	ts.SulfIntake.Herbage = ts.PaddockIntake.Biomass * ts.PaddockIntake.SulfContent
	ts.SulfIntake.Solid = ts.SulfIntake.Herbage
	ts.SulfIntake.Total = ts.SulfIntake.Solid + ts.SulfIntake.Milk

	ts.ME2DM.Herbage = grazType.HerbageE2DM*ts.Digestibility.Herbage - 2.0
	ts.ME2DM.Supp = suppME2DM
	ts.MEIntake.Supp = ts.ME2DM.Supp * ts.DMIntake.Supp
	ts.MEIntake.Herbage = ts.ME2DM.Herbage * ts.DMIntake.Herbage
	ts.MEIntake.Solid = ts.MEIntake.Herbage + ts.MEIntake.Supp
	ts.MEIntake.Total = ts.MEIntake.Solid + ts.MEIntake.Milk
	ts.ME2DM.Solid = grazMath.XDiv(ts.MEIntake.Solid, ts.DMIntake.Solid)
}

// correctedDegradability is the protein degradability of the herbage and
// supplement eaten, reduced for faster passage at higher feeding levels
func (a *AnimalGroup) correctedDegradability(feedingLevel float64) (corrDg DietRecord) {
	g := a.Genotype
	st := a.AnimalState
	fl := math.Max(feedingLevel, 0.0)
	corrDg.Herbage = st.PaddockIntake.Degradability * (1.0 - (g.DgProtC[1]-g.DgProtC[2]*st.Digestibility.Herbage)*fl)
	corrDg.Supp = st.SuppIntake.Degradability * (1.0 - g.DgProtC[3]*fl)
	return corrDg
}

// computeRDP gives the rumen-degradable protein intake and requirement for
// intake scaled by intakeScale at feeding level feedingLevel. Degradability
// is taken from AnimalState.CorrDgProt.
func (a *AnimalGroup) computeRDP(intakeScale, feedingLevel float64) (rdpi, rdpr float64, udpis DietRecord) {
	g := a.Genotype
	st := a.AnimalState

	var rdpis DietRecord
	rdpis.Herbage = intakeScale * st.CPIntake.Herbage * st.CorrDgProt.Herbage
	rdpis.Supp = intakeScale * st.CPIntake.Supp * st.CorrDgProt.Supp
	rdpis.Solid = rdpis.Herbage + rdpis.Supp
	udpis.Herbage = intakeScale*st.CPIntake.Herbage - rdpis.Herbage
	udpis.Supp = intakeScale*st.CPIntake.Supp - rdpis.Supp
	udpis.Milk = st.CPIntake.Milk // milk is not degraded
	udpis.Solid = udpis.Herbage + udpis.Supp
	rdpi = rdpis.Solid

	// fermentable ME leaves out undegraded protein and oils
	suppFME := grazMath.Dim(intakeScale*st.MEIntake.Supp, grazType.ProteinE2DM*udpis.Supp)
	for i, item := range a.RationFed.Items {
		if i < len(a.netSupplementDMI) {
			suppFME = grazMath.Dim(suppFME, grazType.FatE2DM*item.EtherExtract*intakeScale*a.netSupplementDMI[i])
		}
	}

	seasonal := 1.0 + g.DgProtC[7]*(a.weather.Latitude()/40.0)*math.Sin(grazMath.Day2Rad*float64(a.clock.DayOfYear()))
	rdpr = (g.DgProtC[4] + g.DgProtC[5]*(1.0-math.Exp(-g.DgProtC[6]*(feedingLevel+1.0)))) *
		(intakeScale*st.MEIntake.Herbage*seasonal + suppFME)
	return rdpi, rdpr, udpis
}
