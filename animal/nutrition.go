// nutrition
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

// Nutrition partitions the day's intake (set by Grazing) between maintenance,
// pregnancy, lactation, wool and weight change, and updates the weights.
// It fails only if the base weight falls to zero while wool is grown.
func (a *AnimalGroup) Nutrition() error {
	if a.weather == nil || a.clock == nil {
		return fmt.Errorf("%s group has no weather set", a.Genotype.Name)
	}
	a.efficiencies()
	a.computeMaintenance()
	a.computeDPLS()

	if a.pregnant() {
		a.computePregnancy()
	}
	if a.lactStatus == grazType.Lactating {
		a.computeLactation()
	}
	sheep := a.Genotype.Animal == grazType.Sheep
	if sheep {
		a.computeWool(0.0)
	}

	// the efficiency of gain depends on the energy balance, so it is set
	// again once the cost of keeping warm is known
	a.adjustKGain()
	a.computeChilling()
	a.adjustKGain()
	a.computeGain()

	if sheep {
		if err := a.applyWoolGrowth(); err != nil {
			return err
		}
	}
	// P, S and ash alkalinity need the day's fleece growth
	a.computePhosphorus()
	a.computeSulfur()
	a.computeAshAlk()

	a.totalWeight = a.BaseWeight + a.ConceptusWeight()
	if sheep {
		a.totalWeight += a.woolWt
	}
	a.AnimalState.IntakeLimitLegume = a.PotIntake * (1.0 + a.Genotype.GrazeC[2]*a.Herbage.LegumePropn)
	return nil
}

func (a *AnimalGroup) efficiencies() {
	g := a.Genotype
	ec := g.EfficC
	st := a.AnimalState

	st.DietPropn.Milk = grazMath.XDiv(st.MEIntake.Milk, st.MEIntake.Total)
	st.DietPropn.Solid = 1.0 - st.DietPropn.Milk
	st.DietPropn.Supp = st.DietPropn.Solid * grazMath.XDiv(st.MEIntake.Supp, st.MEIntake.Solid)
	st.DietPropn.Herbage = st.DietPropn.Solid - st.DietPropn.Supp

	if st.MEIntake.Total < grazType.VerySmall {
		st.Efficiency.Maint = ec[4]
		st.Efficiency.Lact = ec[7]
	} else {
		st.Efficiency.Maint = st.DietPropn.Solid*(ec[1]+ec[2]*st.ME2DM.Solid) + st.DietPropn.Milk*ec[3]
		st.Efficiency.Lact = ec[5] + ec[6]*st.ME2DM.Solid
	}
	st.Efficiency.Preg = ec[8]

	seasonal := 1.0 + ec[15]*(a.weather.Latitude()/40.0)*math.Sin(grazMath.Day2Rad*float64(a.clock.DayOfYear()))
	herbageEff := ec[13] * (1.0 + ec[14]*a.Herbage.LegumePropn) * seasonal * st.ME2DM.Herbage
	suppEff := ec[16] * st.ME2DM.Supp
	st.Efficiency.Gain = st.DietPropn.Herbage*herbageEff + st.DietPropn.Supp*suppEff + st.DietPropn.Milk*ec[12]
}

func (a *AnimalGroup) computeMaintenance() {
	g := a.Genotype
	mc := g.MaintC
	st := a.AnimalState

	metabScale := 1.0
	switch {
	case a.lactStatus == grazType.Suckling:
		metabScale = 1.0 + mc[5]*st.DietPropn.Milk
	case a.reproState == grazType.Male && a.AgeDays >= g.Puberty[1]:
		metabScale = 1.0 + mc[15]
	}
	st.EnergyUse.Metab = metabScale * mc[2] * math.Pow(a.BaseWeight, 0.75) *
		math.Max(math.Exp(-mc[3]*float64(a.AgeDays)), mc[4])

	eatingEnergy := mc[6] * a.BaseWeight * st.DMIntake.Herbage * grazMath.Dim(mc[7], st.Digestibility.Herbage)

	var grazeMovedKM float64
	switch {
	case a.Herbage.TotalGreen > 100.0:
		grazeMovedKM = 1.0 / (mc[8]*a.Herbage.TotalGreen + mc[9])
	case a.Herbage.TotalDead > 100.0:
		grazeMovedKM = 1.0 / (mc[8]*a.Herbage.TotalDead + mc[9])
	}
	if a.AnimalsPerHa > mc[17] {
		grazeMovedKM *= mc[17] / a.AnimalsPerHa
	}
	movingEnergy := mc[16] * a.totalWeight * a.PaddSteep * (grazeMovedKM + a.DistanceWalked)

	st.EnergyUse.Maint = (st.EnergyUse.Metab+eatingEnergy+movingEnergy)/st.Efficiency.Maint + mc[1]*st.MEIntake.Total
	a.feedingLevel = st.MEIntake.Total/st.EnergyUse.Maint - 1.0

	st.EndoFaeces.Nu[grazType.N] = (mc[10]*st.DMIntake.Solid + mc[11]*st.MEIntake.Milk) / grazType.N2Protein

	var endoUrineN float64
	if g.Animal == grazType.Cattle {
		endoUrineN = (mc[12]*math.Log(a.BaseWeight) - mc[13]) / grazType.N2Protein
		st.DermalNLoss = mc[14] * math.Pow(a.BaseWeight, 0.75) / grazType.N2Protein
	} else {
		endoUrineN = (mc[12]*a.BaseWeight + mc[13]) / grazType.N2Protein
		st.DermalNLoss = 0.0
	}
	st.ProteinUse.Maint = grazType.N2Protein * (st.EndoFaeces.Nu[grazType.N] + endoUrineN + st.DermalNLoss)
}

// dudp is the digestibility of undegraded protein in a feed
func (a *AnimalGroup) dudp(isRoughage bool, cp, dg, adip2CP float64) float64 {
	pc := a.Genotype.ProtC
	switch {
	case isRoughage:
		return math.Max(pc[1], math.Min(pc[3]*cp-pc[4], pc[2]))
	case dg >= 1.0:
		return 0.0
	}
	return pc[9] * (1.0 - adip2CP/(1.0-dg))
}

// computeDPLS finds the protein digested in the small intestine, from
// undegraded dietary protein, microbial protein and milk
func (a *AnimalGroup) computeDPLS() {
	pc := a.Genotype.ProtC
	st := a.AnimalState

	st.CorrDgProt = a.correctedDegradability(a.feedingLevel)
	var udp DietRecord
	st.RDPIntake, st.RDPReqd, udp = a.computeRDP(1.0, a.feedingLevel)
	st.UDPIntake = udp.Solid + udp.Milk
	dgCorrect := grazMath.XDiv(st.CorrDgProt.Supp, st.SuppIntake.Degradability)

	st.MicrobialCP = pc[6] * st.RDPReqd

	var dudp DietRecord
	dudp.Milk = pc[5]
	dudp.Herbage = a.dudp(true, st.ProteinConc.Herbage, st.CorrDgProt.Herbage, 0.0)
	for i, item := range a.RationFed.Items {
		if i >= len(a.netSupplementDMI) {
			break
		}
		dudp.Supp += grazMath.XDiv(a.netSupplementDMI[i], st.DMIntake.Supp) *
			a.dudp(item.IsRoughage, item.CrudeProt, item.DegProt*dgCorrect, item.ADIP2CP)
	}

	st.DPLSMCP = pc[7] * st.MicrobialCP
	st.DPLSMilk = dudp.Milk * udp.Milk
	st.DPLS = dudp.Herbage*udp.Herbage + dudp.Supp*udp.Supp + st.DPLSMilk + st.DPLSMCP
	if udp.Solid > 0.0 {
		st.UDPDig = (dudp.Herbage*udp.Herbage + dudp.Supp*udp.Supp) / udp.Solid
	} else {
		st.UDPDig = dudp.Herbage
	}

	st.OrgFaeces.DM = st.DMIntake.Solid * (1.0 - st.Digestibility.Solid)
	st.OrgFaeces.Nu[grazType.N] = ((1.0-dudp.Herbage)*udp.Herbage+
		(1.0-dudp.Supp)*udp.Supp+
		(1.0-dudp.Milk)*udp.Milk+
		pc[8]*st.MicrobialCP)/grazType.N2Protein + st.EndoFaeces.Nu[grazType.N]
	st.InOrgFaeces.Nu[grazType.N] = 0.0
}

// computePregnancy grows the foetus at a rate set by its normal growth and
// the mother's condition
func (a *AnimalGroup) computePregnancy() {
	g := a.Genotype
	pc := g.PregC
	st := a.AnimalState

	prevConceptusWt := a.ConceptusWeight()
	birthWt := a.birthWeightForSize()
	birthConceptus := float64(a.numberFoetuses) * pc[5] * birthWt

	foetalNWt := a.foetalNormWt()
	foetalNGrowth := birthWt * grazMath.DeltaGompertz(float64(a.foetalAge), pc[1], pc[2], pc[3])
	condFactor := (a.bodyCondition - 1.0) * foetalNWt / g.StdBirthWt(a.numberFoetuses)
	if a.bodyCondition >= 1.0 {
		a.foetalWeight += foetalNGrowth * (1.0 + condFactor)
	} else {
		a.foetalWeight += foetalNGrowth * (1.0 + g.PregScale[a.numberFoetuses]*condFactor)
	}
	foetalCondition := grazMath.XDiv(a.foetalWeight, foetalNWt)

	// conceptus weight is a function of foetal age, so look a day ahead
	a.foetalAge++
	st.ConceptusGrowth = a.ConceptusWeight() - prevConceptusWt
	a.foetalAge--

	fa := float64(a.foetalAge)
	st.EnergyUse.Preg = pc[8] * birthConceptus * foetalCondition *
		grazMath.DeltaGompertz(fa, pc[1], pc[9], pc[10]) / st.Efficiency.Preg
	st.ProteinUse.Preg = pc[11] * birthConceptus * foetalCondition *
		grazMath.DeltaGompertz(fa, pc[1], pc[12], pc[13])
}

// computeLactation sets milk production from a Wood curve scaled for the
// mother's size, her condition at birth and the number of young, reduced
// when energy intake cannot support it and capped at what the young drink
func (a *AnimalGroup) computeLactation() {
	g := a.Genotype
	lc := g.LactC
	st := a.AnimalState
	dl := float64(a.daysLactating)

	condFactor := 1.0 - g.IntakeC[15] + g.IntakeC[15]*a.BirthCondition
	var potMilkMJ float64
	if n := a.noSuckling(); n > 0 {
		potMilkMJ = g.PeakLactC[n] * math.Pow(a.stdRefWt, 0.75) * a.relativeSize *
			condFactor * a.lactAdjust * grazMath.Wood(dl+lc[1], lc[2], lc[3])
	} else {
		potMilkMJ = lc[5] * lc[6] * g.PeakMilk *
			condFactor * a.lactAdjust * grazMath.Wood(dl+lc[1], lc[2], lc[4])
	}

	energySurplus := st.MEIntake.Total - st.EnergyUse.Maint - st.EnergyUse.Preg
	availMJ := lc[5] * st.Efficiency.Lact * energySurplus
	availRatio := grazMath.XDiv(availMJ, potMilkMJ)
	availDays := math.Max(dl, availRatio/(2.0*lc[22]))
	maxMilkMJ := potMilkMJ * lc[7] /
		(1.0 + math.Exp(lc[19]-lc[20]*availRatio-
			lc[21]*availDays*(availRatio-lc[22]*availDays)+
			lc[23]*a.bodyCondition*(availRatio-lc[24]*a.bodyCondition)))

	if n := a.noSuckling(); n > 0 {
		milkLimit := lc[6] * float64(n) * math.Pow(a.Young.BaseWeight, 0.75) *
			(lc[12] + lc[13]*math.Exp(-lc[14]*dl))
		a.milkEnergy = math.Min(maxMilkMJ, milkLimit)
		a.propnMaxMilk = a.milkEnergy / milkLimit
	} else {
		a.milkEnergy = maxMilkMJ
		a.propnMaxMilk = 1.0
	}

	st.EnergyUse.Lact = a.milkEnergy / (lc[5] * st.Efficiency.Lact)
	st.ProteinUse.Lact = lc[15] * a.milkEnergy / lc[6]

	// a shortfall late in lactation lowers the rest of the lactation curve
	if dl < lc[16]*lc[2] {
		a.lactAdjust = 1.0
		a.lactationRatio = 1.0
	} else if dayRatio := grazMath.XDiv(a.milkEnergy, potMilkMJ); dayRatio < a.lactationRatio {
		a.lactAdjust -= lc[17] * (a.lactationRatio - dayRatio)
		a.lactationRatio = lc[18]*dayRatio + (1.0-lc[18])*a.lactationRatio
	}
}

// woolAgeFactor scales wool growth up from its value at birth
func (a *AnimalGroup) woolAgeFactor() float64 {
	wc := a.Genotype.WoolC
	return wc[5] + (1.0-wc[5])*(1.0-math.Exp(-wc[12]*float64(a.AgeDays)))
}

// computeWool sets clean wool growth from the ME and DPLS left after
// pregnancy and lactation; dplsAdjust adds protein released from the body
func (a *AnimalGroup) computeWool(dplsAdjust float64) {
	g := a.Genotype
	wc := g.WoolC
	st := a.AnimalState

	ageFactor := a.woolAgeFactor()
	dayLenFactor := 1.0 + wc[6]*(a.weather.DayLength(-6.0)-12.0)
	dplsToCFW := wc[7] * g.FleeceRatio * ageFactor * dayLenFactor
	meToCFW := wc[8] * g.FleeceRatio * ageFactor * dayLenFactor
	st.DPLSAvailWool = grazMath.Dim(st.DPLS+dplsAdjust, wc[9]*(st.ProteinUse.Lact+st.ProteinUse.Preg))
	meAvailWool := grazMath.Dim(st.MEIntake.Total, st.EnergyUse.Lact+st.EnergyUse.Preg)
	dayCFWGain := math.Min(dplsToCFW*st.DPLSAvailWool, meToCFW*meAvailWool)

	// smoothed against yesterday's growth
	st.ProteinUse.Wool = (1.0-wc[4])*(wc[3]*a.greasyFleeceGrow) + wc[4]*dayCFWGain
	st.EnergyUse.Wool = wc[1] * grazMath.Dim(st.ProteinUse.Wool, wc[2]*a.relativeSize) / wc[3]
}

// applyWoolGrowth adds the day's fleece and tracks fibre diameter and coat depth
func (a *AnimalGroup) applyWoolGrowth() error {
	g := a.Genotype
	wc := g.WoolC
	st := a.AnimalState

	a.greasyFleeceGrow = st.ProteinUse.Wool / wc[3]
	a.woolWt += a.greasyFleeceGrow
	st.TotalWoolEnergy = wc[1] * a.greasyFleeceGrow

	potCleanGain := (wc[3] * g.FleeceRatio * a.stdRefWt) * a.woolAgeFactor() / 365.0
	diamPower := wc[13]
	if st.EnergyUse.Gain < 0.0 {
		diamPower = wc[14]
	}
	a.dayFibreDiam = g.MaxFleeceDiam * grazMath.BoundedPow(st.ProteinUse.Wool/potCleanGain, diamPower)
	if a.BaseWeight <= 0.0 {
		return fmt.Errorf("%w for %d %s animals aged %d days", ErrBaseWeight, a.NoAnimals(), a.Breed(), a.AgeDays)
	}

	// the day's growth is treated as a cylinder
	var gainLength float64
	if a.dayFibreDiam > 0.0 {
		gainLength = 100.0 * 4.0 / math.Pi * st.ProteinUse.Wool /
			(wc[10] * wc[11] * g.ChillC[1] * math.Pow(a.BaseWeight, 2.0/3.0) * grazMath.Sqr(a.dayFibreDiam*1e-6))
	}
	a.FibreDiam = grazMath.XDiv(a.coatDepth*a.FibreDiam+gainLength*a.dayFibreDiam, a.coatDepth+gainLength)
	a.coatDepth += gainLength
	return nil
}

var hourSines = [12]float64{0.5, sin60, 1.0, sin60, 0.5, 0.0, -0.5, -sin60, -1.0, -sin60, -0.5, 0.0}

const sin60 = 0.8660254

// computeChilling adds the energy spent keeping warm to maintenance. The day
// is taken in 2-hour blocks from 9 am with sinusoidal temperature and wind.
func (a *AnimalGroup) computeChilling() {
	g := a.Genotype
	cc := g.ChillC
	st := a.AnimalState
	w := a.weather

	st.Therm0HeatProdn = st.MEIntake.Total -
		st.Efficiency.Preg*st.EnergyUse.Preg -
		st.Efficiency.Lact*st.EnergyUse.Lact -
		st.Efficiency.Gain*(st.MEIntake.Total-st.EnergyUse.Maint-st.EnergyUse.Preg-st.EnergyUse.Lact) +
		cc[16]*a.ConceptusWeight()
	surfaceArea := cc[1] * math.Pow(a.BaseWeight, 2.0/3.0)
	bodyRadius := cc[2] * math.Pow(a.normalWeight, 1.0/3.0)

	aveTemp := 0.5 * (w.MaxTemp() + w.MinTemp())
	tempRange := (w.MaxTemp() - w.MinTemp()) / 2.0
	aveWind := 0.4 * w.WindSpeed() // at animal height
	windRange := 0.35 * aveWind
	propnClearSky := 0.7 * math.Exp(-0.25*w.Rainfall())

	// young animals and thin animals are less well insulated
	tissueInsulation := cc[3] * math.Min(1.0, 0.4+0.02*float64(a.AgeDays)) *
		(cc[4] + (1.0-cc[4])*a.bodyCondition)
	factor1 := bodyRadius / (bodyRadius + a.coatDepth)
	factor2 := bodyRadius * math.Log(1.0/factor1)
	wetFactor := cc[5] + (1.0-cc[5])*math.Exp(-cc[6]*grazMath.XDiv(w.Rainfall(), a.coatDepth))
	heatPerArea := st.Therm0HeatProdn / surfaceArea
	lctBase := cc[11] - heatPerArea*tissueInsulation
	factor3 := heatPerArea / (heatPerArea - cc[12])

	st.EnergyUse.Cold = 0.0
	st.LowerCritTemp = 0.0
	for t, sine := range hourSines {
		temp2Hr := aveTemp + tempRange*sine
		wind2Hr := aveWind + windRange*sine

		insulation := wetFactor *
			(factor1/(cc[7]+cc[8]*math.Sqrt(wind2Hr)) + factor2*(cc[9]-cc[10]*math.Sqrt(wind2Hr)))
		lct := lctBase + (cc[12]-heatPerArea)*insulation
		// radiant heat loss on clear nights, 7 pm to 5 am
		if t >= 6 && t <= 10 && temp2Hr > 10.0 {
			lct += propnClearSky * cc[13] * math.Exp(-cc[14]*grazMath.Sqr(grazMath.Dim(temp2Hr, cc[15])))
		}

		energyRate := surfaceArea * grazMath.Dim(lct, temp2Hr) / (factor3*tissueInsulation + insulation)
		st.EnergyUse.Cold += energyRate / 12.0
		st.LowerCritTemp += lct / 12.0
	}
	st.EnergyUse.Maint += st.EnergyUse.Cold
}

// adjustKGain sets the efficiency of energy use for weight change, which
// differs for animals losing weight
func (a *AnimalGroup) adjustKGain() {
	ec := a.Genotype.EfficC
	st := a.AnimalState
	if st.MEIntake.Total < st.EnergyUse.Maint+st.EnergyUse.Preg+st.EnergyUse.Lact {
		if a.lactStatus == grazType.Lactating {
			st.Efficiency.Gain = st.Efficiency.Lact / ec[10]
		} else {
			st.Efficiency.Gain = st.Efficiency.Maint / ec[11]
		}
	} else if a.lactStatus == grazType.Lactating {
		st.Efficiency.Gain = ec[9] * st.Efficiency.Lact
	}
}

// computeGain converts the remaining net energy and protein to weight
// change, with a composition that depends on relative size and condition
func (a *AnimalGroup) computeGain() {
	g := a.Genotype
	gc := g.GainC
	st := a.AnimalState
	sheep := g.Animal == grazType.Sheep

	st.EnergyUse.Gain = st.Efficiency.Gain*(st.MEIntake.Total-(st.EnergyUse.Maint+st.EnergyUse.Preg+st.EnergyUse.Lact)) -
		st.EnergyUse.Wool

	// protein from milk is used more efficiently than from solid feed
	effDPLS := gc[2] / (1.0 + (gc[2]/gc[3]-1.0)*grazMath.XDiv(st.DPLSMilk, st.DPLS))
	dplsUsed := (st.ProteinUse.Maint + st.ProteinUse.Preg + st.ProteinUse.Lact) / effDPLS
	if sheep {
		dplsUsed += st.ProteinUse.Wool / gc[1]
	}
	st.ProteinUse.Gain = effDPLS * (st.DPLS - dplsUsed)

	gainSize := a.normalWeightFunc(a.AgeDays, a.maxPrevWeight, 0.0) / a.stdRefWt
	sizeFactor1 := grazMath.Sig(gainSize, [2]float64{gc[5], gc[4]})
	sizeFactor2 := grazMath.Ramp(gainSize, gc[6], gc[7])

	st.GainEContent = gc[8] - sizeFactor1*(gc[9]-gc[10]*(a.feedingLevel-1.0)) +
		sizeFactor2*gc[11]*(a.bodyCondition-1.0)
	st.GainPContent = gc[12] + sizeFactor1*(gc[13]-gc[14]*(a.feedingLevel-1.0)) -
		sizeFactor2*gc[15]*(a.bodyCondition-1.0)

	st.UDPReqd = grazMath.XDiv(grazMath.Dim(dplsUsed+(st.EnergyUse.Gain/st.GainEContent)*st.GainPContent/effDPLS, st.DPLSMCP),
		st.UDPDig)

	netProtein := st.ProteinUse.Gain - st.GainPContent*st.EnergyUse.Gain/st.GainEContent

	// when protein limits more than energy, protein is redirected from milk
	if netProtein < 0.0 && st.ProteinUse.Lact > grazType.VerySmall {
		milkScalar := math.Max(0.0, 1.0+gc[16]*netProtein/st.ProteinUse.Lact)
		st.EnergyUse.Gain += (1.0 - milkScalar) * a.milkEnergy
		st.ProteinUse.Gain += (1.0 - milkScalar) * st.ProteinUse.Lact
		netProtein = st.ProteinUse.Gain - st.GainPContent*st.EnergyUse.Gain/st.GainEContent

		a.milkEnergy *= milkScalar
		st.EnergyUse.Lact *= milkScalar
		st.ProteinUse.Lact *= milkScalar
	}
	a.milkProtein = st.ProteinUse.Lact
	a.milkYield = a.milkEnergy / (g.LactC[5] * g.LactC[6])

	if netProtein >= 0.0 {
		st.ProteinUse.Gain = st.GainPContent * st.EnergyUse.Gain / st.GainEContent
	} else {
		st.EnergyUse.Gain += gc[17] * st.GainEContent * netProtein / st.GainPContent
	}

	// catabolised protein can go to wool; the extra energy comes out of gain
	if st.ProteinUse.Gain < 0.0 && sheep {
		prevWoolEnergy := st.EnergyUse.Wool
		a.computeWool(math.Abs(st.ProteinUse.Gain))
		st.EnergyUse.Gain -= st.EnergyUse.Wool - prevWoolEnergy
	}

	emptyBodyGain := st.EnergyUse.Gain / st.GainEContent
	a.weightChange = gc[18] * emptyBodyGain
	a.BaseWeight += a.weightChange

	st.ProteinUse.Total = st.ProteinUse.Maint + st.ProteinUse.Gain + st.ProteinUse.Preg +
		st.ProteinUse.Lact + st.ProteinUse.Wool
	st.Urine.Nu[grazType.N] = grazMath.Dim(st.CPIntake.Total/grazType.N2Protein,
		(st.ProteinUse.Total-st.ProteinUse.Maint)/grazType.N2Protein+
			st.OrgFaeces.Nu[grazType.N]+st.InOrgFaeces.Nu[grazType.N]+st.DermalNLoss)
}

// computePhosphorus balances P. Only part of the intake is absorbed, there
// are endogenous losses regardless of intake, and gain tries to hold body P
// at its usual concentration. All P leaves in the faeces.
func (a *AnimalGroup) computePhosphorus() {
	g := a.Genotype
	pc := g.PhosC
	st := a.AnimalState

	availPhos := pc[1]*st.PhosIntake.Solid + pc[2]*st.PhosIntake.Milk
	if a.pregnant() || a.lactStatus == grazType.Lactating {
		st.EndoFaeces.Nu[grazType.P] = pc[11]*st.DMIntake.Total + pc[12]*a.BaseWeight
	} else {
		st.EndoFaeces.Nu[grazType.P] = pc[9]*st.DMIntake.Total + pc[10]*a.BaseWeight
	}

	use := &st.PhosUse
	use.Maint = math.Min(availPhos, st.EndoFaeces.Nu[grazType.P])
	use.Preg = math.Max(pc[4], pc[5]*float64(a.foetalAge)-pc[6]) * st.ConceptusGrowth
	use.Lact = pc[7] * a.milkYield
	use.Wool = pc[8] * a.greasyFleeceGrow
	use.Gain = a.weightChange * (pc[13] + pc[14]*math.Pow(a.stdRefWt/a.BaseWeight, pc[15]))
	use.Gain = math.Min(availPhos-(use.Maint+use.Preg+use.Lact+use.Wool), use.Gain)
	use.Total = use.Maint + use.Preg + use.Lact + use.Wool + use.Gain

	a.basePhosWt += use.Maint + use.Gain - st.EndoFaeces.Nu[grazType.P]
	a.milkPhosProdn = use.Lact

	excretePhos := st.EndoFaeces.Nu[grazType.P] + st.PhosIntake.Total - use.Total
	st.OrgFaeces.Nu[grazType.P] = 0.0
	st.InOrgFaeces.Nu[grazType.P] = excretePhos
	st.Urine.Nu[grazType.P] = 0.0
}

func (a *AnimalGroup) computeSulfur() {
	sc := a.Genotype.SulfC
	st := a.AnimalState

	st.EndoFaeces.Nu[grazType.S] = sc[1] * st.EndoFaeces.Nu[grazType.N]

	use := &st.SulfUse
	use.Maint = st.EndoFaeces.Nu[grazType.S]
	use.Preg = sc[1] * st.ProteinUse.Preg / grazType.N2Protein
	use.Lact = sc[2] * st.ProteinUse.Lact / grazType.N2Protein
	use.Wool = sc[3] * st.ProteinUse.Wool / grazType.N2Protein
	use.Gain = math.Min(sc[1]*st.ProteinUse.Gain/grazType.N2Protein,
		st.SulfIntake.Total-(use.Maint+use.Preg+use.Lact+use.Wool))
	use.Total = use.Maint + use.Preg + use.Lact + use.Wool + use.Gain

	excreteSulf := st.EndoFaeces.Nu[grazType.S] + st.SulfIntake.Total - use.Total
	st.OrgFaeces.Nu[grazType.S] = math.Min(excreteSulf, sc[4]*st.DMIntake.Total)
	st.InOrgFaeces.Nu[grazType.S] = 0.0
	st.Urine.Nu[grazType.S] = excreteSulf - st.OrgFaeces.Nu[grazType.S]

	a.baseSulfWt += use.Gain
	a.milkSulfProdn = use.Lact
}

// computeAshAlk is the proton balance, per head
func (a *AnimalGroup) computeAshAlk() {
	ac := a.Genotype.AshAlkC
	st := a.AnimalState

	intakeMoles := st.PaddockIntake.AshAlkalinity*st.PaddockIntake.Biomass +
		st.SuppIntake.AshAlkalinity*st.SuppIntake.Biomass
	accumMoles := ac[1] * (a.weightChange + st.ConceptusGrowth)
	if a.Genotype.Animal == grazType.Sheep {
		accumMoles += ac[2] * a.greasyFleeceGrow
	}
	st.OrgFaeces.AshAlk = ac[3] * st.OrgFaeces.DM
	st.Urine.AshAlk = intakeMoles - accumMoles - st.OrgFaeces.AshAlk
}
