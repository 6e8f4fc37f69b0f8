// excretion
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
)

// DSERefMEI is the ME intake of one dry sheep equivalent, MJ/d
const DSERefMEI = 8.8

// Excreta geometry, indexed by animal type (sheep, cattle)
var (
	faecesDensity           = [2]float64{1000.0, 1000.0} // kg/m^3
	refNormalWt             = [2]float64{50.0, 600.0}    // kg
	faecesRefLength         = [2]float64{0.012, 0.30}    // m
	faecesPower             = [2]float64{0.0, 1.0 / 3.0}
	faecesWidthToLength     = [2]float64{0.80, 1.00}
	faecesHeightToLength    = [2]float64{0.70, 0.12}
	faecalMoistureHerbageMn = [2]float64{6.0, 7.5} // kg water/kg DM
	faecalMoistureSuppMn    = [2]float64{3.0, 3.0}
	faecalMoistureMax       = [2]float64{0.0, 0.0}
	faecesNO3Propn          = [2]float64{0.25, 0.25}
	urineRefLength          = [2]float64{0.20, 0.60} // m
	urineWidthToLength      = [2]float64{1.00, 1.00}
	urineRefVolume          = [2]float64{0.00015, 0.00200} // m^3
	dailyUrineRefVol        = [2]float64{0.0030, 0.0250}   // m^3/head/d
)

// OrgFaeces is the group's organic faeces for the day, young included
func (a *AnimalGroup) OrgFaeces() grazType.DMPool {
	p := a.AnimalState.OrgFaeces.Multiply(float64(a.NoAnimals()))
	if a.Young != nil {
		p = p.Add(a.Young.OrgFaeces())
	}
	return p
}

func (a *AnimalGroup) InOrgFaeces() grazType.DMPool {
	p := a.AnimalState.InOrgFaeces.Multiply(float64(a.NoAnimals()))
	if a.Young != nil {
		p = p.Add(a.Young.InOrgFaeces())
	}
	return p
}

func (a *AnimalGroup) Urine() grazType.DMPool {
	p := a.AnimalState.Urine.Multiply(float64(a.NoAnimals()))
	if a.Young != nil {
		p = p.Add(a.Young.Urine())
	}
	return p
}

// Excretion describes the group's excreta (not its young's) as numbers of
// ellipsoidal dung and urine patches. Sheep pellets are each a defaecation
// of fixed size; cattle pats scale with the animal.
func (a *AnimalGroup) Excretion() ExcretionInfo {
	st := a.AnimalState
	n := float64(a.NoAnimals())
	k := a.Genotype.Animal
	sizeRatio := a.normalWeight / refNormalWt[k]

	result := ExcretionInfo{
		OrgFaeces:   st.OrgFaeces.Multiply(n),
		InOrgFaeces: st.InOrgFaeces.Multiply(n),
		Urine:       st.Urine.Multiply(n),
	}

	faecalLongAxis := faecesRefLength[k] * math.Pow(sizeRatio, faecesPower[k])
	faecalHeight := faecalLongAxis * faecesHeightToLength[k]

	// faeces are drier off pasture
	suppt := a.RationFed.AverageSuppt()
	moistHerbage := faecalMoistureHerbageMn[k] + (faecalMoistureMax[k]-faecalMoistureHerbageMn[k])*st.Digestibility.Herbage
	moistSupp := faecalMoistureSuppMn[k] + (faecalMoistureMax[k]-faecalMoistureSuppMn[k])*(1.0-suppt.DMPropn)
	faecalFreshWt := st.DMIntake.Herbage*(1.0-st.Digestibility.Herbage)*(1.0+moistHerbage) +
		st.DMIntake.Supp*(1.0-st.Digestibility.Supp)*(1.0+moistSupp)

	result.DefaecationEccentricity = math.Sqrt(1.0 - grazMath.Sqr(faecesWidthToLength[k]))
	result.DefaecationArea = math.Pi / 4.0 * grazMath.Sqr(faecalLongAxis) * faecesWidthToLength[k]
	result.DefaecationVolume = result.DefaecationArea * faecalHeight
	result.Defaecations = n * (faecalFreshWt / faecesDensity[k]) / result.DefaecationVolume
	result.FaecalNO3Propn = faecesNO3Propn[k]

	urineLongAxis := urineRefLength[k] * math.Pow(sizeRatio, 1.0/3.0)
	result.UrinationEccentricity = math.Sqrt(1.0 - grazMath.Sqr(urineWidthToLength[k]))
	result.UrinationArea = math.Pi / 4.0 * grazMath.Sqr(urineLongAxis) * urineWidthToLength[k]
	result.UrinationVolume = urineRefVolume[k] * sizeRatio
	result.Urinations = n * dailyUrineRefVol[k] * sizeRatio / result.UrinationVolume
	return result
}

// DSEs is the group's feed demand in dry sheep equivalents, young included
func (a *AnimalGroup) DSEs() float64 {
	meiPerHead := a.AnimalState.MEIntake.Solid
	if a.Young != nil {
		meiPerHead += float64(a.numberOffspring) * a.Young.AnimalState.MEIntake.Solid
	}
	return float64(a.NoAnimals()) * meiPerHead / DSERefMEI
}

// CleanFleeceWeight is the clean wool that shearing would remove, kg/head
func (a *AnimalGroup) CleanFleeceWeight() float64 {
	return a.FleeceCutWeight() * a.Genotype.WoolC[3]
}

// DeltaCleanFleece is the day's clean wool growth, kg/head
func (a *AnimalGroup) DeltaCleanFleece() float64 {
	return a.greasyFleeceGrow * a.Genotype.WoolC[3]
}

// MaxMilkYield is what the mothers could have produced had the young drunk it all
func (a *AnimalGroup) MaxMilkYield() float64 {
	if a.daysLactating == 0 {
		return 0.0
	}
	return grazMath.XDiv(a.milkYield, a.propnMaxMilk)
}

// MilkVolume is litres of milk per head
func (a *AnimalGroup) MilkVolume() float64 {
	if a.daysLactating == 0 {
		return 0.0
	}
	return grazMath.XDiv(a.milkYield, a.Genotype.LactC[25])
}

// MethaneEnergy is the energy lost as methane, MJ/head/d
func (a *AnimalGroup) MethaneEnergy() float64 {
	mc := a.Genotype.MethC
	st := a.AnimalState
	return mc[1] * st.DMIntake.Solid *
		(mc[2] + mc[3]*st.ME2DM.Solid + (a.feedingLevel+1.0)*(mc[4]-mc[5]*st.ME2DM.Solid))
}

// MethaneWeight is kg of methane per head per day
func (a *AnimalGroup) MethaneWeight() float64 {
	return a.Genotype.MethC[6] * a.MethaneEnergy()
}

// FaecalN, FaecalP and FaecalS are per-head faecal nutrient losses,
// organic plus inorganic
func (a *AnimalGroup) FaecalN() float64 { return a.faecal(grazType.N) }
func (a *AnimalGroup) FaecalP() float64 { return a.faecal(grazType.P) }
func (a *AnimalGroup) FaecalS() float64 { return a.faecal(grazType.S) }

func (a *AnimalGroup) faecal(e grazType.TOMElement) float64 {
	return a.AnimalState.OrgFaeces.Nu[e] + a.AnimalState.InOrgFaeces.Nu[e]
}

// UrineN is per-head urinary N
func (a *AnimalGroup) UrineN() float64 { return a.AnimalState.Urine.Nu[grazType.N] }
