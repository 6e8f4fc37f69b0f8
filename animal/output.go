// animal project output.go
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
	"gonum.org/v1/gonum/floats"

	"github.com/APSIMInitiative/ApsimX-sub000/grazMath"
	"github.com/APSIMInitiative/ApsimX-sub000/grazType"
)

// DietRecord splits a diet quantity by source
type DietRecord struct {
	Herbage float64
	Supp    float64
	Milk    float64
	Solid   float64
	Total   float64
}

// PhysiolRecord splits a quantity by physiological use
type PhysiolRecord struct {
	Maint float64
	Preg  float64
	Lact  float64
	Wool  float64
	Gain  float64
	Metab float64
	Cold  float64
	Total float64
}

// AnimalOutput is one time step's (or, after accumulation, one day's)
// intake and partitioning per head. Intakes exclude grain passing the gut undamaged.
type AnimalOutput struct {
	IntakeLimitLegume float64
	IntakePerHead     grazType.GrazingOutputs

	PaddockIntake grazType.IntakeRecord
	SuppIntake    grazType.IntakeRecord
	DMIntake      DietRecord // kg
	CPIntake      DietRecord
	PhosIntake    DietRecord
	SulfIntake    DietRecord
	MEIntake      DietRecord // MJ
	Digestibility DietRecord
	ProteinConc   DietRecord
	ME2DM         DietRecord
	DietPropn     DietRecord
	CorrDgProt    DietRecord // degradability corrected for passage rate

	MicrobialCP   float64
	DPLS          float64
	DPLSMilk      float64
	DPLSMCP       float64
	DPLSAvailWool float64
	UDPIntake     float64
	UDPDig        float64
	UDPReqd       float64
	RDPIntake     float64
	RDPReqd       float64

	EnergyUse  PhysiolRecord
	ProteinUse PhysiolRecord
	PhosUse    PhysiolRecord
	SulfUse    PhysiolRecord
	Efficiency PhysiolRecord

	EndoFaeces  grazType.DMPool
	OrgFaeces   grazType.DMPool
	InOrgFaeces grazType.DMPool
	Urine       grazType.DMPool

	DermalNLoss     float64
	GainEContent    float64
	GainPContent    float64
	ConceptusGrowth float64
	TotalWoolEnergy float64
	Therm0HeatProdn float64
	LowerCritTemp   float64
	RDPIntakeEffect float64
}

// Copy is a deep copy; the seed intake table is not shared
func (o *AnimalOutput) Copy() *AnimalOutput {
	c := *o
	c.IntakePerHead.Seed = append([][2]float64(nil), o.IntakePerHead.Seed...)
	return &c
}

// HerbageIntake is the herbage removed per head over all digestibility classes
func (o *AnimalOutput) HerbageIntake() float64 {
	return floats.Sum(o.IntakePerHead.Herbage[:])
}

// StateInfo holds the state that Nutrition changes, so a day can be rerun
type StateInfo struct {
	BaseWeight float64
	WoolWt     float64
	WoolMicron float64
	CoatDepth  float64
	FoetalWt   float64
	LactAdjust float64
	LactRatio  float64
	BasePhos   float64
	BaseSulf   float64
}

// DifferenceRecord is the per-head shift applied to a split-off group relative
// to the group it leaves.
type DifferenceRecord struct {
	StdRefWt   float64
	BaseWeight float64
	FleeceWt   float64
}

// NoDiff splits without any weight difference between the two groups
var NoDiff = DifferenceRecord{}

// ExcretionInfo is the faeces and urine of a group with the geometry of
// single defaecation and urination events
type ExcretionInfo struct {
	OrgFaeces   grazType.DMPool
	InOrgFaeces grazType.DMPool
	Urine       grazType.DMPool

	Defaecations            float64
	DefaecationVolume       float64
	DefaecationArea         float64
	DefaecationEccentricity float64
	FaecalNO3Propn          float64
	Urinations              float64
	UrinationVolume         float64
	UrinationArea           float64
	UrinationEccentricity   float64
}

// Accumulation of sub-day time steps into the full-day record

func updateAve(full *float64, fullDenom, ts, tsDenom, dt float64) {
	*full = grazMath.XDiv(*full*fullDenom+ts*(dt*tsDenom), fullDenom+dt*tsDenom)
}

func updateGrazingOutputs(timeStep float64, full *grazType.GrazingOutputs, ts grazType.GrazingOutputs) {
	floats.AddScaled(full.Herbage[:], timeStep, ts.Herbage[:])
	if len(full.Seed) < len(ts.Seed) {
		full.Seed = append(full.Seed, make([][2]float64, len(ts.Seed)-len(full.Seed))...)
	}
	for sp := range ts.Seed {
		for r := grazType.Unripe; r <= grazType.Ripe; r++ {
			full.Seed[sp][r] += timeStep * ts.Seed[sp][r]
		}
	}
}

func updateIntakeRecord(full *grazType.IntakeRecord, ts grazType.IntakeRecord, dt float64) {
	tsMass := dt * ts.Biomass
	full.Digestibility = grazMath.XDiv(full.Digestibility*full.Biomass+ts.Digestibility*tsMass, full.Biomass+tsMass)
	full.Degradability = grazMath.XDiv(full.Degradability*(full.CrudeProtein*full.Biomass)+ts.Degradability*(ts.CrudeProtein*tsMass),
		full.CrudeProtein*full.Biomass+ts.CrudeProtein*tsMass)
	full.CrudeProtein = grazMath.XDiv(full.CrudeProtein*full.Biomass+ts.CrudeProtein*tsMass, full.Biomass+tsMass)
	full.HeightRatio = grazMath.XDiv(full.HeightRatio*full.Biomass+ts.HeightRatio*tsMass, full.Biomass+tsMass)
	full.Biomass += tsMass
}

func updateDietRecord(timeStep float64, suppFullDay bool, full *DietRecord, ts DietRecord) {
	full.Herbage += timeStep * ts.Herbage
	if suppFullDay {
		full.Supp += ts.Supp
	} else {
		full.Supp += timeStep * ts.Supp
	}
	full.Milk += timeStep * ts.Milk
	full.Solid = full.Herbage + full.Supp
	full.Total = full.Solid + full.Milk
}

func updateDietAve(full *DietRecord, fullDenom, ts, tsDenom DietRecord, herbDT, suppDT float64) {
	updateAve(&full.Herbage, fullDenom.Herbage, ts.Herbage, tsDenom.Herbage, herbDT)
	updateAve(&full.Supp, fullDenom.Supp, ts.Supp, tsDenom.Supp, suppDT)
}

// accumulate folds a time step of length timeStep (days) into the day's record
func (o *AnimalOutput) accumulate(ts *AnimalOutput, timeStep float64, suppFullDay bool) {
	suppTS := timeStep
	if suppFullDay {
		suppTS = 1.0
	}

	updateGrazingOutputs(timeStep, &o.IntakePerHead, ts.IntakePerHead)
	updateIntakeRecord(&o.PaddockIntake, ts.PaddockIntake, timeStep)
	updateIntakeRecord(&o.SuppIntake, ts.SuppIntake, suppTS)

	// averages weighted by intake come before the intakes themselves are cumulated
	updateDietAve(&o.Digestibility, o.DMIntake, ts.Digestibility, ts.DMIntake, timeStep, suppTS)
	updateDietAve(&o.ProteinConc, o.DMIntake, ts.ProteinConc, ts.DMIntake, timeStep, suppTS)
	updateDietAve(&o.ME2DM, o.DMIntake, ts.ME2DM, ts.DMIntake, timeStep, suppTS)
	updateDietAve(&o.CorrDgProt, o.CPIntake, ts.CorrDgProt, ts.CPIntake, timeStep, suppTS)

	updateDietRecord(timeStep, suppFullDay, &o.CPIntake, ts.CPIntake)
	updateDietRecord(timeStep, suppFullDay, &o.MEIntake, ts.MEIntake)
	updateDietRecord(timeStep, suppFullDay, &o.DMIntake, ts.DMIntake)
	updateDietRecord(timeStep, suppFullDay, &o.PhosIntake, ts.PhosIntake)
	updateDietRecord(timeStep, suppFullDay, &o.SulfIntake, ts.SulfIntake)

	o.Digestibility.Solid = grazMath.XDiv(o.Digestibility.Supp*o.DMIntake.Supp+o.Digestibility.Herbage*o.DMIntake.Herbage, o.DMIntake.Solid)
	o.ProteinConc.Solid = grazMath.XDiv(o.CPIntake.Solid, o.DMIntake.Solid)
	o.ME2DM.Solid = grazMath.XDiv(o.MEIntake.Solid, o.DMIntake.Solid)
}
