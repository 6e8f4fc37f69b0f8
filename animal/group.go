// animal project group.go
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

	"github.com/APSIMInitiative/ApsimX-sub000/ageList"
	"github.com/APSIMInitiative/ApsimX-sub000/grazMath"
	"github.com/APSIMInitiative/ApsimX-sub000/grazType"
	"github.com/APSIMInitiative/ApsimX-sub000/supplement"
)

const (
	latePregLength = 42  // days before birth at which late pregnancy starts
	stubbleMM      = 0.5 // wool left after shearing, mm
)

// AnimalGroup is a cohort of animals alike enough to share one set of state
// variables. A lactating group owns its suckling Young; the young hold a
// reference back to their mothers that only Split, Merge, Wean and
// SetLactation maintain.
type AnimalGroup struct {
	Genotype *Genotype // private to this group

	MaleNo   int
	FemaleNo int
	AgeDays  int // mean age

	BaseWeight     float64 // kg, excluding conceptus and fleece
	FibreDiam      float64 // microns
	BirthCondition float64 // body condition at the last birth
	Deaths         int     // deaths in the most recent Age

	Young       *AnimalGroup
	AnimalState *AnimalOutput // the day's intake and partitioning per head

	PotIntake      float64 // potential intake, kg DM/head/d
	IntakeModifier float64

	Herbage        grazType.GrazingInputs
	RationFed      *supplement.Ration
	PaddSteep      float64 // 1 = flat, 2 = steep
	WaterLogging   float64 // 0-1
	AnimalsPerHa   float64
	DistanceWalked float64 // km/d outside of grazing

	ages             *ageList.AgeList
	reproState       grazType.ReproType
	lactStatus       grazType.LactType
	matedTo          *Genotype
	mothers          *AnimalGroup
	stdRefWt         float64
	relativeSize     float64
	bodyCondition    float64
	normalWeight     float64
	maxPrevWeight    float64
	birthWeight      float64
	totalWeight      float64
	woolWt           float64
	coatDepth        float64
	weightChange     float64
	greasyFleeceGrow float64
	dayFibreDiam     float64

	numberFoetuses    int
	numberOffspring   int
	previousOffspring int
	mateCycle         int
	daysToMate        int
	foetalAge         int
	foetalWeight      float64
	midLatePregWeight float64

	daysLactating  int
	milkYield      float64
	milkEnergy     float64
	milkProtein    float64
	milkPhosProdn  float64
	milkSulfProdn  float64
	propnMaxMilk   float64
	lactAdjust     float64
	lactationRatio float64
	dryOffTime     float64

	basePhosWt         float64
	baseSulfWt         float64
	feedingLevel       float64
	startFU            float64
	baseWtGainSolid    float64
	chillIndex         float64
	chillIndexSet      bool
	netSupplementDMI   []float64
	tsNetSupplementDMI []float64
	suppFWIntake       float64
	intakeSupplement   supplement.Supplement
	timeStepState      *AnimalOutput

	weather Weather
	clock   Clock
	rnd     RandomSource
}

// NewAnimalGroup creates a group of number animals of one sex. Only Male and
// Castrated are taken from repro; every other value gives empty females.
// liveWt includes the fleece and gfw is the greasy fleece weight.
func NewAnimalGroup(g *Genotype, repro grazType.ReproType, number, ageDays int,
	liveWt, gfw float64, rnd RandomSource, w Weather, c Clock) (*AnimalGroup, error) {

	if g == nil {
		return nil, fmt.Errorf("animal group needs a genotype")
	}
	if number < 0 {
		return nil, fmt.Errorf("%w: cannot create a group of %d animals", ErrSplitCount, number)
	}
	if liveWt <= 0.0 {
		return nil, fmt.Errorf("live weight must be positive for a %s group, got %g", g.Name, liveWt)
	}
	gc := *g
	a := construct(&gc, repro, number, ageDays, liveWt, gfw, rnd, w, c)
	return a, nil
}

func construct(g *Genotype, repro grazType.ReproType, number, ageDays int,
	liveWt, gfw float64, rnd RandomSource, w Weather, c Clock) *AnimalGroup {

	a := &AnimalGroup{
		Genotype:      g,
		AnimalState:   &AnimalOutput{},
		timeStepState: &AnimalOutput{},
		RationFed:     &supplement.Ration{},
		PaddSteep:     1.0,
		rnd:           rnd,
		weather:       w,
		clock:         c,
	}
	if repro == grazType.Male || repro == grazType.Castrated {
		a.reproState = repro
		a.MaleNo = number
	} else {
		a.reproState = grazType.Empty
		a.FemaleNo = number
	}
	a.computeSRW()
	a.IntakeModifier = 1.0
	a.AgeDays = ageDays
	a.ages = ageList.NewAgeList(rnd)
	a.ages.Input(ageDays, a.MaleNo, a.FemaleNo)

	a.mateCycle = -1
	a.SetLiveWeight(liveWt)
	a.birthWeight = math.Min(g.StdBirthWt(1), a.BaseWeight)
	a.CalculateWeights()
	if g.Animal == grazType.Sheep {
		a.FibreDiam = g.MaxFleeceDiam
		a.SetFleeceCutWeight(gfw)
		ageFactor := g.WoolC[5] + (1.0-g.WoolC[5])*(1.0-math.Exp(-g.WoolC[12]*float64(a.AgeDays)))
		a.greasyFleeceGrow = g.FleeceRatio * a.stdRefWt * ageFactor / 365.0
	}
	a.calculateCoatDepth()
	a.totalWeight = a.BaseWeight + a.woolWt

	if a.AgeClass() == grazType.Mature {
		a.SetMaxPrevWeight(math.Max(a.stdRefWt, a.BaseWeight))
	} else {
		a.SetMaxPrevWeight(a.BaseWeight)
	}
	a.BirthCondition = a.bodyCondition
	a.propnMaxMilk = 1.0
	a.lactAdjust = 1.0
	a.basePhosWt = a.BaseWeight * g.PhosC[9]
	a.baseSulfWt = a.BaseWeight * g.GainC[12] / grazType.N2Protein * g.SulfC[1]
	return a
}

// newYoungGroup creates the suckling offspring of a lactating group
func newYoungGroup(parents *AnimalGroup, liveWt float64) *AnimalGroup {
	number := parents.numberOffspring * parents.FemaleNo
	ageDays := parents.daysLactating
	g := *parents.Genotype
	woolWt := 0.5 * (g.DefaultFleece(ageDays, grazType.Male, ageDays) + g.DefaultFleece(ageDays, grazType.Empty, ageDays))

	y := construct(&g, grazType.Male, number, ageDays, liveWt, woolWt, parents.rnd, parents.weather, parents.clock)
	y.MaleNo = number / 2
	y.FemaleNo = number - y.MaleNo
	y.ages = ageList.NewAgeList(parents.rnd)
	y.ages.Input(ageDays, y.MaleNo, y.FemaleNo)
	y.lactStatus = grazType.Suckling
	y.numberOffspring = parents.numberOffspring
	y.mothers = parents
	y.computeSRW()
	y.CalculateWeights()
	return y
}

// Copy is a deep copy. The copy's Young point back at the copy; the copy
// shares the random stream and environment with the original.
func (a *AnimalGroup) Copy() *AnimalGroup {
	c := *a
	g := *a.Genotype
	c.Genotype = &g
	if a.matedTo != nil {
		m := *a.matedTo
		c.matedTo = &m
	}
	c.ages = a.ages.Copy()
	c.AnimalState = a.AnimalState.Copy()
	c.timeStepState = a.timeStepState.Copy()
	c.RationFed = a.RationFed.Copy()
	if c.RationFed == nil {
		c.RationFed = &supplement.Ration{}
	}
	c.Herbage = a.Herbage.Copy()
	c.netSupplementDMI = append([]float64(nil), a.netSupplementDMI...)
	c.tsNetSupplementDMI = append([]float64(nil), a.tsNetSupplementDMI...)
	if a.Young != nil {
		c.Young = a.Young.Copy()
		c.Young.mothers = &c
	}
	return &c
}

// SetEnvironment supplies the day's weather and date to the group and its young
func (a *AnimalGroup) SetEnvironment(w Weather, c Clock) {
	a.weather = w
	a.clock = c
	if a.Young != nil {
		a.Young.SetEnvironment(w, c)
	}
}

// Read-only state

func (a *AnimalGroup) NoAnimals() int                 { return a.MaleNo + a.FemaleNo }
func (a *AnimalGroup) Animal() grazType.AnimalType    { return a.Genotype.Animal }
func (a *AnimalGroup) Breed() string                  { return a.Genotype.Name }
func (a *AnimalGroup) ReproState() grazType.ReproType { return a.reproState }
func (a *AnimalGroup) LactStatus() grazType.LactType  { return a.lactStatus }
func (a *AnimalGroup) StdRefWt() float64              { return a.stdRefWt }
func (a *AnimalGroup) RelativeSize() float64          { return a.relativeSize }
func (a *AnimalGroup) BodyCondition() float64         { return a.bodyCondition }
func (a *AnimalGroup) NormalWeight() float64          { return a.normalWeight }
func (a *AnimalGroup) WeightChange() float64          { return a.weightChange }
func (a *AnimalGroup) LiveWeight() float64            { return a.totalWeight }
func (a *AnimalGroup) WoolWeight() float64            { return a.woolWt }
func (a *AnimalGroup) CoatDepth() float64             { return a.coatDepth }
func (a *AnimalGroup) MaxPrevWeight() float64         { return a.maxPrevWeight }
func (a *AnimalGroup) Pregnancy() int                 { return a.foetalAge }
func (a *AnimalGroup) Lactation() int                 { return a.daysLactating }
func (a *AnimalGroup) NoFoetuses() int                { return a.numberFoetuses }
func (a *AnimalGroup) NoOffspring() int               { return a.numberOffspring }
func (a *AnimalGroup) FoetalWeight() float64          { return a.foetalWeight }
func (a *AnimalGroup) MilkYield() float64             { return a.milkYield }
func (a *AnimalGroup) MilkEnergy() float64            { return a.milkEnergy }
func (a *AnimalGroup) MilkProtein() float64           { return a.milkProtein }
func (a *AnimalGroup) GreasyFleeceGrowth() float64    { return a.greasyFleeceGrow }
func (a *AnimalGroup) DayFibreDiam() float64          { return a.dayFibreDiam }
func (a *AnimalGroup) MatedTo() *Genotype             { return a.matedTo }

// Mothers is the group suckling these young, nil for weaned animals
func (a *AnimalGroup) Mothers() *AnimalGroup { return a.mothers }

// Ages lists the age cohorts, youngest first
func (a *AnimalGroup) Ages() []ageList.Element { return a.ages.Elements() }

// GetOlder counts the animals at least ageDays old
func (a *AnimalGroup) GetOlder(ageDays int) (numMale, numFemale int) {
	return a.ages.GetOlder(ageDays)
}

// SupplementFreshWeightIntake is the day's supplement eaten, kg fresh weight/head
func (a *AnimalGroup) SupplementFreshWeightIntake() float64 { return a.suppFWIntake }

// IntakeSupplement is the ration averaged over its items, as last eaten
func (a *AnimalGroup) IntakeSupplement() supplement.Supplement { return a.intakeSupplement }

// EmptyShornWeight is the base weight plus the wool left after shearing
func (a *AnimalGroup) EmptyShornWeight() float64 {
	return a.BaseWeight + a.coatDepth2Wool(stubbleMM)
}

func (a *AnimalGroup) SetEmptyShornWeight(w float64) {
	a.BaseWeight = w - a.coatDepth2Wool(stubbleMM)
	a.CalculateWeights()
}

// FleeceCutWeight is the greasy fleece that shearing would remove
func (a *AnimalGroup) FleeceCutWeight() float64 {
	return grazMath.Dim(a.woolWt, a.coatDepth2Wool(stubbleMM))
}

func (a *AnimalGroup) AgeClass() grazType.AgeType {
	classes := [2][4]grazType.AgeType{
		{grazType.Weaner, grazType.Yearling, grazType.Mature, grazType.Mature},
		{grazType.Weaner, grazType.Yearling, grazType.TwoYrOld, grazType.Mature},
	}
	if a.mothers != nil || a.lactStatus == grazType.Suckling {
		return grazType.LambCalf
	}
	yr := a.AgeDays / 365
	if yr > 3 {
		yr = 3
	}
	return classes[a.Genotype.Animal][yr]
}

// Setters that keep the derived weights in step

// SetNoAnimals changes the head count, keeping the age structure
func (a *AnimalGroup) SetNoAnimals(count int) {
	switch {
	case a.mothers != nil:
		a.MaleNo = count / 2
		a.FemaleNo = count - a.MaleNo
	case a.reproState == grazType.Male || a.reproState == grazType.Castrated:
		a.MaleNo = count
		a.FemaleNo = 0
	default:
		a.MaleNo = 0
		a.FemaleNo = count
	}
	if a.ages.Count() == 0 {
		a.ages.Input(a.AgeDays, a.MaleNo, a.FemaleNo)
	} else {
		a.ages.Resize(a.MaleNo, a.FemaleNo)
	}
}

// SetLiveWeight sets the weight on the scales; the base weight takes up the difference
func (a *AnimalGroup) SetLiveWeight(liveWt float64) {
	a.BaseWeight = liveWt - a.ConceptusWeight() - a.woolWt
	a.totalWeight = liveWt
	a.CalculateWeights()
}

func (a *AnimalGroup) SetFleeceCutWeight(gfw float64) {
	a.SetWoolWeight(a.coatDepth2Wool(stubbleMM) + math.Max(gfw, 0.0))
}

func (a *AnimalGroup) SetWoolWeight(w float64) {
	a.woolWt = w
	a.BaseWeight = a.totalWeight - a.ConceptusWeight() - a.woolWt
	a.CalculateWeights()
}

func (a *AnimalGroup) SetMaxPrevWeight(w float64) {
	a.maxPrevWeight = w
	a.CalculateWeights()
}

func (a *AnimalGroup) SetCoatDepth(depth float64) {
	a.coatDepth = depth
	a.SetWoolWeight(a.coatDepth2Wool(depth))
}

func (a *AnimalGroup) SetMatedTo(g *Genotype) {
	if g == nil {
		a.matedTo = nil
		return
	}
	m := *g
	a.matedTo = &m
}

// SetPregnancy sets days since conception. The foetal weight is estimated
// from body condition while the live weight is held constant. Zero ends a
// pregnancy without restoring the conceptus to the base weight.
func (a *AnimalGroup) SetPregnancy(p int) {
	if p == a.foetalAge {
		return
	}
	if p == 0 {
		a.reproState = grazType.Empty
		a.foetalAge = 0
		a.foetalWeight = 0.0
		a.midLatePregWeight = 0.0
		a.SetNoFoetuses(0)
		a.mateCycle = -1
		return
	}

	oldLiveWt := a.totalWeight
	if p >= a.Genotype.Gestation()-latePregLength {
		a.reproState = grazType.LatePreg
	} else {
		a.reproState = grazType.EarlyPreg
	}
	a.foetalAge = p
	if a.numberFoetuses == 0 {
		a.SetNoFoetuses(1)
	}
	a.mateCycle = -1
	a.daysToMate = 0
	for i := 0; i < 3; i++ {
		condFactor := (a.bodyCondition - 1.0) * a.foetalNormWt() / a.Genotype.StdBirthWt(a.numberFoetuses)
		if a.bodyCondition >= 1.0 {
			a.foetalWeight = a.foetalNormWt() * (1.0 + condFactor)
		} else {
			a.foetalWeight = a.foetalNormWt() * (1.0 + a.Genotype.PregScale[a.numberFoetuses]*condFactor)
		}
		a.SetLiveWeight(oldLiveWt)
	}
	if p >= a.Genotype.Gestation()-latePregLength/2 {
		a.midLatePregWeight = a.BaseWeight
	}
}

// SetLactation sets days since parturition. A non-zero value for a dry group
// creates a new cohort of suckling young; zero dries the group off.
func (a *AnimalGroup) SetLactation(l int) {
	if l == a.daysLactating {
		return
	}
	if l == 0 {
		a.lactStatus = grazType.Dry
		if a.Young == nil {
			a.setDryOffTime(a.daysLactating, 0, a.previousOffspring)
		} else {
			// self-weaning: the young stay with their mothers but stop suckling
			a.setDryOffTime(a.daysLactating, 0, a.numberOffspring)
			a.Young.lactStatus = grazType.Dry
		}
		a.daysLactating = 0
	} else {
		a.lactStatus = grazType.Lactating
		if a.numberOffspring == 0 {
			a.SetNoOffspring(1)
		}
		a.BirthCondition = a.bodyCondition
		a.daysLactating = l
		a.dryOffTime = 0.0
		a.lactAdjust = 1.0
		a.propnMaxMilk = 1.0
		a.previousOffspring = 0
		a.Young = newYoungGroup(a, 0.5*(a.Genotype.GrowthCurve(l, grazType.Male)+a.Genotype.GrowthCurve(l, grazType.Empty)))
	}
	a.milkEnergy = 0.0
	a.milkProtein = 0.0
	a.milkYield = 0.0
	a.lactationRatio = 1.0
}

func (a *AnimalGroup) SetNoFoetuses(n int) {
	if n == 0 {
		a.SetPregnancy(0)
		a.numberFoetuses = 0
	} else if n <= a.Genotype.MaxYoung && n != a.numberFoetuses {
		daysPreg := a.foetalAge
		a.SetPregnancy(0)
		a.numberFoetuses = n
		a.SetPregnancy(daysPreg)
	}
}

// SetNoOffspring changes the litter size, recreating the young at the same
// stage of lactation
func (a *AnimalGroup) SetNoOffspring(n int) {
	if n == a.numberOffspring {
		return
	}
	daysLact := a.daysLactating
	a.SetLactation(0)
	a.Young = nil
	a.numberOffspring = n
	if n > 0 && n <= a.Genotype.MaxYoung {
		a.SetLactation(daysLact)
	}
}

// SetConditionScore sets the base weight from a condition score
func (a *AnimalGroup) SetConditionScore(score float64, system CondSystem) {
	a.BaseWeight = a.normalWeight * CondScore2Condition(score, system)
	a.CalculateWeights()
}

func (a *AnimalGroup) ConditionScore(system CondSystem) float64 {
	return Condition2CondScore(a.bodyCondition, system)
}

// SetConditionAtWeight chooses the highest previous weight that gives the
// current base weight the requested body condition
func (a *AnimalGroup) SetConditionAtWeight(bodyCondition float64) {
	maxNormWt := maxNormWt(a.stdRefWt, a.birthWeight, a.AgeDays, a.Genotype)
	var newMaxPrev float64
	if a.BaseWeight >= maxNormWt {
		newMaxPrev = a.BaseWeight
	} else {
		newMaxPrev = (a.BaseWeight - bodyCondition*a.Genotype.GrowthC[3]*maxNormWt) /
			(bodyCondition * (1.0 - a.Genotype.GrowthC[3]))
		newMaxPrev = math.Max(a.BaseWeight, math.Min(newMaxPrev, maxNormWt))
	}
	a.SetMaxPrevWeight(newMaxPrev)
}

// WeightRangeForCond gives the base weights at which an animal of the given
// age has the body condition bodyCond: high if it has never been stunted, low
// if it is at its highest weight to date.
func WeightRangeForCond(repro grazType.ReproType, ageDays int, bodyCond float64, g *Genotype) (lowBaseWt, highBaseWt float64) {
	maxNormWt := g.GrowthCurve(ageDays, repro)
	highBaseWt = bodyCond * maxNormWt
	if bodyCond >= 1.0 {
		lowBaseWt = highBaseWt
	} else {
		lowBaseWt = highBaseWt * g.GrowthC[3] / (1.0 - bodyCond*(1.0-g.GrowthC[3]))
	}
	return lowBaseWt, highBaseWt
}

// Management events

// Join starts mating of an empty, mature-enough female group for matingPeriod days
func (a *AnimalGroup) Join(male *Genotype, matingPeriod int) error {
	if a.reproState != grazType.Empty || a.AgeDays <= a.Genotype.Puberty[0] {
		return nil
	}
	if male.Animal != a.Genotype.Animal {
		return fmt.Errorf("%w: female %s with male %s", ErrSpeciesMismatch, a.Genotype.Animal, male.Animal)
	}
	a.SetMatedTo(male)
	a.daysToMate = matingPeriod
	if a.daysToMate > 0 {
		a.mateCycle = a.Genotype.OvulationPeriod / 2
	} else {
		a.mateCycle = -1
	}
	return nil
}

// Shear removes the fleece and returns the clean fleece weight per head
func (a *AnimalGroup) Shear(shearAdults, shearYoung bool) float64 {
	var cfw float64
	if shearAdults {
		greasy := a.FleeceCutWeight()
		a.woolWt -= greasy
		a.totalWeight -= greasy
		a.calculateCoatDepth()
		cfw = a.Genotype.WoolC[3] * greasy
	}
	if shearYoung && a.Young != nil {
		cfw += a.Young.Shear(true, false)
	}
	return cfw
}

// DryOff ends lactation in a group with no young at foot
func (a *AnimalGroup) DryOff() {
	if a.Young == nil && a.lactStatus == grazType.Lactating {
		a.SetLactation(0)
	}
}

func (a *AnimalGroup) Castrate() {
	if a.reproState == grazType.Male {
		a.reproState = grazType.Castrated
		a.computeSRW()
		a.CalculateWeights()
	}
}

// Weights and sizes

// computeSRW weights the breed SRW by the sex ratio
func (a *AnimalGroup) computeSRW() {
	srw := a.Genotype.BreedSRW
	if a.MaleNo == 0 {
		a.stdRefWt = srw
		return
	}
	scalar := 1.0
	if a.reproState == grazType.Castrated || a.reproState == grazType.Male {
		scalar = a.Genotype.SRWScalars[a.reproState]
	}
	a.stdRefWt = srw * grazMath.XDiv(float64(a.FemaleNo)+float64(a.MaleNo)*scalar, float64(a.FemaleNo+a.MaleNo))
}

func (a *AnimalGroup) birthWeightForSize() float64 {
	return a.Genotype.StdBirthWt(a.numberFoetuses) * ((1.0 - a.Genotype.PregC[4]) + a.Genotype.PregC[4]*a.relativeSize)
}

func (a *AnimalGroup) pregnant() bool {
	return a.reproState == grazType.EarlyPreg || a.reproState == grazType.LatePreg
}

func (a *AnimalGroup) foetalNormWt() float64 {
	if !a.pregnant() {
		return 0.0
	}
	p := a.Genotype.PregC
	return a.birthWeightForSize() * grazMath.Gompertz(float64(a.foetalAge), p[1], p[2], p[3])
}

// ConceptusWeight is the weight of the foetuses and their membranes per head
func (a *AnimalGroup) ConceptusWeight() float64 {
	if !a.pregnant() {
		return 0.0
	}
	p := a.Genotype.PregC
	return float64(a.numberFoetuses) *
		(p[5]*a.birthWeightForSize()*grazMath.Gompertz(float64(a.foetalAge), p[1], p[6], p[7]) +
			a.foetalWeight - a.foetalNormWt())
}

// normalWeightFunc is the normal weight allowing for delayed development of
// frame size in animals that have been held below their potential
func (a *AnimalGroup) normalWeightFunc(ageDays int, maxOldWt, weighting float64) float64 {
	maxNorm := maxNormWt(a.stdRefWt, a.birthWeight, ageDays, a.Genotype)
	if maxOldWt < maxNorm {
		return weighting*maxNorm + (1.0-weighting)*maxOldWt
	}
	return maxNorm
}

// CalculateWeights recomputes normal weight, relative size and body condition
func (a *AnimalGroup) CalculateWeights() {
	a.maxPrevWeight = math.Max(a.BaseWeight, a.maxPrevWeight)
	a.normalWeight = a.normalWeightFunc(a.AgeDays, a.maxPrevWeight, a.Genotype.GrowthC[3])
	a.relativeSize = a.normalWeight / a.stdRefWt
	a.bodyCondition = a.BaseWeight / a.normalWeight
}

func (a *AnimalGroup) calculateCoatDepth() {
	if a.Genotype.Animal == grazType.Cattle {
		a.coatDepth = 1.0
		return
	}
	g := a.Genotype
	fibreCount := g.WoolC[11] * g.ChillC[1] * math.Pow(a.normalWeight, 2.0/3.0)
	fibreArea := math.Pi / 4.0 * grazMath.Sqr(a.FibreDiam*1e-6)
	a.coatDepth = 100.0 * g.WoolC[3] * a.woolWt / (fibreCount * g.WoolC[10] * fibreArea)
}

func (a *AnimalGroup) coatDepth2Wool(depth float64) float64 {
	if a.Genotype.Animal != grazType.Sheep {
		return 0.0
	}
	g := a.Genotype
	fibreCount := g.WoolC[11] * g.ChillC[1] * math.Pow(a.normalWeight, 2.0/3.0)
	fibreArea := math.Pi / 4.0 * grazMath.Sqr(a.FibreDiam*1e-6)
	return (fibreCount * g.WoolC[10] * fibreArea) * depth / (100.0 * g.WoolC[3])
}

// setDryOffTime sets the time on the Wood curve that gives the lactation
// intake boost remaining after dry-off
func (a *AnimalGroup) setDryOffTime(daysSinceBirth, daysSinceDryoff, prevSuckling int) {
	a.previousOffspring = prevSuckling
	lactLength := float64(daysSinceBirth - daysSinceDryoff)
	ic := a.Genotype.IntakeC
	switch {
	case a.lactStatus != grazType.Dry || lactLength <= 0:
		a.dryOffTime = 0.0
	case lactLength >= ic[8]:
		a.dryOffTime = lactLength + ic[19]*float64(daysSinceDryoff)
	default:
		wood := grazMath.Wood(lactLength, ic[8], ic[9])
		lactLength = grazMath.InverseWood(wood, ic[8], ic[9], true)
		a.dryOffTime = lactLength + ic[19]*float64(daysSinceDryoff)
	}
}

// noSuckling is the number of young per mother still taking milk
func (a *AnimalGroup) noSuckling() int {
	if a.Young != nil && a.Young.lactStatus == grazType.Suckling {
		return a.numberOffspring
	}
	return 0
}
