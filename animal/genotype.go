// genotype
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
	"os"
	"sort"
	"strings"

	hjson "github.com/hjson/hjson-go"

	"github.com/APSIMInitiative/ApsimX-sub000/grazType"
)

// Genotype holds the parameters of a breed. The coefficient vectors keep
// their published numbering: element 0 is unused unless noted.
type Genotype struct {
	Name   string
	Animal grazType.AnimalType

	BreedSRW    float64 // standard reference weight of a mature female (kg)
	PotFleeceWt float64 // derived
	PeakMilk    float64 // kg/d for dairy-style lactation without young
	MaxYoung    int     // derived from BirthWtScale

	SRWScalars    [2]float64 // indexed by Castrated, Male
	FleeceRatio   float64
	MaxFleeceDiam float64 // microns
	DairyBreed    bool

	MortRate      [3]float64 // [1] adult, [2] young; daily
	MortAge       [3]float64 // days
	MortIntensity float64
	MortCondConst float64
	MortWtDiff    float64

	GrowthC      [5]float64
	IntakeC      [22]float64
	IntakeLactC  [4]float64 // indexed by number of young
	GrazeC       [21]float64
	EfficC       [17]float64
	MaintC       [18]float64
	DgProtC      [9]float64
	ProtC        [10]float64
	PregC        [14]float64
	PregScale    [4]float64
	BirthWtScale [4]float64
	PeakLactC    [4]float64
	LactC        [26]float64
	WoolC        [15]float64
	ChillC       [17]float64
	GainC        [19]float64
	PhosC        [16]float64
	SulfC        [5]float64
	MethC        [8]float64
	AshAlkC      [4]float64

	OvulationPeriod int
	Puberty         [2]int // [0] females, [1] males
	DayLengthConst  [4]float64
	ConceiveSigs    [4][2]float64 // midpoint and slope, by litter size
	FertWtDiff      float64
	ToxaemiaSigs    [2]float64
	DystokiaSigs    [2]float64
	ExposureConsts  [4]float64
	SelfWeanPropn   float64
}

// CondSystem is a body condition scoring scale
type CondSystem int

const (
	Cond1to5 CondSystem = iota
	Cond0to5
	Cond1to8
)

var baseScore = [3]float64{3.0, 4.0, 4.5} // condition score at condition 1.0
var scoreUnit = [3]float64{0.15, 0.09, 0.08}

func CondScore2Condition(score float64, system CondSystem) float64 {
	return 1.0 + (score-baseScore[system])*scoreUnit[system]
}

func Condition2CondScore(condition float64, system CondSystem) float64 {
	return baseScore[system] + (condition-1.0)/scoreUnit[system]
}

// Gestation length in days
func (g *Genotype) Gestation() int {
	return int(math.Round(g.PregC[1]))
}

// SexStdRefWt scales the breed SRW for entire and castrated males
func (g *Genotype) SexStdRefWt(repro grazType.ReproType) float64 {
	if repro == grazType.Castrated || repro == grazType.Male {
		return g.SRWScalars[repro] * g.BreedSRW
	}
	return g.BreedSRW
}

func (g *Genotype) StdBirthWt(noYoung int) float64 {
	return g.BreedSRW * g.BirthWtScale[noYoung]
}

// DefaultFleece is the expected greasy fleece of an animal shorn fleeceDays ago
func (g *Genotype) DefaultFleece(ageDays int, repro grazType.ReproType, fleeceDays int) float64 {
	if fleeceDays > ageDays {
		fleeceDays = ageDays
	}
	if g.Animal != grazType.Sheep || fleeceDays <= 0 {
		return 0.0
	}
	meanAgeFactor := 1.0 - (1.0-g.WoolC[5])*
		(math.Exp(-g.WoolC[12]*float64(ageDays-fleeceDays))-math.Exp(-g.WoolC[12]*float64(ageDays)))/
		(g.WoolC[12]*float64(fleeceDays))
	return g.FleeceRatio * g.SexStdRefWt(repro) * meanAgeFactor * float64(fleeceDays) / 365.0
}

// DefaultMicron is the fibre diameter expected for a fleece of weight gfw
func (g *Genotype) DefaultMicron(ageDays int, repro grazType.ReproType, fleeceDays int, gfw float64) float64 {
	if fleeceDays > 0 && gfw > 0.0 {
		pot := g.DefaultFleece(ageDays, repro, fleeceDays)
		if pot > 0.0 {
			return g.MaxFleeceDiam * math.Pow(gfw/pot, g.WoolC[13])
		}
	}
	return g.MaxFleeceDiam
}

// derive fills in the values that follow from the others
func (g *Genotype) derive() {
	g.MaxYoung = 1
	for g.MaxYoung < 3 && g.BirthWtScale[g.MaxYoung+1] > 0.0 {
		g.MaxYoung++
	}
	g.PotFleeceWt = g.BreedSRW * g.FleeceRatio
	if g.Animal == grazType.Cattle || g.PeakMilk == 0.0 {
		g.PeakMilk = g.IntakeC[11] * g.BreedSRW
	}
	if g.GrazeC[20] == 0.0 {
		g.GrazeC[20] = 11.5
	}
}

// maxNormWt is the normal weight of a never-stunted animal
func maxNormWt(srw, bw float64, ageDays int, g *Genotype) float64 {
	growthRate := g.GrowthC[1] / math.Pow(srw, g.GrowthC[2])
	return srw - (srw-bw)*math.Exp(-growthRate*float64(ageDays))
}

// GrowthCurve is the standard normal weight at an age
func (g *Genotype) GrowthCurve(ageDays int, repro grazType.ReproType) float64 {
	return maxNormWt(g.SexStdRefWt(repro), g.StdBirthWt(1), ageDays, g)
}

// Genotypes is a name-indexed set of breeds
type Genotypes map[string]*Genotype

// Get finds a genotype by name, ignoring case. The result is a private copy.
func (gs Genotypes) Get(name string) (*Genotype, bool) {
	g, ok := gs[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	c := *g
	return &c, true
}

func (gs Genotypes) Names() []string {
	names := make([]string, 0, len(gs))
	for _, g := range gs {
		names = append(names, g.Name)
	}
	sort.Strings(names)
	return names
}

// DefaultGenotypes returns the built-in breeds
func DefaultGenotypes() Genotypes {
	gs, err := ParseGenotypes([]byte(defaultGenotypes), nil)
	if err != nil {
		panic(err) // the built-in text is fixed
	}
	return gs
}

// LoadGenotypes reads an hjson genotype file. Entries may name a base:
// breed, taken from the file itself or the built-in set, and override
// only the parameters that differ.
func LoadGenotypes(fileName string) (Genotypes, error) {
	b, err := os.ReadFile(fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to open genotype file %s: %w", fileName, err)
	}
	return ParseGenotypes(b, DefaultGenotypes())
}

// ParseGenotypes decodes the genotypes: key of an hjson document. bases are
// consulted for base: names not defined earlier in the document.
func ParseGenotypes(b []byte, bases Genotypes) (Genotypes, error) {
	var param map[string]interface{}
	if err := hjson.Unmarshal(b, &param); err != nil {
		return nil, fmt.Errorf("genotype file: %w", err)
	}
	array, ok := param["genotypes"].([]interface{})
	if !ok {
		return nil, fmt.Errorf("'genotypes:' key not found")
	}

	gs := make(Genotypes)
	for i := range array {
		m, ok := array[i].(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("genotype %d is not an object", i)
		}

		g := &Genotype{}
		if base, ok := m["base"].(string); ok {
			src, found := gs.Get(base)
			if !found && bases != nil {
				src, found = bases.Get(base)
			}
			if !found {
				return nil, fmt.Errorf("genotype %d: unknown base breed %q", i, base)
			}
			g = src
		}
		if err := g.fromMap(m); err != nil {
			return nil, fmt.Errorf("genotype %d: %w", i, err)
		}
		g.derive()
		gs[strings.ToLower(g.Name)] = g
	}
	return gs, nil
}

func (g *Genotype) fromMap(m map[string]interface{}) error {
	name, ok := m["name"].(string)
	if !ok || name == "" {
		return fmt.Errorf("genotype without a name")
	}
	g.Name = name

	if a, ok := m["animal"].(string); ok {
		switch strings.ToLower(a) {
		case "sheep":
			g.Animal = grazType.Sheep
		case "cattle":
			g.Animal = grazType.Cattle
		default:
			return fmt.Errorf("unknown animal %q", a)
		}
	}

	scalars := map[string]*float64{
		"srw":           &g.BreedSRW,
		"peakMilk":      &g.PeakMilk,
		"fleeceRatio":   &g.FleeceRatio,
		"maxFleeceDiam": &g.MaxFleeceDiam,
		"mortIntensity": &g.MortIntensity,
		"mortCondConst": &g.MortCondConst,
		"mortWtDiff":    &g.MortWtDiff,
		"fertWtDiff":    &g.FertWtDiff,
		"selfWeanPropn": &g.SelfWeanPropn,
	}
	for key, dst := range scalars {
		if v, ok := m[key].(float64); ok {
			*dst = v
		}
	}
	if v, ok := m["dairy"].(bool); ok {
		g.DairyBreed = v
	}
	if v, ok := m["ovulationPeriod"].(float64); ok {
		g.OvulationPeriod = int(v)
	}

	vectors := map[string][]float64{
		"srwScalars":     g.SRWScalars[:],
		"mortRate":       g.MortRate[:],
		"mortAge":        g.MortAge[:],
		"growthC":        g.GrowthC[:],
		"intakeC":        g.IntakeC[:],
		"intakeLactC":    g.IntakeLactC[:],
		"grazeC":         g.GrazeC[:],
		"efficC":         g.EfficC[:],
		"maintC":         g.MaintC[:],
		"dgProtC":        g.DgProtC[:],
		"protC":          g.ProtC[:],
		"pregC":          g.PregC[:],
		"pregScale":      g.PregScale[:],
		"birthWtScale":   g.BirthWtScale[:],
		"peakLactC":      g.PeakLactC[:],
		"lactC":          g.LactC[:],
		"woolC":          g.WoolC[:],
		"chillC":         g.ChillC[:],
		"gainC":          g.GainC[:],
		"phosC":          g.PhosC[:],
		"sulfC":          g.SulfC[:],
		"methC":          g.MethC[:],
		"ashAlkC":        g.AshAlkC[:],
		"dayLengthConst": g.DayLengthConst[:],
		"toxaemiaSigs":   g.ToxaemiaSigs[:],
		"dystokiaSigs":   g.DystokiaSigs[:],
		"exposureConsts": g.ExposureConsts[:],
	}
	for key, dst := range vectors {
		if err := readVector(m, key, dst); err != nil {
			return err
		}
	}

	if v, ok := m["puberty"]; ok {
		p := make([]float64, 2)
		if err := toFloats(v, p, "puberty"); err != nil {
			return err
		}
		g.Puberty = [2]int{int(p[0]), int(p[1])}
	}
	if v, ok := m["conceiveSigs"].([]interface{}); ok {
		if len(v) > len(g.ConceiveSigs) {
			return fmt.Errorf("conceiveSigs has %d entries, at most %d allowed", len(v), len(g.ConceiveSigs))
		}
		for n := range v {
			if err := toFloats(v[n], g.ConceiveSigs[n][:], "conceiveSigs"); err != nil {
				return err
			}
		}
	}
	return nil
}

// readVector copies an hjson number array into dst. Shorter arrays leave the
// trailing elements unchanged.
func readVector(m map[string]interface{}, key string, dst []float64) error {
	v, ok := m[key]
	if !ok {
		return nil
	}
	return toFloats(v, dst, key)
}

func toFloats(v interface{}, dst []float64, key string) error {
	array, ok := v.([]interface{})
	if !ok {
		return fmt.Errorf("%s is not an array", key)
	}
	if len(array) > len(dst) {
		return fmt.Errorf("%s has %d values, at most %d allowed", key, len(array), len(dst))
	}
	for i := range array {
		x, ok := array[i].(float64)
		if !ok {
			return fmt.Errorf("%s[%d] is not a number", key, i)
		}
		dst[i] = x
	}
	return nil
}
