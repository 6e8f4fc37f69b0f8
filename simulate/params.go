// simulate project params.go
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

package simulate

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	hjson "github.com/hjson/hjson-go"

	"github.com/APSIMInitiative/ApsimX-sub000/animal"
	"github.com/APSIMInitiative/ApsimX-sub000/grazType"
	"github.com/APSIMInitiative/ApsimX-sub000/stock"
	"github.com/APSIMInitiative/ApsimX-sub000/supplement"
)

// LoadParam reads a simulation hjson file into the map of param[key] pairs
func LoadParam(fileName string) (map[string]interface{}, error) {
	b, err := os.ReadFile(fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to open parameter file %s: %w", fileName, err)
	}
	var param map[string]interface{}
	if err := hjson.Unmarshal(b, &param); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", fileName, err)
	}
	return param, nil
}

// Feeding puts a supplement out in a paddock every day from From to To
// inclusive (1-based run days, To of zero for the whole run)
type Feeding struct {
	Paddock    string
	Supplement supplement.Supplement
	KgPerDay   float64
	First      bool
	From, To   int
}

func (f Feeding) on(day int) bool {
	return day >= f.From && (f.To == 0 || day <= f.To)
}

func intOr(m map[string]interface{}, key string, def int) int {
	if v, ok := m[key].(float64); ok {
		return int(v)
	}
	return def
}

func floatOr(m map[string]interface{}, key string, def float64) float64 {
	if v, ok := m[key].(float64); ok {
		return v
	}
	return def
}

// genotypes come from the built-in set, a file named by genotypes:, or both
func loadGenotypes(param map[string]interface{}) (animal.Genotypes, error) {
	gs := animal.DefaultGenotypes()
	name, ok := param["genotypes"].(string)
	if !ok || name == "" {
		return gs, nil
	}
	extra, err := animal.LoadGenotypes(name)
	if err != nil {
		return nil, err
	}
	for k, g := range extra {
		gs[k] = g
	}
	return gs, nil
}

func loadSupplements(param map[string]interface{}) (supplement.Library, error) {
	lib := supplement.DefaultLibrary()
	name, ok := param["supplements"].(string)
	if !ok || name == "" {
		return lib, nil
	}
	extra, err := supplement.LoadLibrary(name)
	if err != nil {
		return nil, err
	}
	for k, s := range extra {
		lib[k] = s
	}
	return lib, nil
}

// Herbage rows are "biomass, digestibility, crude protein, degradability,
// height ratio", best class first. biomass is kg/ha.
func parseHerbage(rows []interface{}) (grazType.GrazingInputs, error) {
	var in grazType.GrazingInputs
	if len(rows) > grazType.DigClassNo {
		return in, fmt.Errorf("%d herbage classes, at most %d allowed", len(rows), grazType.DigClassNo)
	}
	for c := range rows {
		s, _ := rows[c].(string)
		f := strings.Split(s, ",")
		if len(f) < 4 {
			return in, fmt.Errorf("herbage class %d: expected biomass, dmd, cp, degradability in %q", c+1, s)
		}
		v := []float64{0, 0, 0, 0, 1.0}
		for k := range f {
			if k >= len(v) {
				break
			}
			x, err := strconv.ParseFloat(strings.TrimSpace(f[k]), 64)
			if err != nil {
				return in, fmt.Errorf("herbage class %d: %w", c+1, err)
			}
			v[k] = x
		}
		in.Herbage[c] = grazType.IntakeRecord{
			Biomass:       v[0],
			Digestibility: v[1],
			CrudeProtein:  v[2],
			Degradability: v[3],
			HeightRatio:   v[4],
			PhosContent:   0.003,
			SulfContent:   0.0025,
			AshAlkalinity: 0.6,
		}
	}
	return in, nil
}

func parsePaddock(m map[string]interface{}) (*stock.Paddock, error) {
	name, _ := m["name"].(string)
	if name == "" {
		return nil, fmt.Errorf("paddock without a name")
	}
	area := floatOr(m, "area", 0)
	if area <= 0.0 {
		return nil, fmt.Errorf("paddock %s: area must be positive", name)
	}
	rows, _ := m["herbage"].([]interface{})
	in, err := parseHerbage(rows)
	if err != nil {
		return nil, fmt.Errorf("paddock %s: %w", name, err)
	}
	in.TotalGreen = floatOr(m, "green", in.TotalHerbage())
	in.TotalDead = in.TotalHerbage() - in.TotalGreen
	in.LegumePropn = floatOr(m, "legume", 0)
	in.SelectFactor = floatOr(m, "selectFactor", 0)

	p := stock.NewPaddock(name, area, in)
	p.Steepness = floatOr(m, "steepness", 1.0)
	p.Waterlog = floatOr(m, "waterlog", 0)
	p.Regrowth = floatOr(m, "regrowth", 0)
	p.FeedSuppFirst, _ = m["feedSuppFirst"].(bool)
	return p, nil
}

func reproOf(sex string) (grazType.ReproType, error) {
	switch strings.ToLower(sex) {
	case "female", "ewe", "cow", "":
		return grazType.Empty, nil
	case "male", "ram", "bull":
		return grazType.Male, nil
	case "castrated", "wether", "steer":
		return grazType.Castrated, nil
	}
	return 0, fmt.Errorf("unknown sex %q", sex)
}

// parseGroup builds one animal group:
//
//	{ paddock: North, tag: 1, breed: Merino, sex: female, number: 200,
//	  ageDays: 1095, liveWeight: 50, fleece: 2, pregnancy: 0, foetuses: 1,
//	  lactation: 0, young: 1, matedTo: Merino, joinDays: 0 }
func parseGroup(m map[string]interface{}, gs animal.Genotypes, rnd animal.RandomSource,
	w animal.Weather, c animal.Clock) (a *animal.AnimalGroup, paddock string, tag int, err error) {

	breed, _ := m["breed"].(string)
	g, ok := gs.Get(breed)
	if !ok {
		return nil, "", 0, fmt.Errorf("unknown breed %q", breed)
	}
	sex, _ := m["sex"].(string)
	repro, err := reproOf(sex)
	if err != nil {
		return nil, "", 0, err
	}
	paddock, _ = m["paddock"].(string)
	tag = intOr(m, "tag", 0)

	a, err = animal.NewAnimalGroup(g, repro, intOr(m, "number", 0), intOr(m, "ageDays", 365),
		floatOr(m, "liveWeight", 0), floatOr(m, "fleece", 0), rnd, w, c)
	if err != nil {
		return nil, "", 0, err
	}

	if repro == grazType.Empty {
		if p := intOr(m, "pregnancy", 0); p > 0 {
			a.SetPregnancy(p)
			if n := intOr(m, "foetuses", 0); n > 0 {
				a.SetNoFoetuses(n)
			}
		}
		if l := intOr(m, "lactation", 0); l > 0 {
			a.SetLactation(l)
			if n := intOr(m, "young", 0); n > 0 {
				a.SetNoOffspring(n)
			}
		}
		if ram, ok := m["matedTo"].(string); ok {
			male, found := gs.Get(ram)
			if !found {
				return nil, "", 0, fmt.Errorf("unknown sire breed %q", ram)
			}
			if days := intOr(m, "joinDays", 0); days > 0 {
				if err := a.Join(male, days); err != nil {
					return nil, "", 0, err
				}
			} else {
				a.SetMatedTo(male)
			}
		}
	}
	return a, paddock, tag, nil
}

func parseFeeding(m map[string]interface{}, lib supplement.Library) (Feeding, error) {
	var f Feeding
	f.Paddock, _ = m["paddock"].(string)
	name, _ := m["supplement"].(string)
	s, ok := lib.Get(name)
	if !ok {
		return f, fmt.Errorf("unknown supplement %q", name)
	}
	f.Supplement = s
	f.KgPerDay = floatOr(m, "kgPerDay", 0)
	f.First, _ = m["first"].(bool)
	f.From = intOr(m, "from", 1)
	f.To = intOr(m, "to", 0)
	return f, nil
}
