// stock project paddock.go
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

package stock

import (
	"math"

	"github.com/APSIMInitiative/ApsimX-sub000/grazMath"
	"github.com/APSIMInitiative/ApsimX-sub000/grazType"
	"github.com/APSIMInitiative/ApsimX-sub000/supplement"
)

// Removal is what the stock took from one forage in a day, kg
type Removal struct {
	Herbage [grazType.DigClassNo]float64
	Seed    [][2]float64
}

// Paddock is a grazed area holding one or more forages and a pool of
// supplement. Forage availability is per hectare; supplement is kg fresh
// weight for the whole paddock.
type Paddock struct {
	Name          string
	Area          float64 // ha
	Steepness     float64 // 1 = flat, 2 = steep
	Waterlog      float64 // 0-1
	FeedSuppFirst bool
	Regrowth      float64 // kg/ha/d of green herbage added by EndDay

	Forages []grazType.GrazingInputs
	Ration  supplement.Ration
	Eaten   map[string]float64 // kg fresh weight of each supplement eaten over the run

	removal         []Removal
	suppRemovalKG   float64
	summedPotIntake float64
	profile         [grazType.DigClassNo]float64
}

// NewPaddock takes the forages as they stand at the start of the run. The
// class make-up of the first forage sets how regrowth is shared out.
func NewPaddock(name string, area float64, forages ...grazType.GrazingInputs) *Paddock {
	p := &Paddock{Name: name, Area: area, Steepness: 1.0}
	for _, f := range forages {
		p.Forages = append(p.Forages, f.Copy())
	}
	if len(forages) > 0 {
		tot := forages[0].TotalHerbage()
		for c := range p.profile {
			p.profile[c] = grazMath.XDiv(forages[0].Herbage[c].Biomass, tot)
		}
	}
	p.ZeroRemoval()
	return p
}

// Available is the forages combined into the inputs the animals see
func (p *Paddock) Available() grazType.GrazingInputs {
	var in grazType.GrazingInputs
	for _, f := range p.Forages {
		in.Add(f)
	}
	return in
}

// FeedSupplement places kg of fresh supplement in the paddock
func (p *Paddock) FeedSupplement(kg float64, s supplement.Supplement, first bool) {
	if kg <= 0.0 {
		return
	}
	for i := range p.Ration.Items {
		if p.Ration.Items[i].Name == s.Name {
			p.Ration.Items[i].Amount += kg
			p.FeedSuppFirst = p.FeedSuppFirst || first
			return
		}
	}
	p.Ration.Add(s, kg, 0.0)
	p.FeedSuppFirst = p.FeedSuppFirst || first
}

func (p *Paddock) ZeroRemoval() {
	p.removal = make([]Removal, len(p.Forages))
	for i, f := range p.Forages {
		p.removal[i].Seed = make([][2]float64, len(f.Seeds))
	}
	p.suppRemovalKG = 0.0
}

// Removal is the herbage and seed removed from forage f so far today, kg
func (p *Paddock) Removal(f int) Removal { return p.removal[f] }

// SupplementRemoved is the supplement eaten so far today, kg fresh weight
func (p *Paddock) SupplementRemoved() float64 { return p.suppRemovalKG }

// HerbageRemoved is the day's total herbage removal, kg
func (p *Paddock) HerbageRemoved() float64 {
	var t float64
	for _, r := range p.removal {
		for _, h := range r.Herbage {
			t += h
		}
	}
	return t
}

// EndDay takes the day's removal off the forages and the supplement pool,
// then adds regrowth to the first forage
func (p *Paddock) EndDay() {
	if p.Area > 0.0 {
		for f := range p.Forages {
			in := &p.Forages[f]
			eaten := 0.0
			for c := range in.Herbage {
				kg := grazMath.XDiv(p.removal[f].Herbage[c], p.Area)
				eaten += math.Min(in.Herbage[c].Biomass, kg)
				in.Herbage[c].Biomass = grazMath.Dim(in.Herbage[c].Biomass, kg)
			}
			in.TotalGreen = grazMath.Dim(in.TotalGreen, eaten)
			for s := range in.Seeds {
				for r := grazType.Unripe; r <= grazType.Ripe; r++ {
					in.Seeds[s][r].Biomass = grazMath.Dim(in.Seeds[s][r].Biomass, p.removal[f].Seed[s][r]/p.Area)
				}
			}
		}
	}
	if p.suppRemovalKG > 0.0 {
		if p.Eaten == nil {
			p.Eaten = make(map[string]float64)
		}
		for i, it := range p.Ration.Items {
			p.Eaten[it.Name] += p.suppRemovalKG * p.Ration.FWFract(i)
		}
	}
	p.Ration.SetTotalAmount(grazMath.Dim(p.Ration.TotalAmount(), p.suppRemovalKG))

	if p.Regrowth > 0.0 && len(p.Forages) > 0 {
		in := &p.Forages[0]
		for c := range in.Herbage {
			in.Herbage[c].Biomass += p.Regrowth * p.profile[c]
		}
		in.TotalGreen += p.Regrowth
	}
	p.ZeroRemoval()
}
