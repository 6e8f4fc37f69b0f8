// grazType project grazing.go
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

package grazType

import (
	"github.com/APSIMInitiative/ApsimX-sub000/grazMath"
)

// GrazingInputs is what a paddock offers grazing animals in one time step
type GrazingInputs struct {
	Herbage      [DigClassNo]IntakeRecord
	TotalGreen   float64 // kg/ha
	TotalDead    float64
	LegumePropn  float64
	SelectFactor float64
	LegumeTrop   float64

	Seeds     [][2]IntakeRecord // per plant species, Unripe and Ripe
	SeedClass [][2]int          // 1-based digestibility class each seed pool is eaten with, 0 if not grazed
}

// Copy returns an independent copy
func (g GrazingInputs) Copy() GrazingInputs {
	c := g
	c.Seeds = append([][2]IntakeRecord(nil), g.Seeds...)
	c.SeedClass = append([][2]int(nil), g.SeedClass...)
	return c
}

// TotalHerbage is the herbage biomass over all classes
func (g GrazingInputs) TotalHerbage() float64 {
	var t float64
	for _, h := range g.Herbage {
		t += h.Biomass
	}
	return t
}

// Scale returns inputs with every biomass multiplied by scale
func (g GrazingInputs) Scale(scale float64) GrazingInputs {
	r := g.Copy()
	if scale == 1.0 {
		return r
	}
	for i := range r.Herbage {
		r.Herbage[i].Biomass = scale * g.Herbage[i].Biomass
	}
	r.TotalGreen = scale * g.TotalGreen
	r.TotalDead = scale * g.TotalDead
	for s := range r.Seeds {
		for k := Unripe; k <= Ripe; k++ {
			r.Seeds[s][k].Biomass = scale * g.Seeds[s][k].Biomass
		}
	}
	return r
}

// Add merges the inputs of another pasture population into g, weighting
// each attribute by the biomass it applies to. Seed pools are appended.
func (g *GrazingInputs) Add(part GrazingInputs) {
	for c := 0; c < DigClassNo; c++ {
		in := g.Herbage[c]
		p := part.Herbage[c]

		in.HeightRatio = grazMath.WeightAverage(in.HeightRatio, in.Biomass, p.HeightRatio, p.Biomass)
		in.Degradability = grazMath.WeightAverage(in.Degradability, in.Biomass*in.CrudeProtein, p.Degradability, p.Biomass*p.CrudeProtein)
		in.Digestibility = grazMath.WeightAverage(in.Digestibility, in.Biomass, p.Digestibility, p.Biomass)
		in.CrudeProtein = grazMath.WeightAverage(in.CrudeProtein, in.Biomass, p.CrudeProtein, p.Biomass)
		in.PhosContent = grazMath.WeightAverage(in.PhosContent, in.Biomass, p.PhosContent, p.Biomass)
		in.SulfContent = grazMath.WeightAverage(in.SulfContent, in.Biomass, p.SulfContent, p.Biomass)
		in.AshAlkalinity = grazMath.WeightAverage(in.AshAlkalinity, in.Biomass, p.AshAlkalinity, p.Biomass)
		in.Biomass += p.Biomass
		g.Herbage[c] = in
	}

	oldMass := g.TotalGreen + g.TotalDead
	newMass := part.TotalGreen + part.TotalDead
	g.LegumePropn = grazMath.WeightAverage(g.LegumePropn, oldMass, part.LegumePropn, newMass)
	g.SelectFactor = grazMath.WeightAverage(g.SelectFactor, oldMass, part.SelectFactor, newMass)
	g.TotalGreen += part.TotalGreen
	g.TotalDead += part.TotalDead
	g.LegumeTrop = grazMath.WeightAverage(g.LegumeTrop, g.TotalGreen+g.TotalDead, part.LegumeTrop, newMass)

	g.Seeds = append(g.Seeds, part.Seeds...)
	g.SeedClass = append(g.SeedClass, part.SeedClass...)
}

// GrazingOutputs holds quantities grazed from a pasture (kg/ha)
type GrazingOutputs struct {
	Herbage [DigClassNo]float64
	Seed    [][2]float64
}

// NewGrazingOutputs sizes the seed table for nSpecies species
func NewGrazingOutputs(nSpecies int) GrazingOutputs {
	return GrazingOutputs{Seed: make([][2]float64, nSpecies)}
}
