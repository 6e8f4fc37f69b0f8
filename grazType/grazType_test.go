// grazType_test
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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDMPoolArithmetic(t *testing.T) {
	a := DMPool{DM: 2, AshAlk: 1}
	a.Nu[N] = 0.1
	a.Nu[P] = 0.01
	b := a.Multiply(3)
	assert.InDelta(t, 6.0, b.DM, 1e-12)
	assert.InDelta(t, 0.3, b.Nu[N], 1e-12)
	assert.InDelta(t, 3.0, b.AshAlk, 1e-12)

	c := a.Add(b)
	assert.InDelta(t, 8.0, c.DM, 1e-12)
	assert.InDelta(t, 0.04, c.Nu[P], 1e-12)
	// a is a value, unchanged
	assert.Equal(t, 2.0, a.DM)
}

func TestGrazingInputsAdd(t *testing.T) {
	var g GrazingInputs
	g.Herbage[0] = IntakeRecord{Biomass: 100, Digestibility: 0.8, CrudeProtein: 0.2, HeightRatio: 1}
	g.TotalGreen = 100
	g.LegumePropn = 0.5

	var p GrazingInputs
	p.Herbage[0] = IntakeRecord{Biomass: 300, Digestibility: 0.7, CrudeProtein: 0.1, HeightRatio: 1}
	p.TotalGreen = 300
	p.Seeds = [][2]IntakeRecord{{{Biomass: 5}, {}}}
	p.SeedClass = [][2]int{{3, 3}}

	g.Add(p)
	assert.InDelta(t, 400.0, g.Herbage[0].Biomass, 1e-9)
	assert.InDelta(t, 0.725, g.Herbage[0].Digestibility, 1e-9)
	assert.InDelta(t, 0.125, g.LegumePropn, 1e-9)
	assert.Len(t, g.Seeds, 1)
	assert.InDelta(t, 400.0, g.TotalHerbage(), 1e-9)
}

func TestGrazingInputsScale(t *testing.T) {
	var g GrazingInputs
	g.Herbage[2].Biomass = 1000
	g.TotalDead = 50
	g.Seeds = [][2]IntakeRecord{{{Biomass: 10}, {Biomass: 20}}}

	s := g.Scale(0.5)
	assert.Equal(t, 500.0, s.Herbage[2].Biomass)
	assert.Equal(t, 25.0, s.TotalDead)
	assert.Equal(t, 10.0, s.Seeds[0][Ripe].Biomass)
	// original seeds untouched
	assert.Equal(t, 20.0, g.Seeds[0][Ripe].Biomass)
}

func TestEnumText(t *testing.T) {
	assert.Equal(t, "Cattle", Cattle.String())
	assert.Equal(t, "2-3yo", TwoYrOld.String())
	assert.Equal(t, "LatePreg", LatePreg.String())
	assert.Equal(t, "Suckling", Suckling.String())
}
