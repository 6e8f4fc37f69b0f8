// animal project excretion_test.go
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/APSIMInitiative/ApsimX-sub000/grazType"
)

func TestExcretion(t *testing.T) {
	wethers := newGroup(t, "Merino", grazType.Castrated, 100, 730, 45, 3)
	require.NoError(t, wethers.Grow(pasture(500), nil, springDay, springDay))
	st := wethers.AnimalState

	assert.InDelta(t, 100*st.OrgFaeces.DM, wethers.OrgFaeces().DM, 1e-9)
	assert.Greater(t, wethers.FaecalN(), 0.0)
	assert.Greater(t, wethers.UrineN(), 0.0)
	assert.Greater(t, wethers.FaecalP(), 0.0)

	ex := wethers.Excretion()
	assert.Greater(t, ex.Defaecations, 0.0)
	assert.Greater(t, ex.Urinations, 0.0)
	assert.Greater(t, ex.DefaecationVolume, 0.0)
	assert.InDelta(t, 0.6, ex.DefaecationEccentricity, 1e-9)
	assert.Equal(t, 0.0, ex.UrinationEccentricity)
	assert.InDelta(t, wethers.OrgFaeces().Nu[grazType.N], ex.OrgFaeces.Nu[grazType.N], 1e-9)

	assert.InDelta(t, 100*st.MEIntake.Solid/DSERefMEI, wethers.DSEs(), 1e-9)
	assert.Greater(t, wethers.MethaneEnergy(), 0.0)
	assert.InDelta(t, wethers.Genotype.MethC[6]*wethers.MethaneEnergy(), wethers.MethaneWeight(), 1e-12)
	assert.Greater(t, wethers.DeltaCleanFleece(), 0.0)
	assert.Less(t, wethers.DeltaCleanFleece(), wethers.GreasyFleeceGrowth())
}

func TestExcretionIncludesYoung(t *testing.T) {
	ewes := newGroup(t, "Merino", grazType.Empty, 50, 1095, 55, 2)
	ewes.SetLactation(40)
	require.NoError(t, ewes.Grow(pasture(500), nil, springDay, springDay))

	own := ewes.AnimalState.Urine.Multiply(50)
	assert.Greater(t, ewes.Urine().Nu[grazType.N], own.Nu[grazType.N])
	assert.InDelta(t, own.Nu[grazType.N], ewes.Excretion().Urine.Nu[grazType.N], 1e-9)
	assert.GreaterOrEqual(t, ewes.DSEs(), 50*ewes.AnimalState.MEIntake.Solid/DSERefMEI)
}

func TestNoMilkWhenDry(t *testing.T) {
	wethers := newGroup(t, "Merino", grazType.Castrated, 10, 730, 45, 3)
	assert.Equal(t, 0.0, wethers.MaxMilkYield())
	assert.Equal(t, 0.0, wethers.MilkVolume())
}
