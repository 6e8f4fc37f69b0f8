// animal project helpers_test.go
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

	"github.com/stretchr/testify/require"

	"github.com/APSIMInitiative/ApsimX-sub000/grazMath"
	"github.com/APSIMInitiative/ApsimX-sub000/grazType"
	"github.com/APSIMInitiative/ApsimX-sub000/weather"
)

// stubRandom makes every stochastic split its expected value
type stubRandom struct{}

func (stubRandom) RandomValue() float64 { return 0.5 }
func (stubRandom) RndPropn(n int, p float64) int {
	return grazMath.Round(float64(n) * p)
}

var winterDay = weather.Day{Doy: 180, Lat: -35, MinT: 4, MaxT: 14, Rain: 0, Wind: 2}
var springDay = weather.Day{Doy: 280, Lat: -35, MinT: 8, MaxT: 22, Rain: 0, Wind: 2}

func genotype(t *testing.T, name string) *Genotype {
	t.Helper()
	g, ok := DefaultGenotypes().Get(name)
	require.True(t, ok, name)
	return g
}

func newGroup(t *testing.T, breed string, repro grazType.ReproType, n, age int, liveWt, gfw float64) *AnimalGroup {
	t.Helper()
	a, err := NewAnimalGroup(genotype(t, breed), repro, n, age, liveWt, gfw, stubRandom{}, springDay, springDay)
	require.NoError(t, err)
	return a
}

// pasture spreads kgPerClass (kg/ha) of green herbage over the digestibility classes
func pasture(kgPerClass float64) grazType.GrazingInputs {
	var in grazType.GrazingInputs
	for c := 0; c < grazType.DigClassNo; c++ {
		in.Herbage[c] = grazType.IntakeRecord{
			Biomass:       kgPerClass,
			Digestibility: 0.8 - 0.1*float64(c),
			CrudeProtein:  0.25 - 0.03*float64(c),
			Degradability: 0.8,
			PhosContent:   0.003,
			SulfContent:   0.002,
			HeightRatio:   1.0,
			AshAlkalinity: 0.6,
		}
	}
	in.TotalGreen = kgPerClass * grazType.DigClassNo
	return in
}
