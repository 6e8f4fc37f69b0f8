// grazMath project grazMath_test.go
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

package grazMath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestXDiv(t *testing.T) {
	assert.Equal(t, 0.0, XDiv(0, 0))
	assert.Equal(t, 0.0, XDiv(1.0e-25, 1.0e-30))
	assert.Equal(t, 0.0, XDiv(5, 0))
	assert.InDelta(t, 2.5, XDiv(5, 2), 1e-12)
}

func TestRamp(t *testing.T) {
	assert.Equal(t, 0.0, Ramp(0.1, 0.2, 0.75))
	assert.Equal(t, 1.0, Ramp(0.9, 0.2, 0.75))
	assert.InDelta(t, 0.5, Ramp(0.5, 0.0, 1.0), 1e-12)
	// reversed limits run downwards
	assert.InDelta(t, 0.75, Ramp(0.25, 1.0, 0.0), 1e-12)
	assert.Equal(t, 1.0, Ramp(-1, 1.0, 0.0))
}

func TestSig(t *testing.T) {
	c := [2]float64{1.0, SigVal / 0.5}
	assert.InDelta(t, 0.5, Sig(1.0, c), 1e-12)
	assert.InDelta(t, 0.95, Sig(1.5, c), 1e-5)
	assert.InDelta(t, 0.05, Sig(0.5, c), 1e-5)
	assert.Equal(t, 0.0, Sig(-20.0, c))
	assert.Equal(t, 1.0, Sig(20.0, c))
	assert.Greater(t, Sig(1.2, c), Sig(1.1, c))
}

func TestDim(t *testing.T) {
	assert.Equal(t, 2.0, Dim(5, 3))
	assert.Equal(t, 0.0, Dim(3, 5))
	assert.Equal(t, 0, IDim(3, 5))
	assert.Equal(t, 4, IDim(9, 5))
}

func TestWoodPeak(t *testing.T) {
	assert.InDelta(t, 1.0, Wood(60, 60, 1.7), 1e-12)
	assert.Less(t, Wood(30, 60, 1.7), 1.0)
	assert.Less(t, Wood(120, 60, 1.7), 1.0)
}

func TestInverseWood(t *testing.T) {
	tmax, b := 81.0, 1.7

	assert.Equal(t, 0.0, InverseWood(0, tmax, b, true))
	assert.Equal(t, tmax, InverseWood(1.0, tmax, b, false))

	for _, y := range []float64{0.2, 0.5, 0.9} {
		up := InverseWood(y, tmax, b, false)
		assert.Less(t, up, tmax)
		assert.InDelta(t, y, Wood(up, tmax, b), 1e-3)

		down := InverseWood(y, tmax, b, true)
		assert.Greater(t, down, tmax)
		assert.InDelta(t, y, Wood(down, tmax, b), 1e-3)
	}
}

func TestGompertz(t *testing.T) {
	a, b, c := 147.0, 10.928, 2.0

	// at t == a the curve is exactly 1
	assert.InDelta(t, 1.0, Gompertz(a, a, b, c), 1e-12)

	// numerical derivative agrees with the analytic one
	h := 1.0e-4
	num := (Gompertz(100+h, a, b, c) - Gompertz(100-h, a, b, c)) / (2 * h)
	assert.InDelta(t, num, DeltaGompertz(100, a, b, c), 1e-6)
}

func TestWeightAverage(t *testing.T) {
	assert.InDelta(t, 2.0, WeightAverage(1, 1, 3, 1), 1e-12)
	assert.Equal(t, 1.0, WeightAverage(1, 1, 3, 0))
	assert.Equal(t, 3.0, WeightAverage(1, 0, 3, 0))
}

func TestRoundIsHalfEven(t *testing.T) {
	assert.Equal(t, 2, Round(2.5))
	assert.Equal(t, 4, Round(3.5))
	assert.Equal(t, 3, Round(2.6))
	assert.Equal(t, 0.0, BoundedPow(-1, 0.5))
	assert.InDelta(t, math.Sqrt(2), BoundedPow(2, 0.5), 1e-12)
}
