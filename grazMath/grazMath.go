// grazMath project grazMath.go
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
)

const (
	Day2Rad = 2.0 * math.Pi / 365.0 // days of the year to radians
	Deg2Rad = math.Pi / 180.0

	tinyNumerator = 1.0e-20 // numerators smaller than this divide to exactly zero
	maxNewtonIter = 100
	SigVal        = 5.88878 // 2*ln(0.95/0.05)
)

// XDiv divides x by y. Tiny numerators and zero denominators give 0 rather than NaN or Inf.
func XDiv(x, y float64) float64 {
	if math.Abs(x) < tinyNumerator || y == 0.0 {
		return 0.0
	}
	return x / y
}

// Ramp is 0 below x0, 1 above x1 and linear in between.
// If x0 > x1 the ramp runs downwards.
func Ramp(x, x0, x1 float64) float64 {
	if x0 > x1 {
		return 1.0 - Ramp(x, x1, x0)
	}
	if x <= x0 {
		return 0.0
	}
	if x >= x1 {
		return 1.0
	}
	return (x - x0) / (x1 - x0)
}

// Sig is a logistic curve with its midpoint at c[0] and slope parameter c[1]
func Sig(x float64, c [2]float64) float64 {
	z := c[1] * (x - c[0])
	switch {
	case z < -30.0:
		return 0.0
	case z > 30.0:
		return 1.0
	}
	return 1.0 / (1.0 + math.Exp(-z))
}

// Dim is the positive difference max(0, x-y)
func Dim(x, y float64) float64 {
	if x > y {
		return x - y
	}
	return 0.0
}

func IDim(a, b int) int {
	if a > b {
		return a - b
	}
	return 0
}

func Sqr(x float64) float64 {
	return x * x
}

// BoundedPow is x^y, zero when x is not positive
func BoundedPow(x, y float64) float64 {
	if x <= 0.0 {
		return 0.0
	}
	return math.Pow(x, y)
}

func Gompertz(t, a, b, c float64) float64 {
	return math.Exp(b * (1.0 - math.Exp(c*(1.0-t/a))))
}

// DeltaGompertz is the time derivative of Gompertz
func DeltaGompertz(t, a, b, c float64) float64 {
	return b * c / a * math.Exp(c*(1.0-t/a)+b*(1.0-math.Exp(c*(1.0-t/a))))
}

// Wood is the lactation-shaped curve, 1.0 at t == tmax
func Wood(t, tmax, b float64) float64 {
	return math.Pow(t/tmax, b) * math.Exp(b*(1.0-t/tmax))
}

// InverseWood finds the time at which the Wood curve reaches y. declining selects
// the falling limb of the curve (t > tmax).
func InverseWood(y, tmax, b float64, declining bool) float64 {
	if y <= 0.0 {
		return 0.0
	}
	if y >= 1.0 {
		return tmax
	}

	var x0, x1 float64
	if !declining {
		x1 = math.Min(0.99, y)
	} else {
		x1 = math.Max(1.01, math.Exp(b*(1.0-y)))
	}
	// Newton-Raphson
	for iter := 0; iter < maxNewtonIter; iter++ {
		x0 = x1
		x1 = x0 - (1.0-y/Wood(x0, 1.0, b))*x0/(b*(1.0-x0))
		if math.Abs(x0-x1) < 1.0e-5 {
			break
		}
	}
	return 0.5 * (x0 + x1) * tmax
}

// WeightAverage averages x1 and x2 with weights y1 and y2, falling back to
// whichever value has a non-zero weight.
func WeightAverage(x1, y1, x2, y2 float64) float64 {
	if y1 != 0.0 && y2 != 0.0 {
		return (x1*y1 + x2*y2) / (y1 + y2)
	} else if y1 != 0.0 {
		return x1
	}
	return x2
}

// Round is round-half-to-even, the convention the age list splitting depends on
func Round(x float64) int {
	return int(math.RoundToEven(x))
}
