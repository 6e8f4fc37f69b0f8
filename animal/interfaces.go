// animal project interfaces.go
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

// RandomSource is the simulation's shared random stream. One instance serves
// every group of a run so the sequence of draws depends only on call order.
type RandomSource interface {
	RandomValue() float64
	RndPropn(n int, p float64) int
}

// Weather is the day's weather as the animals see it
type Weather interface {
	MeanTemp() float64
	MaxTemp() float64
	MinTemp() float64
	WindSpeed() float64 // m/s
	Rainfall() float64  // mm
	Latitude() float64  // degrees, south negative
	DayLength(sunAngle float64) float64
}

// Clock supplies the current day of year, 1..366
type Clock interface {
	DayOfYear() int
}
