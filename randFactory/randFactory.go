// randFactory project randFactory.go
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

package randFactory

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// RandFactory is the single random number stream of a simulation run.
// Every stochastic split (deaths, conceptions, age-list rounding) draws from it,
// so the order of calls across groups fixes the sequence.
type RandFactory struct {
	src  rand.Source
	rng  *rand.Rand
	seed uint64
}

func NewRandFactory(seed uint64) *RandFactory {
	src := rand.NewSource(seed)
	return &RandFactory{src: src, rng: rand.New(src), seed: seed}
}

func (r *RandFactory) Seed() uint64 {
	return r.seed
}

// RandomValue is a uniform draw on [0,1)
func (r *RandFactory) RandomValue() float64 {
	return r.rng.Float64()
}

// RndPropn draws the number of successes out of n trials of probability p
func (r *RandFactory) RndPropn(n int, p float64) int {
	if n <= 0 || p <= 0.0 {
		return 0
	}
	if p >= 1.0 {
		return n
	}

	b := distuv.Binomial{N: float64(n), P: p, Src: r.src}
	k := int(math.Round(b.Rand()))
	if k < 0 {
		k = 0
	} else if k > n {
		k = n
	}
	return k
}

// Normal is a draw from N(mu, sigma²)
func (r *RandFactory) Normal(mu, sigma float64) float64 {
	n := distuv.Normal{Mu: mu, Sigma: sigma, Src: r.src}
	return n.Rand()
}
