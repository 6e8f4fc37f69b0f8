// factor_test
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

package varStuff

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/APSIMInitiative/ApsimX-sub000/randFactory"
)

func params() map[string]interface{} {
	return map[string]interface{}{
		"perturbation": []interface{}{
			1.0, 0.1, 0.05,
			0.1, 0.04, 0.02,
			0.05, 0.02, 0.09,
		},
	}
}

func TestDecompVarErrors(t *testing.T) {
	_, _, err := DecompVar("missing", params())
	assert.Error(t, err)

	bad := map[string]interface{}{"perturbation": []interface{}{1.0, 0.0, 1.0}}
	_, _, err = DecompVar("perturbation", bad)
	assert.Error(t, err)

	_, err = NewPerturber(map[string]interface{}{"perturbation": []interface{}{1.0, 0.0, 0.0, 1.0}})
	assert.Error(t, err)

	notPD := map[string]interface{}{"perturbation": []interface{}{
		1.0, 2.0, 0.0,
		2.0, 1.0, 0.0,
		0.0, 0.0, 1.0,
	}}
	_, err = NewPerturber(notPD)
	assert.Error(t, err)
}

func TestFactorReproducesMatrix(t *testing.T) {
	_, vc, err := DecompVar("perturbation", params())
	require.NoError(t, err)
	chol, ok := Factor("perturbation", vc)
	require.True(t, ok)

	var l mat.TriDense
	chol.LTo(&l)
	r, c := l.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 3, c)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += l.At(i, k) * l.At(j, k)
			}
			assert.InDelta(t, vc.At(i, j), sum, 1e-12)
		}
	}
}

func TestNilPerturberDrawsNone(t *testing.T) {
	p, err := NewPerturber(map[string]interface{}{})
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.Equal(t, None, p.Draw(randFactory.NewRandFactory(1)))
	assert.Equal(t, 0.0, p.StdDev("rain"))
}

func TestDrawMoments(t *testing.T) {
	p, err := NewPerturber(params())
	require.NoError(t, err)
	assert.InDelta(t, 0.2, p.StdDev("rain"), 1e-12)

	r := randFactory.NewRandFactory(5)
	n := 6000
	dt := make([]float64, n)
	lr := make([]float64, n)
	rs := make([]float64, n)
	for i := 0; i < n; i++ {
		x := p.Draw(r)
		dt[i] = x.DeltaT
		lr[i] = math.Log(x.RainScale)
		rs[i] = x.RainScale
		assert.Greater(t, x.HerbageScale, 0.0)
	}
	assert.InDelta(t, 0.0, stat.Mean(dt, nil), 0.05)
	assert.InDelta(t, 1.0, stat.StdDev(dt, nil), 0.05)
	assert.InDelta(t, 1.0, stat.Mean(rs, nil), 0.02)
	// cov(T, log rain) = 0.1
	assert.InDelta(t, 0.1, stat.Covariance(dt, lr, nil), 0.02)
}

func TestDecorrelate(t *testing.T) {
	p, err := NewPerturber(params())
	require.NoError(t, err)
	assert.Error(t, p.Decorrelate("wind"))
	require.NoError(t, p.Decorrelate("temperature"))
	assert.Equal(t, 0.0, p.vc.At(0, 1))
	assert.Equal(t, 0.0, p.vc.At(2, 0))
	assert.Equal(t, 0.02, p.vc.At(1, 2))
	assert.Equal(t, 1.0, p.vc.At(0, 0))
}

func TestIndex2D(t *testing.T) {
	assert.Equal(t, 5, Index2D(2, 1, 3))
	assert.Equal(t, 7, Index2D(1, 2, 3))
}
