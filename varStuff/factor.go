// varStuff project factor.go
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
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/APSIMInitiative/ApsimX-sub000/logger"
)

// Components of an environment perturbation, in covariance matrix order.
// Temperature is an additive shift in degrees; rain and herbage are on the
// log scale.
var Components = []string{"temperature", "rain", "herbage"}

// NormalSource draws from a normal distribution
type NormalSource interface {
	Normal(mu, sigma float64) float64
}

// Perturbation is the environment of one replicate relative to the base run
type Perturbation struct {
	DeltaT       float64
	RainScale    float64
	HerbageScale float64
}

// None leaves the base run unchanged
var None = Perturbation{RainScale: 1.0, HerbageScale: 1.0}

// Perturber draws correlated perturbations from a factored covariance matrix
type Perturber struct {
	v    []float64 // column-major copy of the matrix
	vc   *mat.SymDense
	chol mat.Cholesky
	l    mat.TriDense
}

// DecompVar reads the named n x n covariance matrix from the parameters
func DecompVar(name string, param map[string]interface{}) ([]float64, *mat.SymDense, error) {
	array, ok := param[name].([]interface{})
	if !ok {
		return nil, nil, fmt.Errorf("'%s' key not found", name)
	}

	v := make([]float64, 0, len(array))
	for i := range array {
		x, ok := array[i].(float64)
		if !ok {
			return nil, nil, fmt.Errorf("'%s' element %d is not a number", name, i)
		}
		v = append(v, x)
	}

	n := int(math.Sqrt(float64(len(v))))
	if n == 0 || n*n != len(v) {
		return nil, nil, errors.New("the variance matrix in the parameter file is not square")
	}
	if logger.Verbose() {
		fmt.Printf("The "+name+" covariance matrix is %v x %v\n", n, n)
	}

	vc := mat.NewSymDense(n, v)
	if logger.Verbose() {
		fmt.Printf("vcMatrix = \n")
		MatPrint(vc)
	}
	return v, vc, nil
}

func Factor(name string, vcMatrix mat.Symmetric) (v mat.Cholesky, ok bool) {

	if ok = v.Factorize(vcMatrix); !ok {
		return v, ok
	}

	// Extract the factorization and check that it equals the original matrix.
	if logger.Verbose() {
		var t mat.TriDense
		v.LTo(&t)
		var test mat.Dense
		test.Mul(&t, t.T())
		fmt.Println()
		fmt.Printf("check %s: L * L^T = \n         %0.4v\n", name, mat.Formatted(&test, mat.Prefix("          ")))
	}

	return v, ok
}

// Pretty matrix format printout
func MatPrint(X mat.Matrix) {
	fa := mat.Formatted(X, mat.Prefix(""), mat.Squeeze())
	fmt.Printf("%v\n", fa)
}

// NewPerturber factors the "perturbation" matrix of the parameters. A nil
// Perturber (no key) always draws None.
func NewPerturber(param map[string]interface{}) (*Perturber, error) {
	if _, ok := param["perturbation"]; !ok {
		return nil, nil
	}
	v, vc, err := DecompVar("perturbation", param)
	if err != nil {
		return nil, err
	}
	if n, _ := vc.Dims(); n != len(Components) {
		return nil, fmt.Errorf("perturbation matrix is %d x %d, want %d x %d", n, n, len(Components), len(Components))
	}
	p := &Perturber{v: v, vc: vc}
	if err := p.factor(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Perturber) factor() error {
	var ok bool
	p.chol, ok = Factor("perturbation", p.vc)
	if !ok {
		return errors.New("perturbation matrix is not positive definite")
	}
	p.chol.LTo(&p.l)
	return nil
}

func componentIndex(name string) int {
	for i, c := range Components {
		if c == name {
			return i
		}
	}
	return -1
}

// Decorrelate sets the covariance of one component with all the others to
// zero and refactors
func (p *Perturber) Decorrelate(name string) error {
	k := componentIndex(name)
	if k < 0 {
		return fmt.Errorf("unknown perturbation component '%s'", name)
	}
	n := len(Components)
	for i := 0; i < n; i++ {
		if i != k {
			p.v[Index2D(i, k, n)] = 0.0
			p.v[Index2D(k, i, n)] = 0.0
		}
	}
	p.vc = mat.NewSymDense(n, p.v)
	return p.factor()
}

// StdDev of one component
func (p *Perturber) StdDev(name string) float64 {
	k := componentIndex(name)
	if p == nil || k < 0 {
		return 0.0
	}
	return math.Sqrt(VarFromMatrix(k, p.vc))
}

// Draw forms x = L z from independent standard normals z. The scales are
// lognormal with a mean of one.
func (p *Perturber) Draw(r NormalSource) Perturbation {
	if p == nil {
		return None
	}
	n := len(Components)
	z := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		z.SetVec(i, r.Normal(0, 1))
	}
	var x mat.VecDense
	x.MulVec(&p.l, z)

	rainVar := VarFromMatrix(1, p.vc)
	herbVar := VarFromMatrix(2, p.vc)
	return Perturbation{
		DeltaT:       x.AtVec(0),
		RainScale:    math.Exp(x.AtVec(1) - rainVar/2),
		HerbageScale: math.Exp(x.AtVec(2) - herbVar/2),
	}
}

// Return the 1D index of a 2D matrix stored as array
func Index2D(row int, col int, dim int) (loc int) {
	loc = dim*col + row // reversed because this is CMO storage
	return
}

// Returns the variance at component
func VarFromMatrix(loc int, vc mat.Symmetric) float64 {
	v := vc.At(loc, loc)
	return v
}
