// grazType project grazType.go
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

// Shared constants and the records passed between pasture, supplement and animal models.

const (
	VeryLarge = 1.0e6
	VerySmall = 1.0e-4

	DigClassNo  = 6 // herbage digestibility classes 0.8 down to 0.3
	MaxPlantSpp = 80

	Unripe = 0 // seed ripeness index
	Ripe   = 1

	DM2Carbon   = 0.4
	N2Protein   = 6.25
	HerbageE2DM = 17.0 // MJ/kg
	FatE2DM     = 36.0
	ProteinE2DM = 14.0
)

// ClassDig holds the digestibility of each herbage class. The extra final
// class is the "nothing left to eat" class used by the intake solver.
var ClassDig = [DigClassNo + 1]float64{0.8, 0.7, 0.6, 0.5, 0.4, 0.3, 0.3}

// Organic matter elements
type TOMElement int

const (
	C TOMElement = iota
	N
	P
	S
)

type AnimalType int

const (
	Sheep AnimalType = iota
	Cattle
)

var AnimalText = []string{"Sheep", "Cattle"}

func (a AnimalType) String() string {
	return AnimalText[a]
}

type AgeType int

const (
	LambCalf AgeType = iota
	Weaner
	Yearling
	TwoYrOld
	Mature
)

var AgeText = []string{"Young", "Weaner", "Yearling", "2-3yo", "Mature"}

func (a AgeType) String() string {
	return AgeText[a]
}

// ReproType orders males first; the order indexes SRWScalars
type ReproType int

const (
	Castrated ReproType = iota
	Male
	Empty
	EarlyPreg
	LatePreg
)

var ReproText = []string{"Castrated", "Male", "Empty", "EarlyPreg", "LatePreg"}

func (r ReproType) String() string {
	return ReproText[r]
}

type LactType int

const (
	Dry LactType = iota
	Lactating
	Suckling
)

var LactText = []string{"Dry", "Lactating", "Suckling"}

func (l LactType) String() string {
	return LactText[l]
}

// DMPool is a dry-matter pool with its nutrient contents (kg)
type DMPool struct {
	DM     float64
	Nu     [4]float64 // indexed by TOMElement, C unused
	AshAlk float64
}

// Add returns the sum of two pools
func (p DMPool) Add(q DMPool) DMPool {
	p.DM += q.DM
	for e := N; e <= S; e++ {
		p.Nu[e] += q.Nu[e]
	}
	p.AshAlk += q.AshAlk
	return p
}

// Multiply returns the pool scaled by x
func (p DMPool) Multiply(x float64) DMPool {
	r := DMPool{DM: x * p.DM, AshAlk: x * p.AshAlk}
	for e := N; e <= S; e++ {
		r.Nu[e] = x * p.Nu[e]
	}
	return r
}

// IntakeRecord describes one herbage class or seed pool on offer
type IntakeRecord struct {
	Biomass       float64 // kg/ha
	Digestibility float64
	CrudeProtein  float64
	Degradability float64
	PhosContent   float64
	SulfContent   float64
	HeightRatio   float64
	AshAlkalinity float64
}
