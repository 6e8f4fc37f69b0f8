// supplement
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

package supplement

import (
	"fmt"
	"math"

	"github.com/APSIMInitiative/ApsimX-sub000/grazMath"
)

// Default M/D conversion coefficients
const (
	rghgMEDMIntcpt = -1.707
	rghgMEDMDMD    = 17.2
	concMEDMIntcpt = 1.3
	concMEDMDMD    = 13.3
	concMEDMEE     = 23.4
)

// Supplement is a feed offered to animals. Proportions are on a DM basis except DMPropn.
type Supplement struct {
	Name            string
	IsRoughage      bool
	DMPropn         float64 // dry matter content of the fresh feed
	DMDigestibility float64
	ME2DM           float64 // MJ/kg DM
	EtherExtract    float64
	CrudeProt       float64
	DegProt         float64 // degradability of the crude protein
	ADIP2CP         float64 // acid detergent insoluble protein : crude protein
	Phosphorus      float64
	Sulphur         float64
	AshAlkalinity   float64 // mol/kg
	MaxPassage      float64 // maximum proportion escaping the rumen undegraded
}

// ConvertDMDToME2DM is the default M/D for a digestibility
func ConvertDMDToME2DM(dmd float64, isRoughage bool, ee float64) float64 {
	if isRoughage {
		return math.Max(0.0, rghgMEDMIntcpt+rghgMEDMDMD*dmd)
	}
	return math.Max(0.0, concMEDMIntcpt+concMEDMDMD*dmd+concMEDMEE*ee)
}

// ConvertME2DMToDMD inverts ConvertDMDToME2DM, bounded to [0, 0.9999]
func ConvertME2DMToDMD(me2dm float64, isRoughage bool, ee float64) float64 {
	var r float64
	if isRoughage {
		r = (me2dm - rghgMEDMIntcpt) / rghgMEDMDMD
	} else {
		r = (me2dm - (concMEDMEE*ee + concMEDMIntcpt)) / concMEDMDMD
	}
	return math.Max(0.0, math.Min(0.9999, r))
}

func (s Supplement) DefaultME2DM() float64 {
	return ConvertDMDToME2DM(s.DMDigestibility, s.IsRoughage, s.EtherExtract)
}

func (s Supplement) DefaultDMD() float64 {
	return ConvertME2DMToDMD(s.ME2DM, s.IsRoughage, s.EtherExtract)
}

func (s Supplement) DefaultADIP2CP() (float64, error) {
	var r float64
	if s.IsRoughage {
		r = 0.19 * (1.0 - s.DegProt)
	} else {
		r = math.Max(0.03, 0.87-1.09*s.DegProt)
	}
	if r < 0.0 || r > 1.0 {
		return 0, fmt.Errorf("default ADIP:CP out of range for %s: %g", s.Name, r)
	}
	return r, nil
}

func (s Supplement) DefaultPhosphorus() float64 {
	if s.IsRoughage {
		return grazMath.Dim(0.0062*s.DMDigestibility, 0.0016)
	}
	return 0.051 * s.DegProt * s.CrudeProt
}

func (s Supplement) DefaultSulphur() float64 {
	if s.IsRoughage {
		return 0.0095*s.CrudeProt + 0.0011
	}
	return 0.0126 * s.CrudeProt
}

// Mix blends s1 and s2 with propn1 of s1 on a fresh-weight basis.
// Protein quality is mixed on a crude protein basis, everything else on a DM basis.
func Mix(s1, s2 Supplement, propn1 float64) Supplement {
	var r Supplement
	if propn1 >= 0.5 {
		r.IsRoughage = s1.IsRoughage
		r.Name = s1.Name
	} else {
		r.IsRoughage = s2.IsRoughage
		r.Name = s2.Name
	}
	propn2 := 1.0 - propn1

	dmPropn1 := grazMath.XDiv(propn1*s1.DMPropn, propn1*s1.DMPropn+propn2*s2.DMPropn)
	dmPropn2 := 1.0 - dmPropn1

	cp1 := propn1 * s1.DMPropn * s1.CrudeProt
	cp2 := propn2 * s2.DMPropn * s2.CrudeProt
	cpPropn1 := propn1
	if cp1+cp2 > 0.0 {
		cpPropn1 = cp1 / (cp1 + cp2)
	}
	cpPropn2 := 1.0 - cpPropn1

	dm := func(a, b float64) float64 { return dmPropn1*a + dmPropn2*b }

	r.DMPropn = propn1*s1.DMPropn + propn2*s2.DMPropn
	r.DMDigestibility = dm(s1.DMDigestibility, s2.DMDigestibility)
	r.ME2DM = dm(s1.ME2DM, s2.ME2DM)
	r.EtherExtract = dm(s1.EtherExtract, s2.EtherExtract)
	r.CrudeProt = dm(s1.CrudeProt, s2.CrudeProt)
	r.DegProt = cpPropn1*s1.DegProt + cpPropn2*s2.DegProt
	r.ADIP2CP = cpPropn1*s1.ADIP2CP + cpPropn2*s2.ADIP2CP
	r.Phosphorus = dm(s1.Phosphorus, s2.Phosphorus)
	r.Sulphur = dm(s1.Sulphur, s2.Sulphur)
	r.AshAlkalinity = dm(s1.AshAlkalinity, s2.AshAlkalinity)
	r.MaxPassage = dm(s1.MaxPassage, s2.MaxPassage)
	return r
}
