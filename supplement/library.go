// library
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
	"os"
	"sort"
	"strings"

	hjson "github.com/hjson/hjson-go"
)

// defaultLibrary is a small set of common feeds
const defaultLibrary = `
{
  supplements: [
    { name: "Oats",        roughage: false, dmPropn: 0.89, dmd: 0.68, ee: 0.05,  cp: 0.09, dg: 0.83, phos: 0.0031, sulf: 0.0012, maxPassage: 0.0 }
    { name: "Barley",      roughage: false, dmPropn: 0.89, dmd: 0.80, ee: 0.02,  cp: 0.12, dg: 0.75, phos: 0.0035, sulf: 0.0015, maxPassage: 0.0 }
    { name: "Lupins",      roughage: false, dmPropn: 0.90, dmd: 0.85, ee: 0.055, cp: 0.35, dg: 0.85, phos: 0.0030, sulf: 0.0023, maxPassage: 0.0 }
    { name: "Lucerne hay", roughage: true,  dmPropn: 0.85, dmd: 0.62, ee: 0.02,  cp: 0.20, dg: 0.78, phos: 0.0023, sulf: 0.0027, maxPassage: 0.0 }
    { name: "Pasture hay", roughage: true,  dmPropn: 0.85, dmd: 0.55, ee: 0.02,  cp: 0.09, dg: 0.70, phos: 0.0018, sulf: 0.0015, maxPassage: 0.0 }
    { name: "Whole cottonseed", roughage: false, dmPropn: 0.91, dmd: 0.70, ee: 0.18, cp: 0.23, dg: 0.65, phos: 0.0060, sulf: 0.0026, maxPassage: 0.2 }
  ]
}`

// Library is a name-indexed set of supplements
type Library map[string]Supplement

// DefaultLibrary returns the built-in feeds
func DefaultLibrary() Library {
	lib, err := ParseLibrary([]byte(defaultLibrary))
	if err != nil {
		panic(err) // the built-in text is fixed
	}
	return lib
}

// LoadLibrary reads an hjson supplement file
func LoadLibrary(fileName string) (Library, error) {
	b, err := os.ReadFile(fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to open supplement file %s: %w", fileName, err)
	}
	return ParseLibrary(b)
}

// ParseLibrary decodes the supplements: key of an hjson document.
// Missing M/D, ADIP:CP, P and S take their default values.
func ParseLibrary(b []byte) (Library, error) {
	var param map[string]interface{}
	if err := hjson.Unmarshal(b, &param); err != nil {
		return nil, fmt.Errorf("supplement library: %w", err)
	}
	array, ok := param["supplements"].([]interface{})
	if !ok {
		return nil, fmt.Errorf("'supplements:' key not found in supplement library")
	}

	lib := make(Library)
	for i := range array {
		m, ok := array[i].(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("supplement %d is not an object", i)
		}
		s, err := FromMap(m)
		if err != nil {
			return nil, err
		}
		lib[strings.ToLower(s.Name)] = s
	}
	return lib, nil
}

// FromMap builds a supplement from decoded hjson
func FromMap(m map[string]interface{}) (Supplement, error) {
	var s Supplement
	name, ok := m["name"].(string)
	if !ok || name == "" {
		return s, fmt.Errorf("supplement without a name")
	}
	s.Name = name
	s.IsRoughage, _ = m["roughage"].(bool)
	s.DMPropn = floatOr(m, "dmPropn", 0.9)
	s.DMDigestibility = floatOr(m, "dmd", 0)
	s.EtherExtract = floatOr(m, "ee", 0)
	s.CrudeProt = floatOr(m, "cp", 0)
	s.DegProt = floatOr(m, "dg", 0)
	s.AshAlkalinity = floatOr(m, "ashAlk", 0)
	s.MaxPassage = floatOr(m, "maxPassage", 0)

	if v, ok := m["me2dm"].(float64); ok {
		s.ME2DM = v
		if _, set := m["dmd"]; !set {
			s.DMDigestibility = s.DefaultDMD()
		}
	} else {
		s.ME2DM = s.DefaultME2DM()
	}
	if v, ok := m["adip2cp"].(float64); ok {
		s.ADIP2CP = v
	} else {
		adip, err := s.DefaultADIP2CP()
		if err != nil {
			return s, err
		}
		s.ADIP2CP = adip
	}
	if v, ok := m["phos"].(float64); ok {
		s.Phosphorus = v
	} else {
		s.Phosphorus = s.DefaultPhosphorus()
	}
	if v, ok := m["sulf"].(float64); ok {
		s.Sulphur = v
	} else {
		s.Sulphur = s.DefaultSulphur()
	}
	return s, nil
}

// Get finds a supplement by name, ignoring case
func (l Library) Get(name string) (Supplement, bool) {
	s, ok := l[strings.ToLower(name)]
	return s, ok
}

// Names lists the supplements alphabetically
func (l Library) Names() []string {
	names := make([]string, 0, len(l))
	for _, s := range l {
		names = append(names, s.Name)
	}
	sort.Strings(names)
	return names
}

func floatOr(m map[string]interface{}, key string, def float64) float64 {
	if v, ok := m[key].(float64); ok {
		return v
	}
	return def
}
