// supplement_test
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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConversions(t *testing.T) {
	assert.InDelta(t, -1.707+17.2*0.6, ConvertDMDToME2DM(0.6, true, 0), 1e-12)
	assert.InDelta(t, 1.3+13.3*0.8+23.4*0.05, ConvertDMDToME2DM(0.8, false, 0.05), 1e-12)
	assert.Equal(t, 0.0, ConvertDMDToME2DM(0.05, true, 0))

	me := ConvertDMDToME2DM(0.7, false, 0.03)
	assert.InDelta(t, 0.7, ConvertME2DMToDMD(me, false, 0.03), 1e-12)

	r := Supplement{IsRoughage: true, DegProt: 0.7}
	adip, err := r.DefaultADIP2CP()
	require.NoError(t, err)
	assert.InDelta(t, 0.057, adip, 1e-12)

	c := Supplement{DegProt: 0.9}
	adip, err = c.DefaultADIP2CP()
	require.NoError(t, err)
	assert.InDelta(t, 0.03, adip, 1e-12)
}

func TestMix(t *testing.T) {
	hay := Supplement{Name: "hay", IsRoughage: true, DMPropn: 0.8, DMDigestibility: 0.5, CrudeProt: 0.1, DegProt: 0.6}
	grain := Supplement{Name: "grain", DMPropn: 0.9, DMDigestibility: 0.8, CrudeProt: 0.2, DegProt: 0.9}

	m := Mix(hay, grain, 0.5)
	assert.True(t, m.IsRoughage)
	assert.InDelta(t, 0.85, m.DMPropn, 1e-12)

	dm1 := 0.4 / 0.85
	assert.InDelta(t, dm1*0.5+(1-dm1)*0.8, m.DMDigestibility, 1e-12)

	cp1 := 0.5 * 0.8 * 0.1
	cp2 := 0.5 * 0.9 * 0.2
	assert.InDelta(t, (cp1*0.6+cp2*0.9)/(cp1+cp2), m.DegProt, 1e-12)

	// a full proportion reproduces the supplement
	one := Mix(grain, hay, 1.0)
	assert.InDelta(t, grain.DMDigestibility, one.DMDigestibility, 1e-12)
	assert.False(t, one.IsRoughage)
}

func TestRation(t *testing.T) {
	lib := DefaultLibrary()
	oats, ok := lib.Get("OATS")
	require.True(t, ok)
	hay, ok := lib.Get("lucerne hay")
	require.True(t, ok)

	var r Ration
	r.Add(oats, 0.3, 0.25)
	r.Add(hay, 0.1, 0.2)
	assert.InDelta(t, 0.4, r.TotalAmount(), 1e-12)
	assert.InDelta(t, 0.75, r.FWFract(0), 1e-12)
	assert.InDelta(t, (0.3*0.25+0.1*0.2)/0.4, r.AverageCost(), 1e-12)

	r.SetTotalAmount(0.8)
	assert.InDelta(t, 0.6, r.Items[0].Amount, 1e-12)
	assert.InDelta(t, 0.2, r.Items[1].Amount, 1e-12)

	ave := r.AverageSuppt()
	assert.False(t, ave.IsRoughage)
	assert.Greater(t, ave.DMDigestibility, hay.DMDigestibility)
	assert.Less(t, ave.DMDigestibility, oats.DMDigestibility)

	var empty Ration
	empty.Add(oats, 0, 0)
	empty.Add(hay, 0, 0)
	empty.SetTotalAmount(1.0)
	assert.InDelta(t, 0.5, empty.Items[1].Amount, 1e-12)
	assert.Equal(t, 0.0, (&Ration{}).AverageSuppt().DMPropn)
}

func TestLoadLibrary(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "supp.hjson")
	text := `{
  supplements: [
    { name: "Wheat", dmPropn: 0.9, me2dm: 12.5, ee: 0.02, cp: 0.12, dg: 0.8 }
  ]
}`
	require.NoError(t, os.WriteFile(f, []byte(text), 0644))

	lib, err := LoadLibrary(f)
	require.NoError(t, err)
	w, ok := lib.Get("wheat")
	require.True(t, ok)
	assert.Equal(t, 12.5, w.ME2DM)
	assert.InDelta(t, ConvertME2DMToDMD(12.5, false, 0.02), w.DMDigestibility, 1e-12)
	assert.InDelta(t, 0.0126*0.12, w.Sulphur, 1e-12)
	assert.Equal(t, []string{"Wheat"}, lib.Names())

	_, err = LoadLibrary(filepath.Join(dir, "missing.hjson"))
	assert.Error(t, err)
}
