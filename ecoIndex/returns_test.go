// ecoIndex project returns_test.go
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

package ecoIndex

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	hjson "github.com/hjson/hjson-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/APSIMInitiative/ApsimX-sub000/animal"
	"github.com/APSIMInitiative/ApsimX-sub000/grazMath"
	"github.com/APSIMInitiative/ApsimX-sub000/grazType"
	"github.com/APSIMInitiative/ApsimX-sub000/stock"
	"github.com/APSIMInitiative/ApsimX-sub000/supplement"
	"github.com/APSIMInitiative/ApsimX-sub000/weather"
)

const indexHjson = `
{
  saleEndpoint: weaning
  discountRate: 0.05
  woolPricePerKg: 8.0
  classSexPricePerKg: [
    "Weaner, female, 0, 100, 3.00"
    "Weaner, male, 0, 100, 3.50"
    "Mature, female, 0, 200, 1.50"
    "Mature, male, 0, 200, 1.60"
  ]
  dseCost: [1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1]
  supplementPricePerKg: { oats: 0.30 }
}
`

type stubRandom struct{}

func (stubRandom) RandomValue() float64 { return 0.5 }
func (stubRandom) RndPropn(n int, p float64) int {
	return grazMath.Round(float64(n) * p)
}

var today = weather.Day{Doy: 280, Lat: -35, MinT: 8, MaxT: 22, Wind: 2}

func parse(t *testing.T, text string) *Params {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, hjson.Unmarshal([]byte(text), &m))
	p, err := ParseIndexParams(m)
	require.NoError(t, err)
	return p
}

func pasture() grazType.GrazingInputs {
	var in grazType.GrazingInputs
	for c := 0; c < grazType.DigClassNo; c++ {
		in.Herbage[c] = grazType.IntakeRecord{
			Biomass:       500,
			Digestibility: 0.8 - 0.1*float64(c),
			CrudeProtein:  0.2,
			Degradability: 0.8,
			HeightRatio:   1.0,
		}
	}
	in.TotalGreen = 3000
	return in
}

func stockList(t *testing.T) (*stock.StockList, *stock.Paddock) {
	t.Helper()
	s := stock.NewStockList(nil)
	p := stock.NewPaddock("Home", 10, pasture())
	require.NoError(t, s.AddPaddock(p))
	return s, p
}

func merino(t *testing.T, repro grazType.ReproType, n, age int, wt float64) *animal.AnimalGroup {
	t.Helper()
	g, ok := animal.DefaultGenotypes().Get("Merino")
	require.True(t, ok)
	a, err := animal.NewAnimalGroup(g, repro, n, age, wt, 2, stubRandom{}, today, today)
	require.NoError(t, err)
	return a
}

func TestParseIndexParams(t *testing.T) {
	p := parse(t, indexHjson)
	assert.Equal(t, Weaning, p.SaleEndpoint)
	assert.Equal(t, 0.05, p.DiscountRate)
	require.Len(t, p.PriceTable, 4)
	assert.Equal(t, "male", p.PriceTable[1].Sex)
	assert.Equal(t, 3.5, p.PriceTable[1].PricePerKg)
	assert.Equal(t, 0.30, p.SupplementPrice["oats"])

	assert.Equal(t, 3.0, p.PricePerKg(grazType.Weaner, "female", 30))
	assert.Equal(t, 0.0, p.PricePerKg(grazType.Yearling, "female", 30))
	assert.Equal(t, 0.0, p.PricePerKg(grazType.Weaner, "female", 100))

	var m map[string]interface{}
	require.NoError(t, hjson.Unmarshal([]byte(`{saleEndpoint: auction, classSexPricePerKg: []}`), &m))
	_, err := ParseIndexParams(m)
	assert.Error(t, err)

	var m2 map[string]interface{}
	require.NoError(t, hjson.Unmarshal([]byte(`{classSexPricePerKg: ["Lamb, female, 0, 1"]}`), &m2))
	_, err = ParseIndexParams(m2)
	assert.Error(t, err)
}

func TestInitIndexParamsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.hjson")
	require.NoError(t, os.WriteFile(path, []byte(indexHjson), 0644))
	p, err := InitIndexParams(path)
	require.NoError(t, err)
	assert.Len(t, p.PriceTable, 4)

	_, err = InitIndexParams(filepath.Join(t.TempDir(), "none.hjson"))
	assert.Error(t, err)
}

func TestWeanersAreSold(t *testing.T) {
	p := parse(t, indexHjson)
	s, _ := stockList(t)
	_, err := s.Add(merino(t, grazType.Empty, 20, 150, 30), "Home", 1)
	require.NoError(t, err)
	_, err = s.Add(merino(t, grazType.Empty, 50, 1095, 50), "Home", 2)
	require.NoError(t, err)

	l := NewLedger(p, s)
	l.Day(1, today.Doy, s)
	require.Len(t, l.Sales, 1)
	assert.Equal(t, 20, l.Sales[0].Number)
	assert.InDelta(t, 20*l.Sales[0].LiveWeight*3.0, l.Sales[0].Value, 1e-9)
	assert.Equal(t, "female", l.Sales[0].Sex)
	require.Len(t, s.Groups, 1)
	assert.Equal(t, 2, s.Groups[0].Tag)
}

func TestCostsAndNetReturns(t *testing.T) {
	p := parse(t, indexHjson)
	s, pad := stockList(t)
	_, err := s.Add(merino(t, grazType.Castrated, 100, 1095, 50), "Home", 1)
	require.NoError(t, err)
	oats, ok := supplement.DefaultLibrary().Get("oats")
	require.True(t, ok)
	pad.FeedSupplement(40, oats, false)

	l := NewLedger(p, s)
	require.NoError(t, s.Dynamics(today, today))
	pad.EndDay()
	l.Day(365, today.Doy, s)
	require.Len(t, l.Costs, 1)
	c := l.Costs[0]
	assert.InDelta(t, s.Groups[0].DSEs()*12.0/365.0, c.Grazing, 1e-9)
	assert.InDelta(t, pad.Eaten["Oats"]*0.30, c.Supplement, 1e-9)

	// nothing new eaten, so only grazing is charged
	l.Day(366, today.Doy+1, s)
	assert.Equal(t, 0.0, l.Costs[1].Supplement)

	l.Close(366, s)
	require.Len(t, l.Sales, 1)
	assert.True(t, l.Sales[0].Closing)
	g := s.Groups[0]
	want := 100 * g.LiveWeight() * 1.6
	want += 100 * g.FleeceCutWeight() * 8.0
	assert.InDelta(t, want, l.Sales[0].Value, 1e-6)

	r := l.NetReturns()
	assert.InDelta(t, l.Sales[0].Value, r.Revenue, 1e-9)
	assert.InDelta(t, r.Revenue/1.05, r.DiscountedRevenue, 0.01*r.Revenue)
	assert.Less(t, r.DiscountedCosts, r.Costs)
	assert.InDelta(t, r.NetReturns/100, r.PerHead, 1e-9)

	var buf bytes.Buffer
	l.Write(&buf)
	assert.True(t, strings.Contains(buf.String(), "Per head"))
	assert.Len(t, strings.Split(strings.TrimSpace(buf.String()), "\n"), 3)
}

func TestFinishedStockAreSold(t *testing.T) {
	p := parse(t, `
{
  saleEndpoint: finishing
  classSexPricePerKg: []
  targetWeight: { male: 40 }
  dressingPropn: 0.45
  carcassPricePerKg: 6.0
  gridPremiums: ["0.0, -0.5", "1.0, 0.0", "1.2, 0.4"]
}`)
	assert.Equal(t, 0.4, p.gridPremium(1.3))
	assert.Equal(t, 0.0, p.gridPremium(1.1))
	assert.Equal(t, -0.5, p.gridPremium(0.8))

	s, _ := stockList(t)
	_, err := s.Add(merino(t, grazType.Castrated, 10, 500, 45), "Home", 1)
	require.NoError(t, err)
	_, err = s.Add(merino(t, grazType.Castrated, 10, 500, 30), "Home", 2)
	require.NoError(t, err)

	l := NewLedger(p, s)
	l.Day(1, today.Doy, s)
	require.Len(t, l.Sales, 1)
	assert.Equal(t, 1, l.Sales[0].Tag)
	wt := l.Sales[0].LiveWeight
	assert.Greater(t, l.Sales[0].Value, 10*wt*0.45*5.0)
	require.Len(t, s.Groups, 1)
}

func TestMonthOf(t *testing.T) {
	assert.Equal(t, 1, monthOf(1))
	assert.Equal(t, 2, monthOf(32))
	assert.Equal(t, 12, monthOf(365))
}
