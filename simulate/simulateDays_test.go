// simulate project simulateDays_test.go
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

package simulate

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	hjson "github.com/hjson/hjson-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/APSIMInitiative/ApsimX-sub000/grazType"
	"github.com/APSIMInitiative/ApsimX-sub000/varStuff"
)

const simHjson = `
{
  comment: two paddocks of ewes and wethers
  startDoy: 240
  days: 20
  weanAge: 100
  weather: {
    latitude: -35
    constant: "6, 17, 1.5, 2.5"
  }
  paddocks: [
    {
      name: North
      area: 20
      regrowth: 20
      herbage: [
        "300, 0.80, 0.22, 0.8, 1"
        "400, 0.75, 0.18, 0.8, 1"
        "400, 0.70, 0.15, 0.7, 1"
        "300, 0.60, 0.10, 0.6, 1"
      ]
    }
    {
      name: South
      area: 10
      herbage: [
        "100, 0.70, 0.12, 0.7"
        "200, 0.60, 0.08, 0.6"
      ]
    }
  ]
  groups: [
    { paddock: North, tag: 1, breed: Merino, sex: female, number: 100, ageDays: 1095, liveWeight: 50, fleece: 2, lactation: 30 }
    { paddock: South, tag: 2, breed: Merino, sex: wether, number: 50, ageDays: 600, liveWeight: 40, fleece: 3 }
  ]
  feeding: [
    { paddock: South, supplement: oats, kgPerDay: 15, from: 5, to: 10 }
  ]
  prices: {
    saleEndpoint: endOfRun
    discountRate: 0.05
    woolPricePerKg: 7
    classSexPricePerKg: [
      "Young, female, 0, 100, 4"
      "Young, male, 0, 100, 4"
      "Mature, female, 0, 200, 2"
      "Yearling, male, 0, 200, 2.5"
    ]
    dseCost: [1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1]
    supplementPricePerKg: { oats: 0.3 }
  }
}
`

func param(t *testing.T, text string) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, hjson.Unmarshal([]byte(text), &m))
	return m
}

func TestSetup(t *testing.T) {
	r, err := Setup(param(t, simHjson), Options{Seed: 1, NoDB: true})
	require.NoError(t, err)
	defer r.Close()

	assert.Equal(t, 20, r.Days)
	assert.Equal(t, 240, r.StartDoy)
	require.Len(t, r.Stock.Paddocks, 2)
	north := r.Stock.Paddock("north")
	require.NotNil(t, north)
	assert.Equal(t, 1400.0, north.Available().TotalHerbage())
	assert.Equal(t, 20.0, north.Regrowth)
	assert.Equal(t, 1.0, r.Stock.Paddock("South").Available().Herbage[0].HeightRatio)

	require.Len(t, r.Stock.Groups, 2)
	ewes := r.Stock.Groups[0]
	assert.Equal(t, "North", ewes.Paddock.Name)
	assert.Equal(t, 30, ewes.Lactation())
	require.NotNil(t, ewes.Young)
	assert.Equal(t, grazType.Castrated, r.Stock.Groups[1].ReproState())
	assert.Equal(t, 100, r.Stock.WeanAge)

	require.Len(t, r.Feeding, 1)
	assert.True(t, r.Feeding[0].on(5))
	assert.False(t, r.Feeding[0].on(11))
	assert.NotNil(t, r.Ledger)
	assert.Nil(t, r.Recorder)
}

func TestSetupErrors(t *testing.T) {
	cases := map[string]string{
		"no paddocks":   `{ weather: { constant: "5, 15, 0, 2" }, groups: [] }`,
		"unknown breed": `{ weather: { constant: "5, 15, 0, 2" }, paddocks: [{ name: A, area: 1, herbage: ["100, 0.7, 0.1, 0.7"] }], groups: [{ paddock: A, breed: Dorper, number: 1, liveWeight: 40 }] }`,
		"bad paddock":   `{ weather: { constant: "5, 15, 0, 2" }, paddocks: [{ name: A, area: 1, herbage: ["100, 0.7, 0.1, 0.7"] }], groups: [{ paddock: B, breed: Merino, number: 1, liveWeight: 40 }] }`,
		"bad sex":       `{ weather: { constant: "5, 15, 0, 2" }, paddocks: [{ name: A, area: 1, herbage: ["100, 0.7, 0.1, 0.7"] }], groups: [{ paddock: A, breed: Merino, sex: hen, number: 1, liveWeight: 40 }] }`,
		"bad herbage":   `{ weather: { constant: "5, 15, 0, 2" }, paddocks: [{ name: A, area: 1, herbage: ["100, 0.7"] }], groups: [] }`,
		"bad feed":      `{ weather: { constant: "5, 15, 0, 2" }, paddocks: [{ name: A, area: 1, herbage: ["100, 0.7, 0.1, 0.7"] }], groups: [], feeding: [{ paddock: A, supplement: caviar }] }`,
		"no weather":    `{ paddocks: [{ name: A, area: 1, herbage: ["100, 0.7, 0.1, 0.7"] }], groups: [] }`,
	}
	for name, text := range cases {
		_, err := Setup(param(t, text), Options{})
		assert.Error(t, err, name)
	}
}

func TestExecute(t *testing.T) {
	var ages bytes.Buffer
	db := filepath.Join(t.TempDir(), "sim.db")
	r, err := Setup(param(t, simHjson), Options{Seed: 3, DBPath: db, Label: "test", AgeTable: &ages})
	require.NoError(t, err)
	defer r.Close()
	require.NotNil(t, r.Recorder)

	ret, err := r.Execute()
	require.NoError(t, err)
	assert.Greater(t, ret.Revenue, 0.0)
	assert.Greater(t, ret.Costs, 0.0)
	assert.Less(t, ret.DiscountedRevenue, ret.Revenue)

	// one line per paddock per day
	lines := strings.Split(strings.TrimSpace(ages.String()), "\n")
	assert.Len(t, lines, 40)

	south := r.Stock.Paddock("South")
	assert.Greater(t, south.Eaten["Oats"], 0.0)
	assert.LessOrEqual(t, south.Eaten["Oats"], 6*15.0+1e-9)

	rows, err := r.Recorder.Groups(20)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
	wts, err := r.Recorder.LiveWeightSeries(2)
	require.NoError(t, err)
	assert.Len(t, wts, 20)
}

func TestPerturbation(t *testing.T) {
	p := varStuff.Perturbation{DeltaT: 2, RainScale: 0.5, HerbageScale: 1.5}
	r, err := Setup(param(t, simHjson), Options{Seed: 1, NoDB: true, Perturb: p})
	require.NoError(t, err)
	defer r.Close()

	day := r.Weather.On(0, r.StartDoy)
	assert.Equal(t, 8.0, day.MinT)
	assert.Equal(t, 19.0, day.MaxT)
	assert.Equal(t, 0.75, day.Rain)
	assert.InDelta(t, 2100.0, r.Stock.Paddock("North").Available().TotalHerbage(), 1e-9)
	assert.Equal(t, 30.0, r.Stock.Paddock("North").Regrowth)
}

func TestLoadParam(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.hjson")
	require.NoError(t, os.WriteFile(path, []byte(simHjson), 0644))
	m, err := LoadParam(path)
	require.NoError(t, err)
	assert.Equal(t, 20.0, m["days"])

	_, err = LoadParam(filepath.Join(t.TempDir(), "missing.hjson"))
	assert.Error(t, err)
}
