// simulate project simulateDays.go
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
	"fmt"
	"io"

	"github.com/APSIMInitiative/ApsimX-sub000/animal"
	"github.com/APSIMInitiative/ApsimX-sub000/ecoIndex"
	"github.com/APSIMInitiative/ApsimX-sub000/logger"
	"github.com/APSIMInitiative/ApsimX-sub000/randFactory"
	"github.com/APSIMInitiative/ApsimX-sub000/stock"
	"github.com/APSIMInitiative/ApsimX-sub000/store"
	"github.com/APSIMInitiative/ApsimX-sub000/supplement"
	"github.com/APSIMInitiative/ApsimX-sub000/varStuff"
	"github.com/APSIMInitiative/ApsimX-sub000/weather"
)

// Options override or add to what the simulation file says
type Options struct {
	Days     int    // run length, 0 for the file's days:
	DBPath   string // sqlite output, "" for the file's database:
	NoDB     bool   // skip recording even if the file names a database
	Seed     uint64
	Label    string
	Perturb  varStuff.Perturbation
	AgeTable io.Writer // daily head counts by age class, nil for none
	Metrics  *stock.Metrics
}

// Run is one simulation built from a parameter map
type Run struct {
	StartDoy    int
	Days        int
	Weather     weather.Series
	Stock       *stock.StockList
	Genotypes   animal.Genotypes
	Supplements supplement.Library
	Feeding     []Feeding
	Index       *ecoIndex.Params
	Ledger      *ecoIndex.Ledger
	Recorder    *store.Recorder

	rnd      *randFactory.RandFactory
	ageTable io.Writer
}

// Setup builds a run. The caller must Close it.
func Setup(param map[string]interface{}, opt Options) (*Run, error) {
	r := &Run{
		StartDoy: intOr(param, "startDoy", 1),
		Days:     intOr(param, "days", 365),
		rnd:      randFactory.NewRandFactory(opt.Seed),
		ageTable: opt.AgeTable,
	}
	if opt.Days > 0 {
		r.Days = opt.Days
	}
	if r.StartDoy < 1 || r.StartDoy > 365 {
		return nil, fmt.Errorf("startDoy %d outside 1-365", r.StartDoy)
	}
	if opt.Perturb == (varStuff.Perturbation{}) {
		opt.Perturb = varStuff.None
	}

	var err error
	if r.Genotypes, err = loadGenotypes(param); err != nil {
		return nil, err
	}
	if r.Supplements, err = loadSupplements(param); err != nil {
		return nil, err
	}
	w, err := weather.FromParam(param, r.Days)
	if err != nil {
		return nil, err
	}
	r.Weather = w.Scale(opt.Perturb.DeltaT, opt.Perturb.RainScale)

	r.Stock = stock.NewStockList(opt.Metrics)
	r.Stock.WeanAge = intOr(param, "weanAge", 0)
	if err := r.addPaddocks(param, opt.Perturb.HerbageScale); err != nil {
		return nil, err
	}
	if err := r.addGroups(param); err != nil {
		return nil, err
	}
	if err := r.addFeeding(param); err != nil {
		return nil, err
	}

	if err := r.setupIndex(param); err != nil {
		return nil, err
	}

	dbPath, _ := param["database"].(string)
	if opt.DBPath != "" {
		dbPath = opt.DBPath
	}
	if dbPath != "" && !opt.NoDB {
		if r.Recorder, err = store.Open(dbPath, opt.Label, int64(opt.Seed)); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Run) addPaddocks(param map[string]interface{}, herbageScale float64) error {
	array, ok := param["paddocks"].([]interface{})
	if !ok || len(array) == 0 {
		return fmt.Errorf("'paddocks:' key not found")
	}
	for i := range array {
		m, ok := array[i].(map[string]interface{})
		if !ok {
			return fmt.Errorf("paddock %d is not an object", i+1)
		}
		p, err := parsePaddock(m)
		if err != nil {
			return err
		}
		for f := range p.Forages {
			p.Forages[f] = p.Forages[f].Scale(herbageScale)
		}
		p.Regrowth *= herbageScale
		if err := r.Stock.AddPaddock(p); err != nil {
			return err
		}
	}
	return nil
}

func (r *Run) addGroups(param map[string]interface{}) error {
	array, ok := param["groups"].([]interface{})
	if !ok {
		return fmt.Errorf("'groups:' key not found")
	}
	day := r.Weather.On(0, r.StartDoy)
	for i := range array {
		m, ok := array[i].(map[string]interface{})
		if !ok {
			return fmt.Errorf("group %d is not an object", i+1)
		}
		a, paddock, tag, err := parseGroup(m, r.Genotypes, r.rnd, day, day)
		if err != nil {
			return fmt.Errorf("group %d: %w", i+1, err)
		}
		if _, err := r.Stock.Add(a, paddock, tag); err != nil {
			return fmt.Errorf("group %d: %w", i+1, err)
		}
	}
	return nil
}

func (r *Run) addFeeding(param map[string]interface{}) error {
	array, _ := param["feeding"].([]interface{})
	for i := range array {
		m, ok := array[i].(map[string]interface{})
		if !ok {
			return fmt.Errorf("feeding %d is not an object", i+1)
		}
		f, err := parseFeeding(m, r.Supplements)
		if err != nil {
			return fmt.Errorf("feeding %d: %w", i+1, err)
		}
		if r.Stock.Paddock(f.Paddock) == nil {
			return fmt.Errorf("feeding %d: unknown paddock %q", i+1, f.Paddock)
		}
		r.Feeding = append(r.Feeding, f)
	}
	return nil
}

// prices: is either the name of an index hjson file or the index itself
func (r *Run) setupIndex(param map[string]interface{}) error {
	var err error
	switch v := param["prices"].(type) {
	case string:
		r.Index, err = ecoIndex.InitIndexParams(v)
	case map[string]interface{}:
		r.Index, err = ecoIndex.ParseIndexParams(v)
	default:
		return nil
	}
	if err != nil {
		return err
	}
	r.Ledger = ecoIndex.NewLedger(r.Index, r.Stock)
	return nil
}

// Day simulates run day i (0-based)
func (r *Run) Day(i int) error {
	w := r.Weather.On(i, r.StartDoy)
	day := i + 1

	for _, f := range r.Feeding {
		if f.on(day) {
			r.Stock.Paddock(f.Paddock).FeedSupplement(f.KgPerDay, f.Supplement, f.First)
		}
	}

	if err := r.Stock.Dynamics(w, w); err != nil {
		return fmt.Errorf("day %d: %w", day, err)
	}
	if r.Recorder != nil {
		if err := r.Recorder.RecordDay(day, w.Doy, r.Stock); err != nil {
			return fmt.Errorf("day %d: %w", day, err)
		}
	}
	r.Stock.WriteAgeDistribution(r.ageTable, day)

	for _, p := range r.Stock.Paddocks {
		p.EndDay()
	}
	if r.Ledger != nil {
		r.Ledger.Day(day, w.Doy, r.Stock)
	}
	return nil
}

// Execute runs every day and closes the books. The returns are zero when
// the run has no prices.
func (r *Run) Execute() (ecoIndex.Returns, error) {
	for i := 0; i < r.Days; i++ {
		if err := r.Day(i); err != nil {
			return ecoIndex.Returns{}, err
		}
		if logger.Verbose() && (i+1)%30 == 0 {
			fmt.Printf("Day %d: %d head\n", i+1, r.Stock.HeadCount())
		}
	}
	if r.Ledger == nil {
		return ecoIndex.Returns{}, nil
	}
	r.Ledger.Close(r.Days, r.Stock)
	return r.Ledger.NetReturns(), nil
}

func (r *Run) Close() error {
	if r.Recorder != nil {
		return r.Recorder.Close()
	}
	return nil
}
