// summary
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

package stock

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/APSIMInitiative/ApsimX-sub000/animal"
	"github.com/APSIMInitiative/ApsimX-sub000/grazType"
)

// GroupSummary is one group's state at the end of a day, per head unless noted
type GroupSummary struct {
	Group     int    `db:"grp"`
	Paddock   string `db:"paddock"`
	Tag       int    `db:"tag"`
	Breed     string `db:"breed"`
	Sex       string `db:"sex"`
	Young     bool   `db:"young"`
	Number    int    `db:"number"`
	AgeDays   int    `db:"age_days"`
	Repro     string `db:"repro"`
	Lactation int    `db:"lactation"`
	NoYoung   int    `db:"no_young"`
	Pregnancy int    `db:"pregnancy"`

	LiveWeight   float64 `db:"live_weight"`
	BaseWeight   float64 `db:"base_weight"`
	WeightChange float64 `db:"weight_change"`
	Condition    float64 `db:"condition"`
	FleeceWeight float64 `db:"fleece_weight"`
	FibreDiam    float64 `db:"fibre_diam"`
	MilkYield    float64 `db:"milk_yield"`

	PotIntake     float64 `db:"pot_intake"`
	HerbageDMI    float64 `db:"herbage_dmi"`
	SuppDMI       float64 `db:"supp_dmi"`
	MEIntake      float64 `db:"me_intake"`
	Digestibility float64 `db:"digestibility"`
	RDPEffect     float64 `db:"rdp_effect"`
	Methane       float64 `db:"methane"`
	FaecalN       float64 `db:"faecal_n"`
	UrineN        float64 `db:"urine_n"`
	DSE           float64 `db:"dse"` // group total, young excluded
}

// Summaries lists the groups with their young as separate rows. Group
// numbers are 1-based positions in the list.
func (s *StockList) Summaries() []GroupSummary {
	var rows []GroupSummary
	for i, g := range s.Groups {
		for k, grp := range g.Members() {
			st := grp.AnimalState
			sex := "female"
			switch {
			case grp.FemaleNo == 0:
				sex = "male"
			case grp.MaleNo > 0:
				sex = "mixed"
			}
			rows = append(rows, GroupSummary{
				Group:         i + 1,
				Paddock:       g.Paddock.Name,
				Tag:           g.Tag,
				Breed:         grp.Breed(),
				Sex:           sex,
				Young:         k == 1,
				Number:        grp.NoAnimals(),
				AgeDays:       grp.AgeDays,
				Repro:         grp.ReproState().String(),
				Lactation:     grp.Lactation(),
				NoYoung:       grp.NoOffspring(),
				Pregnancy:     grp.Pregnancy(),
				LiveWeight:    grp.LiveWeight(),
				BaseWeight:    grp.BaseWeight,
				WeightChange:  grp.WeightChange(),
				Condition:     grp.BodyCondition(),
				FleeceWeight:  grp.FleeceCutWeight(),
				FibreDiam:     grp.FibreDiam,
				MilkYield:     grp.MilkYield(),
				PotIntake:     grp.PotIntake,
				HerbageDMI:    st.DMIntake.Herbage,
				SuppDMI:       st.DMIntake.Supp,
				MEIntake:      st.MEIntake.Total,
				Digestibility: st.Digestibility.Solid,
				RDPEffect:     st.RDPIntakeEffect,
				Methane:       grp.MethaneWeight(),
				FaecalN:       grp.FaecalN(),
				UrineN:        grp.UrineN(),
				DSE:           float64(grp.NoAnimals()) * st.MEIntake.Solid / animal.DSERefMEI,
			})
		}
	}
	return rows
}

// PaddockTotals are the stocking of one paddock
type PaddockTotals struct {
	Head        int
	MassPerHa   float64 // kg/ha live weight
	MeanWeight  float64 // kg/head, weighted by numbers
	SDWeight    float64
	DSEPerHa    float64
	HerbageLeft float64 // kg/ha
}

func (s *StockList) PaddockTotals(p *Paddock) PaddockTotals {
	var wts, heads, dses []float64
	for _, g := range s.inPaddock(p) {
		for _, grp := range g.Members() {
			wts = append(wts, grp.LiveWeight())
			heads = append(heads, float64(grp.NoAnimals()))
		}
		dses = append(dses, g.DSEs())
	}
	var t PaddockTotals
	t.HerbageLeft = p.Available().TotalHerbage()
	if len(wts) == 0 {
		return t
	}
	t.Head = int(floats.Sum(heads))
	switch {
	case t.Head > 1:
		t.MeanWeight, t.SDWeight = stat.MeanStdDev(wts, heads)
	case t.Head == 1:
		t.MeanWeight = stat.Mean(wts, heads)
	}
	if p.Area > 0.0 {
		t.MassPerHa = floats.Dot(wts, heads) / p.Area
		t.DSEPerHa = floats.Sum(dses) / p.Area
	}
	return t
}

// WriteAgeDistribution appends a row of head counts by age class for each
// paddock: day, paddock, then lambs/calves, weaners, yearlings, two year
// olds and mature animals
func (s *StockList) WriteAgeDistribution(w io.Writer, day int) {
	if w == nil {
		return
	}
	for _, p := range s.Paddocks {
		var counts [grazType.Mature + 1]int
		for _, g := range s.inPaddock(p) {
			for _, grp := range g.Members() {
				counts[grp.AgeClass()] += grp.NoAnimals()
			}
		}
		fmt.Fprintf(w, "%5d %-12s", day, p.Name)
		for _, n := range counts {
			fmt.Fprintf(w, "%7d", n)
		}
		fmt.Fprintf(w, "\n")
	}
}
