// ecoIndex project returns.go
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
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/APSIMInitiative/ApsimX-sub000/grazType"
	"github.com/APSIMInitiative/ApsimX-sub000/stock"
)

// Sale is one group leaving the run, either sold or valued at the end
type Sale struct {
	Day        int
	Paddock    string
	Tag        int
	Class      string
	Sex        string
	Number     int
	LiveWeight float64 // kg/head
	Value      float64 // $ for the group
	Closing    bool    // valued at the end rather than sold
}

// Ledger accumulates the sales and costs of one run
type Ledger struct {
	p         *Params
	Sales     []Sale
	Costs     []Cost
	startHead int
	eaten     map[string]map[string]float64
}

func NewLedger(p *Params, s *stock.StockList) *Ledger {
	return &Ledger{p: p, startHead: s.HeadCount(), eaten: make(map[string]map[string]float64)}
}

// Day books one simulated day. Call it after the paddocks' EndDay so the
// supplement eaten that day has been credited.
func (l *Ledger) Day(day, doy int, s *stock.StockList) {
	l.charge(day, doy, s)
	switch l.p.SaleEndpoint {
	case Weaning:
		l.sellWeaners(day, s)
	case Finishing:
		l.sellFinished(day, s)
	}
}

// Close values the stock still on hand, wool included
func (l *Ledger) Close(day int, s *stock.StockList) {
	for _, g := range s.Groups {
		value, head := l.p.saleRevenue(g)
		for _, grp := range g.Members() {
			value += float64(grp.NoAnimals()) * grp.FleeceCutWeight() * l.p.WoolPrice
		}
		l.Sales = append(l.Sales, Sale{
			Day:        day,
			Paddock:    g.Paddock.Name,
			Tag:        g.Tag,
			Class:      grazType.AgeText[g.AgeClass()],
			Sex:        sexOf(g),
			Number:     head,
			LiveWeight: g.LiveWeight(),
			Value:      value,
			Closing:    true,
		})
	}
}

// Returns of a run, discounted to day 0
type Returns struct {
	Revenue           float64
	Costs             float64
	DiscountedRevenue float64
	DiscountedCosts   float64
	NetReturns        float64
	PerHead           float64
}

func (l *Ledger) discount(day int) float64 {
	return math.Pow(1.0+l.p.DiscountRate, -float64(day)/daysPerYear)
}

func (l *Ledger) NetReturns() Returns {
	rev := make([]float64, len(l.Sales))
	dRev := make([]float64, len(l.Sales))
	for i, s := range l.Sales {
		rev[i] = s.Value
		dRev[i] = s.Value * l.discount(s.Day)
	}
	cost := make([]float64, len(l.Costs))
	dCost := make([]float64, len(l.Costs))
	for i, c := range l.Costs {
		cost[i] = c.Grazing + c.Supplement
		dCost[i] = cost[i] * l.discount(c.Day)
	}

	r := Returns{
		Revenue:           floats.Sum(rev),
		Costs:             floats.Sum(cost),
		DiscountedRevenue: floats.Sum(dRev),
		DiscountedCosts:   floats.Sum(dCost),
	}
	r.NetReturns = r.DiscountedRevenue - r.DiscountedCosts
	if l.startHead > 0 {
		r.PerHead = r.NetReturns / float64(l.startHead)
	}
	return r
}

// Write prints the sales and the net returns
func (l *Ledger) Write(w io.Writer) {
	fmt.Fprintf(w, "%5s %-12s %4s %-8s %-6s %7s %9s %11s\n", "Day", "Paddock", "Tag", "Class", "Sex", "Head", "kg/hd", "Value")
	for _, s := range l.Sales {
		mark := ""
		if s.Closing {
			mark = " *"
		}
		fmt.Fprintf(w, "%5d %-12s %4d %-8s %-6s %7d %9.1f %11.2f%s\n",
			s.Day, s.Paddock, s.Tag, s.Class, s.Sex, s.Number, s.LiveWeight, s.Value, mark)
	}
	r := l.NetReturns()
	fmt.Fprintf(w, "Revenue %.2f  Costs %.2f  Net (discounted) %.2f  Per head %.2f\n",
		r.Revenue, r.Costs, r.NetReturns, r.PerHead)
}
