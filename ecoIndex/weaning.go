// weaning
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
	"github.com/APSIMInitiative/ApsimX-sub000/grazType"
	"github.com/APSIMInitiative/ApsimX-sub000/logger"
	"github.com/APSIMInitiative/ApsimX-sub000/stock"
)

// PricePerKg finds the live weight price of one head. Zero when no row of
// the table covers the class, sex and weight.
func (p *Params) PricePerKg(class grazType.AgeType, sex string, weight float64) float64 {
	for _, row := range p.PriceTable {
		if ageClass(row.Class) == class && row.Sex == sex && weight >= row.MinWt && weight < row.MaxWt {
			return row.PricePerKg
		}
	}
	if logger.Verbose() {
		logger.LogWriterf("No price for %s %s at %.1f kg", grazType.AgeText[class], sex, weight)
	}
	return 0.0
}

// Calculate a group's total live weight sale revenue. Young at foot are
// sold with their mothers.
func (p *Params) saleRevenue(g *stock.Group) (value float64, head int) {
	for _, grp := range g.Members() {
		class := grp.AgeClass()
		wt := grp.LiveWeight()
		value += float64(grp.FemaleNo) * wt * p.PricePerKg(class, "female", wt)
		value += float64(grp.MaleNo) * wt * p.PricePerKg(class, "male", wt)
		head += grp.NoAnimals()
	}
	return value, head
}

func sexOf(g *stock.Group) string {
	if g.FemaleNo > 0 {
		return "female"
	}
	return "male"
}

// sellWeaners takes every independent weaner group out of the list
func (l *Ledger) sellWeaners(day int, s *stock.StockList) {
	for i := len(s.Groups) - 1; i >= 0; i-- {
		g := s.Groups[i]
		if g.Young != nil || g.AgeClass() != grazType.Weaner {
			continue
		}
		value, head := l.p.saleRevenue(g)
		l.sell(day, s.Remove(i), head, value)
	}
}

func (l *Ledger) sell(day int, g *stock.Group, head int, value float64) {
	l.Sales = append(l.Sales, Sale{
		Day:        day,
		Paddock:    g.Paddock.Name,
		Tag:        g.Tag,
		Class:      grazType.AgeText[g.AgeClass()],
		Sex:        sexOf(g),
		Number:     head,
		LiveWeight: g.LiveWeight(),
		Value:      value,
	})
}
