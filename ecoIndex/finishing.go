// finishing
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
	"github.com/APSIMInitiative/ApsimX-sub000/stock"
)

// gridPremium is the premium of the highest grid band the condition reaches
func (p *Params) gridPremium(condition float64) float64 {
	var premium, best float64
	found := false
	for _, gv := range p.Grid {
		if condition >= gv.MinCondition && (!found || gv.MinCondition > best) {
			premium = gv.Premium
			best = gv.MinCondition
			found = true
		}
	}
	return premium
}

// carcassValue of one head sold over the grid
func (p *Params) carcassValue(liveWt, condition float64) float64 {
	carcass := liveWt * p.DressingPropn
	return carcass * (p.CarcassPricePerKg + p.gridPremium(condition))
}

// sellFinished takes out groups without young whose mean weight has reached
// the target for their sex
func (l *Ledger) sellFinished(day int, s *stock.StockList) {
	for i := len(s.Groups) - 1; i >= 0; i-- {
		g := s.Groups[i]
		if g.Young != nil || g.Lactation() > 0 || g.Pregnancy() > 0 {
			continue
		}
		target, ok := l.p.TargetWeight[sexOf(g)]
		if !ok || target <= 0.0 || g.LiveWeight() < target {
			continue
		}
		head := g.NoAnimals()
		value := float64(head) * l.p.carcassValue(g.LiveWeight(), g.BodyCondition())
		l.sell(day, s.Remove(i), head, value)
	}
}
