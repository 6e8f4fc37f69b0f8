// background
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
	"strings"
	"time"

	"github.com/APSIMInitiative/ApsimX-sub000/stock"
)

const daysPerYear = 365.0

// Cost is one day's running cost of a paddock
type Cost struct {
	Day        int
	Paddock    string
	Grazing    float64
	Supplement float64
}

func monthOf(doy int) int {
	return int(time.Date(2001, time.January, doy, 0, 0, 0, 0, time.UTC).Month())
}

// charge the day's DSE cost and any supplement eaten since the last call.
// Paddock.Eaten is cumulative, so only the increase is charged.
func (l *Ledger) charge(day, doy int, s *stock.StockList) {
	perDSEDay := l.p.DSECost[monthOf(doy)-1] * 12.0 / daysPerYear
	for _, p := range s.Paddocks {
		var c Cost
		c.Day = day
		c.Paddock = p.Name
		for _, g := range s.Groups {
			if g.Paddock == p {
				c.Grazing += g.DSEs() * perDSEDay
			}
		}

		seen := l.eaten[p.Name]
		if seen == nil {
			seen = make(map[string]float64)
			l.eaten[p.Name] = seen
		}
		for name, kg := range p.Eaten {
			c.Supplement += (kg - seen[name]) * l.p.SupplementPrice[strings.ToLower(name)]
			seen[name] = kg
		}
		if c.Grazing > 0.0 || c.Supplement > 0.0 {
			l.Costs = append(l.Costs, c)
		}
	}
}
