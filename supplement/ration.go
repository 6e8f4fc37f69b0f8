// supplement project ration.go
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

// Item is a supplement in a ration with the fresh weight fed (kg/head) and its cost ($/kg)
type Item struct {
	Supplement
	Amount float64
	Cost   float64
}

// Ration is an ordered list of supplements fed together
type Ration struct {
	Items []Item
}

func (r *Ration) Count() int {
	if r == nil {
		return 0
	}
	return len(r.Items)
}

// Add appends a supplement and returns its index
func (r *Ration) Add(s Supplement, amount, cost float64) int {
	r.Items = append(r.Items, Item{Supplement: s, Amount: amount, Cost: cost})
	return len(r.Items) - 1
}

// Copy returns an independent ration
func (r *Ration) Copy() *Ration {
	if r == nil {
		return nil
	}
	return &Ration{Items: append([]Item(nil), r.Items...)}
}

func (r *Ration) TotalAmount() float64 {
	if r == nil {
		return 0
	}
	var t float64
	for _, it := range r.Items {
		t += it.Amount
	}
	return t
}

// SetTotalAmount rescales every item so the ration totals value. An empty
// ration is shared out evenly.
func (r *Ration) SetTotalAmount(value float64) {
	tot := r.TotalAmount()
	if tot > 0.0 {
		scale := value / tot
		for i := range r.Items {
			r.Items[i].Amount *= scale
		}
	} else if len(r.Items) > 0 {
		each := value / float64(len(r.Items))
		for i := range r.Items {
			r.Items[i].Amount = each
		}
	}
}

// FWFract is the fresh-weight fraction of item idx in the ration
func (r *Ration) FWFract(idx int) float64 {
	if r.Items[idx].Amount >= 1e-7 {
		return r.Items[idx].Amount / r.TotalAmount()
	}
	return 0.0
}

// AverageSuppt mixes the items in proportion to the amounts fed
func (r *Ration) AverageSuppt() Supplement {
	var ave Supplement
	if r.TotalAmount() <= 0.0 {
		return ave
	}
	var sum float64
	for _, it := range r.Items {
		if it.Amount > 0.0 {
			ave = Mix(it.Supplement, ave, it.Amount/(sum+it.Amount))
			sum += it.Amount
		}
	}
	return ave
}

// AverageCost is the amount-weighted cost per kg fresh weight
func (r *Ration) AverageCost() float64 {
	tot := r.TotalAmount()
	if tot < 1e-7 {
		return 0.0
	}
	var c float64
	for _, it := range r.Items {
		c += it.Amount * it.Cost
	}
	return c / tot
}
