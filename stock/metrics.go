// stock project metrics.go
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
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts the demographic events of a run. Each run gets its own
// registry so replicates running side by side do not share counters.
type Metrics struct {
	Registry    *prometheus.Registry
	Deaths      prometheus.Counter
	Births      prometheus.Counter
	Conceptions prometheus.Counter
	Weaned      prometheus.Counter
	RDPRetries  prometheus.Counter
	Head        *prometheus.GaugeVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Deaths: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "grazstock",
			Name:      "deaths_total",
			Help:      "Animals that died, young included.",
		}),
		Births: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "grazstock",
			Name:      "births_total",
			Help:      "Young born alive.",
		}),
		Conceptions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "grazstock",
			Name:      "conceptions_total",
			Help:      "Females that conceived.",
		}),
		Weaned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "grazstock",
			Name:      "weaned_total",
			Help:      "Young weaned off their mothers.",
		}),
		RDPRetries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "grazstock",
			Name:      "rdp_retries_total",
			Help:      "Paddock-days rerun at reduced intake for lack of degradable protein.",
		}),
		Head: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "grazstock",
			Name:      "head",
			Help:      "Animals in each paddock at the end of the day, young included.",
		}, []string{"paddock"}),
	}
	m.Registry.MustRegister(m.Deaths, m.Births, m.Conceptions, m.Weaned, m.RDPRetries, m.Head)
	return m
}
