// stock project stockList.go
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
	"math"
	"strings"

	"github.com/APSIMInitiative/ApsimX-sub000/animal"
	"github.com/APSIMInitiative/ApsimX-sub000/grazMath"
	"github.com/APSIMInitiative/ApsimX-sub000/grazType"
)

const (
	maxConsumption = 0.20 // largest share of any herbage class eaten in one sub-step
	minStepLength  = 0.01 // d
	stepEps        = 1.0e-6
	maxRDPPasses   = 2
)

// Group is an animal group as the stock list holds it: placed in a paddock,
// carrying a management tag and the day's working inputs.
type Group struct {
	*animal.AnimalGroup
	Paddock *Paddock
	Tag     int

	initForage     []grazType.GrazingInputs
	stepForage     []grazType.GrazingInputs
	paddockInputs  grazType.GrazingInputs
	pastIntakeRate [2]grazType.GrazingOutputs // mothers, young
	suppIntakeRate [2]float64
	rdpFactor      [2]float64
	initState      [2]animal.StateInfo
	initPotIntake  [2]float64
}

// StockList is every group of animals in a simulation with the paddocks
// they graze
type StockList struct {
	Groups   []*Group
	Paddocks []*Paddock
	WeanAge  int // days; 0 leaves weaning to the caller

	metrics *Metrics
}

func NewStockList(m *Metrics) *StockList {
	if m == nil {
		m = NewMetrics()
	}
	return &StockList{metrics: m}
}

func (s *StockList) Metrics() *Metrics { return s.metrics }

func (s *StockList) AddPaddock(p *Paddock) error {
	if s.Paddock(p.Name) != nil {
		return fmt.Errorf("paddock %q already exists", p.Name)
	}
	s.Paddocks = append(s.Paddocks, p)
	return nil
}

// Paddock finds a paddock by name, ignoring case
func (s *StockList) Paddock(name string) *Paddock {
	for _, p := range s.Paddocks {
		if strings.EqualFold(p.Name, name) {
			return p
		}
	}
	return nil
}

// Add places a copy of a into the named paddock and returns its index
func (s *StockList) Add(a *animal.AnimalGroup, paddock string, tag int) (int, error) {
	p := s.Paddock(paddock)
	if p == nil {
		return -1, fmt.Errorf("stock: no paddock named %q", paddock)
	}
	s.Groups = append(s.Groups, &Group{AnimalGroup: a.Copy(), Paddock: p, Tag: tag})
	return len(s.Groups) - 1, nil
}

func (s *StockList) add(a *animal.AnimalGroup, p *Paddock, tag int) *Group {
	if a == nil || a.NoAnimals() == 0 {
		return nil
	}
	g := &Group{AnimalGroup: a, Paddock: p, Tag: tag}
	s.Groups = append(s.Groups, g)
	return g
}

// Remove takes group i out of the list and returns it
func (s *StockList) Remove(i int) *Group {
	g := s.Groups[i]
	s.Groups = append(s.Groups[:i], s.Groups[i+1:]...)
	return g
}

// Move shifts group i into another paddock
func (s *StockList) Move(i int, paddock string) error {
	p := s.Paddock(paddock)
	if p == nil {
		return fmt.Errorf("stock: no paddock named %q", paddock)
	}
	s.Groups[i].Paddock = p
	return nil
}

// HeadCount is the number of animals in the list, young included
func (s *StockList) HeadCount() int {
	n := 0
	for _, g := range s.Groups {
		n += g.NoAnimals()
		if g.Young != nil {
			n += g.Young.NoAnimals()
		}
	}
	return n
}

func (s *StockList) setInitialStockInputs(g *Group) {
	p := g.Paddock
	for _, grp := range g.Members() {
		grp.PaddSteep = p.Steepness
		grp.WaterLogging = p.Waterlog
		grp.RationFed = p.Ration.Copy()
	}
	g.initForage = make([]grazType.GrazingInputs, len(p.Forages))
	g.stepForage = make([]grazType.GrazingInputs, len(p.Forages))
	for f := range p.Forages {
		g.initForage[f] = p.Forages[f].Copy()
		g.stepForage[f] = p.Forages[f].Copy()
	}
}

// Members is the group followed by its young, if any
func (g *Group) Members() []*animal.AnimalGroup {
	if g.Young != nil {
		return []*animal.AnimalGroup{g.AnimalGroup, g.Young}
	}
	return []*animal.AnimalGroup{g.AnimalGroup}
}

// Merge folds together groups in the same paddock with the same tag that
// are alike enough to share state
func (s *StockList) Merge() error {
	for i := 0; i < len(s.Groups); i++ {
		for j := len(s.Groups) - 1; j > i; j-- {
			gi, gj := s.Groups[i], s.Groups[j]
			if gi.Paddock != gj.Paddock || gi.Tag != gj.Tag || !gi.Similar(gj.AnimalGroup) {
				continue
			}
			if err := gi.AnimalGroup.Merge(gj.AnimalGroup); err != nil {
				return err
			}
			s.Remove(j)
		}
	}
	return nil
}

// Dynamics advances every group by one day: ageing and reproduction, then
// grazing in variable sub-steps within each paddock and the nutrition that
// follows. A paddock whose animals are short of degradable protein is
// grazed a second time at reduced intake.
func (s *StockList) Dynamics(w animal.Weather, c animal.Clock) error {
	for _, g := range s.Groups {
		g.SetEnvironment(w, c)
		s.setInitialStockInputs(g)
	}

	// new groups go on the end of the list and are not aged again today
	n := len(s.Groups)
	for i := 0; i < n; i++ {
		g := s.Groups[i]
		newGroups, err := g.Age(1)
		if err != nil {
			return fmt.Errorf("ageing group %d: %w", i+1, err)
		}
		s.countEvents(g.AnimalGroup, newGroups)
		for _, ng := range newGroups {
			ng.SetEnvironment(w, c)
			if added := s.add(ng, g.Paddock, g.Tag); added != nil {
				s.setInitialStockInputs(added)
			}
		}
	}
	s.dropEmpty()
	if err := s.Merge(); err != nil {
		return err
	}

	for _, g := range s.Groups {
		for k, grp := range g.Members() {
			g.initState[k] = grp.StoreStateInfo()
			if err := grp.CalculateIntakeLimit(); err != nil {
				return err
			}
			g.initPotIntake[k] = grp.PotIntake
			grp.ResetGrazing()
		}
	}

	for _, p := range s.Paddocks {
		p.ZeroRemoval()
		p.summedPotIntake = 0.0
		for _, g := range s.inPaddock(p) {
			for _, grp := range g.Members() {
				p.summedPotIntake += float64(grp.NoAnimals()) * grp.PotIntake
			}
		}
		if err := s.grazePaddock(p); err != nil {
			return err
		}
	}

	for _, g := range s.Groups {
		for k, grp := range g.Members() {
			grp.CompleteGrowth(g.rdpFactor[k])
		}
	}

	if s.WeanAge > 0 {
		if err := s.weanAtAge(); err != nil {
			return err
		}
	}
	for _, p := range s.Paddocks {
		head := 0
		for _, g := range s.inPaddock(p) {
			for _, grp := range g.Members() {
				head += grp.NoAnimals()
			}
		}
		s.metrics.Head.WithLabelValues(p.Name).Set(float64(head))
	}
	return nil
}

func (s *StockList) inPaddock(p *Paddock) []*Group {
	var gs []*Group
	for _, g := range s.Groups {
		if g.Paddock == p {
			gs = append(gs, g)
		}
	}
	return gs
}

func (s *StockList) dropEmpty() {
	kept := s.Groups[:0]
	for _, g := range s.Groups {
		if g.NoAnimals() > 0 {
			kept = append(kept, g)
		}
	}
	s.Groups = kept
}

func (s *StockList) countEvents(g *animal.AnimalGroup, newGroups []*animal.AnimalGroup) {
	deaths := g.Deaths
	if g.Young != nil {
		deaths += g.Young.Deaths
		if g.Lactation() == 1 {
			s.metrics.Births.Add(float64(g.Young.NoAnimals() + g.Young.Deaths))
		}
	}
	s.metrics.Deaths.Add(float64(deaths))
	for _, ng := range newGroups {
		if ng.ReproState() == grazType.EarlyPreg && ng.Pregnancy() == 1 {
			s.metrics.Conceptions.Add(float64(ng.FemaleNo))
		}
	}
}

func (s *StockList) grazePaddock(p *Paddock) error {
	groups := s.inPaddock(p)
	if len(groups) == 0 {
		return nil
	}
	for pass := 1; ; pass++ {
		for t := 0.0; t < 1.0-stepEps; {
			for _, g := range groups {
				s.computeStepAvailability(g)
			}
			delta := math.Min(s.computeStepLength(p, groups[0]), 1.0-t)
			for _, g := range groups {
				for k, grp := range g.Members() {
					feedFirst := p.FeedSuppFirst && k == 0
					g.pastIntakeRate[k], g.suppIntakeRate[k] = grp.Grazing(delta, t == 0.0, feedFirst)
				}
			}
			s.computeRemoval(p, groups, delta)
			t += delta
		}

		availRDP := 1.0
		for _, g := range groups {
			for k, grp := range g.Members() {
				if err := grp.Nutrition(); err != nil {
					return err
				}
				g.rdpFactor[k] = grp.RDPIntakeFactor()
				availRDP = math.Min(availRDP, g.rdpFactor[k])
			}
		}
		if pass == maxRDPPasses || availRDP == 1.0 {
			return nil
		}

		s.metrics.RDPRetries.Inc()
		p.ZeroRemoval()
		for _, g := range groups {
			for k, grp := range g.Members() {
				grp.RevertStateInfo(g.initState[k])
				grp.PotIntake = g.initPotIntake[k] * g.rdpFactor[k]
			}
			for f := range g.initForage {
				g.stepForage[f] = g.initForage[f].Copy()
			}
		}
	}
}

// computeStepAvailability gives a group the herbage left in its paddock and
// its share of the supplement still uneaten, in proportion to its potential
// intake
func (s *StockList) computeStepAvailability(g *Group) {
	p := g.Paddock
	var in grazType.GrazingInputs
	for _, f := range g.stepForage {
		in.Add(f)
	}
	g.paddockInputs = in
	left := grazMath.Dim(p.Ration.TotalAmount(), p.suppRemovalKG)
	for _, grp := range g.Members() {
		grp.Herbage = in.Copy()
		grp.RationFed = p.Ration.Copy()
		grp.RationFed.SetTotalAmount(grazMath.XDiv(grp.PotIntake, p.summedPotIntake) * left)
	}
}

// computeStepLength limits a sub-step so that no herbage class loses more
// than maxConsumption of its biomass, judged from the first group in the
// paddock
func (s *StockList) computeStepLength(p *Paddock, first *Group) float64 {
	if p.Area <= 0.0 {
		return 1.0
	}
	ri := first.CalculateRelIntake(1.0, false, 1.0)
	removalTime := 9999.9
	for c := 0; c < grazType.DigClassNo; c++ {
		if first.paddockInputs.Herbage[c].Biomass > 0.0 {
			rate := p.summedPotIntake * ri.Herbage[c] / p.Area
			if rate > 0.0 {
				removalTime = math.Min(removalTime, first.paddockInputs.Herbage[c].Biomass/rate)
			}
		}
	}
	return math.Max(minStepLength, math.Min(1.0, maxConsumption*removalTime))
}

// computeRemoval adds the sub-step's grazing to the paddock's removal and
// takes it off what each group sees for the next sub-step. Herbage removal
// is shared between forages by their share of each class.
func (s *StockList) computeRemoval(p *Paddock, groups []*Group, delta float64) {
	if p.Area <= 0.0 {
		return
	}
	for _, g := range groups {
		seedOffset := 0
		for f := range p.Forages {
			for c := 0; c < grazType.DigClassNo; c++ {
				if g.paddockInputs.Herbage[c].Biomass <= 0.0 {
					continue
				}
				propn := g.stepForage[f].Herbage[c].Biomass / g.paddockInputs.Herbage[c].Biomass
				for k, grp := range g.Members() {
					p.removal[f].Herbage[c] += propn * delta * float64(grp.NoAnimals()) * g.pastIntakeRate[k].Herbage[c]
				}
			}
			for sp := range p.removal[f].Seed {
				for r := grazType.Unripe; r <= grazType.Ripe; r++ {
					for k, grp := range g.Members() {
						if seedOffset+sp < len(g.pastIntakeRate[k].Seed) {
							p.removal[f].Seed[sp][r] += delta * float64(grp.NoAnimals()) * g.pastIntakeRate[k].Seed[seedOffset+sp][r]
						}
					}
				}
			}
			seedOffset += len(p.Forages[f].Seeds)
		}
		for k, grp := range g.Members() {
			p.suppRemovalKG += delta * float64(grp.NoAnimals()) * g.suppIntakeRate[k]
		}
	}

	for _, g := range groups {
		for f := range g.stepForage {
			for c := 0; c < grazType.DigClassNo; c++ {
				g.stepForage[f].Herbage[c].Biomass = grazMath.Dim(g.initForage[f].Herbage[c].Biomass, p.removal[f].Herbage[c]/p.Area)
			}
			for sp := range g.stepForage[f].Seeds {
				for r := grazType.Unripe; r <= grazType.Ripe; r++ {
					g.stepForage[f].Seeds[sp][r].Biomass = grazMath.Dim(g.initForage[f].Seeds[sp][r].Biomass, p.removal[f].Seed[sp][r]/p.Area)
				}
			}
		}
	}
}

// weanAtAge weans every litter that has reached WeanAge
func (s *StockList) weanAtAge() error {
	n := len(s.Groups)
	for i := 0; i < n; i++ {
		g := s.Groups[i]
		if g.Young == nil || g.Young.AgeDays < s.WeanAge {
			continue
		}
		newGroups, weaned, err := g.Wean(true, true)
		if err != nil {
			return err
		}
		for _, ng := range newGroups {
			s.add(ng, g.Paddock, g.Tag)
		}
		for _, w := range weaned {
			s.metrics.Weaned.Add(float64(w.NoAnimals()))
			s.add(w, g.Paddock, g.Tag)
		}
	}
	return nil
}
