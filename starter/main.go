// main project main.go
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

package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"runtime"
	"time"

	"github.com/remeh/sizedwaitgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/APSIMInitiative/ApsimX-sub000/logger"
	"github.com/APSIMInitiative/ApsimX-sub000/randFactory"
	"github.com/APSIMInitiative/ApsimX-sub000/simulate"
	"github.com/APSIMInitiative/ApsimX-sub000/varStuff"
)

var version string = "beta0.1.0"
var modelParam *string
var numberSpawned int // Number of replicates
var independent *string
var outputFile *string

// replicate is one run's draw and outcome
type replicate struct {
	seed    uint64
	perturb varStuff.Perturbation
	perHead float64
	head    int
	meanWt  float64
	herbage float64 // kg/ha left, mean over paddocks
	err     error
}

// Run one replicate. This is the go routine.
func multistart(swg *sizedwaitgroup.SizedWaitGroup, param map[string]interface{}, r *replicate) {

	defer swg.Done()

	run, err := simulate.Setup(param, simulate.Options{Seed: r.seed, Perturb: r.perturb, NoDB: true})
	if err != nil {
		r.err = err
		return
	}
	defer run.Close()

	ret, err := run.Execute()
	if err != nil {
		r.err = err
		return
	}
	r.perHead = ret.PerHead
	r.head = run.Stock.HeadCount()

	var wts, heads, left []float64
	for _, p := range run.Stock.Paddocks {
		t := run.Stock.PaddockTotals(p)
		if t.Head > 0 {
			wts = append(wts, t.MeanWeight)
			heads = append(heads, float64(t.Head))
		}
		left = append(left, t.HerbageLeft)
	}
	if len(wts) > 0 {
		r.meanWt = stat.Mean(wts, heads)
	}
	r.herbage = stat.Mean(left, nil)
}

// Launch the replicates with at most one per CPU running
func launchSimulations(param map[string]interface{}, reps []replicate) {

	start := time.Now()

	swg := sizedwaitgroup.New(runtime.NumCPU())
	for i := range reps {
		swg.Add()
		go multistart(&swg, param, &reps[i])
	}
	swg.Wait()

	if logger.Verbose() {
		elapsed := time.Since(start)
		fmt.Println("Total time:", elapsed, "Time per sample:", elapsed.Seconds()/float64(len(reps)), "Using", runtime.NumCPU(), "CPUs")
	}
}

// Parse the arg list looking for the input hjson file
func parseArgs() {

	modelParam = flag.String("simParm", "", "The grazStock simulation file (required)")
	logger.OutputMode = flag.String("outputMode", "verbose", "'verbose'(default) or 'table'")
	logger.User = flag.String("user", "admin", "user=[Username]")
	ns := flag.Int("nSamples", 100, "Number of replicates (default 100)")
	logger.Seed = flag.Int64("seed", 1234, "Random number generator seed (int64)")
	independent = flag.String("independent", "", "Perturbation component to draw independently of the others (optional)")
	isVersion := flag.Bool("version", false, "prints the version number of starter")
	outputFile = flag.String("outputFile", "", "Optional hjson file of replicate results")

	flag.Parse()

	if *isVersion {
		fmt.Println("Version:", version)
		os.Exit(0)
	}

	numberSpawned = *ns

	if *modelParam == "" {
		if logger.Verbose() {
			syntax := `Usage of ./starter:
  -simParm string
    	The grazStock simulation file (required)
  -outputMode string
    	'verbose' or 'table' (default "verbose")
  -seed int
    	Random number generator seed (int64) (default 1234)
  -user string
    	user=[Username] (default "admin")
  -nSamples int
	Number of replicates (default 100)
  -independent string
	Perturbation component (temperature, rain or herbage) drawn independently
  -outputFile string
	Optional hjson file of replicate results
  -version
	Print the version number and exit`

			fmt.Printf("\n%s\n\n", syntax)
		}
		logger.LogWriterFatal("no parameter file name provided")
	}
}

// Draw the seed and environment of every replicate from the one stream
func initialize(param map[string]interface{}) []replicate {

	perturber, err := varStuff.NewPerturber(param)
	if err != nil {
		logger.LogWriterFatal(err.Error())
	}
	if *independent != "" && perturber != nil {
		if err := perturber.Decorrelate(*independent); err != nil {
			logger.LogWriterFatal(err.Error())
		}
	}

	rnd := randFactory.NewRandFactory(uint64(*logger.Seed))
	reps := make([]replicate, numberSpawned)
	for i := range reps {
		reps[i].seed = uint64(rnd.RandomValue() * math.MaxInt32)
		reps[i].perturb = perturber.Draw(rnd)
	}
	return reps
}

type summary struct {
	name         string
	mean, stddev float64
}

func summarise(reps []replicate) []summary {
	cols := []struct {
		name string
		get  func(r replicate) float64
	}{
		{"Net return/head", func(r replicate) float64 { return r.perHead }},
		{"Head at end", func(r replicate) float64 { return float64(r.head) }},
		{"Mean live wt", func(r replicate) float64 { return r.meanWt }},
		{"Herbage kg/ha", func(r replicate) float64 { return r.herbage }},
		{"Temp shift", func(r replicate) float64 { return r.perturb.DeltaT }},
		{"Rain scale", func(r replicate) float64 { return r.perturb.RainScale }},
		{"Herbage scale", func(r replicate) float64 { return r.perturb.HerbageScale }},
	}

	var table []summary
	for _, c := range cols {
		var x []float64
		for _, r := range reps {
			if r.err == nil {
				x = append(x, c.get(r))
			}
		}
		if len(x) == 0 {
			continue
		}
		mean, variance := stat.MeanVariance(x, nil)
		if len(x) < 2 {
			variance = 0.0
		}
		table = append(table, summary{name: c.name, mean: mean, stddev: math.Sqrt(variance)})
	}
	return table
}

// Write a table of replicate summaries to the screen
func publish(table []summary, n int) {
	fmt.Println("\t __________________________________________________")
	fmt.Println("\t| Output            |      Mean    |    StdDev     |")
	fmt.Println("\t|___________________|______________|_______________|")
	for _, s := range table {
		fmt.Printf("\t| %-17s |  %10.2f  |    %10.3f |\n", s.name, s.mean, s.stddev)
	}
	fmt.Println("\t|__________________________________________________|")
	fmt.Printf("\t *Number of replicates: %d\n\n", n)
}

func writeResults(reps []replicate) error {
	f, err := os.Create(*outputFile)
	if err != nil {
		return err
	}
	defer f.Close()
	fmt.Fprintf(f, "{\n   replicates:[\n")
	for _, r := range reps {
		if r.err != nil {
			continue
		}
		fmt.Fprintf(f, "   {\n      seed: %d\n      deltaT: %f\n      rainScale: %f\n      herbageScale: %f\n",
			r.seed, r.perturb.DeltaT, r.perturb.RainScale, r.perturb.HerbageScale)
		fmt.Fprintf(f, "      netReturnPerHead: %f\n      head: %d\n      meanLiveWeight: %f\n   }\n",
			r.perHead, r.head, r.meanWt)
	}
	_, err = fmt.Fprintf(f, "   ]\n}\n")
	return err
}

func main() {

	parseArgs()

	param, err := simulate.LoadParam(*modelParam)
	if err != nil {
		logger.LogWriterFatal(err.Error())
	}

	reps := initialize(param)

	launchSimulations(param, reps)

	var failed int
	for _, r := range reps {
		if r.err != nil {
			failed++
			logger.LogWriterf("replicate seed %d failed: %v", r.seed, r.err)
		}
	}
	if failed == len(reps) {
		logger.LogWriterFatal("every replicate failed")
	}

	table := summarise(reps)
	if *logger.OutputMode == "table" || logger.Verbose() {
		publish(table, len(reps)-failed)
	}

	if *outputFile != "" {
		if err := writeResults(reps); err != nil {
			logger.LogWriterFatal("Cannot write outputFile: " + err.Error())
		}
	}
}
