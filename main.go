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
	"fmt"
	"io"
	"os"

	"github.com/APSIMInitiative/ApsimX-sub000/logger"
)

var version = "beta0.1.0"

// Print the end of run tables: groups, then paddocks
func printTables(w io.Writer) {
	if !logger.Verbose() {
		return
	}

	fmt.Fprintf(w, "\nGrp Paddock      Tag Breed        Sex     Young   Head   Age  LiveWt  Cond  Fleece   DMI    MEI\n")
	for _, g := range run.Stock.Summaries() {
		young := ""
		if g.Young {
			young = "yes"
		}
		fmt.Fprintf(w, "%3d %-12s %3d %-12s %-7s %-5s %6d %5d %7.1f %5.2f %7.2f %5.2f %6.1f\n",
			g.Group, g.Paddock, g.Tag, g.Breed, g.Sex, young, g.Number, g.AgeDays,
			g.LiveWeight, g.Condition, g.FleeceWeight, g.HerbageDMI+g.SuppDMI, g.MEIntake)
	}

	fmt.Fprintf(w, "\nPaddock       Head  kgLW/ha   MeanWt    SDWt  DSE/ha  Herbage\n")
	for _, p := range run.Stock.Paddocks {
		t := run.Stock.PaddockTotals(p)
		fmt.Fprintf(w, "%-12s %5d %8.1f %8.1f %7.2f %7.2f %8.1f\n",
			p.Name, t.Head, t.MassPerHa, t.MeanWeight, t.SDWeight, t.DSEPerHa, t.HerbageLeft)
	}
	fmt.Fprintln(w)
}

func main() {

	initSimulation() // Initialize everything
	defer run.Close()

	returns, err := run.Execute()
	if err != nil {
		run.Close()
		logger.LogWriterFatal(err.Error())
	}

	printTables(os.Stdout)

	if run.Ledger != nil {
		if logger.Verbose() {
			run.Ledger.Write(os.Stdout)
		} else if *logger.OutputMode == "model" {
			fmt.Printf("%f", returns.PerHead)
		}
	}
}
