// main project initSimulation.go
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
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/APSIMInitiative/ApsimX-sub000/logger"
	"github.com/APSIMInitiative/ApsimX-sub000/simulate"
)

// setup the map of the array of json name:value pairs - notice "interface{}"
var param map[string]interface{}

var paramFile *string // Name of the parameter file
var nDays *int        // Overrides days: in the parameter file
var dbFile *string    // Overrides database: in the parameter file
var ageFile *string   // Daily age class table, "" for none

var run *simulate.Run

// Initialize the simulation
func initSimulation() {

	parseArgs()

	loadParam()

	if logger.Verbose() {
		runComment, ok := param["comment"].(string)
		if ok {
			fmt.Printf("Comment: %v\n\n", runComment)
		}
	}

	opt := simulate.Options{
		Days:   *nDays,
		DBPath: *dbFile,
		Seed:   uint64(*logger.Seed),
		Label:  *paramFile,
	}
	if *ageFile != "" {
		f, err := os.Create(*ageFile)
		if err != nil {
			logger.LogWriterFatal("Cannot create age table file " + *ageFile)
		}
		opt.AgeTable = f
	}

	var err error
	run, err = simulate.Setup(param, opt)
	if err != nil {
		logger.LogWriterFatal(err.Error())
	}

	if logger.Verbose() {
		fmt.Printf("Start day %d, %d days, %d paddocks, %d head\n",
			run.StartDoy, run.Days, len(run.Stock.Paddocks), run.Stock.HeadCount())
	}
}

// Parse the arg list looking for the input hjson file
func parseArgs() {

	paramFile = flag.String("simParm", "", "The grazStock simulation file (required)")
	logger.OutputMode = flag.String("outputMode", "verbose", "'verbose'(default), 'model' or 'quiet'")
	logger.User = flag.String("user", "admin", "user=[Username]")
	logger.Seed = flag.Int64("seed", 1234, "Random number generator seed (int64)")
	nDays = flag.Int("days", 0, "Number of days to run (default from the simulation file)")
	dbFile = flag.String("db", "", "sqlite file for daily output (default from the simulation file)")
	ageFile = flag.String("ageTable", "", "File for the daily table of head by age class (optional)")

	flag.Parse()

	if logger.Verbose() {
		fmt.Printf("\n\t*** grazStock ver %v ***\n\n", version)
	}

	if *paramFile == "" {
		if logger.Verbose() {
			fmt.Printf("Error: A parameter file name must be provided on the command line\n\tgrazStock -simParm=[file name]\n")
			// Print out a syntax message
			syntax := `Usage of ./grazStock:
  -simParm string
    	The grazStock simulation file (required)
  -outputMode string
    	'verbose'(default), 'model' or 'quiet' (default "verbose")
  -seed int
    	Random number generator seed (int64) (default 1234)
  -user string
    	user=[Username] (default "admin")
  -days int
    	Number of days to run (default from the simulation file)
  -db string
    	sqlite file for daily output (default from the simulation file)
  -ageTable string
    	File for the daily table of head by age class (optional)`

			fmt.Printf("\n%s\n\n", syntax)
			log.Fatal(errors.New("no parameter file name provided"))
		} else {
			logger.LogWriter("no parameter file name provided")
			os.Exit(1)
		}
	}
}

// Read in the parameter hjson file and setup the map of param[key] pairs
func loadParam() {
	var err error
	if param, err = simulate.LoadParam(*paramFile); err != nil {
		if logger.Verbose() {
			fmt.Println(err)
		}
		logger.LogWriterFatal("Failed to read parameter file " + *paramFile)
	}
}
