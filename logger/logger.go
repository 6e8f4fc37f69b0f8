// logger
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
package logger

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
)

var OutputMode *string // verbose, model or quiet
var User *string       // name of this user running this run
var Seed *int64        // Random number generator seed
var Dir = "."          // Directory the log file is written to

const prefix = "grazStock "

// Verbose reports whether the run prints its tables to stdout
func Verbose() bool {
	return OutputMode != nil && *OutputMode == "verbose"
}

func seed() int64 {
	if Seed == nil {
		return 0
	}
	return *Seed
}

// FileName is the log file for the current seed
func FileName() string {
	return filepath.Join(Dir, "log.grazStock."+strconv.FormatInt(seed(), 10))
}

func write(message string) {
	f, err := os.OpenFile(FileName(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Println(err)
		return
	}
	defer f.Close()

	user := ""
	if User != nil {
		user = "[" + *User + "] "
	}
	logger := log.New(f, prefix, log.LstdFlags)
	logger.Println(user + message)
}

func LogWriter(message string) {
	write(message)
}

func LogWriterf(format string, args ...interface{}) {
	write(fmt.Sprintf(format, args...))
}

// LogWriterFatal logs the message and ends the run
func LogWriterFatal(message string) {
	write(message)

	if Verbose() {
		fmt.Println(message)
	}
	os.Exit(1)
}
