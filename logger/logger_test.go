// logger project logger_test.go
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
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogWriterAppends(t *testing.T) {
	Dir = t.TempDir()
	defer func() { Dir = "." }()

	seed := int64(42)
	Seed = &seed
	user := "tester"
	User = &user
	defer func() { Seed, User = nil, nil }()

	LogWriter("first")
	LogWriterf("second %d", 2)

	assert.True(t, strings.HasSuffix(FileName(), "log.grazStock.42"))

	b, err := os.ReadFile(FileName())
	require.NoError(t, err)
	text := string(b)
	assert.Contains(t, text, "[tester] first")
	assert.Contains(t, text, "[tester] second 2")
	assert.Equal(t, 2, strings.Count(text, prefix))
}

func TestVerboseNilMode(t *testing.T) {
	OutputMode = nil
	assert.False(t, Verbose())
	mode := "verbose"
	OutputMode = &mode
	assert.True(t, Verbose())
	OutputMode = nil
}
