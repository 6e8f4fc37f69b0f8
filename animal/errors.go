// animal project errors.go
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

package animal

import "errors"

var (
	// ErrSplitCount is returned for a negative split or one larger than the group
	ErrSplitCount = errors.New("invalid number of animals to split off")

	// ErrMergeMismatch is returned when two groups differ in a discrete state
	ErrMergeMismatch = errors.New("groups cannot be merged")

	ErrWeanBySex = errors.New("weaning-by-sex logic failed")

	// ErrBaseWeight flags a non-positive base weight during wool growth
	ErrBaseWeight = errors.New("base weight is zero or less")

	ErrSpeciesMismatch = errors.New("attempt to mate animals of different species")
	ErrSexMismatch     = errors.New("split asks for animals of a sex the group does not hold")
)
