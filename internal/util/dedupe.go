// The MIT License (MIT)
//
// Copyright (c) 2022 jdjnovak
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package util

// IntDedupe records ints in first-seen order, ignoring repeats.
type IntDedupe struct {
	seen  map[int]bool
	order []int
}

func NewIntDedupe() *IntDedupe {
	return &IntDedupe{seen: make(map[int]bool, 16)}
}

// Add records v if it has not been seen, reporting whether it was recorded.
func (d *IntDedupe) Add(v int) bool {
	if d.seen[v] {
		return false
	}
	d.seen[v] = true
	d.order = append(d.order, v)
	return true
}

// Get the number of distinct recorded ints.
func (d *IntDedupe) Len() int { return len(d.order) }

// Order returns the distinct recorded ints in first-seen order. The returned
// slice is shared with the IntDedupe.
func (d *IntDedupe) Order() []int { return d.order }
