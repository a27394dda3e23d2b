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

package types

import (
	"github.com/benbjohnson/immutable"
)

var emptyMap = immutable.NewSortedMap(nil)

var EmptySchemeMap = SchemeMap{emptyMap}

// SchemeMap contains immutable mappings from machine names to their type
// schemes. Entries are sorted by name.
type SchemeMap struct {
	m *immutable.SortedMap
}

func NewSchemeMap() SchemeMap { return SchemeMap{emptyMap} }

// Create a SchemeMap with a single entry.
func SingletonSchemeMap(name string, mt MachineType) SchemeMap {
	return SchemeMap{emptyMap.Set(name, mt)}
}

// Get the number of entries in the map.
func (m SchemeMap) Len() int {
	if m.m == nil {
		return 0
	}
	return m.m.Len()
}

// Get the scheme for a machine name.
func (m SchemeMap) Get(name string) (MachineType, bool) {
	if m.m == nil {
		return MachineType{}, false
	}
	mt, ok := m.m.Get(name)
	if !ok {
		return MachineType{}, false
	}
	return mt.(MachineType), true
}

// Set the scheme for a machine name, returning an extended map. The existing
// map is not modified.
func (m SchemeMap) Set(name string, mt MachineType) SchemeMap {
	imm := m.m
	if imm == nil {
		imm = emptyMap
	}
	return SchemeMap{imm.Set(name, mt)}
}

// Iterate over entries in the map, in name order.
// If f returns false, iteration will be stopped.
func (m SchemeMap) Range(f func(string, MachineType) bool) {
	if m.m == nil {
		return
	}
	iter := m.m.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(MachineType)) {
			return
		}
	}
}
