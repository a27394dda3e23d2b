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

package bam

import (
	"github.com/jdjnovak/bam/types"
)

// TypeEnv is the program-wide type environment, mapping machine names to
// their finalized type schemes. Entries are committed once per machine, in
// source order, as Check works through the program; a definition sees the
// generalized schemes of every definition before it, plus a monomorphic
// placeholder for itself while its own body is being checked.
//
// A type environment cannot be used concurrently while checking is in
// progress.
type TypeEnv struct {
	machines types.SchemeMap
}

// Create an empty type environment.
func NewTypeEnv() *TypeEnv {
	return &TypeEnv{machines: types.EmptySchemeMap}
}

// Lookup the scheme for a machine name.
func (e *TypeEnv) Lookup(name string) (types.MachineType, bool) {
	return e.machines.Get(name)
}

// Machines returns the current name-to-scheme mappings. The returned map is
// a persistent snapshot: checking further definitions does not disturb it.
func (e *TypeEnv) Machines() types.SchemeMap {
	return e.machines
}

func (e *TypeEnv) declare(name string, mt types.MachineType) {
	e.machines = e.machines.Set(name, mt)
}
