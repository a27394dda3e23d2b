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
	"testing"

	"github.com/jdjnovak/bam/types"
)

func TestGeneralizeSharedVariable(t *testing.T) {
	// The same free variable in both positions becomes one quantifier.
	mt := generalize(subst{}, types.MachineType{Input: infer(0), Output: infer(0)})
	if mt.VarCount != 1 {
		t.Fatalf("quantifier count: %d, want 1", mt.VarCount)
	}
	if got := types.MachineTypeString(mt); got != "'a -> 'a" {
		t.Fatalf("scheme: %s", got)
	}
}

func TestGeneralizeDistinctVariables(t *testing.T) {
	mt := generalize(subst{}, types.MachineType{Input: infer(3), Output: infer(7)})
	if mt.VarCount != 2 {
		t.Fatalf("quantifier count: %d, want 2", mt.VarCount)
	}
	// Bound indices are assigned in occurrence order, input first.
	if got := types.MachineTypeString(mt); got != "'a -> 'b" {
		t.Fatalf("scheme: %s", got)
	}
}

func TestGeneralizeResolvesThroughSubstitution(t *testing.T) {
	// v0 is bound to v1: both positions reach the same terminal variable.
	mt := generalize(subst{0: infer(1)}, types.MachineType{Input: infer(0), Output: infer(1)})
	if mt.VarCount != 1 {
		t.Fatalf("quantifier count: %d, want 1", mt.VarCount)
	}
	if got := types.MachineTypeString(mt); got != "'a -> 'a" {
		t.Fatalf("scheme: %s", got)
	}
}

func TestGeneralizeResolvedBinding(t *testing.T) {
	mt := generalize(subst{0: types.Num{}}, types.MachineType{Input: infer(0), Output: infer(1)})
	if mt.VarCount != 1 {
		t.Fatalf("quantifier count: %d, want 1", mt.VarCount)
	}
	if got := types.MachineTypeString(mt); got != "num -> 'a" {
		t.Fatalf("scheme: %s", got)
	}
}

func TestGeneralizeInsideTuples(t *testing.T) {
	mt := generalize(
		subst{1: types.Bool{}},
		types.MachineType{
			Input:  types.NewTuple(infer(0), infer(1)),
			Output: types.NewTuple(infer(2), infer(0)),
		},
	)
	if mt.VarCount != 2 {
		t.Fatalf("quantifier count: %d, want 2", mt.VarCount)
	}
	if got := types.MachineTypeString(mt); got != "('a, bool) -> ('b, 'a)" {
		t.Fatalf("scheme: %s", got)
	}
}

func TestInstantiateFreshens(t *testing.T) {
	env := newLocalEnv()
	scheme := types.MachineType{
		VarCount: 1,
		Input:    types.BoundVar{Index: 0},
		Output:   types.NewTuple(types.BoundVar{Index: 0}, types.BoundVar{Index: 0}),
	}

	first := env.instantiate(scheme)
	second := env.instantiate(scheme)
	if first.VarCount != 0 || second.VarCount != 0 {
		t.Fatalf("instantiated schemes keep quantifiers: %d, %d", first.VarCount, second.VarCount)
	}

	// Both occurrences within one instantiation share a variable.
	v1, ok := first.Input.(types.InferVar)
	if !ok {
		t.Fatalf("input: %v", first.Input)
	}
	out := first.Output.(*types.Tuple)
	if out.Elems[0] != v1 || out.Elems[1] != v1 {
		t.Fatalf("output does not share the input variable: %v", types.TypeString(first.Output))
	}

	// Separate instantiations never share variables.
	v2 := second.Input.(types.InferVar)
	if v1.Index == v2.Index {
		t.Fatalf("instantiations share variable '_%d", v1.Index)
	}
}

func TestInstantiateMonomorphicPassThrough(t *testing.T) {
	env := newLocalEnv()
	scheme := types.MachineType{
		Input:  types.NewTuple(types.Num{}, types.Num{}),
		Output: types.Num{},
	}
	got := env.instantiate(scheme)
	if got != scheme {
		t.Fatalf("monomorphic scheme changed: %v", types.MachineTypeString(got))
	}
	if env.nextVar != 0 {
		t.Fatalf("monomorphic instantiation allocated %d variables", env.nextVar)
	}
}
