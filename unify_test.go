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

func infer(i int) types.InferVar { return types.InferVar{Index: i} }

func TestUnifyPrimitives(t *testing.T) {
	ok := []constraint{
		{types.Num{}, types.Num{}},
		{types.Bool{}, types.Bool{}},
		{types.String{}, types.String{}},
		{types.NewTuple(types.Num{}, types.Bool{}), types.NewTuple(types.Num{}, types.Bool{})},
	}
	if _, err := unify(ok); err != nil {
		t.Fatal(err)
	}

	bad := [][2]types.Type{
		{types.Num{}, types.Bool{}},
		{types.String{}, types.Num{}},
		{types.NewTuple(types.Num{}), types.Num{}},
	}
	for _, pair := range bad {
		_, err := unify([]constraint{{pair[0], pair[1]}})
		requireTypeError(t, err, CannotUnify)
	}
}

func TestUnifyTupleArity(t *testing.T) {
	_, err := unify([]constraint{{
		types.NewTuple(types.Num{}, types.Num{}),
		types.NewTuple(types.Num{}, types.Num{}, types.Num{}),
	}})
	te := requireTypeError(t, err, CannotUnify)
	// The failing pair is the two tuples themselves, not an element.
	if _, ok := te.Left.(*types.Tuple); !ok {
		t.Fatalf("left operand: %v", te.Left)
	}
	if _, ok := te.Right.(*types.Tuple); !ok {
		t.Fatalf("right operand: %v", te.Right)
	}
}

func TestUnifyBindsVariables(t *testing.T) {
	s, err := unify([]constraint{
		{infer(0), types.Num{}},
		{types.Bool{}, infer(1)},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := types.TypeString(s.resolve(infer(0))); got != "num" {
		t.Fatalf("'_0 resolved to %s", got)
	}
	if got := types.TypeString(s.resolve(infer(1))); got != "bool" {
		t.Fatalf("'_1 resolved to %s", got)
	}
}

func TestUnifyChasesBindingChains(t *testing.T) {
	// v0 == v1, v1 == num: both must resolve to num...
	s, err := unify([]constraint{
		{infer(0), infer(1)},
		{infer(1), types.Num{}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := types.TypeString(s.resolve(infer(0))); got != "num" {
		t.Fatalf("'_0 resolved to %s", got)
	}

	// ...and a later conflicting constraint on either end of the chain fails.
	_, err = unify([]constraint{
		{infer(0), infer(1)},
		{infer(1), types.Num{}},
		{infer(0), types.Bool{}},
	})
	requireTypeError(t, err, CannotUnify)
}

func TestUnifyFirstBindingWins(t *testing.T) {
	// A bound variable is checked against later constraints, never rebound.
	s, err := unify([]constraint{
		{infer(0), types.Num{}},
		{infer(0), infer(1)},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := types.TypeString(s.resolve(infer(1))); got != "num" {
		t.Fatalf("'_1 resolved to %s", got)
	}
}

func TestUnifySelfVariable(t *testing.T) {
	// v0 == v0 is trivially satisfied, not an occurs failure.
	s, err := unify([]constraint{{infer(0), infer(0)}})
	if err != nil {
		t.Fatal(err)
	}
	if _, bound := s[0]; bound {
		t.Fatalf("v0 should remain unbound, got %v", s[0])
	}
}

func TestOccursCheckDirect(t *testing.T) {
	_, err := unify([]constraint{
		{infer(0), types.NewTuple(types.Num{}, infer(0))},
	})
	te := requireTypeError(t, err, InfiniteType)
	if got := te.Error(); got != "infinite type: '_0 occurs in (num, '_0)" {
		t.Fatalf("error: %s", got)
	}
}

func TestOccursCheckTransitive(t *testing.T) {
	// v0 == v1, then v1 == (v0): the cycle runs through the existing binding.
	_, err := unify([]constraint{
		{infer(0), infer(1)},
		{infer(1), types.NewTuple(infer(0))},
	})
	requireTypeError(t, err, InfiniteType)
}

func TestResolveRebuildsTuples(t *testing.T) {
	s, err := unify([]constraint{
		{infer(0), types.Num{}},
		{infer(1), types.NewTuple(infer(0), types.Bool{})},
	})
	if err != nil {
		t.Fatal(err)
	}
	resolved := s.resolve(types.NewTuple(infer(1), infer(2)))
	if got := types.TypeString(resolved); got != "((num, bool), '_2)" {
		t.Fatalf("resolved: %s", got)
	}
}

func TestUnifyBoundVars(t *testing.T) {
	if _, err := unify([]constraint{
		{types.BoundVar{Index: 0}, types.BoundVar{Index: 0}},
	}); err != nil {
		t.Fatal(err)
	}
	_, err := unify([]constraint{
		{types.BoundVar{Index: 0}, types.BoundVar{Index: 1}},
	})
	requireTypeError(t, err, CannotUnify)
}
