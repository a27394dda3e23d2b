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

// subst maps inference-variable indices to the types they have been bound
// to. Bindings may themselves contain further inference variables; chains
// are chased when read, never flattened eagerly.
type subst map[int]types.Type

// unify solves the constraints in generation order, threading one
// substitution, and fails on the first irreconcilable pair. There is no
// backtracking and no reordering.
func unify(constraints []constraint) (subst, error) {
	s := make(subst, len(constraints))
	for _, c := range constraints {
		if err := unifyTypes(s, c.left, c.right); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func unifyTypes(s subst, t1, t2 types.Type) error {
	if v, ok := t1.(types.InferVar); ok {
		return unifyVar(s, v, t2)
	}
	if v, ok := t2.(types.InferVar); ok {
		return unifyVar(s, v, t1)
	}

	switch a := t1.(type) {
	case types.Num:
		if _, ok := t2.(types.Num); ok {
			return nil
		}
	case types.Bool:
		if _, ok := t2.(types.Bool); ok {
			return nil
		}
	case types.String:
		if _, ok := t2.(types.String); ok {
			return nil
		}
	case types.BoundVar:
		// Bound variables should have been eliminated by instantiation
		// before reaching the solver; equal indices still compare equal.
		if b, ok := t2.(types.BoundVar); ok && a.Index == b.Index {
			return nil
		}
	case *types.Tuple:
		b, ok := t2.(*types.Tuple)
		if !ok || len(a.Elems) != len(b.Elems) {
			break
		}
		for i := range a.Elems {
			if err := unifyTypes(s, a.Elems[i], b.Elems[i]); err != nil {
				return err
			}
		}
		return nil
	}

	return &TypeError{Kind: CannotUnify, Left: t1, Right: t2}
}

func unifyVar(s subst, v types.InferVar, t types.Type) error {
	// First binding wins: a variable already bound has its current binding
	// unified against the other side, checking later constraints for
	// consistency instead of replacing the binding.
	if bound, ok := s[v.Index]; ok {
		return unifyTypes(s, bound, t)
	}
	if w, ok := t.(types.InferVar); ok && w.Index == v.Index {
		return nil
	}
	if s.occurs(v.Index, t) {
		return &TypeError{Kind: InfiniteType, Left: v, Right: t}
	}
	s[v.Index] = t
	return nil
}

// occurs reports whether the inference variable with the given index appears
// in t, directly or transitively through existing bindings. Binding a
// variable to a type mentioning itself would create an infinite type and a
// non-terminating resolve.
func (s subst) occurs(index int, t types.Type) bool {
	switch t := t.(type) {
	case types.InferVar:
		if t.Index == index {
			return true
		}
		if bound, ok := s[t.Index]; ok {
			return s.occurs(index, bound)
		}
	case *types.Tuple:
		for _, el := range t.Elems {
			if s.occurs(index, el) {
				return true
			}
		}
	}
	return false
}

// resolve follows every inference variable in t through the substitution to
// its terminal form, rebuilding composite types structurally. Variables with
// no binding are left in place.
func (s subst) resolve(t types.Type) types.Type {
	switch t := t.(type) {
	case types.InferVar:
		if bound, ok := s[t.Index]; ok {
			return s.resolve(bound)
		}
		return t
	case *types.Tuple:
		elems := make([]types.Type, len(t.Elems))
		for i, el := range t.Elems {
			elems[i] = s.resolve(el)
		}
		return &types.Tuple{Elems: elems}
	default:
		return t
	}
}
