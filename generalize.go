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
	"github.com/jdjnovak/bam/internal/util"
	"github.com/jdjnovak/bam/types"
)

// generalize closes a checked definition's placeholder scheme: the input and
// output are resolved through the substitution to their terminal forms, and
// every inference variable still unresolved afterwards becomes a quantified
// bound variable.
//
// Free variables are deduplicated by identity before bound indices are
// assigned, in first-occurrence order across input then output. A variable
// shared between positions therefore maps to one quantifier, keeping shapes
// like 'a -> 'a shared rather than splitting them into 'a -> 'b.
func generalize(s subst, scheme types.MachineType) types.MachineType {
	input := s.resolve(scheme.Input)
	output := s.resolve(scheme.Output)

	free := util.NewIntDedupe()
	freeInferVars(free, input)
	freeInferVars(free, output)

	bound := make(map[int]types.Type, free.Len())
	for i, index := range free.Order() {
		bound[index] = types.BoundVar{Index: i}
	}

	return types.MachineType{
		VarCount: free.Len(),
		Input:    replaceInferVars(input, bound),
		Output:   replaceInferVars(output, bound),
	}
}

// freeInferVars records the inference variables in t, in occurrence order.
// t must already be resolved; any variable found is terminal and unbound.
func freeInferVars(free *util.IntDedupe, t types.Type) {
	switch t := t.(type) {
	case types.InferVar:
		free.Add(t.Index)
	case *types.Tuple:
		for _, el := range t.Elems {
			freeInferVars(free, el)
		}
	}
}

func replaceInferVars(t types.Type, bound map[int]types.Type) types.Type {
	switch t := t.(type) {
	case types.InferVar:
		if b, ok := bound[t.Index]; ok {
			return b
		}
		return t
	case *types.Tuple:
		elems := make([]types.Type, len(t.Elems))
		for i, el := range t.Elems {
			elems[i] = replaceInferVars(el, bound)
		}
		return &types.Tuple{Elems: elems}
	default:
		return t
	}
}
