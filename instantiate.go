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

// instantiate opens a scheme for one use site: every quantifier slot gets a
// fresh inference variable, and every bound-variable occurrence in the input
// and output is replaced with its slot's variable. Each call allocates
// independent variables, so two uses of a polymorphic machine in the same
// body are never forced to agree unless other constraints do so.
func (env *localEnv) instantiate(scheme types.MachineType) types.MachineType {
	if scheme.VarCount == 0 {
		return scheme
	}
	fresh := make([]types.Type, scheme.VarCount)
	for i := range fresh {
		fresh[i] = env.freshVar()
	}
	return types.MachineType{
		Input:  replaceBoundVars(scheme.Input, fresh),
		Output: replaceBoundVars(scheme.Output, fresh),
	}
}

func replaceBoundVars(t types.Type, fresh []types.Type) types.Type {
	switch t := t.(type) {
	case types.BoundVar:
		if t.Index < 0 || t.Index >= len(fresh) {
			// A bound variable never escapes the scheme that quantifies it.
			panic("bam: bound variable " + types.TypeString(t) + " out of range for scheme")
		}
		return fresh[t.Index]
	case *types.Tuple:
		elems := make([]types.Type, len(t.Elems))
		for i, el := range t.Elems {
			elems[i] = replaceBoundVars(el, fresh)
		}
		return &types.Tuple{Elems: elems}
	default:
		return t
	}
}
