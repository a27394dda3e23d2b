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
	"github.com/jdjnovak/bam/ast"
	"github.com/jdjnovak/bam/types"
)

// Signature schemes for the builtin machines. The table is read-only.
var builtinTypes map[ast.Builtin]types.MachineType

func init() {
	num := types.Num{}
	boolean := types.Bool{}
	a := types.BoundVar{Index: 0}

	builtinTypes = map[ast.Builtin]types.MachineType{
		ast.Add:  {Input: types.NewTuple(num, num), Output: num},
		ast.Mul:  {Input: types.NewTuple(num, num), Output: num},
		ast.Mod:  {Input: types.NewTuple(num, num), Output: num},
		ast.Pow:  {Input: types.NewTuple(num, num), Output: num},
		ast.Sqrt: {Input: num, Output: num},
		ast.Gte:  {Input: types.NewTuple(num, num), Output: boolean},
		ast.Lt:   {Input: types.NewTuple(num, num), Output: boolean},

		// forall a. (a, a) -> bool
		ast.Eq: {VarCount: 1, Input: types.NewTuple(a, a), Output: boolean},
		// forall a. a -> (a, a)
		ast.Dup2: {VarCount: 1, Input: a, Output: types.NewTuple(a, a)},
		// forall a. a -> (a, a, a)
		ast.Dup3: {VarCount: 1, Input: a, Output: types.NewTuple(a, a, a)},
		// forall a. a -> a
		ast.Print: {VarCount: 1, Input: a, Output: a},
	}
}

// BuiltinType returns the signature scheme for b. Every builtin the syntax
// can name has an entry; a missing entry is a defect in this table, not a
// property of the program being checked, so the lookup panics rather than
// returning a type error.
func BuiltinType(b ast.Builtin) types.MachineType {
	mt, ok := builtinTypes[b]
	if !ok {
		panic("bam: no type signature for builtin " + b.String())
	}
	return mt
}
