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

// construct provides terse constructors for bam syntax trees and types,
// convenient for tests and for tools which assemble programs directly.
package construct

import (
	"github.com/jdjnovak/bam/ast"
	"github.com/jdjnovak/bam/types"
)

// Types

// Numeric element type
func TNum() types.Num { return types.Num{} }

// Boolean element type
func TBool() types.Bool { return types.Bool{} }

// String element type
func TString() types.String { return types.String{} }

// Tuple type: `(num, bool)`
func TTuple(elems ...types.Type) *types.Tuple { return types.NewTuple(elems...) }

// Scheme-quantified variable with the given index.
func TBound(index int) types.BoundVar { return types.BoundVar{Index: index} }

// Inference variable with the given index.
func TInfer(index int) types.InferVar { return types.InferVar{Index: index} }

// Machine scheme: `forall 'a0..'a(varCount-1). input -> output`
func TMachine(varCount int, input, output types.Type) types.MachineType {
	return types.MachineType{VarCount: varCount, Input: input, Output: output}
}

// Streams

// Variable reference
func Var(name string) *ast.Var { return &ast.Var{Name: name} }

// Null constant stream
func Null() *ast.Const { return &ast.Const{Value: ast.Null{}} }

// Numeric constant stream
func Num(v float64) *ast.Const { return &ast.Const{Value: ast.Num(v)} }

// String constant stream
func Str(s string) *ast.Const { return &ast.Const{Value: ast.Str(s)} }

// Boolean constant stream
func Bool(v bool) *ast.Const { return &ast.Const{Value: ast.Bool(v)} }

// Pipe: `source -> machine`
func Pipe(source ast.Stream, machine ast.Machine) *ast.Pipe {
	return &ast.Pipe{Source: source, Machine: machine}
}

// Named machine reference
func Named(name string) *ast.Named { return &ast.Named{Name: name} }

// Zip: `zip(a, b)`
func Zip(streams ...ast.Stream) *ast.Zip { return &ast.Zip{Streams: streams} }

// Conditional: `if c then t else e`
func Cond(c, t, e ast.Stream) *ast.Cond { return &ast.Cond{Cond: c, Then: t, Else: e} }

// Limit: `limit(source, count)`
func Limit(source ast.Stream, count int64) *ast.Limit {
	return &ast.Limit{Source: source, Count: count}
}

// Statements and definitions

// Consume statement: run a stream for effect, binding nothing.
func Consume(source ast.Stream) *ast.Consume { return &ast.Consume{Source: source} }

// Let binding: `let x = s`
func Let(name string, source ast.Stream) *ast.Let {
	return &ast.Let{Names: []string{name}, Source: source}
}

// Destructuring let binding: `let a, b = s`
func LetTuple(names []string, source ast.Stream) *ast.Let {
	return &ast.Let{Names: names, Source: source}
}

// Machine definition with the given result stream and body statements.
func Define(name string, result ast.Stream, body ...ast.Statement) ast.Definition {
	return ast.Definition{Name: name, Body: body, Result: result}
}

// Program over the given definitions, in source order.
func Prog(machines ...ast.Definition) *ast.Program {
	return &ast.Program{Machines: machines}
}
