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

func checkStatement(env *TypeEnv, local *localEnv, stmt ast.Statement) {
	switch stmt := stmt.(type) {
	case *ast.Consume:
		// Inferred for the validation side effect only; the statement binds
		// nothing.
		inferStream(env, local, stmt.Source)

	case *ast.Let:
		t := inferStream(env, local, stmt.Source)
		if len(stmt.Names) == 1 {
			// Bindings inside a body stay monomorphic for the remainder of
			// that body: the inferred type is bound directly, without
			// generalization.
			local.varTypes[stmt.Names[0]] = t
			return
		}
		// Destructuring: each name gets its own fresh variable, and the
		// tuple of those variables is constrained against the stream type.
		// The actual decomposition is deferred to unification.
		elems := make([]types.Type, len(stmt.Names))
		for i, name := range stmt.Names {
			v := local.freshVar()
			local.varTypes[name] = v
			elems[i] = v
		}
		local.constrain(&types.Tuple{Elems: elems}, t)

	default:
		panic("bam: unhandled statement " + stmt.StatementName())
	}
}

// inferStream returns the element type of a stream expression, appending
// constraints to local as it walks. Unbound names are a contract violation
// by the parser, which guarantees scoping, and panic.
func inferStream(env *TypeEnv, local *localEnv, stream ast.Stream) types.Type {
	switch stream := stream.(type) {
	case *ast.Var:
		t, ok := local.varTypes[stream.Name]
		if !ok {
			panic("bam: unbound stream variable " + stream.Name)
		}
		return t

	case *ast.Const:
		return inferValue(local, stream.Value)

	case *ast.Pipe:
		source := inferStream(env, local, stream.Source)
		mt := local.instantiate(machineType(env, stream.Machine))
		local.constrain(mt.Input, source)
		return mt.Output

	case *ast.Zip:
		elems := make([]types.Type, len(stream.Streams))
		for i, el := range stream.Streams {
			elems[i] = inferStream(env, local, el)
		}
		return &types.Tuple{Elems: elems}

	case *ast.Cond:
		cond := inferStream(env, local, stream.Cond)
		local.constrain(cond, types.Bool{})
		then := inferStream(env, local, stream.Then)
		els := inferStream(env, local, stream.Else)
		local.constrain(then, els)
		// Both branches are forced equal, so either type will do.
		return then

	case *ast.Limit:
		// The count has no bearing on the element type.
		return inferStream(env, local, stream.Source)
	}

	panic("bam: unhandled stream expression " + stream.StreamName())
}

func inferValue(local *localEnv, v ast.Value) types.Type {
	switch v.(type) {
	case ast.Null:
		// null is compatible with any element type.
		return local.freshVar()
	case ast.Num:
		return types.Num{}
	case ast.Str:
		return types.String{}
	case ast.Bool:
		return types.Bool{}
	}
	panic("bam: unhandled constant value " + v.ValueName())
}

// machineType resolves a machine reference to its scheme: by environment
// lookup for a named machine, by table lookup for a builtin. An unbound name
// is a contract violation by the parser and panics.
func machineType(env *TypeEnv, m ast.Machine) types.MachineType {
	switch m := m.(type) {
	case *ast.Named:
		mt, ok := env.Lookup(m.Name)
		if !ok {
			panic("bam: unbound machine " + m.Name)
		}
		return mt
	case ast.Builtin:
		return BuiltinType(m)
	}
	panic("bam: unhandled machine reference " + m.MachineName())
}
