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

// Check type-checks every machine definition in prog, in source order,
// returning the first *TypeError encountered or nil if the whole program is
// well-typed.
func Check(prog *ast.Program) error {
	_, err := Infer(prog)
	return err
}

// Infer type-checks prog like Check and additionally returns the type
// environment holding the generalized scheme of every machine, for callers
// which need the inferred types in later phases. On error the partially
// populated environment is discarded.
func Infer(prog *ast.Program) (*TypeEnv, error) {
	env := NewTypeEnv()
	for i := range prog.Machines {
		if err := checkDefinition(env, &prog.Machines[i]); err != nil {
			return nil, err
		}
	}
	return env, nil
}

func checkDefinition(env *TypeEnv, def *ast.Definition) error {
	local := newLocalEnv()

	// The type of the definition itself is unknown while its body is being
	// checked, but recursive self-calls need to resolve it, so a placeholder
	// scheme built from two inference variables is committed up front. The
	// placeholder is monomorphic: every self-call inside the body shares the
	// same two variables, which forces all self-call sites to agree on one
	// shape.
	in, out := local.freshVar(), local.freshVar()
	env.declare(def.Name, types.MachineType{Input: in, Output: out})

	for _, stmt := range def.Body {
		checkStatement(env, local, stmt)
	}

	result := inferStream(env, local, def.Result)
	local.constrain(out, result)

	subst, err := unify(local.constraints)
	if err != nil {
		return err
	}

	env.declare(def.Name, generalize(subst, types.MachineType{Input: in, Output: out}))
	return nil
}
