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

// constraint is a single equality obligation between two types, recorded
// while walking a definition's body and solved afterwards by unify.
type constraint struct {
	left, right types.Type
}

// localEnv holds the inference state scoped to one machine definition: the
// types currently associated with stream variables, the constraints
// generated so far (in generation order), and the counter seeding fresh
// inference variables. It is created fresh per definition and discarded once
// the definition has been checked.
type localEnv struct {
	varTypes    map[string]types.Type
	constraints []constraint
	nextVar     int
}

func newLocalEnv() *localEnv {
	return &localEnv{varTypes: make(map[string]types.Type)}
}

// Create a fresh inference variable.
func (env *localEnv) freshVar() types.Type {
	v := types.InferVar{Index: env.nextVar}
	env.nextVar++
	return v
}

// Record the equality obligation left == right.
func (env *localEnv) constrain(left, right types.Type) {
	env.constraints = append(env.constraints, constraint{left, right})
}
