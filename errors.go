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
	"strconv"

	"github.com/jdjnovak/bam/types"
)

// ErrorKind discriminates the cases of a TypeError.
type ErrorKind int

const (
	// CannotUnify reports two types with irreconcilable shapes.
	CannotUnify ErrorKind = iota
	// InfiniteType reports an inference variable constrained to a type
	// containing that same variable.
	InfiniteType
)

func (k ErrorKind) String() string {
	switch k {
	case CannotUnify:
		return "CannotUnify"
	case InfiniteType:
		return "InfiniteType"
	}
	return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
}

// TypeError reports an ill-typed program. It is the only error kind Check
// returns; contract violations by upstream passes (unbound variables,
// unbound machines, missing builtin signatures) panic instead, since no
// caller-recoverable meaning exists for them.
type TypeError struct {
	Kind ErrorKind
	// The two operand types of the failing constraint, as seen at the point
	// of failure.
	Left  types.Type
	Right types.Type
}

func (e *TypeError) Error() string {
	if e.Kind == InfiniteType {
		return "infinite type: " + types.TypeString(e.Left) + " occurs in " + types.TypeString(e.Right)
	}
	return "cannot unify " + types.TypeString(e.Left) + " with " + types.TypeString(e.Right)
}
