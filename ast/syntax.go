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

// ast describes bam programs exactly as the parser produces them.
//
// Later pipeline passes rewrite this syntax (inlining named machine
// references, materializing unzip stages, synthesizing tuple constants).
// Those constructs are deliberately not representable here: the checker runs
// strictly before those passes, so their absence from the tree is guaranteed
// by construction rather than rejected at runtime.
package ast

import (
	"strconv"
)

// Program is a sequence of machine definitions, in source order.
type Program struct {
	Machines []Definition
}

// Definition is a single named machine: a body of statements followed by the
// result stream the machine produces.
type Definition struct {
	Name   string
	Body   []Statement
	Result Stream
}

// Statement is the base for all machine-body statements.
type Statement interface {
	// Name of the syntax-type of the statement.
	StatementName() string
}

var (
	_ Statement = (*Consume)(nil)
	_ Statement = (*Let)(nil)
)

// Consume runs a stream for effect, binding nothing: `run s`
type Consume struct {
	Source Stream
}

// Let binds the values of a stream to one or more names:
// `let x = s` or `let a, b = s`.
//
// Names holds at least one name; two or more names destructure a
// tuple-valued stream positionally.
type Let struct {
	Names  []string
	Source Stream
}

func (s *Consume) StatementName() string { return "Consume" }
func (s *Let) StatementName() string     { return "Let" }

// Stream is the base for all stream expressions.
type Stream interface {
	// Name of the syntax-type of the stream expression.
	StreamName() string
}

var (
	_ Stream = (*Var)(nil)
	_ Stream = (*Const)(nil)
	_ Stream = (*Pipe)(nil)
	_ Stream = (*Zip)(nil)
	_ Stream = (*Cond)(nil)
	_ Stream = (*Limit)(nil)
)

// Variable reference
type Var struct {
	Name string
}

// Constant stream: `1`, `"s"`, `true`, `null`
type Const struct {
	Value Value
}

// Pipe feeds a stream through a machine: `s -> M`
type Pipe struct {
	Source  Stream
	Machine Machine
}

// Zip combines streams element-wise into tuples: `zip(a, b)`
type Zip struct {
	Streams []Stream
}

// Cond selects between two streams per element: `if c then t else e`
type Cond struct {
	Cond Stream
	Then Stream
	Else Stream
}

// Limit truncates a stream after Count elements: `limit(s, n)`
type Limit struct {
	Source Stream
	Count  int64
}

func (s *Var) StreamName() string   { return "Var" }
func (s *Const) StreamName() string { return "Const" }
func (s *Pipe) StreamName() string  { return "Pipe" }
func (s *Zip) StreamName() string   { return "Zip" }
func (s *Cond) StreamName() string  { return "Cond" }
func (s *Limit) StreamName() string { return "Limit" }

// Machine is a reference to a pipeline stage on the right side of a pipe:
// either a machine named in the program or a builtin operator.
type Machine interface {
	// Name of the referenced machine.
	MachineName() string
}

var (
	_ Machine = (*Named)(nil)
	_ Machine = Builtin(0)
)

// Named references a user-defined machine by name.
type Named struct {
	Name string
}

func (m *Named) MachineName() string { return m.Name }

// Builtin identifies a builtin machine.
type Builtin int

const (
	Add Builtin = iota
	Mul
	Mod
	Pow
	Sqrt
	Gte
	Lt
	Eq
	Dup2
	Dup3
	Print
)

var builtinNames = [...]string{
	Add:   "Add",
	Mul:   "Mul",
	Mod:   "Mod",
	Pow:   "Pow",
	Sqrt:  "Sqrt",
	Gte:   "Gte",
	Lt:    "Lt",
	Eq:    "Eq",
	Dup2:  "Dup2",
	Dup3:  "Dup3",
	Print: "Print",
}

func (m Builtin) MachineName() string { return m.String() }

func (m Builtin) String() string {
	if m < 0 || int(m) >= len(builtinNames) {
		return "Builtin(" + strconv.Itoa(int(m)) + ")"
	}
	return builtinNames[m]
}

// Value is the base for constant stream values.
type Value interface {
	// Name of the kind of the value.
	ValueName() string
}

var (
	_ Value = Null{}
	_ Value = Num(0)
	_ Value = Str("")
	_ Value = Bool(false)
)

// Null constant, compatible with any element type.
type Null struct{}

// Numeric constant
type Num float64

// String constant
type Str string

// Boolean constant
type Bool bool

func (v Null) ValueName() string { return "Null" }
func (v Num) ValueName() string  { return "Num" }
func (v Str) ValueName() string  { return "Str" }
func (v Bool) ValueName() string { return "Bool" }
