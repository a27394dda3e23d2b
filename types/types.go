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

package types

// Type is the base interface for all stream element types.
type Type interface {
	// Name of the shape of the type.
	TypeName() string
}

var (
	_ Type = Num{}
	_ Type = Bool{}
	_ Type = String{}
	_ Type = (*Tuple)(nil)
	_ Type = BoundVar{}
	_ Type = InferVar{}
)

// Numeric elements
type Num struct{}

// Boolean elements
type Bool struct{}

// String elements
type String struct{}

// Tuple of element types: `(num, bool)`. Arity is fixed and order is
// significant.
type Tuple struct {
	Elems []Type
}

// BoundVar is a variable quantified by an enclosing MachineType. The index
// identifies the variable within that scheme only.
type BoundVar struct {
	Index int
}

// InferVar is a fresh inference variable introduced while checking a single
// machine definition. The index is unique within that definition's pass and
// is resolved by unification.
type InferVar struct {
	Index int
}

func (t Num) TypeName() string      { return "Num" }
func (t Bool) TypeName() string     { return "Bool" }
func (t String) TypeName() string   { return "String" }
func (t *Tuple) TypeName() string   { return "Tuple" }
func (t BoundVar) TypeName() string { return "BoundVar" }
func (t InferVar) TypeName() string { return "InferVar" }

// NewTuple creates a tuple type over the given element types.
func NewTuple(elems ...Type) *Tuple { return &Tuple{Elems: elems} }

// MachineType is the type scheme of a machine:
//
//	forall 'a0 .. 'a(VarCount-1). Input -> Output
//
// A scheme with VarCount == 0 is monomorphic. Schemes are immutable value
// data and may be freely copied.
type MachineType struct {
	// Number of quantified variables; BoundVar indices in Input and Output
	// range over [0, VarCount).
	VarCount int
	Input    Type
	Output   Type
}
