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

import (
	"strconv"
	"strings"
)

// TypeString returns a string representation of a Type.
//
// Quantified variables print as 'a, 'b, ...; unresolved inference variables
// print as '_0, '_1, ...
func TypeString(t Type) string {
	var sb strings.Builder
	typeString(&sb, t)
	return sb.String()
}

// MachineTypeString returns a string representation of a machine's scheme,
// e.g. "(num, num) -> num" or "'a -> ('a, 'a)".
func MachineTypeString(mt MachineType) string {
	var sb strings.Builder
	typeString(&sb, mt.Input)
	sb.WriteString(" -> ")
	typeString(&sb, mt.Output)
	return sb.String()
}

func typeString(sb *strings.Builder, t Type) {
	switch t := t.(type) {
	case Num:
		sb.WriteString("num")
	case Bool:
		sb.WriteString("bool")
	case String:
		sb.WriteString("string")
	case *Tuple:
		sb.WriteByte('(')
		for i, el := range t.Elems {
			if i > 0 {
				sb.WriteString(", ")
			}
			typeString(sb, el)
		}
		sb.WriteByte(')')
	case BoundVar:
		sb.WriteString(boundName(t.Index))
	case InferVar:
		sb.WriteString("'_")
		sb.WriteString(strconv.Itoa(t.Index))
	default:
		sb.WriteString("<" + t.TypeName() + ">")
	}
}

func boundName(index int) string {
	if index < 26 {
		return "'" + string(rune('a'+index))
	}
	return "'" + string(rune('a'+index%26)) + strconv.Itoa(index/26)
}
