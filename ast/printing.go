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

package ast

import (
	"strconv"
	"strings"
)

// StreamString returns a source-like representation of a stream expression.
func StreamString(s Stream) string {
	var sb strings.Builder
	streamString(&sb, false, s)
	return sb.String()
}

// StatementString returns a source-like representation of a statement.
func StatementString(s Statement) string {
	var sb strings.Builder
	statementString(&sb, s)
	return sb.String()
}

// DefinitionString returns a source-like representation of a machine
// definition.
func DefinitionString(def *Definition) string {
	var sb strings.Builder
	sb.WriteString("machine ")
	sb.WriteString(def.Name)
	sb.WriteString(" {")
	for _, stmt := range def.Body {
		sb.WriteString("\n\t")
		statementString(&sb, stmt)
	}
	sb.WriteString("\n\t")
	streamString(&sb, false, def.Result)
	sb.WriteString("\n}")
	return sb.String()
}

func statementString(sb *strings.Builder, s Statement) {
	switch st := s.(type) {
	case *Consume:
		sb.WriteString("run ")
		streamString(sb, false, st.Source)
	case *Let:
		sb.WriteString("let ")
		for i, name := range st.Names {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(name)
		}
		sb.WriteString(" = ")
		streamString(sb, false, st.Source)
	default:
		sb.WriteString("<" + s.StatementName() + ">")
	}
}

// simple requests parentheses around expressions which would otherwise be
// ambiguous in an enclosing position.
func streamString(sb *strings.Builder, simple bool, s Stream) {
	switch st := s.(type) {
	case *Var:
		sb.WriteString(st.Name)

	case *Const:
		valueString(sb, st.Value)

	case *Pipe:
		if simple {
			sb.WriteByte('(')
		}
		streamString(sb, true, st.Source)
		sb.WriteString(" -> ")
		sb.WriteString(st.Machine.MachineName())
		if simple {
			sb.WriteByte(')')
		}

	case *Zip:
		sb.WriteString("zip(")
		for i, el := range st.Streams {
			if i > 0 {
				sb.WriteString(", ")
			}
			streamString(sb, false, el)
		}
		sb.WriteByte(')')

	case *Cond:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("if ")
		streamString(sb, true, st.Cond)
		sb.WriteString(" then ")
		streamString(sb, true, st.Then)
		sb.WriteString(" else ")
		streamString(sb, true, st.Else)
		if simple {
			sb.WriteByte(')')
		}

	case *Limit:
		sb.WriteString("limit(")
		streamString(sb, false, st.Source)
		sb.WriteString(", ")
		sb.WriteString(strconv.FormatInt(st.Count, 10))
		sb.WriteByte(')')

	default:
		sb.WriteString("<" + s.StreamName() + ">")
	}
}

func valueString(sb *strings.Builder, v Value) {
	switch v := v.(type) {
	case Null:
		sb.WriteString("null")
	case Num:
		sb.WriteString(strconv.FormatFloat(float64(v), 'g', -1, 64))
	case Str:
		sb.WriteString(strconv.Quote(string(v)))
	case Bool:
		sb.WriteString(strconv.FormatBool(bool(v)))
	default:
		sb.WriteString("<" + v.ValueName() + ">")
	}
}
