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

// bam provides the static type checker for the bam dataflow language.
//
// A bam program is a sequence of machine definitions: named, reusable
// pipeline stages which consume and produce streams of values through pipe,
// zip, cond and limit operators. Before a stream is executed, the checker
// verifies that every machine definition is internally well-typed and that
// every use of a machine or builtin operator is applied to arguments of a
// compatible shape.
//
// The checker is a constraint-based Hindley-Milner style engine: walking a
// definition's body appends equality constraints over fresh inference
// variables, unification solves them into a substitution, and the solved
// placeholder scheme is generalized into a polymorphic machine type which
// later definitions instantiate fresh at each use site.
//
// Supported features:
//
//   - Parametric polymorphism for machines (let-style generalization)
//   - Per-call-site instantiation of user-defined and builtin schemes
//   - Positional tuple destructuring in let bindings
//   - Monomorphic self-recursion within a definition
//   - Occurs check, rejecting infinite types
//
// Definitions are checked one at a time, in source order: a definition may
// call itself (at a single shared shape), may call any earlier definition
// polymorphically, and may not mutually recurse with a sibling.
//
// Links:
//
// Hindley-Milner type system: https://en.wikipedia.org/wiki/Hindley–Milner_type_system
package bam
