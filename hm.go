// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
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

// Package hm provides Hindley-Milner type inference for a small functional language with integers,
// booleans, conditionals, let-polymorphism, recursive bindings, functions, tuples, lists,
// and pattern matching.
//
// Inference is substitution-based (algorithm W): each inference rule produces a substitution and
// a type, substitutions are combined with occurs-checked composition, and let-bound values are
// generalized relative to the enclosing environment. Inference stops at the first error.
//
// Links:
//
// Hindley-Milner type system: https://en.wikipedia.org/wiki/Hindley–Milner_type_system
//
// Principal type-schemes for functional programs (Damas, Milner, 1982): https://doi.org/10.1145/582153.582176
package hm

import (
	"github.com/wdamron/hm/ast"
)

// InferProgram infers types for a sequence of statements, starting from an empty environment.
// It returns the final environment, or the first error encountered.
//
// Each call uses a new InferenceContext, so InferProgram may be called concurrently.
func InferProgram(stmts []ast.Stmt) (TypeEnv, error) {
	return NewContext().InferProgram(NewTypeEnv(), stmts)
}
