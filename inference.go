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

package hm

import (
	"errors"

	"github.com/wdamron/hm/ast"
	"github.com/wdamron/hm/internal/typeutil"
	"github.com/wdamron/hm/types"
)

// InferenceContext contains state for a single inference run. Type-variable ids are allocated from 0
// (or from just past the largest id free within the starting environment) at the start of each run,
// so repeated runs over the same input produce identical types.
//
// An InferenceContext may be reused, but must not be used concurrently.
type InferenceContext struct {
	varTracker  typeutil.VarTracker
	err         error
	invalid     ast.Expr
	invalidStmt int
	needsReset  bool
}

// Create an inference context.
func NewContext() *InferenceContext { return &InferenceContext{invalidStmt: -1} }

// Error returns the error which stopped the most recent inference run, if any.
func (ti *InferenceContext) Error() error { return ti.err }

// InvalidExpr returns the innermost expression at which the most recent inference run failed, if any.
func (ti *InferenceContext) InvalidExpr() ast.Expr { return ti.invalid }

// InvalidStmt returns the index of the statement at which the most recent program failed, or -1.
func (ti *InferenceContext) InvalidStmt() int { return ti.invalidStmt }

// VarCount returns the number of type-variables allocated during the most recent inference run.
func (ti *InferenceContext) VarCount() int { return ti.varTracker.Count() }

// Reset clears the state of the most recent inference run.
func (ti *InferenceContext) Reset() {
	if !ti.needsReset {
		return
	}
	ti.reset()
}

func (ti *InferenceContext) reset() {
	ti.varTracker.Reset()
	ti.err, ti.invalid, ti.invalidStmt, ti.needsReset = nil, nil, -1, false
}

// Start a run. Fresh type-variables are allocated after the largest id free within env.
func (ti *InferenceContext) begin(env TypeEnv) {
	ti.reset()
	ti.varTracker.SkipPast(env.FreeVars())
	ti.needsReset = true
}

// InferProgram infers types for a sequence of statements, starting from env.
//
// Declarations extend the environment with generalized schemes; bare expressions are type-checked
// and discarded. The final environment is returned, or the first error (in which case no later
// statements are checked).
func (ti *InferenceContext) InferProgram(env TypeEnv, stmts []ast.Stmt) (TypeEnv, error) {
	ti.begin(env)
	for i, stmt := range stmts {
		next, err := ti.inferStmt(env, stmt)
		if err != nil {
			ti.invalidStmt = i
			if ti.err == nil {
				ti.err = err
			}
			return TypeEnv{}, err
		}
		env = next
	}
	return env, nil
}

// Infer infers the type of a single expression within env.
func (ti *InferenceContext) Infer(env TypeEnv, expr ast.Expr) (types.Type, error) {
	ti.begin(env)
	if expr == nil {
		ti.err = errors.New("Empty expression")
		return nil, ti.err
	}
	s, t, err := ti.infer(env, expr)
	if err != nil {
		return nil, ti.fail(expr, err)
	}
	return s.Apply(t), nil
}

func (ti *InferenceContext) inferStmt(env TypeEnv, stmt ast.Stmt) (TypeEnv, error) {
	switch stmt := stmt.(type) {
	case *ast.Decl:
		if stmt.Rec {
			_, next, err := ti.inferRecBinding(env, stmt.Var, stmt.Value)
			return next, err
		}
		_, next, err := ti.inferBinding(env, stmt.Var, stmt.Value)
		return next, err

	case *ast.ExprStmt:
		if _, _, err := ti.infer(env, stmt.Expr); err != nil {
			return TypeEnv{}, err
		}
		return env, nil
	}

	stmtName := "(nil)"
	if stmt != nil {
		stmtName = "(" + stmt.StmtName() + ")"
	}
	ti.err = errors.New("Unhandled statement " + stmtName)
	return TypeEnv{}, ti.err
}

// Record the first failure of the current run; inner failures are recorded before outer ones.
func (ti *InferenceContext) fail(e ast.Expr, err error) error {
	if ti.err == nil {
		ti.invalid, ti.err = e, err
	}
	return err
}
