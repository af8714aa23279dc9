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

// Package ast contains the expression, pattern, and statement syntax consumed by inference.
package ast

// Expr is the base for all expressions.
type Expr interface {
	// Name of the syntax-type of the expression.
	ExprName() string
}

var (
	_ Expr = (*IntLit)(nil)
	_ Expr = (*BoolLit)(nil)
	_ Expr = (*Var)(nil)
	_ Expr = (*Func)(nil)
	_ Expr = (*BinOp)(nil)
	_ Expr = (*Nil)(nil)
	_ Expr = (*Tuple)(nil)
	_ Expr = (*Cons)(nil)
	_ Expr = (*If)(nil)
	_ Expr = (*Call)(nil)
	_ Expr = (*Let)(nil)
	_ Expr = (*LetRec)(nil)
	_ Expr = (*Match)(nil)
)

// Integer literal: `42`
type IntLit struct {
	Value int64
}

func (e *IntLit) ExprName() string { return "IntLit" }

// Boolean literal: `true`
type BoolLit struct {
	Value bool
}

func (e *BoolLit) ExprName() string { return "BoolLit" }

// Variable: `x`
type Var struct {
	Name string
}

func (e *Var) ExprName() string { return "Var" }

// Function abstraction: `fun pattern -> body`
type Func struct {
	Param Pattern
	Body  Expr
}

func (e *Func) ExprName() string { return "Func" }

// Binary operation: `a + b`
type BinOp struct {
	Op    Op
	Left  Expr
	Right Expr
}

func (e *BinOp) ExprName() string { return "BinOp" }

// Empty list: `[]`
type Nil struct{}

func (e *Nil) ExprName() string { return "Nil" }

// Tuple: `(a, b, c)`
type Tuple struct {
	Elems []Expr
}

func (e *Tuple) ExprName() string { return "Tuple" }

// List construction: `head :: tail`
//
// List literals such as `[a; b]` are represented as nested Cons expressions ending in Nil.
type Cons struct {
	Head Expr
	Tail Expr
}

func (e *Cons) ExprName() string { return "Cons" }

// Conditional: `if cond then a else b`
type If struct {
	Cond Expr
	Then Expr
	Else Expr
}

func (e *If) ExprName() string { return "If" }

// Application: `f x`
type Call struct {
	Func Expr
	Arg  Expr
}

func (e *Call) ExprName() string { return "Call" }

// Non-recursive let-binding: `let a = value in body`
type Let struct {
	Var   string
	Value Expr
	Body  Expr
}

func (e *Let) ExprName() string { return "Let" }

// Recursive let-binding: `let rec f = value in body`
type LetRec struct {
	Var   string
	Value Expr
	Body  Expr
}

func (e *LetRec) ExprName() string { return "LetRec" }

// Pattern matching: `match value with | pattern -> body | ...`
type Match struct {
	Value Expr
	Cases []MatchCase
}

func (e *Match) ExprName() string { return "Match" }

// Case within a match expression: `| pattern -> body`
type MatchCase struct {
	Pattern Pattern
	Body    Expr
}
