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

package ast

// Walk an expression tree in depth-first order, calling f for each expression before its children.
func WalkExpr(e Expr, f func(Expr)) {
	switch e := e.(type) {
	case *IntLit, *BoolLit, *Var, *Nil:
		f(e)

	case *Func:
		f(e)
		WalkExpr(e.Body, f)

	case *BinOp:
		f(e)
		WalkExpr(e.Left, f)
		WalkExpr(e.Right, f)

	case *Tuple:
		f(e)
		for _, elem := range e.Elems {
			WalkExpr(elem, f)
		}

	case *Cons:
		f(e)
		WalkExpr(e.Head, f)
		WalkExpr(e.Tail, f)

	case *If:
		f(e)
		WalkExpr(e.Cond, f)
		WalkExpr(e.Then, f)
		WalkExpr(e.Else, f)

	case *Call:
		f(e)
		WalkExpr(e.Func, f)
		WalkExpr(e.Arg, f)

	case *Let:
		f(e)
		WalkExpr(e.Value, f)
		WalkExpr(e.Body, f)

	case *LetRec:
		f(e)
		WalkExpr(e.Value, f)
		WalkExpr(e.Body, f)

	case *Match:
		f(e)
		WalkExpr(e.Value, f)
		for _, c := range e.Cases {
			WalkExpr(c.Body, f)
		}

	case nil:

	default:
		panic("unknown expression type: " + e.ExprName())
	}
}

// Walk the expressions of each statement within a program.
func WalkProgram(stmts []Stmt, f func(Expr)) {
	for _, s := range stmts {
		switch s := s.(type) {
		case *Decl:
			WalkExpr(s.Value, f)
		case *ExprStmt:
			WalkExpr(s.Expr, f)
		}
	}
}

// Count the expressions within a program.
func CountExprs(stmts []Stmt) int {
	n := 0
	WalkProgram(stmts, func(Expr) { n++ })
	return n
}
