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

// Package construct provides shorthand constructors for types, expressions, patterns, and statements.
package construct

import (
	"github.com/wdamron/hm/ast"
	"github.com/wdamron/hm/types"
)

// Types:

func TInt() *types.Const  { return types.Int }
func TBool() *types.Const { return types.Bool }

func TVar(id int) *types.Var { return types.NewVar(id) }

func TConst(name string) *types.Const { return &types.Const{Name: name} }

func TArrow(arg, ret types.Type) *types.Arrow { return &types.Arrow{Arg: arg, Return: ret} }

// TArrowN creates a curried function type: TArrowN(a, b, c) is `a -> b -> c`.
func TArrowN(args ...types.Type) types.Type {
	if len(args) == 0 {
		return nil
	}
	t := args[len(args)-1]
	for i := len(args) - 2; i >= 0; i-- {
		t = &types.Arrow{Arg: args[i], Return: t}
	}
	return t
}

func TList(elem types.Type) *types.List { return &types.List{Elem: elem} }

func TTuple(elems ...types.Type) *types.Tuple { return types.NewTuple(elems...) }

// Expressions:

func Int(v int64) *ast.IntLit { return &ast.IntLit{Value: v} }

func Bool(v bool) *ast.BoolLit { return &ast.BoolLit{Value: v} }

func Var(name string) *ast.Var { return &ast.Var{Name: name} }

func Func(param ast.Pattern, body ast.Expr) *ast.Func { return &ast.Func{Param: param, Body: body} }

// Func1 creates a function which binds its argument to a variable.
func Func1(arg string, body ast.Expr) *ast.Func {
	return &ast.Func{Param: &ast.PVar{Name: arg}, Body: body}
}

// FuncN creates a curried function: FuncN([]string{"x", "y"}, body) is `fun x -> fun y -> body`.
func FuncN(args []string, body ast.Expr) ast.Expr {
	for i := len(args) - 1; i >= 0; i-- {
		body = Func1(args[i], body)
	}
	return body
}

// Call creates a curried application: Call(f, a, b) is `(f a) b`.
func Call(f ast.Expr, args ...ast.Expr) ast.Expr {
	for _, arg := range args {
		f = &ast.Call{Func: f, Arg: arg}
	}
	return f
}

func BinOp(op ast.Op, left, right ast.Expr) *ast.BinOp {
	return &ast.BinOp{Op: op, Left: left, Right: right}
}

func Add(left, right ast.Expr) *ast.BinOp { return BinOp(ast.OpAdd, left, right) }
func Sub(left, right ast.Expr) *ast.BinOp { return BinOp(ast.OpSub, left, right) }
func Mul(left, right ast.Expr) *ast.BinOp { return BinOp(ast.OpMul, left, right) }
func Lt(left, right ast.Expr) *ast.BinOp  { return BinOp(ast.OpLt, left, right) }
func Eq(left, right ast.Expr) *ast.BinOp  { return BinOp(ast.OpEq, left, right) }
func And(left, right ast.Expr) *ast.BinOp { return BinOp(ast.OpAnd, left, right) }

func Nil() *ast.Nil { return &ast.Nil{} }

func Cons(head, tail ast.Expr) *ast.Cons { return &ast.Cons{Head: head, Tail: tail} }

// List creates a list literal as nested Cons expressions ending in Nil.
func List(elems ...ast.Expr) ast.Expr {
	var list ast.Expr = &ast.Nil{}
	for i := len(elems) - 1; i >= 0; i-- {
		list = &ast.Cons{Head: elems[i], Tail: list}
	}
	return list
}

func Tuple(elems ...ast.Expr) *ast.Tuple { return &ast.Tuple{Elems: elems} }

func If(cond, then, els ast.Expr) *ast.If { return &ast.If{Cond: cond, Then: then, Else: els} }

func Let(name string, value, body ast.Expr) *ast.Let {
	return &ast.Let{Var: name, Value: value, Body: body}
}

func LetRec(name string, value, body ast.Expr) *ast.LetRec {
	return &ast.LetRec{Var: name, Value: value, Body: body}
}

func Match(value ast.Expr, cases ...ast.MatchCase) *ast.Match {
	return &ast.Match{Value: value, Cases: cases}
}

func Case(pattern ast.Pattern, body ast.Expr) ast.MatchCase {
	return ast.MatchCase{Pattern: pattern, Body: body}
}

// Patterns:

func PWildcard() *ast.PWildcard { return &ast.PWildcard{} }

func PVar(name string) *ast.PVar { return &ast.PVar{Name: name} }

func PInt(v int64) *ast.PInt { return &ast.PInt{Value: v} }

func PBool(v bool) *ast.PBool { return &ast.PBool{Value: v} }

func PNil() *ast.PNil { return &ast.PNil{} }

func PCons(head, tail ast.Pattern) *ast.PCons { return &ast.PCons{Head: head, Tail: tail} }

func PTuple(elems ...ast.Pattern) *ast.PTuple { return &ast.PTuple{Elems: elems} }

// Statements:

func Decl(name string, value ast.Expr) *ast.Decl { return &ast.Decl{Var: name, Value: value} }

func DeclRec(name string, value ast.Expr) *ast.Decl {
	return &ast.Decl{Var: name, Rec: true, Value: value}
}

func Eval(expr ast.Expr) *ast.ExprStmt { return &ast.ExprStmt{Expr: expr} }

func Program(stmts ...ast.Stmt) []ast.Stmt { return stmts }
