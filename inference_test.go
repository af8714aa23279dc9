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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdamron/hm/ast"
	. "github.com/wdamron/hm/construct"
	"github.com/wdamron/hm/types"
)

func inferString(t *testing.T, expr ast.Expr) string {
	t.Helper()
	ty, err := NewContext().Infer(NewTypeEnv(), expr)
	require.NoError(t, err)
	s := types.TypeString(ty)
	t.Logf("%s : %s", ast.ExprString(expr), s)
	return s
}

func schemeOf(t *testing.T, env TypeEnv, name string) string {
	t.Helper()
	s, ok := env.Lookup(name)
	require.True(t, ok, "%s is not declared", name)
	return s.String()
}

func TestLiterals(t *testing.T) {
	assert.Equal(t, "int", inferString(t, Int(42)))
	assert.Equal(t, "bool", inferString(t, Bool(false)))
	assert.Equal(t, "'_0 list", inferString(t, Nil()))
	assert.Equal(t, "()", inferString(t, Tuple()))
	assert.Equal(t, "int * bool", inferString(t, Tuple(Int(1), Bool(true))))
}

func TestLetPolymorphism(t *testing.T) {
	id, x := Var("id"), Var("x")
	expr := Let("id", Func1("x", x), Tuple(Call(id, Int(1)), Call(id, Bool(true))))
	assert.Equal(t, "let id = fun x -> x in (id 1, id true)", ast.ExprString(expr))
	assert.Equal(t, "int * bool", inferString(t, expr))
}

func TestLambdaBoundVarIsMonomorphic(t *testing.T) {
	f := Var("f")
	expr := Func1("f", Tuple(Call(f, Int(1)), Call(f, Bool(true))))

	ctx := NewContext()
	_, err := ctx.Infer(NewTypeEnv(), expr)
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrUnificationFailed))
	assert.Same(t, err, ctx.Error())

	var uerr *types.UnificationError
	require.True(t, errors.As(err, &uerr))
	assert.Equal(t, "int", types.TypeString(uerr.Left))
	assert.Equal(t, "bool", types.TypeString(uerr.Right))

	require.NotNil(t, ctx.InvalidExpr())
	assert.Equal(t, "f true", ast.ExprString(ctx.InvalidExpr()))
	t.Logf("error: %v", err)
}

func TestRecursiveDecl(t *testing.T) {
	x, fact := Var("x"), Var("fact")
	prog := Program(
		DeclRec("fact", Func1("x", If(Lt(x, Int(1)), Int(1), Mul(x, Call(fact, Sub(x, Int(1))))))),
		Decl("answer", Call(fact, Int(5))),
	)
	assert.Equal(t, "let rec fact = fun x -> if x < 1 then 1 else x * fact (x - 1)", ast.StmtString(prog[0]))

	env, err := InferProgram(prog)
	require.NoError(t, err)
	assert.Equal(t, "int -> int", schemeOf(t, env, "fact"))
	assert.Equal(t, "int", schemeOf(t, env, "answer"))
}

func TestRecursiveValue(t *testing.T) {
	env, err := InferProgram(Program(DeclRec("ones", Cons(Int(1), Var("ones")))))
	require.NoError(t, err)
	assert.Equal(t, "int list", schemeOf(t, env, "ones"))
}

func TestRecursiveLetIsGeneralized(t *testing.T) {
	f := Var("f")
	expr := LetRec("f", Func1("x", Call(f, Var("x"))), f)
	assert.Equal(t, "'_3 -> '_4", inferString(t, expr))

	expr = LetRec("f", Func1("x", Call(f, Var("x"))), Tuple(Add(Call(f, Int(1)), Int(1)), And(Call(f, Bool(true)), Bool(true))))
	assert.Equal(t, "int * bool", inferString(t, expr))
}

func TestLists(t *testing.T) {
	assert.Equal(t, "int list", inferString(t, List(Int(1), Int(2), Int(3))))
	assert.Equal(t, "bool list list", inferString(t, List(List(Bool(true)), Nil())))
	assert.Equal(t, "(int * bool) list", inferString(t, Cons(Tuple(Int(1), Bool(true)), Nil())))

	ctx := NewContext()
	expr := List(Int(1), Bool(true))
	_, err := ctx.Infer(NewTypeEnv(), expr)
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrUnificationFailed))
	assert.Equal(t, "[1; true]", ast.ExprString(ctx.InvalidExpr()))
}

func TestUndefinedVar(t *testing.T) {
	x, y := Var("x"), Var("y")
	ctx := NewContext()
	_, err := ctx.InferProgram(NewTypeEnv(), Program(
		Decl("x", Int(1)),
		Eval(Add(x, y)),
		Decl("z", Int(2)),
	))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUndefinedVar))
	assert.Equal(t, "Variable y not found", err.Error())

	var uerr *UndefinedVarError
	require.True(t, errors.As(err, &uerr))
	assert.Equal(t, "y", uerr.Name)

	assert.Equal(t, 1, ctx.InvalidStmt())
	assert.Same(t, y, ctx.InvalidExpr())
}

func TestDeclarationsExtendEnv(t *testing.T) {
	x, y := Var("x"), Var("y")
	env, err := InferProgram(Program(
		Decl("x", Int(1)),
		Decl("y", Add(x, Int(2))),
		Decl("z", Mul(y, x)),
		Eval(Bool(true)),
	))
	require.NoError(t, err)
	assert.Equal(t, 3, env.Len())
	assert.Equal(t, []string{"x", "y", "z"}, env.Names())
	assert.Equal(t, "{x : int, y : int, z : int}", env.String())
}

func TestExprStmtIsDiscarded(t *testing.T) {
	env, err := InferProgram(Program(Eval(Int(1)), Eval(Let("a", Int(2), Var("a")))))
	require.NoError(t, err)
	assert.Equal(t, 0, env.Len())

	env, err = InferProgram(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, env.Len())
}

func TestGenericDecls(t *testing.T) {
	f, g, x, y := Var("f"), Var("g"), Var("x"), Var("y")
	env, err := InferProgram(Program(
		Decl("id", Func1("x", x)),
		Decl("pair", FuncN([]string{"x", "y"}, Tuple(x, y))),
		Decl("compose", FuncN([]string{"f", "g", "x"}, Call(f, Call(g, x)))),
		Decl("a", Call(Var("id"), Int(1))),
		Decl("b", Call(Var("id"), Bool(true))),
	))
	require.NoError(t, err)
	assert.Equal(t, "'a -> 'a", schemeOf(t, env, "id"))
	assert.Equal(t, "'a -> 'b -> 'a * 'b", schemeOf(t, env, "pair"))
	assert.Equal(t, "('a -> 'b) -> ('c -> 'a) -> 'c -> 'b", schemeOf(t, env, "compose"))
	assert.Equal(t, "int", schemeOf(t, env, "a"))
	assert.Equal(t, "bool", schemeOf(t, env, "b"))
}

func TestLetDoesNotGeneralizeEnvVars(t *testing.T) {
	x, y := Var("x"), Var("y")
	assert.Equal(t, "int -> int", inferString(t, Func1("x", Let("y", x, Add(y, Int(1))))))
	assert.Equal(t, "bool", inferString(t, Let("x", Int(1), Let("x", Bool(true), x))))
}

func TestOccursCheck(t *testing.T) {
	x := Var("x")
	ctx := NewContext()
	_, err := ctx.Infer(NewTypeEnv(), Func1("x", Call(x, x)))
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrOccursCheck))
	assert.Equal(t, "x x", ast.ExprString(ctx.InvalidExpr()))
}

func TestConditionals(t *testing.T) {
	assert.Equal(t, "int", inferString(t, If(Lt(Int(1), Int(2)), Int(1), Int(2))))
	assert.Equal(t, "bool -> bool -> bool", inferString(t, FuncN([]string{"a", "b"}, And(Var("a"), Eq(Var("b"), Bool(false))))))

	_, err := NewContext().Infer(NewTypeEnv(), If(Int(1), Int(2), Int(3)))
	assert.True(t, errors.Is(err, types.ErrUnificationFailed))

	_, err = NewContext().Infer(NewTypeEnv(), If(Bool(true), Int(2), Bool(false)))
	assert.True(t, errors.Is(err, types.ErrUnificationFailed))

	_, err = NewContext().Infer(NewTypeEnv(), Add(Int(1), Bool(true)))
	assert.True(t, errors.Is(err, types.ErrUnificationFailed))
}

func TestMatch(t *testing.T) {
	length, xs, rest := Var("length"), Var("xs"), Var("rest")
	mapf, f, h, tl := Var("map"), Var("f"), Var("h"), Var("t")
	env, err := InferProgram(Program(
		DeclRec("length", Func1("xs", Match(xs,
			Case(PNil(), Int(0)),
			Case(PCons(PWildcard(), PVar("rest")), Add(Int(1), Call(length, rest))),
		))),
		DeclRec("map", FuncN([]string{"f", "xs"}, Match(xs,
			Case(PNil(), Nil()),
			Case(PCons(PVar("h"), PVar("t")), Cons(Call(f, h), Call(mapf, f, tl))),
		))),
		Decl("n", Call(length, Call(mapf, Func1("x", Lt(Var("x"), Int(2))), List(Int(1), Int(2))))),
	))
	require.NoError(t, err)
	assert.Equal(t, "'a list -> int", schemeOf(t, env, "length"))
	assert.Equal(t, "('a -> 'b) -> 'a list -> 'b list", schemeOf(t, env, "map"))
	assert.Equal(t, "int", schemeOf(t, env, "n"))
}

func TestMatchLiteralPatterns(t *testing.T) {
	assert.Equal(t, "bool", inferString(t, Match(Int(3), Case(PInt(0), Bool(true)), Case(PWildcard(), Bool(false)))))
	assert.Equal(t, "int", inferString(t, Match(Bool(true), Case(PBool(true), Int(1)), Case(PBool(false), Int(0)))))

	_, err := NewContext().Infer(NewTypeEnv(), Match(Int(3), Case(PBool(true), Int(1))))
	assert.True(t, errors.Is(err, types.ErrUnificationFailed))

	_, err = NewContext().Infer(NewTypeEnv(), Match(Int(3), Case(PInt(1), Int(1)), Case(PWildcard(), Bool(true))))
	assert.True(t, errors.Is(err, types.ErrUnificationFailed))
}

func TestFunctionPatterns(t *testing.T) {
	a, b, h, tl := Var("a"), Var("b"), Var("h"), Var("t")
	assert.Equal(t, "'_0 * '_1 -> '_1 * '_0", inferString(t, Func(PTuple(PVar("a"), PVar("b")), Tuple(b, a))))
	assert.Equal(t, "'_0 list -> '_0 * '_0 list", inferString(t, Func(PCons(PVar("h"), PVar("t")), Tuple(h, tl))))
	assert.Equal(t, "'_0 -> int", inferString(t, Func(PWildcard(), Int(1))))
}

func TestBoundPatternVarKeepsType(t *testing.T) {
	// A pattern variable which is already bound reuses the existing binding's type:
	_, err := InferProgram(Program(
		Decl("n", Int(1)),
		Eval(Match(Bool(true), Case(PVar("n"), Int(0)))),
	))
	assert.True(t, errors.Is(err, types.ErrUnificationFailed))
}

func TestContextReuse(t *testing.T) {
	env := NewTypeEnv().DeclareMono("one", types.Int)
	ctx := NewContext()
	expr := Let("id", Func1("x", Var("x")), Var("id"))

	ty, err := ctx.Infer(env, expr)
	require.NoError(t, err)
	first := types.TypeString(ty)
	count := ctx.VarCount()

	// Infer twice to ensure state is properly reset between calls:
	ty, err = ctx.Infer(env, expr)
	require.NoError(t, err)
	assert.Equal(t, first, types.TypeString(ty))
	assert.Equal(t, "'_1 -> '_1", first)
	assert.Equal(t, count, ctx.VarCount())
	assert.Equal(t, 1, env.Len())

	// Errors are cleared by the next run:
	_, err = ctx.Infer(env, Var("missing"))
	require.Error(t, err)
	_, err = ctx.Infer(env, Var("one"))
	require.NoError(t, err)
	assert.NoError(t, ctx.Error())
	assert.Nil(t, ctx.InvalidExpr())
	assert.Equal(t, -1, ctx.InvalidStmt())

	ctx.Reset()
	assert.Equal(t, 0, ctx.VarCount())
}

func TestEmptyExpression(t *testing.T) {
	ctx := NewContext()
	_, err := ctx.Infer(NewTypeEnv(), nil)
	assert.EqualError(t, err, "Empty expression")
}

func TestEnvFreeVarsAreNotReallocated(t *testing.T) {
	env := NewTypeEnv().DeclareMono("free", TVar(0))
	id, x := Var("id"), Var("x")

	ctx := NewContext()
	ty, err := ctx.Infer(env, Let("id", Func1("x", x), Tuple(Call(id, Int(1)), Call(id, Bool(true)))))
	require.NoError(t, err)
	assert.Equal(t, "int * bool", types.TypeString(ty))

	ty, err = ctx.Infer(env, Let("id", Func1("x", x), Tuple(id, Var("free"))))
	require.NoError(t, err)
	assert.Equal(t, "('_2 -> '_2) * '_0", types.TypeString(ty))

	out, err := ctx.InferProgram(env, Program(Decl("id", Func1("x", x))))
	require.NoError(t, err)
	assert.Equal(t, "'a -> 'a", schemeOf(t, out, "id"))
	assert.Equal(t, "'_0", schemeOf(t, out, "free"))
}

func TestPatternUnificationFailure(t *testing.T) {
	bad := Match(List(Int(1)), Case(PCons(PVar("h"), PInt(2)), Int(0)))
	ctx := NewContext()
	_, err := ctx.InferProgram(NewTypeEnv(), Program(
		Decl("ok", Int(1)),
		Decl("bad", bad),
		Decl("later", Var("missing")),
	))
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrUnificationFailed))
	assert.False(t, errors.Is(err, ErrUndefinedVar))
	assert.Same(t, bad, ctx.InvalidExpr())
	assert.Equal(t, 1, ctx.InvalidStmt())

	fn := Func(PCons(PWildcard(), PBool(true)), Int(0))
	_, err = ctx.Infer(NewTypeEnv(), fn)
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrUnificationFailed))
	assert.Same(t, fn, ctx.InvalidExpr())
}
