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

// Infer a substitution and a type for an expression.
//
// Type-variables are allocated in a fixed, left-to-right order for each expression, which determines
// the ids of type-variables within inferred types.
func (ti *InferenceContext) infer(env TypeEnv, e ast.Expr) (types.Subst, types.Type, error) {
	switch e := e.(type) {
	case *ast.IntLit:
		return types.EmptySubst(), types.Int, nil

	case *ast.BoolLit:
		return types.EmptySubst(), types.Bool, nil

	case *ast.Var:
		s, ok := env.Lookup(e.Name)
		if !ok {
			return types.Subst{}, nil, ti.fail(e, &UndefinedVarError{Name: e.Name})
		}
		return types.EmptySubst(), typeutil.Instantiate(&ti.varTracker, s), nil

	case *ast.Func:
		penv, pt, err := ti.inferPattern(env, e.Param)
		if err != nil {
			return types.Subst{}, nil, ti.fail(e, err)
		}
		s, bt, err := ti.infer(penv, e.Body)
		if err != nil {
			return types.Subst{}, nil, err
		}
		return s, s.Apply(&types.Arrow{Arg: pt, Return: bt}), nil

	case *ast.BinOp:
		// Both operands are inferred within the same environment:
		s1, lt, err := ti.infer(env, e.Left)
		if err != nil {
			return types.Subst{}, nil, err
		}
		s2, rt, err := ti.infer(env, e.Right)
		if err != nil {
			return types.Subst{}, nil, err
		}
		subs := []types.Subst{s1, s2}
		var ret types.Type
		switch {
		case e.Op.IsArithmetic():
			s3, err := types.Unify(lt, types.Int)
			if err != nil {
				return types.Subst{}, nil, ti.fail(e, err)
			}
			s4, err := types.Unify(rt, types.Int)
			if err != nil {
				return types.Subst{}, nil, ti.fail(e, err)
			}
			subs, ret = append(subs, s3, s4), types.Int
		case e.Op.IsComparison(), e.Op.IsBoolean():
			s3, err := types.Unify(lt, rt)
			if err != nil {
				return types.Subst{}, nil, ti.fail(e, err)
			}
			subs, ret = append(subs, s3), types.Bool
		default:
			return types.Subst{}, nil, ti.fail(e, errors.New("Unknown operator "+e.Op.String()))
		}
		s, err := types.ComposeAll(subs...)
		if err != nil {
			return types.Subst{}, nil, ti.fail(e, err)
		}
		return s, ret, nil

	case *ast.Nil:
		return types.EmptySubst(), &types.List{Elem: ti.varTracker.New()}, nil

	case *ast.Tuple:
		s := types.EmptySubst()
		elems := make([]types.Type, len(e.Elems))
		for i, elem := range e.Elems {
			si, t, err := ti.infer(env.Apply(s), elem)
			if err != nil {
				return types.Subst{}, nil, err
			}
			if s, err = types.Compose(s, si); err != nil {
				return types.Subst{}, nil, ti.fail(e, err)
			}
			elems[i] = t
		}
		b := types.NewTypeListBuilder()
		for _, t := range elems {
			b.Append(s.Apply(t))
		}
		return s, &types.Tuple{Elems: b.Build()}, nil

	case *ast.Cons:
		s1, ht, err := ti.infer(env, e.Head)
		if err != nil {
			return types.Subst{}, nil, err
		}
		s2, tt, err := ti.infer(env.Apply(s1), e.Tail)
		if err != nil {
			return types.Subst{}, nil, err
		}
		s3, err := types.Unify(&types.List{Elem: ht}, tt)
		if err != nil {
			return types.Subst{}, nil, ti.fail(e, err)
		}
		s, err := types.ComposeAll(s1, s2, s3)
		if err != nil {
			return types.Subst{}, nil, ti.fail(e, err)
		}
		return s, s.Apply(tt), nil

	case *ast.If:
		// All branches are inferred within the same environment:
		s1, ct, err := ti.infer(env, e.Cond)
		if err != nil {
			return types.Subst{}, nil, err
		}
		s2, tt, err := ti.infer(env, e.Then)
		if err != nil {
			return types.Subst{}, nil, err
		}
		s3, et, err := ti.infer(env, e.Else)
		if err != nil {
			return types.Subst{}, nil, err
		}
		s4, err := types.Unify(ct, types.Bool)
		if err != nil {
			return types.Subst{}, nil, ti.fail(e, err)
		}
		s5, err := types.Unify(tt, et)
		if err != nil {
			return types.Subst{}, nil, ti.fail(e, err)
		}
		s, err := types.ComposeAll(s1, s2, s3, s4, s5)
		if err != nil {
			return types.Subst{}, nil, ti.fail(e, err)
		}
		return s, s.Apply(et), nil

	case *ast.Call:
		s1, ft, err := ti.infer(env, e.Func)
		if err != nil {
			return types.Subst{}, nil, err
		}
		// The argument is inferred with constraints from the function applied to the environment:
		s2, at, err := ti.infer(env.Apply(s1), e.Arg)
		if err != nil {
			return types.Subst{}, nil, err
		}
		ret := ti.varTracker.New()
		s3, err := types.Unify(s2.Apply(ft), &types.Arrow{Arg: at, Return: ret})
		if err != nil {
			return types.Subst{}, nil, ti.fail(e, err)
		}
		s, err := types.ComposeAll(s1, s2, s3)
		if err != nil {
			return types.Subst{}, nil, ti.fail(e, err)
		}
		return s, s.Apply(ret), nil

	case *ast.Let:
		s1, benv, err := ti.inferBinding(env, e.Var, e.Value)
		if err != nil {
			return types.Subst{}, nil, err
		}
		s2, t, err := ti.infer(benv, e.Body)
		if err != nil {
			return types.Subst{}, nil, err
		}
		s, err := types.Compose(s1, s2)
		if err != nil {
			return types.Subst{}, nil, ti.fail(e, err)
		}
		return s, t, nil

	case *ast.LetRec:
		s1, benv, err := ti.inferRecBinding(env, e.Var, e.Value)
		if err != nil {
			return types.Subst{}, nil, ti.fail(e, err)
		}
		s2, t, err := ti.infer(benv, e.Body)
		if err != nil {
			return types.Subst{}, nil, err
		}
		s, err := types.Compose(s1, s2)
		if err != nil {
			return types.Subst{}, nil, ti.fail(e, err)
		}
		return s, t, nil

	case *ast.Match:
		s, vt, err := ti.infer(env, e.Value)
		if err != nil {
			return types.Subst{}, nil, err
		}
		ret := ti.varTracker.New()
		for _, c := range e.Cases {
			// Each case starts from the environment outside of the match expression:
			penv, pt, err := ti.inferPattern(env, c.Pattern)
			if err != nil {
				return types.Subst{}, nil, ti.fail(e, err)
			}
			s1, err := types.Unify(pt, s.Apply(vt))
			if err != nil {
				return types.Subst{}, nil, ti.fail(e, err)
			}
			s2, bt, err := ti.infer(penv.Apply(s1), c.Body)
			if err != nil {
				return types.Subst{}, nil, err
			}
			s3, err := types.Unify(s.Apply(ret), bt)
			if err != nil {
				return types.Subst{}, nil, ti.fail(e, err)
			}
			if s, err = types.ComposeAll(s, s1, s2, s3); err != nil {
				return types.Subst{}, nil, ti.fail(e, err)
			}
		}
		return s, s.Apply(ret), nil
	}

	exprName := "(nil)"
	if e != nil {
		exprName = "(" + e.ExprName() + ")"
	}
	return types.Subst{}, nil, ti.fail(e, errors.New("Unhandled expression "+exprName))
}

// Infer a non-recursive binding and return the environment extended with its generalized scheme.
func (ti *InferenceContext) inferBinding(env TypeEnv, name string, value ast.Expr) (types.Subst, TypeEnv, error) {
	s, t, err := ti.infer(env, value)
	if err != nil {
		return types.Subst{}, TypeEnv{}, err
	}
	env = env.Apply(s)
	return s, env.Declare(name, Generalize(env, t)), nil
}

// Infer a recursive binding and return the environment extended with its generalized scheme.
//
// The binding is visible within its own value as a monomorphic placeholder.
func (ti *InferenceContext) inferRecBinding(env TypeEnv, name string, value ast.Expr) (types.Subst, TypeEnv, error) {
	tv := ti.varTracker.New()
	env = env.DeclareMono(name, tv)
	s1, t, err := ti.infer(env, value)
	if err != nil {
		return types.Subst{}, TypeEnv{}, err
	}
	s2, err := types.Unify(s1.Apply(tv), t)
	if err != nil {
		return types.Subst{}, TypeEnv{}, ti.fail(value, err)
	}
	s, err := types.Compose(s1, s2)
	if err != nil {
		return types.Subst{}, TypeEnv{}, ti.fail(value, err)
	}
	env = env.Apply(s)
	return s, env.Declare(name, GeneralizeRec(env, s.Apply(t), name)), nil
}
