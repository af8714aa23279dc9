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
	"github.com/wdamron/hm/types"
)

// Infer a type for a pattern and extend the environment with the variables it binds.
func (ti *InferenceContext) inferPattern(env TypeEnv, p ast.Pattern) (TypeEnv, types.Type, error) {
	switch p := p.(type) {
	case *ast.PWildcard:
		return env, ti.varTracker.New(), nil

	case *ast.PInt:
		return env, types.Int, nil

	case *ast.PBool:
		return env, types.Bool, nil

	case *ast.PNil:
		return env, &types.List{Elem: ti.varTracker.New()}, nil

	case *ast.PVar:
		// A name which is already bound keeps its existing type, without instantiation:
		if s, ok := env.Lookup(p.Name); ok {
			return env, s.Type, nil
		}
		tv := ti.varTracker.New()
		return env.DeclareMono(p.Name, tv), tv, nil

	case *ast.PCons:
		henv, ht, err := ti.inferPattern(env, p.Head)
		if err != nil {
			return TypeEnv{}, nil, err
		}
		tenv, tt, err := ti.inferPattern(henv, p.Tail)
		if err != nil {
			return TypeEnv{}, nil, err
		}
		s, err := types.Unify(&types.List{Elem: ht}, tt)
		if err != nil {
			return TypeEnv{}, nil, err
		}
		return tenv.Apply(s), &types.List{Elem: s.Apply(ht)}, nil

	case *ast.PTuple:
		b := types.NewTypeListBuilder()
		for _, elem := range p.Elems {
			var t types.Type
			var err error
			if env, t, err = ti.inferPattern(env, elem); err != nil {
				return TypeEnv{}, nil, err
			}
			b.Append(t)
		}
		return env, &types.Tuple{Elems: b.Build()}, nil
	}

	patternName := "(nil)"
	if p != nil {
		patternName = "(" + p.PatternName() + ")"
	}
	return TypeEnv{}, nil, errors.New("Unhandled pattern " + patternName)
}
