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

package typeutil

import (
	"github.com/wdamron/hm/types"
)

// Instantiate replaces each quantified type-variable of a scheme with a fresh type-variable.
// Fresh type-variables are allocated in ascending order of the quantified ids.
func Instantiate(vt *VarTracker, s *types.Scheme) types.Type {
	// Monomorphic types can be shared:
	if s.IsMono() {
		return s.Type
	}
	lookup := make(map[int]*types.Var, s.Vars.Len())
	s.Vars.Range(func(id int) bool {
		lookup[id] = vt.New()
		return true
	})
	return visitInstantiate(lookup, s.Type)
}

func visitInstantiate(lookup map[int]*types.Var, t types.Type) types.Type {
	switch t := t.(type) {
	case *types.Var:
		if tv, ok := lookup[t.Id]; ok {
			return tv
		}
		return t

	case *types.Arrow:
		return &types.Arrow{Arg: visitInstantiate(lookup, t.Arg), Return: visitInstantiate(lookup, t.Return)}

	case *types.List:
		return &types.List{Elem: visitInstantiate(lookup, t.Elem)}

	case *types.Tuple:
		return &types.Tuple{Elems: t.Elems.Map(func(t types.Type) types.Type {
			return visitInstantiate(lookup, t)
		})}
	}
	return t
}
