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

package types

// Unify computes the most general substitution which makes a and b equal.
//
// A type-variable on either side is bound to the other type (the left side is checked first).
// Mismatched constructors and tuples of differing arity produce an *UnificationError; binding a
// type-variable to a type which contains it produces an *OccursCheckError.
func Unify(a, b Type) (Subst, error) {
	if av, ok := a.(*Var); ok {
		return Singleton(av.Id, b)
	}
	if bv, ok := b.(*Var); ok {
		return Singleton(bv.Id, a)
	}

	switch at := a.(type) {
	case *Const:
		if bt, ok := b.(*Const); ok && at.Name == bt.Name {
			return EmptySubst(), nil
		}

	case *Arrow:
		bt, ok := b.(*Arrow)
		if !ok {
			break
		}
		s1, err := Unify(at.Arg, bt.Arg)
		if err != nil {
			return Subst{}, err
		}
		s2, err := Unify(s1.Apply(at.Return), s1.Apply(bt.Return))
		if err != nil {
			return Subst{}, err
		}
		return Compose(s1, s2)

	case *List:
		if bt, ok := b.(*List); ok {
			return Unify(at.Elem, bt.Elem)
		}

	case *Tuple:
		bt, ok := b.(*Tuple)
		if !ok || at.Elems.Len() != bt.Elems.Len() {
			break
		}
		return unifyLists(at.Elems, bt.Elems)
	}

	return Subst{}, &UnificationError{Left: a, Right: b}
}

// Pairwise unification from right to left, composing as each pair is unified.
func unifyLists(a, b TypeList) (Subst, error) {
	s := EmptySubst()
	for i := a.Len() - 1; i >= 0; i-- {
		si, err := Unify(s.Apply(a.Get(i)), s.Apply(b.Get(i)))
		if err != nil {
			return Subst{}, err
		}
		if s, err = Compose(si, s); err != nil {
			return Subst{}, err
		}
	}
	return s, nil
}
