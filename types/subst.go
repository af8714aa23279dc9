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

import (
	"strings"

	"github.com/benbjohnson/immutable"
)

var emptySubstMap = immutable.NewSortedMap[int, Type](immutable.NewComparer(0))

// Subst is a persistent, finite mapping from type-variable ids to types.
//
// A Subst is always kept in solved form: no bound type contains a type-variable which is itself
// bound within the same Subst. Apply relies on this and performs a single lookup per type-variable,
// so substitutions must only be built with Singleton, Extend, Compose, ComposeAll, or Unify.
//
// The zero value is an empty substitution.
type Subst struct {
	m *immutable.SortedMap[int, Type]
}

// EmptySubst returns a substitution with no bindings.
func EmptySubst() Subst { return Subst{emptySubstMap} }

func (s Subst) entries() *immutable.SortedMap[int, Type] {
	if s.m == nil {
		return emptySubstMap
	}
	return s.m
}

// Singleton binds a single type-variable. An *OccursCheckError is returned if the
// type-variable occurs within t (binding a type-variable to itself produces an empty substitution).
func Singleton(id int, t Type) (Subst, error) {
	if tv, ok := t.(*Var); ok && tv.Id == id {
		return EmptySubst(), nil
	}
	if Occurs(id, t) {
		return Subst{}, &OccursCheckError{Var: id, Type: t}
	}
	return Subst{emptySubstMap.Set(id, t)}, nil
}

func (s Subst) Len() int { return s.entries().Len() }

// Lookup returns the type bound to a type-variable.
func (s Subst) Lookup(id int) (Type, bool) { return s.entries().Get(id) }

// Range calls f for each binding in ascending id order until f returns false.
func (s Subst) Range(f func(id int, t Type) bool) {
	iter := s.entries().Iterator()
	for !iter.Done() {
		id, t, _ := iter.Next()
		if !f(id, t) {
			return
		}
	}
}

// Apply replaces each bound type-variable within t with the type it is bound to.
func (s Subst) Apply(t Type) Type {
	if s.Len() == 0 {
		return t
	}
	return s.apply(t)
}

func (s Subst) apply(t Type) Type {
	switch t := t.(type) {
	case *Var:
		if bound, ok := s.m.Get(t.Id); ok {
			return bound
		}
		return t
	case *Arrow:
		return &Arrow{Arg: s.apply(t.Arg), Return: s.apply(t.Return)}
	case *List:
		return &List{Elem: s.apply(t.Elem)}
	case *Tuple:
		return &Tuple{Elems: t.Elems.Map(s.apply)}
	}
	return t
}

// Without returns a copy of s with the given type-variables unbound.
func (s Subst) Without(vs VarSet) Subst {
	m := s.entries()
	vs.Range(func(id int) bool {
		m = m.Delete(id)
		return true
	})
	return Subst{m}
}

// Extend binds a type-variable within a copy of s.
//
// If the type-variable is already bound, the existing and new types are unified and the
// result is composed into s. Otherwise t is substituted through s before it is bound, and every
// existing binding which refers to the type-variable is rewritten so that s remains in solved form.
// If t reduces to the type-variable itself under s, the binding is trivial (as with Singleton)
// and s is returned unchanged. An *OccursCheckError is returned if any binding would become recursive.
func (s Subst) Extend(id int, t Type) (Subst, error) {
	m := s.entries()
	if bound, ok := m.Get(id); ok {
		u, err := Unify(s.Apply(t), bound)
		if err != nil {
			return Subst{}, err
		}
		return Compose(u, s)
	}
	t = s.Apply(t)
	if tv, ok := t.(*Var); ok && tv.Id == id {
		return Subst{m}, nil
	}
	if Occurs(id, t) {
		return Subst{}, &OccursCheckError{Var: id, Type: t}
	}
	single := Subst{emptySubstMap.Set(id, t)}
	next := m
	iter := m.Iterator()
	for !iter.Done() {
		k, target, _ := iter.Next()
		if !Occurs(id, target) {
			continue
		}
		target = single.apply(target)
		if Occurs(k, target) {
			return Subst{}, &OccursCheckError{Var: k, Type: target}
		}
		next = next.Set(k, target)
	}
	return Subst{next.Set(id, t)}, nil
}

// Compose folds the bindings of s1 (in ascending id order) into s2 with Extend.
// Semantically, s1 is applied first.
func Compose(s1, s2 Subst) (Subst, error) {
	out := s2
	var err error
	s1.Range(func(id int, t Type) bool {
		out, err = out.Extend(id, t)
		return err == nil
	})
	if err != nil {
		return Subst{}, err
	}
	return Subst{out.entries()}, nil
}

// ComposeAll composes substitutions from left to right, starting from an empty substitution.
func ComposeAll(subs ...Subst) (Subst, error) {
	out := EmptySubst()
	for _, s := range subs {
		var err error
		if out, err = Compose(out, s); err != nil {
			return Subst{}, err
		}
	}
	return out, nil
}

func (s Subst) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	s.Range(func(id int, t Type) bool {
		if sb.Len() > 1 {
			sb.WriteString(", ")
		}
		sb.WriteString(getUnboundVarName(id))
		sb.WriteString(" := ")
		sb.WriteString(TypeString(t))
		return true
	})
	sb.WriteByte('}')
	return sb.String()
}
