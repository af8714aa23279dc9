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
	"strings"

	"github.com/benbjohnson/immutable"

	"github.com/wdamron/hm/types"
)

var emptyEnvMap = immutable.NewSortedMap[string, *types.Scheme](immutable.NewComparer(""))

// TypeEnv is a persistent type-environment containing mappings from identifiers to type schemes.
//
// A TypeEnv is never modified in place: each update returns a new environment which shares
// structure with the original, so sibling scopes may each extend the same environment independently.
// The zero value is an empty environment.
type TypeEnv struct {
	m *immutable.SortedMap[string, *types.Scheme]
}

// Create an empty type-environment.
func NewTypeEnv() TypeEnv { return TypeEnv{emptyEnvMap} }

func (e TypeEnv) entries() *immutable.SortedMap[string, *types.Scheme] {
	if e.m == nil {
		return emptyEnvMap
	}
	return e.m
}

// Len returns the number of identifiers bound in the environment.
func (e TypeEnv) Len() int { return e.entries().Len() }

// Lookup the scheme for an identifier.
func (e TypeEnv) Lookup(name string) (*types.Scheme, bool) { return e.entries().Get(name) }

// Declare returns a copy of the environment with a scheme bound to an identifier.
// Any existing binding for the identifier is replaced.
func (e TypeEnv) Declare(name string, s *types.Scheme) TypeEnv {
	return TypeEnv{e.entries().Set(name, s)}
}

// DeclareMono returns a copy of the environment with a monomorphic type bound to an identifier.
func (e TypeEnv) DeclareMono(name string, t types.Type) TypeEnv {
	return e.Declare(name, types.Mono(t))
}

// Remove returns a copy of the environment without a binding for an identifier.
func (e TypeEnv) Remove(name string) TypeEnv { return TypeEnv{e.entries().Delete(name)} }

// Apply returns a copy of the environment with a substitution applied to every scheme.
func (e TypeEnv) Apply(sub types.Subst) TypeEnv {
	if sub.Len() == 0 {
		return e
	}
	m := e.entries()
	next := m
	iter := m.Iterator()
	for !iter.Done() {
		name, s, _ := iter.Next()
		next = next.Set(name, s.Apply(sub))
	}
	return TypeEnv{next}
}

// FreeVars returns the type-variables which occur free in any scheme within the environment.
func (e TypeEnv) FreeVars() types.VarSet {
	vs := types.NewVarSet()
	e.Range(func(_ string, s *types.Scheme) bool {
		s.FreeVars().Range(func(id int) bool {
			vs.Insert(id)
			return true
		})
		return true
	})
	return vs
}

// Range calls f for each binding in name order until f returns false.
func (e TypeEnv) Range(f func(name string, s *types.Scheme) bool) {
	iter := e.entries().Iterator()
	for !iter.Done() {
		name, s, _ := iter.Next()
		if !f(name, s) {
			return
		}
	}
}

// Names returns the bound identifiers in sorted order.
func (e TypeEnv) Names() []string {
	names := make([]string, 0, e.Len())
	e.Range(func(name string, _ *types.Scheme) bool {
		names = append(names, name)
		return true
	})
	return names
}

func (e TypeEnv) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	e.Range(func(name string, s *types.Scheme) bool {
		if sb.Len() > 1 {
			sb.WriteString(", ")
		}
		sb.WriteString(name)
		sb.WriteString(" : ")
		sb.WriteString(types.SchemeString(s))
		return true
	})
	sb.WriteByte('}')
	return sb.String()
}
