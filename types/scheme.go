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

// Scheme is a type quantified over a set of type-variables (a polymorphic type).
// Quantified type-variables are replaced with fresh type-variables each time the scheme is instantiated.
type Scheme struct {
	Vars VarSet
	Type Type
}

// Create a scheme which quantifies the given type-variables within t.
func NewScheme(vars VarSet, t Type) *Scheme { return &Scheme{Vars: vars, Type: t} }

// Create a monomorphic scheme (with no quantified type-variables).
func Mono(t Type) *Scheme { return &Scheme{Vars: NewVarSet(), Type: t} }

// IsMono reports whether the scheme quantifies no type-variables.
func (s *Scheme) IsMono() bool { return s.Vars.Len() == 0 }

// FreeVars returns the type-variables within the scheme's type which are not quantified.
func (s *Scheme) FreeVars() VarSet { return FreeTypeVars(s.Type).Difference(s.Vars) }

// Apply substitutes into the scheme's type. Quantified type-variables are removed from sub first,
// so they are never captured.
func (s *Scheme) Apply(sub Subst) *Scheme {
	if sub.Len() == 0 {
		return s
	}
	return &Scheme{Vars: s.Vars, Type: sub.Without(s.Vars).Apply(s.Type)}
}

func (s *Scheme) String() string { return SchemeString(s) }
