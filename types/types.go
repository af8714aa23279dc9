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

// Package types contains the type terms, substitutions, and schemes used during inference.
package types

// Type is the base for all types.
type Type interface {
	TypeName() string
}

func (t *Const) TypeName() string { return "Const" }
func (t *Var) TypeName() string   { return "Var" }
func (t *Arrow) TypeName() string { return "Arrow" }
func (t *List) TypeName() string  { return "List" }
func (t *Tuple) TypeName() string { return "Tuple" }

var (
	// Int is the type of integer literals and arithmetic.
	Int = &Const{Name: "int"}
	// Bool is the type of boolean literals, comparisons, and conditions.
	Bool = &Const{Name: "bool"}
)

// Type constant: `int` or `bool`
type Const struct {
	Name string
}

// Type-variable: an undetermined type identified by a unique id.
//
// Type-variables are immutable; binding a type-variable is recorded in a substitution,
// never on the variable itself.
type Var struct {
	Id int
}

// NewVar creates a type-variable with the given id.
func NewVar(id int) *Var { return &Var{Id: id} }

// Function type: `Arg -> Return`
type Arrow struct {
	Arg    Type
	Return Type
}

// List type: `Elem list`
type List struct {
	Elem Type
}

// Tuple type: `T1 * T2 * ... * Tn`
type Tuple struct {
	Elems TypeList
}

// NewTuple creates a tuple type from a slice of element types.
func NewTuple(elems ...Type) *Tuple {
	b := NewTypeListBuilder()
	for _, t := range elems {
		b.Append(t)
	}
	return &Tuple{Elems: b.Build()}
}

// Equal reports whether two types are structurally identical.
func Equal(a, b Type) bool {
	switch a := a.(type) {
	case *Const:
		b, ok := b.(*Const)
		return ok && a.Name == b.Name
	case *Var:
		b, ok := b.(*Var)
		return ok && a.Id == b.Id
	case *Arrow:
		b, ok := b.(*Arrow)
		return ok && Equal(a.Arg, b.Arg) && Equal(a.Return, b.Return)
	case *List:
		b, ok := b.(*List)
		return ok && Equal(a.Elem, b.Elem)
	case *Tuple:
		b, ok := b.(*Tuple)
		if !ok || a.Elems.Len() != b.Elems.Len() {
			return false
		}
		equal := true
		a.Elems.Range(func(i int, t Type) bool {
			equal = Equal(t, b.Elems.Get(i))
			return equal
		})
		return equal
	}
	return false
}

// Occurs reports whether the type-variable with the given id occurs within t.
func Occurs(id int, t Type) bool {
	switch t := t.(type) {
	case *Var:
		return t.Id == id
	case *Arrow:
		return Occurs(id, t.Arg) || Occurs(id, t.Return)
	case *List:
		return Occurs(id, t.Elem)
	case *Tuple:
		found := false
		t.Elems.Range(func(i int, t Type) bool {
			found = Occurs(id, t)
			return !found
		})
		return found
	}
	return false
}

// FreeTypeVars returns the ids of all type-variables within t.
func FreeTypeVars(t Type) VarSet {
	vs := NewVarSet()
	collectVars(vs, t)
	return vs
}

func collectVars(vs VarSet, t Type) {
	switch t := t.(type) {
	case *Var:
		vs.Insert(t.Id)
	case *Arrow:
		collectVars(vs, t.Arg)
		collectVars(vs, t.Return)
	case *List:
		collectVars(vs, t.Elem)
	case *Tuple:
		t.Elems.Range(func(i int, t Type) bool {
			collectVars(vs, t)
			return true
		})
	}
}
