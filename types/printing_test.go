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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeString(t *testing.T) {
	intToInt := &Arrow{Arg: Int, Return: Int}
	cases := []struct {
		ty       Type
		expected string
	}{
		{Int, "int"},
		{Bool, "bool"},
		{NewVar(7), "'_7"},
		{NewVar(300), "'_300"},
		{&Arrow{Arg: Int, Return: intToInt}, "int -> int -> int"},
		{&Arrow{Arg: intToInt, Return: Int}, "(int -> int) -> int"},
		{&List{Elem: Int}, "int list"},
		{&List{Elem: &List{Elem: Bool}}, "bool list list"},
		{&List{Elem: intToInt}, "(int -> int) list"},
		{&List{Elem: NewTuple(Int, Bool)}, "(int * bool) list"},
		{NewTuple(Int, Bool, NewVar(0)), "int * bool * '_0"},
		{NewTuple(intToInt, Int), "(int -> int) * int"},
		{NewTuple(), "()"},
		{&Arrow{Arg: NewTuple(Int, Int), Return: Bool}, "int * int -> bool"},
		{nil, "<INVALID-TYPE>"},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, TypeString(c.ty))
	}
}

func TestSchemeString(t *testing.T) {
	// Quantified variables are named in order of appearance:
	sc := NewScheme(NewVarSet(4, 9), &Arrow{
		Arg:    &Arrow{Arg: NewVar(9), Return: NewVar(4)},
		Return: &Arrow{Arg: &List{Elem: NewVar(9)}, Return: &List{Elem: NewVar(4)}},
	})
	assert.Equal(t, "('a -> 'b) -> 'a list -> 'b list", sc.String())

	partial := NewScheme(NewVarSet(1), &Arrow{Arg: NewVar(1), Return: NewVar(2)})
	assert.Equal(t, "'a -> '_2", SchemeString(partial))

	assert.Equal(t, "int", Mono(Int).String())

	// Names are not shared between calls:
	assert.Equal(t, "'a -> 'a", NewScheme(NewVarSet(5), &Arrow{Arg: NewVar(5), Return: NewVar(5)}).String())
}

func TestVarSet(t *testing.T) {
	var zero VarSet
	assert.Equal(t, 0, zero.Len())
	assert.False(t, zero.Contains(0))
	assert.Empty(t, zero.Ids())

	vs := NewVarSet(3, 1, 2)
	assert.Equal(t, []int{1, 2, 3}, vs.Ids())
	assert.Equal(t, []int{1, 3}, vs.Difference(NewVarSet(2, 5)).Ids())
	assert.Equal(t, []int{1, 2, 3, 5}, vs.Union(NewVarSet(5)).Ids())
	assert.Equal(t, []int{1, 2, 3}, vs.Ids())

	c := vs.Copy()
	c.Insert(10)
	assert.False(t, vs.Contains(10))
	assert.True(t, c.Contains(10))
}

func TestFreeTypeVars(t *testing.T) {
	ty := &Arrow{Arg: NewTuple(NewVar(2), Int), Return: &List{Elem: &Arrow{Arg: NewVar(0), Return: NewVar(2)}}}
	assert.Equal(t, []int{0, 2}, FreeTypeVars(ty).Ids())
	assert.True(t, Occurs(0, ty))
	assert.False(t, Occurs(1, ty))
	assert.Equal(t, 0, FreeTypeVars(Int).Len())
}
