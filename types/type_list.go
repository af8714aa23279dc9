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
	"github.com/benbjohnson/immutable"
)

var emptyList = immutable.NewList[Type]()

// EmptyTypeList is an empty list of types.
var EmptyTypeList = TypeList{emptyList}

// TypeList is an immutable list of types. Tuple elements are stored in a TypeList so that
// substituting into a tuple never mutates the original.
type TypeList struct {
	l *immutable.List[Type]
}

// Create an empty list of types.
func NewTypeList() TypeList { return TypeList{emptyList} }

// Create a list containing a single type.
func SingletonTypeList(t Type) TypeList {
	return TypeList{emptyList.Append(t)}
}

func (l TypeList) Len() int {
	if l.l == nil {
		return 0
	}
	return l.l.Len()
}

func (l TypeList) Get(i int) Type                { return l.l.Get(i) }
func (l TypeList) Slice(start, end int) TypeList { return TypeList{l.l.Slice(start, end)} }

// Range calls f for each index and type until f returns false.
func (l TypeList) Range(f func(int, Type) bool) {
	if l.l == nil {
		return
	}
	iter := l.l.Iterator()
	for !iter.Done() {
		i, t := iter.Next()
		if !f(i, t) {
			return
		}
	}
}

// Map returns a new list with f applied to each type.
func (l TypeList) Map(f func(Type) Type) TypeList {
	b := l.Builder()
	l.Range(func(i int, t Type) bool {
		b.Set(i, f(t))
		return true
	})
	return b.Build()
}

// Create a builder which can be used to efficiently construct a modified copy of the list.
func (l TypeList) Builder() TypeListBuilder {
	imm := l.l
	if imm == nil {
		imm = emptyList
	}
	b := immutable.NewListBuilder[Type]()
	iter := imm.Iterator()
	for !iter.Done() {
		_, t := iter.Next()
		b.Append(t)
	}
	return TypeListBuilder{b}
}

// TypeListBuilder enables in-place updates of a list before finalization.
type TypeListBuilder struct {
	b *immutable.ListBuilder[Type]
}

// Create a builder for an empty list.
func NewTypeListBuilder() TypeListBuilder {
	return TypeListBuilder{immutable.NewListBuilder[Type]()}
}

func (b TypeListBuilder) Len() int          { return b.b.Len() }
func (b TypeListBuilder) Append(t Type)     { b.b.Append(t) }
func (b TypeListBuilder) Set(i int, t Type) { b.b.Set(i, t) }
func (b TypeListBuilder) Build() TypeList   { return TypeList{b.b.List()} }
