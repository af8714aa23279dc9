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
	"cmp"
	"strings"

	set "github.com/hashicorp/go-set/v3"
)

// VarSet is an ordered set of type-variable ids. Iteration is always in ascending id order.
type VarSet struct {
	s *set.TreeSet[int]
}

func NewVarSet(ids ...int) VarSet {
	return VarSet{set.TreeSetFrom[int](ids, cmp.Compare[int])}
}

func (vs VarSet) Len() int {
	if vs.s == nil {
		return 0
	}
	return vs.s.Size()
}

func (vs VarSet) Contains(id int) bool { return vs.s != nil && vs.s.Contains(id) }

// Insert adds an id to the set. The set must have been created with NewVarSet.
func (vs VarSet) Insert(id int) { vs.s.Insert(id) }

// Ids returns the ids in ascending order.
func (vs VarSet) Ids() []int {
	if vs.s == nil {
		return nil
	}
	return vs.s.Slice()
}

// Range calls f for each id in ascending order until f returns false.
func (vs VarSet) Range(f func(id int) bool) {
	if vs.s == nil {
		return
	}
	for id := range vs.s.Items() {
		if !f(id) {
			return
		}
	}
}

// Union returns a new set containing the ids of both sets.
func (vs VarSet) Union(other VarSet) VarSet {
	out := vs.Copy()
	other.Range(func(id int) bool {
		out.s.Insert(id)
		return true
	})
	return out
}

// Difference returns a new set containing the ids of vs which are not in other.
func (vs VarSet) Difference(other VarSet) VarSet {
	out := NewVarSet()
	vs.Range(func(id int) bool {
		if !other.Contains(id) {
			out.s.Insert(id)
		}
		return true
	})
	return out
}

func (vs VarSet) Copy() VarSet {
	if vs.s == nil {
		return NewVarSet()
	}
	return VarSet{vs.s.Copy()}
}

func (vs VarSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	vs.Range(func(id int) bool {
		if sb.Len() > 1 {
			sb.WriteString(", ")
		}
		sb.WriteString(getUnboundVarName(id))
		return true
	})
	sb.WriteByte('}')
	return sb.String()
}
