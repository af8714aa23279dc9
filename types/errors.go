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
	"errors"
	"strconv"
)

var (
	// ErrOccursCheck matches any *OccursCheckError with errors.Is.
	ErrOccursCheck = errors.New("occurs check failed")
	// ErrUnificationFailed matches any *UnificationError with errors.Is.
	ErrUnificationFailed = errors.New("unification failed")
)

// OccursCheckError is returned when binding a type-variable would create an infinite type.
type OccursCheckError struct {
	Var  int
	Type Type
}

func (e *OccursCheckError) Error() string {
	return "Occurs check failed: " + getUnboundVarName(e.Var) + " occurs in " + TypeString(e.Type)
}

func (e *OccursCheckError) Is(target error) bool { return target == ErrOccursCheck }

// UnificationError is returned when two types are structurally incompatible.
type UnificationError struct {
	Left  Type
	Right Type
}

func (e *UnificationError) Error() string {
	if l, ok := e.Left.(*Tuple); ok {
		if r, ok := e.Right.(*Tuple); ok && l.Elems.Len() != r.Elems.Len() {
			return "Cannot unify tuples with differing arity (" + strconv.Itoa(l.Elems.Len()) + " and " +
				strconv.Itoa(r.Elems.Len()) + "): " + TypeString(e.Left) + " and " + TypeString(e.Right)
		}
	}
	return "Failed to unify " + TypeString(e.Left) + " with " + TypeString(e.Right)
}

func (e *UnificationError) Is(target error) bool { return target == ErrUnificationFailed }
