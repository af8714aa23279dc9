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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	tv0 = NewVar(0)
	tv1 = NewVar(1)
	tv2 = NewVar(2)
)

func TestUnifyConstants(t *testing.T) {
	s, err := Unify(Int, Int)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())

	s, err = Unify(Bool, Bool)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())

	_, err = Unify(Int, Bool)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnificationFailed))
	assert.Equal(t, "Failed to unify int with bool", err.Error())

	var uerr *UnificationError
	require.True(t, errors.As(err, &uerr))
	assert.True(t, Equal(uerr.Left, Int))
	assert.True(t, Equal(uerr.Right, Bool))
}

func TestUnifyVar(t *testing.T) {
	s, err := Unify(tv0, Int)
	require.NoError(t, err)
	assert.Equal(t, "{'_0 := int}", s.String())

	s, err = Unify(Bool, tv1)
	require.NoError(t, err)
	assert.Equal(t, "{'_1 := bool}", s.String())

	s, err = Unify(tv0, tv0)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestUnifyOccursCheck(t *testing.T) {
	_, err := Unify(tv0, &Arrow{Arg: tv0, Return: Int})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOccursCheck))
	assert.False(t, errors.Is(err, ErrUnificationFailed))

	var oerr *OccursCheckError
	require.True(t, errors.As(err, &oerr))
	assert.Equal(t, 0, oerr.Var)
	t.Logf("error: %v", err)

	_, err = Unify(&List{Elem: tv1}, tv1)
	assert.True(t, errors.Is(err, ErrOccursCheck))
}

func TestUnifyArrow(t *testing.T) {
	a := &Arrow{Arg: tv0, Return: tv0}
	b := &Arrow{Arg: Int, Return: tv1}
	s, err := Unify(a, b)
	require.NoError(t, err)
	assert.True(t, Equal(s.Apply(a), &Arrow{Arg: Int, Return: Int}))
	assert.True(t, Equal(s.Apply(b), &Arrow{Arg: Int, Return: Int}))
	assert.Equal(t, "{'_0 := int, '_1 := int}", s.String())

	_, err = Unify(&Arrow{Arg: Int, Return: Int}, &Arrow{Arg: Bool, Return: Int})
	assert.True(t, errors.Is(err, ErrUnificationFailed))

	_, err = Unify(&Arrow{Arg: Int, Return: Int}, Int)
	assert.True(t, errors.Is(err, ErrUnificationFailed))
}

func TestUnifyList(t *testing.T) {
	s, err := Unify(&List{Elem: tv0}, &List{Elem: Bool})
	require.NoError(t, err)
	assert.Equal(t, "{'_0 := bool}", s.String())

	_, err = Unify(&List{Elem: Int}, &List{Elem: Bool})
	assert.True(t, errors.Is(err, ErrUnificationFailed))

	_, err = Unify(&List{Elem: Int}, Int)
	assert.True(t, errors.Is(err, ErrUnificationFailed))
}

func TestUnifyTuple(t *testing.T) {
	a := NewTuple(tv0, tv1, tv0)
	b := NewTuple(Int, tv2, tv2)
	s, err := Unify(a, b)
	require.NoError(t, err)
	assert.True(t, Equal(s.Apply(a), s.Apply(b)))
	assert.Equal(t, "int * int * int", TypeString(s.Apply(a)))

	_, err = Unify(NewTuple(Int, Bool), NewTuple(Int, Bool, Int))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnificationFailed))
	assert.Contains(t, err.Error(), "differing arity (2 and 3)")

	_, err = Unify(NewTuple(Int, Bool), NewTuple(Bool, Bool))
	assert.True(t, errors.Is(err, ErrUnificationFailed))

	s, err = Unify(NewTuple(), NewTuple())
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestUnifyIsMostGeneral(t *testing.T) {
	a := &Arrow{Arg: tv0, Return: &List{Elem: tv1}}
	b := &Arrow{Arg: tv2, Return: tv2}
	s, err := Unify(a, b)
	require.NoError(t, err)
	got := s.Apply(a)
	assert.True(t, Equal(got, s.Apply(b)))
	// Only '_1 remains free:
	assert.Equal(t, []int{1}, FreeTypeVars(got).Ids())
	t.Logf("unified: %s", TypeString(got))
}
