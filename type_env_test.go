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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdamron/hm/types"
)

func TestTypeEnvIsPersistent(t *testing.T) {
	var zero TypeEnv
	assert.Equal(t, 0, zero.Len())
	_, ok := zero.Lookup("x")
	assert.False(t, ok)

	e1 := zero.DeclareMono("x", types.Int)
	e2 := e1.DeclareMono("y", types.Bool)
	e3 := e2.DeclareMono("x", types.Bool)

	assert.Equal(t, "{x : int}", e1.String())
	assert.Equal(t, "{x : int, y : bool}", e2.String())
	assert.Equal(t, "{x : bool, y : bool}", e3.String())
	assert.Equal(t, "{y : bool}", e3.Remove("x").String())
	assert.Equal(t, 2, e3.Len())
}

func TestTypeEnvApply(t *testing.T) {
	tv0, tv1 := types.NewVar(0), types.NewVar(1)
	env := NewTypeEnv().
		DeclareMono("a", tv0).
		Declare("id", types.NewScheme(types.NewVarSet(1), &types.Arrow{Arg: tv1, Return: tv1}))

	s, err := types.ComposeAll(mustSubst(t, 0, types.Int), mustSubst(t, 1, types.Bool))
	require.NoError(t, err)

	applied := env.Apply(s)
	assert.Equal(t, "{a : int, id : 'a -> 'a}", applied.String())
	assert.Equal(t, "{a : '_0, id : 'a -> 'a}", env.String())

	assert.Equal(t, []int{0}, env.FreeVars().Ids())
	assert.Equal(t, 0, applied.FreeVars().Len())
}

func TestGeneralize(t *testing.T) {
	tv0, tv1 := types.NewVar(0), types.NewVar(1)
	fn := &types.Arrow{Arg: tv0, Return: tv1}

	sc := Generalize(NewTypeEnv(), fn)
	assert.Equal(t, []int{0, 1}, sc.Vars.Ids())
	assert.Equal(t, "'a -> 'b", sc.String())

	// Type-variables which are free in the environment are not quantified:
	env := NewTypeEnv().DeclareMono("x", tv0)
	sc = Generalize(env, fn)
	assert.Equal(t, []int{1}, sc.Vars.Ids())
	assert.Equal(t, "'_0 -> 'a", sc.String())

	// The binding's own placeholder is ignored for recursive bindings:
	env = NewTypeEnv().DeclareMono("f", fn)
	assert.Equal(t, 0, Generalize(env, fn).Vars.Len())
	assert.Equal(t, "'a -> 'b", GeneralizeRec(env, fn, "f").String())

	assert.True(t, Generalize(NewTypeEnv(), types.Int).IsMono())
}

func mustSubst(t *testing.T, id int, ty types.Type) types.Subst {
	t.Helper()
	s, err := types.Singleton(id, ty)
	require.NoError(t, err)
	return s
}
