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

package typeutil

import (
	"github.com/wdamron/hm/types"
)

// VarTracker allocates type-variables with strictly increasing ids for a single inference run.
type VarTracker struct {
	// Next unused type-variable id
	NextId int
	count  int
}

// Reset restarts allocation from id 0.
func (vt *VarTracker) Reset() { vt.NextId, vt.count = 0, 0 }

// SkipPast advances allocation beyond every id in vs, so ids which are already in use
// (e.g. free within a caller-supplied environment) are never allocated.
func (vt *VarTracker) SkipPast(vs types.VarSet) {
	ids := vs.Ids()
	if n := len(ids); n > 0 && ids[n-1] >= vt.NextId {
		vt.NextId = ids[n-1] + 1
	}
}

// Count returns the number of type-variables allocated since the last reset.
func (vt *VarTracker) Count() int { return vt.count }

// New allocates a type-variable with an unused id.
func (vt *VarTracker) New() *types.Var {
	tv := types.NewVar(vt.NextId)
	vt.NextId, vt.count = vt.NextId+1, vt.count+1
	return tv
}
