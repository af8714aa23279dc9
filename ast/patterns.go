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

package ast

// Pattern is the base for all patterns bound by functions and match cases.
type Pattern interface {
	// Name of the syntax-type of the pattern.
	PatternName() string
}

var (
	_ Pattern = (*PWildcard)(nil)
	_ Pattern = (*PInt)(nil)
	_ Pattern = (*PBool)(nil)
	_ Pattern = (*PNil)(nil)
	_ Pattern = (*PVar)(nil)
	_ Pattern = (*PCons)(nil)
	_ Pattern = (*PTuple)(nil)
)

// Wildcard pattern: `_`
type PWildcard struct{}

func (p *PWildcard) PatternName() string { return "PWildcard" }

// Integer literal pattern: `0`
type PInt struct {
	Value int64
}

func (p *PInt) PatternName() string { return "PInt" }

// Boolean literal pattern: `false`
type PBool struct {
	Value bool
}

func (p *PBool) PatternName() string { return "PBool" }

// Empty list pattern: `[]`
type PNil struct{}

func (p *PNil) PatternName() string { return "PNil" }

// Variable pattern: `x`
type PVar struct {
	Name string
}

func (p *PVar) PatternName() string { return "PVar" }

// List deconstruction pattern: `head :: tail`
type PCons struct {
	Head Pattern
	Tail Pattern
}

func (p *PCons) PatternName() string { return "PCons" }

// Tuple pattern: `(a, b)`
type PTuple struct {
	Elems []Pattern
}

func (p *PTuple) PatternName() string { return "PTuple" }
