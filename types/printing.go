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
	"strconv"
	"strings"
	"sync"
)

var printerPool = sync.Pool{
	New: func() interface{} {
		return &typePrinter{idNames: make(map[int]string, 16)}
	},
}

func newTypePrinter() *typePrinter { return printerPool.Get().(*typePrinter) }

func (p *typePrinter) Release() {
	for k := range p.idNames {
		delete(p.idNames, k)
	}
	p.bound = VarSet{}
	p.sb.Reset()
	printerPool.Put(p)
}

// Get the canonical string representation of a type.
//
// Type-variables are printed as '_0, '_1, etc. Function types are right-associative; only a function type
// on the left of an arrow is parenthesized. Tuple components which are function types are parenthesized.
// List types are printed as `elem list`, with function or tuple element types parenthesized.
func TypeString(t Type) string {
	p := newTypePrinter()
	typeString(p, false, t)
	s := p.sb.String()
	p.Release()
	return s
}

// Get the string representation of a scheme. Quantified type-variables are printed as 'a, 'b, etc.
// in order of appearance; free type-variables are printed as with TypeString.
func SchemeString(s *Scheme) string {
	p := newTypePrinter()
	p.bound = s.Vars
	typeString(p, false, s.Type)
	out := p.sb.String()
	p.Release()
	return out
}

type typePrinter struct {
	idNames map[int]string
	bound   VarSet
	sb      strings.Builder
}

var _names [128]string
var _unboundNames [128]string

func init() {
	for i := range _names {
		if i >= 26 {
			_names[i] = "'" + string(byte(97+i%26)) + strconv.Itoa(i/26)
			continue
		}
		_names[i] = "'" + string(byte(97+i%26))
	}
	for i := range _unboundNames {
		_unboundNames[i] = "'_" + strconv.Itoa(i)
	}
}

func getVarName(i int) string {
	if i < len(_names) {
		return _names[i]
	}
	return "'" + string(byte(97+i%26)) + strconv.Itoa(i/26)
}

func getUnboundVarName(i int) string {
	if i >= 0 && i < len(_unboundNames) {
		return _unboundNames[i]
	}
	return "'_" + strconv.Itoa(i)
}

func (p *typePrinter) nextName() string {
	return getVarName(len(p.idNames))
}

// When simple is true, function types are parenthesized.
func typeString(p *typePrinter, simple bool, t Type) {
	switch t := t.(type) {
	case *Const:
		p.sb.WriteString(t.Name)

	case *Var:
		if !p.bound.Contains(t.Id) {
			p.sb.WriteString(getUnboundVarName(t.Id))
			return
		}
		if name, ok := p.idNames[t.Id]; ok {
			p.sb.WriteString(name)
			return
		}
		name := p.nextName()
		p.idNames[t.Id] = name
		p.sb.WriteString(name)

	case *Arrow:
		if simple {
			p.sb.WriteByte('(')
		}
		typeString(p, true, t.Arg)
		p.sb.WriteString(" -> ")
		typeString(p, false, t.Return)
		if simple {
			p.sb.WriteByte(')')
		}

	case *Tuple:
		if t.Elems.Len() == 0 {
			p.sb.WriteString("()")
			return
		}
		t.Elems.Range(func(i int, t Type) bool {
			if i > 0 {
				p.sb.WriteString(" * ")
			}
			typeString(p, true, t)
			return true
		})

	case *List:
		if _, isTuple := t.Elem.(*Tuple); isTuple {
			p.sb.WriteByte('(')
			typeString(p, false, t.Elem)
			p.sb.WriteByte(')')
		} else {
			typeString(p, true, t.Elem)
		}
		p.sb.WriteString(" list")

	default:
		p.sb.WriteString("<INVALID-TYPE>")
	}
}
