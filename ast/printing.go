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

import (
	"strconv"
	"strings"
)

// Get the string representation of an expression.
func ExprString(e Expr) string {
	var sb strings.Builder
	exprString(&sb, false, e)
	return sb.String()
}

// Get the string representation of a pattern.
func PatternString(p Pattern) string {
	var sb strings.Builder
	patternString(&sb, false, p)
	return sb.String()
}

// Get the string representation of a top-level statement.
func StmtString(s Stmt) string {
	var sb strings.Builder
	switch s := s.(type) {
	case *Decl:
		sb.WriteString("let ")
		if s.Rec {
			sb.WriteString("rec ")
		}
		sb.WriteString(s.Var)
		sb.WriteString(" = ")
		exprString(&sb, false, s.Value)
	case *ExprStmt:
		exprString(&sb, false, s.Expr)
	default:
		sb.WriteString("<INVALID-STMT>")
	}
	return sb.String()
}

// When simple is true, compound expressions are parenthesized.
func exprString(sb *strings.Builder, simple bool, e Expr) {
	switch et := e.(type) {
	case *IntLit:
		if simple && et.Value < 0 {
			sb.WriteByte('(')
			sb.WriteString(strconv.FormatInt(et.Value, 10))
			sb.WriteByte(')')
			return
		}
		sb.WriteString(strconv.FormatInt(et.Value, 10))

	case *BoolLit:
		sb.WriteString(strconv.FormatBool(et.Value))

	case *Var:
		sb.WriteString(et.Name)

	case *Nil:
		sb.WriteString("[]")

	case *Tuple:
		sb.WriteByte('(')
		for i, elem := range et.Elems {
			if i > 0 {
				sb.WriteString(", ")
			}
			exprString(sb, false, elem)
		}
		sb.WriteByte(')')

	case *Cons:
		if elems, ok := listElems(et); ok {
			sb.WriteByte('[')
			for i, elem := range elems {
				if i > 0 {
					sb.WriteString("; ")
				}
				exprString(sb, false, elem)
			}
			sb.WriteByte(']')
			return
		}
		if simple {
			sb.WriteByte('(')
		}
		exprString(sb, true, et.Head)
		sb.WriteString(" :: ")
		exprString(sb, false, et.Tail)
		if simple {
			sb.WriteByte(')')
		}

	case *Func:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("fun ")
		patternString(sb, true, et.Param)
		sb.WriteString(" -> ")
		exprString(sb, false, et.Body)
		if simple {
			sb.WriteByte(')')
		}

	case *BinOp:
		if simple {
			sb.WriteByte('(')
		}
		operandString(sb, et.Left)
		sb.WriteByte(' ')
		sb.WriteString(et.Op.String())
		sb.WriteByte(' ')
		operandString(sb, et.Right)
		if simple {
			sb.WriteByte(')')
		}

	case *If:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("if ")
		exprString(sb, false, et.Cond)
		sb.WriteString(" then ")
		exprString(sb, false, et.Then)
		sb.WriteString(" else ")
		exprString(sb, false, et.Else)
		if simple {
			sb.WriteByte(')')
		}

	case *Call:
		if simple {
			sb.WriteByte('(')
		}
		// Application is left-associative:
		_, curried := et.Func.(*Call)
		exprString(sb, !curried, et.Func)
		sb.WriteByte(' ')
		exprString(sb, true, et.Arg)
		if simple {
			sb.WriteByte(')')
		}

	case *Let:
		letString(sb, simple, false, et.Var, et.Value, et.Body)

	case *LetRec:
		letString(sb, simple, true, et.Var, et.Value, et.Body)

	case *Match:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("match ")
		exprString(sb, false, et.Value)
		sb.WriteString(" with")
		for i, c := range et.Cases {
			if i > 0 {
				sb.WriteString(" |")
			}
			sb.WriteByte(' ')
			patternString(sb, false, c.Pattern)
			sb.WriteString(" -> ")
			exprString(sb, false, c.Body)
		}
		if simple {
			sb.WriteByte(')')
		}

	default:
		sb.WriteString("<INVALID-EXPR>")
	}
}

// Application binds more tightly than any operator.
func operandString(sb *strings.Builder, e Expr) {
	_, isCall := e.(*Call)
	exprString(sb, !isCall, e)
}

func letString(sb *strings.Builder, simple, rec bool, name string, value, body Expr) {
	if simple {
		sb.WriteByte('(')
	}
	sb.WriteString("let ")
	if rec {
		sb.WriteString("rec ")
	}
	sb.WriteString(name)
	sb.WriteString(" = ")
	exprString(sb, false, value)
	sb.WriteString(" in ")
	exprString(sb, false, body)
	if simple {
		sb.WriteByte(')')
	}
}

// Collect the elements of a cons-chain which ends in Nil.
func listElems(e *Cons) ([]Expr, bool) {
	var elems []Expr
	var tail Expr = e
	for {
		switch t := tail.(type) {
		case *Cons:
			elems = append(elems, t.Head)
			tail = t.Tail
		case *Nil:
			return elems, true
		default:
			return nil, false
		}
	}
}

// When simple is true, cons-patterns are parenthesized.
func patternString(sb *strings.Builder, simple bool, p Pattern) {
	switch pt := p.(type) {
	case *PWildcard:
		sb.WriteByte('_')

	case *PInt:
		sb.WriteString(strconv.FormatInt(pt.Value, 10))

	case *PBool:
		sb.WriteString(strconv.FormatBool(pt.Value))

	case *PNil:
		sb.WriteString("[]")

	case *PVar:
		sb.WriteString(pt.Name)

	case *PCons:
		if simple {
			sb.WriteByte('(')
		}
		patternString(sb, true, pt.Head)
		sb.WriteString(" :: ")
		patternString(sb, false, pt.Tail)
		if simple {
			sb.WriteByte(')')
		}

	case *PTuple:
		sb.WriteByte('(')
		for i, elem := range pt.Elems {
			if i > 0 {
				sb.WriteString(", ")
			}
			patternString(sb, false, elem)
		}
		sb.WriteByte(')')

	default:
		sb.WriteString("<INVALID-PATTERN>")
	}
}
