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

// Op is a binary operator.
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpLt
	OpGt
	OpLe
	OpGe
	OpEq
	OpNe
	OpAnd
	OpOr
)

var opSyntax = [...]string{
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpDiv: "/",
	OpLt:  "<",
	OpGt:  ">",
	OpLe:  "<=",
	OpGe:  ">=",
	OpEq:  "=",
	OpNe:  "<>",
	OpAnd: "&&",
	OpOr:  "||",
}

func (op Op) String() string {
	if op < 0 || int(op) >= len(opSyntax) {
		return "<invalid-op>"
	}
	return opSyntax[op]
}

// IsArithmetic reports whether the operator takes and produces integers.
func (op Op) IsArithmetic() bool { return op >= OpAdd && op <= OpDiv }

// IsComparison reports whether the operator compares operands of the same type.
func (op Op) IsComparison() bool { return op >= OpLt && op <= OpNe }

// IsBoolean reports whether the operator is a boolean connective.
func (op Op) IsBoolean() bool { return op == OpAnd || op == OpOr }

// LookupOp finds the operator for its syntax, e.g. "+" or "<=".
func LookupOp(syntax string) (Op, bool) {
	for op, s := range opSyntax {
		if s == syntax {
			return Op(op), true
		}
	}
	return 0, false
}
