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
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// DecodeError describes a malformed node within a YAML program.
type DecodeError struct {
	Line   int
	Column int
	Msg    string
}

func (e *DecodeError) Error() string { return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Msg) }

func decodeErr(n *yaml.Node, format string, args ...interface{}) error {
	return &DecodeError{Line: n.Line, Column: n.Column, Msg: fmt.Sprintf(format, args...)}
}

// UnmarshalProgram decodes a YAML program from a byte slice. See DecodeProgram.
func UnmarshalProgram(data []byte) ([]Stmt, error) { return DecodeProgram(bytes.NewReader(data)) }

// DecodeProgram decodes a sequence of statements from a YAML document.
//
// Each node is a mapping with a single key naming its syntax-type:
//
//	- let: five
//	  value: {binop: {op: "+", left: {int: 2}, right: {int: 3}}}
//	- letrec: length
//	  value:
//	    fun:
//	      param: xs
//	      body:
//	        match:
//	          value: {var: xs}
//	          cases:
//	            - {pattern: {nil: null}, body: {int: 0}}
//	            - pattern: {cons: {head: _, tail: rest}}
//	              body: {binop: {op: "+", left: {int: 1}, right: {call: [{var: length}, {var: rest}]}}}
//	- expr: {call: [{var: length}, {list: [{int: 1}, {int: 2}]}]}
//
// An empty document decodes to an empty program.
func DecodeProgram(r io.Reader) ([]Stmt, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, nil
		}
		root = root.Content[0]
	}
	if root.Kind != yaml.SequenceNode {
		return nil, decodeErr(root, "program must be a sequence of statements")
	}
	stmts := make([]Stmt, 0, len(root.Content))
	for _, n := range root.Content {
		s, err := decodeStmt(n)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	return stmts, nil
}

func decodeStmt(n *yaml.Node) (Stmt, error) {
	fields, err := mappingFields(n, "statement")
	if err != nil {
		return nil, err
	}
	if e, ok := fields["expr"]; ok {
		if len(fields) != 1 {
			return nil, decodeErr(n, "expression statement must only contain an expr key")
		}
		expr, err := decodeExpr(e)
		if err != nil {
			return nil, err
		}
		return &ExprStmt{Expr: expr}, nil
	}
	decl := &Decl{}
	name, hasLet := fields["let"]
	if rec, hasLetRec := fields["letrec"]; hasLetRec {
		if hasLet {
			return nil, decodeErr(n, "declaration cannot contain both let and letrec keys")
		}
		name, decl.Rec = rec, true
	} else if !hasLet {
		return nil, decodeErr(n, "statement must contain a let, letrec, or expr key")
	}
	if decl.Var, err = identifier(name); err != nil {
		return nil, err
	}
	if len(fields) != 2 {
		return nil, decodeErr(n, "declaration of %s must contain exactly one value key", decl.Var)
	}
	if decl.Value, err = requiredExpr(n, fields, "value"); err != nil {
		return nil, err
	}
	return decl, nil
}

func decodeExpr(n *yaml.Node) (Expr, error) {
	key, val, err := singleKey(n, "expression")
	if err != nil {
		return nil, err
	}
	switch key {
	case "int":
		var v int64
		if err := val.Decode(&v); err != nil {
			return nil, decodeErr(val, "invalid integer literal %q", val.Value)
		}
		return &IntLit{Value: v}, nil

	case "bool":
		var v bool
		if err := val.Decode(&v); err != nil {
			return nil, decodeErr(val, "invalid boolean literal %q", val.Value)
		}
		return &BoolLit{Value: v}, nil

	case "var":
		name, err := identifier(val)
		if err != nil {
			return nil, err
		}
		return &Var{Name: name}, nil

	case "nil":
		return &Nil{}, nil

	case "fun":
		fields, err := mappingFields(val, "function")
		if err != nil {
			return nil, err
		}
		paramNode, ok := fields["param"]
		if !ok {
			return nil, decodeErr(val, "function is missing a param key")
		}
		param, err := decodePattern(paramNode)
		if err != nil {
			return nil, err
		}
		body, err := requiredExpr(val, fields, "body")
		if err != nil {
			return nil, err
		}
		return &Func{Param: param, Body: body}, nil

	case "binop":
		fields, err := mappingFields(val, "binary operation")
		if err != nil {
			return nil, err
		}
		opNode, ok := fields["op"]
		if !ok || opNode.Kind != yaml.ScalarNode {
			return nil, decodeErr(val, "binary operation is missing an op key")
		}
		op, ok := LookupOp(opNode.Value)
		if !ok {
			return nil, decodeErr(opNode, "unknown operator %q", opNode.Value)
		}
		left, err := requiredExpr(val, fields, "left")
		if err != nil {
			return nil, err
		}
		right, err := requiredExpr(val, fields, "right")
		if err != nil {
			return nil, err
		}
		return &BinOp{Op: op, Left: left, Right: right}, nil

	case "tuple":
		elems, err := exprSequence(val, "tuple")
		if err != nil {
			return nil, err
		}
		return &Tuple{Elems: elems}, nil

	case "list":
		elems, err := exprSequence(val, "list")
		if err != nil {
			return nil, err
		}
		var list Expr = &Nil{}
		for i := len(elems) - 1; i >= 0; i-- {
			list = &Cons{Head: elems[i], Tail: list}
		}
		return list, nil

	case "cons":
		fields, err := mappingFields(val, "cons")
		if err != nil {
			return nil, err
		}
		head, err := requiredExpr(val, fields, "head")
		if err != nil {
			return nil, err
		}
		tail, err := requiredExpr(val, fields, "tail")
		if err != nil {
			return nil, err
		}
		return &Cons{Head: head, Tail: tail}, nil

	case "if":
		fields, err := mappingFields(val, "conditional")
		if err != nil {
			return nil, err
		}
		cond, err := requiredExpr(val, fields, "cond")
		if err != nil {
			return nil, err
		}
		then, err := requiredExpr(val, fields, "then")
		if err != nil {
			return nil, err
		}
		els, err := requiredExpr(val, fields, "else")
		if err != nil {
			return nil, err
		}
		return &If{Cond: cond, Then: then, Else: els}, nil

	case "call":
		exprs, err := exprSequence(val, "call")
		if err != nil {
			return nil, err
		}
		if len(exprs) < 2 {
			return nil, decodeErr(val, "call must contain a function and at least one argument")
		}
		call := exprs[0]
		for _, arg := range exprs[1:] {
			call = &Call{Func: call, Arg: arg}
		}
		return call, nil

	case "let", "letrec":
		fields, err := mappingFields(val, key)
		if err != nil {
			return nil, err
		}
		nameNode, ok := fields["var"]
		if !ok {
			return nil, decodeErr(val, "%s is missing a var key", key)
		}
		name, err := identifier(nameNode)
		if err != nil {
			return nil, err
		}
		value, err := requiredExpr(val, fields, "value")
		if err != nil {
			return nil, err
		}
		body, err := requiredExpr(val, fields, "body")
		if err != nil {
			return nil, err
		}
		if key == "letrec" {
			return &LetRec{Var: name, Value: value, Body: body}, nil
		}
		return &Let{Var: name, Value: value, Body: body}, nil

	case "match":
		fields, err := mappingFields(val, "match")
		if err != nil {
			return nil, err
		}
		value, err := requiredExpr(val, fields, "value")
		if err != nil {
			return nil, err
		}
		m := &Match{Value: value}
		casesNode, ok := fields["cases"]
		if !ok {
			return m, nil
		}
		if casesNode.Kind != yaml.SequenceNode {
			return nil, decodeErr(casesNode, "match cases must be a sequence")
		}
		for _, c := range casesNode.Content {
			caseFields, err := mappingFields(c, "match case")
			if err != nil {
				return nil, err
			}
			patNode, ok := caseFields["pattern"]
			if !ok {
				return nil, decodeErr(c, "match case is missing a pattern key")
			}
			pat, err := decodePattern(patNode)
			if err != nil {
				return nil, err
			}
			body, err := requiredExpr(c, caseFields, "body")
			if err != nil {
				return nil, err
			}
			m.Cases = append(m.Cases, MatchCase{Pattern: pat, Body: body})
		}
		return m, nil
	}
	return nil, decodeErr(n, "unknown expression %q", key)
}

func decodePattern(n *yaml.Node) (Pattern, error) {
	if n.Kind == yaml.ScalarNode {
		if n.Value == "_" {
			return &PWildcard{}, nil
		}
		name, err := identifier(n)
		if err != nil {
			return nil, err
		}
		return &PVar{Name: name}, nil
	}
	key, val, err := singleKey(n, "pattern")
	if err != nil {
		return nil, err
	}
	switch key {
	case "wildcard":
		return &PWildcard{}, nil

	case "var":
		name, err := identifier(val)
		if err != nil {
			return nil, err
		}
		return &PVar{Name: name}, nil

	case "int":
		var v int64
		if err := val.Decode(&v); err != nil {
			return nil, decodeErr(val, "invalid integer pattern %q", val.Value)
		}
		return &PInt{Value: v}, nil

	case "bool":
		var v bool
		if err := val.Decode(&v); err != nil {
			return nil, decodeErr(val, "invalid boolean pattern %q", val.Value)
		}
		return &PBool{Value: v}, nil

	case "nil":
		return &PNil{}, nil

	case "cons":
		fields, err := mappingFields(val, "cons pattern")
		if err != nil {
			return nil, err
		}
		headNode, hasHead := fields["head"]
		tailNode, hasTail := fields["tail"]
		if !hasHead || !hasTail {
			return nil, decodeErr(val, "cons pattern must contain head and tail keys")
		}
		head, err := decodePattern(headNode)
		if err != nil {
			return nil, err
		}
		tail, err := decodePattern(tailNode)
		if err != nil {
			return nil, err
		}
		return &PCons{Head: head, Tail: tail}, nil

	case "tuple":
		if val.Kind != yaml.SequenceNode {
			return nil, decodeErr(val, "tuple pattern must be a sequence")
		}
		elems := make([]Pattern, 0, len(val.Content))
		for _, e := range val.Content {
			p, err := decodePattern(e)
			if err != nil {
				return nil, err
			}
			elems = append(elems, p)
		}
		return &PTuple{Elems: elems}, nil
	}
	return nil, decodeErr(n, "unknown pattern %q", key)
}

func singleKey(n *yaml.Node, what string) (string, *yaml.Node, error) {
	if n.Kind != yaml.MappingNode || len(n.Content) != 2 {
		return "", nil, decodeErr(n, "%s must be a mapping with a single key", what)
	}
	return n.Content[0].Value, n.Content[1], nil
}

func mappingFields(n *yaml.Node, what string) (map[string]*yaml.Node, error) {
	if n.Kind != yaml.MappingNode {
		return nil, decodeErr(n, "%s must be a mapping", what)
	}
	fields := make(map[string]*yaml.Node, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k := n.Content[i]
		if _, dup := fields[k.Value]; dup {
			return nil, decodeErr(k, "duplicate key %q in %s", k.Value, what)
		}
		fields[k.Value] = n.Content[i+1]
	}
	return fields, nil
}

func requiredExpr(parent *yaml.Node, fields map[string]*yaml.Node, key string) (Expr, error) {
	n, ok := fields[key]
	if !ok {
		return nil, decodeErr(parent, "missing %s key", key)
	}
	return decodeExpr(n)
}

func exprSequence(n *yaml.Node, what string) ([]Expr, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, decodeErr(n, "%s must be a sequence", what)
	}
	exprs := make([]Expr, 0, len(n.Content))
	for _, e := range n.Content {
		expr, err := decodeExpr(e)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	return exprs, nil
}

func identifier(n *yaml.Node) (string, error) {
	if n.Kind != yaml.ScalarNode || n.Value == "" || strings.ContainsAny(n.Value, " \t\r\n") {
		return "", decodeErr(n, "invalid identifier")
	}
	return n.Value, nil
}
