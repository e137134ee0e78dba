// Package ast defines the node shapes the execution core consumes.
//
// The core never builds these nodes itself: an external lexer/parser
// (out of scope for this module, see spec.md §1/§6) produces a Program
// and hands it to the initializer and runner. Every type here is a pure
// data contract — no behavior, no validation.
package ast

import "github.com/golang-plc/stcore/internal/token"

// Node is implemented by every AST node so positions can be attached
// uniformly for error reporting.
type Node interface {
	Pos() token.Position
}

// Program is the root of an AST: a flat list of variable blocks
// (possibly nested inside Program/FunctionBlock wrappers) and a
// statement body.
type Program struct {
	Position    token.Position
	Name        string
	VarBlocks   []*VarBlock
	Body        []Statement
	Nested      []*Program // nested PROGRAM/FUNCTION_BLOCK wrappers, see spec.md §3.3
	IsFuncBlock bool
}

func (p *Program) Pos() token.Position { return p.Position }
