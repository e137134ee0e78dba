// Package program loads a parsed AST handed to the execution core as
// JSON (spec.md §1/§6: the lexer/parser that produces this tree is an
// external collaborator, out of scope for this module). It decodes the
// wire shape into the internal/ast node graph the initializer,
// executor, and runner consume.
//
// Grounded on CWBudde-go-dws's cmd/dwscript/cmd/run.go, which reads a
// program from a file path or inline text before handing it to the
// interpreter; here the input is already a parsed tree, so loading
// means decoding JSON rather than lexing/parsing source text. Uses the
// standard library encoding/json, since nothing in the teacher or the
// rest of the pack reaches for a third-party JSON library for a plain
// tagged-union decode like this (see DESIGN.md).
package program

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/golang-plc/stcore/internal/ast"
	"github.com/golang-plc/stcore/internal/token"
)

// Load decodes a Program from r.
func Load(r io.Reader) (*ast.Program, error) {
	var raw rawProgram
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode program: %w", err)
	}
	return raw.toAST()
}

type rawProgram struct {
	Name        string           `json:"name"`
	VarBlocks   []rawVarBlock    `json:"varBlocks"`
	Body        []json.RawMessage `json:"body"`
	Nested      []rawProgram     `json:"nested"`
	IsFuncBlock bool             `json:"isFuncBlock"`
}

type rawVarBlock struct {
	Scope        string        `json:"scope"`
	Qualifier    string        `json:"qualifier"`
	Declarations []rawVarDecl  `json:"declarations"`
}

type rawVarDecl struct {
	Name string         `json:"name"`
	Type rawTypeSpec    `json:"type"`
	Init json.RawMessage `json:"init"`
}

type rawTypeSpec struct {
	Name      string `json:"name"`
	ElemType  string `json:"elemType"`
	ArrayLow  int64  `json:"arrayLow"`
	ArrayHigh int64  `json:"arrayHigh"`
}

func (r *rawProgram) toAST() (*ast.Program, error) {
	p := &ast.Program{
		Name:        r.Name,
		IsFuncBlock: r.IsFuncBlock,
	}
	for _, rb := range r.VarBlocks {
		block, err := rb.toAST()
		if err != nil {
			return nil, err
		}
		p.VarBlocks = append(p.VarBlocks, block)
	}
	for _, raw := range r.Body {
		stmt, err := decodeStatement(raw)
		if err != nil {
			return nil, err
		}
		p.Body = append(p.Body, stmt)
	}
	for _, rn := range r.Nested {
		nested, err := rn.toAST()
		if err != nil {
			return nil, err
		}
		p.Nested = append(p.Nested, nested)
	}
	return p, nil
}

func (rb *rawVarBlock) toAST() (*ast.VarBlock, error) {
	block := &ast.VarBlock{
		Scope:     ast.Scope(rb.Scope),
		Qualifier: ast.Qualifier(rb.Qualifier),
	}
	for _, rd := range rb.Declarations {
		decl := &ast.VarDecl{
			Name: rd.Name,
			Type: ast.TypeSpec{
				Name:      rd.Type.Name,
				ElemType:  rd.Type.ElemType,
				ArrayLow:  rd.Type.ArrayLow,
				ArrayHigh: rd.Type.ArrayHigh,
			},
		}
		if len(rd.Init) > 0 && string(rd.Init) != "null" {
			expr, err := decodeExpression(rd.Init)
			if err != nil {
				return nil, err
			}
			decl.Init = expr
		}
		block.Declarations = append(block.Declarations, decl)
	}
	return block, nil
}

// pos is a zero-value position: the wire format carries no source
// location, since there is no source text on this side of the
// lexer/parser boundary (spec.md §1).
var pos = token.Position{}
