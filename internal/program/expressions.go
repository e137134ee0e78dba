package program

import (
	"encoding/json"
	"fmt"

	"github.com/golang-plc/stcore/internal/ast"
)

type rawExpr struct {
	Expr string `json:"expr"`

	// literal
	Kind string  `json:"kind"`
	Bool bool    `json:"bool"`
	Int  int64   `json:"int"`
	Real float64 `json:"real"`
	Time int64   `json:"time"`
	Str  string  `json:"str"`

	// var
	Path    []string          `json:"path"`
	Indices []json.RawMessage `json:"indices"`

	// binary
	Op    string          `json:"op"`
	Left  json.RawMessage `json:"left"`
	Right json.RawMessage `json:"right"`

	// unary
	Operand json.RawMessage `json:"operand"`

	// paren
	Inner json.RawMessage `json:"inner"`

	// call
	Name string            `json:"name"`
	Args []json.RawMessage `json:"args"`
}

func decodeExpression(raw json.RawMessage) (ast.Expression, error) {
	var r rawExpr
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("decode expression: %w", err)
	}

	switch r.Expr {
	case "literal":
		return &ast.Literal{
			Position: pos,
			Kind:     ast.LiteralKind(r.Kind),
			Bool:     r.Bool,
			Int:      r.Int,
			Real:     r.Real,
			Time:     r.Time,
			Str:      r.Str,
		}, nil

	case "var":
		indices, err := decodeExpressionList(r.Indices)
		if err != nil {
			return nil, err
		}
		return &ast.Variable{Position: pos, AccessPath: r.Path, Indices: indices}, nil

	case "binary":
		left, err := decodeExpression(r.Left)
		if err != nil {
			return nil, err
		}
		right, err := decodeExpression(r.Right)
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpr{Position: pos, Op: ast.BinaryOp(r.Op), Left: left, Right: right}, nil

	case "unary":
		operand, err := decodeExpression(r.Operand)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Position: pos, Op: ast.UnaryOp(r.Op), Operand: operand}, nil

	case "paren":
		inner, err := decodeExpression(r.Inner)
		if err != nil {
			return nil, err
		}
		return &ast.ParenExpr{Position: pos, Inner: inner}, nil

	case "call":
		args, err := decodeExpressionList(r.Args)
		if err != nil {
			return nil, err
		}
		return &ast.FunctionCall{Position: pos, Name: r.Name, Args: args}, nil

	default:
		return nil, fmt.Errorf("decode expression: unknown expr kind %q", r.Expr)
	}
}

func decodeExpressionList(raws []json.RawMessage) ([]ast.Expression, error) {
	if raws == nil {
		return nil, nil
	}
	out := make([]ast.Expression, 0, len(raws))
	for _, raw := range raws {
		e, err := decodeExpression(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}
