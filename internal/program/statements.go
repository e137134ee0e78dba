package program

import (
	"encoding/json"
	"fmt"

	"github.com/golang-plc/stcore/internal/ast"
)

type rawStmt struct {
	Stmt string `json:"stmt"`

	// assign
	Target json.RawMessage `json:"target"`
	Value  json.RawMessage `json:"value"`

	// fbcall
	Instance string       `json:"instance"`
	Args     []rawNamedArg `json:"args"`

	// if
	Condition json.RawMessage   `json:"condition"`
	Then      []json.RawMessage `json:"then"`
	Elsif     []rawElsif        `json:"elsif"`
	Else      []json.RawMessage `json:"else"`

	// case
	Selector json.RawMessage `json:"selector"`
	Cases    []rawCaseClause `json:"cases"`

	// for
	Variable string          `json:"variable"`
	Start    json.RawMessage `json:"start"`
	End      json.RawMessage `json:"end"`
	Step     json.RawMessage `json:"step"`
	Body     []json.RawMessage `json:"body"`
}

type rawNamedArg struct {
	Name  string          `json:"name"`
	Value json.RawMessage `json:"value"`
}

type rawElsif struct {
	Condition json.RawMessage   `json:"condition"`
	Then      []json.RawMessage `json:"then"`
}

type rawCaseLabel struct {
	IsRange bool  `json:"isRange"`
	Value   int64 `json:"value"`
	Low     int64 `json:"low"`
	High    int64 `json:"high"`
}

type rawCaseClause struct {
	Labels []rawCaseLabel    `json:"labels"`
	Body   []json.RawMessage `json:"body"`
}

func decodeStatement(raw json.RawMessage) (ast.Statement, error) {
	var r rawStmt
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("decode statement: %w", err)
	}

	switch r.Stmt {
	case "assign":
		targetExpr, err := decodeExpression(r.Target)
		if err != nil {
			return nil, err
		}
		target, ok := targetExpr.(*ast.Variable)
		if !ok {
			return nil, fmt.Errorf("decode assignment: target is not a variable reference")
		}
		value, err := decodeExpression(r.Value)
		if err != nil {
			return nil, err
		}
		return &ast.Assignment{Position: pos, Target: target, Value: value}, nil

	case "fbcall":
		var args []ast.NamedArg
		for _, ra := range r.Args {
			v, err := decodeExpression(ra.Value)
			if err != nil {
				return nil, err
			}
			args = append(args, ast.NamedArg{Name: ra.Name, Value: v})
		}
		return &ast.FunctionBlockCall{Position: pos, Instance: r.Instance, Args: args}, nil

	case "if":
		cond, err := decodeExpression(r.Condition)
		if err != nil {
			return nil, err
		}
		then, err := decodeStatementList(r.Then)
		if err != nil {
			return nil, err
		}
		var elsif []ast.ElsifClause
		for _, re := range r.Elsif {
			ec, err := decodeExpression(re.Condition)
			if err != nil {
				return nil, err
			}
			et, err := decodeStatementList(re.Then)
			if err != nil {
				return nil, err
			}
			elsif = append(elsif, ast.ElsifClause{Condition: ec, Then: et})
		}
		elseBody, err := decodeOptionalStatementList(r.Else)
		if err != nil {
			return nil, err
		}
		return &ast.IfStatement{Position: pos, Condition: cond, Then: then, Elsif: elsif, Else: elseBody}, nil

	case "case":
		sel, err := decodeExpression(r.Selector)
		if err != nil {
			return nil, err
		}
		var clauses []ast.CaseClause
		for _, rc := range r.Cases {
			var labels []ast.CaseLabel
			for _, rl := range rc.Labels {
				labels = append(labels, ast.CaseLabel{IsRange: rl.IsRange, Value: rl.Value, Low: rl.Low, High: rl.High})
			}
			body, err := decodeStatementList(rc.Body)
			if err != nil {
				return nil, err
			}
			clauses = append(clauses, ast.CaseClause{Labels: labels, Body: body})
		}
		elseBody, err := decodeOptionalStatementList(r.Else)
		if err != nil {
			return nil, err
		}
		return &ast.CaseStatement{Position: pos, Selector: sel, Cases: clauses, Else: elseBody}, nil

	case "for":
		start, err := decodeExpression(r.Start)
		if err != nil {
			return nil, err
		}
		end, err := decodeExpression(r.End)
		if err != nil {
			return nil, err
		}
		var step ast.Expression
		if len(r.Step) > 0 && string(r.Step) != "null" {
			step, err = decodeExpression(r.Step)
			if err != nil {
				return nil, err
			}
		}
		body, err := decodeStatementList(r.Body)
		if err != nil {
			return nil, err
		}
		return &ast.ForStatement{Position: pos, Variable: r.Variable, Start: start, End: end, Step: step, Body: body}, nil

	case "while":
		cond, err := decodeExpression(r.Condition)
		if err != nil {
			return nil, err
		}
		body, err := decodeStatementList(r.Body)
		if err != nil {
			return nil, err
		}
		return &ast.WhileStatement{Position: pos, Condition: cond, Body: body}, nil

	case "repeat":
		body, err := decodeStatementList(r.Body)
		if err != nil {
			return nil, err
		}
		cond, err := decodeExpression(r.Condition)
		if err != nil {
			return nil, err
		}
		return &ast.RepeatStatement{Position: pos, Body: body, Condition: cond}, nil

	case "return":
		return &ast.ReturnStatement{Position: pos}, nil
	case "exit":
		return &ast.ExitStatement{Position: pos}, nil
	case "continue":
		return &ast.ContinueStatement{Position: pos}, nil

	default:
		return nil, fmt.Errorf("decode statement: unknown stmt kind %q", r.Stmt)
	}
}

func decodeStatementList(raws []json.RawMessage) ([]ast.Statement, error) {
	out := make([]ast.Statement, 0, len(raws))
	for _, raw := range raws {
		s, err := decodeStatement(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// decodeOptionalStatementList preserves the nil/absent distinction used
// by IfStatement.Else and CaseStatement.Else (spec.md §3.3: a missing
// ELSE is nil, not an empty slice).
func decodeOptionalStatementList(raws []json.RawMessage) ([]ast.Statement, error) {
	if raws == nil {
		return nil, nil
	}
	return decodeStatementList(raws)
}
