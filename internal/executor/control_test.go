package executor_test

import (
	"testing"

	"github.com/golang-plc/stcore/internal/ast"
	"github.com/golang-plc/stcore/internal/typesystem"
)

func boolLit(b bool) ast.Expression { return &ast.Literal{Kind: ast.LiteralBool, Bool: b} }

func TestExecIfTakesFirstTrueBranch(t *testing.T) {
	e, ctx, _ := newExecutor()
	ctx.Types.Set("Hit", typesystem.Unknown) // inferred from the assigned value's own kind
	stmt := &ast.IfStatement{
		Condition: boolLit(false),
		Then:      []ast.Statement{&ast.Assignment{Target: variable("Hit"), Value: intLit(1)}},
		Elsif: []ast.ElsifClause{
			{Condition: boolLit(true), Then: []ast.Statement{&ast.Assignment{Target: variable("Hit"), Value: intLit(2)}}},
		},
		Else: []ast.Statement{&ast.Assignment{Target: variable("Hit"), Value: intLit(3)}},
	}
	if _, err := e.ExecuteStatement(stmt); err != nil {
		t.Fatalf("ExecuteStatement() error = %v", err)
	}
	if v, _ := ctx.Store.GetInt("Hit"); v != 2 {
		t.Errorf("Hit = %d, want 2 (first true ELSIF branch)", v)
	}
}

func TestExecIfFallsToElseWhenNoBranchMatches(t *testing.T) {
	e, ctx, _ := newExecutor()
	stmt := &ast.IfStatement{
		Condition: boolLit(false),
		Then:      []ast.Statement{&ast.Assignment{Target: variable("Hit"), Value: intLit(1)}},
		Else:      []ast.Statement{&ast.Assignment{Target: variable("Hit"), Value: intLit(9)}},
	}
	if _, err := e.ExecuteStatement(stmt); err != nil {
		t.Fatalf("ExecuteStatement() error = %v", err)
	}
	if v, _ := ctx.Store.GetInt("Hit"); v != 9 {
		t.Errorf("Hit = %d, want 9 (ELSE branch)", v)
	}
}

func TestExecCaseMatchesSingleValueAndRange(t *testing.T) {
	e, ctx, _ := newExecutor()
	stmt := &ast.CaseStatement{
		Selector: intLit(5),
		Cases: []ast.CaseClause{
			{Labels: []ast.CaseLabel{{Value: 1}}, Body: []ast.Statement{&ast.Assignment{Target: variable("Hit"), Value: intLit(1)}}},
			{Labels: []ast.CaseLabel{{IsRange: true, Low: 4, High: 6}}, Body: []ast.Statement{&ast.Assignment{Target: variable("Hit"), Value: intLit(2)}}},
		},
		Else: []ast.Statement{&ast.Assignment{Target: variable("Hit"), Value: intLit(3)}},
	}
	if _, err := e.ExecuteStatement(stmt); err != nil {
		t.Fatalf("ExecuteStatement() error = %v", err)
	}
	if v, _ := ctx.Store.GetInt("Hit"); v != 2 {
		t.Errorf("Hit = %d, want 2 (selector 5 falls in range 4..6)", v)
	}
}

func TestExecCaseFallsToElseWhenUnmatched(t *testing.T) {
	e, ctx, _ := newExecutor()
	stmt := &ast.CaseStatement{
		Selector: intLit(99),
		Cases:    []ast.CaseClause{{Labels: []ast.CaseLabel{{Value: 1}}, Body: []ast.Statement{&ast.Assignment{Target: variable("Hit"), Value: intLit(1)}}}},
		Else:     []ast.Statement{&ast.Assignment{Target: variable("Hit"), Value: intLit(42)}},
	}
	if _, err := e.ExecuteStatement(stmt); err != nil {
		t.Fatalf("ExecuteStatement() error = %v", err)
	}
	if v, _ := ctx.Store.GetInt("Hit"); v != 42 {
		t.Errorf("Hit = %d, want 42 (ELSE branch)", v)
	}
}

func TestExecCaseAcceptsDescendingRangeWithOneShotWarning(t *testing.T) {
	e, ctx, sink := newExecutor()
	stmt := func() *ast.CaseStatement {
		return &ast.CaseStatement{
			Selector: intLit(5),
			Cases:    []ast.CaseClause{{Labels: []ast.CaseLabel{{IsRange: true, Low: 10, High: 1}}, Body: []ast.Statement{&ast.Assignment{Target: variable("Hit"), Value: intLit(7)}}}},
		}
	}

	if _, err := e.ExecuteStatement(stmt()); err != nil {
		t.Fatalf("ExecuteStatement() error = %v", err)
	}
	if v, _ := ctx.Store.GetInt("Hit"); v != 7 {
		t.Errorf("Hit = %d, want 7 (descending range 10..1 should still match selector 5)", v)
	}
	if len(sink.Messages) != 1 {
		t.Fatalf("warnings = %d, want exactly 1 after first descending-range match", len(sink.Messages))
	}

	if _, err := e.ExecuteStatement(stmt()); err != nil {
		t.Fatalf("ExecuteStatement() error = %v", err)
	}
	if len(sink.Messages) != 1 {
		t.Errorf("warnings = %d, want still 1 (descending-range warning is one-shot per executor)", len(sink.Messages))
	}
}
