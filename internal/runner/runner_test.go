package runner_test

import (
	"testing"

	"github.com/golang-plc/stcore/internal/ast"
	"github.com/golang-plc/stcore/internal/initializer"
	"github.com/golang-plc/stcore/internal/runner"
	"github.com/golang-plc/stcore/internal/runtime"
	"github.com/golang-plc/stcore/internal/sterrors"
	"github.com/golang-plc/stcore/internal/store"
)

func build(t *testing.T, p *ast.Program, scanTime int64) (*runner.Runner, *store.Store) {
	t.Helper()
	types := initializer.BuildTypeRegistry(p)
	consts := initializer.BuildConstantRegistry(p)
	s := store.New(scanTime)
	if err := initializer.InitializeVariables(p, s, types, consts, sterrors.NopSink{}); err != nil {
		t.Fatalf("InitializeVariables() error = %v", err)
	}
	state := runtime.NewState(p)
	return runner.New(s, types, consts, state, sterrors.NopSink{}), s
}

func variable(name string) *ast.Variable { return &ast.Variable{AccessPath: []string{name}} }

func intLit(i int64) ast.Expression { return &ast.Literal{Kind: ast.LiteralInt, Int: i} }

func boolLit(b bool) ast.Expression { return &ast.Literal{Kind: ast.LiteralBool, Bool: b} }

func timeLit(ms int64) ast.Expression { return &ast.Literal{Kind: ast.LiteralTime, Time: ms} }

// TestS1TONAtExactBoundary is the spec.md §8 S1 scenario: a TON
// reaches its preset exactly on the sixth scan (the rising-edge scan
// plus five 100ms advances).
func TestS1TONAtExactBoundary(t *testing.T) {
	p := &ast.Program{
		VarBlocks: []*ast.VarBlock{{Scope: ast.ScopeVar, Declarations: []*ast.VarDecl{
			{Name: "Start", Type: ast.TypeSpec{Name: "BOOL"}},
			{Name: "t", Type: ast.TypeSpec{Name: "TON"}},
		}}},
		Body: []ast.Statement{
			&ast.FunctionBlockCall{Instance: "t", Args: []ast.NamedArg{
				{Name: "IN", Value: variable("Start")},
				{Name: "PT", Value: timeLit(500)},
			}},
		},
	}
	r, s := build(t, p, 100)

	// Timer updates happen before statement execution each scan (spec.md
	// §4.5), so the scan that first detects the rising edge only arms
	// the timer; ET only starts accumulating from the following scan.
	// The first scan here sets IN and arms the timer, then five further
	// scans each advance ET by the 100ms scan period — mirroring the
	// store-level enable-then-five-updates sequence that reaches the
	// 500ms preset exactly.
	s.SetBool("Start", true)
	for i := 0; i < 6; i++ {
		if err := r.RunScanCycle(); err != nil {
			t.Fatalf("scan %d: %v", i+1, err)
		}
	}
	timer, _ := s.PeekTimer("t")
	if !timer.Q || timer.ET != 500 {
		t.Fatalf("after 6 scans: Q=%v ET=%d, want Q=true ET=500", timer.Q, timer.ET)
	}

	s.SetBool("Start", false)
	if err := r.RunScanCycle(); err != nil {
		t.Fatalf("scan after release: %v", err)
	}
	timer, _ = s.PeekTimer("t")
	if timer.Q || timer.ET != 0 {
		t.Fatalf("after release: Q=%v ET=%d, want Q=false ET=0", timer.Q, timer.ET)
	}
}

// TestS2CTUEdgeCounting is the spec.md §8 S2 scenario.
func TestS2CTUEdgeCounting(t *testing.T) {
	p := &ast.Program{
		VarBlocks: []*ast.VarBlock{{Scope: ast.ScopeVar, Declarations: []*ast.VarDecl{
			{Name: "Sensor", Type: ast.TypeSpec{Name: "BOOL"}},
			{Name: "Reset", Type: ast.TypeSpec{Name: "BOOL"}},
			{Name: "c", Type: ast.TypeSpec{Name: "CTU"}},
		}}},
		Body: []ast.Statement{
			&ast.FunctionBlockCall{Instance: "c", Args: []ast.NamedArg{
				{Name: "CU", Value: variable("Sensor")},
				{Name: "R", Value: variable("Reset")},
				{Name: "PV", Value: intLit(10)},
			}},
		},
	}
	r, s := build(t, p, 100)

	toggle := func(v bool) {
		s.SetBool("Sensor", v)
		if err := r.RunScanCycle(); err != nil {
			t.Fatalf("scan: %v", err)
		}
	}

	for i := 0; i < 10; i++ {
		toggle(true)
		toggle(false)
	}
	c, _ := s.PeekCounter("c")
	if c.CV != 10 {
		t.Fatalf("CV = %d, want 10 after 10 toggled rising edges", c.CV)
	}
	if !c.QU {
		t.Error("QU should be true once CV reaches PV")
	}

	// Holding Sensor TRUE across further scans must not re-count.
	s.SetBool("Sensor", true)
	for i := 0; i < 3; i++ {
		if err := r.RunScanCycle(); err != nil {
			t.Fatalf("scan: %v", err)
		}
	}
	c, _ = s.PeekCounter("c")
	if c.CV != 10 {
		t.Errorf("CV = %d, want still 10 (holding CU high must not re-pulse)", c.CV)
	}
}

// TestS3SRMotorLatchWithInterlock is the spec.md §8 S3 scenario.
func TestS3SRMotorLatchWithInterlock(t *testing.T) {
	p := &ast.Program{
		VarBlocks: []*ast.VarBlock{{Scope: ast.ScopeVar, Declarations: []*ast.VarDecl{
			{Name: "StartBtn", Type: ast.TypeSpec{Name: "BOOL"}},
			{Name: "StopBtn", Type: ast.TypeSpec{Name: "BOOL"}},
			{Name: "Fault", Type: ast.TypeSpec{Name: "BOOL"}},
			{Name: "MotorLatch", Type: ast.TypeSpec{Name: "SR"}},
			{Name: "MotorRunning", Type: ast.TypeSpec{Name: "BOOL"}},
		}}},
		Body: []ast.Statement{
			&ast.FunctionBlockCall{Instance: "MotorLatch", Args: []ast.NamedArg{
				{Name: "S1", Value: &ast.BinaryExpr{Op: ast.OpAnd, Left: variable("StartBtn"), Right: &ast.UnaryExpr{Op: ast.OpNot, Operand: variable("Fault")}}},
				{Name: "R", Value: &ast.BinaryExpr{Op: ast.OpOr, Left: variable("StopBtn"), Right: variable("Fault")}},
			}},
			&ast.Assignment{Target: variable("MotorRunning"), Value: &ast.Variable{AccessPath: []string{"MotorLatch", "Q1"}}},
		},
	}
	r, s := build(t, p, 100)

	run := func() {
		if err := r.RunScanCycle(); err != nil {
			t.Fatalf("scan: %v", err)
		}
	}

	s.SetBool("StartBtn", true)
	s.SetBool("Fault", false)
	s.SetBool("StopBtn", false)
	run()
	if v, _ := s.GetBool("MotorRunning"); !v {
		t.Fatal("MotorRunning should be TRUE after StartBtn pressed with no fault")
	}

	s.SetBool("StartBtn", false)
	run()
	if v, _ := s.GetBool("MotorRunning"); !v {
		t.Error("MotorRunning should stay TRUE after releasing StartBtn (latched)")
	}

	s.SetBool("Fault", true)
	run()
	if v, _ := s.GetBool("MotorRunning"); v {
		t.Error("MotorRunning should drop to FALSE when Fault asserts")
	}

	s.SetBool("Fault", false)
	run()
	if v, _ := s.GetBool("MotorRunning"); v {
		t.Error("clearing Fault alone should not restart the motor")
	}
}

// TestS4CaseWithRangeAndDescendingAlias is the spec.md §8 S4 scenario.
func TestS4CaseWithRangeAndDescendingAlias(t *testing.T) {
	caseStmt := func() *ast.CaseStatement {
		return &ast.CaseStatement{
			Selector: variable("Phase"),
			Cases: []ast.CaseClause{
				{Labels: []ast.CaseLabel{{Value: 0}}, Body: []ast.Statement{&ast.Assignment{Target: variable("A"), Value: intLit(0)}}},
				{Labels: []ast.CaseLabel{{IsRange: true, Low: 1, High: 3}}, Body: []ast.Statement{&ast.Assignment{Target: variable("A"), Value: intLit(1)}}},
				{Labels: []ast.CaseLabel{{IsRange: true, Low: 10, High: 5}}, Body: []ast.Statement{&ast.Assignment{Target: variable("A"), Value: intLit(2)}}},
			},
			Else: []ast.Statement{&ast.Assignment{Target: variable("A"), Value: intLit(9)}},
		}
	}
	p := &ast.Program{
		VarBlocks: []*ast.VarBlock{{Scope: ast.ScopeVar, Declarations: []*ast.VarDecl{
			{Name: "Phase", Type: ast.TypeSpec{Name: "INT"}},
			{Name: "A", Type: ast.TypeSpec{Name: "INT"}},
		}}},
		Body: []ast.Statement{caseStmt()},
	}
	r, s := build(t, p, 100)

	s.SetInt("Phase", 2)
	if err := r.RunScanCycle(); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if v, _ := s.GetInt("A"); v != 1 {
		t.Errorf("phase=2: A = %d, want 1", v)
	}

	s.SetInt("Phase", 7)
	if err := r.RunScanCycle(); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if v, _ := s.GetInt("A"); v != 2 {
		t.Errorf("phase=7: A = %d, want 2 (descending range 10..5 matches as 5..10)", v)
	}

	s.SetInt("Phase", 99)
	if err := r.RunScanCycle(); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if v, _ := s.GetInt("A"); v != 9 {
		t.Errorf("phase=99: A = %d, want 9", v)
	}
}

// TestS5ForWithExit is the spec.md §8 S5 scenario.
func TestS5ForWithExit(t *testing.T) {
	p := &ast.Program{
		VarBlocks: []*ast.VarBlock{{Scope: ast.ScopeVar, Declarations: []*ast.VarDecl{
			{Name: "i", Type: ast.TypeSpec{Name: "INT"}},
			{Name: "sum", Type: ast.TypeSpec{Name: "INT"}},
		}}},
		Body: []ast.Statement{
			&ast.ForStatement{
				Variable: "i",
				Start:    intLit(1),
				End:      intLit(100),
				Body: []ast.Statement{
					&ast.IfStatement{
						Condition: &ast.BinaryExpr{Op: ast.OpEq, Left: variable("i"), Right: intLit(5)},
						Then:      []ast.Statement{&ast.ExitStatement{}},
					},
					&ast.Assignment{Target: variable("sum"), Value: &ast.BinaryExpr{Op: ast.OpAdd, Left: variable("sum"), Right: variable("i")}},
				},
			},
		},
	}
	r, s := build(t, p, 100)
	if err := r.RunScanCycle(); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if v, _ := s.GetInt("sum"); v != 10 {
		t.Errorf("sum = %d, want 10 (1+2+3+4)", v)
	}
	if v, _ := s.GetInt("i"); v != 5 {
		t.Errorf("i = %d, want 5", v)
	}
}

// TestS6ConstantEnforcement is the spec.md §8 S6 scenario.
func TestS6ConstantEnforcement(t *testing.T) {
	p := &ast.Program{
		VarBlocks: []*ast.VarBlock{
			{Scope: ast.ScopeVar, Qualifier: ast.QualifierConstant, Declarations: []*ast.VarDecl{
				{Name: "PI", Type: ast.TypeSpec{Name: "REAL"}, Init: &ast.Literal{Kind: ast.LiteralReal, Real: 3.14159}},
			}},
			{Scope: ast.ScopeVar, Declarations: []*ast.VarDecl{
				{Name: "x", Type: ast.TypeSpec{Name: "REAL"}},
			}},
		},
		Body: []ast.Statement{
			&ast.Assignment{Target: variable("PI"), Value: &ast.Literal{Kind: ast.LiteralReal, Real: 10.0}},
			&ast.Assignment{Target: variable("x"), Value: variable("PI")},
		},
	}
	r, s := build(t, p, 100)
	if err := r.RunScanCycle(); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if v, _ := s.GetReal("PI"); v != 3.14159 {
		t.Errorf("PI = %v, want unchanged 3.14159", v)
	}
	if v, _ := s.GetReal("x"); v != 3.14159 {
		t.Errorf("x = %v, want 3.14159", v)
	}
}

func TestRunScanCycleReportsInternalErrorWhenExitEscapesTopLevel(t *testing.T) {
	p := &ast.Program{Body: []ast.Statement{&ast.ExitStatement{}}}
	r, _ := build(t, p, 100)
	if err := r.RunScanCycle(); err == nil {
		t.Error("EXIT at the top level (no enclosing loop) should be reported as an internal error")
	}
}
