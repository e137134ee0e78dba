package initializer_test

import (
	"testing"

	"github.com/golang-plc/stcore/internal/ast"
	"github.com/golang-plc/stcore/internal/initializer"
	"github.com/golang-plc/stcore/internal/sterrors"
	"github.com/golang-plc/stcore/internal/store"
	"github.com/golang-plc/stcore/internal/typesystem"
)

func decl(name, typeName string, init ast.Expression) *ast.VarDecl {
	return &ast.VarDecl{Name: name, Type: ast.TypeSpec{Name: typeName}, Init: init}
}

func intLit(i int64) ast.Expression { return &ast.Literal{Kind: ast.LiteralInt, Int: i} }

func TestBuildTypeRegistryWalksNestedPrograms(t *testing.T) {
	program := &ast.Program{
		VarBlocks: []*ast.VarBlock{
			{Scope: ast.ScopeVar, Declarations: []*ast.VarDecl{decl("Outer", "BOOL", nil)}},
		},
		Nested: []*ast.Program{
			{
				VarBlocks: []*ast.VarBlock{
					{Scope: ast.ScopeVar, Declarations: []*ast.VarDecl{decl("Inner", "INT", nil)}},
				},
			},
		},
	}

	types := initializer.BuildTypeRegistry(program)
	if got := types.Get("Outer"); got != typesystem.Bool {
		t.Errorf("Outer type = %v, want Bool", got)
	}
	if got := types.Get("Inner"); got != typesystem.Int {
		t.Errorf("Inner type = %v, want Int (nested programs must be walked)", got)
	}
}

func TestBuildConstantRegistry(t *testing.T) {
	program := &ast.Program{
		VarBlocks: []*ast.VarBlock{
			{Scope: ast.ScopeVar, Qualifier: ast.QualifierConstant, Declarations: []*ast.VarDecl{decl("MaxCount", "INT", intLit(100))}},
			{Scope: ast.ScopeVar, Declarations: []*ast.VarDecl{decl("Count", "INT", nil)}},
		},
	}
	consts := initializer.BuildConstantRegistry(program)
	if !consts.Contains("MaxCount") {
		t.Error("MaxCount should be registered as a constant")
	}
	if consts.Contains("Count") {
		t.Error("Count should not be registered as a constant")
	}
}

func TestInitializeVariablesAppliesInitExpressionsAndZeroes(t *testing.T) {
	program := &ast.Program{
		VarBlocks: []*ast.VarBlock{
			{Scope: ast.ScopeVar, Declarations: []*ast.VarDecl{
				decl("Limit", "INT", intLit(10)),
				decl("Count", "INT", nil),
				decl("Flag", "BOOL", nil),
			}},
		},
	}
	types := initializer.BuildTypeRegistry(program)
	consts := initializer.BuildConstantRegistry(program)
	s := store.New(100)

	if err := initializer.InitializeVariables(program, s, types, consts, sterrors.NopSink{}); err != nil {
		t.Fatalf("InitializeVariables() error = %v", err)
	}

	if v, ok := s.GetInt("Limit"); !ok || v != 10 {
		t.Errorf("Limit = (%d, %v), want (10, true)", v, ok)
	}
	if v, ok := s.GetInt("Count"); !ok || v != 0 {
		t.Errorf("Count = (%d, %v), want (0, true) — declared names must be present even with no initializer", v, ok)
	}
	if v, ok := s.GetBool("Flag"); !ok || v {
		t.Errorf("Flag = (%v, %v), want (false, true)", v, ok)
	}
}

func TestInitializeVariablesCreatesFunctionBlockInstances(t *testing.T) {
	program := &ast.Program{
		VarBlocks: []*ast.VarBlock{
			{Scope: ast.ScopeVar, Declarations: []*ast.VarDecl{
				decl("T1", "TON", nil),
				decl("C1", "CTU", nil),
			}},
		},
	}
	types := initializer.BuildTypeRegistry(program)
	consts := initializer.BuildConstantRegistry(program)
	s := store.New(100)
	if err := initializer.InitializeVariables(program, s, types, consts, sterrors.NopSink{}); err != nil {
		t.Fatalf("InitializeVariables() error = %v", err)
	}
	if _, ok := s.PeekTimer("T1"); !ok {
		t.Error("TON declaration should create a timer instance during initialization")
	}
	if _, ok := s.PeekCounter("C1"); !ok {
		t.Error("CTU declaration should create a counter instance during initialization")
	}
}

func TestInitializeVariablesArrays(t *testing.T) {
	program := &ast.Program{
		VarBlocks: []*ast.VarBlock{
			{Scope: ast.ScopeVar, Declarations: []*ast.VarDecl{
				{Name: "Buf", Type: ast.TypeSpec{Name: "ARRAY", ElemType: "INT", ArrayLow: 1, ArrayHigh: 5}},
			}},
		},
	}
	types := initializer.BuildTypeRegistry(program)
	consts := initializer.BuildConstantRegistry(program)
	s := store.New(100)
	if err := initializer.InitializeVariables(program, s, types, consts, sterrors.NopSink{}); err != nil {
		t.Fatalf("InitializeVariables() error = %v", err)
	}
	cells, ok := s.Array("Buf")
	if !ok || len(cells) != 5 {
		t.Errorf("Array(Buf) = (%d cells, %v), want (5, true)", len(cells), ok)
	}
}
