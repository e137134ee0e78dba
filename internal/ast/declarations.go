package ast

import "github.com/golang-plc/stcore/internal/token"

// Scope classifies a variable block (spec.md §3.3).
type Scope string

const (
	ScopeVar       Scope = "VAR"
	ScopeVarInput  Scope = "VAR_INPUT"
	ScopeVarOutput Scope = "VAR_OUTPUT"
	ScopeVarInOut  Scope = "VAR_IN_OUT"
	ScopeVarTemp   Scope = "VAR_TEMP"
	ScopeVarGlobal Scope = "VAR_GLOBAL"
)

// Qualifier marks a block-wide declaration modifier.
type Qualifier string

const (
	QualifierNone     Qualifier = ""
	QualifierConstant Qualifier = "CONSTANT"
	QualifierRetain   Qualifier = "RETAIN"
)

// VarBlock groups declarations sharing a scope and optional qualifier.
type VarBlock struct {
	Position     token.Position
	Scope        Scope
	Qualifier    Qualifier
	Declarations []*VarDecl
}

func (b *VarBlock) Pos() token.Position { return b.Position }

// TypeSpec names a declared type, optionally with array bounds (for
// ARRAY declarations) or a function-block kind (for TIMER/COUNTER/
// EDGE_DETECTOR/BISTABLE subtypes — see typesystem.DeclaredType).
type TypeSpec struct {
	Name      string // e.g. "BOOL", "INT", "TON", "CTU", "ARRAY"
	ElemType  string // element type name, only set when Name == "ARRAY"
	ArrayLow  int64  // inclusive lower bound, only set when Name == "ARRAY"
	ArrayHigh int64  // inclusive upper bound, only set when Name == "ARRAY"
}

// VarDecl is a single declared name within a VarBlock.
type VarDecl struct {
	Position token.Position
	Name     string
	Type     TypeSpec
	Init     Expression // optional initial-value expression
}

func (d *VarDecl) Pos() token.Position { return d.Position }
