// Package initializer implements spec.md §4.1: walking every variable
// block (top-level and nested in PROGRAM/FUNCTION_BLOCK wrappers),
// building the type registry and constant registry, and writing each
// declaration's initial value into the store.
//
// Grounded on CWBudde-go-dws's internal/interp/declarations.go (a
// walk-the-AST-and-populate-the-environment pass run once before the
// first statement executes).
package initializer

import (
	"github.com/golang-plc/stcore/internal/ast"
	"github.com/golang-plc/stcore/internal/evaluator"
	"github.com/golang-plc/stcore/internal/sterrors"
	"github.com/golang-plc/stcore/internal/store"
	"github.com/golang-plc/stcore/internal/stvalue"
	"github.com/golang-plc/stcore/internal/typesystem"
)

// BuildTypeRegistry walks every variable block reachable from program
// (including nested wrappers, spec.md §3.3) and records each
// declaration's DeclaredType, ARRAY element info, and — when the type
// spec names one directly — its function-block kind.
func BuildTypeRegistry(program *ast.Program) *typesystem.TypeRegistry {
	reg := typesystem.NewTypeRegistry()
	walkBlocks(program, func(block *ast.VarBlock, decl *ast.VarDecl) {
		t := typesystem.TypeForKeyword(decl.Type.Name)
		reg.Set(decl.Name, t)
		if k := typesystem.FBKindForKeyword(decl.Type.Name); k != typesystem.FBUnknown {
			reg.SetFBKind(decl.Name, k)
		}
		if t == typesystem.Array {
			reg.SetArrayInfo(decl.Name, typesystem.ArrayInfo{
				ElemType: typesystem.TypeForKeyword(decl.Type.ElemType),
				Low:      decl.Type.ArrayLow,
				High:     decl.Type.ArrayHigh,
			})
		}
	})
	return reg
}

// BuildConstantRegistry records every name declared under a CONSTANT
// qualifier (spec.md §3.1, §4.1).
func BuildConstantRegistry(program *ast.Program) *typesystem.ConstantRegistry {
	reg := typesystem.NewConstantRegistry()
	walkBlocks(program, func(block *ast.VarBlock, decl *ast.VarDecl) {
		if block.Qualifier == ast.QualifierConstant {
			reg.Add(decl.Name)
		}
	})
	return reg
}

// InitializeVariables computes and stores each declaration's initial
// value (spec.md §4.1). Initial expressions may only reference
// literals and previously-initialized names (source-order evaluation,
// no cross-declaration resolution), so the registries must already be
// built and the store already hold earlier declarations in the same
// walk before this runs later ones — walkBlocks preserves source order.
func InitializeVariables(program *ast.Program, s *store.Store, types *typesystem.TypeRegistry, consts *typesystem.ConstantRegistry, sink sterrors.Sink) error {
	ctx := evaluator.NewContext(s, types, consts, sink)

	var initErr error
	walkBlocks(program, func(block *ast.VarBlock, decl *ast.VarDecl) {
		if initErr != nil {
			return
		}
		if err := initDecl(decl, s, types, ctx); err != nil {
			initErr = err
		}
	})
	return initErr
}

func initDecl(decl *ast.VarDecl, s *store.Store, types *typesystem.TypeRegistry, ctx *evaluator.Context) error {
	declType := typesystem.TypeForKeyword(decl.Type.Name)

	var initVal stvalue.Value
	if decl.Init != nil {
		v, err := evaluator.Evaluate(decl.Init, ctx)
		if err != nil {
			return err
		}
		initVal = v
	}

	switch declType {
	case typesystem.Bool:
		if decl.Init != nil {
			s.SetBool(decl.Name, stvalue.ToBool(initVal))
		} else {
			s.SetBool(decl.Name, false)
		}
	case typesystem.Int:
		if decl.Init != nil {
			s.SetInt(decl.Name, stvalue.ToInt(initVal))
		} else {
			s.SetInt(decl.Name, 0)
		}
	case typesystem.Real:
		if decl.Init != nil {
			s.SetReal(decl.Name, stvalue.ToNumber(initVal))
		} else {
			s.SetReal(decl.Name, 0)
		}
	case typesystem.Time:
		if decl.Init != nil {
			s.SetTime(decl.Name, stvalue.ToInt(initVal))
		} else {
			s.SetTime(decl.Name, 0)
		}
	case typesystem.String:
		if decl.Init != nil {
			s.SetString(decl.Name, stvalue.ToString(initVal))
		} else {
			s.SetString(decl.Name, "")
		}
	case typesystem.Timer:
		pt := int64(0)
		if decl.Init != nil {
			pt = stvalue.ToInt(initVal)
		}
		s.InitTimer(decl.Name, pt, timerKind(types.FBKind(decl.Name)))
	case typesystem.Counter:
		pv := int64(0)
		if decl.Init != nil {
			pv = stvalue.ToInt(initVal)
		}
		s.InitCounter(decl.Name, pv)
	case typesystem.EdgeDetector:
		s.InitEdgeDetector(decl.Name)
	case typesystem.Bistable:
		s.InitBistable(decl.Name)
	case typesystem.Array:
		initArray(decl, s, types)
	default:
		// Unknown declared type: infer storage from the initial value,
		// defaulting to boolean false when there is none.
		if decl.Init == nil {
			s.SetBool(decl.Name, false)
			return nil
		}
		switch initVal.Kind {
		case stvalue.Bool:
			s.SetBool(decl.Name, initVal.B)
		case stvalue.Int:
			s.SetInt(decl.Name, initVal.I)
		case stvalue.Real:
			s.SetReal(decl.Name, initVal.R)
		case stvalue.Time:
			s.SetTime(decl.Name, initVal.I)
		case stvalue.String:
			s.SetString(decl.Name, initVal.S)
		}
	}
	return nil
}

func timerKind(k typesystem.FBKind) store.TimerKind {
	switch k {
	case typesystem.FBTOF:
		return store.TOF
	case typesystem.FBTP:
		return store.TP
	default:
		return store.TON
	}
}

func initArray(decl *ast.VarDecl, s *store.Store, types *typesystem.TypeRegistry) {
	info, _ := types.ArrayInfo(decl.Name)
	size := int(info.High-info.Low) + 1
	if size < 0 {
		size = 0
	}
	cells := make([]store.Cell, size)
	s.SetArray(decl.Name, cells)
}

// walkBlocks visits every VarBlock/VarDecl pair in source order,
// descending into nested PROGRAM/FUNCTION_BLOCK wrappers (spec.md
// §3.3: "Programs may nest").
func walkBlocks(program *ast.Program, visit func(*ast.VarBlock, *ast.VarDecl)) {
	if program == nil {
		return
	}
	for _, block := range program.VarBlocks {
		for _, decl := range block.Declarations {
			visit(block, decl)
		}
	}
	for _, nested := range program.Nested {
		walkBlocks(nested, visit)
	}
}
