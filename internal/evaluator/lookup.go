package evaluator

import (
	"github.com/golang-plc/stcore/internal/ast"
	"github.com/golang-plc/stcore/internal/sterrors"
	"github.com/golang-plc/stcore/internal/store"
	"github.com/golang-plc/stcore/internal/stvalue"
	"github.com/golang-plc/stcore/internal/typesystem"
)

// evalVariable resolves a Variable node per spec.md §4.2's lookup rules.
func evalVariable(v *ast.Variable, ctx *Context) (stvalue.Value, error) {
	if len(v.Indices) > 0 {
		return evalArrayAccess(v, ctx)
	}
	switch len(v.AccessPath) {
	case 1:
		return lookupScalar(v.AccessPath[0], ctx), nil
	case 2:
		return lookupMember(v.AccessPath[0], v.AccessPath[1], ctx), nil
	default:
		pos := v.Position
		return stvalue.Value{}, sterrors.NewInternalError(&pos, "variable access path of length %d not supported", len(v.AccessPath))
	}
}

// lookupScalar implements spec.md §4.2's plain-name lookup: the
// user-FB output hook first, then booleans -> integers -> reals ->
// times -> strings by presence, falling back to the type-appropriate
// zero on a complete miss (spec.md §3.2 invariant d).
func lookupScalar(name string, ctx *Context) stvalue.Value {
	if ctx.UserFBOutput != nil {
		if v, ok := ctx.UserFBOutput(name); ok {
			return v
		}
	}

	s := ctx.Store
	if b, ok := s.GetBool(name); ok {
		return stvalue.NewBool(b)
	}
	if i, ok := s.GetInt(name); ok {
		return stvalue.NewInt(i)
	}
	if r, ok := s.GetReal(name); ok {
		return stvalue.NewReal(r)
	}
	if t, ok := s.GetTime(name); ok {
		return stvalue.NewTime(t)
	}
	if str, ok := s.GetString(name); ok {
		return stvalue.NewString(str)
	}

	// Type-appropriate zero for an undeclared name (spec.md §3.2(d)),
	// falling back to boolean-zero when the declared type is unknown.
	switch ctx.Types.Get(name) {
	case typesystem.Int:
		return stvalue.ZeroInt
	case typesystem.Real:
		return stvalue.ZeroReal
	case typesystem.Time:
		return stvalue.ZeroTime
	case typesystem.String:
		return stvalue.ZeroString
	default:
		return stvalue.ZeroBool
	}
}

// lookupMember implements spec.md §4.2's [base, field] routing across
// the four function-block kinds; a miss returns false for boolean
// fields and 0 otherwise.
func lookupMember(base, field string, ctx *Context) stvalue.Value {
	field = typesystem.Normalize(field)
	s := ctx.Store

	if t, ok := s.PeekTimer(base); ok {
		switch field {
		case "Q":
			return stvalue.NewBool(t.Q)
		case "ET":
			return stvalue.NewTime(t.ET)
		case "IN":
			return stvalue.NewBool(t.IN)
		case "PT":
			return stvalue.NewTime(t.PT)
		}
	}
	if c, ok := s.PeekCounter(base); ok {
		switch field {
		case "CV":
			return stvalue.NewInt(c.CV)
		case "QU":
			return stvalue.NewBool(c.QU)
		case "QD":
			return stvalue.NewBool(c.QD)
		case "PV":
			return stvalue.NewInt(c.PV)
		case "CU":
			return stvalue.NewBool(c.CU)
		case "CD":
			return stvalue.NewBool(c.CD)
		case "R":
			return stvalue.NewBool(c.R)
		case "LD":
			return stvalue.NewBool(c.LD)
		}
	}
	if e, ok := s.PeekEdgeDetector(base); ok {
		switch field {
		case "Q":
			return stvalue.NewBool(e.Q)
		case "CLK":
			return stvalue.NewBool(e.CLK)
		case "M":
			return stvalue.NewBool(e.M)
		}
	}
	if b, ok := s.PeekBistable(base); ok {
		if field == "Q1" {
			return stvalue.NewBool(b.Q1)
		}
	}

	// Miss: boolean-typed field names default to false, everything
	// else to zero-of-kind (spec.md §4.2).
	switch field {
	case "Q", "IN", "QU", "QD", "CU", "CD", "R", "LD", "CLK", "M", "Q1":
		return stvalue.ZeroBool
	case "ET", "PT":
		return stvalue.ZeroTime
	case "CV", "PV":
		return stvalue.ZeroInt
	default:
		return stvalue.ZeroBool
	}
}

// evalArrayAccess evaluates arr[i] (spec.md §4.2: "indices are
// evaluated recursively and fetched via an array accessor").
func evalArrayAccess(v *ast.Variable, ctx *Context) (stvalue.Value, error) {
	name := v.AccessPath[0]
	idx, err := Evaluate(v.Indices[0], ctx)
	if err != nil {
		return stvalue.Value{}, err
	}
	index := int(stvalue.ToInt(idx))

	info, hasInfo := ctx.Types.ArrayInfo(name)
	cell, ok := ctx.Store.ArrayElem(name, index-arrayBase(hasInfo, info))
	if !ok {
		return stvalue.ZeroBool, nil
	}
	return cellToValue(cell, elemKind(hasInfo, info)), nil
}

func arrayBase(hasInfo bool, info typesystem.ArrayInfo) int {
	if !hasInfo {
		return 0
	}
	return int(info.Low)
}

func elemKind(hasInfo bool, info typesystem.ArrayInfo) typesystem.DeclaredType {
	if !hasInfo {
		return typesystem.Unknown
	}
	return info.ElemType
}

func cellToValue(c store.Cell, elem typesystem.DeclaredType) stvalue.Value {
	switch elem {
	case typesystem.Int:
		return stvalue.NewInt(c.Int)
	case typesystem.Real:
		return stvalue.NewReal(c.Real)
	case typesystem.Time:
		return stvalue.NewTime(c.Time)
	case typesystem.String:
		return stvalue.NewString(c.Str)
	default:
		return stvalue.NewBool(c.Bool)
	}
}
