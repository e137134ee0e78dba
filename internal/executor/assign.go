package executor

import (
	"github.com/golang-plc/stcore/internal/ast"
	"github.com/golang-plc/stcore/internal/evaluator"
	"github.com/golang-plc/stcore/internal/store"
	"github.com/golang-plc/stcore/internal/stvalue"
	"github.com/golang-plc/stcore/internal/typesystem"
)

// execAssignment implements spec.md §4.3's assignment rule: CONSTANT
// targets are rejected with a warning (no-op), array-indexed targets
// write one element, and everything else coerces the evaluated value
// to the target's declared storage type before writing.
func (e *Executor) execAssignment(a *ast.Assignment) error {
	name := a.Target.AccessPath[0]

	if e.Ctx.Constants.Contains(name) {
		e.Ctx.Sink.Warn("assignment to constant %q ignored", name)
		return nil
	}

	val, err := evaluator.Evaluate(a.Value, e.Ctx)
	if err != nil {
		return err
	}

	if len(a.Target.Indices) > 0 {
		return e.assignArrayElem(a.Target, val)
	}

	if len(a.Target.AccessPath) != 1 {
		e.Ctx.Sink.Warn("assignment to %q: member-path targets are not assignable", name)
		return nil
	}

	e.assignScalar(name, val)
	return nil
}

func (e *Executor) assignScalar(name string, val stvalue.Value) {
	s := e.Ctx.Store
	switch e.Ctx.Types.Get(name) {
	case typesystem.Bool:
		s.SetBool(name, stvalue.ToBool(val))
	case typesystem.Int:
		s.SetInt(name, stvalue.ToInt(val))
	case typesystem.Real:
		s.SetReal(name, stvalue.ToNumber(val))
	case typesystem.Time:
		s.SetTime(name, stvalue.ToInt(val))
	case typesystem.String:
		s.SetString(name, stvalue.ToString(val))
	case typesystem.Timer, typesystem.Counter, typesystem.EdgeDetector, typesystem.Bistable:
		e.Ctx.Sink.Warn("assignment to %q: function-block instances are not directly assignable", name)
	default:
		// Undeclared name: store under whichever map matches the value's
		// own kind (spec.md §4.3's fallback for UNKNOWN declared type).
		switch val.Kind {
		case stvalue.Bool:
			s.SetBool(name, val.B)
		case stvalue.Int:
			s.SetInt(name, val.I)
		case stvalue.Real:
			if stvalue.IsInteger(val.R) {
				s.SetInt(name, int64(val.R))
			} else {
				s.SetReal(name, val.R)
			}
		case stvalue.Time:
			s.SetTime(name, val.I)
		case stvalue.String:
			s.SetString(name, val.S)
		}
	}
}

func (e *Executor) assignArrayElem(target *ast.Variable, val stvalue.Value) error {
	name := target.AccessPath[0]
	idx, err := evaluator.Evaluate(target.Indices[0], e.Ctx)
	if err != nil {
		return err
	}
	index := int(stvalue.ToInt(idx))

	info, hasInfo := e.Ctx.Types.ArrayInfo(name)
	base := 0
	elem := typesystem.Unknown
	if hasInfo {
		base = int(info.Low)
		elem = info.ElemType
	}

	cell := store.Cell{}
	switch elem {
	case typesystem.Int:
		cell.Int = stvalue.ToInt(val)
	case typesystem.Real:
		cell.Real = stvalue.ToNumber(val)
	case typesystem.Time:
		cell.Time = stvalue.ToInt(val)
	case typesystem.String:
		cell.Str = stvalue.ToString(val)
	default:
		cell.Bool = stvalue.ToBool(val)
	}

	e.Ctx.Store.SetArrayElem(name, index-base, cell)
	return nil
}

func (e *Executor) execFunctionBlockCall(call *ast.FunctionBlockCall) error {
	args := make(map[string]stvalue.Value, len(call.Args))
	for _, na := range call.Args {
		v, err := evaluator.Evaluate(na.Value, e.Ctx)
		if err != nil {
			return err
		}
		args[typesystem.Normalize(na.Name)] = v
	}
	e.FB.Call(call.Instance, args)
	return nil
}
