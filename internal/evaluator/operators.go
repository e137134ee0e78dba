package evaluator

import (
	"math"

	"github.com/golang-plc/stcore/internal/ast"
	"github.com/golang-plc/stcore/internal/sterrors"
	"github.com/golang-plc/stcore/internal/stvalue"
)

// evalUnary applies unary `-` and NOT (spec.md §4.2 precedence tier 3).
func evalUnary(u *ast.UnaryExpr, ctx *Context) (stvalue.Value, error) {
	v, err := Evaluate(u.Operand, ctx)
	if err != nil {
		return stvalue.Value{}, err
	}
	switch u.Op {
	case ast.OpNeg:
		if v.Kind == stvalue.Int {
			return stvalue.NewInt(-v.I), nil
		}
		return stvalue.NewReal(-stvalue.ToNumber(v)), nil
	case ast.OpNot:
		return stvalue.NewBool(!stvalue.ToBool(v)), nil
	default:
		pos := u.Position
		return stvalue.Value{}, sterrors.NewInternalError(&pos, "unknown unary operator %q", u.Op)
	}
}

// evalBinary applies the binary operator table from spec.md §4.2. Both
// operands are always evaluated first — AND/OR/XOR deliberately never
// short-circuit (spec.md §1 Non-goals, §4.2, DESIGN.md Open Question
// (a)) — so side effects in either operand (e.g. a function call) are
// never skipped regardless of operator.
func evalBinary(b *ast.BinaryExpr, ctx *Context) (stvalue.Value, error) {
	left, err := Evaluate(b.Left, ctx)
	if err != nil {
		return stvalue.Value{}, err
	}
	right, err := Evaluate(b.Right, ctx)
	if err != nil {
		return stvalue.Value{}, err
	}

	switch b.Op {
	case ast.OpAnd:
		return stvalue.NewBool(stvalue.ToBool(left) && stvalue.ToBool(right)), nil
	case ast.OpOr:
		return stvalue.NewBool(stvalue.ToBool(left) || stvalue.ToBool(right)), nil
	case ast.OpXor:
		return stvalue.NewBool(stvalue.ToBool(left) != stvalue.ToBool(right)), nil
	case ast.OpEq:
		return stvalue.NewBool(compareEqual(left, right)), nil
	case ast.OpNe:
		return stvalue.NewBool(!compareEqual(left, right)), nil
	case ast.OpLt, ast.OpGt, ast.OpLe, ast.OpGe:
		return compareOrdered(b.Op, left, right), nil
	case ast.OpAdd:
		return arith(left, right, func(a, b float64) float64 { return a + b }, func(a, b int64) int64 { return a + b }), nil
	case ast.OpSub:
		return arith(left, right, func(a, b float64) float64 { return a - b }, func(a, b int64) int64 { return a - b }), nil
	case ast.OpMul:
		return arith(left, right, func(a, b float64) float64 { return a * b }, func(a, b int64) int64 { return a * b }), nil
	case ast.OpDiv:
		return divide(left, right), nil
	case ast.OpMod:
		return modulo(left, right), nil
	case ast.OpPow:
		return stvalue.NewReal(math.Pow(stvalue.ToNumber(left), stvalue.ToNumber(right))), nil
	default:
		pos := b.Position
		return stvalue.Value{}, sterrors.NewInternalError(&pos, "unknown binary operator %q", b.Op)
	}
}

// bothInt reports whether both operands are integer-kinded (INT or
// TIME — TIME arithmetic stays in whole milliseconds).
func bothInt(a, b stvalue.Value) bool {
	isInt := func(v stvalue.Value) bool { return v.Kind == stvalue.Int || v.Kind == stvalue.Time }
	return isInt(a) && isInt(b)
}

func arith(a, b stvalue.Value, realOp func(a, b float64) float64, intOp func(a, b int64) int64) stvalue.Value {
	if bothInt(a, b) {
		result := intOp(a.I, b.I)
		if a.Kind == stvalue.Time || b.Kind == stvalue.Time {
			return stvalue.NewTime(result)
		}
		return stvalue.NewInt(result)
	}
	return stvalue.NewReal(realOp(stvalue.ToNumber(a), stvalue.ToNumber(b)))
}

// divide yields +/-Inf on division by zero rather than faulting
// (spec.md §4.2: "no fault").
func divide(a, b stvalue.Value) stvalue.Value {
	if bothInt(a, b) && b.I != 0 {
		result := a.I / b.I
		if a.Kind == stvalue.Time || b.Kind == stvalue.Time {
			return stvalue.NewTime(result)
		}
		return stvalue.NewInt(result)
	}
	return stvalue.NewReal(stvalue.ToNumber(a) / stvalue.ToNumber(b))
}

// modulo uses truncated remainder (spec.md §4.2).
func modulo(a, b stvalue.Value) stvalue.Value {
	if bothInt(a, b) {
		if b.I == 0 {
			return stvalue.NewInt(0)
		}
		return stvalue.NewInt(a.I % b.I)
	}
	return stvalue.NewReal(math.Mod(stvalue.ToNumber(a), stvalue.ToNumber(b)))
}

func compareEqual(a, b stvalue.Value) bool {
	if a.Kind == stvalue.String && b.Kind == stvalue.String {
		return a.S == b.S
	}
	if a.Kind == stvalue.Bool && b.Kind == stvalue.Bool {
		return a.B == b.B
	}
	return stvalue.ToNumber(a) == stvalue.ToNumber(b)
}

// compareOrdered implements spec.md §4.2: "String comparison with
// <,>,<=,>= is lexicographic when both operands are strings, numeric
// otherwise."
func compareOrdered(op ast.BinaryOp, a, b stvalue.Value) stvalue.Value {
	if a.Kind == stvalue.String && b.Kind == stvalue.String {
		switch op {
		case ast.OpLt:
			return stvalue.NewBool(a.S < b.S)
		case ast.OpGt:
			return stvalue.NewBool(a.S > b.S)
		case ast.OpLe:
			return stvalue.NewBool(a.S <= b.S)
		default:
			return stvalue.NewBool(a.S >= b.S)
		}
	}
	x, y := stvalue.ToNumber(a), stvalue.ToNumber(b)
	switch op {
	case ast.OpLt:
		return stvalue.NewBool(x < y)
	case ast.OpGt:
		return stvalue.NewBool(x > y)
	case ast.OpLe:
		return stvalue.NewBool(x <= y)
	default:
		return stvalue.NewBool(x >= y)
	}
}
