package evaluator

import (
	"github.com/golang-plc/stcore/internal/ast"
	"github.com/golang-plc/stcore/internal/sterrors"
	"github.com/golang-plc/stcore/internal/stvalue"
)

// Evaluate is the evaluator's total entry point (spec.md §4.2):
// `evaluate(expr, ctx) -> Value`. Every AST expression shape is
// handled; an unrecognized shape is an internal error (spec.md §7).
func Evaluate(expr ast.Expression, ctx *Context) (stvalue.Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return evalLiteral(e)
	case *ast.Variable:
		return evalVariable(e, ctx)
	case *ast.BinaryExpr:
		return evalBinary(e, ctx)
	case *ast.UnaryExpr:
		return evalUnary(e, ctx)
	case *ast.ParenExpr:
		return Evaluate(e.Inner, ctx)
	case *ast.FunctionCall:
		return evalFunctionCall(e, ctx)
	default:
		pos := expr.Pos()
		return stvalue.Value{}, sterrors.NewInternalError(&pos, "unknown expression node %T", expr)
	}
}

func evalLiteral(l *ast.Literal) (stvalue.Value, error) {
	switch l.Kind {
	case ast.LiteralBool:
		return stvalue.NewBool(l.Bool), nil
	case ast.LiteralInt:
		return stvalue.NewInt(l.Int), nil
	case ast.LiteralReal:
		return stvalue.NewReal(l.Real), nil
	case ast.LiteralTime:
		return stvalue.NewTime(l.Time), nil
	case ast.LiteralString:
		return stvalue.NewString(l.Str), nil
	default:
		pos := l.Position
		return stvalue.Value{}, sterrors.NewInternalError(&pos, "unknown literal kind %q", l.Kind)
	}
}
