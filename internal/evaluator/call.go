package evaluator

import (
	"github.com/golang-plc/stcore/internal/ast"
	"github.com/golang-plc/stcore/internal/evaluator/builtins"
	"github.com/golang-plc/stcore/internal/stvalue"
	"github.com/golang-plc/stcore/internal/typesystem"
)

// evalFunctionCall resolves a call by upper-cased name against the
// built-in registry, falling through to a user-function hook, and
// finally to a warning + zero (spec.md §4.2).
func evalFunctionCall(f *ast.FunctionCall, ctx *Context) (stvalue.Value, error) {
	args := make([]stvalue.Value, len(f.Args))
	for i, a := range f.Args {
		v, err := Evaluate(a, ctx)
		if err != nil {
			return stvalue.Value{}, err
		}
		args[i] = v
	}

	name := typesystem.Normalize(f.Name)
	if fn, ok := builtins.Lookup(name); ok {
		return fn(args), nil
	}

	if ctx.UserFunction != nil {
		if v, ok := ctx.UserFunction(f.Name, args); ok {
			return v, nil
		}
	}

	ctx.Sink.Warn("unknown function %q, returning 0", f.Name)
	return stvalue.ZeroInt, nil
}
