// Package evaluator implements the pure expression evaluator (spec.md
// §4.2): variable/member lookup, operator precedence and coercion, and
// the built-in function library.
//
// Grounded on CWBudde-go-dws's internal/interp/evaluator package: a
// core evaluate-by-node-kind dispatcher (core_evaluator.go) plus
// per-concern helper files (binary_ops.go, type_conversion.go). That
// repo's evaluator is a method on a large stateful Interpreter; this
// one is a free function over an explicit Context, since the ST core
// has no object/class graph to close over.
package evaluator

import (
	"github.com/golang-plc/stcore/internal/store"
	"github.com/golang-plc/stcore/internal/sterrors"
	"github.com/golang-plc/stcore/internal/stvalue"
	"github.com/golang-plc/stcore/internal/typesystem"
)

// UserFunctionHook resolves a name the built-in registry doesn't know,
// giving an embedding host a chance to supply user-defined ST functions
// (spec.md §4.2: "unknown names may fall through to a user-function
// hook, else produce a warning and 0").
type UserFunctionHook func(name string, args []stvalue.Value) (stvalue.Value, bool)

// UserFBOutputHook is consulted before the scalar store when resolving
// a plain variable reference, letting an embedding host shadow a name
// with a user-defined function-block's output (spec.md §4.2: "consult
// a user-FB output hook (if present and the instance is user-defined)
// first").
type UserFBOutputHook func(name string) (stvalue.Value, bool)

// Context bundles everything the evaluator needs to resolve an
// expression: the store, the registries built at initialization, the
// warning sink, and optional hooks for host-supplied extensions.
type Context struct {
	Store     *store.Store
	Types     *typesystem.TypeRegistry
	Constants *typesystem.ConstantRegistry
	Sink      sterrors.Sink

	UserFunction UserFunctionHook
	UserFBOutput UserFBOutputHook
}

// NewContext builds an evaluation context around a store and the
// registries produced by the initializer (spec.md §6 "createExecutionContext").
func NewContext(s *store.Store, types *typesystem.TypeRegistry, consts *typesystem.ConstantRegistry, sink sterrors.Sink) *Context {
	if sink == nil {
		sink = sterrors.NopSink{}
	}
	return &Context{Store: s, Types: types, Constants: consts, Sink: sink}
}
