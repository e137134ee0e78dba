// Package runtime assembles the per-run state that must survive across
// scans but isn't part of the store proper: the parsed program and the
// function-block handler's previous-input map (spec.md §3.2, §6).
//
// Grounded on CWBudde-go-dws's internal/interp/interpreter.go
// constructor, which bundles a parsed script with the interpreter's
// long-lived bookkeeping before the first statement runs.
package runtime

import (
	"github.com/golang-plc/stcore/internal/ast"
	"github.com/golang-plc/stcore/internal/evaluator"
	"github.com/golang-plc/stcore/internal/fbcore"
	"github.com/golang-plc/stcore/internal/sterrors"
	"github.com/golang-plc/stcore/internal/store"
	"github.com/golang-plc/stcore/internal/typesystem"
)

// State holds everything that persists for the life of a running
// program beyond a single scan (spec.md §6 "createRuntimeState(ast) ->
// { ast, previousInputs }").
type State struct {
	AST  *ast.Program
	Prev *fbcore.PreviousInputs
}

// NewState builds a fresh RuntimeState for a program.
func NewState(program *ast.Program) *State {
	return &State{AST: program, Prev: fbcore.NewPreviousInputs()}
}

// ExecutionContext bundles the store, registries, and function-block
// handler a single scan needs (spec.md §6
// "createExecutionContext(store, runtimeState) -> context").
type ExecutionContext struct {
	Eval *evaluator.Context
	FB   *fbcore.Handler
}

// NewExecutionContext wires a store and the registries built by the
// initializer into one context shared by the evaluator, executor, and
// function-block handler for a scan.
func NewExecutionContext(s *store.Store, types *typesystem.TypeRegistry, consts *typesystem.ConstantRegistry, state *State, sink sterrors.Sink) *ExecutionContext {
	if sink == nil {
		sink = sterrors.NopSink{}
	}
	return &ExecutionContext{
		Eval: evaluator.NewContext(s, types, consts, sink),
		FB:   fbcore.New(s, types, sink, state.Prev),
	}
}
