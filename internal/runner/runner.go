// Package runner drives the scan cycle (spec.md §4.5): advance every
// timer by the nominal scan period, then execute the program's
// top-level statements exactly once.
//
// Grounded on CWBudde-go-dws's cmd/dwscript/cmd/run.go top-level
// run-to-completion loop, generalized here to a single bounded pass
// per call instead of running a script to its natural end, since a PLC
// scan cycle is driven externally (spec.md §4.5: "the caller drives
// scans on any cadence").
package runner

import (
	"github.com/golang-plc/stcore/internal/executor"
	"github.com/golang-plc/stcore/internal/sterrors"
	"github.com/golang-plc/stcore/internal/store"
	"github.com/golang-plc/stcore/internal/typesystem"

	"github.com/golang-plc/stcore/internal/runtime"
)

// Runner ties a program's runtime state to a store and executes one
// scan at a time.
type Runner struct {
	Store  *store.Store
	Types  *typesystem.TypeRegistry
	Consts *typesystem.ConstantRegistry
	State  *runtime.State
	Sink   sterrors.Sink
	exec   *executor.Executor
}

// New builds a Runner for an already-initialized store (the caller is
// expected to have run initializer.InitializeVariables first).
func New(s *store.Store, types *typesystem.TypeRegistry, consts *typesystem.ConstantRegistry, state *runtime.State, sink sterrors.Sink) *Runner {
	if sink == nil {
		sink = sterrors.NopSink{}
	}
	ec := runtime.NewExecutionContext(s, types, consts, state, sink)
	return &Runner{
		Store:  s,
		Types:  types,
		Consts: consts,
		State:  state,
		Sink:   sink,
		exec:   executor.New(ec.Eval, ec.FB),
	}
}

// RunScanCycle executes exactly one scan (spec.md §4.5):
//  1. advance every timer instance by the store's nominal scan period
//  2. execute the program's top-level statements once
//
// A RETURN statement at the top level ends the scan normally. EXIT or
// CONTINUE escaping all the way to the top level is a bug in the
// program's AST shape (there is no enclosing loop to aim at), reported
// as an internal error rather than silently ignored.
func (r *Runner) RunScanCycle() error {
	for _, name := range r.Store.AllTimerNames() {
		r.Store.UpdateTimer(name, r.Store.ScanTime)
	}

	sig, err := r.exec.ExecuteBlock(r.State.AST.Body)
	if err != nil {
		return err
	}
	switch sig {
	case executor.SignalNone, executor.SignalReturn:
		return nil
	default:
		return sterrors.NewInternalError(nil, "EXIT or CONTINUE escaped the top-level statement list")
	}
}
