// Package executor implements the statement executor (spec.md §4.3):
// walking a program's statement list once per scan, applying
// assignments and control flow against an evaluator.Context and an
// fbcore.Handler.
//
// Grounded on CWBudde-go-dws's internal/interp/statements_control.go
// and statements_loops.go, which thread a bool-flag trio
// (breakSignal/continueSignal/exitSignal) through every exec method.
// This package carries the same three signals but as a single tagged
// Signal result instead of three mutable flags, per spec.md Design
// Notes §9's recommendation that EXIT/CONTINUE/RETURN be represented
// as an explicit control-flow value rather than exceptions or flags.
package executor

import (
	"github.com/golang-plc/stcore/internal/ast"
	"github.com/golang-plc/stcore/internal/evaluator"
	"github.com/golang-plc/stcore/internal/fbcore"
)

// Signal reports which of the three non-local control-flow constructs
// unwound out of a statement, if any.
type Signal int

const (
	SignalNone Signal = iota
	SignalExit
	SignalContinue
	SignalReturn
)

// Executor walks a statement tree against a shared evaluation context
// and function-block handler.
type Executor struct {
	Ctx *evaluator.Context
	FB  *fbcore.Handler

	warnedDescendingRange bool
}

func New(ctx *evaluator.Context, fb *fbcore.Handler) *Executor {
	return &Executor{Ctx: ctx, FB: fb}
}

// ExecuteBlock runs a statement list in order, stopping as soon as any
// statement yields a non-None signal (spec.md §4.3: EXIT/CONTINUE/
// RETURN unwind the remainder of the current block).
func (e *Executor) ExecuteBlock(stmts []ast.Statement) (Signal, error) {
	for _, stmt := range stmts {
		sig, err := e.ExecuteStatement(stmt)
		if err != nil {
			return SignalNone, err
		}
		if sig != SignalNone {
			return sig, nil
		}
	}
	return SignalNone, nil
}

// ExecuteStatement dispatches a single statement by concrete type.
func (e *Executor) ExecuteStatement(stmt ast.Statement) (Signal, error) {
	switch s := stmt.(type) {
	case *ast.Assignment:
		return SignalNone, e.execAssignment(s)
	case *ast.FunctionBlockCall:
		return SignalNone, e.execFunctionBlockCall(s)
	case *ast.IfStatement:
		return e.execIf(s)
	case *ast.CaseStatement:
		return e.execCase(s)
	case *ast.ForStatement:
		return e.execFor(s)
	case *ast.WhileStatement:
		return e.execWhile(s)
	case *ast.RepeatStatement:
		return e.execRepeat(s)
	case *ast.ReturnStatement:
		return SignalReturn, nil
	case *ast.ExitStatement:
		return SignalExit, nil
	case *ast.ContinueStatement:
		return SignalContinue, nil
	default:
		return SignalNone, nil
	}
}
