// Package sterrors provides the execution core's error taxonomy
// (spec.md §7): typed InterpreterError values for parse/type/runtime
// faults, and a level-gated warning Sink for the recoverable
// diagnostics every component may emit without aborting the scan.
//
// Grounded on CWBudde-go-dws's internal/interp/errors package (category
// + position + constructor-per-category shape) and on
// rob-gra-go-iecp5/clog's enable-gated logging interface for the Sink.
package sterrors

import (
	"fmt"

	"github.com/golang-plc/stcore/internal/token"
)

// Category classifies an InterpreterError (spec.md §7 taxa).
type Category string

const (
	CategoryType      Category = "Type"
	CategoryRuntime   Category = "Runtime"
	CategoryUndefined Category = "Undefined"
	CategoryInternal  Category = "Internal"
)

// InterpreterError is a runtime fault with enough context to report a
// useful message; internal errors (unknown AST node, unknown operator)
// are bugs per spec.md §7 and are always of Category Internal.
type InterpreterError struct {
	Category Category
	Message  string
	Pos      *token.Position
}

func (e *InterpreterError) Error() string {
	if e.Pos != nil {
		return fmt.Sprintf("%s error at %s: %s", e.Category, e.Pos, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Category, e.Message)
}

func NewTypeError(pos *token.Position, format string, args ...any) *InterpreterError {
	return &InterpreterError{Category: CategoryType, Message: fmt.Sprintf(format, args...), Pos: pos}
}

func NewRuntimeError(pos *token.Position, format string, args ...any) *InterpreterError {
	return &InterpreterError{Category: CategoryRuntime, Message: fmt.Sprintf(format, args...), Pos: pos}
}

func NewUndefinedError(pos *token.Position, format string, args ...any) *InterpreterError {
	return &InterpreterError{Category: CategoryUndefined, Message: fmt.Sprintf(format, args...), Pos: pos}
}

// NewInternalError builds an error for the "should never happen" taxon
// (unknown AST node kind, unknown operator) — these are bugs, not
// user-recoverable faults, and must be surfaced by the embedding host.
func NewInternalError(pos *token.Position, format string, args ...any) *InterpreterError {
	return &InterpreterError{Category: CategoryInternal, Message: fmt.Sprintf(format, args...), Pos: pos}
}
