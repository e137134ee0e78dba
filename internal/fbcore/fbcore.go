// Package fbcore implements the function-block handler (spec.md §4.4):
// edge detection and state update for timers, counters, edge detectors,
// and bistables, dispatched from a FunctionBlockCall's named-argument
// signature (or, when known, the declared FB kind from the type
// registry — spec.md Design Notes §9).
//
// Grounded on CWBudde-go-dws's builtins/registry.go name-based dispatch
// pattern, generalized from "function name -> Func" to "argument
// signature -> function-block kind -> store method calls".
package fbcore

import (
	"strings"

	"github.com/golang-plc/stcore/internal/sterrors"
	"github.com/golang-plc/stcore/internal/store"
	"github.com/golang-plc/stcore/internal/stvalue"
	"github.com/golang-plc/stcore/internal/typesystem"
)

// PreviousInputs is the per-run previous-input map keyed by
// "<instance>.<pin>" (spec.md §3.2, §9), owned by the runtime state and
// never cleared between scans. Only counters need it (timers and edge
// detectors carry their own previous-sample state in the store record).
type PreviousInputs struct {
	values map[string]bool
}

func NewPreviousInputs() *PreviousInputs {
	return &PreviousInputs{values: make(map[string]bool)}
}

func (p *PreviousInputs) Get(key string) bool { return p.values[key] }
func (p *PreviousInputs) Set(key string, v bool) { p.values[key] = v }

// Handler dispatches function-block calls against the store.
type Handler struct {
	Store *store.Store
	Types *typesystem.TypeRegistry
	Sink  sterrors.Sink
	Prev  *PreviousInputs
}

func New(s *store.Store, types *typesystem.TypeRegistry, sink sterrors.Sink, prev *PreviousInputs) *Handler {
	if sink == nil {
		sink = sterrors.NopSink{}
	}
	return &Handler{Store: s, Types: types, Sink: sink, Prev: prev}
}

// Call dispatches one function-block invocation. args maps upper-cased
// pin names to already-evaluated values (the executor evaluates each
// NamedArg expression before calling in, keeping this package
// evaluation-free).
func (h *Handler) Call(instance string, args map[string]stvalue.Value) {
	kind := h.Types.FBKind(instance)
	if kind == typesystem.FBUnknown {
		kind = guessKind(instance, args)
	}

	switch kind {
	case typesystem.FBTON, typesystem.FBTOF, typesystem.FBTP:
		h.callTimer(instance, kind, args)
	case typesystem.FBCTU, typesystem.FBCTD, typesystem.FBCTUD:
		h.callCounter(instance, args)
	case typesystem.FBRTrig:
		h.callEdge(instance, args, true)
	case typesystem.FBFTrig:
		h.callEdge(instance, args, false)
	case typesystem.FBSR:
		h.callBistable(instance, args, true)
	case typesystem.FBRS:
		h.callBistable(instance, args, false)
	default:
		h.Sink.Warn("function block %q: could not determine kind from arguments", instance)
	}
}

// guessKind implements the argument-signature dispatch table of
// spec.md §4.4, used as a fallback when the type registry doesn't
// carry an explicit declared kind for this instance.
func guessKind(instance string, args map[string]stvalue.Value) typesystem.FBKind {
	_, hasS1 := args["S1"]
	_, hasR := args["R"]
	_, hasS := args["S"]
	_, hasR1 := args["R1"]
	_, hasClk := args["CLK"]
	_, hasCU := args["CU"]
	_, hasCD := args["CD"]
	_, hasPV := args["PV"]
	_, hasIN := args["IN"]
	_, hasPT := args["PT"]

	switch {
	case hasClk:
		if isFTrigInstance(instance) {
			return typesystem.FBFTrig
		}
		return typesystem.FBRTrig
	case hasS1 && hasR:
		return typesystem.FBSR
	case hasS && hasR1:
		return typesystem.FBRS
	case hasCU || hasCD || hasPV:
		switch {
		case hasCU && hasCD:
			return typesystem.FBCTUD
		case hasCD:
			return typesystem.FBCTD
		default:
			return typesystem.FBCTU
		}
	case hasIN || hasPT:
		return typesystem.FBTON
	default:
		return typesystem.FBUnknown
	}
}

// isFTrigInstance implements spec.md §4.4's naming heuristic: "R_TRIG
// if instance name does not contain FTRIG/start F_; else F_TRIG".
func isFTrigInstance(instance string) bool {
	upper := typesystem.Normalize(instance)
	return strings.Contains(upper, "FTRIG") || strings.HasPrefix(upper, "F_")
}

func boolArg(args map[string]stvalue.Value, name string) bool {
	v, ok := args[name]
	if !ok {
		return false
	}
	return stvalue.ToBool(v)
}

func intArg(args map[string]stvalue.Value, name string) (int64, bool) {
	v, ok := args[name]
	if !ok {
		return 0, false
	}
	return stvalue.ToInt(v), true
}
