package fbcore

import "github.com/golang-plc/stcore/internal/stvalue"

func (h *Handler) callCounter(instance string, args map[string]stvalue.Value) {
	if _, ok := h.Store.PeekCounter(instance); !ok {
		h.Store.InitCounter(instance, 0)
	}

	if pv, ok := intArg(args, "PV"); ok {
		h.Store.SetCounterPV(instance, pv)
	}

	r := boolArg(args, "R")
	if r {
		h.Store.ResetCounter(instance)
	}

	// Rising edges on CU/CD are detected against the per-instance
	// previous-input map keyed "<instance>.CU"/"<instance>.CD" (spec.md
	// §4.4), which is part of the runtime state and preserved across
	// scans — distinct from an edge detector's own internal M field.
	cu := boolArg(args, "CU")
	cuKey := instance + ".CU"
	if cu && !h.Prev.Get(cuKey) {
		h.Store.PulseCountUp(instance)
	}
	h.Prev.Set(cuKey, cu)

	cd := boolArg(args, "CD")
	cdKey := instance + ".CD"
	if cd && !h.Prev.Get(cdKey) {
		h.Store.PulseCountDown(instance)
	}
	h.Prev.Set(cdKey, cd)

	h.Store.SetCounterInputs(instance, cu, cd, r, false)
}
