package fbcore

import "github.com/golang-plc/stcore/internal/stvalue"

func (h *Handler) callBistable(instance string, args map[string]stvalue.Value, setDominant bool) {
	if _, ok := h.Store.PeekBistable(instance); !ok {
		h.Store.InitBistable(instance)
	}
	if setDominant {
		h.Store.UpdateSR(instance, boolArg(args, "S1"), boolArg(args, "R"))
	} else {
		h.Store.UpdateRS(instance, boolArg(args, "S"), boolArg(args, "R1"))
	}
}
