package fbcore

import (
	"github.com/golang-plc/stcore/internal/store"
	"github.com/golang-plc/stcore/internal/stvalue"
	"github.com/golang-plc/stcore/internal/typesystem"
)

func toStoreKind(k typesystem.FBKind) store.TimerKind {
	switch k {
	case typesystem.FBTOF:
		return store.TOF
	case typesystem.FBTP:
		return store.TP
	default:
		return store.TON
	}
}

func (h *Handler) callTimer(instance string, kind typesystem.FBKind, args map[string]stvalue.Value) {
	if _, ok := h.Store.PeekTimer(instance); !ok {
		h.Store.InitTimer(instance, 0, toStoreKind(kind))
	}

	if pt, ok := intArg(args, "PT"); ok {
		h.Store.SetTimerPT(instance, pt)
	}
	in := boolArg(args, "IN")
	h.Store.ApplyTimerEdge(instance, in)
}
