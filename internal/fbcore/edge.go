package fbcore

import "github.com/golang-plc/stcore/internal/stvalue"

func (h *Handler) callEdge(instance string, args map[string]stvalue.Value, rising bool) {
	if _, ok := h.Store.PeekEdgeDetector(instance); !ok {
		h.Store.InitEdgeDetector(instance)
	}
	clk := boolArg(args, "CLK")
	if rising {
		h.Store.UpdateRTrig(instance, clk)
	} else {
		h.Store.UpdateFTrig(instance, clk)
	}
}
