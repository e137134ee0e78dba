package builtins

import "github.com/golang-plc/stcore/internal/stvalue"

func init() {
	// SEL(G, IN0, IN1) returns IN1 if G, else IN0 (spec.md §4.2).
	Register("SEL", CategorySelection, func(a []stvalue.Value) stvalue.Value {
		if stvalue.ToBool(arg(a, 0)) {
			return arg(a, 2)
		}
		return arg(a, 1)
	})

	// MUX(K, IN0..INn) returns the K-th (0-based) argument, or IN0 on
	// out-of-range (spec.md §4.2).
	Register("MUX", CategorySelection, func(a []stvalue.Value) stvalue.Value {
		if len(a) < 2 {
			return stvalue.ZeroInt
		}
		k := int(stvalue.ToInt(a[0]))
		options := a[1:]
		if k < 0 || k >= len(options) {
			return options[0]
		}
		return options[k]
	})

	// LIMIT(MN, IN, MX) clamps IN to [MN, MX] (spec.md §4.2).
	Register("LIMIT", CategorySelection, func(a []stvalue.Value) stvalue.Value {
		mn, in, mx := arg(a, 0), arg(a, 1), arg(a, 2)
		lo, hi, v := stvalue.ToNumber(mn), stvalue.ToNumber(mx), stvalue.ToNumber(in)
		clamped := v
		if clamped < lo {
			clamped = lo
		}
		if clamped > hi {
			clamped = hi
		}
		if in.Kind == stvalue.Int {
			return stvalue.NewInt(int64(clamped))
		}
		return stvalue.NewReal(clamped)
	})
}
