package builtins

import (
	"math"

	"github.com/golang-plc/stcore/internal/stvalue"
)

func init() {
	Register("ABS", CategoryNumeric, func(a []stvalue.Value) stvalue.Value {
		v := arg(a, 0)
		if v.Kind == stvalue.Int {
			if v.I < 0 {
				return stvalue.NewInt(-v.I)
			}
			return v
		}
		return stvalue.NewReal(math.Abs(stvalue.ToNumber(v)))
	})
	Register("SQRT", CategoryNumeric, unaryReal(math.Sqrt))
	Register("SIN", CategoryNumeric, unaryReal(math.Sin))
	Register("COS", CategoryNumeric, unaryReal(math.Cos))
	Register("TAN", CategoryNumeric, unaryReal(math.Tan))
	Register("ASIN", CategoryNumeric, unaryReal(math.Asin))
	Register("ACOS", CategoryNumeric, unaryReal(math.Acos))
	Register("ATAN", CategoryNumeric, unaryReal(math.Atan))
	Register("LN", CategoryNumeric, unaryReal(math.Log))
	Register("LOG", CategoryNumeric, unaryReal(math.Log10))
	Register("EXP", CategoryNumeric, unaryReal(math.Exp))
	Register("TRUNC", CategoryNumeric, func(a []stvalue.Value) stvalue.Value {
		return stvalue.NewInt(int64(math.Trunc(stvalue.ToNumber(arg(a, 0)))))
	})
	Register("ATAN2", CategoryNumeric, func(a []stvalue.Value) stvalue.Value {
		return stvalue.NewReal(math.Atan2(stvalue.ToNumber(arg(a, 0)), stvalue.ToNumber(arg(a, 1))))
	})
	Register("MIN", CategoryNumeric, func(a []stvalue.Value) stvalue.Value {
		x, y := arg(a, 0), arg(a, 1)
		if bothInt(x, y) {
			if x.I < y.I {
				return x
			}
			return y
		}
		return stvalue.NewReal(math.Min(stvalue.ToNumber(x), stvalue.ToNumber(y)))
	})
	Register("MAX", CategoryNumeric, func(a []stvalue.Value) stvalue.Value {
		x, y := arg(a, 0), arg(a, 1)
		if bothInt(x, y) {
			if x.I > y.I {
				return x
			}
			return y
		}
		return stvalue.NewReal(math.Max(stvalue.ToNumber(x), stvalue.ToNumber(y)))
	})
}

func unaryReal(f func(float64) float64) Func {
	return func(a []stvalue.Value) stvalue.Value {
		return stvalue.NewReal(f(stvalue.ToNumber(arg(a, 0))))
	}
}

func arg(a []stvalue.Value, i int) stvalue.Value {
	if i < 0 || i >= len(a) {
		return stvalue.ZeroInt
	}
	return a[i]
}

func bothInt(a, b stvalue.Value) bool {
	return a.Kind == stvalue.Int && b.Kind == stvalue.Int
}
