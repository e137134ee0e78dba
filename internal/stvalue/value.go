// Package stvalue defines the tagged runtime value used throughout the
// evaluator, executor, and store.
//
// Unlike the teacher's DWScript Value interface (open-ended: classes,
// interfaces, records, sets, variants), IEC 61131-3's runtime value
// space for this subset is exactly five closed kinds (spec.md §3.1).
// A tagged struct keeps every switch over Kind exhaustive and avoids a
// heap allocation per value, which matters on a hot per-scan path.
package stvalue

import "strconv"

// Kind tags which field of Value is meaningful.
type Kind int

const (
	Bool Kind = iota
	Int
	Real
	Time // milliseconds, stored in the Int field
	String
)

// Value is a tagged union of bool / int64 / float64 / time(ms) / string.
type Value struct {
	Kind Kind
	B    bool
	I    int64
	R    float64
	S    string
}

// Zero values, used for undeclared-name reads (spec.md §3.2 invariant d).
var (
	ZeroBool   = Value{Kind: Bool}
	ZeroInt    = Value{Kind: Int}
	ZeroReal   = Value{Kind: Real}
	ZeroTime   = Value{Kind: Time}
	ZeroString = Value{Kind: String}
)

func NewBool(b bool) Value     { return Value{Kind: Bool, B: b} }
func NewInt(i int64) Value     { return Value{Kind: Int, I: i} }
func NewReal(r float64) Value  { return Value{Kind: Real, R: r} }
func NewTime(ms int64) Value   { return Value{Kind: Time, I: ms} }
func NewString(s string) Value { return Value{Kind: String, S: s} }

// TypeName returns the IEC-ish type tag, used for diagnostics.
func (v Value) TypeName() string {
	switch v.Kind {
	case Bool:
		return "BOOL"
	case Int:
		return "INT"
	case Real:
		return "REAL"
	case Time:
		return "TIME"
	case String:
		return "STRING"
	default:
		return "UNKNOWN"
	}
}

// String renders the value the way the IEC text forms do.
func (v Value) String() string {
	switch v.Kind {
	case Bool:
		if v.B {
			return "TRUE"
		}
		return "FALSE"
	case Int:
		return strconv.FormatInt(v.I, 10)
	case Real:
		return strconv.FormatFloat(v.R, 'g', -1, 64)
	case Time:
		return "T#" + strconv.FormatInt(v.I, 10) + "ms"
	case String:
		return v.S
	default:
		return ""
	}
}
