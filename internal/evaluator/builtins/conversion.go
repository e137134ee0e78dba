package builtins

import "github.com/golang-plc/stcore/internal/stvalue"

// family groups the IEC elementary type names spec.md §4.2 lists by
// their underlying runtime representation, since e.g. SINT/INT/DINT/
// LINT/USINT/UINT/UDINT/ULINT/BYTE/WORD/DWORD/LWORD are all
// machine-integer kinds at the Value level (spec.md §3.1: "integer
// (machine-signed, 64-bit is sufficient)").
type family int

const (
	famBool family = iota
	famInt
	famReal
	famTime
	famString
)

var typeNames = map[string]family{
	"BOOL":    famBool,
	"SINT":    famInt,
	"INT":     famInt,
	"DINT":    famInt,
	"LINT":    famInt,
	"USINT":   famInt,
	"UINT":    famInt,
	"UDINT":   famInt,
	"ULINT":   famInt,
	"BYTE":    famInt,
	"WORD":    famInt,
	"DWORD":   famInt,
	"LWORD":   famInt,
	"REAL":    famReal,
	"LREAL":   famReal,
	"TIME":    famTime,
	"STRING":  famString,
	"WSTRING": famString,
}

// convert applies spec.md §4.2's <SRC>_TO_<DST> semantics: to-integer
// truncates toward zero, to-bool is != 0, to-string is decimal text
// ("TRUE"/"FALSE" for bool), string-to-number parses a decimal number
// (or a TIME literal for STRING_TO_TIME) and yields 0 on failure.
func convert(dst family, v stvalue.Value) stvalue.Value {
	switch dst {
	case famBool:
		return stvalue.NewBool(stvalue.ToBool(v))
	case famInt:
		return stvalue.NewInt(stvalue.ToInt(v))
	case famReal:
		return stvalue.NewReal(stvalue.ToNumber(v))
	case famTime:
		if v.Kind == stvalue.String {
			if ms, ok := stvalue.ParseTimeLiteral(v.S); ok {
				return stvalue.NewTime(ms)
			}
		}
		return stvalue.NewTime(stvalue.ToInt(v))
	case famString:
		return stvalue.NewString(stvalue.ToString(v))
	default:
		return v
	}
}

func init() {
	for srcName := range typeNames {
		for dstName, dstFam := range typeNames {
			dst := dstFam
			Register(srcName+"_TO_"+dstName, CategoryConversion, func(a []stvalue.Value) stvalue.Value {
				return convert(dst, arg(a, 0))
			})
		}
	}
}
