package builtins

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/golang-plc/stcore/internal/stvalue"
)

// runes normalizes s to NFC and returns its runes, so LEFT/RIGHT/MID
// slice on character boundaries rather than raw bytes (SPEC_FULL.md
// §5, grounded on CWBudde-go-dws's string_helpers.go use of the same
// package for the same family of built-ins).
func runes(s string) []rune {
	return []rune(norm.NFC.String(s))
}

func clampLen(n, max int) int {
	if n < 0 {
		return 0
	}
	if n > max {
		return max
	}
	return n
}

func init() {
	Register("CONCAT", CategoryString, func(a []stvalue.Value) stvalue.Value {
		var b strings.Builder
		for _, v := range a {
			b.WriteString(stvalue.ToString(v))
		}
		return stvalue.NewString(b.String())
	})

	Register("LEN", CategoryString, func(a []stvalue.Value) stvalue.Value {
		return stvalue.NewInt(int64(len(runes(stvalue.ToString(arg(a, 0))))))
	})

	Register("LEFT", CategoryString, func(a []stvalue.Value) stvalue.Value {
		r := runes(stvalue.ToString(arg(a, 0)))
		l := clampLen(int(stvalue.ToInt(arg(a, 1))), len(r))
		return stvalue.NewString(string(r[:l]))
	})

	Register("RIGHT", CategoryString, func(a []stvalue.Value) stvalue.Value {
		r := runes(stvalue.ToString(arg(a, 0)))
		l := clampLen(int(stvalue.ToInt(arg(a, 1))), len(r))
		return stvalue.NewString(string(r[len(r)-l:]))
	})

	// MID(s, L, P) — P is 1-based (spec.md §4.2).
	Register("MID", CategoryString, func(a []stvalue.Value) stvalue.Value {
		r := runes(stvalue.ToString(arg(a, 0)))
		length := int(stvalue.ToInt(arg(a, 1)))
		pos := int(stvalue.ToInt(arg(a, 2))) - 1
		if pos < 0 {
			pos = 0
		}
		if pos >= len(r) {
			return stvalue.NewString("")
		}
		end := clampLen(pos+length, len(r))
		if end < pos {
			end = pos
		}
		return stvalue.NewString(string(r[pos:end]))
	})

	// FIND(h, n) returns 1-based position, 0 if not found (spec.md §4.2).
	Register("FIND", CategoryString, func(a []stvalue.Value) stvalue.Value {
		h := []rune(stvalue.ToString(arg(a, 0)))
		n := []rune(stvalue.ToString(arg(a, 1)))
		idx := strings.Index(string(h), string(n))
		if idx < 0 {
			return stvalue.NewInt(0)
		}
		return stvalue.NewInt(int64(len([]rune(string(h)[:idx]))) + 1)
	})

	// INSERT(src, dst, P) inserts src into dst at 1-based position P.
	Register("INSERT", CategoryString, func(a []stvalue.Value) stvalue.Value {
		src := runes(stvalue.ToString(arg(a, 0)))
		dst := runes(stvalue.ToString(arg(a, 1)))
		pos := clampLen(int(stvalue.ToInt(arg(a, 2)))-1, len(dst))
		out := append([]rune{}, dst[:pos]...)
		out = append(out, src...)
		out = append(out, dst[pos:]...)
		return stvalue.NewString(string(out))
	})

	// DELETE(s, P, L) removes L characters starting at 1-based position P.
	Register("DELETE", CategoryString, func(a []stvalue.Value) stvalue.Value {
		s := runes(stvalue.ToString(arg(a, 0)))
		pos := clampLen(int(stvalue.ToInt(arg(a, 1)))-1, len(s))
		length := int(stvalue.ToInt(arg(a, 2)))
		if length < 0 {
			length = 0
		}
		end := clampLen(pos+length, len(s))
		out := append([]rune{}, s[:pos]...)
		out = append(out, s[end:]...)
		return stvalue.NewString(string(out))
	})

	// REPLACE(s, old, new) replaces every occurrence of old with new.
	Register("REPLACE", CategoryString, func(a []stvalue.Value) stvalue.Value {
		s := stvalue.ToString(arg(a, 0))
		old := stvalue.ToString(arg(a, 1))
		nw := stvalue.ToString(arg(a, 2))
		return stvalue.NewString(strings.ReplaceAll(s, old, nw))
	})
}
