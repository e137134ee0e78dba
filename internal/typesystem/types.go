// Package typesystem holds the DeclaredType tag, the type registry, the
// constant registry, and the function-block kind registry built by the
// variable initializer (spec.md §4.1) and consulted by the executor and
// function-block handler.
//
// Grounded on CWBudde-go-dws's internal/interp/types package (registry
// structs keyed by normalized name, built once and read many times).
package typesystem

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DeclaredType classifies a named variable at declaration (spec.md §3.1).
type DeclaredType int

const (
	Unknown DeclaredType = iota
	Bool
	Int
	Real
	Time
	String
	Timer
	Counter
	EdgeDetector
	Bistable
	Array
)

// FBKind names the specific function-block behavior an instance
// implements. Spec.md Design Notes §9 recommends carrying this on the
// registry when known, falling back to argument-signature dispatch
// (fbcore package) only for untyped calls.
type FBKind int

const (
	FBUnknown FBKind = iota
	FBTON
	FBTOF
	FBTP
	FBCTU
	FBCTD
	FBCTUD
	FBRTrig
	FBFTrig
	FBSR
	FBRS
)

var typeKeywords = map[string]DeclaredType{
	"BOOL":          Bool,
	"INT":           Int,
	"SINT":          Int,
	"DINT":          Int,
	"LINT":          Int,
	"USINT":         Int,
	"UINT":          Int,
	"UDINT":         Int,
	"ULINT":         Int,
	"BYTE":          Int,
	"WORD":          Int,
	"DWORD":         Int,
	"LWORD":         Int,
	"REAL":          Real,
	"LREAL":         Real,
	"TIME":          Time,
	"STRING":        String,
	"WSTRING":       String,
	"TIMER":         Timer,
	"TON":           Timer,
	"TOF":           Timer,
	"TP":            Timer,
	"COUNTER":       Counter,
	"CTU":           Counter,
	"CTD":           Counter,
	"CTUD":          Counter,
	"EDGE_DETECTOR": EdgeDetector,
	"R_TRIG":        EdgeDetector,
	"F_TRIG":        EdgeDetector,
	"BISTABLE":      Bistable,
	"SR":            Bistable,
	"RS":            Bistable,
	"ARRAY":         Array,
}

var fbKeywords = map[string]FBKind{
	"TON":    FBTON,
	"TOF":    FBTOF,
	"TP":     FBTP,
	"CTU":    FBCTU,
	"CTD":    FBCTD,
	"CTUD":   FBCTUD,
	"R_TRIG": FBRTrig,
	"F_TRIG": FBFTrig,
	"SR":     FBSR,
	"RS":     FBRS,
}

var caser = cases.Upper(language.Und)

// Normalize upper-cases an identifier for registry/store keys,
// resolving spec.md Design Notes §9's case-insensitivity open question
// in favor of normalizing at every boundary rather than storing
// verbatim (see DESIGN.md Open Question (c)).
func Normalize(name string) string {
	return caser.String(name)
}

// TypeForKeyword classifies a declared-type keyword, unknown keywords
// mapping to Unknown per spec.md §4.1.
func TypeForKeyword(keyword string) DeclaredType {
	if t, ok := typeKeywords[Normalize(keyword)]; ok {
		return t
	}
	return Unknown
}

// FBKindForKeyword returns the specific FB kind for a type keyword, or
// FBUnknown when the keyword doesn't name one.
func FBKindForKeyword(keyword string) FBKind {
	if k, ok := fbKeywords[Normalize(keyword)]; ok {
		return k
	}
	return FBUnknown
}
