// Package store implements the simulation store (spec.md §3.2): typed
// mutable state for scalars, function-block instances, and arrays, plus
// the primitive mutators the evaluator, executor, and function-block
// handler operate through.
//
// Grounded on CWBudde-go-dws's internal/interp/runtime/environment.go
// (a struct of disjoint maps with Get/Set-per-kind methods); here the
// maps are split per value kind instead of per lexical scope, since the
// spec calls for probing "booleans -> integers -> reals -> times ->
// strings" by presence (spec.md §4.2), not for nested lexical scoping.
package store

import "github.com/golang-plc/stcore/internal/typesystem"

// TimerKind distinguishes the three timer function blocks (spec.md §4.4).
type TimerKind int

const (
	TON TimerKind = iota
	TOF
	TP
)

// Timer is the shared state record for TON/TOF/TP (spec.md §3.2).
type Timer struct {
	IN      bool
	PT      int64
	Q       bool
	ET      int64
	Running bool
	Kind    TimerKind
}

// Counter is the shared state record for CTU/CTD/CTUD (spec.md §3.2).
type Counter struct {
	CU, CD, R, LD bool
	PV            int64
	QU, QD        bool
	CV            int64
}

// EdgeDetector is the state record for R_TRIG/F_TRIG (spec.md §3.2).
type EdgeDetector struct {
	CLK bool
	Q   bool
	M   bool // memorized previous sample
}

// Bistable is the state record for SR/RS (spec.md §3.2).
type Bistable struct {
	Q1 bool
}

// Store holds every disjoint mapping named in spec.md §3.2.
type Store struct {
	booleans map[string]bool
	integers map[string]int64
	reals    map[string]float64
	times    map[string]int64
	strings  map[string]string
	arrays   map[string][]Cell

	timers    map[string]*Timer
	counters  map[string]*Counter
	edges     map[string]*EdgeDetector
	bistables map[string]*Bistable

	// ScanTime is the nominal elapsed-time delta (ms) applied to timers
	// each scan (spec.md §3.2, §4.5). It is independent of wall-clock
	// pacing; the caller drives scans on any cadence.
	ScanTime int64
}

// Cell is one array element's raw storage, kept untyped at the store
// layer (the evaluator knows the element DeclaredType via the type
// registry and coerces accordingly on write).
type Cell struct {
	Bool bool
	Int  int64
	Real float64
	Time int64
	Str  string
}

// New creates an empty store with the given nominal scan period.
func New(scanTimeMs int64) *Store {
	return &Store{
		booleans:  make(map[string]bool),
		integers:  make(map[string]int64),
		reals:     make(map[string]float64),
		times:     make(map[string]int64),
		strings:   make(map[string]string),
		arrays:    make(map[string][]Cell),
		timers:    make(map[string]*Timer),
		counters:  make(map[string]*Counter),
		edges:     make(map[string]*EdgeDetector),
		bistables: make(map[string]*Bistable),
		ScanTime:  scanTimeMs,
	}
}

func key(name string) string { return typesystem.Normalize(name) }
