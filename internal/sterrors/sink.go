package sterrors

import (
	"fmt"
	"io"
	"sync/atomic"
)

// Sink receives recoverable runtime warnings (spec.md §7): assignment
// to a CONSTANT, FOR with step 0, iteration cap exceeded, descending
// CASE range, unknown function name, unsupported assignment value
// type. A scan that hits a warning logs and proceeds.
type Sink interface {
	Warn(format string, args ...any)
}

// WriterSink writes warnings to an io.Writer, gated by an enabled flag
// (atomic so it can be toggled from a concurrent caller without a
// race), mirroring rob-gra-go-iecp5/clog's level-gated LogProvider.
type WriterSink struct {
	w       io.Writer
	prefix  string
	enabled uint32
}

// NewWriterSink creates a Sink writing to w, enabled by default.
func NewWriterSink(w io.Writer, prefix string) *WriterSink {
	s := &WriterSink{w: w, prefix: prefix}
	s.SetEnabled(true)
	return s
}

// SetEnabled toggles whether Warn actually writes.
func (s *WriterSink) SetEnabled(enabled bool) {
	if enabled {
		atomic.StoreUint32(&s.enabled, 1)
	} else {
		atomic.StoreUint32(&s.enabled, 0)
	}
}

func (s *WriterSink) Warn(format string, args ...any) {
	if atomic.LoadUint32(&s.enabled) == 0 {
		return
	}
	fmt.Fprintf(s.w, "%sWARN: %s\n", s.prefix, fmt.Sprintf(format, args...))
}

// RecordingSink accumulates warnings in memory; used by tests to assert
// that a particular warning fired without depending on log text.
type RecordingSink struct {
	Messages []string
}

func (s *RecordingSink) Warn(format string, args ...any) {
	s.Messages = append(s.Messages, fmt.Sprintf(format, args...))
}

// NopSink discards every warning.
type NopSink struct{}

func (NopSink) Warn(string, ...any) {}
