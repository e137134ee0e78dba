package store

// The Peek* accessors probe for an existing FB instance without the
// lazy-creation side effect GetTimer/GetCounter/... have — used by the
// evaluator's member-access reads (spec.md §4.2), which must return a
// type-appropriate miss value rather than silently materializing an
// instance just because it was read, e.g. before it is ever named by an
// FB call.

func (s *Store) PeekTimer(name string) (*Timer, bool) {
	t, ok := s.timers[key(name)]
	return t, ok
}

func (s *Store) PeekCounter(name string) (*Counter, bool) {
	c, ok := s.counters[key(name)]
	return c, ok
}

func (s *Store) PeekEdgeDetector(name string) (*EdgeDetector, bool) {
	e, ok := s.edges[key(name)]
	return e, ok
}

func (s *Store) PeekBistable(name string) (*Bistable, bool) {
	b, ok := s.bistables[key(name)]
	return b, ok
}

// AllTimerNames returns every declared timer instance name, used by the
// runner's per-scan advance pass (spec.md §4.5 step 1).
func (s *Store) AllTimerNames() []string {
	names := make([]string, 0, len(s.timers))
	for name := range s.timers {
		names = append(names, name)
	}
	return names
}
