package store

// InitTimer creates a timer instance with the given preset (spec.md §6).
func (s *Store) InitTimer(name string, pt int64, kind TimerKind) {
	s.timers[key(name)] = &Timer{PT: pt, Kind: kind}
}

// GetTimer returns the timer instance, creating a default TON one if it
// doesn't exist yet (spec.md §3.2 lifecycle: "created... or lazily when
// a FB call first names them").
func (s *Store) GetTimer(name string) *Timer {
	k := key(name)
	t, ok := s.timers[k]
	if !ok {
		t = &Timer{Kind: TON}
		s.timers[k] = t
	}
	return t
}

// SetTimerPT allows PT to change between scans (spec.md §4.4).
func (s *Store) SetTimerPT(name string, pt int64) {
	s.GetTimer(name).PT = pt
}

// UpdateTimer advances the named timer instance by delta milliseconds,
// applying the TON/TOF/TP elapsed-time math of spec.md §4.4. This is
// called once per timer per scan by the runner, strictly before
// statement execution (spec.md §4.5, §5): the effect of an edge
// detected during one scan's statement execution (ApplyTimerEdge)
// becomes visible through ET/Q during the *next* scan's UpdateTimer
// pass, except where spec.md calls for an immediate ("latches
// immediately" / "follows immediately") transition, which ApplyTimerEdge
// applies on the spot.
func (s *Store) UpdateTimer(name string, delta int64) {
	t := s.GetTimer(name)
	if !t.Running {
		return
	}
	t.ET += delta
	if t.ET < t.PT {
		if t.Kind == TP {
			t.Q = true
		}
		return
	}
	t.ET = t.PT
	t.Running = false
	switch t.Kind {
	case TON:
		t.Q = true
	case TOF:
		t.Q = false
	case TP:
		t.Q = false
	}
}

// ApplyTimerEdge reacts to the current IN level, called by the
// function-block handler during statement execution (spec.md §4.4's
// per-kind IN behavior). For TON, Q && Running is never true after an
// UpdateTimer return, because Running is cleared whenever Q is set
// true. TOF and TP keep Q true while Running: TOF during the off-delay
// after IN falls, TP for the length of the pulse.
func (s *Store) ApplyTimerEdge(name string, in bool) {
	t := s.GetTimer(name)
	prevIn := t.IN
	t.IN = in
	rising := in && !prevIn
	falling := !in && prevIn

	switch t.Kind {
	case TON:
		if rising {
			t.Running = true
			t.ET = 0
			if t.PT <= 0 {
				t.Q = true
				t.Running = false
			}
		}
		if !in {
			t.Q = false
			t.Running = false
			t.ET = 0
		}
	case TOF:
		if rising {
			// Q follows IN upward immediately (spec.md §4.4).
			t.Q = true
			t.Running = false
			t.ET = 0
		}
		if falling {
			t.Running = true
			t.ET = 0
			if t.PT <= 0 {
				t.Q = false
				t.Running = false
			}
		}
	case TP:
		if rising && !t.Running {
			t.Running = true
			t.ET = 0
			t.Q = true
			if t.PT <= 0 {
				t.Q = true
				t.Running = false
				t.ET = t.PT
			}
		}
	}
}
