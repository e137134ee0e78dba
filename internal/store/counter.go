package store

// InitCounter creates a counter instance with the given preset value
// (spec.md §6).
func (s *Store) InitCounter(name string, pv int64) {
	s.counters[key(name)] = &Counter{PV: pv}
}

// GetCounter returns the counter instance, lazily creating one if it
// doesn't exist yet (spec.md §3.2 lifecycle).
func (s *Store) GetCounter(name string) *Counter {
	k := key(name)
	c, ok := s.counters[k]
	if !ok {
		c = &Counter{}
		s.counters[k] = c
	}
	return c
}

// SetCounterPV allows PV to change between scans (spec.md §4.4).
func (s *Store) SetCounterPV(name string, pv int64) {
	c := s.GetCounter(name)
	c.PV = pv
	c.refreshDone()
}

// PulseCountUp increments CV by one. There is no clamp here: counting
// up never drives CV negative, so invariant c (spec.md §3.2) is kept by
// the zero clamp in PulseCountDown alone.
func (s *Store) PulseCountUp(name string) {
	c := s.GetCounter(name)
	c.CV++
	c.refreshDone()
}

// PulseCountDown decrements CV, clamped at zero (spec.md §4.4).
func (s *Store) PulseCountDown(name string) {
	c := s.GetCounter(name)
	if c.CV > 0 {
		c.CV--
	}
	c.refreshDone()
}

// SetCounterInputs records the raw CU/CD/R/LD input levels for field
// reads (e.g. `c.CU`), independent of the edge-triggered CV math.
func (s *Store) SetCounterInputs(name string, cu, cd, r, ld bool) {
	c := s.GetCounter(name)
	c.CU, c.CD, c.R, c.LD = cu, cd, r, ld
}

// ResetCounter resets CV to zero (spec.md §4.4, the R input).
func (s *Store) ResetCounter(name string) {
	c := s.GetCounter(name)
	c.CV = 0
	c.refreshDone()
}

func (c *Counter) refreshDone() {
	c.QU = c.CV >= c.PV
	c.QD = c.CV <= 0
}
