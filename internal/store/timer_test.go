package store

import "testing"

// TestTONBoundary reproduces the seed scenario of a TON with PT=500ms
// and a 100ms scan time: a rising edge is applied on one scan, then
// the timer is advanced for five further scans, landing exactly on
// ET == PT with Q latched true.
func TestTONBoundary(t *testing.T) {
	s := New(100)
	s.InitTimer("T1", 500, TON)

	s.ApplyTimerEdge("T1", true) // rising edge: Running starts, ET=0

	for i := 0; i < 5; i++ {
		s.UpdateTimer("T1", 100)
	}

	timer := s.GetTimer("T1")
	if timer.ET != 500 {
		t.Errorf("ET = %d, want 500", timer.ET)
	}
	if !timer.Q {
		t.Error("Q = false, want true once ET reaches PT")
	}
	if timer.Running {
		t.Error("Running = true, want false once ET reaches PT (invariant: Q && Running never both true)")
	}
}

func TestTONFallsBackWhenInputDrops(t *testing.T) {
	s := New(100)
	s.InitTimer("T1", 500, TON)
	s.ApplyTimerEdge("T1", true)
	s.UpdateTimer("T1", 100)

	s.ApplyTimerEdge("T1", false)

	timer := s.GetTimer("T1")
	if timer.Q || timer.Running || timer.ET != 0 {
		t.Errorf("after IN=false: Q=%v Running=%v ET=%d, want false/false/0", timer.Q, timer.Running, timer.ET)
	}
}

func TestTOFFollowsInputImmediately(t *testing.T) {
	s := New(100)
	s.InitTimer("T1", 500, TOF)

	s.ApplyTimerEdge("T1", true)
	timer := s.GetTimer("T1")
	if !timer.Q {
		t.Error("TOF: Q should follow IN upward immediately on the rising edge")
	}

	s.ApplyTimerEdge("T1", false)
	timer = s.GetTimer("T1")
	if !timer.Q || !timer.Running {
		t.Error("TOF: Q should remain true and Running should start on the falling edge")
	}

	for i := 0; i < 5; i++ {
		s.UpdateTimer("T1", 100)
	}
	timer = s.GetTimer("T1")
	if timer.Q {
		t.Error("TOF: Q should drop to false once ET reaches PT after the falling edge")
	}
}

func TestTPRestartsAfterPulseCompletes(t *testing.T) {
	s := New(100)
	s.InitTimer("T1", 300, TP)

	s.ApplyTimerEdge("T1", true)
	if !s.GetTimer("T1").Q {
		t.Fatal("TP: Q should go true on the rising edge")
	}

	for i := 0; i < 3; i++ {
		s.UpdateTimer("T1", 100)
	}
	if s.GetTimer("T1").Q {
		t.Fatal("TP: Q should drop to false once the pulse completes")
	}

	// A second rising edge, after the pulse has fully completed, must
	// retrigger the pulse rather than being permanently blocked.
	s.ApplyTimerEdge("T1", false)
	s.ApplyTimerEdge("T1", true)
	if !s.GetTimer("T1").Q {
		t.Error("TP: a second rising edge after completion should retrigger the pulse")
	}
}

func TestPTZeroLatchesImmediately(t *testing.T) {
	s := New(100)
	s.InitTimer("T1", 0, TON)
	s.ApplyTimerEdge("T1", true)
	timer := s.GetTimer("T1")
	if !timer.Q || timer.Running {
		t.Errorf("TON with PT=0: Q=%v Running=%v, want true/false immediately", timer.Q, timer.Running)
	}
}
