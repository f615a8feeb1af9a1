package junction

import (
	"testing"

	"github.com/vovakirdan/tui-junction/internal/config"
	"github.com/vovakirdan/tui-junction/internal/paths"
)

func TestCrashTimeline(t *testing.T) {
	tr, _ := newTestTraffic(1)
	a := place(tr, paths.East, 0, pt(300, 300), 0)
	b := place(tr, paths.North, 0, pt(300, 300), 0)

	c := NewCrashSequencer(config.DefaultJunctionConfig().Crash)
	c.Trigger(1000, a, b)

	if !a.Crashed || !b.Crashed {
		t.Fatal("Trigger should mark both vehicles crashed")
	}
	if !c.Active() || c.Phase() != PhaseFrozen {
		t.Fatalf("phase after trigger = %s, expected frozen", c.Phase())
	}

	steps := []struct {
		now     float64
		cleared int
		phase   CrashPhase
	}{
		{3000, 0, PhaseFrozen},
		{5999, 0, PhaseFrozen},
		{6000, 0, PhaseFlickering},
		{7499, 0, PhaseFlickering},
		{7500, 2, PhaseRecovering},
	}
	for _, s := range steps {
		got := c.Update(s.now)
		if len(got) != s.cleared {
			t.Errorf("Update(%f) cleared %d vehicles, expected %d", s.now, len(got), s.cleared)
		}
		if c.Phase() != s.phase {
			t.Errorf("phase at %f = %s, expected %s", s.now, c.Phase(), s.phase)
		}
	}

	if c.Active() {
		t.Error("crash should be inactive once cleared")
	}
	if c.UpdateRecovery(8999) {
		t.Error("recovery should still be running")
	}
	if p := c.RecoveryProgress(8250); p != 0.5 {
		t.Errorf("RecoveryProgress halfway = %f, expected 0.5", p)
	}
	if !c.UpdateRecovery(9000) {
		t.Error("recovery should finish after recovery_ms")
	}
	if c.Phase() != PhaseIdle {
		t.Errorf("phase after recovery = %s, expected idle", c.Phase())
	}
}

func TestCrashFlickerVisibility(t *testing.T) {
	c := NewCrashSequencer(config.DefaultJunctionConfig().Crash)
	c.Trigger(0)

	if !c.Visible(100) {
		t.Error("wreck should be visible while frozen")
	}

	c.Update(5000) // flicker starts

	tests := []struct {
		now     float64
		visible bool
	}{
		{5000, true},
		{5149, true},
		{5150, false},
		{5299, false},
		{5300, true},
		{5450, false},
	}
	for _, tc := range tests {
		if got := c.Visible(tc.now); got != tc.visible {
			t.Errorf("Visible(%f) = %v, expected %v", tc.now, got, tc.visible)
		}
	}
}

func TestCrashDuringRecovery(t *testing.T) {
	c := NewCrashSequencer(config.DefaultJunctionConfig().Crash)
	c.Trigger(0)
	c.Update(5000)
	c.Update(6500)
	if !c.Recovering() {
		t.Fatal("recovery should have started")
	}

	c.Trigger(7000)
	if c.Phase() != PhaseFrozen {
		t.Errorf("a new crash should outrank recovery, phase = %s", c.Phase())
	}
	if !c.UpdateRecovery(8000) {
		t.Error("the earlier recovery still ends on schedule")
	}
	if !c.Active() {
		t.Error("the new crash should remain active")
	}
}
