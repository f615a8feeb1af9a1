package junction

import "github.com/vovakirdan/tui-junction/internal/config"

// CrashPhase is the visible stage of a crash.
type CrashPhase int

const (
	PhaseIdle CrashPhase = iota
	PhaseFrozen
	PhaseFlickering
	PhaseRecovering
)

func (p CrashPhase) String() string {
	switch p {
	case PhaseFrozen:
		return "frozen"
	case PhaseFlickering:
		return "flickering"
	case PhaseRecovering:
		return "recovering"
	default:
		return "idle"
	}
}

// CrashSequencer runs the timeline that follows a collision:
// frozen, then flickering, then the wreck is cleared and the screen recovers.
// All times are game-clock milliseconds.
type CrashSequencer struct {
	cfg config.CrashConfig

	active     bool
	vehicles   []*Vehicle
	crashAt    float64
	flickering bool
	flickerAt  float64

	// Recovery runs independently of the active crash; a new crash can be
	// detected before it finishes.
	recovering bool
	recoveryAt float64
}

// NewCrashSequencer creates an idle sequencer.
func NewCrashSequencer(cfg config.CrashConfig) *CrashSequencer {
	return &CrashSequencer{cfg: cfg}
}

// Reset returns the sequencer to idle.
func (c *CrashSequencer) Reset() {
	*c = CrashSequencer{cfg: c.cfg}
}

// Trigger starts a crash involving the given vehicles.
func (c *CrashSequencer) Trigger(now float64, vehicles ...*Vehicle) {
	for _, v := range vehicles {
		v.Crashed = true
	}
	c.active = true
	c.vehicles = append(c.vehicles[:0], vehicles...)
	c.crashAt = now
	c.flickering = false
}

// Update advances the crash timeline. It returns the wrecked vehicles once
// flickering has run its course; the caller removes them from the map.
func (c *CrashSequencer) Update(now float64) []*Vehicle {
	if !c.active {
		return nil
	}

	if !c.flickering && now-c.crashAt >= float64(c.cfg.FreezeMs) {
		c.flickering = true
		c.flickerAt = now
	}
	if !c.flickering || now-c.flickerAt < float64(c.cfg.FlickerMs) {
		return nil
	}

	cleared := c.vehicles
	c.vehicles = nil
	c.active = false
	c.flickering = false
	if !c.recovering {
		c.recovering = true
		c.recoveryAt = now
	}
	return cleared
}

// UpdateRecovery ends the recovery phase once it has lasted long enough.
// It reports whether recovery finished on this call.
func (c *CrashSequencer) UpdateRecovery(now float64) bool {
	if !c.recovering || now-c.recoveryAt < float64(c.cfg.RecoveryMs) {
		return false
	}
	c.recovering = false
	return true
}

// Active reports whether a crash is holding traffic.
func (c *CrashSequencer) Active() bool {
	return c.active
}

// Recovering reports whether the post-crash fade is running.
func (c *CrashSequencer) Recovering() bool {
	return c.recovering
}

// Phase returns the current stage. An active crash outranks recovery.
func (c *CrashSequencer) Phase() CrashPhase {
	switch {
	case c.active && c.flickering:
		return PhaseFlickering
	case c.active:
		return PhaseFrozen
	case c.recovering:
		return PhaseRecovering
	default:
		return PhaseIdle
	}
}

// Vehicles returns the vehicles involved in the active crash.
func (c *CrashSequencer) Vehicles() []*Vehicle {
	return c.vehicles
}

// Visible reports whether wrecked vehicles are drawn bright at now. While
// flickering they are bright on even cycles and dim on odd ones.
func (c *CrashSequencer) Visible(now float64) bool {
	if !c.active || !c.flickering || c.cfg.FlickerIntervalMs <= 0 {
		return true
	}
	cycle := int((now - c.flickerAt) / float64(c.cfg.FlickerIntervalMs))
	return cycle%2 == 0
}

// RecoveryProgress returns how far recovery has run, from 0 to 1.
func (c *CrashSequencer) RecoveryProgress(now float64) float64 {
	if !c.recovering || c.cfg.RecoveryMs <= 0 {
		return 1
	}
	return min((now-c.recoveryAt)/float64(c.cfg.RecoveryMs), 1)
}
