package ui

import "time"

// Timing holds every duration the page controllers depend on.
type Timing struct {
	GateFallback  time.Duration `koanf:"gate_fallback"`
	GateDelay     time.Duration `koanf:"gate_delay"`
	GateDuration  time.Duration `koanf:"gate_duration"`
	SlideInterval time.Duration `koanf:"slide_interval"`
}

// DefaultTiming matches the gate and slider animations shipped with the site.
func DefaultTiming() Timing {
	return Timing{
		GateFallback:  1500 * time.Millisecond,
		GateDelay:     500 * time.Millisecond,
		GateDuration:  1500 * time.Millisecond,
		SlideInterval: 5 * time.Second,
	}
}

// WithDefaults fills zero fields from DefaultTiming.
func (t Timing) WithDefaults() Timing {
	d := DefaultTiming()
	if t.GateFallback <= 0 {
		t.GateFallback = d.GateFallback
	}
	if t.GateDelay <= 0 {
		t.GateDelay = d.GateDelay
	}
	if t.GateDuration <= 0 {
		t.GateDuration = d.GateDuration
	}
	if t.SlideInterval <= 0 {
		t.SlideInterval = d.SlideInterval
	}
	return t
}

// NavDelay is the landing-page delay before the nav bar turns horizontal.
// It is the gate's panel delay so both start moving together.
func (t Timing) NavDelay() time.Duration {
	return t.GateDelay
}

// RevealBound is the latest moment the gate can be open when the gate image
// never reports ready.
func (t Timing) RevealBound() time.Duration {
	return t.GateFallback + t.GateDelay + t.GateDuration
}
