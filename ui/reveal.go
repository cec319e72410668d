package ui

// RevealState is the opening gate's progress. It only moves forward.
type RevealState int

const (
	RevealClosed RevealState = iota
	RevealOpening
	RevealOpen
)

func (s RevealState) String() string {
	switch s {
	case RevealClosed:
		return "closed"
	case RevealOpening:
		return "opening"
	case RevealOpen:
		return "open"
	default:
		return "unknown"
	}
}

// Reveal sequences the full-screen opening gate. While the gate is up the
// page cannot scroll. The gate opens once its image reports ready or the
// fallback timer fires, whichever comes first; the panels then wait
// GateDelay, slide apart for GateDuration and the gate unmounts.
type Reveal struct {
	scope    *Scope
	timing   Timing
	state    RevealState
	ready    bool
	release  func()
	fallback func()
	onChange func(RevealState)
}

// NewReveal mounts the gate inside parent. It locks scrolling and starts the
// fallback timer immediately.
func NewReveal(parent *Scope, lock *ScrollLock, timing Timing, onChange func(RevealState)) *Reveal {
	r := &Reveal{
		scope:    parent.Child(),
		timing:   timing.WithDefaults(),
		onChange: onChange,
	}
	r.release = lock.Acquire()
	r.scope.OnDispose(r.release)
	r.fallback = r.scope.After(r.timing.GateFallback, r.markReady)
	return r
}

// Ready records that the gate image has loaded. Only the first signal, from
// either the image or the fallback timer, has an effect.
func (r *Reveal) Ready() {
	r.markReady()
}

func (r *Reveal) markReady() {
	if r.ready || r.scope.Disposed() {
		return
	}
	r.ready = true
	r.fallback()
	r.set(RevealOpening)
	r.scope.After(r.timing.GateDelay+r.timing.GateDuration, r.finish)
}

func (r *Reveal) finish() {
	r.set(RevealOpen)
	r.scope.Dispose()
}

func (r *Reveal) set(s RevealState) {
	if s <= r.state {
		return
	}
	r.state = s
	if r.onChange != nil {
		r.onChange(s)
	}
}

// State returns the current gate state.
func (r *Reveal) State() RevealState {
	return r.state
}

// Mounted reports whether the gate is still part of the page.
func (r *Reveal) Mounted() bool {
	return !r.scope.Disposed()
}

// Dispose unmounts the gate early, cancelling its timers and releasing the
// scroll lock. The state is left where it was.
func (r *Reveal) Dispose() {
	r.scope.Dispose()
}
