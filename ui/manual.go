package ui

import (
	"sort"
	"time"
)

// ManualScheduler is a Scheduler on virtual time. Nothing fires until
// Advance is called, which makes controller timing fully deterministic.
type ManualScheduler struct {
	now     time.Duration
	seq     int
	pending []*manualTimer
}

type manualTimer struct {
	at        time.Duration
	seq       int
	period    time.Duration
	f         func()
	cancelled bool
}

// NewManualScheduler returns a scheduler whose clock starts at zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// Now returns the virtual time elapsed since creation.
func (m *ManualScheduler) Now() time.Duration {
	return m.now
}

// AfterFunc schedules f at Now()+d.
func (m *ManualScheduler) AfterFunc(d time.Duration, f func()) func() {
	return m.add(d, 0, f)
}

// Every schedules f at Now()+d, Now()+2d, ...
func (m *ManualScheduler) Every(d time.Duration, f func()) func() {
	if d <= 0 {
		panic("ui: non-positive interval")
	}
	return m.add(d, d, f)
}

func (m *ManualScheduler) add(d, period time.Duration, f func()) func() {
	m.seq++
	t := &manualTimer{at: m.now + d, seq: m.seq, period: period, f: f}
	m.pending = append(m.pending, t)
	return func() { t.cancelled = true }
}

// Pending returns the number of live timers.
func (m *ManualScheduler) Pending() int {
	n := 0
	for _, t := range m.pending {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// Advance moves the clock forward by d, firing every timer that falls due in
// schedule order. Timers scheduled by callbacks fire too if they fall inside
// the window.
func (m *ManualScheduler) Advance(d time.Duration) {
	target := m.now + d
	for {
		t := m.next(target)
		if t == nil {
			break
		}
		m.now = t.at
		if t.period > 0 {
			t.at += t.period
		} else {
			t.cancelled = true
		}
		t.f()
	}
	m.now = target
	m.compact()
}

func (m *ManualScheduler) next(limit time.Duration) *manualTimer {
	m.compact()
	sort.SliceStable(m.pending, func(i, j int) bool {
		if m.pending[i].at != m.pending[j].at {
			return m.pending[i].at < m.pending[j].at
		}
		return m.pending[i].seq < m.pending[j].seq
	})
	if len(m.pending) == 0 || m.pending[0].at > limit {
		return nil
	}
	return m.pending[0]
}

func (m *ManualScheduler) compact() {
	kept := m.pending[:0]
	for _, t := range m.pending {
		if !t.cancelled {
			kept = append(kept, t)
		}
	}
	m.pending = kept
}
