package ui

import "time"

// Scope ties timers and cleanup work to a component's lifetime. Disposing a
// scope cancels every timer started through it and runs OnDispose hooks in
// reverse order of registration.
type Scope struct {
	sched    Scheduler
	hooks    []func()
	disposed bool
}

// NewScope returns a root scope that schedules on s.
func NewScope(s Scheduler) *Scope {
	return &Scope{sched: s}
}

// Child returns a scope that is disposed together with s, or earlier.
func (s *Scope) Child() *Scope {
	c := &Scope{sched: s.sched}
	if s.disposed {
		c.disposed = true
		return c
	}
	s.OnDispose(c.Dispose)
	return c
}

// After runs f once d has elapsed, unless the scope is disposed first.
func (s *Scope) After(d time.Duration, f func()) (cancel func()) {
	if s.disposed {
		return func() {}
	}
	stop := s.sched.AfterFunc(d, f)
	s.OnDispose(stop)
	return stop
}

// Every runs f each time d elapses until the scope is disposed.
func (s *Scope) Every(d time.Duration, f func()) (cancel func()) {
	if s.disposed {
		return func() {}
	}
	stop := s.sched.Every(d, f)
	s.OnDispose(stop)
	return stop
}

// OnDispose registers f to run when the scope is disposed. On an already
// disposed scope f runs immediately.
func (s *Scope) OnDispose(f func()) {
	if s.disposed {
		f()
		return
	}
	s.hooks = append(s.hooks, f)
}

// Dispose tears the scope down. It is idempotent.
func (s *Scope) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	for i := len(s.hooks) - 1; i >= 0; i-- {
		s.hooks[i]()
	}
	s.hooks = nil
}

// Disposed reports whether Dispose has run.
func (s *Scope) Disposed() bool {
	return s.disposed
}
