// Package ui implements the page-level state machines of the site: the
// opening gate, the navigation bar, the hero slider, click carousels and
// filter grids.
//
// Controllers are not safe for concurrent use. Every call into a controller,
// and every timer callback it schedules, runs on a single event loop: either a
// Loop driven by real time or a ManualScheduler driven by a test.
package ui

import (
	"context"
	"sync"
	"time"
)

// Scheduler runs callbacks after a delay or on a fixed interval. Callbacks
// always run on the scheduler's loop. The returned cancel funcs must also be
// called on the loop; calling them more than once is harmless.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) (cancel func())
	Every(d time.Duration, f func()) (cancel func())
}

const loopBacklog = 64

// Loop is a single-goroutine event loop. Work is posted with Post and
// executed in order by Run. Timers started with AfterFunc and Every post
// their callbacks into the same loop.
type Loop struct {
	tasks    chan func()
	done     chan struct{}
	stopOnce sync.Once
}

// NewLoop returns a loop that is ready to accept work. Nothing executes until
// Run is called.
func NewLoop() *Loop {
	return &Loop{
		tasks: make(chan func(), loopBacklog),
		done:  make(chan struct{}),
	}
}

// Post queues f for execution on the loop. It reports false if the loop has
// already stopped, in which case f is dropped.
func (l *Loop) Post(f func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.tasks <- f:
		return true
	case <-l.done:
		return false
	}
}

// Run executes posted work until ctx is cancelled. Work still queued when
// ctx ends is discarded.
func (l *Loop) Run(ctx context.Context) {
	defer l.stop()
	for {
		select {
		case <-ctx.Done():
			return
		case f := <-l.tasks:
			f()
		}
	}
}

// Done is closed once Run has returned.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

func (l *Loop) stop() {
	l.stopOnce.Do(func() { close(l.done) })
}

// AfterFunc runs f on the loop once d has elapsed.
func (l *Loop) AfterFunc(d time.Duration, f func()) func() {
	cancelled := false
	t := time.AfterFunc(d, func() {
		l.Post(func() {
			if !cancelled {
				cancelled = true
				f()
			}
		})
	})
	return func() {
		cancelled = true
		t.Stop()
	}
}

// Every runs f on the loop each time d elapses. Ticks keep their phase: work
// done in between does not shift them, and ticks missed while the loop was
// busy are skipped. Each tick is armed only after the previous one has run,
// so a loop that stops or never runs leaves nothing behind.
func (l *Loop) Every(d time.Duration, f func()) func() {
	if d <= 0 {
		panic("ui: Every needs a positive interval")
	}
	cancelled := false
	next := time.Now().Add(d)
	var t *time.Timer
	var arm func()
	arm = func() {
		t = time.AfterFunc(time.Until(next), func() {
			l.Post(func() {
				if cancelled {
					return
				}
				f()
				if cancelled {
					return
				}
				next = next.Add(d)
				if now := time.Now(); !next.After(now) {
					next = next.Add((now.Sub(next)/d + 1) * d)
				}
				arm()
			})
		})
	}
	arm()
	return func() {
		cancelled = true
		t.Stop()
	}
}
