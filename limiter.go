package showroom

import (
	"slices"
	"sync"
	"time"
)

// LookupLimiter rate-limits failed certificate lookups per IP address.
type LookupLimiter struct {
	mu       sync.Mutex
	attempts map[string][]time.Time
	max      int
	window   time.Duration
	now      func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// NewLookupLimiter creates a LookupLimiter that allows max misses per window.
// Call Close to stop its cleanup goroutine.
func NewLookupLimiter(max int, window time.Duration) *LookupLimiter {
	if window <= 0 {
		window = time.Minute
	}
	l := &LookupLimiter{
		attempts: make(map[string][]time.Time),
		max:      max,
		window:   window,
		now:      time.Now,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go l.cleanup()
	return l
}

func (l *LookupLimiter) cleanup() {
	defer close(l.done)
	ticker := time.NewTicker(l.window)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.sweep()
		case <-l.stop:
			return
		}
	}
}

func (l *LookupLimiter) sweep() {
	cutoff := l.now().Add(-l.window)
	l.mu.Lock()
	defer l.mu.Unlock()
	for ip, hits := range l.attempts {
		kept := prune(hits, cutoff)
		if len(kept) == 0 {
			delete(l.attempts, ip)
		} else {
			l.attempts[ip] = kept
		}
	}
}

func prune(hits []time.Time, cutoff time.Time) []time.Time {
	kept := hits[:0]
	for _, t := range hits {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	return kept
}

// Allow checks if the IP has not exceeded the rate limit and records the attempt.
func (l *LookupLimiter) Allow(ip string) bool {
	_, ok := l.Reserve(ip)
	return ok
}

// Reserve claims one attempt for ip if it is under the limit. The check and
// the claim happen under one lock, so concurrent lookups from the same IP
// cannot all slip past a single remaining slot. Calling refund gives the
// attempt back; it is a no-op after the first call.
func (l *LookupLimiter) Reserve(ip string) (refund func(), ok bool) {
	now := l.now()
	cutoff := now.Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	kept := prune(l.attempts[ip], cutoff)
	if len(kept) >= l.max {
		l.attempts[ip] = kept
		return func() {}, false
	}
	l.attempts[ip] = append(kept, now)

	var once sync.Once
	return func() {
		once.Do(func() { l.release(ip, now) })
	}, true
}

func (l *LookupLimiter) release(ip string, at time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	hits := l.attempts[ip]
	i := slices.IndexFunc(hits, at.Equal)
	if i < 0 {
		return
	}
	hits = slices.Delete(hits, i, i+1)
	if len(hits) == 0 {
		delete(l.attempts, ip)
	} else {
		l.attempts[ip] = hits
	}
}

// Check returns true if the IP has not exceeded the rate limit.
// It does not record an attempt; call Record on a miss.
func (l *LookupLimiter) Check(ip string) bool {
	cutoff := l.now().Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	kept := prune(l.attempts[ip], cutoff)
	if len(kept) == 0 {
		delete(l.attempts, ip)
		return true
	}
	l.attempts[ip] = kept
	return len(kept) < l.max
}

// Record registers a failed lookup for the given IP.
func (l *LookupLimiter) Record(ip string) {
	l.mu.Lock()
	l.attempts[ip] = append(l.attempts[ip], l.now())
	l.mu.Unlock()
}

// Close stops the cleanup goroutine and waits for it to exit.
func (l *LookupLimiter) Close() {
	l.stopOnce.Do(func() { close(l.stop) })
	<-l.done
}
