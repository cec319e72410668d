package ui

// ScrollLock is the page-wide scroll lock shared by the opening gate and the
// mobile menu. It is reference counted: the page scrolls again only when every
// holder has released it.
type ScrollLock struct {
	holders  int
	onChange func(locked bool)
}

// NewScrollLock returns an unlocked lock. onChange, if non-nil, is called
// whenever the locked state flips.
func NewScrollLock(onChange func(locked bool)) *ScrollLock {
	return &ScrollLock{onChange: onChange}
}

// Acquire adds a holder and returns its release func. Releasing twice has no
// further effect, so a holder can never drop someone else's lock.
func (l *ScrollLock) Acquire() (release func()) {
	l.holders++
	if l.holders == 1 {
		l.notify()
	}
	released := false
	return func() {
		if released {
			return
		}
		released = true
		l.holders--
		if l.holders == 0 {
			l.notify()
		}
	}
}

// Locked reports whether any holder is active.
func (l *ScrollLock) Locked() bool {
	return l.holders > 0
}

// Holders returns the number of active holders.
func (l *ScrollLock) Holders() int {
	return l.holders
}

func (l *ScrollLock) notify() {
	if l.onChange != nil {
		l.onChange(l.Locked())
	}
}
