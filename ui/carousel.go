package ui

// Cycle is a cyclic index into a fixed-length sequence. The zero value is an
// empty cycle on which every move is a no-op.
type Cycle struct {
	index int
	n     int
}

// NewCycle returns a cycle over n items starting at index 0.
func NewCycle(n int) *Cycle {
	if n < 0 {
		n = 0
	}
	return &Cycle{n: n}
}

// Index returns the active index. It is 0 for an empty cycle.
func (c *Cycle) Index() int {
	return c.index
}

// Len returns the number of items.
func (c *Cycle) Len() int {
	return c.n
}

// Next advances by one, wrapping to 0 after the last item.
func (c *Cycle) Next() {
	if c.n == 0 {
		return
	}
	c.index = (c.index + 1) % c.n
}

// Prev steps back by one, wrapping to the last item before 0.
func (c *Cycle) Prev() {
	if c.n == 0 {
		return
	}
	c.index = (c.index - 1 + c.n) % c.n
}

// Select jumps to i. It reports false and leaves the index unchanged when i
// is out of range.
func (c *Cycle) Select(i int) bool {
	if i < 0 || i >= c.n {
		return false
	}
	c.index = i
	return true
}

// NextIndex is the index Next would move to, without moving.
func (c *Cycle) NextIndex() int {
	if c.n == 0 {
		return 0
	}
	return (c.index + 1) % c.n
}

// PrevIndex is the index Prev would move to, without moving.
func (c *Cycle) PrevIndex() int {
	if c.n == 0 {
		return 0
	}
	return (c.index - 1 + c.n) % c.n
}

// Slider is an autoplaying Cycle. Every interval the active slide advances
// by one. Picking a slide by hand moves the index but leaves the autoplay
// ticker on its original schedule, so the next tick may come sooner than a
// full interval after the pick.
type Slider struct {
	Cycle
	scope    *Scope
	onChange func(index int)
}

// NewSlider mounts an autoplay slider over n slides in parent. With fewer
// than two slides there is nothing to rotate and no ticker is started.
func NewSlider(parent *Scope, n int, timing Timing, onChange func(index int)) *Slider {
	s := &Slider{
		Cycle:    *NewCycle(n),
		scope:    parent.Child(),
		onChange: onChange,
	}
	if n > 1 {
		s.scope.Every(timing.WithDefaults().SlideInterval, s.tick)
	}
	return s
}

func (s *Slider) tick() {
	s.Next()
	s.changed()
}

// Select jumps to slide i without touching the autoplay ticker.
func (s *Slider) Select(i int) bool {
	if s.scope.Disposed() || !s.Cycle.Select(i) {
		return false
	}
	s.changed()
	return true
}

func (s *Slider) changed() {
	if s.onChange != nil {
		s.onChange(s.Index())
	}
}

// Dispose stops autoplay.
func (s *Slider) Dispose() {
	s.scope.Dispose()
}
