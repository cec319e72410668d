package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageLandingLifecycle(t *testing.T) {
	sched := NewManualScheduler()
	timing := DefaultTiming()
	var snaps []Snapshot
	p := NewPage(sched, PageOptions{Route: "/", Landing: "/", Slides: 3, Timing: timing}, func(s Snapshot) {
		snaps = append(snaps, s)
	})

	initial := p.Snapshot()
	assert.Equal(t, Snapshot{
		Route:        "/",
		Reveal:       "closed",
		Gate:         true,
		Layout:       "vertical",
		ScrollLocked: true,
		Slides:       3,
	}, initial)
	assert.Empty(t, snaps, "mount must not emit")

	require.NoError(t, p.Handle(Event{Type: EventGateReady}))
	sched.Advance(timing.NavDelay())
	assert.Equal(t, "horizontal", p.Snapshot().Layout)

	sched.Advance(timing.GateDuration)
	final := p.Snapshot()
	assert.Equal(t, "open", final.Reveal)
	assert.False(t, final.Gate)
	assert.False(t, final.ScrollLocked)

	require.NoError(t, p.Handle(Event{Type: EventSlideSelect, Index: 2}))
	assert.Equal(t, 2, p.Snapshot().Slide)
	assert.NotEmpty(t, snaps)

	p.Dispose()
	assert.Zero(t, sched.Pending())
	n := len(snaps)
	sched.Advance(time.Minute)
	assert.Len(t, snaps, n)
}

func TestPageInnerRoute(t *testing.T) {
	sched := NewManualScheduler()
	p := NewPage(sched, PageOptions{Route: "/about", Landing: "/", Slides: 3}, nil)

	s := p.Snapshot()
	assert.Equal(t, "open", s.Reveal)
	assert.False(t, s.Gate)
	assert.Equal(t, "horizontal", s.Layout)
	assert.Zero(t, s.Slides)
	assert.Zero(t, sched.Pending())

	require.NoError(t, p.Handle(Event{Type: EventGateReady}), "gate-ready without a gate is a no-op")
	assert.Error(t, p.Handle(Event{Type: EventSlideSelect, Index: 0}))
}

func TestPageMenuLocksScroll(t *testing.T) {
	sched := NewManualScheduler()
	var last Snapshot
	p := NewPage(sched, PageOptions{Route: "/team", Landing: "/"}, func(s Snapshot) { last = s })

	require.NoError(t, p.Handle(Event{Type: EventMenuToggle}))
	assert.True(t, last.MenuOpen)
	assert.True(t, last.ScrollLocked)

	require.NoError(t, p.Handle(Event{Type: EventNavSelect, Path: "/contact"}))
	assert.False(t, last.MenuOpen)
	assert.False(t, last.ScrollLocked)
	assert.Equal(t, "/contact", last.Route)
}

func TestPageRejectsBadEvents(t *testing.T) {
	p := NewPage(NewManualScheduler(), PageOptions{Route: "/", Landing: "/", Slides: 2}, nil)

	assert.Error(t, p.Handle(Event{Type: "scroll"}))
	assert.Error(t, p.Handle(Event{Type: EventSlideSelect, Index: 5}))
	assert.Error(t, p.Handle(Event{Type: EventNavSelect}))

	p.Dispose()
	assert.Error(t, p.Handle(Event{Type: EventMenuToggle}))
}
