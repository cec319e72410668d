package ui

import "fmt"

// Snapshot is the externally visible state of a page runtime.
type Snapshot struct {
	Route        string `json:"route"`
	Reveal       string `json:"reveal"`
	Gate         bool   `json:"gate"`
	Layout       string `json:"layout"`
	MenuOpen     bool   `json:"menuOpen"`
	ScrollLocked bool   `json:"scrollLocked"`
	Slide        int    `json:"slide"`
	Slides       int    `json:"slides"`
}

// Event types accepted by Page.Handle.
const (
	EventGateReady   = "gate-ready"
	EventSlideSelect = "slide-select"
	EventMenuToggle  = "menu-toggle"
	EventNavSelect   = "nav-select"
)

// Event is a user or browser event delivered to a page.
type Event struct {
	Type  string `json:"type"`
	Index int    `json:"index,omitempty"`
	Path  string `json:"path,omitempty"`
}

// PageOptions describes the page being mounted.
type PageOptions struct {
	Route   string
	Landing string
	Slides  int
	Timing  Timing
}

// Page composes the controllers mounted on one page view: the nav bar on
// every route, and on the landing route the opening gate and hero slider.
// All of them share one scroll lock.
type Page struct {
	scope    *Scope
	lock     *ScrollLock
	nav      *Nav
	reveal   *Reveal
	hero     *Slider
	onChange func(Snapshot)
	mounting bool
}

// NewPage mounts a page on s. onChange receives a snapshot after every state
// change, but not for the initial state; call Snapshot for that.
func NewPage(s Scheduler, opts PageOptions, onChange func(Snapshot)) *Page {
	p := &Page{
		scope:    NewScope(s),
		onChange: onChange,
		mounting: true,
	}
	defer func() { p.mounting = false }()

	timing := opts.Timing.WithDefaults()
	p.lock = NewScrollLock(func(bool) { p.changed() })
	p.nav = NewNav(p.scope, p.lock, NavOptions{
		Route:    opts.Route,
		Landing:  opts.Landing,
		Timing:   timing,
		OnChange: p.changed,
	})
	if opts.Route == opts.Landing {
		p.reveal = NewReveal(p.scope, p.lock, timing, func(RevealState) { p.changed() })
		if opts.Slides > 0 {
			p.hero = NewSlider(p.scope, opts.Slides, timing, func(int) { p.changed() })
		}
	}
	return p
}

// Handle applies ev to the page.
func (p *Page) Handle(ev Event) error {
	if p.scope.Disposed() {
		return fmt.Errorf("ui: page disposed")
	}
	switch ev.Type {
	case EventGateReady:
		if p.reveal != nil {
			p.reveal.Ready()
		}
	case EventSlideSelect:
		if p.hero == nil || !p.hero.Select(ev.Index) {
			return fmt.Errorf("ui: no slide %d", ev.Index)
		}
	case EventMenuToggle:
		p.nav.ToggleMenu()
	case EventNavSelect:
		if ev.Path == "" {
			return fmt.Errorf("ui: nav-select without path")
		}
		p.nav.Select(ev.Path)
	default:
		return fmt.Errorf("ui: unknown event %q", ev.Type)
	}
	return nil
}

// Snapshot returns the current state.
func (p *Page) Snapshot() Snapshot {
	s := Snapshot{
		Route:        p.nav.Route(),
		Reveal:       RevealOpen.String(),
		Layout:       p.nav.Layout().String(),
		MenuOpen:     p.nav.MenuOpen(),
		ScrollLocked: p.lock.Locked(),
	}
	if p.reveal != nil {
		s.Reveal = p.reveal.State().String()
		s.Gate = p.reveal.Mounted()
	}
	if p.hero != nil {
		s.Slide = p.hero.Index()
		s.Slides = p.hero.Len()
	}
	return s
}

// ScrollLock exposes the page's shared lock.
func (p *Page) ScrollLock() *ScrollLock {
	return p.lock
}

func (p *Page) changed() {
	if p.mounting || p.onChange == nil || p.scope.Disposed() {
		return
	}
	p.onChange(p.Snapshot())
}

// Dispose unmounts every controller on the page and cancels their timers.
func (p *Page) Dispose() {
	p.scope.Dispose()
}
