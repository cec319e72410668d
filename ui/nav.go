package ui

// Layout is the desktop navigation arrangement.
type Layout int

const (
	Horizontal Layout = iota
	Vertical
)

func (l Layout) String() string {
	if l == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// InitialLayout is the layout a route renders with before any timer has run.
// Only the landing route starts vertical.
func InitialLayout(route, landing string) Layout {
	if route == landing {
		return Vertical
	}
	return Horizontal
}

// Nav is the navigation bar state machine: a one-way vertical to horizontal
// morph on the landing route, plus the mobile overlay.
type Nav struct {
	scope       *Scope
	lock        *ScrollLock
	route       string
	layout      Layout
	menuOpen    bool
	releaseMenu func()
	onChange    func()
	onNavigate  func(path string)
}

// NavOptions configures a Nav.
type NavOptions struct {
	Route      string
	Landing    string
	Timing     Timing
	OnChange   func()
	OnNavigate func(path string)
}

// NewNav mounts the nav bar in parent.
func NewNav(parent *Scope, lock *ScrollLock, opts NavOptions) *Nav {
	n := &Nav{
		scope:      parent.Child(),
		lock:       lock,
		route:      opts.Route,
		layout:     InitialLayout(opts.Route, opts.Landing),
		onChange:   opts.OnChange,
		onNavigate: opts.OnNavigate,
	}
	n.scope.OnDispose(n.closeMenu)
	if n.layout == Vertical {
		n.scope.After(opts.Timing.WithDefaults().NavDelay(), func() {
			n.layout = Horizontal
			n.changed()
		})
	}
	return n
}

// Layout returns the current desktop layout.
func (n *Nav) Layout() Layout {
	return n.layout
}

// MenuOpen reports whether the mobile overlay is showing.
func (n *Nav) MenuOpen() bool {
	return n.menuOpen
}

// Route returns the route the nav bar is showing as current.
func (n *Nav) Route() string {
	return n.route
}

// ToggleMenu opens or closes the mobile overlay. An open overlay holds the
// scroll lock.
func (n *Nav) ToggleMenu() {
	if n.scope.Disposed() {
		return
	}
	if n.menuOpen {
		n.closeMenu()
	} else {
		n.menuOpen = true
		n.releaseMenu = n.lock.Acquire()
	}
	n.changed()
}

// Select closes the overlay and navigates to path. Layout stays horizontal
// after navigation regardless of the destination.
func (n *Nav) Select(path string) {
	if n.scope.Disposed() {
		return
	}
	n.closeMenu()
	n.route = path
	n.layout = Horizontal
	n.changed()
	if n.onNavigate != nil {
		n.onNavigate(path)
	}
}

func (n *Nav) closeMenu() {
	n.menuOpen = false
	n.dropMenuLock()
}

func (n *Nav) dropMenuLock() {
	if n.releaseMenu != nil {
		n.releaseMenu()
		n.releaseMenu = nil
	}
}

func (n *Nav) changed() {
	if n.onChange != nil {
		n.onChange()
	}
}

// Dispose unmounts the nav bar, cancelling the morph timer and releasing the
// overlay's scroll lock.
func (n *Nav) Dispose() {
	n.scope.Dispose()
}
