package scroll

import "troywu.dev/internal/models"

// ChangeFunc is called when the active section changes
type ChangeFunc func(prev, next models.SectionID)

// Page ties a tracker and a navigator to a window for the lifetime of a
// mounted view. The tracker listens for scroll events only between Mount
// and Unmount.
type Page struct {
	window    *Window
	layout    Layout
	tracker   *Tracker
	navigator *Navigator
	onChange  ChangeFunc

	listener ListenerID
	mounted  bool
}

type pageOptions struct {
	order     []models.SectionID
	lookahead float64
	onChange  ChangeFunc
}

// Option configures a Page
type Option func(*pageOptions)

// WithOrder overrides the section priority order
func WithOrder(order []models.SectionID) Option {
	return func(o *pageOptions) { o.order = order }
}

// WithLookahead overrides DefaultLookahead
func WithLookahead(lookahead float64) Option {
	return func(o *pageOptions) { o.lookahead = lookahead }
}

// WithOnChange registers a callback for active-section changes
func WithOnChange(fn ChangeFunc) Option {
	return func(o *pageOptions) { o.onChange = fn }
}

// NewPage creates an unmounted Page over a window and its measured layout
func NewPage(window *Window, layout Layout, opts ...Option) *Page {
	o := pageOptions{
		order:     models.Sections,
		lookahead: DefaultLookahead,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Page{
		window:    window,
		layout:    layout,
		tracker:   NewTracker(o.order, o.lookahead),
		navigator: NewNavigator(layout, window),
		onChange:  o.onChange,
	}
}

// Mount starts tracking scroll events. Mounting twice is a no-op.
func (p *Page) Mount() {
	if p.mounted {
		return
	}
	p.listener = p.window.AddScrollListener(p.handleScroll)
	p.mounted = true
}

// Unmount stops tracking scroll events. Unmounting twice is a no-op.
func (p *Page) Unmount() {
	if !p.mounted {
		return
	}
	p.window.RemoveScrollListener(p.listener)
	p.listener = 0
	p.mounted = false
}

// Mounted reports whether the page is listening for scroll events
func (p *Page) Mounted() bool {
	return p.mounted
}

// Active returns the highlighted section
func (p *Page) Active() models.SectionID {
	return p.tracker.Active()
}

// Tracker exposes the underlying tracker
func (p *Page) Tracker() *Tracker {
	return p.tracker
}

// Window returns the window the page scrolls
func (p *Page) Window() *Window {
	return p.window
}

// Layout returns the current measured layout
func (p *Page) Layout() Layout {
	return p.layout
}

// SetLayout replaces the measured layout after a re-render or resize
func (p *Page) SetLayout(layout Layout) {
	p.layout = layout
	p.navigator.SetLayout(layout)
}

// Navigate smooth-scrolls to a section. The tracker catches up through the
// scroll events the animation fires.
func (p *Page) Navigate(id models.SectionID) {
	p.navigator.Navigate(id)
}

func (p *Page) handleScroll(offset float64) {
	prev := p.tracker.Active()
	next := p.tracker.Track(offset, p.layout)
	if next != prev && p.onChange != nil {
		p.onChange(prev, next)
	}
}
