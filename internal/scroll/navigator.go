package scroll

import "troywu.dev/internal/models"

// Behavior selects how a programmatic scroll reaches its target
type Behavior int

const (
	BehaviorInstant Behavior = iota
	BehaviorSmooth
)

// String implements fmt.Stringer
func (b Behavior) String() string {
	if b == BehaviorSmooth {
		return "smooth"
	}
	return "instant"
}

// Scroller moves a viewport so that top is its first visible offset
type Scroller interface {
	ScrollTo(top float64, behavior Behavior)
}

// Navigator scrolls a section's top to the top of the viewport
type Navigator struct {
	layout   Layout
	scroller Scroller
}

// NewNavigator creates a Navigator over a layout and a scroller
func NewNavigator(layout Layout, scroller Scroller) *Navigator {
	return &Navigator{layout: layout, scroller: scroller}
}

// SetLayout swaps in a freshly measured layout
func (n *Navigator) SetLayout(layout Layout) {
	n.layout = layout
}

// Navigate requests a smooth scroll to the top of the section. Unknown or
// unrendered sections are ignored.
func (n *Navigator) Navigate(id models.SectionID) {
	if n.layout == nil || n.scroller == nil {
		return
	}
	box, ok := n.layout.Box(id)
	if !ok {
		return
	}
	n.scroller.ScrollTo(box.Top, BehaviorSmooth)
}
