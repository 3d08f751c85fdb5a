// Package scroll maps viewport scroll positions to the active page section
// and drives navigation between sections.
//
// Everything here runs on a single event loop (the Bubble Tea update loop,
// or a test). Nothing is safe for concurrent use.
package scroll

import "troywu.dev/internal/models"

// DefaultLookahead is added to the raw scroll offset before matching, so a
// section activates slightly before its top reaches the top of the viewport.
const DefaultLookahead = 200

// Tracker holds the active-section state and updates it from scroll offsets.
type Tracker struct {
	order     []models.SectionID
	lookahead float64
	active    models.SectionID
}

// NewTracker creates a Tracker that checks sections in order. The first
// section is active until a scroll says otherwise. An empty order falls
// back to models.Sections.
func NewTracker(order []models.SectionID, lookahead float64) *Tracker {
	if len(order) == 0 {
		order = models.Sections
	}
	return &Tracker{
		order:     append([]models.SectionID(nil), order...),
		lookahead: lookahead,
		active:    order[0],
	}
}

// Active returns the current section
func (t *Tracker) Active() models.SectionID {
	return t.active
}

// Lookahead returns the offset bias used when matching
func (t *Tracker) Lookahead() float64 {
	return t.lookahead
}

// Order returns the priority order sections are checked in
func (t *Tracker) Order() []models.SectionID {
	return append([]models.SectionID(nil), t.order...)
}

// Match returns the first section in order whose box contains
// offset+lookahead, skipping sections missing from the layout. It does not
// change the active section.
func (t *Tracker) Match(offset float64, layout Layout) (models.SectionID, bool) {
	if layout == nil {
		return "", false
	}
	y := offset + t.lookahead
	for _, id := range t.order {
		box, ok := layout.Box(id)
		if !ok {
			continue
		}
		if box.Contains(y) {
			return id, true
		}
	}
	return "", false
}

// Track recomputes the active section for a scroll offset and returns it.
// When nothing matches the previous section stays active.
func (t *Tracker) Track(offset float64, layout Layout) models.SectionID {
	if id, ok := t.Match(offset, layout); ok {
		t.active = id
	}
	return t.active
}
