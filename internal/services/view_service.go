package services

import (
	"troywu.dev/internal/models"
	"troywu.dev/internal/scroll"
)

// ViewService answers scroll-tracking and navigation questions for clients
// that measure their own layout
type ViewService struct {
	lookahead float64
}

// NewViewService creates a new ViewService
func NewViewService(lookahead float64) *ViewService {
	return &ViewService{lookahead: lookahead}
}

// Lookahead returns the offset bias applied when tracking
func (s *ViewService) Lookahead() float64 {
	return s.lookahead
}

// Sections lists the page sections in order
func (s *ViewService) Sections() []models.SectionInfo {
	infos := make([]models.SectionInfo, len(models.Sections))
	for i, id := range models.Sections {
		infos[i] = models.SectionInfo{ID: id, Title: id.Title(), Index: i}
	}
	return infos
}

// Track returns the section active at offset. previous is kept when no
// section matches; an invalid previous falls back to the first section.
func (s *ViewService) Track(offset float64, boxes scroll.Boxes, previous models.SectionID) models.SectionID {
	tracker := scroll.NewTracker(models.Sections, s.lookahead)
	if id, ok := tracker.Match(offset, boxes); ok {
		return id
	}
	if previous.Valid() {
		return previous
	}
	return tracker.Active()
}

// NavigateResult is the scroll a navigation would request
type NavigateResult struct {
	Section  models.SectionID `json:"section"`
	Found    bool             `json:"found"`
	Target   float64          `json:"target"`
	Behavior string           `json:"behavior,omitempty"`
}

// Navigate resolves where a click on section would scroll to
func (s *ViewService) Navigate(section models.SectionID, boxes scroll.Boxes) NavigateResult {
	rec := &scrollRecorder{}
	scroll.NewNavigator(boxes, rec).Navigate(section)

	res := NavigateResult{Section: section, Found: rec.called, Target: rec.top}
	if rec.called {
		res.Behavior = rec.behavior.String()
	}
	return res
}

// scrollRecorder captures the request a Navigator makes
type scrollRecorder struct {
	called   bool
	top      float64
	behavior scroll.Behavior
}

func (r *scrollRecorder) ScrollTo(top float64, behavior scroll.Behavior) {
	r.called = true
	r.top = top
	r.behavior = behavior
}
