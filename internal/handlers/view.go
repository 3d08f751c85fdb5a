package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"troywu.dev/internal/models"
	"troywu.dev/internal/scroll"
	"troywu.dev/internal/services"
)

// ViewHandler exposes section tracking to clients that measure their own
// layout
type ViewHandler struct {
	viewService *services.ViewService
}

// NewViewHandler creates a new ViewHandler
func NewViewHandler(vs *services.ViewService) *ViewHandler {
	return &ViewHandler{viewService: vs}
}

// ListSections handles GET /api/sections
func (h *ViewHandler) ListSections(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"sections":  h.viewService.Sections(),
		"lookahead": h.viewService.Lookahead(),
	})
}

type trackRequest struct {
	Offset   float64               `json:"offset"`
	Previous string                `json:"previous"`
	Boxes    map[string]scroll.Box `json:"boxes"`
}

// Track handles POST /api/track
func (h *ViewHandler) Track(w http.ResponseWriter, r *http.Request) {
	var req trackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	boxes, err := parseBoxes(req.Boxes)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	// An unknown previous id falls back to the first section.
	previous, _ := models.ParseSection(req.Previous)
	active := h.viewService.Track(req.Offset, boxes, previous)
	respondJSON(w, http.StatusOK, map[string]models.SectionID{"active": active})
}

type navigateRequest struct {
	Section string                `json:"section"`
	Boxes   map[string]scroll.Box `json:"boxes"`
}

// Navigate handles POST /api/navigate
func (h *ViewHandler) Navigate(w http.ResponseWriter, r *http.Request) {
	var req navigateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	boxes, err := parseBoxes(req.Boxes)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Unknown sections are not an error: navigation to them is a no-op.
	section, ok := models.ParseSection(req.Section)
	if !ok {
		section = models.SectionID(req.Section)
	}
	respondJSON(w, http.StatusOK, h.viewService.Navigate(section, boxes))
}

// parseBoxes normalises section ids and rejects unknown ids or negative
// heights
func parseBoxes(raw map[string]scroll.Box) (scroll.Boxes, error) {
	boxes := make(scroll.Boxes, len(raw))
	for key, box := range raw {
		id, ok := models.ParseSection(key)
		if !ok {
			return nil, fmt.Errorf("unknown section %q", key)
		}
		if box.Height < 0 {
			return nil, fmt.Errorf("section %q has negative height", id)
		}
		boxes[id] = box
	}
	return boxes, nil
}
