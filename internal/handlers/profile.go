package handlers

import (
	"net/http"

	"troywu.dev/internal/services"
)

// ProfileHandler serves the biographical parts of the portfolio
type ProfileHandler struct {
	content *services.ContentService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(cs *services.ContentService) *ProfileHandler {
	return &ProfileHandler{content: cs}
}

// GetProfile handles GET /api/profile
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	p := h.content.Portfolio()
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"profile":   p.Profile,
		"education": p.Education,
		"skills":    p.Skills,
	})
}

// ListExperience handles GET /api/experience
func (h *ProfileHandler) ListExperience(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.content.Portfolio().Experience)
}
