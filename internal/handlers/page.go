package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"troywu.dev/internal/models"
	"troywu.dev/internal/render"
	"troywu.dev/internal/services"
)

// PageHandler serves the rendered document and its assets
type PageHandler struct {
	content   *services.ContentService
	renderer  *render.Renderer
	lookahead float64
	logger    *zap.Logger
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(cs *services.ContentService, r *render.Renderer, lookahead float64, logger *zap.Logger) *PageHandler {
	return &PageHandler{content: cs, renderer: r, lookahead: lookahead, logger: logger}
}

// Index handles GET /
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := h.renderer.Render(w, render.Page{
		Active:    models.Sections[0],
		Portfolio: h.content.Portfolio(),
		Lookahead: h.lookahead,
		AssetBase: "/",
	})
	if err != nil {
		h.logger.Error("Failed to render page", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// Stylesheet handles GET /assets/site.css
func (h *PageHandler) Stylesheet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write(render.Stylesheet())
}

// Script handles GET /assets/site.js
func (h *PageHandler) Script(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write(render.Script())
}
