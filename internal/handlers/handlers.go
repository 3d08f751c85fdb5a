package handlers

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"troywu.dev/internal/config"
	"troywu.dev/internal/middleware"
	"troywu.dev/internal/render"
	"troywu.dev/internal/services"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, contentService *services.ContentService, logger *zap.Logger) (http.Handler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	renderer, err := render.New()
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(chimw.Timeout(30 * time.Second))

	// Initialize services
	projectService := services.NewProjectService(contentService)
	viewService := services.NewViewService(cfg.View.Lookahead)

	// Initialize handlers
	pageHandler := NewPageHandler(contentService, renderer, cfg.View.Lookahead, logger)
	projectHandler := NewProjectHandler(projectService)
	profileHandler := NewProfileHandler(contentService)
	viewHandler := NewViewHandler(viewService)

	// API routes
	r.Route("/api", func(r chi.Router) {
		if cfg.CORSAllowAll {
			r.Use(cors.Handler(cors.Options{
				AllowedOrigins: []string{"*"},
				AllowedMethods: []string{"GET", "POST", "OPTIONS"},
				AllowedHeaders: []string{"Accept", "Content-Type"},
				MaxAge:         300,
			}))
		}

		r.Get("/profile", profileHandler.GetProfile)
		r.Get("/experience", profileHandler.ListExperience)

		// Project endpoints
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{id}", projectHandler.GetProject)

		// Section tracking endpoints
		r.Get("/sections", viewHandler.ListSections)
		r.Post("/track", viewHandler.Track)
		r.Post("/navigate", viewHandler.Navigate)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	r.Get("/assets/site.css", pageHandler.Stylesheet)
	r.Get("/assets/site.js", pageHandler.Script)

	// Static files
	fileServer := http.FileServer(http.Dir(cfg.StaticDir))
	r.Handle("/images/*", fileServer)
	r.Get("/resume.pdf", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(cfg.StaticDir, "resume.pdf"))
	})

	r.Get("/", pageHandler.Index)

	return r, nil
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		zap.L().Warn("Error encoding JSON", zap.Error(err))
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
