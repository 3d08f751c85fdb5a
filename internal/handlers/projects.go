package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"troywu.dev/internal/models"
	"troywu.dev/internal/services"
)

// ProjectHandler handles project-related endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: ps}
}

// ListProjects handles GET /api/projects. Awarded projects can be selected
// with ?award=true.
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects := h.projectService.GetAll()
	if r.URL.Query().Get("award") == "true" {
		awarded := make([]models.Project, 0, len(projects))
		for _, p := range projects {
			if p.HasAward() {
				awarded = append(awarded, p)
			}
		}
		projects = awarded
	}
	respondJSON(w, http.StatusOK, projects)
}

// GetProject handles GET /api/projects/{id}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	project, err := h.projectService.GetByID(id)
	switch {
	case errors.Is(err, services.ErrProjectNotFound):
		respondError(w, http.StatusNotFound, "Project not found")
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, "Failed to load project")
		return
	}

	respondJSON(w, http.StatusOK, project)
}
