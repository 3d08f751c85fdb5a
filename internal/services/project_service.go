package services

import (
	"errors"
	"fmt"

	"troywu.dev/internal/models"
)

// ErrProjectNotFound is returned for unknown project ids
var ErrProjectNotFound = errors.New("project not found")

// ProjectService handles project-related operations
type ProjectService struct {
	content *ContentService
}

// NewProjectService creates a new ProjectService
func NewProjectService(cs *ContentService) *ProjectService {
	return &ProjectService{content: cs}
}

// GetAll returns all projects in display order
func (s *ProjectService) GetAll() []models.Project {
	return s.content.Portfolio().Projects
}

// GetByID returns a specific project by ID
func (s *ProjectService) GetByID(id string) (*models.Project, error) {
	projects := s.content.Portfolio().Projects
	for i := range projects {
		if projects[i].ID == id {
			return &projects[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
}
