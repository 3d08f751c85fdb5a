package services

import (
	"sync"

	"go.uber.org/zap"

	"troywu.dev/internal/content"
	"troywu.dev/internal/models"
)

// ContentService holds the current portfolio and swaps it on reload
type ContentService struct {
	mu        sync.RWMutex
	portfolio *models.Portfolio
	path      string
	logger    *zap.Logger
}

// NewContentService creates a ContentService serving p. path is where
// Reload reads from; empty means the embedded default.
func NewContentService(p *models.Portfolio, path string, logger *zap.Logger) *ContentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContentService{portfolio: p, path: path, logger: logger}
}

// Portfolio returns the current content. Callers must not modify it.
func (s *ContentService) Portfolio() *models.Portfolio {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.portfolio
}

// Path returns the file the content is loaded from
func (s *ContentService) Path() string {
	return s.path
}

// Reload re-reads the content file. Invalid content is rejected and the
// previous portfolio stays in place.
func (s *ContentService) Reload() error {
	p, err := content.Load(s.path)
	if err != nil {
		s.logger.Warn("Content reload rejected", zap.String("path", s.path), zap.Error(err))
		return err
	}

	s.mu.Lock()
	s.portfolio = p
	s.mu.Unlock()

	s.logger.Info("Content reloaded",
		zap.String("path", s.path),
		zap.Int("projects", len(p.Projects)))
	return nil
}
