// Package content loads the static portfolio data from YAML.
//
// A default portfolio is embedded in the binary; a file on disk can
// replace it. Content is validated once at load time and treated as
// immutable afterwards.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"troywu.dev/internal/models"
)

//go:embed data/portfolio.yaml
var defaultPortfolio []byte

// ErrInvalid is returned when content fails validation.
var ErrInvalid = errors.New("invalid portfolio content")

// Default returns the embedded portfolio.
func Default() (*models.Portfolio, error) {
	return Parse(defaultPortfolio)
}

// Load reads the portfolio at path. An empty path selects the embedded
// default.
func Load(path string) (*models.Portfolio, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes and validates portfolio YAML. Unknown keys are rejected
// so typos in hand-edited content surface immediately.
func Parse(data []byte) (*models.Portfolio, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var p models.Portfolio
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to parse portfolio: %w", err)
	}

	for i := range p.Projects {
		if p.Projects[i].ID == "" {
			p.Projects[i].ID = models.Slug(p.Projects[i].Title)
		}
	}

	if err := Validate(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks the invariants the renderers rely on.
func Validate(p *models.Portfolio) error {
	if strings.TrimSpace(p.Profile.Name) == "" {
		return fmt.Errorf("%w: profile name is required", ErrInvalid)
	}

	seen := make(map[string]int, len(p.Projects))
	for i, proj := range p.Projects {
		if strings.TrimSpace(proj.Title) == "" {
			return fmt.Errorf("%w: project %d has an empty title", ErrInvalid, i)
		}
		if proj.ID == "" {
			return fmt.Errorf("%w: project %q has no usable id", ErrInvalid, proj.Title)
		}
		if j, dup := seen[proj.ID]; dup {
			return fmt.Errorf("%w: projects %d and %d share id %q", ErrInvalid, j, i, proj.ID)
		}
		seen[proj.ID] = i
	}

	for i, exp := range p.Experience {
		if strings.TrimSpace(exp.Role) == "" {
			return fmt.Errorf("%w: experience %d has an empty role", ErrInvalid, i)
		}
	}
	return nil
}
