// Package export writes the portfolio as a self-contained static site.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"troywu.dev/internal/models"
	"troywu.dev/internal/render"
)

// Result summarises an export
type Result struct {
	Files  []string
	Copied int
}

// Exporter writes a static copy of the site
type Exporter struct {
	OutputDir string
	StaticDir string
	Lookahead float64
}

// New creates an Exporter
func New(outputDir, staticDir string, lookahead float64) *Exporter {
	return &Exporter{OutputDir: outputDir, StaticDir: staticDir, Lookahead: lookahead}
}

// Export renders index.html, the assets and portfolio.json into OutputDir
// and copies the static directory (headshot, resume) alongside them.
func (e *Exporter) Export(p *models.Portfolio) (*Result, error) {
	renderer, err := render.New()
	if err != nil {
		return nil, err
	}

	var page bytes.Buffer
	err = renderer.Render(&page, render.Page{
		Active:    models.Sections[0],
		Portfolio: p,
		Lookahead: e.Lookahead,
	})
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal portfolio: %w", err)
	}

	files := []struct {
		name string
		data []byte
	}{
		{"index.html", page.Bytes()},
		{filepath.Join("assets", "site.css"), render.Stylesheet()},
		{filepath.Join("assets", "site.js"), render.Script()},
		{"portfolio.json", data},
	}

	reserved := make(map[string]bool, len(files))
	for _, f := range files {
		reserved[f.name] = true
	}
	n, err := e.copyStatic(reserved)
	if err != nil {
		return nil, err
	}

	res := &Result{Copied: n}
	for _, f := range files {
		path := filepath.Join(e.OutputDir, f.name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
		if err := os.WriteFile(path, f.data, 0o644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", f.name, err)
		}
		res.Files = append(res.Files, f.name)
	}
	return res, nil
}

// copyStatic mirrors StaticDir into OutputDir, skipping paths the export
// generates itself. A missing StaticDir copies nothing.
func (e *Exporter) copyStatic(reserved map[string]bool) (int, error) {
	if e.StaticDir == "" {
		return 0, nil
	}
	if _, err := os.Stat(e.StaticDir); os.IsNotExist(err) {
		return 0, nil
	}

	copied := 0
	err := filepath.WalkDir(e.StaticDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(e.StaticDir, path)
		if err != nil {
			return err
		}
		dst := filepath.Join(e.OutputDir, rel)
		if d.IsDir() {
			return os.MkdirAll(dst, 0o755)
		}
		if reserved[rel] {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := os.WriteFile(dst, data, 0o644); err != nil {
			return err
		}
		copied++
		return nil
	})
	if err != nil {
		return copied, fmt.Errorf("failed to copy static files: %w", err)
	}
	return copied, nil
}
