// Package render produces the HTML document for the portfolio.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"troywu.dev/internal/models"
)

// Page is everything the document depends on
type Page struct {
	Active    models.SectionID
	Portfolio *models.Portfolio
	Lookahead float64
	// AssetBase prefixes asset URLs; "/" when served, "" for a static export
	AssetBase string
}

// Renderer renders portfolio pages. It is safe for concurrent use.
type Renderer struct {
	tmpl   *template.Template
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// New parses the page template
func New() (*Renderer, error) {
	r := &Renderer{
		md:     goldmark.New(goldmark.WithExtensions(extension.Linkify)),
		policy: bluemonday.UGCPolicy(),
	}
	tmpl, err := template.New("page").Funcs(template.FuncMap{
		"markdown":   r.Markdown,
		"initial":    initial,
		"trimScheme": trimScheme,
	}).Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page template: %w", err)
	}
	r.tmpl = tmpl
	return r, nil
}

type navItem struct {
	ID     models.SectionID
	Title  string
	Active bool
}

type pageData struct {
	Page
	Nav        []navItem
	SectionIDs string
}

// Asset resolves a root-relative content path against AssetBase, so a
// static export refers to its images and resume relatively.
func (d pageData) Asset(path string) string {
	if !strings.HasPrefix(path, "/") {
		return path
	}
	return d.AssetBase + strings.TrimPrefix(path, "/")
}

// Render writes the full document. Active defaults to the first section.
func (r *Renderer) Render(w io.Writer, p Page) error {
	if p.Portfolio == nil {
		return fmt.Errorf("render: no portfolio")
	}
	if !p.Active.Valid() {
		p.Active = models.Sections[0]
	}

	data := pageData{Page: p}
	ids := make([]string, len(models.Sections))
	for i, id := range models.Sections {
		ids[i] = string(id)
		data.Nav = append(data.Nav, navItem{ID: id, Title: id.Title(), Active: id == p.Active})
	}
	data.SectionIDs = strings.Join(ids, " ")

	// Render into a buffer so a template error never leaves a half page.
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// Markdown converts a paragraph of markdown to sanitised HTML
func (r *Renderer) Markdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown: %w", err)
	}
	return template.HTML(r.policy.SanitizeBytes(buf.Bytes())), nil
}

// Stylesheet returns the page CSS
func Stylesheet() []byte {
	return []byte(cssContent)
}

// Script returns the client script that tracks scrolling in the browser
func Script() []byte {
	return []byte(jsContent)
}

// initial returns the first letter of a name for the avatar fallback
func initial(name string) string {
	for _, r := range name {
		return strings.ToUpper(string(r))
	}
	return ""
}

func trimScheme(u string) string {
	u = strings.TrimPrefix(u, "https://")
	return strings.TrimPrefix(u, "http://")
}
