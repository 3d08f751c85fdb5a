package models

import (
	"strings"
	"unicode"
)

// Project represents a portfolio project
type Project struct {
	ID     string   `json:"id" yaml:"id,omitempty"`
	Title  string   `json:"title" yaml:"title"`
	Tech   string   `json:"tech" yaml:"tech"`
	Date   string   `json:"date" yaml:"date"`
	Award  string   `json:"award,omitempty" yaml:"award,omitempty"`
	Points []string `json:"points" yaml:"points"`
}

// HasAward reports whether the project carries an award badge
func (p Project) HasAward() bool {
	return strings.TrimSpace(p.Award) != ""
}

// Slug derives a URL-safe identifier from a title.
// "Basketbot - ProduHacks 2024 Winner" becomes "basketbot-produhacks-2024-winner".
func Slug(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if b.Len() > 0 && !dash {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
