package models

import "strings"

// SectionID identifies one of the labeled regions of the page
type SectionID string

const (
	SectionHome       SectionID = "home"
	SectionAbout      SectionID = "about"
	SectionExperience SectionID = "experience"
	SectionProjects   SectionID = "projects"
	SectionContact    SectionID = "contact"
)

// Sections is the fixed display and priority order of the page regions.
// The first entry is the initial active section.
var Sections = []SectionID{
	SectionHome,
	SectionAbout,
	SectionExperience,
	SectionProjects,
	SectionContact,
}

// Valid reports whether id is one of the fixed sections
func (id SectionID) Valid() bool {
	for _, s := range Sections {
		if s == id {
			return true
		}
	}
	return false
}

// Title returns the navigation label ("projects" -> "Projects")
func (id SectionID) Title() string {
	if id == "" {
		return ""
	}
	return strings.ToUpper(string(id[:1])) + string(id[1:])
}

// ParseSection converts a raw identifier, ignoring case and surrounding space
func ParseSection(s string) (SectionID, bool) {
	id := SectionID(strings.ToLower(strings.TrimSpace(s)))
	return id, id.Valid()
}

// SectionInfo describes a section for API consumers
type SectionInfo struct {
	ID    SectionID `json:"id"`
	Title string    `json:"title"`
	Index int       `json:"index"`
}
