package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"troywu.dev/internal/models"
)

// section is one rendered region of the content pane
type section struct {
	id    models.SectionID
	lines []string
}

// renderSections renders every section at width, padding each to at least
// minRows so any section can be scrolled to the top of the pane.
func renderSections(p *models.Portfolio, st Styles, md *glamour.TermRenderer, width, minRows int) []section {
	if width < 20 {
		width = 20
	}
	wrap := lipgloss.NewStyle().Width(width)

	out := make([]section, 0, len(models.Sections))
	for _, id := range models.Sections {
		var body string
		switch id {
		case models.SectionHome:
			body = renderHome(p, st, wrap)
		case models.SectionAbout:
			body = renderAbout(p, st, wrap, md)
		case models.SectionExperience:
			body = renderExperience(p, st, wrap)
		case models.SectionProjects:
			body = renderProjects(p, st, wrap)
		case models.SectionContact:
			body = renderContact(p, st, wrap)
		}
		lines := strings.Split(strings.TrimRight(body, "\n"), "\n")
		// Blank line between sections.
		lines = append(lines, "")
		for len(lines) < minRows {
			lines = append(lines, "")
		}
		out = append(out, section{id: id, lines: lines})
	}
	return out
}

func renderHome(p *models.Portfolio, st Styles, wrap lipgloss.Style) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(st.Title.Render(strings.ToUpper(p.Profile.Name)) + "\n")
	b.WriteString(st.Accent.Render(p.Profile.Headline) + "\n\n")
	b.WriteString(wrap.Render(st.Body.Render(p.Profile.Summary)) + "\n\n")
	b.WriteString(st.Accent.Render("[p] View Projects ›"))
	if p.Profile.ResumePath != "" {
		b.WriteString("   " + st.Subtle.Render("Resume: "+p.Profile.ResumePath))
	}
	b.WriteString("\n")
	return b.String()
}

func renderAbout(p *models.Portfolio, st Styles, wrap lipgloss.Style, md *glamour.TermRenderer) string {
	var b strings.Builder
	b.WriteString(st.Heading.Render("About Me") + "\n")
	for _, para := range p.Profile.About {
		b.WriteString(renderMarkdown(para, wrap, md) + "\n\n")
	}

	if len(p.Education) > 0 {
		b.WriteString(st.Heading.Render("Education") + "\n")
		for _, e := range p.Education {
			b.WriteString(st.Title.Render(e.School) + "\n")
			b.WriteString(st.Accent.Render(e.Program) + "\n")
			meta := e.Period
			if e.GPA != "" {
				meta = "GPA: " + e.GPA + " • " + e.Period
			}
			b.WriteString(st.Subtle.Render(meta) + "\n")
			for _, h := range e.Honours {
				b.WriteString(wrap.Render("• "+h) + "\n")
			}
			b.WriteString("\n")
		}
	}

	if len(p.Skills) > 0 {
		b.WriteString(st.Heading.Render("Technical Skills") + "\n")
		for _, s := range p.Skills {
			b.WriteString(st.Title.Render(s.Name) + "\n")
			b.WriteString(wrap.Render(s.Items) + "\n")
		}
	}
	return b.String()
}

// renderMarkdown falls back to plain wrapping when no renderer is available
func renderMarkdown(src string, wrap lipgloss.Style, md *glamour.TermRenderer) string {
	if md != nil {
		if out, err := md.Render(src); err == nil {
			return strings.Trim(out, "\n")
		}
	}
	return wrap.Render(src)
}

func renderExperience(p *models.Portfolio, st Styles, wrap lipgloss.Style) string {
	var b strings.Builder
	b.WriteString(st.Heading.Render("Experience") + "\n")
	for _, e := range p.Experience {
		b.WriteString(st.Title.Render(e.Role) + "\n")
		b.WriteString(st.Accent.Render(e.Company) + st.Subtle.Render(joinMeta(e.Location, e.Period)) + "\n\n")
		for _, pt := range e.Points {
			b.WriteString(bullet(pt, wrap) + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderProjects(p *models.Portfolio, st Styles, wrap lipgloss.Style) string {
	var b strings.Builder
	b.WriteString(st.Heading.Render("Projects") + "\n")
	for _, proj := range p.Projects {
		b.WriteString(st.Title.Render(proj.Title) + "\n")
		b.WriteString(st.Accent.Render(proj.Tech) + st.Subtle.Render(joinMeta(proj.Date)) + "\n")
		if proj.HasAward() {
			b.WriteString(st.Award.Render(proj.Award) + "\n")
		}
		for _, pt := range proj.Points {
			b.WriteString(bullet(pt, wrap) + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderContact(p *models.Portfolio, st Styles, wrap lipgloss.Style) string {
	var b strings.Builder
	b.WriteString(st.Heading.Render("Get In Touch") + "\n")
	b.WriteString(wrap.Render(p.Profile.ContactBlurb) + "\n\n")
	for _, l := range contactLinks(p.Profile) {
		b.WriteString(fmt.Sprintf("%s  %s\n", st.Title.Render(fmt.Sprintf("%-9s", l.label)), st.Accent.Render(l.url)))
	}
	return b.String()
}

type link struct {
	label string
	url   string
}

func contactLinks(pr models.Profile) []link {
	var links []link
	if pr.Email != "" {
		links = append(links, link{"Email", "mailto:" + pr.Email})
	}
	if pr.LinkedInURL != "" {
		links = append(links, link{"LinkedIn", pr.LinkedInURL})
	}
	if pr.GitHubURL != "" {
		links = append(links, link{"GitHub", pr.GitHubURL})
	}
	return links
}

func joinMeta(parts ...string) string {
	var s string
	for _, p := range parts {
		if p != "" {
			s += " • " + p
		}
	}
	return s
}

// bullet wraps text with a hanging indent under the bullet
func bullet(text string, wrap lipgloss.Style) string {
	w := wrap.GetWidth() - 2
	body := lipgloss.NewStyle().Width(w).Render(text)
	lines := strings.Split(body, "\n")
	for i := range lines {
		if i == 0 {
			lines[i] = "• " + lines[i]
		} else {
			lines[i] = "  " + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}
