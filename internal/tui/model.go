// Package tui renders the portfolio in the terminal with Bubble Tea.
//
// The content pane is a bubbles viewport whose offset is driven by a
// scroll.Window measured in row units, so the same tracker and navigator
// that serve the web page decide the highlighted sidebar entry here.
package tui

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"go.uber.org/zap"

	"troywu.dev/internal/models"
	"troywu.dev/internal/scroll"
)

const (
	sidebarWidth = 24
	// first sidebar row holding a navigation entry
	navTop = 3
	// rows moved per mouse wheel notch
	wheelRows = 3
)

// Options configures the terminal view
type Options struct {
	Lookahead    float64
	RowUnits     float64
	FPS          int
	GlamourStyle string
	Logger       *zap.Logger
}

// frameMsg advances a smooth scroll by one frame
type frameMsg struct{}

// Model is the Bubble Tea model for the portfolio
type Model struct {
	portfolio *models.Portfolio
	opts      Options
	styles    Styles
	keys      keyMap
	help      help.Model

	window   *scroll.Window
	page     *scroll.Page
	viewport viewport.Model
	layout   scroll.Boxes

	width, height int
	cursor        int
	ticking       bool
	ready         bool
}

// NewModel creates the view. The scroll listener is attached in Init.
func NewModel(p *models.Portfolio, opts Options) Model {
	if opts.Lookahead <= 0 {
		opts.Lookahead = scroll.DefaultLookahead
	}
	if opts.RowUnits <= 0 {
		opts.RowUnits = 20
	}
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	logger := opts.Logger

	window := scroll.NewWindow(0, 0, scroll.WithFPS(opts.FPS))
	layout := scroll.Boxes{}
	page := scroll.NewPage(window, layout,
		scroll.WithLookahead(opts.Lookahead),
		scroll.WithOnChange(func(prev, next models.SectionID) {
			logger.Debug("Active section changed",
				zap.String("from", string(prev)),
				zap.String("to", string(next)))
		}))

	return Model{
		portfolio: p,
		opts:      opts,
		styles:    DefaultStyles(),
		keys:      defaultKeyMap(),
		help:      help.New(),
		window:    window,
		page:      page,
		layout:    layout,
	}
}

// Init mounts the page
func (m Model) Init() tea.Cmd {
	m.page.Mount()
	return nil
}

// Active returns the highlighted section
func (m Model) Active() models.SectionID {
	return m.page.Active()
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.measure()
		m.ready = true
		return m, nil

	case frameMsg:
		m.window.Step()
		m.syncViewport()
		if m.window.Animating() {
			return m, m.frame()
		}
		m.ticking = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := float64(m.viewport.Height)
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.page.Unmount()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Down):
		m.scrollBy(1)
	case key.Matches(msg, m.keys.Up):
		m.scrollBy(-1)
	case key.Matches(msg, m.keys.PageDown):
		m.scrollBy(rows)
	case key.Matches(msg, m.keys.PageUp):
		m.scrollBy(-rows)
	case key.Matches(msg, m.keys.Top):
		m.window.ScrollTo(0, scroll.BehaviorSmooth)
		return m, m.startAnimation()
	case key.Matches(msg, m.keys.Bottom):
		m.window.ScrollTo(m.window.MaxOffset(), scroll.BehaviorSmooth)
		return m, m.startAnimation()
	case key.Matches(msg, m.keys.Next):
		m.cursor = (m.cursor + 1) % len(models.Sections)
	case key.Matches(msg, m.keys.Prev):
		m.cursor = (m.cursor + len(models.Sections) - 1) % len(models.Sections)
	case key.Matches(msg, m.keys.Go):
		return m.navigate(models.Sections[m.cursor])
	case key.Matches(msg, m.keys.Projects):
		return m.navigate(models.SectionProjects)
	default:
		if s := msg.String(); len(s) == 1 && s[0] >= '1' && int(s[0]-'1') < len(models.Sections) {
			m.cursor = int(s[0] - '1')
			return m.navigate(models.Sections[m.cursor])
		}
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelDown:
		m.scrollBy(wheelRows)
	case tea.MouseButtonWheelUp:
		m.scrollBy(-wheelRows)
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress || msg.X > sidebarWidth {
			return m, nil
		}
		idx := msg.Y - navTop
		if idx >= 0 && idx < len(models.Sections) {
			m.cursor = idx
			return m.navigate(models.Sections[idx])
		}
	}
	return m, nil
}

// navigate asks the page to scroll and starts the frame loop
func (m Model) navigate(id models.SectionID) (tea.Model, tea.Cmd) {
	m.page.Navigate(id)
	return m, m.startAnimation()
}

func (m *Model) startAnimation() tea.Cmd {
	if !m.window.Animating() || m.ticking {
		return nil
	}
	m.ticking = true
	return m.frame()
}

func (m Model) frame() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.window.FPS()), func(time.Time) tea.Msg {
		return frameMsg{}
	})
}

func (m *Model) scrollBy(rows float64) {
	m.window.ScrollBy(rows * m.opts.RowUnits)
	m.syncViewport()
}

// syncViewport shows the row nearest the window offset
func (m *Model) syncViewport() {
	m.viewport.SetYOffset(int(math.Round(m.window.Offset() / m.opts.RowUnits)))
}

// measure re-renders the content for the current size and rebuilds the
// layout the tracker and navigator use.
func (m *Model) measure() {
	rows := m.height - 1 // footer
	if rows < 1 {
		rows = 1
	}
	width := m.width - sidebarWidth - 2
	if width < 1 {
		width = 1
	}

	sections := renderSections(m.portfolio, m.styles, m.markdownRenderer(width), width, rows)

	heights := make(map[models.SectionID]float64, len(sections))
	var lines []string
	for _, s := range sections {
		heights[s.id] = float64(len(s.lines)) * m.opts.RowUnits
		lines = append(lines, s.lines...)
	}
	m.layout = scroll.Stack(models.Sections, heights)

	if !m.ready {
		m.viewport = viewport.New(width, rows)
	} else {
		m.viewport.Width = width
		m.viewport.Height = rows
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))

	m.page.SetLayout(m.layout)
	m.window.Resize(float64(rows)*m.opts.RowUnits, m.layout.Extent())
	m.syncViewport()
}

func (m Model) markdownRenderer(width int) *glamour.TermRenderer {
	style := m.opts.GlamourStyle
	if style == "" {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		m.opts.Logger.Warn("Markdown renderer unavailable", zap.Error(err))
		return nil
	}
	return r
}

// View implements tea.Model
func (m Model) View() string {
	if !m.ready {
		return "Loading…"
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.sidebarView(), " ", m.viewport.View())
	return body + "\n" + m.styles.Footer.Render(m.help.View(m.keys))
}

func (m Model) sidebarView() string {
	st := m.styles
	inner := sidebarWidth - 1
	pr := m.portfolio.Profile

	lines := []string{
		st.Name.Render(runewidth.Truncate(pr.Name, inner, "…")),
		st.Headline.Render(runewidth.Truncate(pr.Headline, inner, "…")),
		"",
	}
	active := m.page.Active()
	for i, id := range models.Sections {
		label := "  " + id.Title()
		style := st.NavItem
		if id == active {
			label = "● " + id.Title()
			style = st.NavActive
		}
		if i == m.cursor {
			style = style.Inherit(st.NavCursor)
		}
		lines = append(lines, style.Render(runewidth.FillRight(label, inner-1)))
	}
	lines = append(lines, "")
	for _, l := range contactLinks(pr) {
		lines = append(lines, st.Link.Render(runewidth.Truncate(l.label, inner, "…")))
	}
	return st.Sidebar.Height(m.viewport.Height).Render(strings.Join(lines, "\n"))
}
