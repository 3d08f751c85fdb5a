package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"troywu.dev/internal/content"
	"troywu.dev/internal/models"
	"troywu.dev/internal/scroll"
)

const rowUnits = 20

// keyMsg creates a tea.KeyMsg for testing
func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	p, err := content.Default()
	require.NoError(t, err)

	m := NewModel(p, Options{
		Lookahead:    scroll.DefaultLookahead,
		RowUnits:     rowUnits,
		FPS:          60,
		GlamourStyle: "notty",
	})
	m.Init()
	return update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

// settle feeds frames until the smooth scroll finishes
func settle(t *testing.T, m Model) Model {
	t.Helper()
	for m.window.Animating() {
		m = update(t, m, frameMsg{})
	}
	return m
}

func TestInitialState(t *testing.T) {
	m := newTestModel(t)

	assert.Equal(t, models.SectionHome, m.Active())
	assert.True(t, m.page.Mounted())
	assert.Equal(t, 1, m.window.Listeners())
	assert.Contains(t, m.View(), "● Home")
	assert.Len(t, m.layout, len(models.Sections))
}

func TestZeroOptionsUseDefaultLookahead(t *testing.T) {
	p, err := content.Default()
	require.NoError(t, err)

	m := NewModel(p, Options{GlamourStyle: "notty"})
	m.Init()
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Equal(t, float64(scroll.DefaultLookahead), m.page.Tracker().Lookahead())

	about := m.layout[models.SectionAbout]
	m.window.ScrollTo(about.Top-scroll.DefaultLookahead, scroll.BehaviorInstant)
	assert.Equal(t, models.SectionAbout, m.Active())

	m.window.ScrollTo(about.Top-scroll.DefaultLookahead-1, scroll.BehaviorInstant)
	assert.Equal(t, models.SectionHome, m.Active())
}

func TestViewBeforeSize(t *testing.T) {
	p, err := content.Default()
	require.NoError(t, err)
	m := NewModel(p, Options{})
	assert.Equal(t, "Loading…", m.View())
}

func TestNumberKeysAlignSections(t *testing.T) {
	m := newTestModel(t)

	for i, id := range models.Sections {
		next, cmd := m.Update(keyMsg(string(rune('1' + i))))
		m = next.(Model)
		if id != models.SectionHome {
			assert.NotNil(t, cmd, "navigating to %s should start the frame loop", id)
		}
		m = settle(t, m)

		top := m.layout[id].Top
		assert.Equal(t, top, m.window.Offset(), "offset for %s", id)
		assert.Equal(t, int(top/rowUnits), m.viewport.YOffset, "viewport row for %s", id)
		assert.Equal(t, id, m.Active())
		assert.Equal(t, i, m.cursor)
	}
}

func TestScrollKeysActivateWithLookahead(t *testing.T) {
	m := newTestModel(t)
	aboutRow := int(m.layout[models.SectionAbout].Top / rowUnits)
	lookaheadRows := scroll.DefaultLookahead / rowUnits

	for i := 0; i < aboutRow-lookaheadRows-1; i++ {
		m = update(t, m, keyMsg("j"))
	}
	assert.Equal(t, models.SectionHome, m.Active())

	m = update(t, m, keyMsg("j"))
	assert.Equal(t, models.SectionAbout, m.Active())
	assert.Equal(t, aboutRow-lookaheadRows, m.viewport.YOffset)

	m = update(t, m, keyMsg("k"))
	assert.Equal(t, models.SectionHome, m.Active())
}

func TestMouseWheel(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	assert.Equal(t, float64(wheelRows*rowUnits), m.window.Offset())

	m = update(t, m, tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	assert.Zero(t, m.window.Offset())
}

func TestSidebarClickNavigates(t *testing.T) {
	m := newTestModel(t)

	next, cmd := m.Update(tea.MouseMsg{X: 2, Y: navTop + 3, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	m = next.(Model)
	require.NotNil(t, cmd)
	assert.True(t, m.window.Animating())
	assert.Equal(t, m.layout[models.SectionProjects].Top, m.window.Target())

	m = settle(t, m)
	assert.Equal(t, models.SectionProjects, m.Active())

	// Clicks in the content pane are not navigation.
	next, cmd = m.Update(tea.MouseMsg{X: 60, Y: navTop, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	assert.Nil(t, cmd)
	assert.False(t, next.(Model).window.Animating())
}

func TestViewProjectsShortcut(t *testing.T) {
	m := newTestModel(t)
	m = settle(t, update(t, m, keyMsg("p")))
	assert.Equal(t, models.SectionProjects, m.Active())
	assert.Contains(t, m.View(), "● Projects")
}

func TestTabThenEnter(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, keyMsg("tab"))
	assert.Equal(t, 1, m.cursor)
	assert.Equal(t, models.SectionHome, m.Active())

	m = settle(t, update(t, m, keyMsg("enter")))
	assert.Equal(t, models.SectionAbout, m.Active())
	assert.Equal(t, m.layout[models.SectionAbout].Top, m.window.Offset())
}

func TestScrollInterruptsAnimation(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, keyMsg("5"))
	m = update(t, m, frameMsg{})
	require.True(t, m.window.Animating())

	m = update(t, m, keyMsg("j"))
	assert.False(t, m.window.Animating())

	// A stray frame after the interruption ends the loop.
	next, cmd := m.Update(frameMsg{})
	assert.Nil(t, cmd)
	assert.False(t, next.(Model).ticking)
}

func TestQuitUnmounts(t *testing.T) {
	m := newTestModel(t)
	next, cmd := m.Update(keyMsg("q"))
	m = next.(Model)

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, m.page.Mounted())
	assert.Zero(t, m.window.Listeners())

	m.window.ScrollBy(5000)
	assert.Equal(t, models.SectionHome, m.Active())
}

func TestResizeRemeasures(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})

	total := 0
	for _, id := range models.Sections {
		box, ok := m.layout.Box(id)
		require.True(t, ok)
		assert.GreaterOrEqual(t, box.Height, float64(19*rowUnits), "%s shorter than the pane", id)
		total += int(box.Height / rowUnits)
	}
	assert.Equal(t, total, m.viewport.TotalLineCount())
	assert.Equal(t, float64(total-19)*rowUnits, m.window.MaxOffset())
}

func TestContentRendersEverySection(t *testing.T) {
	m := newTestModel(t)
	all := m.viewport.View()
	for m.viewport.YOffset < m.viewport.TotalLineCount()-m.viewport.Height {
		m.viewport.SetYOffset(m.viewport.YOffset + m.viewport.Height)
		all += m.viewport.View()
	}
	for _, want := range []string{"TROY WU", "About Me", "Experience", "Projects", "Get In Touch", "Absolute Security", "Winner of ProduHacks"} {
		assert.True(t, strings.Contains(all, want), "missing %q", want)
	}
}
