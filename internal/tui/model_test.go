package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-gallery/internal/catalogue"
	"portfolio-gallery/internal/domain"
)

func testModel(t *testing.T) Model {
	t.Helper()
	cat, err := catalogue.New([]domain.Project{
		{Name: "Shop Front", Category: "Commerce", OneLiner: "Storefront", Link: "https://shop.example", Images: []string{"a.png"}, Featured: true},
		{Name: "Chat Bot", Category: "AI", Images: []string{"b.png"}},
		{Name: "Shop Admin", Category: "Commerce", Images: []string{"c.png"}},
	})
	require.NoError(t, err)
	return New(cat)
}

func press(m Model, keys ...tea.KeyMsg) Model {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(Model)
	}
	return m
}

func typed(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_TypingFilters(t *testing.T) {
	m := press(testModel(t), typed("s"), typed("h"), typed("o"), typed("p"))

	assert.Equal(t, "shop", m.State().Query().Text)
	require.Len(t, m.Results(), 2)
	assert.Equal(t, "Shop Front", m.Results()[0].Name)
	assert.Equal(t, "Shop Admin", m.Results()[1].Name)
}

func TestModel_TabCyclesCategories(t *testing.T) {
	m := testModel(t)

	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "Commerce", m.State().Query().Category)
	assert.Len(t, m.Results(), 2)

	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "AI", m.State().Query().Category)

	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "All", m.State().Query().Category)

	m = press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, "AI", m.State().Query().Category)
}

func TestModel_SelectAndDismiss(t *testing.T) {
	m := press(testModel(t), tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})

	sel, ok := m.State().Selection()
	require.True(t, ok)
	assert.Equal(t, "Chat Bot", sel.Name)
	assert.Contains(t, m.View(), "Chat Bot")

	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	_, ok = m.State().Selection()
	assert.False(t, ok)
}

func TestModel_CursorClamped(t *testing.T) {
	m := press(testModel(t), tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.Cursor())

	m = press(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, m.Cursor())

	m = press(m, typed("z"), typed("z"), typed("z"))
	assert.Empty(t, m.Results())
	assert.Equal(t, 0, m.Cursor())
	assert.Contains(t, m.View(), "No projects match.")
}

func TestModel_Toggles(t *testing.T) {
	m := testModel(t)
	assert.True(t, m.State().DarkMode())
	assert.False(t, m.State().ShowRecommendations())

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlT}, tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.False(t, m.State().DarkMode())
	assert.True(t, m.State().ShowRecommendations())
	assert.Contains(t, m.View(), "Recommended")
}

func TestModel_Quit(t *testing.T) {
	_, cmd := testModel(t).Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
