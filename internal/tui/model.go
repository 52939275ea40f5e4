// Package tui is an interactive terminal browser over the catalogue.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"portfolio-gallery/internal/aggregate"
	"portfolio-gallery/internal/catalogue"
	"portfolio-gallery/internal/domain"
	"portfolio-gallery/internal/query"
	"portfolio-gallery/internal/session"
	"portfolio-gallery/internal/share"
)

const visibleRows = 12

// Model is the bubbletea model for the browser. All gallery state lives in
// a session.State; the model only tracks cursor and layout.
type Model struct {
	cat        *catalogue.Catalogue
	state      *session.State
	categories []string
	featured   []domain.Project

	input   textinput.Model
	results []domain.Project
	catIdx  int
	cursor  int
	width   int
	styles  Styles
}

// New returns a Model showing every project under "All".
func New(cat *catalogue.Catalogue) Model {
	in := textinput.New()
	in.Placeholder = "Search projects..."
	in.CharLimit = 80
	in.Width = 40
	in.Focus()

	m := Model{
		cat:        cat,
		state:      session.NewState(),
		categories: append([]string{query.AllCategories}, cat.Categories()...),
		featured:   aggregate.Featured(cat.Projects(), aggregate.FeaturedLimit),
		input:      in,
	}
	m.applyTheme()
	m.refresh()
	return m
}

// State exposes the underlying gallery state.
func (m Model) State() *session.State { return m.state }

// Results returns the projects currently listed.
func (m Model) Results() []domain.Project { return m.results }

// Cursor returns the index of the highlighted result.
func (m Model) Cursor() int { return m.cursor }

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if _, ok := m.state.Selection(); ok {
				m.state.Dismiss()
				return m, nil
			}
			return m, tea.Quit
		case "tab":
			m.cycleCategory(1)
			return m, nil
		case "shift+tab":
			m.cycleCategory(-1)
			return m, nil
		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down":
			if m.cursor < len(m.results)-1 {
				m.cursor++
			}
			return m, nil
		case "enter":
			if len(m.results) > 0 {
				m.state.Select(m.results[m.cursor])
			}
			return m, nil
		case "ctrl+t":
			_, _ = m.state.Toggle(session.ToggleDarkMode)
			m.applyTheme()
			return m, nil
		case "ctrl+r":
			_, _ = m.state.Toggle(session.ToggleRecommendations)
			return m, nil
		}
	}

	if _, ok := m.state.Selection(); ok {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != m.state.Query().Text {
		m.state.SetSearchTerm(m.input.Value())
		m.refresh()
	}
	return m, cmd
}

func (m *Model) cycleCategory(step int) {
	n := len(m.categories)
	m.catIdx = ((m.catIdx+step)%n + n) % n
	m.state.SetCategory(m.categories[m.catIdx])
	m.refresh()
}

func (m *Model) refresh() {
	m.results = m.state.Results(m.cat)
	if m.cursor >= len(m.results) {
		m.cursor = max(len(m.results)-1, 0)
	}
}

func (m *Model) applyTheme() {
	if m.state.DarkMode() {
		m.styles = NewStyles(DarkTheme)
		return
	}
	m.styles = NewStyles(LightTheme)
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Portfolio Gallery"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	if p, ok := m.state.Selection(); ok {
		b.WriteString(m.renderDetail(p))
	} else {
		b.WriteString(m.renderList())
	}

	if m.state.ShowRecommendations() && len(m.featured) > 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.Title.Render("Recommended"))
		b.WriteString("\n")
		for _, p := range m.featured {
			b.WriteString(m.styles.Item.Render("★ " + p.Name))
			b.WriteString("\n")
		}
	}

	b.WriteString(m.styles.Footer.Render("type to search · tab category · enter open · esc back · ctrl+t theme · ctrl+r picks · ctrl+c quit"))
	return m.styles.App.Render(b.String())
}

func (m Model) renderTabs() string {
	tabs := make([]string, len(m.categories))
	for i, c := range m.categories {
		if i == m.catIdx {
			tabs[i] = m.styles.ActiveTab.Render(c)
		} else {
			tabs[i] = m.styles.Tab.Render(c)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderList() string {
	if len(m.results) == 0 {
		return m.styles.Muted.Render("No projects match.") + "\n"
	}

	start := 0
	if m.cursor >= visibleRows {
		start = m.cursor - visibleRows + 1
	}
	end := min(start+visibleRows, len(m.results))

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", m.styles.Muted.Render(fmt.Sprintf("%d projects", len(m.results))))
	for i := start; i < end; i++ {
		p := m.results[i]
		line := fmt.Sprintf("%s  %s", p.Name, m.styles.Muted.Render(p.Category))
		if i == m.cursor {
			b.WriteString(m.styles.ActiveItem.Render("> " + line))
		} else {
			b.WriteString(m.styles.Item.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderDetail(p domain.Project) string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(p.Name))
	b.WriteString("\n")
	if p.Featured {
		b.WriteString(m.styles.Badge.Render("featured"))
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "%s\n\n", p.OneLiner)
	fmt.Fprintf(&b, "Category: %s\n", p.Category)
	if p.BuiltIn != "" {
		fmt.Fprintf(&b, "Built in: %s\n", p.BuiltIn)
	}
	fmt.Fprintf(&b, "Stack:    %s\n", strings.Join(p.TechStack, ", "))
	fmt.Fprintf(&b, "Views:    %d  Rating: %.1f\n", p.Views, p.Rating)
	if p.Problem != "" {
		fmt.Fprintf(&b, "\nProblem:  %s\n", p.Problem)
	}
	if p.Solution != "" {
		fmt.Fprintf(&b, "Solution: %s\n", p.Solution)
	}
	for _, l := range p.Learnings {
		fmt.Fprintf(&b, "  - %s\n", l)
	}
	if p.Link != "" {
		fmt.Fprintf(&b, "\n%s\n", p.Link)
		b.WriteString(m.styles.Muted.Render(share.For(p).Twitter))
	}
	return m.styles.Detail.Render(b.String()) + "\n"
}
