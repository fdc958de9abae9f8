package model

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/multiview/internal/cli/styles"
	"github.com/bnema/multiview/internal/domain/entity"
)

// presetChosenMsg opens the browser with Count panes.
type presetChosenMsg struct {
	Count int
}

// backToWelcomeMsg returns from the selection screen.
type backToWelcomeMsg struct{}

// SelectionModel lets the user pick a starting pane count.
type SelectionModel struct {
	theme   *styles.Theme
	keys    styles.SelectionKeyMap
	help    help.Model
	presets []entity.Preset
	cursor  int
	// selected is the count opened last, highlighted when coming back.
	selected int
	width    int
}

// NewSelectionModel creates the preset selection screen.
// An empty preset list falls back to the built-in presets.
func NewSelectionModel(theme *styles.Theme, presets []entity.Preset) SelectionModel {
	if len(presets) == 0 {
		presets = entity.DefaultPresets()
	}
	return SelectionModel{
		theme:   theme,
		keys:    styles.DefaultSelectionKeyMap(),
		help:    styles.NewStyledHelp(theme),
		presets: presets,
	}
}

// Init implements tea.Model.
func (SelectionModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m SelectionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m SelectionModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		return m, func() tea.Msg { return backToWelcomeMsg{} }
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.presets)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Choose):
		count := m.presets[m.cursor].Panes
		m.selected = count
		return m, func() tea.Msg { return presetChosenMsg{Count: count} }
	}
	return m, nil
}

// View implements tea.Model.
func (m SelectionModel) View() string {
	header := lipgloss.JoinVertical(lipgloss.Center,
		m.theme.Title.Render("Choose Your Setup"),
		m.theme.Subtle.Render("Select number of windows to begin"),
	)

	options := make([]string, 0, len(m.presets))
	for i, p := range m.presets {
		options = append(options, m.renderOption(p, i == m.cursor))
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		m.theme.Box.Render(header),
		"",
		lipgloss.JoinVertical(lipgloss.Left, options...),
		"",
		m.help.View(m.keys),
	)

	if m.width > 0 {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body)
	}
	return body
}

func (m SelectionModel) renderOption(p entity.Preset, focused bool) string {
	title := m.theme.ListItemTitle.Bold(true).Render(p.Name)
	badge := m.theme.MutedBadge(fmt.Sprintf("%d Windows", p.Panes))
	if focused || p.Panes == m.selected {
		badge = m.theme.AccentBadge(fmt.Sprintf("%d Windows", p.Panes))
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", badge),
		m.theme.ListItemDesc.Render(p.Description),
	)

	style := m.theme.Pane.Width(48)
	if focused {
		style = m.theme.PaneFocused.Width(48)
	}
	return style.Render(content)
}
