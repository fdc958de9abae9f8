// Package model holds the Bubble Tea screens of the multiview TUI.
package model

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/multiview/internal/cli/styles"
)

const (
	appTitle   = "Multi-View Browser"
	appTagline = "The Ultimate Multi-Window Experience"
	watchLabel = "Watch Now!"
)

type feature struct {
	icon        string
	title       string
	description string
}

var features = []feature{
	{styles.IconPane, "Multiple Views", "Open up to 100 windows simultaneously for efficient multitasking"},
	{styles.IconVideo, "Video Support", "Automatic video detection for YouTube, Vimeo, and more"},
	{styles.IconGrid, "Flexible Layout", "Switch between grid and stack layouts for optimal viewing"},
	{styles.IconMoon, "Dark Mode", "Easy on the eyes with beautiful dark mode support"},
}

// startSelectionMsg leaves the welcome screen.
type startSelectionMsg struct{}

// WelcomeModel is the landing screen.
type WelcomeModel struct {
	theme *styles.Theme
	keys  styles.WelcomeKeyMap
	help  help.Model
	width int
}

// NewWelcomeModel creates the welcome screen.
func NewWelcomeModel(theme *styles.Theme) WelcomeModel {
	return WelcomeModel{
		theme: theme,
		keys:  styles.DefaultWelcomeKeyMap(),
		help:  styles.NewStyledHelp(theme),
	}
}

// Init implements tea.Model.
func (WelcomeModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m WelcomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Start):
			return m, func() tea.Msg { return startSelectionMsg{} }
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m WelcomeModel) View() string {
	header := lipgloss.JoinVertical(lipgloss.Center,
		m.theme.Title.Render(appTitle),
		m.theme.Subtle.Render(appTagline),
		"",
		m.theme.Button.Render(watchLabel+" "+styles.IconVideo),
	)

	cards := make([]string, 0, len(features))
	for _, f := range features {
		cards = append(cards, m.renderFeature(f))
	}
	grid := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, cards[0], " ", cards[1]),
		lipgloss.JoinHorizontal(lipgloss.Top, cards[2], " ", cards[3]),
	)

	body := lipgloss.JoinVertical(lipgloss.Center,
		m.theme.Box.Render(header),
		"",
		m.theme.Subtitle.Render("Key Features"),
		grid,
		"",
		m.help.View(m.keys),
	)

	if m.width > 0 {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body)
	}
	return body
}

func (m WelcomeModel) renderFeature(f feature) string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Highlight.Render(f.icon+" "+f.title),
		m.theme.Subtle.Width(30).Render(f.description),
	)
	return m.theme.Pane.Width(34).Render(content)
}
