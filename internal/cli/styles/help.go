package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}

// WelcomeKeyMap defines keybindings for the welcome screen.
type WelcomeKeyMap struct {
	Start key.Binding
	Quit  key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k WelcomeKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k WelcomeKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Start, k.Quit}}
}

// DefaultWelcomeKeyMap returns the default welcome keybindings.
func DefaultWelcomeKeyMap() WelcomeKeyMap {
	return WelcomeKeyMap{
		Start: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "watch now"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// SelectionKeyMap defines keybindings for the preset selection screen.
type SelectionKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k SelectionKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Choose, k.Back, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k SelectionKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Choose},
		{k.Back, k.Quit},
	}
}

// DefaultSelectionKeyMap returns the default selection keybindings.
func DefaultSelectionKeyMap() SelectionKeyMap {
	return SelectionKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Choose: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// BrowserKeyMap defines keybindings for the pane browser.
type BrowserKeyMap struct {
	Apply        key.Binding
	Add          key.Binding
	RefreshAll   key.Binding
	RefreshOne   key.Binding
	Close        key.Binding
	CloseAll     key.Binding
	ToggleLayout key.Binding
	ToggleTheme  key.Binding
	NextPane     key.Binding
	PrevPane     key.Binding
	Back         key.Binding
	Help         key.Binding
	Quit         key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k BrowserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Apply, k.Add, k.RefreshAll, k.CloseAll, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k BrowserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Apply, k.Add, k.RefreshAll, k.CloseAll},
		{k.NextPane, k.PrevPane, k.RefreshOne, k.Close},
		{k.ToggleLayout, k.ToggleTheme},
		{k.Back, k.Help, k.Quit},
	}
}

// DefaultBrowserKeyMap returns the default browser keybindings.
func DefaultBrowserKeyMap() BrowserKeyMap {
	return BrowserKeyMap{
		Apply: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply url"),
		),
		Add: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("C-a", "add view"),
		),
		RefreshAll: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("C-r", "refresh all"),
		),
		RefreshOne: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("C-e", "refresh view"),
		),
		Close: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("C-x", "close view"),
		),
		CloseAll: key.NewBinding(
			key.WithKeys("ctrl+w"),
			key.WithHelp("C-w", "close all"),
		),
		ToggleLayout: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("C-l", "grid/stack"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("C-t", "dark mode"),
		),
		NextPane: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next view"),
		),
		PrevPane: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev view"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "setup"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("C-c", "quit"),
		),
	}
}
