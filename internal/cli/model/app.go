package model

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/multiview/internal/application/port"
	"github.com/bnema/multiview/internal/cli/styles"
	"github.com/bnema/multiview/internal/infrastructure/config"
	"github.com/bnema/multiview/internal/logging"
)

// Screen identifies the visible screen.
type Screen int

const (
	ScreenWelcome Screen = iota
	ScreenSelection
	ScreenBrowser
)

// String returns the screen name used in logs.
func (s Screen) String() string {
	switch s {
	case ScreenSelection:
		return "selection"
	case ScreenBrowser:
		return "browser"
	default:
		return "welcome"
	}
}

// ConfigChangedMsg carries a reloaded configuration into the program.
type ConfigChangedMsg struct {
	Config *config.Config
}

// AppDeps holds what the root model needs.
type AppDeps struct {
	Ctx       context.Context
	Config    *config.Config
	Scheduler port.Scheduler
	// Browser holds the options used when the browser opens. Count is
	// replaced by the chosen preset unless StartInBrowser is set.
	Browser        BrowserOptions
	StartInBrowser bool
}

// AppModel routes between the welcome, selection and browser screens.
type AppModel struct {
	deps   AppDeps
	cfg    *config.Config
	theme  *styles.Theme
	screen Screen

	welcome   WelcomeModel
	selection SelectionModel
	browser   *BrowserModel

	width  int
	height int
}

// NewAppModel creates the root model.
func NewAppModel(deps AppDeps) AppModel {
	if deps.Ctx == nil {
		deps.Ctx = context.Background()
	}
	cfg := deps.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	theme := styles.NewTheme(cfg, cfg.Appearance.DarkMode)

	m := AppModel{
		deps:      deps,
		cfg:       cfg,
		theme:     theme,
		screen:    ScreenWelcome,
		welcome:   NewWelcomeModel(theme),
		selection: NewSelectionModel(theme, cfg.Panes.EntityPresets()),
	}
	if deps.StartInBrowser {
		m.openBrowser(deps.Browser.Count)
	}
	return m
}

// Screen returns the visible screen.
func (m AppModel) Screen() Screen {
	return m.screen
}

// Browser returns the active browser, or nil.
func (m AppModel) Browser() *BrowserModel {
	return m.browser
}

// Close releases the active browser session.
func (m AppModel) Close() {
	if m.browser != nil {
		m.browser.Close()
	}
}

// Init implements tea.Model.
func (m AppModel) Init() tea.Cmd {
	if m.browser != nil {
		return m.browser.Init()
	}
	return nil
}

// Update implements tea.Model.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m.broadcast(msg)

	case ConfigChangedMsg:
		if msg.Config == nil {
			return m, nil
		}
		m.cfg = msg.Config
		m.restyle()
		if m.browser != nil {
			return m.updateBrowser(msg)
		}
		return m, nil

	case startSelectionMsg:
		m.setScreen(ScreenSelection)
		return m, nil

	case backToWelcomeMsg:
		m.setScreen(ScreenWelcome)
		return m, nil

	case presetChosenMsg:
		m.openBrowser(msg.Count)
		if m.width > 0 {
			sized, _ := m.browser.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
			b := sized.(BrowserModel)
			m.browser = &b
		}
		return m, m.browser.Init()

	case backToSelectionMsg:
		if m.browser != nil {
			m.browser.Close()
			m.browser = nil
		}
		m.setScreen(ScreenSelection)
		return m, nil
	}

	switch m.screen {
	case ScreenSelection:
		updated, cmd := m.selection.Update(msg)
		m.selection = updated.(SelectionModel)
		return m, cmd
	case ScreenBrowser:
		return m.updateBrowser(msg)
	default:
		updated, cmd := m.welcome.Update(msg)
		m.welcome = updated.(WelcomeModel)
		return m, cmd
	}
}

func (m AppModel) updateBrowser(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.browser == nil {
		return m, nil
	}
	updated, cmd := m.browser.Update(msg)
	b := updated.(BrowserModel)
	m.browser = &b
	return m, cmd
}

func (m AppModel) broadcast(msg tea.Msg) (tea.Model, tea.Cmd) {
	welcome, _ := m.welcome.Update(msg)
	m.welcome = welcome.(WelcomeModel)
	selection, _ := m.selection.Update(msg)
	m.selection = selection.(SelectionModel)
	if m.browser != nil {
		return m.updateBrowser(msg)
	}
	return m, nil
}

func (m *AppModel) openBrowser(count int) {
	if m.browser != nil {
		m.browser.Close()
	}
	opts := m.deps.Browser
	opts.Count = count
	b := NewBrowserModel(m.deps.Ctx, m.cfg, m.deps.Scheduler, opts)
	m.browser = &b
	m.setScreen(ScreenBrowser)
}

func (m *AppModel) setScreen(s Screen) {
	logging.FromContext(m.deps.Ctx).Debug().
		Str("from", m.screen.String()).
		Str("to", s.String()).
		Msg("screen changed")
	m.screen = s
}

func (m *AppModel) restyle() {
	m.theme = styles.NewTheme(m.cfg, m.cfg.Appearance.DarkMode)

	welcome := NewWelcomeModel(m.theme)
	welcome.width = m.welcome.width
	m.welcome = welcome

	selection := NewSelectionModel(m.theme, m.cfg.Panes.EntityPresets())
	selection.width = m.selection.width
	selection.selected = m.selection.selected
	if m.selection.cursor < len(selection.presets) {
		selection.cursor = m.selection.cursor
	}
	m.selection = selection
}

// View implements tea.Model.
func (m AppModel) View() string {
	switch m.screen {
	case ScreenSelection:
		return m.selection.View()
	case ScreenBrowser:
		if m.browser != nil {
			return m.browser.View()
		}
	}
	return m.welcome.View()
}
