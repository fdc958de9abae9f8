package model

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/multiview/internal/application/port"
	"github.com/bnema/multiview/internal/application/usecase"
	"github.com/bnema/multiview/internal/cli/styles"
	"github.com/bnema/multiview/internal/domain/entity"
	"github.com/bnema/multiview/internal/domain/service"
	"github.com/bnema/multiview/internal/infrastructure/config"
	"github.com/bnema/multiview/internal/logging"
)

const (
	minPaneWidth = 36
	paneHeight   = 6 // border included
	chromeHeight = 7 // header, input box, toast line, help
)

// panesChangedMsg is delivered whenever the pane manager or the toast changed
// outside of Update, typically when a loading window elapses. source tells
// browsers apart so a message from a closed session is dropped.
type panesChangedMsg struct {
	source chan struct{}
}

// applyInitialURLMsg applies the URL given on the command line.
type applyInitialURLMsg struct {
	URL string
}

// backToSelectionMsg leaves the browser.
type backToSelectionMsg struct{}

// BrowserOptions configures a browser session.
type BrowserOptions struct {
	Count      int
	InitialURL string
	Layout     entity.LayoutMode
	DarkMode   bool
}

// BrowserModel is the multi-pane screen.
type BrowserModel struct {
	ctx     context.Context
	cfg     *config.Config
	theme   *styles.Theme
	manager *usecase.ManagePanesUseCase
	toasts  *ToastNotifier

	changes   chan struct{}
	done      chan struct{}
	closeOnce *sync.Once

	grid       *entity.Grid
	input      textinput.Model
	spinner    spinner.Model
	help       help.Model
	keys       styles.BrowserKeyMap
	focus      int
	initialURL string
	width      int
	height     int
}

// NewBrowserModel creates the browser screen and its pane manager.
// Call Close (or leave with esc) to stop pending loading tasks.
func NewBrowserModel(ctx context.Context, cfg *config.Config, scheduler port.Scheduler, opts BrowserOptions) BrowserModel {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	changes := make(chan struct{}, 1)
	toasts := NewToastNotifier(scheduler, func() { signal(changes) })
	manager := usecase.NewManagePanesUseCase(scheduler, toasts, usecase.ManagePanesConfig{
		InitialCount: opts.Count,
		LoadingDelay: cfg.Panes.LoadingDelay(),
		Layout:       opts.Layout,
		DarkMode:     opts.DarkMode,
	})
	manager.OnChange(func(*entity.Grid) { signal(changes) })

	theme := styles.NewTheme(cfg, opts.DarkMode)
	input := styles.NewURLInput(theme)
	input.Focus()

	return BrowserModel{
		ctx:        ctx,
		cfg:        cfg,
		theme:      theme,
		manager:    manager,
		toasts:     toasts,
		changes:    changes,
		done:       make(chan struct{}),
		closeOnce:  &sync.Once{},
		grid:       manager.Snapshot(),
		input:      input,
		spinner:    styles.NewDefaultSpinner(theme),
		help:       styles.NewStyledHelp(theme),
		keys:       styles.DefaultBrowserKeyMap(),
		initialURL: strings.TrimSpace(opts.InitialURL),
		width:      80,
		height:     24,
	}
}

// signal wakes waitForChange without blocking. Pending signals coalesce.
func signal(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}

// waitForChange blocks until the next background change or until the
// browser is closed.
func (m BrowserModel) waitForChange() tea.Cmd {
	changes, done := m.changes, m.done
	return func() tea.Msg {
		select {
		case <-changes:
			return panesChangedMsg{source: changes}
		case <-done:
			return nil
		}
	}
}

// Init implements tea.Model.
func (m BrowserModel) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.spinner.Tick, m.waitForChange()}
	if m.initialURL != "" {
		url := m.initialURL
		cmds = append(cmds, func() tea.Msg { return applyInitialURLMsg{URL: url} })
	}
	return tea.Batch(cmds...)
}

// Close stops pending loading and toast timers. Safe to call more than once.
func (m BrowserModel) Close() {
	m.closeOnce.Do(func() {
		m.manager.Close()
		m.toasts.Clear(m.ctx)
		close(m.done)
	})
}

// Grid returns the last rendered snapshot.
func (m BrowserModel) Grid() *entity.Grid {
	return m.grid
}

// Update implements tea.Model.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(10, msg.Width-12)
		return m, nil

	case panesChangedMsg:
		if msg.source != m.changes {
			return m, nil
		}
		m.sync()
		return m, m.waitForChange()

	case applyInitialURLMsg:
		m.input.SetValue(msg.URL)
		m.manager.SetPendingURL(msg.URL)
		m.apply()
		return m, nil

	case ConfigChangedMsg:
		m.applyConfig(msg.Config)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m BrowserModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.Close()
		return m, func() tea.Msg { return backToSelectionMsg{} }

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Apply):
		m.apply()

	case key.Matches(msg, m.keys.Add):
		if pane, ok := m.manager.AddPane(m.ctx); ok {
			m.sync()
			if idx, _ := m.grid.Find(pane.ID); idx >= 0 {
				m.focus = idx
			}
		}

	case key.Matches(msg, m.keys.RefreshAll):
		m.manager.RefreshAll(m.ctx)
		m.sync()

	case key.Matches(msg, m.keys.RefreshOne):
		if pane := m.focusedPane(); pane != nil {
			m.manager.RefreshOne(m.ctx, pane.ID)
			m.sync()
		}

	case key.Matches(msg, m.keys.Close):
		if pane := m.focusedPane(); pane != nil && m.grid.CanRemove() {
			m.manager.RemovePane(m.ctx, pane.ID)
			m.sync()
		}

	case key.Matches(msg, m.keys.CloseAll):
		m.manager.CloseAll(m.ctx)
		m.input.SetValue("")
		m.focus = 0
		m.sync()

	case key.Matches(msg, m.keys.ToggleLayout):
		m.manager.ToggleLayout(m.ctx)
		m.sync()

	case key.Matches(msg, m.keys.ToggleTheme):
		m.manager.ToggleTheme(m.ctx)
		m.sync()

	case key.Matches(msg, m.keys.NextPane):
		if n := m.grid.Len(); n > 0 {
			m.focus = (m.focus + 1) % n
		}

	case key.Matches(msg, m.keys.PrevPane):
		if n := m.grid.Len(); n > 0 {
			m.focus = (m.focus - 1 + n) % n
		}

	default:
		var cmd tea.Cmd
		before := m.input.Value()
		m.input, cmd = m.input.Update(msg)
		if value := m.input.Value(); value != before {
			m.manager.SetPendingURL(value)
		}
		return m, cmd
	}

	return m, nil
}

func (m *BrowserModel) apply() {
	out := m.manager.ApplyMainURL(m.ctx, m.input.Value())
	if !out.Applied {
		return
	}
	logging.FromContext(m.ctx).Debug().
		Str("embed_url", out.EmbedURL).
		Bool("video", out.IsVideo).
		Msg("main url submitted")
	m.sync()
}

// sync pulls a fresh snapshot and keeps focus and theme consistent with it.
func (m *BrowserModel) sync() {
	m.grid = m.manager.Snapshot()
	if m.focus >= m.grid.Len() {
		m.focus = max(0, m.grid.Len()-1)
	}
	if m.grid.DarkMode != m.theme.Dark {
		m.restyle(styles.NewTheme(m.cfg, m.grid.DarkMode))
	}
}

func (m *BrowserModel) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	m.cfg = cfg
	m.restyle(styles.NewTheme(cfg, m.grid.DarkMode))
}

func (m *BrowserModel) restyle(theme *styles.Theme) {
	m.theme = theme
	styles.RestyleInput(theme, &m.input)
	m.spinner.Style = lipgloss.NewStyle().Foreground(theme.Accent)
	showAll, width := m.help.ShowAll, m.help.Width
	m.help = styles.NewStyledHelp(theme)
	m.help.ShowAll, m.help.Width = showAll, width
}

func (m BrowserModel) focusedPane() *entity.Pane {
	if m.focus < 0 || m.focus >= m.grid.Len() {
		return nil
	}
	return m.grid.Panes[m.focus]
}

// View implements tea.Model.
func (m BrowserModel) View() string {
	sections := []string{
		m.renderHeader(),
		m.theme.InputBox(m.input.View(), true),
		m.renderPanes(),
	}

	if toast := renderToast(m.theme, m.toasts.Current()); toast != "" {
		sections = append(sections, toast)
	}
	sections = append(sections, m.help.View(m.keys))

	return lipgloss.NewStyle().
		Background(m.theme.Background).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m BrowserModel) renderHeader() string {
	layoutIcon := styles.IconGrid
	if m.grid.Layout == entity.LayoutStack {
		layoutIcon = styles.IconStack
	}
	themeIcon := styles.IconSun
	if m.grid.DarkMode {
		themeIcon = styles.IconMoon
	}

	addLabel := m.theme.Button.Render(styles.IconPlus + " Add View")
	if !m.grid.CanAdd() {
		addLabel = m.theme.ButtonDisabled.Render(styles.IconPlus + " Add View")
	}

	return lipgloss.JoinHorizontal(lipgloss.Center,
		m.theme.Title.Render(appTitle),
		"  ",
		m.theme.AccentBadge(fmt.Sprintf("Views: %d", m.grid.Len())),
		"  ",
		m.theme.MutedBadge(layoutIcon+" "+m.grid.Layout.String()),
		" ",
		m.theme.MutedBadge(themeIcon),
		"  ",
		addLabel,
	)
}

// columns returns how many panes fit side by side.
func (m BrowserModel) columns() int {
	if m.grid.Layout == entity.LayoutStack {
		return 1
	}
	cols := max(1, m.width/minPaneWidth)
	return min(cols, max(1, m.grid.Len()))
}

func (m BrowserModel) renderPanes() string {
	cols := m.columns()
	paneWidth := max(minPaneWidth, m.width/cols) - 2

	var rows []string
	for start := 0; start < m.grid.Len(); start += cols {
		end := min(start+cols, m.grid.Len())
		cells := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cells = append(cells, m.renderPane(m.grid.Panes[i], i == m.focus, paneWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return strings.Join(m.visibleRows(rows, cols), "\n")
}

// visibleRows keeps the row holding the focused pane on screen.
func (m BrowserModel) visibleRows(rows []string, cols int) []string {
	capacity := max(1, (m.height-chromeHeight)/paneHeight)
	if len(rows) <= capacity {
		return rows
	}

	focusRow := m.focus / cols
	start := max(0, focusRow-capacity+1)
	end := min(len(rows), start+capacity)

	visible := append([]string(nil), rows[start:end]...)
	if hidden := len(rows) - (end - start); hidden > 0 {
		visible = append(visible, m.theme.Subtle.Render(fmt.Sprintf("%d more rows", hidden)))
	}
	return visible
}

func (m BrowserModel) renderPane(pane *entity.Pane, focused bool, width int) string {
	inner := max(10, width-4)

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		m.theme.ListItemTitle.Render(truncate(pane.Label(), inner-12)),
		" ",
		m.theme.KindBadge(pane.Kind),
	)

	content := service.ResolveContent(pane, m.cfg.Placeholder.Endpoint)
	var body string
	switch content.Kind {
	case service.ContentSpinner:
		body = m.theme.LoadingView(m.spinner.View(), "Loading...")
	case service.ContentEmbeddedPlayer:
		body = m.theme.Highlight.Render(styles.IconPlay+" embedded player") + "\n" +
			m.theme.Subtle.Render(truncate(content.URL, inner))
	case service.ContentNativeVideo:
		body = m.theme.Highlight.Render(styles.IconVideo+" native video (muted, looping)") + "\n" +
			m.theme.Subtle.Render(truncate(content.URL, inner))
	default:
		body = m.theme.Normal.Render(styles.IconImage+" preview") + "\n" +
			m.theme.Subtle.Render(truncate(content.URL, inner))
	}

	style := m.theme.Pane
	if focused {
		style = m.theme.PaneFocused
	}
	return style.
		Width(width).
		Height(paneHeight - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, "", body))
}

// truncate shortens s to maxLen runes with an ellipsis.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}

	const ellipsis = "..."
	if maxLen <= len(ellipsis) {
		return string(r[:max(0, maxLen)])
	}
	return string(r[:maxLen-len(ellipsis)]) + ellipsis
}
