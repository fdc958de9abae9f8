package model

import (
	"context"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/multiview/internal/application/usecase"
	"github.com/bnema/multiview/internal/domain/entity"
	"github.com/bnema/multiview/internal/infrastructure/clock"
	"github.com/bnema/multiview/internal/infrastructure/config"
)

const youTubeWatch = "https://www.youtube.com/watch?v=abc123"

func newTestBrowser(t *testing.T, opts BrowserOptions) (BrowserModel, *clock.ManualScheduler) {
	t.Helper()
	sched := clock.NewManualScheduler()
	m := NewBrowserModel(context.Background(), config.DefaultConfig(), sched, opts)
	t.Cleanup(m.Close)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(BrowserModel), sched
}

func send(t *testing.T, m BrowserModel, msg tea.Msg) (BrowserModel, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	b, ok := updated.(BrowserModel)
	require.True(t, ok, "Update must return a BrowserModel")
	return b, cmd
}

func press(t *testing.T, m BrowserModel, k tea.KeyType) BrowserModel {
	t.Helper()
	m, _ = send(t, m, tea.KeyMsg{Type: k})
	return m
}

func typeText(t *testing.T, m BrowserModel, text string) BrowserModel {
	t.Helper()
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

func TestBrowser_InitialState(t *testing.T) {
	m, _ := newTestBrowser(t, BrowserOptions{Count: 4})

	g := m.Grid()
	require.Equal(t, 4, g.Len())
	assert.Equal(t, entity.LayoutGrid, g.Layout)

	view := m.View()
	assert.Contains(t, view, "Multi-View Browser")
	assert.Contains(t, view, "Views: 4")
	assert.Contains(t, view, entity.NoURLLabel)
}

func TestBrowser_InvalidCountFallsBackToDefault(t *testing.T) {
	m, _ := newTestBrowser(t, BrowserOptions{Count: 0})
	assert.Equal(t, entity.DefaultPaneCount, m.Grid().Len())
}

func TestBrowser_ApplyURLThenLoadingElapses(t *testing.T) {
	m, sched := newTestBrowser(t, BrowserOptions{Count: 3})

	m = typeText(t, m, youTubeWatch)
	m = press(t, m, tea.KeyEnter)

	g := m.Grid()
	for _, p := range g.Panes {
		assert.Equal(t, entity.PaneVideo, p.Kind)
		assert.Contains(t, p.URL, "https://www.youtube.com/embed/abc123")
		assert.True(t, p.Loading)
	}
	assert.Equal(t, youTubeWatch, m.input.Value(), "input keeps the typed text")
	assert.Contains(t, m.View(), usecase.MessageURLApplied)

	sched.Advance(usecase.DefaultLoadingDelay)

	msg := m.waitForChange()()
	m, cmd := send(t, m, msg)
	assert.NotNil(t, cmd, "browser must keep listening for changes")
	assert.Zero(t, m.Grid().LoadingCount())
}

func TestBrowser_WhitespaceApplyIsIgnored(t *testing.T) {
	m, _ := newTestBrowser(t, BrowserOptions{Count: 2})

	m = typeText(t, m, "   ")
	m = press(t, m, tea.KeyEnter)

	assert.Zero(t, m.Grid().LoadingCount())
	assert.Nil(t, m.toasts.Current())
}

func TestBrowser_TypingUpdatesPendingURL(t *testing.T) {
	m, _ := newTestBrowser(t, BrowserOptions{Count: 2})

	m = typeText(t, m, "example.com")
	assert.Equal(t, "example.com", m.manager.Snapshot().PendingURL)
}

func TestBrowser_AddPaneFocusesNewPane(t *testing.T) {
	m, _ := newTestBrowser(t, BrowserOptions{Count: 2})

	m = press(t, m, tea.KeyCtrlA)

	require.Equal(t, 3, m.Grid().Len())
	assert.Equal(t, 2, m.focus)
}

func TestBrowser_AddPaneDisabledAtCapacity(t *testing.T) {
	m, _ := newTestBrowser(t, BrowserOptions{Count: entity.MaxPanes})

	m = press(t, m, tea.KeyCtrlA)

	assert.Equal(t, entity.MaxPanes, m.Grid().Len())
}

func TestBrowser_CloseFocusedPane(t *testing.T) {
	m, _ := newTestBrowser(t, BrowserOptions{Count: 3})

	m = press(t, m, tea.KeyTab)
	require.Equal(t, 1, m.focus)
	m = press(t, m, tea.KeyCtrlX)

	assert.Equal(t, []entity.PaneID{"view-0", "view-2"}, m.Grid().IDs())
}

func TestBrowser_CloseKeepsLastPane(t *testing.T) {
	m, _ := newTestBrowser(t, BrowserOptions{Count: 1})

	m = press(t, m, tea.KeyCtrlX)

	assert.Equal(t, 1, m.Grid().Len())
}

func TestBrowser_FocusWraps(t *testing.T) {
	m, _ := newTestBrowser(t, BrowserOptions{Count: 3})

	m = press(t, m, tea.KeyShiftTab)
	assert.Equal(t, 2, m.focus)
	m = press(t, m, tea.KeyTab)
	assert.Equal(t, 0, m.focus)
}

func TestBrowser_FocusClampedAfterRemoval(t *testing.T) {
	m, _ := newTestBrowser(t, BrowserOptions{Count: 3})

	m = press(t, m, tea.KeyShiftTab)
	m = press(t, m, tea.KeyCtrlX)

	assert.Equal(t, 2, m.Grid().Len())
	assert.Equal(t, 1, m.focus)
}

func TestBrowser_RefreshOneOnlyTouchesFocusedPane(t *testing.T) {
	m, sched := newTestBrowser(t, BrowserOptions{Count: 3})

	m = press(t, m, tea.KeyTab)
	m = press(t, m, tea.KeyCtrlE)

	g := m.Grid()
	assert.False(t, g.Panes[0].Loading)
	assert.True(t, g.Panes[1].Loading)
	assert.False(t, g.Panes[2].Loading)

	sched.Advance(usecase.DefaultLoadingDelay)
	m, _ = send(t, m, m.waitForChange()())
	assert.Zero(t, m.Grid().LoadingCount())
}

func TestBrowser_RefreshAll(t *testing.T) {
	m, _ := newTestBrowser(t, BrowserOptions{Count: 3})

	m = press(t, m, tea.KeyCtrlR)

	assert.Equal(t, 3, m.Grid().LoadingCount())
	assert.Contains(t, m.View(), "Loading...")
}

func TestBrowser_CloseAllResets(t *testing.T) {
	m, _ := newTestBrowser(t, BrowserOptions{Count: 5})

	m = typeText(t, m, youTubeWatch)
	m = press(t, m, tea.KeyEnter)
	m = press(t, m, tea.KeyShiftTab)
	m = press(t, m, tea.KeyCtrlW)

	g := m.Grid()
	require.Equal(t, 2, g.Len())
	for _, p := range g.Panes {
		assert.Empty(t, p.URL)
		assert.Equal(t, entity.PaneWebsite, p.Kind)
		assert.False(t, p.Loading)
	}
	assert.Empty(t, m.input.Value())
	assert.Equal(t, 0, m.focus)
	assert.Contains(t, m.View(), usecase.MessageAllReset)
}

func TestBrowser_ToggleLayoutAndTheme(t *testing.T) {
	m, _ := newTestBrowser(t, BrowserOptions{Count: 2})
	require.False(t, m.theme.Dark)

	m = press(t, m, tea.KeyCtrlL)
	assert.Equal(t, entity.LayoutStack, m.Grid().Layout)
	assert.Equal(t, 1, m.columns())

	m = press(t, m, tea.KeyCtrlT)
	assert.True(t, m.Grid().DarkMode)
	assert.True(t, m.theme.Dark, "theme follows dark mode")

	m = press(t, m, tea.KeyCtrlL)
	m = press(t, m, tea.KeyCtrlT)
	assert.Equal(t, entity.LayoutGrid, m.Grid().Layout)
	assert.False(t, m.theme.Dark)
}

func TestBrowser_InitialURLApplied(t *testing.T) {
	m, _ := newTestBrowser(t, BrowserOptions{Count: 2, InitialURL: "https://vimeo.com/123456"})

	m, _ = send(t, m, applyInitialURLMsg{URL: m.initialURL})

	for _, p := range m.Grid().Panes {
		assert.Equal(t, entity.PaneVideo, p.Kind)
		assert.Contains(t, p.URL, "https://player.vimeo.com/video/123456")
	}
	assert.Equal(t, "https://vimeo.com/123456", m.input.Value())
}

func TestBrowser_BackClosesSession(t *testing.T) {
	m, sched := newTestBrowser(t, BrowserOptions{Count: 2})

	m = press(t, m, tea.KeyCtrlR)
	require.Equal(t, 1, m.manager.PendingTasks())

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, backToSelectionMsg{}, cmd())
	assert.Zero(t, m.manager.PendingTasks())
	assert.Zero(t, sched.Advance(usecase.DefaultLoadingDelay))

	for len(m.changes) > 0 {
		<-m.changes
	}
	assert.Nil(t, m.waitForChange()(), "closed browser stops listening")
}

func TestBrowser_IgnoresChangesFromOtherSessions(t *testing.T) {
	m, _ := newTestBrowser(t, BrowserOptions{Count: 2})

	_, cmd := send(t, m, panesChangedMsg{source: make(chan struct{}, 1)})
	assert.Nil(t, cmd)
}

func TestBrowser_ConfigChangeRestyles(t *testing.T) {
	m, _ := newTestBrowser(t, BrowserOptions{Count: 2})

	cfg := config.DefaultConfig()
	cfg.Appearance.LightPalette.Accent = "#ff00ff"
	m, _ = send(t, m, ConfigChangedMsg{Config: cfg})

	assert.Equal(t, "#ff00ff", string(m.theme.Accent))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", truncate("abcdef", 2))
}

func TestVisibleRows_KeepsFocusOnScreen(t *testing.T) {
	m, _ := newTestBrowser(t, BrowserOptions{Count: 30})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 40, Height: chromeHeight + 2*paneHeight})
	require.Equal(t, 1, m.columns())

	for range 20 {
		m = press(t, m, tea.KeyTab)
	}

	rows := make([]string, m.Grid().Len())
	for i := range rows {
		rows[i] = fmt.Sprintf("row-%d", i)
	}
	visible := m.visibleRows(rows, 1)

	assert.Equal(t, []string{"row-19", "row-20"}, visible[:2])
	assert.Contains(t, visible[2], "28 more rows")
}
