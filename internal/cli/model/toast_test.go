package model

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/multiview/internal/application/port"
	"github.com/bnema/multiview/internal/cli/styles"
	"github.com/bnema/multiview/internal/infrastructure/clock"
)

func TestToastNotifier_AutoDismiss(t *testing.T) {
	sched := clock.NewManualScheduler()
	changes := 0
	n := NewToastNotifier(sched, func() { changes++ })
	ctx := context.Background()

	id := n.Show(ctx, "URL applied to all views", port.NotificationSuccess, 0)
	require.NotEmpty(t, id)

	current := n.Current()
	require.NotNil(t, current)
	assert.Equal(t, "URL applied to all views", current.Message)
	assert.Equal(t, port.NotificationSuccess, current.Type)

	sched.Advance(toastDismissTimeoutMs*time.Millisecond - time.Millisecond)
	assert.NotNil(t, n.Current(), "toast should still be visible")

	sched.Advance(time.Millisecond)
	assert.Nil(t, n.Current())
	assert.Equal(t, 1, changes)
}

func TestToastNotifier_NewToastReplacesAndRestartsTimer(t *testing.T) {
	sched := clock.NewManualScheduler()
	n := NewToastNotifier(sched, nil)
	ctx := context.Background()

	first := n.Show(ctx, "first", port.NotificationInfo, 0)
	sched.Advance(time.Second)
	second := n.Show(ctx, "second", port.NotificationInfo, 0)
	assert.NotEqual(t, first, second)

	sched.Advance(time.Second)
	current := n.Current()
	require.NotNil(t, current, "second toast must get its own full duration")
	assert.Equal(t, "second", current.Message)

	sched.Advance(500 * time.Millisecond)
	assert.Nil(t, n.Current())
}

func TestToastNotifier_DismissIgnoresStaleID(t *testing.T) {
	sched := clock.NewManualScheduler()
	n := NewToastNotifier(sched, nil)
	ctx := context.Background()

	old := n.Show(ctx, "old", port.NotificationInfo, 0)
	n.Show(ctx, "new", port.NotificationInfo, 0)

	n.Dismiss(ctx, old)
	current := n.Current()
	require.NotNil(t, current)
	assert.Equal(t, "new", current.Message)
}

func TestToastNotifier_ClearStopsTimer(t *testing.T) {
	sched := clock.NewManualScheduler()
	changes := 0
	n := NewToastNotifier(sched, func() { changes++ })
	ctx := context.Background()

	n.Show(ctx, "hello", port.NotificationWarning, 200)
	n.Clear(ctx)

	assert.Nil(t, n.Current())
	assert.Equal(t, 0, sched.Advance(time.Second), "cleared toast must not fire")
	assert.Zero(t, changes)
}

func TestRenderToast(t *testing.T) {
	theme := styles.NewTheme(nil, false)

	assert.Empty(t, renderToast(theme, nil))
	out := renderToast(theme, &Toast{ID: "x", Message: "All windows reset", Type: port.NotificationInfo})
	assert.Contains(t, out, "All windows reset")
}
