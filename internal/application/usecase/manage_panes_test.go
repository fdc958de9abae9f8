package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/multiview/internal/application/port"
	"github.com/bnema/multiview/internal/application/port/mocks"
	"github.com/bnema/multiview/internal/domain/entity"
	"github.com/bnema/multiview/internal/infrastructure/clock"
)

const youTubeEmbed = "https://www.youtube.com/embed/abc123?autoplay=1&mute=1&playsinline=1&enablejsapi=1&controls=1&fs=0"

func sequentialIDs() IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("added-%d", n)
	}
}

func sequentialSeeds() SeedGenerator {
	n := 0
	return func() int {
		n++
		return n
	}
}

func newTestManager(t *testing.T, count int, notifier port.Notification) (*ManagePanesUseCase, *clock.ManualScheduler) {
	t.Helper()
	sched := clock.NewManualScheduler()
	uc := NewManagePanesUseCase(sched, notifier, ManagePanesConfig{
		InitialCount:  count,
		IDGenerator:   sequentialIDs(),
		SeedGenerator: sequentialSeeds(),
	})
	t.Cleanup(uc.Close)
	return uc, sched
}

func TestManagePanes_InitialState(t *testing.T) {
	uc, _ := newTestManager(t, 4, nil)

	g := uc.Snapshot()
	require.Equal(t, 4, g.Len())
	assert.Equal(t, []entity.PaneID{"view-0", "view-1", "view-2", "view-3"}, g.IDs())
	for _, p := range g.Panes {
		assert.Equal(t, entity.PaneWebsite, p.Kind)
		assert.Empty(t, p.URL)
		assert.False(t, p.Loading)
	}
	assert.Equal(t, DefaultLoadingDelay, uc.LoadingDelay())
}

func TestManagePanes_DefaultCount(t *testing.T) {
	uc, _ := newTestManager(t, 0, nil)
	assert.Equal(t, entity.DefaultPaneCount, uc.Snapshot().Len())
}

func TestManagePanes_Initialize(t *testing.T) {
	ctx := context.Background()
	uc, sched := newTestManager(t, 2, nil)
	uc.ToggleLayout(ctx)
	uc.RefreshAll(ctx)
	require.Equal(t, 1, uc.PendingTasks())

	uc.Initialize(ctx, 6)

	g := uc.Snapshot()
	assert.Equal(t, 6, g.Len())
	assert.Equal(t, entity.PaneID("view-5"), g.Panes[5].ID)
	assert.Equal(t, entity.LayoutStack, g.Layout, "layout survives re-initialization")
	assert.Zero(t, uc.PendingTasks())
	assert.Zero(t, sched.Pending())
}

func TestManagePanes_ApplyMainURL_YouTube(t *testing.T) {
	ctx := context.Background()
	notifier := mocks.NewMockNotification(t)
	notifier.EXPECT().
		Show(mock.Anything, MessageURLApplied, port.NotificationSuccess, 0).
		Return(port.NotificationID("n1")).
		Once()

	uc, sched := newTestManager(t, 3, notifier)

	out := uc.ApplyMainURL(ctx, "https://youtu.be/abc123")
	require.True(t, out.Applied)
	assert.True(t, out.IsVideo)
	assert.Equal(t, youTubeEmbed, out.EmbedURL)

	g := uc.Snapshot()
	assert.Equal(t, youTubeEmbed, g.LastAppliedURL)
	for _, p := range g.Panes {
		assert.Equal(t, entity.PaneVideo, p.Kind)
		assert.Equal(t, youTubeEmbed, p.URL)
		assert.True(t, p.Loading)
	}

	sched.Advance(DefaultLoadingDelay - time.Millisecond)
	assert.Equal(t, 3, uc.Snapshot().LoadingCount())

	sched.Advance(time.Millisecond)
	assert.Zero(t, uc.Snapshot().LoadingCount())
}

func TestManagePanes_ApplyMainURL_Website(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestManager(t, 2, nil)

	out := uc.ApplyMainURL(ctx, "https://example.com/page")

	assert.True(t, out.Applied)
	assert.False(t, out.IsVideo)
	g := uc.Snapshot()
	for _, p := range g.Panes {
		assert.Equal(t, entity.PaneWebsite, p.Kind)
		assert.Equal(t, "https://example.com/page", p.URL)
	}
}

func TestManagePanes_ApplyMainURL_BlankIsNoop(t *testing.T) {
	ctx := context.Background()
	// No expectations: any Show call fails the test.
	notifier := mocks.NewMockNotification(t)
	uc, sched := newTestManager(t, 2, notifier)

	before := uc.Snapshot()
	for _, text := range []string{"", "   ", "\t\n"} {
		out := uc.ApplyMainURL(ctx, text)
		assert.False(t, out.Applied)
	}

	assert.Equal(t, before, uc.Snapshot())
	assert.Zero(t, sched.Pending())
}

func TestManagePanes_RefreshOne(t *testing.T) {
	ctx := context.Background()
	uc, sched := newTestManager(t, 2, nil)
	uc.ApplyMainURL(ctx, "https://example.com")
	sched.Advance(DefaultLoadingDelay)

	before := uc.Snapshot().Panes[1]
	require.True(t, uc.RefreshOne(ctx, "view-1"))

	g := uc.Snapshot()
	assert.True(t, g.Panes[1].Loading)
	assert.False(t, g.Panes[0].Loading)
	assert.NotEqual(t, before.Seed, g.Panes[1].Seed)
	assert.Equal(t, before.URL, g.Panes[1].URL)
	assert.Equal(t, before.Kind, g.Panes[1].Kind)

	sched.Advance(DefaultLoadingDelay)
	assert.False(t, uc.Snapshot().Panes[1].Loading)
}

func TestManagePanes_RefreshOne_UnknownID(t *testing.T) {
	uc, sched := newTestManager(t, 2, nil)

	assert.False(t, uc.RefreshOne(context.Background(), "missing"))
	assert.Zero(t, sched.Pending())
}

func TestManagePanes_RefreshOne_TimerOnlyClearsItsPane(t *testing.T) {
	ctx := context.Background()
	uc, sched := newTestManager(t, 3, nil)

	uc.RefreshOne(ctx, "view-0")
	sched.Advance(time.Second)
	uc.RefreshOne(ctx, "view-2")

	sched.Advance(500 * time.Millisecond)
	g := uc.Snapshot()
	assert.False(t, g.Panes[0].Loading)
	assert.True(t, g.Panes[2].Loading)
}

func TestManagePanes_RefreshOne_RemovedPane(t *testing.T) {
	ctx := context.Background()
	uc, sched := newTestManager(t, 3, nil)

	uc.RefreshOne(ctx, "view-1")
	require.True(t, uc.RemovePane(ctx, "view-1"))

	assert.Equal(t, 1, sched.Advance(DefaultLoadingDelay))
	assert.Equal(t, []entity.PaneID{"view-0", "view-2"}, uc.Snapshot().IDs())
}

func TestManagePanes_RefreshAll(t *testing.T) {
	ctx := context.Background()
	uc, sched := newTestManager(t, 4, nil)
	seeds := make(map[entity.PaneID]int)
	for _, p := range uc.Snapshot().Panes {
		seeds[p.ID] = p.Seed
	}

	uc.RefreshAll(ctx)

	g := uc.Snapshot()
	assert.Equal(t, 4, g.LoadingCount())
	for _, p := range g.Panes {
		assert.NotEqual(t, seeds[p.ID], p.Seed)
	}

	sched.Advance(DefaultLoadingDelay)
	assert.Zero(t, uc.Snapshot().LoadingCount())
}

func TestManagePanes_OverlappingTimersAreIndependent(t *testing.T) {
	ctx := context.Background()
	uc, sched := newTestManager(t, 2, nil)

	uc.RefreshAll(ctx)
	sched.Advance(time.Second)
	uc.RefreshAll(ctx)
	assert.Equal(t, 2, uc.PendingTasks())

	// First timer fires and clears everything, even though the second
	// refresh is still inside its window.
	sched.Advance(500 * time.Millisecond)
	assert.Zero(t, uc.Snapshot().LoadingCount())
	assert.Equal(t, 1, uc.PendingTasks())

	sched.Advance(time.Second)
	assert.Zero(t, uc.PendingTasks())
}

func TestManagePanes_BulkTimerClearsPanesAddedLater(t *testing.T) {
	ctx := context.Background()
	uc, sched := newTestManager(t, 1, nil)

	uc.RefreshAll(ctx)
	sched.Advance(time.Second)

	added, ok := uc.AddPane(ctx)
	require.True(t, ok)
	assert.False(t, added.Loading)
	uc.RefreshOne(ctx, added.ID)

	// The bulk timer clears every pane present when it fires, including
	// the one whose own window is still open.
	sched.Advance(500 * time.Millisecond)
	assert.Zero(t, uc.Snapshot().LoadingCount())
	assert.Equal(t, 1, uc.PendingTasks())
}

func TestManagePanes_AddPane(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestManager(t, 2, nil)
	uc.ApplyMainURL(ctx, "https://vimeo.com/12345")

	p, ok := uc.AddPane(ctx)
	require.True(t, ok)

	assert.Equal(t, entity.PaneID("added-1"), p.ID)
	assert.Equal(t, entity.PaneVideo, p.Kind)
	assert.Equal(t, "https://player.vimeo.com/video/12345?autoplay=1&muted=1&playsinline=1&title=0&byline=0&portrait=0", p.URL)
	assert.False(t, p.Loading)
	assert.Equal(t, 3, uc.Snapshot().Len())
}

func TestManagePanes_AddPane_CapacityLimit(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestManager(t, 1, nil)

	added := 0
	for range entity.MaxPanes {
		if _, ok := uc.AddPane(ctx); ok {
			added++
		}
	}

	assert.Equal(t, entity.MaxPanes-1, added, "the 100th call is a no-op")
	assert.Equal(t, entity.MaxPanes, uc.Snapshot().Len())
}

func TestManagePanes_AddPane_RegeneratesCollidingID(t *testing.T) {
	ctx := context.Background()
	ids := []string{"view-0", "view-1", "fresh"}
	i := 0

	uc := NewManagePanesUseCase(clock.NewManualScheduler(), nil, ManagePanesConfig{
		InitialCount: 2,
		IDGenerator: func() string {
			id := ids[i]
			i++
			return id
		},
	})
	defer uc.Close()

	p, ok := uc.AddPane(ctx)
	require.True(t, ok)
	assert.Equal(t, entity.PaneID("fresh"), p.ID)
}

func TestManagePanes_AddPane_GeneratorStuck(t *testing.T) {
	uc := NewManagePanesUseCase(clock.NewManualScheduler(), nil, ManagePanesConfig{
		InitialCount: 1,
		IDGenerator:  func() string { return "view-0" },
	})
	defer uc.Close()

	_, ok := uc.AddPane(context.Background())
	assert.False(t, ok)
	assert.Equal(t, 1, uc.Snapshot().Len())
}

func TestManagePanes_DefaultIDsAreUnique(t *testing.T) {
	ctx := context.Background()
	uc := NewManagePanesUseCase(clock.NewManualScheduler(), nil, ManagePanesConfig{InitialCount: 1})
	defer uc.Close()

	for range 20 {
		_, ok := uc.AddPane(ctx)
		require.True(t, ok)
	}

	seen := make(map[entity.PaneID]bool)
	for _, id := range uc.Snapshot().IDs() {
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestManagePanes_RemovePane(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestManager(t, 2, nil)

	assert.False(t, uc.RemovePane(ctx, "nope"))
	assert.True(t, uc.RemovePane(ctx, "view-0"))
	assert.False(t, uc.RemovePane(ctx, "view-1"), "last pane stays")
	assert.Equal(t, []entity.PaneID{"view-1"}, uc.Snapshot().IDs())
}

func TestManagePanes_CloseAll(t *testing.T) {
	ctx := context.Background()
	notifier := mocks.NewMockNotification(t)
	notifier.EXPECT().Show(mock.Anything, MessageURLApplied, port.NotificationSuccess, 0).Return("a").Once()
	notifier.EXPECT().Show(mock.Anything, MessageAllReset, port.NotificationInfo, 0).Return("b").Once()

	uc, _ := newTestManager(t, 5, notifier)
	uc.SetPendingURL("https://youtu.be/abc123")
	uc.ApplyMainURL(ctx, "https://youtu.be/abc123")

	uc.CloseAll(ctx)

	g := uc.Snapshot()
	require.Equal(t, 2, g.Len())
	assert.Equal(t, []entity.PaneID{"view-0", "view-1"}, g.IDs())
	assert.Empty(t, g.LastAppliedURL)
	assert.Empty(t, g.PendingURL)
	for _, p := range g.Panes {
		assert.Equal(t, entity.PaneWebsite, p.Kind)
		assert.Empty(t, p.URL)
		assert.False(t, p.Loading)
	}
}

func TestManagePanes_CloseAll_SinglePane(t *testing.T) {
	uc, _ := newTestManager(t, 1, nil)

	uc.CloseAll(context.Background())

	assert.Equal(t, 1, uc.Snapshot().Len())
}

func TestManagePanes_CloseAll_PendingTimerStillFires(t *testing.T) {
	ctx := context.Background()
	uc, sched := newTestManager(t, 3, nil)

	uc.RefreshAll(ctx)
	uc.CloseAll(ctx)

	assert.Equal(t, 1, sched.Advance(DefaultLoadingDelay))
	assert.Zero(t, uc.Snapshot().LoadingCount())
}

func TestManagePanes_Toggles(t *testing.T) {
	ctx := context.Background()
	sched := clock.NewManualScheduler()
	uc := NewManagePanesUseCase(sched, nil, ManagePanesConfig{InitialCount: 1, DarkMode: true})
	defer uc.Close()

	assert.Equal(t, entity.LayoutStack, uc.ToggleLayout(ctx))
	assert.Equal(t, entity.LayoutGrid, uc.ToggleLayout(ctx))
	assert.False(t, uc.ToggleTheme(ctx))
	assert.False(t, uc.Snapshot().DarkMode)
}

func TestManagePanes_OnChange(t *testing.T) {
	ctx := context.Background()
	uc, sched := newTestManager(t, 2, nil)

	var mu sync.Mutex
	var loadingCounts []int
	uc.OnChange(func(g *entity.Grid) {
		mu.Lock()
		defer mu.Unlock()
		loadingCounts = append(loadingCounts, g.LoadingCount())
	})

	uc.RefreshAll(ctx)
	sched.Advance(DefaultLoadingDelay)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int{2, 0}, loadingCounts)
}

func TestManagePanes_OnChangeSnapshotIsolated(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestManager(t, 2, nil)

	uc.OnChange(func(g *entity.Grid) {
		g.Panes[0].URL = "tampered"
	})
	uc.ApplyMainURL(ctx, "https://example.com")

	assert.Equal(t, "https://example.com", uc.Snapshot().Panes[0].URL)
}

func TestManagePanes_CloseStopsTimers(t *testing.T) {
	ctx := context.Background()
	sched := clock.NewManualScheduler()
	uc := NewManagePanesUseCase(sched, nil, ManagePanesConfig{InitialCount: 2})

	uc.RefreshAll(ctx)
	uc.RefreshOne(ctx, "view-0")
	require.Equal(t, 2, sched.Pending())

	uc.Close()

	assert.Zero(t, sched.Pending())
	assert.Zero(t, sched.Advance(time.Minute))
	assert.False(t, uc.RefreshOne(ctx, "view-0"))
	_, ok := uc.AddPane(ctx)
	assert.False(t, ok)
}

func TestManagePanes_UsesConfiguredDelay(t *testing.T) {
	ctx := context.Background()
	timer := mocks.NewMockTimer(t)
	sched := mocks.NewMockScheduler(t)
	sched.EXPECT().AfterFunc(250*time.Millisecond, mock.Anything).Return(timer).Once()
	timer.EXPECT().Stop().Return(true).Once()

	uc := NewManagePanesUseCase(sched, nil, ManagePanesConfig{
		InitialCount: 2,
		LoadingDelay: 250 * time.Millisecond,
	})

	uc.RefreshAll(ctx)
	uc.Close()
}

func TestManagePanes_RealSchedulerClearsLoading(t *testing.T) {
	ctx := context.Background()
	uc := NewManagePanesUseCase(clock.NewRealScheduler(), nil, ManagePanesConfig{
		InitialCount: 2,
		LoadingDelay: 10 * time.Millisecond,
	})
	defer uc.Close()

	done := make(chan struct{}, 4)
	uc.OnChange(func(g *entity.Grid) {
		if g.LoadingCount() == 0 {
			done <- struct{}{}
		}
	})

	uc.RefreshAll(ctx)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("loading never cleared")
	}
	assert.Zero(t, uc.Snapshot().LoadingCount())
}
