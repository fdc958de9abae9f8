package usecase

import (
	"context"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bnema/multiview/internal/application/port"
	"github.com/bnema/multiview/internal/domain/entity"
	domainurl "github.com/bnema/multiview/internal/domain/url"
	"github.com/bnema/multiview/internal/logging"
)

// DefaultLoadingDelay is how long panes stay loading after a refresh or apply.
const DefaultLoadingDelay = 1500 * time.Millisecond

// Notification messages emitted by the pane manager.
const (
	MessageURLApplied = "URL applied to all views"
	MessageAllReset   = "All windows reset"
)

// maxIDAttempts bounds regeneration when a generated pane id is already taken.
const maxIDAttempts = 16

// IDGenerator creates unique identifiers.
type IDGenerator func() string

// SeedGenerator returns display seeds in [0, entity.SeedRange).
type SeedGenerator func() int

// NewPaneIDGenerator returns the generator used for panes added after initialization.
func NewPaneIDGenerator() IDGenerator {
	return func() string {
		return "view-" + uuid.NewString()
	}
}

// RandomSeed returns a uniformly distributed display seed.
func RandomSeed() int {
	return rand.IntN(entity.SeedRange)
}

// ManagePanesConfig holds the tunables of a pane session.
type ManagePanesConfig struct {
	InitialCount  int
	LoadingDelay  time.Duration // zero means DefaultLoadingDelay
	Layout        entity.LayoutMode
	DarkMode      bool
	IDGenerator   IDGenerator   // nil means NewPaneIDGenerator
	SeedGenerator SeedGenerator // nil means RandomSeed
}

// ManagePanesUseCase owns the pane grid of one browser session.
// Every operation is applied under a single lock so readers never see a
// half-updated grid. Loading flags are cleared by deferred tasks, one per
// operation; overlapping tasks are never merged.
type ManagePanesUseCase struct {
	mu          sync.Mutex
	grid        *entity.Grid
	scheduler   port.Scheduler
	notifier    port.Notification
	idGenerator IDGenerator
	seed        SeedGenerator
	delay       time.Duration

	timers    map[uint64]port.Timer
	nextTimer uint64
	listeners []func(*entity.Grid)
	closed    bool
}

// NewManagePanesUseCase creates a pane manager with an initialized grid.
// notifier may be nil.
func NewManagePanesUseCase(scheduler port.Scheduler, notifier port.Notification, cfg ManagePanesConfig) *ManagePanesUseCase {
	uc := &ManagePanesUseCase{
		scheduler:   scheduler,
		notifier:    notifier,
		idGenerator: cfg.IDGenerator,
		seed:        cfg.SeedGenerator,
		delay:       cfg.LoadingDelay,
		timers:      make(map[uint64]port.Timer),
	}
	if uc.idGenerator == nil {
		uc.idGenerator = NewPaneIDGenerator()
	}
	if uc.seed == nil {
		uc.seed = RandomSeed
	}
	if uc.delay <= 0 {
		uc.delay = DefaultLoadingDelay
	}

	uc.grid = entity.NewGrid(cfg.InitialCount, uc.seed)
	uc.grid.Layout = cfg.Layout
	uc.grid.DarkMode = cfg.DarkMode
	return uc
}

// OnChange registers a listener called with a snapshot after every mutation,
// including those made by deferred loading tasks. Listeners run outside the lock.
func (uc *ManagePanesUseCase) OnChange(fn func(*entity.Grid)) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.listeners = append(uc.listeners, fn)
}

// Snapshot returns a deep copy of the current grid.
func (uc *ManagePanesUseCase) Snapshot() *entity.Grid {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.grid.Clone()
}

// LoadingDelay returns the configured loading window.
func (uc *ManagePanesUseCase) LoadingDelay() time.Duration {
	return uc.delay
}

// Initialize replaces the grid with n fresh panes (ids view-0..view-{n-1}).
// Pending loading tasks are dropped. Layout, theme and pending text are kept.
func (uc *ManagePanesUseCase) Initialize(ctx context.Context, n int) {
	log := logging.FromContext(ctx)

	uc.mu.Lock()
	if uc.closed {
		uc.mu.Unlock()
		return
	}
	uc.stopTimersLocked()
	prev := uc.grid
	uc.grid = entity.NewGrid(n, uc.seed)
	uc.grid.Layout = prev.Layout
	uc.grid.DarkMode = prev.DarkMode
	uc.grid.PendingURL = prev.PendingURL
	count := uc.grid.Len()
	snap, listeners := uc.changedLocked()
	uc.mu.Unlock()

	log.Debug().Int("requested", n).Int("count", count).Msg("panes initialized")
	emit(snap, listeners)
}

// RefreshOne puts a single pane into the loading window with a new seed.
// Unknown ids are ignored.
func (uc *ManagePanesUseCase) RefreshOne(ctx context.Context, id entity.PaneID) bool {
	log := logging.FromContext(ctx)

	uc.mu.Lock()
	if uc.closed || !uc.grid.MarkLoading(id, uc.seed()) {
		uc.mu.Unlock()
		log.Debug().Str("pane_id", string(id)).Msg("refresh ignored: unknown pane")
		return false
	}
	uc.scheduleLocked(ctx, func(g *entity.Grid) bool {
		return g.ClearLoading(id)
	})
	snap, listeners := uc.changedLocked()
	uc.mu.Unlock()

	log.Debug().Str("pane_id", string(id)).Msg("pane refreshing")
	emit(snap, listeners)
	return true
}

// RefreshAll puts every pane into the loading window together.
func (uc *ManagePanesUseCase) RefreshAll(ctx context.Context) {
	log := logging.FromContext(ctx)

	uc.mu.Lock()
	if uc.closed {
		uc.mu.Unlock()
		return
	}
	uc.grid.MarkAllLoading(uc.seed)
	uc.scheduleLocked(ctx, clearAll)
	count := uc.grid.Len()
	snap, listeners := uc.changedLocked()
	uc.mu.Unlock()

	log.Debug().Int("count", count).Msg("all panes refreshing")
	emit(snap, listeners)
}

// ApplyMainURLOutput describes what an apply did.
type ApplyMainURLOutput struct {
	Applied  bool
	IsVideo  bool
	Platform domainurl.Platform
	EmbedURL string
}

// ApplyMainURL classifies text and points every pane at the result.
// Text that is empty after trimming is ignored without notification.
func (uc *ManagePanesUseCase) ApplyMainURL(ctx context.Context, text string) ApplyMainURLOutput {
	log := logging.FromContext(ctx)

	if strings.TrimSpace(text) == "" {
		return ApplyMainURLOutput{}
	}

	c := domainurl.Classify(text)

	uc.mu.Lock()
	if uc.closed {
		uc.mu.Unlock()
		return ApplyMainURLOutput{}
	}
	uc.grid.ApplyURL(entity.KindFor(c.IsVideo), c.EmbedURL)
	uc.scheduleLocked(ctx, clearAll)
	count := uc.grid.Len()
	snap, listeners := uc.changedLocked()
	uc.mu.Unlock()

	log.Info().
		Str("url", c.EmbedURL).
		Bool("video", c.IsVideo).
		Str("platform", c.Platform.String()).
		Int("panes", count).
		Msg("url applied")

	emit(snap, listeners)
	uc.notify(ctx, MessageURLApplied, port.NotificationSuccess)

	return ApplyMainURLOutput{
		Applied:  true,
		IsVideo:  c.IsVideo,
		Platform: c.Platform,
		EmbedURL: c.EmbedURL,
	}
}

// AddPane appends a pane mirroring the last one. Returns a copy of the new
// pane, or false at capacity.
func (uc *ManagePanesUseCase) AddPane(ctx context.Context) (*entity.Pane, bool) {
	log := logging.FromContext(ctx)

	uc.mu.Lock()
	if uc.closed || !uc.grid.CanAdd() {
		count := uc.grid.Len()
		uc.mu.Unlock()
		log.Debug().Int("count", count).Msg("add pane ignored: at capacity")
		return nil, false
	}

	id, ok := uc.freshIDLocked()
	if !ok {
		uc.mu.Unlock()
		log.Warn().Msg("add pane failed: could not generate a unique id")
		return nil, false
	}

	pane, _ := uc.grid.Append(id, uc.seed())
	added := pane.Clone()
	count := uc.grid.Len()
	snap, listeners := uc.changedLocked()
	uc.mu.Unlock()

	log.Debug().Str("pane_id", string(id)).Int("count", count).Msg("pane added")
	emit(snap, listeners)
	return added, true
}

func (uc *ManagePanesUseCase) freshIDLocked() (entity.PaneID, bool) {
	for range maxIDAttempts {
		id := entity.PaneID(uc.idGenerator())
		if id != "" && !uc.grid.Has(id) {
			return id, true
		}
	}
	return "", false
}

// RemovePane deletes a pane. The last pane and unknown ids are left alone.
func (uc *ManagePanesUseCase) RemovePane(ctx context.Context, id entity.PaneID) bool {
	log := logging.FromContext(ctx)

	uc.mu.Lock()
	if uc.closed || !uc.grid.Remove(id) {
		uc.mu.Unlock()
		log.Debug().Str("pane_id", string(id)).Msg("remove pane ignored")
		return false
	}
	count := uc.grid.Len()
	snap, listeners := uc.changedLocked()
	uc.mu.Unlock()

	log.Debug().Str("pane_id", string(id)).Int("count", count).Msg("pane removed")
	emit(snap, listeners)
	return true
}

// CloseAll keeps the first two panes, empties them and clears the URLs.
func (uc *ManagePanesUseCase) CloseAll(ctx context.Context) {
	log := logging.FromContext(ctx)

	uc.mu.Lock()
	if uc.closed {
		uc.mu.Unlock()
		return
	}
	before := uc.grid.Len()
	uc.grid.Reset(uc.seed)
	after := uc.grid.Len()
	snap, listeners := uc.changedLocked()
	uc.mu.Unlock()

	log.Info().Int("before", before).Int("after", after).Msg("all panes reset")
	emit(snap, listeners)
	uc.notify(ctx, MessageAllReset, port.NotificationInfo)
}

// ToggleLayout flips grid/stack and returns the new layout.
func (uc *ManagePanesUseCase) ToggleLayout(ctx context.Context) entity.LayoutMode {
	uc.mu.Lock()
	layout := uc.grid.ToggleLayout()
	snap, listeners := uc.changedLocked()
	uc.mu.Unlock()

	logging.FromContext(ctx).Debug().Str("layout", layout.String()).Msg("layout toggled")
	emit(snap, listeners)
	return layout
}

// ToggleTheme flips dark mode and returns the new value.
func (uc *ManagePanesUseCase) ToggleTheme(ctx context.Context) bool {
	uc.mu.Lock()
	dark := uc.grid.ToggleTheme()
	snap, listeners := uc.changedLocked()
	uc.mu.Unlock()

	logging.FromContext(ctx).Debug().Bool("dark", dark).Msg("theme toggled")
	emit(snap, listeners)
	return dark
}

// SetPendingURL stores the text being typed in the shared URL field.
func (uc *ManagePanesUseCase) SetPendingURL(text string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.grid.PendingURL = text
}

// PendingTasks returns how many loading tasks have not fired yet.
func (uc *ManagePanesUseCase) PendingTasks() int {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return len(uc.timers)
}

// Close stops all pending loading tasks. Later mutations are ignored,
// apart from layout and theme toggles which have no deferred work.
func (uc *ManagePanesUseCase) Close() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.closed = true
	uc.stopTimersLocked()
}

func clearAll(g *entity.Grid) bool {
	g.ClearAllLoading()
	return true
}

// scheduleLocked arms an independent deferred task that applies clear to
// whatever the grid looks like when it fires.
func (uc *ManagePanesUseCase) scheduleLocked(ctx context.Context, clear func(*entity.Grid) bool) {
	uc.nextTimer++
	key := uc.nextTimer

	uc.timers[key] = uc.scheduler.AfterFunc(uc.delay, func() {
		uc.mu.Lock()
		if _, ok := uc.timers[key]; !ok {
			uc.mu.Unlock()
			return
		}
		delete(uc.timers, key)
		if !clear(uc.grid) {
			uc.mu.Unlock()
			return
		}
		snap, listeners := uc.changedLocked()
		uc.mu.Unlock()

		logging.FromContext(ctx).Trace().Uint64("task", key).Msg("loading window elapsed")
		emit(snap, listeners)
	})
}

func (uc *ManagePanesUseCase) stopTimersLocked() {
	for key, t := range uc.timers {
		t.Stop()
		delete(uc.timers, key)
	}
}

func (uc *ManagePanesUseCase) changedLocked() (*entity.Grid, []func(*entity.Grid)) {
	if len(uc.listeners) == 0 {
		return nil, nil
	}
	listeners := make([]func(*entity.Grid), len(uc.listeners))
	copy(listeners, uc.listeners)
	return uc.grid.Clone(), listeners
}

func emit(snap *entity.Grid, listeners []func(*entity.Grid)) {
	for _, fn := range listeners {
		fn(snap)
	}
}

func (uc *ManagePanesUseCase) notify(ctx context.Context, message string, t port.NotificationType) {
	if uc.notifier == nil {
		return
	}
	uc.notifier.Show(ctx, message, t, 0)
}
