package entity

import (
	"fmt"
	"strings"
)

const (
	// MaxPanes is the hard upper bound on panes in a grid.
	MaxPanes = 100
	// DefaultPaneCount is used when no valid initial count is given.
	DefaultPaneCount = 2
	// ResetPaneCount is how many leading panes survive a reset.
	ResetPaneCount = 2
	// SeedRange is the exclusive upper bound of display seeds.
	SeedRange = 10000
)

// LayoutMode controls how panes are arranged.
type LayoutMode int

const (
	LayoutGrid  LayoutMode = iota // Panes tiled in columns
	LayoutStack                   // Panes stacked vertically, full width
)

// String returns the layout name.
func (l LayoutMode) String() string {
	switch l {
	case LayoutStack:
		return "stack"
	default:
		return "grid"
	}
}

// Toggle returns the other layout.
func (l LayoutMode) Toggle() LayoutMode {
	if l == LayoutGrid {
		return LayoutStack
	}
	return LayoutGrid
}

// ParseLayoutMode parses "grid" or "stack" (case-insensitive).
func ParseLayoutMode(s string) (LayoutMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "grid":
		return LayoutGrid, nil
	case "stack":
		return LayoutStack, nil
	default:
		return LayoutGrid, fmt.Errorf("unknown layout mode %q (want grid or stack)", s)
	}
}

// ClampPaneCount bounds a requested pane count to [1, MaxPanes].
// Non-positive counts fall back to DefaultPaneCount.
func ClampPaneCount(n int) int {
	switch {
	case n <= 0:
		return DefaultPaneCount
	case n > MaxPanes:
		return MaxPanes
	default:
		return n
	}
}

// InitialPaneID returns the id given to the pane at index during initialization.
func InitialPaneID(index int) PaneID {
	return PaneID(fmt.Sprintf("view-%d", index))
}

// Grid is the full view state of the multi-view browser: the ordered panes
// plus the session-wide settings that apply to all of them.
//
// Grid methods are plain state transitions. They never block, schedule work
// or perform I/O; callers own synchronization.
type Grid struct {
	Panes          []*Pane // Display order
	Layout         LayoutMode
	DarkMode       bool
	PendingURL     string // Text typed but not applied yet
	LastAppliedURL string // Embed URL of the last successful apply
}

// NewGrid creates a grid of count empty website panes with ids view-0..view-{n-1}.
// The count is clamped with ClampPaneCount.
func NewGrid(count int, seed func() int) *Grid {
	count = ClampPaneCount(count)
	panes := make([]*Pane, 0, count)
	for i := range count {
		panes = append(panes, NewPane(InitialPaneID(i), seed()))
	}
	return &Grid{
		Panes:  panes,
		Layout: LayoutGrid,
	}
}

// Len returns the number of panes.
func (g *Grid) Len() int {
	return len(g.Panes)
}

// Find returns the pane with id and its index, or (-1, nil).
func (g *Grid) Find(id PaneID) (int, *Pane) {
	for i, p := range g.Panes {
		if p.ID == id {
			return i, p
		}
	}
	return -1, nil
}

// Has reports whether a pane with id exists.
func (g *Grid) Has(id PaneID) bool {
	idx, _ := g.Find(id)
	return idx >= 0
}

// CanAdd reports whether another pane fits.
func (g *Grid) CanAdd() bool {
	return len(g.Panes) < MaxPanes
}

// CanRemove reports whether a pane may be removed without emptying the grid.
func (g *Grid) CanRemove() bool {
	return len(g.Panes) > 1
}

// Last returns the last pane in display order.
func (g *Grid) Last() *Pane {
	if len(g.Panes) == 0 {
		return nil
	}
	return g.Panes[len(g.Panes)-1]
}

// Append adds a pane that mirrors the kind and URL of the current last pane.
// Returns false at capacity or when id is already taken.
func (g *Grid) Append(id PaneID, seed int) (*Pane, bool) {
	if !g.CanAdd() || g.Has(id) {
		return nil, false
	}
	p := NewPane(id, seed)
	if last := g.Last(); last != nil {
		p.Kind = last.Kind
		p.URL = last.URL
	}
	g.Panes = append(g.Panes, p)
	return p, true
}

// Remove deletes the pane with id. The last remaining pane is never removed.
func (g *Grid) Remove(id PaneID) bool {
	if !g.CanRemove() {
		return false
	}
	idx, _ := g.Find(id)
	if idx < 0 {
		return false
	}
	g.Panes = append(g.Panes[:idx], g.Panes[idx+1:]...)
	return true
}

// MarkLoading sets the pane loading with a new seed. URL and kind are kept.
func (g *Grid) MarkLoading(id PaneID, seed int) bool {
	_, p := g.Find(id)
	if p == nil {
		return false
	}
	p.Seed = seed
	p.Loading = true
	return true
}

// MarkAllLoading sets every pane loading, each with a fresh seed.
func (g *Grid) MarkAllLoading(seed func() int) {
	for _, p := range g.Panes {
		p.Seed = seed()
		p.Loading = true
	}
}

// ClearLoading clears the loading flag of a single pane.
// Returns false when the pane no longer exists.
func (g *Grid) ClearLoading(id PaneID) bool {
	_, p := g.Find(id)
	if p == nil {
		return false
	}
	p.Loading = false
	return true
}

// ClearAllLoading clears the loading flag on every pane currently present.
func (g *Grid) ClearAllLoading() {
	for _, p := range g.Panes {
		p.Loading = false
	}
}

// ApplyURL points every pane at url with the given kind and marks them loading.
// Seeds are left untouched.
func (g *Grid) ApplyURL(kind PaneKind, url string) {
	for _, p := range g.Panes {
		p.Kind = kind
		p.URL = url
		p.Loading = true
	}
	g.LastAppliedURL = url
}

// Reset keeps at most the first ResetPaneCount panes, empties them, and
// clears the applied and pending URLs. Dropped panes are discarded.
func (g *Grid) Reset(seed func() int) {
	if len(g.Panes) > ResetPaneCount {
		for i := ResetPaneCount; i < len(g.Panes); i++ {
			g.Panes[i] = nil
		}
		g.Panes = g.Panes[:ResetPaneCount]
	}
	for _, p := range g.Panes {
		p.Kind = PaneWebsite
		p.URL = ""
		p.Seed = seed()
		p.Loading = false
	}
	g.LastAppliedURL = ""
	g.PendingURL = ""
}

// ToggleLayout flips between grid and stack and returns the new layout.
func (g *Grid) ToggleLayout() LayoutMode {
	g.Layout = g.Layout.Toggle()
	return g.Layout
}

// ToggleTheme flips dark mode and returns the new value.
func (g *Grid) ToggleTheme() bool {
	g.DarkMode = !g.DarkMode
	return g.DarkMode
}

// IDs returns pane ids in display order.
func (g *Grid) IDs() []PaneID {
	ids := make([]PaneID, len(g.Panes))
	for i, p := range g.Panes {
		ids[i] = p.ID
	}
	return ids
}

// LoadingCount returns how many panes are loading.
func (g *Grid) LoadingCount() int {
	n := 0
	for _, p := range g.Panes {
		if p.Loading {
			n++
		}
	}
	return n
}

// Clone returns a deep copy safe to hand to readers.
func (g *Grid) Clone() *Grid {
	if g == nil {
		return nil
	}
	c := *g
	c.Panes = make([]*Pane, len(g.Panes))
	for i, p := range g.Panes {
		c.Panes[i] = p.Clone()
	}
	return &c
}
