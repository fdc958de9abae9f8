// Package entity contains domain entities representing core business concepts.
// These entities are pure Go types with no infrastructure dependencies.
package entity

// PaneID uniquely identifies a pane within a grid.
type PaneID string

// PaneKind indicates what a pane displays.
type PaneKind int

const (
	PaneWebsite PaneKind = iota // Static preview of a page
	PaneVideo                   // Playable video
)

// String returns the kind name used in logs and CLI output.
func (k PaneKind) String() string {
	switch k {
	case PaneVideo:
		return "video"
	default:
		return "website"
	}
}

// KindFor maps a classifier verdict to a pane kind.
func KindFor(isVideo bool) PaneKind {
	if isVideo {
		return PaneVideo
	}
	return PaneWebsite
}

// NoURLLabel is the label shown for a pane without content.
const NoURLLabel = "No URL"

// Pane is one view slot of the grid.
// An empty URL means the pane has no content yet.
type Pane struct {
	ID      PaneID
	Kind    PaneKind
	URL     string
	Seed    int // Display seed; changing it forces a fresh placeholder image
	Loading bool
}

// NewPane creates an empty website pane.
func NewPane(id PaneID, seed int) *Pane {
	return &Pane{
		ID:   id,
		Kind: PaneWebsite,
		Seed: seed,
	}
}

// Label returns the text shown in the pane header.
func (p *Pane) Label() string {
	if p.URL == "" {
		return NoURLLabel
	}
	return p.URL
}

// IsEmpty reports whether the pane has no content.
func (p *Pane) IsEmpty() bool {
	return p.URL == ""
}

// Clone returns an independent copy of the pane.
func (p *Pane) Clone() *Pane {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}
