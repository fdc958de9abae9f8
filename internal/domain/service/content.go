// Package service contains domain services that combine entities and URL rules.
package service

import (
	"github.com/bnema/multiview/internal/domain/entity"
	domainurl "github.com/bnema/multiview/internal/domain/url"
)

// ContentKind tells the render surface what to draw inside a pane.
type ContentKind int

const (
	ContentSpinner        ContentKind = iota // Loading indicator
	ContentEmbeddedPlayer                    // Web frame hosting a YouTube/Vimeo player
	ContentNativeVideo                       // Native media player
	ContentPlaceholder                       // Generated preview image
)

// String returns the content kind name.
func (k ContentKind) String() string {
	switch k {
	case ContentSpinner:
		return "spinner"
	case ContentEmbeddedPlayer:
		return "embedded-player"
	case ContentNativeVideo:
		return "native-video"
	default:
		return "placeholder"
	}
}

// InlinePlaybackScript is injected into embedded players so videos play inline,
// muted and with controls.
const InlinePlaybackScript = `(function() {
  const video = document.querySelector('video');
  if (video) {
    video.setAttribute('playsinline', 'true');
    video.setAttribute('webkit-playsinline', 'true');
    video.setAttribute('controls', 'true');
    video.style.width = '100%';
    video.style.height = '100%';
    video.style.maxWidth = '100%';
    video.style.position = 'relative';
  }
  if (window.YT) {
    window.YT.ready(() => {
      new YT.Player('player', {
        events: {
          onReady: (event) => {
            event.target.playVideo();
            event.target.mute();
          }
        }
      });
    });
  }
  true;
})();`

// Content is the render directive for a single pane.
type Content struct {
	Kind ContentKind
	// URL is the frame, media or image address depending on Kind. Empty for spinners.
	URL string

	// Embedded player settings.
	Script             string
	AllowsInline       bool
	RequiresUserAction bool
	AllowsFullscreen   bool

	// Native player settings.
	Muted    bool
	Looping  bool
	Controls bool
}

// AllowsNavigation reports whether an embedded frame may load target.
// Only the frame's own URL is allowed.
func (c Content) AllowsNavigation(target string) bool {
	return c.Kind == ContentEmbeddedPlayer && target == c.URL
}

// ResolveContent decides what a pane shows. The pane is not modified.
func ResolveContent(pane *entity.Pane, placeholderEndpoint string) Content {
	if pane.Loading {
		return Content{Kind: ContentSpinner}
	}

	if pane.Kind == entity.PaneVideo && pane.URL != "" {
		if domainurl.IsEmbeddedPlayer(pane.URL) {
			return Content{
				Kind:               ContentEmbeddedPlayer,
				URL:                pane.URL,
				Script:             InlinePlaybackScript,
				AllowsInline:       true,
				RequiresUserAction: false,
				AllowsFullscreen:   false,
			}
		}
		return Content{
			Kind:     ContentNativeVideo,
			URL:      pane.URL,
			Muted:    true,
			Looping:  true,
			Controls: true,
		}
	}

	return Content{
		Kind: ContentPlaceholder,
		URL:  domainurl.PlaceholderURL(placeholderEndpoint, pane.URL, pane.Seed),
	}
}
