package url

import (
	"regexp"
)

// Platform names the video source recognized in a URL.
type Platform string

const (
	PlatformNone      Platform = "none"
	PlatformYouTube   Platform = "youtube"
	PlatformInstagram Platform = "instagram"
	PlatformFacebook  Platform = "facebook"
	PlatformTwitter   Platform = "twitter"
	PlatformVimeo     Platform = "vimeo"
	PlatformTikTok    Platform = "tiktok"
	PlatformFile      Platform = "file" // Direct media file (.mp4, .webm, ...)
)

// String returns the platform name.
func (p Platform) String() string {
	return string(p)
}

type videoPattern struct {
	platform Platform
	re       *regexp.Regexp
}

// Order matters for DetectPlatform only; IsVideo is a plain OR over the list.
var videoPatterns = []videoPattern{
	{PlatformYouTube, regexp.MustCompile(`youtube\.com/watch\?v=|youtu\.be/`)},
	{PlatformInstagram, regexp.MustCompile(`instagram\.com/.*/reels/|instagram\.com/p/|instagram\.com/tv/`)},
	{PlatformFacebook, regexp.MustCompile(`facebook\.com.*/videos/|fb\.watch/`)},
	{PlatformTwitter, regexp.MustCompile(`twitter\.com.*/status/|x\.com.*/status/`)},
	{PlatformVimeo, regexp.MustCompile(`vimeo\.com/`)},
	{PlatformTikTok, regexp.MustCompile(`tiktok\.com/@.*/video/`)},
	{PlatformFile, regexp.MustCompile(`(?i)\.(mp4|webm|ogg|mov)$`)},
}

var (
	youTubeIDPattern = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([^&\s?/]+)`)
	vimeoIDPattern   = regexp.MustCompile(`vimeo\.com/(\d+)`)
)

const (
	youTubeEmbedBase = "https://www.youtube.com/embed/"
	youTubeEmbedArgs = "?autoplay=1&mute=1&playsinline=1&enablejsapi=1&controls=1&fs=0"
	vimeoPlayerBase  = "https://player.vimeo.com/video/"
	vimeoPlayerArgs  = "?autoplay=1&muted=1&playsinline=1&title=0&byline=0&portrait=0"
)

// Classification bundles everything derived from a single raw URL.
type Classification struct {
	IsVideo  bool
	Platform Platform
	EmbedURL string
}

// Classify reports whether raw is a video URL, which platform it belongs to,
// and its embeddable form.
func Classify(raw string) Classification {
	platform := DetectPlatform(raw)
	return Classification{
		IsVideo:  platform != PlatformNone,
		Platform: platform,
		EmbedURL: ToEmbedURL(raw),
	}
}

// IsVideo reports whether raw matches any known video URL pattern.
// Matching is substring based; no parsing or network access happens.
func IsVideo(raw string) bool {
	for _, p := range videoPatterns {
		if p.re.MatchString(raw) {
			return true
		}
	}
	return false
}

// DetectPlatform returns the first platform whose pattern matches raw,
// or PlatformNone.
func DetectPlatform(raw string) Platform {
	for _, p := range videoPatterns {
		if p.re.MatchString(raw) {
			return p.platform
		}
	}
	return PlatformNone
}

// ToEmbedURL rewrites YouTube and Vimeo links to their autoplaying, muted,
// inline player URLs. Any other input is returned unchanged.
func ToEmbedURL(raw string) string {
	if m := youTubeIDPattern.FindStringSubmatch(raw); m != nil {
		return youTubeEmbedBase + m[1] + youTubeEmbedArgs
	}
	if m := vimeoIDPattern.FindStringSubmatch(raw); m != nil {
		return vimeoPlayerBase + m[1] + vimeoPlayerArgs
	}
	return raw
}

// IsEmbeddedPlayer reports whether raw is already a YouTube embed or a Vimeo
// player URL, i.e. something an embedded frame can host directly.
func IsEmbeddedPlayer(raw string) bool {
	return embeddedPlayerPattern.MatchString(raw)
}

var embeddedPlayerPattern = regexp.MustCompile(`youtube\.com/embed|player\.vimeo\.com`)
