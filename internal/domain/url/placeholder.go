package url

import (
	"strconv"
	"strings"
)

const (
	// DefaultPlaceholderEndpoint serves generated preview images.
	DefaultPlaceholderEndpoint = "https://api.a0.dev/assets/image"

	// EmptyPlaceholderText is sent instead of the URL when a pane has none.
	EmptyPlaceholderText = "empty+browser+window"

	placeholderAspect = "16:9"
)

// PlaceholderURL builds the preview image URL shown for non-video panes.
// The same (paneURL, seed) pair always yields the same result; changing the
// seed changes the image.
func PlaceholderURL(endpoint, paneURL string, seed int) string {
	if endpoint == "" {
		endpoint = DefaultPlaceholderEndpoint
	}

	text := EmptyPlaceholderText
	if paneURL != "" {
		text = EncodeComponent(paneURL)
	}

	var b strings.Builder
	b.Grow(len(endpoint) + len(text) + 32)
	b.WriteString(endpoint)
	b.WriteString("?text=")
	b.WriteString(text)
	b.WriteString("&seed=")
	b.WriteString(strconv.Itoa(seed))
	b.WriteString("&aspect=")
	b.WriteString(placeholderAspect)
	return b.String()
}

// EncodeComponent percent-encodes s the way browsers encode a single URI
// component: letters, digits and -_.!~*'() pass through, every other byte
// becomes %XX.
func EncodeComponent(s string) string {
	const hex = "0123456789ABCDEF"

	var b strings.Builder
	b.Grow(len(s) * 3)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isComponentSafe(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}

func isComponentSafe(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
