package url

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaceholderURL(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		paneURL  string
		seed     int
		want     string
	}{
		{
			name:    "empty url uses literal text",
			paneURL: "",
			seed:    42,
			want:    "https://api.a0.dev/assets/image?text=empty+browser+window&seed=42&aspect=16:9",
		},
		{
			name:    "url is percent encoded",
			paneURL: "https://example.com/a b?x=1&y=2",
			seed:    7,
			want: "https://api.a0.dev/assets/image?text=https%3A%2F%2Fexample.com%2Fa%20b%3Fx%3D1%26y%3D2" +
				"&seed=7&aspect=16:9",
		},
		{
			name:     "custom endpoint",
			endpoint: "http://localhost:9000/img",
			paneURL:  "a",
			seed:     0,
			want:     "http://localhost:9000/img?text=a&seed=0&aspect=16:9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlaceholderURL(tt.endpoint, tt.paneURL, tt.seed))
		})
	}
}

func TestPlaceholderURL_SeedChangesOutput(t *testing.T) {
	a := PlaceholderURL("", "https://example.com", 1)
	b := PlaceholderURL("", "https://example.com", 2)

	assert.NotEqual(t, a, b)
	assert.Equal(t, a, PlaceholderURL("", "https://example.com", 1))
}

func TestEncodeComponent(t *testing.T) {
	assert.Equal(t, "AZaz09-_.!~*'()", EncodeComponent("AZaz09-_.!~*'()"))
	assert.Equal(t, "%20%2B%2F%3A", EncodeComponent(" +/:"))
	assert.Equal(t, "%C3%A9", EncodeComponent("é"))
}
