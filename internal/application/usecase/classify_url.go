package usecase

import (
	"context"
	"errors"
	"strings"

	domainurl "github.com/bnema/multiview/internal/domain/url"
	"github.com/bnema/multiview/internal/logging"
)

// ErrEmptyURL is returned when the input has nothing left after trimming.
var ErrEmptyURL = errors.New("url is empty")

// ClassifyURLUseCase reports how a URL would be handled by the panes.
type ClassifyURLUseCase struct {
	placeholderEndpoint string
}

// NewClassifyURLUseCase creates the use case. An empty endpoint selects the default one.
func NewClassifyURLUseCase(placeholderEndpoint string) *ClassifyURLUseCase {
	return &ClassifyURLUseCase{placeholderEndpoint: placeholderEndpoint}
}

// ClassifyURLInput contains parameters for classification.
type ClassifyURLInput struct {
	URL  string
	Seed int // seed used for the placeholder preview
}

// ClassifyURLOutput contains the classification result.
type ClassifyURLOutput struct {
	Input          string             `json:"input"`
	IsVideo        bool               `json:"is_video"`
	Platform       domainurl.Platform `json:"platform"`
	EmbedURL       string             `json:"embed_url"`
	Rewritten      bool               `json:"rewritten"`
	PlaceholderURL string             `json:"placeholder_url"`
}

// Execute classifies a single URL.
func (uc *ClassifyURLUseCase) Execute(ctx context.Context, input ClassifyURLInput) (*ClassifyURLOutput, error) {
	log := logging.FromContext(ctx)

	raw := strings.TrimSpace(input.URL)
	if raw == "" {
		return nil, ErrEmptyURL
	}

	c := domainurl.Classify(raw)
	out := &ClassifyURLOutput{
		Input:          raw,
		IsVideo:        c.IsVideo,
		Platform:       c.Platform,
		EmbedURL:       c.EmbedURL,
		Rewritten:      c.EmbedURL != raw,
		PlaceholderURL: domainurl.PlaceholderURL(uc.placeholderEndpoint, c.EmbedURL, input.Seed),
	}

	log.Debug().
		Str("url", raw).
		Bool("video", out.IsVideo).
		Str("platform", out.Platform.String()).
		Bool("rewritten", out.Rewritten).
		Msg("url classified")

	return out, nil
}
