package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/multiview/internal/application/port"
	"github.com/bnema/multiview/internal/domain/entity"
)

// GetConfigSchemaUseCase retrieves configuration key information.
type GetConfigSchemaUseCase struct {
	provider port.ConfigSchemaProvider
}

// NewGetConfigSchemaUseCase creates a new GetConfigSchemaUseCase.
func NewGetConfigSchemaUseCase(provider port.ConfigSchemaProvider) *GetConfigSchemaUseCase {
	return &GetConfigSchemaUseCase{
		provider: provider,
	}
}

// GetConfigSchemaInput filters the returned keys.
type GetConfigSchemaInput struct {
	// Section keeps only keys of that section (case-insensitive). Empty keeps all.
	Section string
}

// GetConfigSchemaOutput contains the schema information.
type GetConfigSchemaOutput struct {
	Keys     []entity.ConfigKeyInfo
	Sections []string // in first-seen order
}

// Execute returns configuration keys, optionally limited to one section.
// An unknown section is an error listing the valid ones.
func (uc *GetConfigSchemaUseCase) Execute(_ context.Context, input GetConfigSchemaInput) (*GetConfigSchemaOutput, error) {
	all := uc.provider.GetSchema()

	var sections []string
	seen := make(map[string]bool)
	for _, k := range all {
		if !seen[k.Section] {
			seen[k.Section] = true
			sections = append(sections, k.Section)
		}
	}

	want := strings.TrimSpace(input.Section)
	if want == "" {
		return &GetConfigSchemaOutput{Keys: all, Sections: sections}, nil
	}

	keys := make([]entity.ConfigKeyInfo, 0, len(all))
	for _, k := range all {
		if strings.EqualFold(k.Section, want) {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("unknown config section %q (want one of: %s)", want, strings.Join(sections, ", "))
	}

	return &GetConfigSchemaOutput{Keys: keys, Sections: []string{keys[0].Section}}, nil
}
