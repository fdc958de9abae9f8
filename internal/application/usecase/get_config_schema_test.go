package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/multiview/internal/application/port/mocks"
	"github.com/bnema/multiview/internal/application/usecase"
	"github.com/bnema/multiview/internal/domain/entity"
)

func schemaKeys() []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{Key: "panes.initial_count", Type: "int", Default: "2", Section: "Panes"},
		{Key: "panes.loading_delay_ms", Type: "int", Default: "1500", Section: "Panes"},
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     "info",
			Description: "Log verbosity level",
			Values:      []string{"trace", "debug", "info", "warn", "error", "fatal"},
			Section:     "Logging",
		},
	}
}

func TestGetConfigSchemaUseCase_Execute(t *testing.T) {
	t.Run("returns all keys and sections", func(t *testing.T) {
		provider := mocks.NewMockConfigSchemaProvider(t)
		provider.EXPECT().GetSchema().Return(schemaKeys())

		uc := usecase.NewGetConfigSchemaUseCase(provider)
		result, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{})

		require.NoError(t, err)
		assert.Len(t, result.Keys, 3)
		assert.Equal(t, []string{"Panes", "Logging"}, result.Sections)
	})

	t.Run("filters by section case-insensitively", func(t *testing.T) {
		provider := mocks.NewMockConfigSchemaProvider(t)
		provider.EXPECT().GetSchema().Return(schemaKeys())

		uc := usecase.NewGetConfigSchemaUseCase(provider)
		result, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{Section: "panes"})

		require.NoError(t, err)
		require.Len(t, result.Keys, 2)
		assert.Equal(t, "panes.initial_count", result.Keys[0].Key)
		assert.Equal(t, []string{"Panes"}, result.Sections)
	})

	t.Run("unknown section lists valid ones", func(t *testing.T) {
		provider := mocks.NewMockConfigSchemaProvider(t)
		provider.EXPECT().GetSchema().Return(schemaKeys())

		uc := usecase.NewGetConfigSchemaUseCase(provider)
		_, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{Section: "network"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Panes, Logging")
	})

	t.Run("empty provider", func(t *testing.T) {
		provider := mocks.NewMockConfigSchemaProvider(t)
		provider.EXPECT().GetSchema().Return([]entity.ConfigKeyInfo{})

		uc := usecase.NewGetConfigSchemaUseCase(provider)
		result, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{})

		require.NoError(t, err)
		assert.Empty(t, result.Keys)
	})
}
