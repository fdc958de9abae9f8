package port

import "github.com/bnema/multiview/internal/domain/entity"

// ConfigSchemaProvider lists the configuration keys with their metadata.
type ConfigSchemaProvider interface {
	GetSchema() []entity.ConfigKeyInfo
}
