package repository

import (
	"context"
	"encoding/json"

	"github.com/jhoicas/gramin-udyami-api/internal/domain/entity"
)

// KVRepository almacén clave-valor con valores JSON. Las claves son únicas por ownerID.
type KVRepository interface {
	Get(ctx context.Context, ownerID, key string) (*entity.KVEntry, error)
	Set(ctx context.Context, ownerID, key string, value json.RawMessage) error
	Delete(ctx context.Context, ownerID, key string) error
}
