package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gramin-udyami-api/internal/domain/entity"
	"github.com/jhoicas/gramin-udyami-api/internal/domain/repository"
)

var _ repository.KVRepository = (*KVRepo)(nil)

// KVRepo almacén clave-valor sobre la tabla kv_store (value JSONB, PK owner_id + key).
type KVRepo struct {
	q Querier
}

// NewKVRepository construye el adaptador.
func NewKVRepository(q Querier) *KVRepo {
	return &KVRepo{q: q}
}

// Get devuelve la entrada; (nil, nil) si no existe.
func (r *KVRepo) Get(ctx context.Context, ownerID, key string) (*entity.KVEntry, error) {
	var e entity.KVEntry
	var value []byte
	err := r.q.QueryRow(ctx, `SELECT owner_id, key, value, updated_at FROM kv_store WHERE owner_id = $1 AND key = $2`, ownerID, key).
		Scan(&e.OwnerID, &e.Key, &value, &e.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get kv_store: %w", err)
	}
	e.Value = json.RawMessage(value)
	return &e, nil
}

// Set crea o reemplaza el valor.
func (r *KVRepo) Set(ctx context.Context, ownerID, key string, value json.RawMessage) error {
	query := `
		INSERT INTO kv_store (owner_id, key, value, updated_at) VALUES ($1, $2, $3, now())
		ON CONFLICT (owner_id, key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	if _, err := r.q.Exec(ctx, query, ownerID, key, []byte(value)); err != nil {
		return fmt.Errorf("set kv_store: %w", err)
	}
	return nil
}

// Delete elimina la clave si existe.
func (r *KVRepo) Delete(ctx context.Context, ownerID, key string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM kv_store WHERE owner_id = $1 AND key = $2`, ownerID, key); err != nil {
		return fmt.Errorf("delete kv_store: %w", err)
	}
	return nil
}
