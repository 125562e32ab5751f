package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/jhoicas/gramin-udyami-api/internal/domain"
	"github.com/jhoicas/gramin-udyami-api/internal/domain/repository"
)

// MaxKVKeyLength largo máximo de una clave.
const MaxKVKeyLength = 256

// KVUseCase almacén clave-valor del front-end. Cada usuario ve solo sus propias claves.
type KVUseCase struct {
	repo repository.KVRepository
}

// NewKVUseCase construye el caso de uso.
func NewKVUseCase(repo repository.KVRepository) *KVUseCase {
	return &KVUseCase{repo: repo}
}

// Get devuelve el valor guardado o JSON null si la clave no existe.
func (uc *KVUseCase) Get(ctx context.Context, userID, key string) (json.RawMessage, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	e, err := uc.repo.Get(ctx, userID, key)
	if err != nil {
		return nil, err
	}
	if e == nil || len(e.Value) == 0 {
		return json.RawMessage("null"), nil
	}
	return e.Value, nil
}

// Set guarda cualquier valor JSON válido; un valor ausente se guarda como null.
func (uc *KVUseCase) Set(ctx context.Context, userID, key string, value json.RawMessage) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if len(value) == 0 {
		value = json.RawMessage("null")
	}
	if !json.Valid(value) {
		return domain.ErrInvalidInput
	}
	return uc.repo.Set(ctx, userID, key, value)
}

// Delete elimina la clave; borrar una clave inexistente no es error.
func (uc *KVUseCase) Delete(ctx context.Context, userID, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, userID, key)
}

func validateKey(key string) error {
	if strings.TrimSpace(key) == "" || len(key) > MaxKVKeyLength {
		return domain.ErrInvalidInput
	}
	return nil
}
