package entity

import (
	"encoding/json"
	"time"
)

// KVEntry valor JSON arbitrario guardado bajo una clave de un usuario.
type KVEntry struct {
	OwnerID   string
	Key       string
	Value     json.RawMessage
	UpdatedAt time.Time
}
