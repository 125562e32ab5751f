package dto

import "encoding/json"

// KVValueResponse valor guardado; null si la clave no existe.
type KVValueResponse struct {
	Value json.RawMessage `json:"value"`
}

// KVSetRequest cuerpo de POST /api/kv/:key.
type KVSetRequest struct {
	Value json.RawMessage `json:"value"`
}

// KVOKResponse confirmación.
type KVOKResponse struct {
	OK bool `json:"ok"`
}

// KVErrorResponse error del almacén con la forma {error}.
type KVErrorResponse struct {
	Error string `json:"error"`
}
