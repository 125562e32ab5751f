package domain

import (
	"errors"
	"sort"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound              = errors.New("recurso no encontrado")
	ErrUserNotFound          = errors.New("usuario no encontrado")
	ErrUserIDTaken           = errors.New("el user_id ya está registrado")
	ErrInvalidInput          = errors.New("entrada inválida")
	ErrDuplicate             = errors.New("recurso duplicado")
	ErrUnauthorized          = errors.New("no autorizado")
	ErrForbidden             = errors.New("acceso denegado")
	ErrNotOwner              = errors.New("el recurso pertenece a otro usuario")
	ErrConflict              = errors.New("conflicto con el estado actual")
	ErrUnsupportedMedia      = errors.New("tipo de archivo no soportado")
	ErrPayloadTooLarge       = errors.New("archivo demasiado grande")
	ErrTranslatorUnavailable = errors.New("servicio de traducción no disponible")
)

// ValidationError agrupa mensajes por campo; el front-end los muestra junto a cada input.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError crea un error vacío listo para acumular campos.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// Add registra el mensaje de un campo; conserva el primero si ya existe.
func (e *ValidationError) Add(field, msg string) {
	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = msg
	}
}

// HasErrors indica si se registró algún campo.
func (e *ValidationError) HasErrors() bool {
	return e != nil && len(e.Fields) > 0
}

// OrNil devuelve nil cuando no hay errores, para usar como `return verr.OrNil()`.
func (e *ValidationError) OrNil() error {
	if !e.HasErrors() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validación: " + strings.Join(parts, "; ")
}

// Unwrap permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error { return ErrInvalidInput }
