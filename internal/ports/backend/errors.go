package backend

import "errors"

// Errores compartidos por los repositorios que hablan con el backend.
// Cada dominio conserva sus propios ErrNotFound / ErrInvalidInput.
var (
	ErrUnauthorized = errors.New("backend: unauthorized")
	ErrForbidden    = errors.New("backend: forbidden")
	ErrConflict     = errors.New("backend: conflict")
	ErrUnavailable  = errors.New("backend: unavailable")
)

// ConflictError conserva el mensaje del backend ("Email already exists").
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	if e.Message == "" {
		return ErrConflict.Error()
	}
	return e.Message
}

func (e *ConflictError) Unwrap() error { return ErrConflict }
