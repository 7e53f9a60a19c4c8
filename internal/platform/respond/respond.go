package respond

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"pet-admin-console/internal/ports/backend"
)

// JSON era writeJSON duplicado en cada módulo; con seis módulos ya vale
// la pena tenerlo en un solo lugar.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

// ErrorBody es el formato de error que espera el frontend.
type ErrorBody struct {
	Message   string    `json:"message"`
	Error     string    `json:"error"`
	Timestamp time.Time `json:"timestamp"`
	Path      string    `json:"path"`
}

func Error(w http.ResponseWriter, r *http.Request, status int, message string) {
	if message == "" {
		message = http.StatusText(status)
	}
	path := ""
	if r != nil && r.URL != nil {
		path = r.URL.Path
	}
	JSON(w, status, ErrorBody{
		Message:   message,
		Error:     http.StatusText(status),
		Timestamp: time.Now().UTC(),
		Path:      path,
	})
}

// BackendError traduce los errores compartidos del backend.
// Retorna false si err no es uno de ellos.
func BackendError(w http.ResponseWriter, r *http.Request, err error) bool {
	var ce *backend.ConflictError
	switch {
	case errors.As(err, &ce):
		Error(w, r, http.StatusConflict, ce.Error())
	case errors.Is(err, backend.ErrConflict):
		Error(w, r, http.StatusConflict, "conflict")
	case errors.Is(err, backend.ErrUnauthorized):
		Error(w, r, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, backend.ErrForbidden):
		Error(w, r, http.StatusForbidden, "forbidden")
	case errors.Is(err, backend.ErrUnavailable):
		Error(w, r, http.StatusBadGateway, "backend unavailable")
	default:
		return false
	}
	return true
}
