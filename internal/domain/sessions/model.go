package sessions

import (
	"slices"
	"strings"
	"time"
)

const RoleAdmin = "ADMIN"

// Session es el objeto de identidad explícito del gateway.
// Reemplaza token/usuario guardados globalmente en el navegador:
// quien necesite identidad la recibe vía context (ver WithSession).
type Session struct {
	ID string

	// BackendToken es el JWT del backend; nunca sale del gateway.
	BackendToken string

	Username string
	Email    string
	Roles    []string

	CreatedAt time.Time
	ExpiresAt time.Time
}

// IsAdmin acepta ADMIN con o sin prefijo ROLE_.
func (s Session) IsAdmin() bool {
	return slices.ContainsFunc(s.Roles, func(r string) bool {
		return strings.EqualFold(strings.TrimPrefix(strings.ToUpper(r), "ROLE_"), RoleAdmin)
	})
}

func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
