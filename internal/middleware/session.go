package middleware

import (
	"net/http"
	"strings"

	"pet-admin-console/internal/domain/sessions"
)

const (
	HeaderDebugUser  = "X-Debug-User"
	HeaderDebugRoles = "X-Debug-Roles"
	DebugSessionID   = "debug"
)

// SessionContext:
// - Si viene "Authorization: Bearer <session id>" y la sesión existe => la
//   pone en el contexto.
// - En modo dev, X-Debug-User (+ X-Debug-Roles separados por coma) inyecta
//   una sesión sintética sin login.
// - Si no hay sesión, el request sigue igual; los handlers decidirán 401.
func SessionContext(svc *sessions.Service, devMode bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if devMode {
				if user := strings.TrimSpace(r.Header.Get(HeaderDebugUser)); user != "" {
					s := sessions.Session{
						ID:       DebugSessionID,
						Username: user,
						Roles:    splitRoles(r.Header.Get(HeaderDebugRoles)),
					}
					next.ServeHTTP(w, r.WithContext(sessions.WithSession(r.Context(), s)))
					return
				}
			}

			id := bearerToken(r.Header.Get("Authorization"))
			if id == "" || svc == nil {
				next.ServeHTTP(w, r)
				return
			}

			s, err := svc.Resolve(r.Context(), id)
			if err != nil {
				// Sesión vencida o desconocida: se trata como anónimo.
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(sessions.WithSession(r.Context(), s)))
		})
	}
}

func splitRoles(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.ToUpper(strings.TrimSpace(p)); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func bearerToken(authHeader string) string {
	if strings.TrimSpace(authHeader) == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
