package middleware

import (
	"context"
	"net/http"

	"pet-admin-console/internal/domain/sessions"
	"pet-admin-console/internal/platform/logger"
)

// LogoutOnUnauthorized cierra la sesión cuando la respuesta es 401: el
// backend rechazó el token guardado, así que la sesión ya no sirve y el
// cliente debe volver a loguearse.
func LogoutOnUnauthorized(svc *sessions.Service, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := newStatusRecorder(w)
			next.ServeHTTP(rec, r)

			if rec.status != http.StatusUnauthorized || svc == nil {
				return
			}
			s, ok := sessions.FromContext(r.Context())
			if !ok || s.ID == DebugSessionID {
				return
			}
			if err := svc.Logout(context.WithoutCancel(r.Context()), s.ID); err != nil {
				log.Warn("logout after 401 failed", logger.Fields{"session": s.ID, "err": err.Error()})
				return
			}
			log.Info("session closed after backend 401", logger.Fields{"user": s.Username})
		})
	}
}
