package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"pet-admin-console/internal/domain/sessions"
	"pet-admin-console/internal/platform/logger"
)

// RequestLog escribe una línea por request. Va después de SessionContext
// para poder incluir el usuario.
func RequestLog(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)
			next.ServeHTTP(rec, r)

			fields := logger.Fields{
				"request_id": middleware.GetReqID(r.Context()),
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     rec.status,
				"bytes":      rec.bytes,
				"duration":   time.Since(start).String(),
			}
			if s, ok := sessions.FromContext(r.Context()); ok {
				fields["user"] = s.Username
			}

			switch {
			case rec.status >= 500:
				log.Error("request", fields)
			case rec.status >= 400:
				log.Warn("request", fields)
			default:
				log.Debug("request", fields)
			}
		})
	}
}
