package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5/middleware"

	"pet-admin-console/internal/platform/logger"
	"pet-admin-console/internal/platform/respond"
)

// Recover reemplaza a chi/middleware.Recoverer para loguear con nuestro logger
// y responder con el mismo cuerpo de error que el resto de la API.
func Recover(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}
				log.Error("panic recovered", logger.Fields{
					"request_id": middleware.GetReqID(r.Context()),
					"panic":      rvr,
					"stack":      string(debug.Stack()),
				})
				respond.Error(w, r, http.StatusInternalServerError, "internal error")
			}()
			next.ServeHTTP(w, r)
		})
	}
}
