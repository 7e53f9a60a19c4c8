package router

import (
	"net/http"
	"time"

	"pet-admin-console/internal/adapters/storage/memory"
	"pet-admin-console/internal/backend"
	"pet-admin-console/internal/domain/owners"
	"pet-admin-console/internal/domain/pets"
	"pet-admin-console/internal/domain/sessions"
	"pet-admin-console/internal/domain/statistics"
	"pet-admin-console/internal/domain/users"
	"pet-admin-console/internal/middleware"
	"pet-admin-console/internal/platform/logger"

	_ "pet-admin-console/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger // nil => Nop

	// DevMode habilita X-Debug-User / X-Debug-Roles.
	DevMode bool

	// Backend vacío => backend en memoria con datos demo.
	Backend backend.Backend

	// Sessions nil => sesiones en memoria contra Backend.Auth.
	Sessions   *sessions.Service
	SessionTTL time.Duration
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	be := opts.Backend
	if be.Auth == nil {
		be = backend.Memory()
	}

	sessSvc := opts.Sessions
	if sessSvc == nil {
		sessSvc = sessions.NewService(memory.NewSessionsRepo(), be.Auth, opts.SessionTTL)
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recover(log))

	r.Use(middleware.SessionContext(sessSvc, opts.DevMode))
	r.Use(middleware.RequestLog(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/phone/format", phoneFormatHandler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Services por módulo
	ownersSvc := owners.NewService(be.Owners)
	petsSvc := pets.NewService(be.Pets)
	usersSvc := users.NewService(be.Users)
	statsSvc := statistics.NewService(be.Stats)

	sessions.RegisterRoutes(r, sessSvc)

	// Un 401 del backend en estas rutas invalida la sesión del gateway.
	r.Group(func(api chi.Router) {
		api.Use(middleware.LogoutOnUnauthorized(sessSvc, log))

		owners.RegisterRoutes(api, ownersSvc)
		pets.RegisterRoutes(api, petsSvc)
		users.RegisterRoutes(api, usersSvc)
		statistics.RegisterRoutes(api, statsSvc)
	})

	return r
}
