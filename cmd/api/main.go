package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-admin-console/internal/adapters/storage/memory"
	"pet-admin-console/internal/adapters/storage/postgres"
	"pet-admin-console/internal/backend"
	"pet-admin-console/internal/config"
	"pet-admin-console/internal/domain/sessions"
	"pet-admin-console/internal/platform/logger"
	"pet-admin-console/internal/router"
)

// @title Pet Admin Console API
// @version 1.0
// @description Gateway de administración de dueños y mascotas.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Options{}).Error("config error", logger.Fields{"err": err.Error()})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	be, err := backend.New(backend.OptionsFrom(cfg))
	if err != nil {
		log.Error("backend init failed", logger.Fields{"err": err.Error()})
		os.Exit(1)
	}
	log.Info("backend ready", logger.Fields{"kind": be.Kind, "url": cfg.Backend.URL})

	repo, closeRepo, err := sessionsRepo(ctx, cfg, log)
	if err != nil {
		log.Error("sessions store init failed", logger.Fields{"err": err.Error()})
		os.Exit(1)
	}
	defer closeRepo()

	sessSvc := sessions.NewService(repo, be.Auth, cfg.Session.TTL)
	go purgeSessions(ctx, sessSvc, cfg.Session.PurgeInterval, log)

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: router.NewRouter(router.Options{
			Logger:   log,
			DevMode:  cfg.Auth.DevMode,
			Backend:  be,
			Sessions: sessSvc,
		}),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("starting server", logger.Fields{"addr": srv.Addr, "dev_mode": cfg.Auth.DevMode})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", logger.Fields{"err": err.Error()})
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", logger.Fields{"err": err.Error()})
	}
	log.Info("server stopped", nil)
}

// sessionsRepo usa Postgres si hay DSN; si no, memoria.
func sessionsRepo(ctx context.Context, cfg *config.Config, log logger.Logger) (sessions.Repository, func(), error) {
	if cfg.Database.DSN == "" {
		log.Warn("DB_DSN not set, sessions are kept in memory", nil)
		return memory.NewSessionsRepo(), func() {}, nil
	}

	pool, err := postgres.Open(ctx, postgres.Options{DSN: cfg.Database.DSN, MaxConns: cfg.Database.MaxConns})
	if err != nil {
		return nil, nil, err
	}
	if cfg.Database.Migrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
	}
	return postgres.NewSessionsRepo(pool), pool.Close, nil
}

func purgeSessions(ctx context.Context, svc *sessions.Service, every time.Duration, log logger.Logger) {
	if every <= 0 {
		return
	}
	t := time.NewTicker(every)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			n, err := svc.PurgeExpired(ctx)
			if err != nil {
				log.Warn("purge expired sessions failed", logger.Fields{"err": err.Error()})
				continue
			}
			if n > 0 {
				log.Debug("expired sessions purged", logger.Fields{"count": n})
			}
		}
	}
}
