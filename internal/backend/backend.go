// Package backend arma los repositorios de dominio contra el backend REST
// o, si no hay URL configurada, contra el backend de desarrollo en memoria.
package backend

import (
	"fmt"
	"time"

	"pet-admin-console/internal/adapters/backend/rest"
	"pet-admin-console/internal/adapters/storage/memory"
	"pet-admin-console/internal/config"
	"pet-admin-console/internal/domain/owners"
	"pet-admin-console/internal/domain/pets"
	"pet-admin-console/internal/domain/statistics"
	"pet-admin-console/internal/domain/users"
	"pet-admin-console/internal/ports/auth"
)

const (
	KindREST   = "rest"
	KindMemory = "memory"
)

type Options struct {
	// URL vacía => backend en memoria.
	URL     string
	Timeout time.Duration

	// Solo backend en memoria.
	DevJWTSecret     string
	DevAdminUsername string
	DevAdminPassword string
	TokenTTL         time.Duration
	SeedDemo         bool
}

type Backend struct {
	Kind   string
	Owners owners.Repository
	Pets   pets.Repository
	Users  users.Repository
	Stats  statistics.Repository
	Auth   auth.Authenticator
}

// OptionsFrom arma Options desde la config; el backend dev carga datos demo.
func OptionsFrom(cfg *config.Config) Options {
	return Options{
		URL:              cfg.Backend.URL,
		Timeout:          cfg.Backend.Timeout,
		DevJWTSecret:     cfg.Auth.DevJWTSecret,
		DevAdminUsername: cfg.Auth.DevAdminUsername,
		DevAdminPassword: cfg.Auth.DevAdminPassword,
		TokenTTL:         cfg.Session.TTL,
		SeedDemo:         cfg.UsesDevBackend(),
	}
}

func New(opts Options) (Backend, error) {
	if opts.URL != "" {
		return newREST(opts)
	}
	return newMemory(opts)
}

// Memory es un atajo para tests y para arrancar sin configuración.
func Memory() Backend {
	b, err := newMemory(Options{
		DevJWTSecret:     "dev-secret-change-me",
		DevAdminUsername: "admin",
		DevAdminPassword: "admin123",
		SeedDemo:         true,
	})
	if err != nil {
		panic(err)
	}
	return b
}

func newREST(opts Options) (Backend, error) {
	c, err := rest.NewClient(rest.Config{BaseURL: opts.URL, Timeout: opts.Timeout})
	if err != nil {
		return Backend{}, err
	}
	return Backend{
		Kind:   KindREST,
		Owners: rest.NewOwnersRepo(c),
		Pets:   rest.NewPetsRepo(c),
		Users:  rest.NewUsersRepo(c),
		Stats:  rest.NewStatisticsRepo(c),
		Auth:   rest.NewAuthenticator(c),
	}, nil
}

func newMemory(opts Options) (Backend, error) {
	ttl := opts.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	store := memory.NewStore()
	authn, err := memory.NewAuthenticator(store, opts.DevJWTSecret, ttl)
	if err != nil {
		return Backend{}, fmt.Errorf("dev backend: %w", err)
	}
	if opts.DevAdminUsername != "" {
		if err := store.SeedAdmin(opts.DevAdminUsername, opts.DevAdminPassword); err != nil {
			return Backend{}, err
		}
	}
	if opts.SeedDemo {
		store.SeedDemo()
	}

	return Backend{
		Kind:   KindMemory,
		Owners: memory.NewOwnersRepo(store),
		Pets:   memory.NewPetRepo(store),
		Users:  memory.NewUsersRepo(store),
		Stats:  memory.NewStatisticsRepo(store),
		Auth:   authn,
	}, nil
}
