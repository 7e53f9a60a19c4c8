package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"pet-admin-console/internal/adapters/storage/memory"
	"pet-admin-console/internal/backend"
	"pet-admin-console/internal/config"
	"pet-admin-console/internal/console"
	"pet-admin-console/internal/domain/owners"
	"pet-admin-console/internal/domain/pets"
	"pet-admin-console/internal/domain/sessions"
	"pet-admin-console/internal/domain/statistics"
	"pet-admin-console/internal/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// stdout es la pantalla: los logs van a LOG_FILE o se descartan.
	var w io.Writer = io.Discard
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Printf("Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}
	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App + "-console",
		Writer: w,
	})

	be, err := backend.New(backend.OptionsFrom(cfg))
	if err != nil {
		fmt.Printf("Error initializing backend: %v\n", err)
		os.Exit(1)
	}
	log.Info("console starting", logger.Fields{"backend": be.Kind})

	app := console.NewApp(console.Deps{
		Sessions: sessions.NewService(memory.NewSessionsRepo(), be.Auth, cfg.Session.TTL),
		Owners:   owners.NewService(be.Owners),
		Pets:     pets.NewService(be.Pets),
		Stats:    statistics.NewService(be.Stats),
		Debounce: cfg.Search.Debounce,
	})
	defer app.Close()

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error("console error", logger.Fields{"err": err.Error()})
		fmt.Printf("Error running console: %v\n", err)
		os.Exit(1)
	}
	log.Info("console stopped", nil)
}
