package main

import (
	"context"
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/raith/agroconnect/internal/api"
	"github.com/raith/agroconnect/internal/config"
	"github.com/raith/agroconnect/internal/nav"
	"github.com/raith/agroconnect/internal/session"
	"github.com/raith/agroconnect/internal/shipments"
	"github.com/raith/agroconnect/internal/tui"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("agroconnect: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	client := api.New(cfg.API.BaseURL, time.Duration(cfg.API.TimeoutSeconds)*time.Second)

	path, err := session.DefaultPath()
	if err != nil {
		return fmt.Errorf("session path: %w", err)
	}
	sess := session.NewStore(client, path)

	register := nav.NewRegister(func() nav.Session {
		snap := sess.Snapshot()
		return nav.Session{Authenticated: snap.User != nil, Loading: snap.Loading}
	})

	app := tui.New(context.Background(), cfg, client, sess, register, shipments.NewBook())

	_, err = tea.NewProgram(app, tea.WithAltScreen()).Run()
	return err
}
