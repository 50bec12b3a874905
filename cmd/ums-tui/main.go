package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aussiebroadwan/ums/internal/ums/app"
	"github.com/aussiebroadwan/ums/internal/ums/session"
	"github.com/aussiebroadwan/ums/internal/ums/tui"
	"github.com/aussiebroadwan/ums/pkg/cryptox"
	"github.com/aussiebroadwan/ums/pkg/slogx"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := app.LoadTUIConfig()
	if err != nil {
		return err
	}

	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()

	logger := slogx.New(slogx.Config{
		Service: "ums-tui",
		Version: app.BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Output:  logFile,
	})
	ctx := slogx.WithContext(context.Background(), logger)

	db, err := app.OpenStore(cfg.DatabaseFile)
	if err != nil {
		return err
	}
	defer db.Close()

	pepper, err := cryptox.LoadOrGenerateSecret(cfg.PepperFile)
	if err != nil {
		return fmt.Errorf("load pepper: %w", err)
	}

	sess, err := session.Open(ctx, db, cryptox.NewPasswordHasher(pepper), cfg.Slot)
	if err != nil {
		return fmt.Errorf("open session: %w", err)
	}

	_, loggedIn := sess.Current()
	logger.Info("ums-tui starting", "database", cfg.DatabaseFile, "slot", cfg.Slot, "logged_in", loggedIn)

	theme := tui.LoadTheme(ctx, db.Settings(), tui.ParseTheme(cfg.Theme))

	p := tea.NewProgram(
		tui.NewModel(ctx, sess, theme, tui.WithSettings(db.Settings())),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		return err
	}

	logger.Info("ums-tui stopped")
	return nil
}
