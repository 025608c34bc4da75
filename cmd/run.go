package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/count/internal/app"
	"github.com/abhisek/count/internal/config"
	"github.com/abhisek/count/internal/control"
	"github.com/abhisek/count/internal/drill"
	drillscreen "github.com/abhisek/count/internal/screens/drill"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(logger)

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	mirror := &drill.Mirror{}
	root, err := drillscreen.New(ctx, drillscreen.Options{
		Generator:    drill.NewRandomGenerator(nil),
		Settings:     st.Settings(),
		Mirror:       mirror,
		Logger:       logger,
		AdvanceDelay: cfg.AdvanceDelay,
	})
	if err != nil {
		return err
	}

	p := app.NewProgram(root)

	if cfg.ControlEnabled() {
		srv := control.NewServer(app.NewBridge(p, mirror), logger, cfg.CORSOrigins)
		httpSrv, _, err := srv.Start(cfg.ControlAddr)
		if err != nil {
			return fmt.Errorf("start control server: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := httpSrv.Shutdown(shutdownCtx); err != nil {
				logger.Error("control server shutdown", "error", err)
			}
		}()
	}

	logger.Info("drill started", "control", cfg.ControlAddr, "delay", cfg.AdvanceDelay)
	return app.Run(p)
}

// newLogger builds the JSON logger. Without a log file everything is
// discarded, since the terminal belongs to the UI.
func newLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFile == "" {
		return slog.New(slog.NewJSONHandler(io.Discard, opts)), func() {}, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return slog.New(slog.NewJSONHandler(f, opts)), func() { f.Close() }, nil
}
