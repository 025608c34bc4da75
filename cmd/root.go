package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abhisek/count/internal/config"
	"github.com/abhisek/count/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "count",
	Short: "Arithmetic drill for the terminal",
	Long:  "count (счет) shows one small arithmetic problem at a time and keeps score across runs.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A missing .env is fine; the environment still applies.
		_ = godotenv.Load()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides COUNT_DB env var)")
	rootCmd.Flags().String("control-addr", "", "Listen address of the control API, e.g. 127.0.0.1:7070 (overrides COUNT_CONTROL_ADDR)")
	rootCmd.Flags().Duration("delay", 0, "Pause after a right answer (overrides COUNT_ADVANCE_DELAY)")

	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the environment and applies command line overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if f := cmd.Flags().Lookup("control-addr"); f != nil && f.Changed {
		cfg.ControlAddr = f.Value.String()
	}
	if f := cmd.Flags().Lookup("delay"); f != nil && f.Changed {
		d, err := cmd.Flags().GetDuration("delay")
		if err != nil {
			return nil, fmt.Errorf("parse --delay: %w", err)
		}
		cfg.AdvanceDelay = d
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// resolveDBPath returns the database path from config (flag or COUNT_DB),
// falling back to the default XDG path.
func resolveDBPath(cfg *config.Config) (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// openStore opens the configured database.
func openStore(cfg *config.Config) (*store.Store, error) {
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
