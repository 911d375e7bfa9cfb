package main

import (
	"fmt"
	"log/slog"

	"github.com/innovate-connect/innovate/db"
	"github.com/innovate-connect/innovate/internal/config"
	"github.com/innovate-connect/innovate/internal/logging"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	configPath string
	cfg        *config.Config
	logger     *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "innovate",
	Short: "Innovate Connect API server",
	Long: `Innovate Connect connects students, companies and administrators:
internships, applications, ideas and role-scoped profiles over a REST API.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		cfg, err = config.Load(configPath)

		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		logger = logging.New(cfg.Logging)
		slog.SetDefault(logger)

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file (env overrides still apply)")

	rootCmd.AddCommand(serveCmd, migrateCmd)
}

// openDatabase connects, migrates and seeds the admin account.
func openDatabase(cmd *cobra.Command) (*gorm.DB, error) {
	gdb, err := db.Open(cfg.Database)

	if err != nil {
		return nil, err
	}

	if err := db.MigrateDatabase(gdb); err != nil {
		return nil, err
	}

	if err := db.SeedAdmin(cmd.Context(), gdb, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		return nil, fmt.Errorf("seeding admin: %w", err)
	}

	return gdb, nil
}
