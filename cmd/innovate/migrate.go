package main

import (
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply schema migrations and seed the admin account, then exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		gdb, err := openDatabase(cmd)

		if err != nil {
			return err
		}

		if sqlDB, err := gdb.DB(); err == nil {
			defer sqlDB.Close()
		}

		logger.Info("database migrated", "driver", cfg.Database.Driver)

		return nil
	},
}
