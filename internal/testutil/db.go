// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/innovate-connect/innovate/db"
	"github.com/innovate-connect/innovate/internal/config"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var dbCounter atomic.Int64

// NewDB returns a migrated, isolated in-memory SQLite database with foreign
// keys enforced. The pool is capped at one connection so concurrent tests
// serialise on it instead of hitting shared-cache table locks.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:innovate_test_%d?mode=memory&cache=shared&_foreign_keys=1", dbCounter.Add(1))

	gdb, err := db.Open(config.DatabaseConfig{
		Driver:       "sqlite",
		DSN:          dsn,
		MaxOpenConns: 1,
	})
	require.NoError(t, err)

	require.NoError(t, db.MigrateDatabase(gdb))

	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return gdb
}
