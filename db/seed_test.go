package db_test

import (
	"context"
	"strings"
	"testing"

	"github.com/innovate-connect/innovate/db"
	"github.com/innovate-connect/innovate/internal/auth"
	"github.com/innovate-connect/innovate/internal/models"
	"github.com/innovate-connect/innovate/internal/testutil"
	"github.com/innovate-connect/innovate/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedAdmin_CreatesAndRotatesPassword(t *testing.T) {
	gdb := testutil.NewDB(t)
	ctx := context.Background()

	require.NoError(t, db.SeedAdmin(ctx, gdb, " Admin@Innovate.com ", "first-pass"))
	require.NoError(t, db.SeedAdmin(ctx, gdb, "admin@innovate.com", "second-pass"))

	var admins []models.Account
	require.NoError(t, gdb.Where("role = ?", types.RoleAdmin).Find(&admins).Error)
	require.Len(t, admins, 1)
	assert.Equal(t, "admin@innovate.com", admins[0].Email)
	assert.True(t, auth.VerifyPassword("second-pass", admins[0].PasswordHash))
}

func TestSeedAdmin_RejectsOverlongPassword(t *testing.T) {
	gdb := testutil.NewDB(t)

	err := db.SeedAdmin(context.Background(), gdb, "admin@innovate.com", strings.Repeat("a", 100))
	require.ErrorIs(t, err, auth.ErrPasswordTooLong)
	assert.Contains(t, err.Error(), "admin@innovate.com")

	var count int64
	require.NoError(t, gdb.Model(&models.Account{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSeedAdmin_RefusesToPromote(t *testing.T) {
	gdb := testutil.NewDB(t)
	ctx := context.Background()

	require.NoError(t, gdb.Create(&models.Account{Email: "admin@innovate.com", PasswordHash: "x", Role: types.RoleStudent}).Error)

	err := db.SeedAdmin(ctx, gdb, "admin@innovate.com", "first-pass")
	assert.ErrorContains(t, err, "refusing to promote")
}
