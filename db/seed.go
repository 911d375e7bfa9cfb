package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/innovate-connect/innovate/internal/auth"
	"github.com/innovate-connect/innovate/internal/models"
	"github.com/innovate-connect/innovate/internal/types"
	"gorm.io/gorm"
)

// SeedAdmin makes sure exactly one administrator with the given email exists
// and that its password and role match the configuration. An empty password
// leaves an existing admin untouched and skips creation.
func SeedAdmin(ctx context.Context, db *gorm.DB, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	if email == "" || password == "" {
		return nil
	}

	hash, err := auth.HashPassword(password)

	if err != nil {
		return fmt.Errorf("admin password for %s: %w", email, err)
	}

	var admin models.Account

	err = db.WithContext(ctx).Where("email = ?", email).First(&admin).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		admin = models.Account{
			Email:        email,
			PasswordHash: hash,
			Role:         types.RoleAdmin,
		}

		if err := db.WithContext(ctx).Create(&admin).Error; err != nil {
			return fmt.Errorf("creating admin account: %w", err)
		}

		return nil
	}

	if err != nil {
		return fmt.Errorf("looking up admin account: %w", err)
	}

	if admin.Role != types.RoleAdmin {
		return fmt.Errorf("account %s exists with role %s, refusing to promote it", email, admin.Role)
	}

	return db.WithContext(ctx).Model(&admin).Update("password_hash", hash).Error
}
