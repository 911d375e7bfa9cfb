// Package store is the gorm-backed persistence layer. A Store either wraps the
// connection pool or, inside Transaction, a single transaction; callers never
// see the difference.
package store

import (
	"context"
	"errors"
	"strings"

	"github.com/innovate-connect/innovate/internal/errs"
	"gorm.io/gorm"
)

var (
	ErrDuplicateEmail         = errs.E(errs.Duplicate, "Email already exists")
	ErrAlreadyApplied         = errs.E(errs.Duplicate, "Already applied")
	ErrAccountNotFound        = errs.NewNotFound("User not found")
	ErrStudentProfileNotFound = errs.NewNotFound("Student profile not found")
	ErrCompanyProfileNotFound = errs.NewNotFound("Company profile not found")
	ErrInternshipNotFound     = errs.NewNotFound("Internship not found")
	ErrApplicationNotFound    = errs.NewNotFound("Application not found")
	ErrIdeaNotFound           = errs.NewNotFound("Idea not found")
	ErrContactNotFound        = errs.NewNotFound("Message not found")
	ErrResumeNotFound         = errs.NewNotFound("Resume not found")
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Transaction runs fn against a Store bound to one database transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

func (s *Store) conn(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

func isDuplicate(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	msg := err.Error()

	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "Duplicate entry")
}

func notFound(err error, sentinel *errs.Error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}
