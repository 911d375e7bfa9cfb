package store

import (
	"context"
	"fmt"

	"github.com/innovate-connect/innovate/internal/models"
	"gorm.io/gorm/clause"
)

func (s *Store) ListInternships(ctx context.Context) ([]models.Internship, error) {
	var internships []models.Internship

	err := s.conn(ctx).Preload("Company").Order("posted_at DESC, id DESC").Find(&internships).Error

	return internships, err
}

func (s *Store) ListInternshipsByCompany(ctx context.Context, companyProfileID uint) ([]models.Internship, error) {
	var internships []models.Internship

	err := s.conn(ctx).
		Preload("Company").
		Where("company_profile_id = ?", companyProfileID).
		Order("posted_at DESC, id DESC").
		Find(&internships).Error

	return internships, err
}

func (s *Store) FindInternship(ctx context.Context, id uint) (*models.Internship, error) {
	var internship models.Internship

	if err := s.conn(ctx).Preload("Company").First(&internship, id).Error; err != nil {
		return nil, notFound(err, ErrInternshipNotFound)
	}

	return &internship, nil
}

func (s *Store) CreateInternship(ctx context.Context, internship *models.Internship) error {
	if err := s.conn(ctx).Omit(clause.Associations).Create(internship).Error; err != nil {
		return fmt.Errorf("creating internship: %w", err)
	}
	return nil
}

// UpdateInternship writes the editable columns. Owner and posted date are
// never rewritten.
func (s *Store) UpdateInternship(ctx context.Context, internship *models.Internship) error {
	err := s.conn(ctx).Model(internship).
		Select("title", "description", "technology", "stipend").
		Updates(internship).Error

	if err != nil {
		return fmt.Errorf("updating internship: %w", err)
	}

	return nil
}

// DeleteInternship removes an internship and the applications made to it.
func (s *Store) DeleteInternship(ctx context.Context, id uint) error {
	return s.Transaction(ctx, func(tx *Store) error {
		db := tx.conn(ctx)

		if err := db.Where("internship_id = ?", id).Delete(&models.Application{}).Error; err != nil {
			return fmt.Errorf("deleting applications: %w", err)
		}

		result := db.Delete(&models.Internship{}, id)

		if result.Error != nil {
			return fmt.Errorf("deleting internship: %w", result.Error)
		}

		if result.RowsAffected == 0 {
			return ErrInternshipNotFound
		}

		return nil
	})
}

func (s *Store) CountInternships(ctx context.Context) (int64, error) {
	var count int64

	err := s.conn(ctx).Model(&models.Internship{}).Count(&count).Error

	return count, err
}
