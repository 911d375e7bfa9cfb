package store

import (
	"context"
	"fmt"

	"github.com/innovate-connect/innovate/internal/models"
	"github.com/innovate-connect/innovate/internal/types"
	"gorm.io/gorm/clause"
)

// CreateApplication relies on the (internship_id, student_profile_id) unique
// index; the loser of a concurrent double submit gets ErrAlreadyApplied.
func (s *Store) CreateApplication(ctx context.Context, application *models.Application) error {
	if err := s.conn(ctx).Omit(clause.Associations).Create(application).Error; err != nil {
		if isDuplicate(err) {
			return ErrAlreadyApplied
		}
		return fmt.Errorf("creating application: %w", err)
	}
	return nil
}

func (s *Store) FindApplication(ctx context.Context, id uint) (*models.Application, error) {
	var application models.Application

	err := s.conn(ctx).
		Preload("Internship.Company").
		Preload("StudentProfile.Account").
		First(&application, id).Error

	if err != nil {
		return nil, notFound(err, ErrApplicationNotFound)
	}

	return &application, nil
}

// SetApplicationStatus writes status only when it differs from the stored
// value, so of several concurrent identical updates exactly one reports
// changed.
func (s *Store) SetApplicationStatus(ctx context.Context, id uint, status types.ApplicationStatus) (changed bool, err error) {
	result := s.conn(ctx).
		Model(&models.Application{}).
		Where("id = ? AND status <> ?", id, status).
		Update("status", status)

	if result.Error != nil {
		return false, fmt.Errorf("updating application status: %w", result.Error)
	}

	if result.RowsAffected == 1 {
		return true, nil
	}

	var count int64

	if err := s.conn(ctx).Model(&models.Application{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("checking application: %w", err)
	}

	if count == 0 {
		return false, ErrApplicationNotFound
	}

	return false, nil
}

func (s *Store) ListApplicationsByStudent(ctx context.Context, studentProfileID uint) ([]models.Application, error) {
	var applications []models.Application

	err := s.conn(ctx).
		Preload("Internship.Company").
		Where("student_profile_id = ?", studentProfileID).
		Order("applied_at DESC, id DESC").
		Find(&applications).Error

	return applications, err
}

func (s *Store) ListApplicationsByCompany(ctx context.Context, companyProfileID uint) ([]models.Application, error) {
	var applications []models.Application

	err := s.conn(ctx).
		Preload("Internship").
		Preload("StudentProfile").
		Joins("JOIN internships ON internships.id = applications.internship_id").
		Where("internships.company_profile_id = ?", companyProfileID).
		Order("applications.applied_at DESC, applications.id DESC").
		Find(&applications).Error

	return applications, err
}

func (s *Store) ListApplicationsByInternship(ctx context.Context, internshipID uint) ([]models.Application, error) {
	var applications []models.Application

	err := s.conn(ctx).
		Preload("StudentProfile.Resume", resumeMeta).
		Where("internship_id = ?", internshipID).
		Order("applied_at DESC, id DESC").
		Find(&applications).Error

	return applications, err
}

func (s *Store) CountApplications(ctx context.Context) (int64, error) {
	var count int64

	err := s.conn(ctx).Model(&models.Application{}).Count(&count).Error

	return count, err
}
