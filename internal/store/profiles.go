package store

import (
	"context"
	"fmt"

	"github.com/innovate-connect/innovate/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// resumeMeta loads a resume without its blob.
func resumeMeta(db *gorm.DB) *gorm.DB {
	return db.Select("id", "student_profile_id", "file_name", "content_type", "created_at", "updated_at")
}

func (s *Store) CreateStudentProfile(ctx context.Context, profile *models.StudentProfile) error {
	if err := s.conn(ctx).Omit(clause.Associations).Create(profile).Error; err != nil {
		return fmt.Errorf("creating student profile: %w", err)
	}
	return nil
}

func (s *Store) CreateCompanyProfile(ctx context.Context, profile *models.CompanyProfile) error {
	if err := s.conn(ctx).Omit(clause.Associations).Create(profile).Error; err != nil {
		return fmt.Errorf("creating company profile: %w", err)
	}
	return nil
}

func (s *Store) StudentProfileByAccount(ctx context.Context, accountID uint) (*models.StudentProfile, error) {
	var profile models.StudentProfile

	err := s.conn(ctx).
		Preload("Resume", resumeMeta).
		Where("account_id = ?", accountID).
		First(&profile).Error

	if err != nil {
		return nil, notFound(err, ErrStudentProfileNotFound)
	}

	return &profile, nil
}

func (s *Store) StudentProfileByID(ctx context.Context, id uint) (*models.StudentProfile, error) {
	var profile models.StudentProfile

	err := s.conn(ctx).
		Preload("Account").
		Preload("Resume", resumeMeta).
		First(&profile, id).Error

	if err != nil {
		return nil, notFound(err, ErrStudentProfileNotFound)
	}

	return &profile, nil
}

func (s *Store) CompanyProfileByAccount(ctx context.Context, accountID uint) (*models.CompanyProfile, error) {
	var profile models.CompanyProfile

	if err := s.conn(ctx).Where("account_id = ?", accountID).First(&profile).Error; err != nil {
		return nil, notFound(err, ErrCompanyProfileNotFound)
	}

	return &profile, nil
}

// StudentProfileIDByAccount and CompanyProfileIDByAccount back the
// authorization guard; they read a single column.
func (s *Store) StudentProfileIDByAccount(ctx context.Context, accountID uint) (uint, error) {
	var profile models.StudentProfile

	if err := s.conn(ctx).Select("id").Where("account_id = ?", accountID).First(&profile).Error; err != nil {
		return 0, notFound(err, ErrStudentProfileNotFound)
	}

	return profile.ID, nil
}

func (s *Store) CompanyProfileIDByAccount(ctx context.Context, accountID uint) (uint, error) {
	var profile models.CompanyProfile

	if err := s.conn(ctx).Select("id").Where("account_id = ?", accountID).First(&profile).Error; err != nil {
		return 0, notFound(err, ErrCompanyProfileNotFound)
	}

	return profile.ID, nil
}

func (s *Store) UpdateStudentProfile(ctx context.Context, profile *models.StudentProfile) error {
	err := s.conn(ctx).Model(profile).
		Select("full_name", "university", "github_link", "leetcode_link", "bio", "location", "skills").
		Updates(profile).Error

	if err != nil {
		return fmt.Errorf("updating student profile: %w", err)
	}

	return nil
}

func (s *Store) UpdateCompanyProfile(ctx context.Context, profile *models.CompanyProfile) error {
	err := s.conn(ctx).Model(profile).
		Select("company_name", "location", "website").
		Updates(profile).Error

	if err != nil {
		return fmt.Errorf("updating company profile: %w", err)
	}

	return nil
}

// UpsertResume stores the resume for a student, replacing any previous one.
func (s *Store) UpsertResume(ctx context.Context, resume *models.StudentResume) error {
	err := s.conn(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "student_profile_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"file_name", "content_type", "data", "updated_at"}),
	}).Create(resume).Error

	if err != nil {
		return fmt.Errorf("saving resume: %w", err)
	}

	return nil
}

func (s *Store) FindResume(ctx context.Context, studentProfileID uint) (*models.StudentResume, error) {
	var resume models.StudentResume

	if err := s.conn(ctx).Where("student_profile_id = ?", studentProfileID).First(&resume).Error; err != nil {
		return nil, notFound(err, ErrResumeNotFound)
	}

	return &resume, nil
}

// ProfileNames maps account ids to the display name of their profile.
// Accounts without a profile (admins) are absent.
func (s *Store) ProfileNames(ctx context.Context) (map[uint]string, error) {
	type row struct {
		AccountID uint
		Name      string
	}

	var students, companies []row

	if err := s.conn(ctx).Model(&models.StudentProfile{}).Select("account_id", "full_name AS name").Scan(&students).Error; err != nil {
		return nil, err
	}

	if err := s.conn(ctx).Model(&models.CompanyProfile{}).Select("account_id", "company_name AS name").Scan(&companies).Error; err != nil {
		return nil, err
	}

	names := make(map[uint]string, len(students)+len(companies))

	for _, r := range students {
		names[r.AccountID] = r.Name
	}

	for _, r := range companies {
		names[r.AccountID] = r.Name
	}

	return names, nil
}
