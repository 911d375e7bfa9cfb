package store

import (
	"context"
	"fmt"

	"github.com/innovate-connect/innovate/internal/models"
	"github.com/innovate-connect/innovate/internal/types"
)

// CreateAccount inserts a new account. The email must already be normalised.
// A concurrent insert of the same email loses on the unique index and gets
// ErrDuplicateEmail.
func (s *Store) CreateAccount(ctx context.Context, email, passwordHash string, role types.Role) (uint, error) {
	account := models.Account{
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
	}

	if err := s.conn(ctx).Create(&account).Error; err != nil {
		if isDuplicate(err) {
			return 0, ErrDuplicateEmail
		}
		return 0, fmt.Errorf("creating account: %w", err)
	}

	return account.ID, nil
}

func (s *Store) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64

	if err := s.conn(ctx).Model(&models.Account{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (s *Store) FindAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	var account models.Account

	if err := s.conn(ctx).Where("email = ?", email).First(&account).Error; err != nil {
		return nil, notFound(err, ErrAccountNotFound)
	}

	return &account, nil
}

func (s *Store) FindAccountByID(ctx context.Context, id uint) (*models.Account, error) {
	var account models.Account

	if err := s.conn(ctx).First(&account, id).Error; err != nil {
		return nil, notFound(err, ErrAccountNotFound)
	}

	return &account, nil
}

func (s *Store) ListAccounts(ctx context.Context) ([]models.Account, error) {
	var accounts []models.Account

	if err := s.conn(ctx).Order("created_at DESC, id DESC").Find(&accounts).Error; err != nil {
		return nil, err
	}

	return accounts, nil
}

func (s *Store) CountAccountsByRole(ctx context.Context, role types.Role) (int64, error) {
	var count int64

	err := s.conn(ctx).Model(&models.Account{}).Where("role = ?", role).Count(&count).Error

	return count, err
}

// DeleteAccountCascade removes an account together with its profile and
// everything that exists only in reference to that profile. All deletes run
// in one transaction (a savepoint when s is already transactional).
//
// Student: applications, ideas, resume, profile.
// Company: applications to its internships, internships, profile.
func (s *Store) DeleteAccountCascade(ctx context.Context, id uint) error {
	return s.Transaction(ctx, func(tx *Store) error {
		account, err := tx.FindAccountByID(ctx, id)

		if err != nil {
			return err
		}

		db := tx.conn(ctx)

		switch account.Role {
		case types.RoleStudent:
			var profiles []models.StudentProfile

			if err := db.Where("account_id = ?", id).Find(&profiles).Error; err != nil {
				return err
			}

			for _, profile := range profiles {
				if err := db.Where("student_profile_id = ?", profile.ID).Delete(&models.Application{}).Error; err != nil {
					return fmt.Errorf("deleting applications: %w", err)
				}

				if err := db.Where("student_profile_id = ?", profile.ID).Delete(&models.Idea{}).Error; err != nil {
					return fmt.Errorf("deleting ideas: %w", err)
				}

				if err := db.Where("student_profile_id = ?", profile.ID).Delete(&models.StudentResume{}).Error; err != nil {
					return fmt.Errorf("deleting resume: %w", err)
				}

				if err := db.Delete(&models.StudentProfile{}, profile.ID).Error; err != nil {
					return fmt.Errorf("deleting student profile: %w", err)
				}
			}

		case types.RoleCompany:
			var profiles []models.CompanyProfile

			if err := db.Where("account_id = ?", id).Find(&profiles).Error; err != nil {
				return err
			}

			for _, profile := range profiles {
				internships := db.Model(&models.Internship{}).Select("id").Where("company_profile_id = ?", profile.ID)

				if err := db.Where("internship_id IN (?)", internships).Delete(&models.Application{}).Error; err != nil {
					return fmt.Errorf("deleting applications: %w", err)
				}

				if err := db.Where("company_profile_id = ?", profile.ID).Delete(&models.Internship{}).Error; err != nil {
					return fmt.Errorf("deleting internships: %w", err)
				}

				if err := db.Delete(&models.CompanyProfile{}, profile.ID).Error; err != nil {
					return fmt.Errorf("deleting company profile: %w", err)
				}
			}
		}

		if err := db.Delete(&models.Account{}, id).Error; err != nil {
			return fmt.Errorf("deleting account: %w", err)
		}

		return nil
	})
}
