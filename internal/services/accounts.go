package services

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/innovate-connect/innovate/internal/auth"
	"github.com/innovate-connect/innovate/internal/errs"
	"github.com/innovate-connect/innovate/internal/models"
	"github.com/innovate-connect/innovate/internal/store"
	"github.com/innovate-connect/innovate/internal/types"
)

const minPasswordLength = 8

var (
	ErrInvalidCredentials = errs.NewUnauthorized("Invalid email or password")
	ErrAccountGone        = errs.NewUnauthorized("User not found")
	ErrAdminProtected     = errs.NewForbidden("Cannot delete admin")
)

// RoleProfile is the role-specific half of a registration. Only StudentFields
// and CompanyFields implement it, so a registration always names exactly one
// profile shape.
type RoleProfile interface {
	Role() types.Role
	displayName() string
}

type StudentFields struct {
	FullName     string
	University   string
	GitHubLink   string
	LeetCodeLink string
	Bio          string
	Location     string
	Skills       []string
}

func (StudentFields) Role() types.Role { return types.RoleStudent }

func (f StudentFields) displayName() string { return orDefault(f.FullName, "Student") }

type CompanyFields struct {
	CompanyName string
	Location    string
	Website     string
}

func (CompanyFields) Role() types.Role { return types.RoleCompany }

func (f CompanyFields) displayName() string { return orDefault(f.CompanyName, "Company") }

type Registration struct {
	Email    string
	Password string
	Profile  RoleProfile
}

type Session struct {
	Token   string                `json:"token"`
	Account types.AccountResponse `json:"user"`
}

type AccountService struct {
	store  *store.Store
	tokens *auth.TokenIssuer
	notify Notifications
	logger *slog.Logger
}

func NewAccountService(st *store.Store, tokens *auth.TokenIssuer, notify Notifications, logger *slog.Logger) *AccountService {
	return &AccountService{store: st, tokens: tokens, notify: notify, logger: logger}
}

// Register creates the account and its role profile in one transaction and
// then sends a welcome email on a best-effort basis.
func (s *AccountService) Register(ctx context.Context, reg Registration) (uint, error) {
	email := NormalizeEmail(reg.Email)

	if err := validateEmail(email); err != nil {
		return 0, err
	}

	if len(reg.Password) < minPasswordLength {
		return 0, errs.NewValidation("Password must be at least 8 characters")
	}

	if len(reg.Password) > auth.MaxPasswordBytes {
		return 0, auth.ErrPasswordTooLong
	}

	if reg.Profile == nil {
		return 0, errs.NewValidation("Role must be Student or Company")
	}

	hash, err := auth.HashPassword(reg.Password)

	if err != nil {
		return 0, err
	}

	var accountID uint

	err = s.store.Transaction(ctx, func(tx *store.Store) error {
		exists, err := tx.EmailExists(ctx, email)

		if err != nil {
			return err
		}

		if exists {
			return store.ErrDuplicateEmail
		}

		accountID, err = tx.CreateAccount(ctx, email, hash, reg.Profile.Role())

		if err != nil {
			return err
		}

		switch p := reg.Profile.(type) {
		case StudentFields:
			profile := &models.StudentProfile{
				AccountID:    accountID,
				FullName:     orDefault(p.FullName, "Unknown"),
				University:   strings.TrimSpace(p.University),
				GitHubLink:   strings.TrimSpace(p.GitHubLink),
				LeetCodeLink: strings.TrimSpace(p.LeetCodeLink),
				Bio:          strings.TrimSpace(p.Bio),
				Location:     strings.TrimSpace(p.Location),
			}
			profile.SetSkills(cleanSkills(p.Skills))

			return tx.CreateStudentProfile(ctx, profile)

		case CompanyFields:
			return tx.CreateCompanyProfile(ctx, &models.CompanyProfile{
				AccountID:   accountID,
				CompanyName: orDefault(p.CompanyName, "Unknown"),
				Location:    orDefault(p.Location, "Unknown"),
				Website:     strings.TrimSpace(p.Website),
			})

		default:
			return errs.NewValidation("Role must be Student or Company")
		}
	})

	if err != nil {
		return 0, err
	}

	s.logger.Info("account registered", "account_id", accountID, "role", reg.Profile.Role())

	body, err := render("welcome.html", welcomeData{
		Name: reg.Profile.displayName(),
		Role: string(reg.Profile.Role()),
	})

	if err != nil {
		s.logger.Error("rendering welcome email", "error", err)
		return accountID, nil
	}

	s.notify.Deliver(ctx, Message{To: email, Subject: welcomeSubject, HTMLBody: body})

	return accountID, nil
}

// Login fails with the same error for an unknown email and a wrong password.
func (s *AccountService) Login(ctx context.Context, email, password string) (*Session, error) {
	account, err := s.store.FindAccountByEmail(ctx, NormalizeEmail(email))

	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.VerifyPassword(password, account.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(account.ID, account.Email, account.Role)

	if err != nil {
		return nil, err
	}

	summary, err := s.summarize(ctx, account)

	if err != nil {
		return nil, err
	}

	return &Session{Token: token, Account: *summary}, nil
}

// Summary describes a still-existing account for an authenticated caller.
func (s *AccountService) Summary(ctx context.Context, accountID uint) (*types.AccountResponse, error) {
	account, err := s.store.FindAccountByID(ctx, accountID)

	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return nil, ErrAccountGone
		}
		return nil, err
	}

	return s.summarize(ctx, account)
}

func (s *AccountService) summarize(ctx context.Context, account *models.Account) (*types.AccountResponse, error) {
	name := account.Email

	switch account.Role {
	case types.RoleStudent:
		profile, err := s.store.StudentProfileByAccount(ctx, account.ID)
		if err == nil {
			name = profile.FullName
		} else if !errors.Is(err, store.ErrStudentProfileNotFound) {
			return nil, err
		}

	case types.RoleCompany:
		profile, err := s.store.CompanyProfileByAccount(ctx, account.ID)
		if err == nil {
			name = profile.CompanyName
		} else if !errors.Is(err, store.ErrCompanyProfileNotFound) {
			return nil, err
		}
	}

	return &types.AccountResponse{
		ID:    account.ID,
		Email: account.Email,
		Role:  account.Role,
		Name:  name,
	}, nil
}

// DeleteAccount removes a non-admin account and everything that depends on
// it in a single transaction.
func (s *AccountService) DeleteAccount(ctx context.Context, id uint) error {
	err := s.store.Transaction(ctx, func(tx *store.Store) error {
		account, err := tx.FindAccountByID(ctx, id)

		if err != nil {
			return err
		}

		if account.Role == types.RoleAdmin {
			return ErrAdminProtected
		}

		return tx.DeleteAccountCascade(ctx, id)
	})

	if err != nil {
		return err
	}

	s.logger.Info("account deleted", "account_id", id)

	return nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmail(email string) error {
	if email == "" {
		return errs.NewValidation("Email is required")
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return errs.NewValidation("Invalid email address")
	}

	return nil
}

func orDefault(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}

func cleanSkills(skills []string) []string {
	cleaned := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))

	for _, skill := range skills {
		skill = strings.TrimSpace(skill)
		if skill == "" {
			continue
		}

		key := strings.ToLower(skill)
		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}
		cleaned = append(cleaned, skill)
	}

	return cleaned
}
