package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/innovate-connect/innovate/internal/access"
	"github.com/innovate-connect/innovate/internal/errs"
	"github.com/innovate-connect/innovate/internal/models"
	"github.com/innovate-connect/innovate/internal/store"
)

type InternshipInput struct {
	Title       string
	Description string
	Technology  string
	Stipend     float64
}

func (in InternshipInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return errs.NewValidation("Title is required")
	}

	if in.Stipend < 0 {
		return errs.NewValidation("Stipend cannot be negative")
	}

	return nil
}

type InternshipService struct {
	store  *store.Store
	logger *slog.Logger
	now    func() time.Time
}

func NewInternshipService(st *store.Store, logger *slog.Logger) *InternshipService {
	return &InternshipService{store: st, logger: logger, now: time.Now}
}

func (s *InternshipService) List(ctx context.Context) ([]models.Internship, error) {
	return s.store.ListInternships(ctx)
}

func (s *InternshipService) ListByCompany(ctx context.Context, companyProfileID uint) ([]models.Internship, error) {
	return s.store.ListInternshipsByCompany(ctx, companyProfileID)
}

// Create posts an internship owned by the caller's company profile.
func (s *InternshipService) Create(ctx context.Context, companyProfileID uint, in InternshipInput) (*models.Internship, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	internship := &models.Internship{
		CompanyProfileID: companyProfileID,
		Title:            strings.TrimSpace(in.Title),
		Description:      strings.TrimSpace(in.Description),
		Technology:       strings.TrimSpace(in.Technology),
		Stipend:          in.Stipend,
		PostedAt:         s.now(),
	}

	if err := s.store.CreateInternship(ctx, internship); err != nil {
		return nil, err
	}

	s.logger.Info("internship posted", "internship_id", internship.ID, "company_profile_id", companyProfileID)

	return internship, nil
}

func (s *InternshipService) Update(ctx context.Context, id, callerCompanyProfileID uint, in InternshipInput) (*models.Internship, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	internship, err := s.owned(ctx, id, callerCompanyProfileID)

	if err != nil {
		return nil, err
	}

	internship.Title = strings.TrimSpace(in.Title)
	internship.Description = strings.TrimSpace(in.Description)
	internship.Technology = strings.TrimSpace(in.Technology)
	internship.Stipend = in.Stipend

	if err := s.store.UpdateInternship(ctx, internship); err != nil {
		return nil, err
	}

	return internship, nil
}

func (s *InternshipService) Delete(ctx context.Context, id, callerCompanyProfileID uint) error {
	if _, err := s.owned(ctx, id, callerCompanyProfileID); err != nil {
		return err
	}

	return s.store.DeleteInternship(ctx, id)
}

// AdminDelete removes any internship regardless of owner.
func (s *InternshipService) AdminDelete(ctx context.Context, id uint) error {
	return s.store.DeleteInternship(ctx, id)
}

func (s *InternshipService) owned(ctx context.Context, id, callerCompanyProfileID uint) (*models.Internship, error) {
	internship, err := s.store.FindInternship(ctx, id)

	if err != nil {
		return nil, err
	}

	if err := access.RequireOwner(internship.CompanyProfileID, callerCompanyProfileID); err != nil {
		return nil, err
	}

	return internship, nil
}
