package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/innovate-connect/innovate/internal/access"
	"github.com/innovate-connect/innovate/internal/errs"
	"github.com/innovate-connect/innovate/internal/models"
	"github.com/innovate-connect/innovate/internal/store"
	"github.com/innovate-connect/innovate/internal/types"
)

var ErrInvalidStatus = errs.NewValidation("Invalid status")

type ApplicationService struct {
	store  *store.Store
	notify Notifications
	logger *slog.Logger
	now    func() time.Time
}

func NewApplicationService(st *store.Store, notify Notifications, logger *slog.Logger) *ApplicationService {
	return &ApplicationService{store: st, notify: notify, logger: logger, now: time.Now}
}

func (s *ApplicationService) Apply(ctx context.Context, studentProfileID, internshipID uint) (*models.Application, error) {
	if _, err := s.store.FindInternship(ctx, internshipID); err != nil {
		return nil, err
	}

	application := &models.Application{
		InternshipID:     internshipID,
		StudentProfileID: studentProfileID,
		Status:           types.StatusApplied,
		AppliedAt:        s.now(),
	}

	if err := s.store.CreateApplication(ctx, application); err != nil {
		return nil, err
	}

	s.logger.Info("application submitted", "application_id", application.ID, "internship_id", internshipID)

	return application, nil
}

// UpdateStatus changes the status of an application to one of the caller's
// internships. Only the update that actually moves the application into
// Accepted emails the student.
func (s *ApplicationService) UpdateStatus(ctx context.Context, applicationID uint, status string, callerCompanyProfileID uint) (*models.Application, error) {
	next, ok := types.ParseApplicationStatus(status)
	if !ok {
		return nil, ErrInvalidStatus
	}

	application, err := s.store.FindApplication(ctx, applicationID)

	if err != nil {
		return nil, err
	}

	if err := access.RequireOwner(application.Internship.CompanyProfileID, callerCompanyProfileID); err != nil {
		return nil, err
	}

	changed, err := s.store.SetApplicationStatus(ctx, applicationID, next)

	if err != nil {
		return nil, err
	}

	application.Status = next

	if changed && next == types.StatusAccepted {
		s.sendAccepted(ctx, application)
	}

	return application, nil
}

func (s *ApplicationService) sendAccepted(ctx context.Context, application *models.Application) {
	to := application.StudentProfile.Account.Email
	if to == "" {
		return
	}

	body, err := render("accepted.html", acceptedData{
		StudentName: application.StudentProfile.FullName,
		CompanyName: application.Internship.Company.CompanyName,
		Title:       application.Internship.Title,
		Technology:  application.Internship.Technology,
		Stipend:     application.Internship.Stipend,
	})

	if err != nil {
		s.logger.Error("rendering acceptance email", "error", err)
		return
	}

	s.notify.Deliver(ctx, Message{To: to, Subject: acceptedSubject, HTMLBody: body})
}

func (s *ApplicationService) ListForStudent(ctx context.Context, studentProfileID uint) ([]models.Application, error) {
	return s.store.ListApplicationsByStudent(ctx, studentProfileID)
}

func (s *ApplicationService) ListForCompany(ctx context.Context, companyProfileID uint) ([]models.Application, error) {
	return s.store.ListApplicationsByCompany(ctx, companyProfileID)
}

// ListForInternship returns the applicants of one internship. Only the
// owning company may see them.
func (s *ApplicationService) ListForInternship(ctx context.Context, internshipID, callerCompanyProfileID uint) ([]models.Application, error) {
	internship, err := s.store.FindInternship(ctx, internshipID)

	if err != nil {
		return nil, err
	}

	if err := access.RequireOwner(internship.CompanyProfileID, callerCompanyProfileID); err != nil {
		return nil, err
	}

	return s.store.ListApplicationsByInternship(ctx, internshipID)
}
