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

type IdeaInput struct {
	Title       string
	Description string
	Technology  string
}

func (in IdeaInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return errs.NewValidation("Title is required")
	}

	if strings.TrimSpace(in.Description) == "" {
		return errs.NewValidation("Description is required")
	}

	return nil
}

type IdeaService struct {
	store  *store.Store
	logger *slog.Logger
	now    func() time.Time
}

func NewIdeaService(st *store.Store, logger *slog.Logger) *IdeaService {
	return &IdeaService{store: st, logger: logger, now: time.Now}
}

func (s *IdeaService) List(ctx context.Context) ([]models.Idea, error) {
	return s.store.ListIdeas(ctx)
}

func (s *IdeaService) ListByStudent(ctx context.Context, studentProfileID uint) ([]models.Idea, error) {
	return s.store.ListIdeasByStudent(ctx, studentProfileID)
}

func (s *IdeaService) Create(ctx context.Context, studentProfileID uint, in IdeaInput) (*models.Idea, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	idea := &models.Idea{
		StudentProfileID: studentProfileID,
		Title:            strings.TrimSpace(in.Title),
		Description:      strings.TrimSpace(in.Description),
		Technology:       strings.TrimSpace(in.Technology),
		PostedAt:         s.now(),
	}

	if err := s.store.CreateIdea(ctx, idea); err != nil {
		return nil, err
	}

	s.logger.Info("idea posted", "idea_id", idea.ID, "student_profile_id", studentProfileID)

	return idea, nil
}

func (s *IdeaService) Update(ctx context.Context, id, callerStudentProfileID uint, in IdeaInput) (*models.Idea, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	idea, err := s.owned(ctx, id, callerStudentProfileID)

	if err != nil {
		return nil, err
	}

	idea.Title = strings.TrimSpace(in.Title)
	idea.Description = strings.TrimSpace(in.Description)
	idea.Technology = strings.TrimSpace(in.Technology)

	if err := s.store.UpdateIdea(ctx, idea); err != nil {
		return nil, err
	}

	return idea, nil
}

func (s *IdeaService) Delete(ctx context.Context, id, callerStudentProfileID uint) error {
	if _, err := s.owned(ctx, id, callerStudentProfileID); err != nil {
		return err
	}

	return s.store.DeleteIdea(ctx, id)
}

func (s *IdeaService) AdminDelete(ctx context.Context, id uint) error {
	return s.store.DeleteIdea(ctx, id)
}

func (s *IdeaService) owned(ctx context.Context, id, callerStudentProfileID uint) (*models.Idea, error) {
	idea, err := s.store.FindIdea(ctx, id)

	if err != nil {
		return nil, err
	}

	if err := access.RequireOwner(idea.StudentProfileID, callerStudentProfileID); err != nil {
		return nil, err
	}

	return idea, nil
}
