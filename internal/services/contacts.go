package services

import (
	"context"
	"strings"

	"github.com/innovate-connect/innovate/internal/errs"
	"github.com/innovate-connect/innovate/internal/models"
	"github.com/innovate-connect/innovate/internal/store"
)

type ContactInput struct {
	Name    string
	Email   string
	Message string
}

type ContactService struct {
	store *store.Store
}

func NewContactService(st *store.Store) *ContactService {
	return &ContactService{store: st}
}

func (s *ContactService) Submit(ctx context.Context, in ContactInput) (*models.ContactMessage, error) {
	email := NormalizeEmail(in.Email)

	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Message) == "" {
		return nil, errs.NewValidation("Name and message are required")
	}

	if err := validateEmail(email); err != nil {
		return nil, err
	}

	message := &models.ContactMessage{
		Name:    strings.TrimSpace(in.Name),
		Email:   email,
		Message: strings.TrimSpace(in.Message),
	}

	if err := s.store.CreateContactMessage(ctx, message); err != nil {
		return nil, err
	}

	return message, nil
}

func (s *ContactService) List(ctx context.Context) ([]models.ContactMessage, error) {
	return s.store.ListContactMessages(ctx)
}

func (s *ContactService) Delete(ctx context.Context, id uint) error {
	return s.store.DeleteContactMessage(ctx, id)
}

func (s *ContactService) ToggleReviewed(ctx context.Context, id uint) (bool, error) {
	return s.store.ToggleContactReviewed(ctx, id)
}
