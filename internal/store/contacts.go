package store

import (
	"context"
	"fmt"

	"github.com/innovate-connect/innovate/internal/models"
)

func (s *Store) CreateContactMessage(ctx context.Context, message *models.ContactMessage) error {
	if err := s.conn(ctx).Create(message).Error; err != nil {
		return fmt.Errorf("creating contact message: %w", err)
	}
	return nil
}

func (s *Store) ListContactMessages(ctx context.Context) ([]models.ContactMessage, error) {
	var messages []models.ContactMessage

	err := s.conn(ctx).Order("created_at DESC, id DESC").Find(&messages).Error

	return messages, err
}

func (s *Store) DeleteContactMessage(ctx context.Context, id uint) error {
	result := s.conn(ctx).Delete(&models.ContactMessage{}, id)

	if result.Error != nil {
		return fmt.Errorf("deleting contact message: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrContactNotFound
	}

	return nil
}

// ToggleContactReviewed flips the reviewed flag and returns the new value.
func (s *Store) ToggleContactReviewed(ctx context.Context, id uint) (bool, error) {
	var reviewed bool

	err := s.Transaction(ctx, func(tx *Store) error {
		var message models.ContactMessage

		if err := tx.conn(ctx).First(&message, id).Error; err != nil {
			return notFound(err, ErrContactNotFound)
		}

		reviewed = !message.Reviewed

		return tx.conn(ctx).Model(&message).Update("reviewed", reviewed).Error
	})

	return reviewed, err
}
