package store

import (
	"context"
	"fmt"

	"github.com/innovate-connect/innovate/internal/models"
	"gorm.io/gorm/clause"
)

func (s *Store) ListIdeas(ctx context.Context) ([]models.Idea, error) {
	var ideas []models.Idea

	err := s.conn(ctx).
		Preload("StudentProfile.Account").
		Preload("StudentProfile.Resume", resumeMeta).
		Order("posted_at DESC, id DESC").
		Find(&ideas).Error

	return ideas, err
}

func (s *Store) ListIdeasByStudent(ctx context.Context, studentProfileID uint) ([]models.Idea, error) {
	var ideas []models.Idea

	err := s.conn(ctx).
		Where("student_profile_id = ?", studentProfileID).
		Order("posted_at DESC, id DESC").
		Find(&ideas).Error

	return ideas, err
}

func (s *Store) FindIdea(ctx context.Context, id uint) (*models.Idea, error) {
	var idea models.Idea

	if err := s.conn(ctx).First(&idea, id).Error; err != nil {
		return nil, notFound(err, ErrIdeaNotFound)
	}

	return &idea, nil
}

func (s *Store) CreateIdea(ctx context.Context, idea *models.Idea) error {
	if err := s.conn(ctx).Omit(clause.Associations).Create(idea).Error; err != nil {
		return fmt.Errorf("creating idea: %w", err)
	}
	return nil
}

func (s *Store) UpdateIdea(ctx context.Context, idea *models.Idea) error {
	err := s.conn(ctx).Model(idea).
		Select("title", "description", "technology").
		Updates(idea).Error

	if err != nil {
		return fmt.Errorf("updating idea: %w", err)
	}

	return nil
}

func (s *Store) DeleteIdea(ctx context.Context, id uint) error {
	result := s.conn(ctx).Delete(&models.Idea{}, id)

	if result.Error != nil {
		return fmt.Errorf("deleting idea: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrIdeaNotFound
	}

	return nil
}

func (s *Store) CountIdeas(ctx context.Context) (int64, error) {
	var count int64

	err := s.conn(ctx).Model(&models.Idea{}).Count(&count).Error

	return count, err
}
