package repository

import (
	"context"

	"github.com/signlearn/signbridge/internal/model"
	"gorm.io/gorm"
)

type ChallengeRepository interface {
	// FindActiveByLanguage returns the active challenges for a language
	// ordered ascending by id. The order is part of the contract: the
	// daily selector indexes into this list, so it must be a stable
	// total order, not whatever the database happens to return.
	FindActiveByLanguage(ctx context.Context, language model.Language) ([]model.DailyChallenge, error)
}

type challengeRepository struct {
	db *gorm.DB
}

func NewChallengeRepository(db *gorm.DB) ChallengeRepository {
	return &challengeRepository{db: db}
}

func (r *challengeRepository) FindActiveByLanguage(ctx context.Context, language model.Language) ([]model.DailyChallenge, error) {
	var challenges []model.DailyChallenge
	err := r.db.WithContext(ctx).
		Where("language = ? AND active = ?", language, true).
		Order("id ASC").
		Find(&challenges).Error
	return challenges, err
}
