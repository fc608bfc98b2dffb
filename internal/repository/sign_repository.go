package repository

import (
	"context"

	"github.com/signlearn/signbridge/internal/model"
	"gorm.io/gorm"
)

type SignRepository interface {
	FindByWordAndLanguage(ctx context.Context, word string, language model.Language) (*model.Sign, error)
}

type signRepository struct {
	db *gorm.DB
}

func NewSignRepository(db *gorm.DB) SignRepository {
	return &signRepository{db: db}
}

func (r *signRepository) FindByWordAndLanguage(ctx context.Context, word string, language model.Language) (*model.Sign, error) {
	var sign model.Sign
	err := r.db.WithContext(ctx).
		Where("LOWER(word) = LOWER(?) AND language = ?", word, language).
		First(&sign).Error
	if err != nil {
		return nil, err
	}
	return &sign, nil
}
