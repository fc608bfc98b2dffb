package repository

import (
	"context"

	"github.com/signlearn/signbridge/internal/model"
	"gorm.io/gorm"
)

type TestRepository interface {
	FindByIDWithQuestions(ctx context.Context, id uint) (*model.ProficiencyTest, error)
	FindAllByLanguage(ctx context.Context, language model.Language) ([]model.ProficiencyTest, error)
}

type testRepository struct {
	db *gorm.DB
}

func NewTestRepository(db *gorm.DB) TestRepository {
	return &testRepository{db: db}
}

func (r *testRepository) FindByIDWithQuestions(ctx context.Context, id uint) (*model.ProficiencyTest, error) {
	var test model.ProficiencyTest
	err := r.db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.order_in_test ASC")
		}).
		Preload("Questions.Choices").
		First(&test, id).Error
	if err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *testRepository) FindAllByLanguage(ctx context.Context, language model.Language) ([]model.ProficiencyTest, error) {
	var tests []model.ProficiencyTest
	err := r.db.WithContext(ctx).
		Where("language = ?", language).
		Order("created_at DESC").
		Find(&tests).Error
	return tests, err
}
