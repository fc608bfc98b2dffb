package service

import (
	"context"
	"errors"
	"strings"

	"github.com/signlearn/signbridge/internal/dto"
	"github.com/signlearn/signbridge/internal/errs"
	"github.com/signlearn/signbridge/internal/model"
	"github.com/signlearn/signbridge/internal/repository"
	"gorm.io/gorm"
)

type SignService interface {
	Lookup(ctx context.Context, word string, language model.Language) (*dto.SignResponse, error)
}

type signService struct {
	signRepo repository.SignRepository
}

func NewSignService(signRepo repository.SignRepository) SignService {
	return &signService{signRepo: signRepo}
}

func (s *signService) Lookup(ctx context.Context, word string, language model.Language) (*dto.SignResponse, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil, errs.Validation("word must not be empty")
	}
	if !language.Valid() {
		return nil, errs.Validation("unsupported language %q", language)
	}

	sign, err := s.signRepo.FindByWordAndLanguage(ctx, word, language)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("no sign found for %q in %s", word, language)
		}
		return nil, err
	}

	return &dto.SignResponse{
		Word:     sign.Word,
		Language: string(sign.Language),
		ImageURL: sign.ImageURL,
	}, nil
}
