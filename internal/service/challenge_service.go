package service

import (
	"context"
	"time"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/signlearn/signbridge/internal/dto"
	"github.com/signlearn/signbridge/internal/errs"
	"github.com/signlearn/signbridge/internal/model"
	"github.com/signlearn/signbridge/internal/repository"
)

type ChallengeService interface {
	TodayChallenge(ctx context.Context, language model.Language, now time.Time) (*dto.ChallengeResponse, error)
}

type challengeService struct {
	challengeRepo repository.ChallengeRepository
}

func NewChallengeService(challengeRepo repository.ChallengeRepository) ChallengeService {
	return &challengeService{challengeRepo: challengeRepo}
}

// SelectToday picks the challenge for the calendar day containing now.
// It is pure: every caller on the same UTC day with the same list gets
// the same challenge, with no scheduling state anywhere. The list must
// be in a stable total order (the repository returns it ascending by
// id). If the list length changes the day-to-challenge mapping shifts
// for all days, not just future ones; that is accepted behavior.
func SelectToday(challenges []model.DailyChallenge, now time.Time) (*model.DailyChallenge, error) {
	if len(challenges) == 0 {
		return nil, errs.NotFound("no active challenges")
	}
	daysSinceEpoch := now.Unix() / 86400
	index := daysSinceEpoch % int64(len(challenges))
	return &challenges[index], nil
}

func (s *challengeService) TodayChallenge(ctx context.Context, language model.Language, now time.Time) (*dto.ChallengeResponse, error) {
	if !language.Valid() {
		return nil, errs.Validation("unsupported language %q", language)
	}

	challenges, err := s.challengeRepo.FindActiveByLanguage(ctx, language)
	if err != nil {
		log.Error().Err(err).Str("language", string(language)).Msg("Failed to fetch active challenges")
		return nil, err
	}

	challenge, err := SelectToday(challenges, now)
	if err != nil {
		return nil, errs.NotFound("no active challenges for language %s", language)
	}

	var resp dto.ChallengeResponse
	if err := copier.Copy(&resp, challenge); err != nil {
		return nil, err
	}
	resp.Language = string(challenge.Language)
	resp.Difficulty = string(challenge.Difficulty)
	return &resp, nil
}
