package service

import (
	"testing"
	"time"

	"github.com/signlearn/signbridge/internal/errs"
	"github.com/signlearn/signbridge/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeChallenges(n int) []model.DailyChallenge {
	challenges := make([]model.DailyChallenge, n)
	for i := range challenges {
		challenges[i] = model.DailyChallenge{
			ID:         uint(i + 1),
			Language:   model.LanguageASL,
			Text:       "challenge",
			Difficulty: model.DifficultyEasy,
			Active:     true,
		}
	}
	return challenges
}

func TestSelectTodayModularIndex(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
	daysSinceEpoch := now.Unix() / 86400

	for _, length := range []int{1, 2, 5, 7, 31} {
		challenges := makeChallenges(length)
		got, err := SelectToday(challenges, now)
		require.NoError(t, err)
		want := challenges[daysSinceEpoch%int64(length)]
		assert.Equal(t, want.ID, got.ID, "length %d", length)
	}
}

func TestSelectTodayStableWithinDay(t *testing.T) {
	challenges := makeChallenges(7)
	dayStart := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	first, err := SelectToday(challenges, dayStart)
	require.NoError(t, err)

	for _, offset := range []time.Duration{
		time.Second,
		6 * time.Hour,
		12*time.Hour + 31*time.Minute,
		24*time.Hour - time.Second,
	} {
		got, err := SelectToday(challenges, dayStart.Add(offset))
		require.NoError(t, err)
		assert.Equal(t, first.ID, got.ID, "offset %s", offset)
	}

	// The next UTC day moves to the next challenge in order.
	next, err := SelectToday(challenges, dayStart.Add(24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, (first.ID%7)+1, next.ID)
}

func TestSelectTodayEmptyList(t *testing.T) {
	_, err := SelectToday(nil, time.Now())
	require.Error(t, err)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
}

func TestTodayChallengeInvalidLanguage(t *testing.T) {
	svc := NewChallengeService(nil)
	_, err := svc.TodayChallenge(t.Context(), model.Language("FRA"), time.Now())
	require.Error(t, err)
	assert.Equal(t, errs.KindValidation, errs.KindOf(err))
}
