package service

import (
	"context"
	"errors"
	"math"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/signlearn/signbridge/config"
	"github.com/signlearn/signbridge/internal/dto"
	"github.com/signlearn/signbridge/internal/errs"
	"github.com/signlearn/signbridge/internal/model"
	"github.com/signlearn/signbridge/internal/repository"
	"gorm.io/gorm"
)

const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

type ScoringService interface {
	GetTest(ctx context.Context, testID uint) (*dto.TestResponse, error)
	SubmitTest(ctx context.Context, userID, testID uint, req dto.SubmitTestRequest) (*dto.TestResultResponse, error)
	TestPrompt(ctx context.Context, userID uint) (*dto.TestPromptResponse, error)
	DismissTestPrompt(ctx context.Context, userID uint) error
}

type scoringService struct {
	testRepo repository.TestRepository
	userRepo repository.UserRepository
	cfg      config.Scoring
}

func NewScoringService(testRepo repository.TestRepository, userRepo repository.UserRepository, cfg *config.Config) ScoringService {
	return &scoringService{testRepo: testRepo, userRepo: userRepo, cfg: cfg.Scoring}
}

// Score grades a submission against a test definition. A question
// counts as correct only when the submitted choice set equals the
// marked-correct set exactly; there is no partial credit, and a
// superset or subset submission scores the question as incorrect.
// Pure: persistence of the result belongs to the caller.
func Score(test *model.ProficiencyTest, answers []dto.QuestionAnswer) (int, error) {
	if len(test.Questions) == 0 {
		return 0, errs.Validation("test %d has no questions", test.ID)
	}

	submitted := make(map[uint]map[uint]bool, len(answers))
	for _, answer := range answers {
		set := make(map[uint]bool, len(answer.ChoiceIDs))
		for _, choiceID := range answer.ChoiceIDs {
			set[choiceID] = true
		}
		submitted[answer.QuestionID] = set
	}

	correctCount := 0
	for _, question := range test.Questions {
		chosen := submitted[question.ID]
		if exactMatch(question.Choices, chosen) {
			correctCount++
		}
	}

	return int(math.Round(100 * float64(correctCount) / float64(len(test.Questions)))), nil
}

// exactMatch reports whether chosen is exactly the set of correct
// choices for the question.
func exactMatch(choices []model.Choice, chosen map[uint]bool) bool {
	if len(chosen) == 0 {
		return false
	}
	correctTotal := 0
	for _, choice := range choices {
		if choice.Correct {
			correctTotal++
			if !chosen[choice.ID] {
				return false
			}
		} else if chosen[choice.ID] {
			return false
		}
	}
	return correctTotal > 0 && len(chosen) == correctTotal
}

// LevelFor maps a percentage onto a proficiency tier using the ordered
// boundaries from configuration.
func LevelFor(percentage int, cfg config.Scoring) string {
	switch {
	case percentage >= cfg.AdvancedMin:
		return LevelAdvanced
	case percentage >= cfg.IntermediateMin:
		return LevelIntermediate
	default:
		return LevelBeginner
	}
}

// ShouldPromptTest decides whether to show the one-time proficiency
// test prompt: the user has no stored level, is not an administrator,
// and has not dismissed the prompt before. Dismissal sets the marker;
// completing a test does not.
func ShouldPromptTest(user *model.User) bool {
	return user.ProficiencyLevel == nil && !user.IsAdmin() && !user.TestPromptShown
}

func (s *scoringService) GetTest(ctx context.Context, testID uint) (*dto.TestResponse, error) {
	test, err := s.testRepo.FindByIDWithQuestions(ctx, testID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("test %d not found", testID)
		}
		return nil, err
	}

	resp := dto.TestResponse{
		ID:          test.ID,
		Title:       test.Title,
		Description: test.Description,
		Language:    string(test.Language),
	}
	for _, question := range test.Questions {
		qr := dto.QuestionResponse{
			ID:          question.ID,
			Prompt:      question.Prompt,
			OrderInTest: question.OrderInTest,
		}
		// Correct flags are stripped here; only id and text go out.
		for _, choice := range question.Choices {
			var cr dto.ChoiceResponse
			if err := copier.Copy(&cr, &choice); err != nil {
				return nil, err
			}
			qr.Choices = append(qr.Choices, cr)
		}
		resp.Questions = append(resp.Questions, qr)
	}
	return &resp, nil
}

func (s *scoringService) SubmitTest(ctx context.Context, userID, testID uint, req dto.SubmitTestRequest) (*dto.TestResultResponse, error) {
	test, err := s.testRepo.FindByIDWithQuestions(ctx, testID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("test %d not found", testID)
		}
		return nil, err
	}

	percentage, err := Score(test, req.Answers)
	if err != nil {
		return nil, err
	}
	level := LevelFor(percentage, s.cfg)

	if err := s.userRepo.SetProficiencyLevel(ctx, userID, level); err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Failed to persist proficiency level")
		return nil, err
	}

	log.Info().Uint("userID", userID).Uint("testID", testID).Int("percentage", percentage).Str("level", level).Msg("Proficiency test scored")
	return &dto.TestResultResponse{Percentage: percentage, Level: level}, nil
}

func (s *scoringService) TestPrompt(ctx context.Context, userID uint) (*dto.TestPromptResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("user %d not found", userID)
		}
		return nil, err
	}
	return &dto.TestPromptResponse{ShouldPrompt: ShouldPromptTest(user)}, nil
}

func (s *scoringService) DismissTestPrompt(ctx context.Context, userID uint) error {
	return s.userRepo.MarkTestPromptShown(ctx, userID)
}
