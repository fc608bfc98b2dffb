package service

import (
	"testing"

	"github.com/signlearn/signbridge/config"
	"github.com/signlearn/signbridge/internal/dto"
	"github.com/signlearn/signbridge/internal/errs"
	"github.com/signlearn/signbridge/internal/model"
	"github.com/signlearn/signbridge/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// threeQuestionTest builds a test where question 1 has a single correct
// choice (id 11), question 2 has two correct choices (ids 21, 22), and
// question 3 has a single correct choice (id 31).
func threeQuestionTest() *model.ProficiencyTest {
	return &model.ProficiencyTest{
		ID: 1,
		Questions: []model.Question{
			{ID: 1, Choices: []model.Choice{
				{ID: 11, Correct: true},
				{ID: 12},
				{ID: 13},
			}},
			{ID: 2, Choices: []model.Choice{
				{ID: 21, Correct: true},
				{ID: 22, Correct: true},
				{ID: 23},
			}},
			{ID: 3, Choices: []model.Choice{
				{ID: 31, Correct: true},
				{ID: 32},
			}},
		},
	}
}

func TestScoreAllCorrect(t *testing.T) {
	got, err := Score(threeQuestionTest(), []dto.QuestionAnswer{
		{QuestionID: 1, ChoiceIDs: []uint{11}},
		{QuestionID: 2, ChoiceIDs: []uint{21, 22}},
		{QuestionID: 3, ChoiceIDs: []uint{31}},
	})
	require.NoError(t, err)
	assert.Equal(t, 100, got)
}

func TestScoreAllWrong(t *testing.T) {
	got, err := Score(threeQuestionTest(), []dto.QuestionAnswer{
		{QuestionID: 1, ChoiceIDs: []uint{12}},
		{QuestionID: 2, ChoiceIDs: []uint{23}},
		{QuestionID: 3, ChoiceIDs: []uint{32}},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestScoreExactSetEquality(t *testing.T) {
	tests := []struct {
		name    string
		answers []dto.QuestionAnswer
		want    int
	}{
		{
			name: "subset of correct choices scores zero for the question",
			answers: []dto.QuestionAnswer{
				{QuestionID: 2, ChoiceIDs: []uint{21}},
			},
			want: 0,
		},
		{
			name: "superset of correct choices scores zero for the question",
			answers: []dto.QuestionAnswer{
				{QuestionID: 2, ChoiceIDs: []uint{21, 22, 23}},
			},
			want: 0,
		},
		{
			name: "unanswered questions count as incorrect",
			answers: []dto.QuestionAnswer{
				{QuestionID: 1, ChoiceIDs: []uint{11}},
			},
			want: 33, // round(100 * 1/3)
		},
		{
			name: "two of three correct rounds up",
			answers: []dto.QuestionAnswer{
				{QuestionID: 1, ChoiceIDs: []uint{11}},
				{QuestionID: 2, ChoiceIDs: []uint{21, 22}},
			},
			want: 67, // round(100 * 2/3)
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Score(threeQuestionTest(), tt.answers)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScoreZeroQuestions(t *testing.T) {
	_, err := Score(&model.ProficiencyTest{ID: 9}, nil)
	require.Error(t, err)
	assert.Equal(t, errs.KindValidation, errs.KindOf(err))
}

func TestLevelFor(t *testing.T) {
	cfg := config.Scoring{IntermediateMin: 50, AdvancedMin: 80}

	tests := []struct {
		percentage int
		want       string
	}{
		{0, LevelBeginner},
		{49, LevelBeginner},
		{50, LevelIntermediate},
		{79, LevelIntermediate},
		{80, LevelAdvanced},
		{100, LevelAdvanced},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelFor(tt.percentage, cfg), "percentage %d", tt.percentage)
	}
}

func TestShouldPromptTest(t *testing.T) {
	level := LevelBeginner

	tests := []struct {
		name string
		user model.User
		want bool
	}{
		{"new regular user", model.User{Role: model.RoleUser}, true},
		{"user with stored level", model.User{Role: model.RoleUser, ProficiencyLevel: &level}, false},
		{"admin", model.User{Role: model.RoleAdmin}, false},
		{"already dismissed", model.User{Role: model.RoleUser, TestPromptShown: true}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldPromptTest(&tt.user))
		})
	}
}

func TestSubmitTestPersistsLevel(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "learner@example.com", model.RoleUser)

	test := &model.ProficiencyTest{
		Title:    "ASL placement",
		Language: model.LanguageASL,
		Questions: []model.Question{
			{Prompt: "q1", OrderInTest: 1, Choices: []model.Choice{
				{Text: "right", Correct: true},
				{Text: "wrong"},
			}},
			{Prompt: "q2", OrderInTest: 2, Choices: []model.Choice{
				{Text: "right", Correct: true},
				{Text: "wrong"},
			}},
		},
	}
	require.NoError(t, db.Create(test).Error)

	svc := NewScoringService(
		repository.NewTestRepository(db),
		repository.NewUserRepository(db),
		&config.Config{Scoring: config.Scoring{IntermediateMin: 50, AdvancedMin: 80}},
	)

	result, err := svc.SubmitTest(t.Context(), user.ID, test.ID, dto.SubmitTestRequest{
		Answers: []dto.QuestionAnswer{
			{QuestionID: test.Questions[0].ID, ChoiceIDs: []uint{test.Questions[0].Choices[0].ID}},
			{QuestionID: test.Questions[1].ID, ChoiceIDs: []uint{test.Questions[1].Choices[1].ID}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 50, result.Percentage)
	assert.Equal(t, LevelIntermediate, result.Level)

	var stored model.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	require.NotNil(t, stored.ProficiencyLevel)
	assert.Equal(t, LevelIntermediate, *stored.ProficiencyLevel)
	assert.False(t, stored.TestPromptShown, "completing a test must not set the prompt marker")
}

func TestDismissTestPromptSetsMarker(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "learner@example.com", model.RoleUser)

	svc := NewScoringService(repository.NewTestRepository(db), repository.NewUserRepository(db), &config.Config{})

	prompt, err := svc.TestPrompt(t.Context(), user.ID)
	require.NoError(t, err)
	assert.True(t, prompt.ShouldPrompt)

	require.NoError(t, svc.DismissTestPrompt(t.Context(), user.ID))

	prompt, err = svc.TestPrompt(t.Context(), user.ID)
	require.NoError(t, err)
	assert.False(t, prompt.ShouldPrompt)
}

func TestGetTestStripsCorrectFlags(t *testing.T) {
	db := newTestDB(t)

	test := &model.ProficiencyTest{
		Title:    "MSL placement",
		Language: model.LanguageMSL,
		Questions: []model.Question{
			{Prompt: "q1", OrderInTest: 1, Choices: []model.Choice{
				{Text: "a", Correct: true},
				{Text: "b"},
			}},
		},
	}
	require.NoError(t, db.Create(test).Error)

	svc := NewScoringService(repository.NewTestRepository(db), repository.NewUserRepository(db), &config.Config{})

	resp, err := svc.GetTest(t.Context(), test.ID)
	require.NoError(t, err)
	require.Len(t, resp.Questions, 1)
	require.Len(t, resp.Questions[0].Choices, 2)
	for _, choice := range resp.Questions[0].Choices {
		assert.NotEmpty(t, choice.Text)
	}
}
