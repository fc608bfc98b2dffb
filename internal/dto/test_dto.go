package dto

// ChoiceResponse deliberately omits the correct flag.
type ChoiceResponse struct {
	ID   uint   `json:"id"`
	Text string `json:"text"`
}

type QuestionResponse struct {
	ID          uint             `json:"id"`
	Prompt      string           `json:"prompt"`
	OrderInTest int              `json:"order_in_test"`
	Choices     []ChoiceResponse `json:"choices"`
}

type TestResponse struct {
	ID          uint               `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	Language    string             `json:"language"`
	Questions   []QuestionResponse `json:"questions"`
}

// QuestionAnswer is one answered question within a submission. A
// question is scored correct only when ChoiceIDs equals the question's
// correct choice set exactly.
type QuestionAnswer struct {
	QuestionID uint   `json:"question_id" binding:"required"`
	ChoiceIDs  []uint `json:"choice_ids" binding:"required,min=1"`
}

// SubmitTestRequest is the full answer set for a proficiency test.
// Ephemeral input to the scorer; only the derived level is persisted.
type SubmitTestRequest struct {
	Answers []QuestionAnswer `json:"answers" binding:"required,dive"`
}

type TestResultResponse struct {
	Percentage int    `json:"percentage"`
	Level      string `json:"level"`
}

// TestPromptResponse says whether the one-time proficiency test prompt
// should be shown to the user on this session load.
type TestPromptResponse struct {
	ShouldPrompt bool `json:"should_prompt"`
}
