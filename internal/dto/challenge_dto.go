package dto

type ChallengeResponse struct {
	ID         uint    `json:"id"`
	Language   string  `json:"language"`
	Text       string  `json:"text"`
	Hint       *string `json:"hint,omitempty"`
	Difficulty string  `json:"difficulty"`
}
