package dto

// RecognitionResponse mirrors the upstream recognizer's JSON shape.
// Placeholder is true only for the offline fallback result, so a
// synthetic answer can never masquerade as a genuine prediction.
type RecognitionResponse struct {
	Word        string  `json:"word"`
	Confidence  float64 `json:"confidence"`
	ImageURL    string  `json:"imageUrl"`
	Placeholder bool    `json:"placeholder,omitempty"`
}

// SignResponse is the word search result.
type SignResponse struct {
	Word     string `json:"word"`
	Language string `json:"language"`
	ImageURL string `json:"imageUrl"`
}
