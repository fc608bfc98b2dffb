package dto

// ErrorResponse is the uniform failure body. Code carries the error
// taxonomy tag so clients can decide whether a retry makes sense.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
