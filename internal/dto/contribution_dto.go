package dto

import "time"

// SubmitContributionRequest is the payload for a community gesture/word
// submission. Validation beyond binding (closed language set, media
// type) happens in the moderation service before any persistence.
type SubmitContributionRequest struct {
	Title        string  `json:"title" binding:"required"`
	Description  string  `json:"description"`
	Language     string  `json:"language" binding:"required"`
	MediaType    string  `json:"media_type" binding:"required"`
	MediaURL     string  `json:"media_url" binding:"required"`
	ThumbnailURL *string `json:"thumbnail_url"`
}

// RejectContributionRequest carries the mandatory rejection reason.
type RejectContributionRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// ContributionFilter holds the recognized list options. Non-admin
// callers are always scoped to their own submissions regardless of the
// SubmittedBy value supplied.
type ContributionFilter struct {
	Status      string `form:"status"`
	Language    string `form:"language"`
	SubmittedBy *uint  `form:"submitted_by"`
}

type ContributionResponse struct {
	ID              uint       `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description,omitempty"`
	Language        string     `json:"language"`
	MediaType       string     `json:"media_type"`
	MediaURL        string     `json:"media_url"`
	ThumbnailURL    *string    `json:"thumbnail_url,omitempty"`
	SubmitterID     uint       `json:"submitter_id"`
	Status          string     `json:"status"`
	ReviewedBy      *uint      `json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time `json:"reviewed_at,omitempty"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
