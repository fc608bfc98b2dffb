package model

import (
	"time"

	"gorm.io/gorm"
)

type ContributionStatus string

const (
	ContributionPending  ContributionStatus = "pending"
	ContributionApproved ContributionStatus = "approved"
	ContributionRejected ContributionStatus = "rejected"
)

type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// Contribution is a community-submitted gesture or word. It is created
// exactly once in pending state; approve/reject are its only
// transitions and both are terminal, so review metadata is never
// overwritten by a later decision.
type Contribution struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	Language    Language  `json:"language" gorm:"not null;index"`
	MediaType   MediaType `json:"media_type" gorm:"not null"`
	MediaURL    string    `json:"media_url" gorm:"not null"`
	ThumbnailURL *string  `json:"thumbnail_url,omitempty"`

	SubmitterID uint               `json:"submitter_id" gorm:"not null;index"`
	Status      ContributionStatus `json:"status" gorm:"not null;default:'pending';index"`

	// ReviewedBy/ReviewedAt are both set iff Status != pending.
	// RejectionReason is set iff Status == rejected.
	ReviewedBy      *uint      `json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time `json:"reviewed_at,omitempty"`
	RejectionReason *string    `json:"rejection_reason,omitempty" gorm:"type:text"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
