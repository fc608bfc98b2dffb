package model

import (
	"time"

	"gorm.io/gorm"
)

// ProficiencyTest owns an ordered set of questions. Question order is
// for display only; scoring does not depend on it.
type ProficiencyTest struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Title       string         `json:"title" gorm:"not null;uniqueIndex"`
	Description string         `json:"description,omitempty"`
	Language    Language       `json:"language" gorm:"not null;index"`
	Questions   []Question     `json:"questions,omitempty" gorm:"foreignKey:TestID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
