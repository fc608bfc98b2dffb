package model

import (
	"time"

	"gorm.io/gorm"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// DailyChallenge rows are authored elsewhere; this service only reads
// them. The ID doubles as the ordinal used for deterministic selection,
// so the active list must always be fetched ordered ascending by id.
type DailyChallenge struct {
	ID         uint       `gorm:"primarykey" json:"id"`
	Language   Language   `json:"language" gorm:"not null;index"`
	Text       string     `json:"text" gorm:"type:text;not null"`
	Hint       *string    `json:"hint,omitempty" gorm:"type:text"`
	Difficulty Difficulty `json:"difficulty" gorm:"not null"`
	Active     bool       `json:"active" gorm:"not null;default:true;index"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
