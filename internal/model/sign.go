package model

import (
	"time"

	"gorm.io/gorm"
)

// Sign is a dictionary entry mapping a word to its reference image for
// a given language. Backs the word search endpoint.
type Sign struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Word      string         `json:"word" gorm:"not null;uniqueIndex:idx_signs_word_language"`
	Language  Language       `json:"language" gorm:"not null;uniqueIndex:idx_signs_word_language"`
	ImageURL  string         `json:"image_url" gorm:"not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
