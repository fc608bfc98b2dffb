package model

import (
	"time"

	"gorm.io/gorm"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	Email       string `json:"email" gorm:"not null;uniqueIndex"`
	DisplayName string `json:"display_name" gorm:"not null"`
	Role        Role   `json:"role" gorm:"not null;default:'user'"`

	// ProficiencyLevel is nil until the user completes a proficiency
	// test. TestPromptShown records that the one-time test prompt was
	// dismissed; completing a test never sets it.
	ProficiencyLevel *string `json:"proficiency_level,omitempty"`
	TestPromptShown  bool    `json:"test_prompt_shown" gorm:"not null;default:false"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
