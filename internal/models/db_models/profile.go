package db_models

import "github.com/google/uuid"

// Profile holds a learner's target language and level, one per account.
type Profile struct {
	BaseModel
	AccountID      uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	TargetLanguage string    `gorm:"not null"`
	Level          string    `gorm:"not null;default:Beginner"`
	Goals          string
}
