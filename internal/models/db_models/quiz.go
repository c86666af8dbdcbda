package db_models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// QuizQuestion is immutable once stored. QuizID groups the questions of one generation call.
type QuizQuestion struct {
	BaseModel
	Question      string         `gorm:"not null"`
	Options       pq.StringArray `gorm:"type:text[]"`
	CorrectAnswer string
	Language      string `gorm:"index"`
	Level         string
	QuizID        string `gorm:"index;not null"`
}

type QuizAnswer struct {
	QuestionID string `json:"questionId"`
	Answer     string `json:"answer"`
	IsCorrect  bool   `json:"isCorrect"`
}

// QuizResult is one submission. Append-only.
type QuizResult struct {
	BaseModel
	UserID        string                          `gorm:"index;not null"`
	QuizID        string                          `gorm:"index;not null"`
	Answers       datatypes.JSONSlice[QuizAnswer] `gorm:"type:jsonb"`
	Score         int
	ReportedScore int
	SubmittedAt   time.Time
}
