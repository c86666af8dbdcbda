package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Lesson struct {
	BaseModel
	LessonID    string `gorm:"uniqueIndex;not null"`
	Title       string `gorm:"not null"`
	Description string
	Language    string `gorm:"index:idx_lesson_language_level;not null"`
	Level       string `gorm:"index:idx_lesson_language_level;not null"`
	VideoURL    string
	Order       int `gorm:"column:sort_order"`
	Duration    int // minutes
}

type Progress struct {
	BaseModel
	UserID              uuid.UUID      `gorm:"type:uuid;uniqueIndex;not null"`
	CompletedLessons    pq.StringArray `gorm:"type:text[]"`
	LastCompletedLesson string
}
