package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"lingua/internal/models/db_models"
)

type LessonRepository interface {
	ListByLanguageAndLevel(ctx context.Context, language, level string) ([]db_models.Lesson, error)
}

type lessonRepository struct {
	db *gorm.DB
}

func NewLessonRepository(db *gorm.DB) LessonRepository {
	return &lessonRepository{db: db}
}

// ListByLanguageAndLevel returns lessons in course order.
func (r *lessonRepository) ListByLanguageAndLevel(ctx context.Context, language, level string) ([]db_models.Lesson, error) {
	var lessons []db_models.Lesson
	err := r.db.WithContext(ctx).
		Where("language = ? AND level = ?", language, level).
		Order("sort_order ASC").
		Find(&lessons).Error
	if err != nil {
		return nil, err
	}
	return lessons, nil
}

type ProgressRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*db_models.Progress, error)
	Save(ctx context.Context, progress *db_models.Progress) error
}

type progressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*db_models.Progress, error) {
	var progress db_models.Progress
	err := r.db.WithContext(ctx).First(&progress, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &progress, nil
}

// Save inserts the user's progress row or overwrites the existing one.
func (r *progressRepository) Save(ctx context.Context, progress *db_models.Progress) error {
	if progress.ID != uuid.Nil {
		return r.db.WithContext(ctx).Save(progress).Error
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"completed_lessons", "last_completed_lesson", "updated_at"}),
		}).
		Create(progress).Error
}
