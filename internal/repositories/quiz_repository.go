package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"lingua/internal/infra"
	"lingua/internal/models/db_models"
)

type QuizRepository interface {
	// InsertQuestions stores a whole generated quiz or nothing.
	InsertQuestions(ctx context.Context, questions []db_models.QuizQuestion) error
	FindQuestionsByQuizID(ctx context.Context, quizID string) ([]db_models.QuizQuestion, error)
	InsertResult(ctx context.Context, result *db_models.QuizResult) error
}

type quizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) InsertQuestions(ctx context.Context, questions []db_models.QuizQuestion) error {
	if len(questions) == 0 {
		return nil
	}
	return infra.WithTransaction(r.db.WithContext(ctx), func(tx *gorm.DB) error {
		if err := tx.Create(&questions).Error; err != nil {
			return fmt.Errorf("insert quiz questions: %w", err)
		}
		return nil
	})
}

func (r *quizRepository) FindQuestionsByQuizID(ctx context.Context, quizID string) ([]db_models.QuizQuestion, error) {
	var questions []db_models.QuizQuestion
	err := r.db.WithContext(ctx).
		Where("quiz_id = ?", quizID).
		Order("created_at ASC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *quizRepository) InsertResult(ctx context.Context, result *db_models.QuizResult) error {
	return r.db.WithContext(ctx).Create(result).Error
}
