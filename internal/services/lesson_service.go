package services

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"lingua/internal/models/db_models"
	"lingua/internal/models/response_models"
	"lingua/internal/repositories"
	"lingua/pkg/logger"
	"lingua/pkg/utils"
)

type LessonServiceInterface interface {
	ListLessons(ctx context.Context, language, level string) ([]response_models.LessonResponse, error)
	// CompleteLesson records lessonID for the user and returns the id of the lesson after it, if any.
	CompleteLesson(ctx context.Context, userID uuid.UUID, lessonID, language, level string) (*string, error)
	NextLesson(ctx context.Context, userID uuid.UUID, language, level string) (*string, error)
}

type LessonService struct {
	lessonRepo   repositories.LessonRepository
	progressRepo repositories.ProgressRepository
	log          *logger.Logger
}

func NewLessonService(
	lessonRepo repositories.LessonRepository,
	progressRepo repositories.ProgressRepository,
	log *logger.Logger,
) LessonServiceInterface {
	return &LessonService{
		lessonRepo:   lessonRepo,
		progressRepo: progressRepo,
		log:          log.With("service", "LessonService"),
	}
}

func (s *LessonService) ListLessons(ctx context.Context, language, level string) ([]response_models.LessonResponse, error) {
	lessons, err := s.lessonRepo.ListByLanguageAndLevel(ctx, language, level)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if len(lessons) == 0 {
		return nil, utils.ErrLessonNotFound
	}

	out := make([]response_models.LessonResponse, 0, len(lessons))
	for _, l := range lessons {
		out = append(out, response_models.LessonResponse{
			ID:          l.LessonID,
			Title:       l.Title,
			Description: l.Description,
			Language:    l.Language,
			Level:       l.Level,
			VideoURL:    l.VideoURL,
			Order:       l.Order,
			Duration:    l.Duration,
		})
	}
	return out, nil
}

func (s *LessonService) CompleteLesson(ctx context.Context, userID uuid.UUID, lessonID, language, level string) (*string, error) {
	progress, err := s.progressRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	if progress == nil {
		progress = &db_models.Progress{UserID: userID}
	}
	if !slices.Contains(progress.CompletedLessons, lessonID) {
		progress.CompletedLessons = append(progress.CompletedLessons, lessonID)
		progress.LastCompletedLesson = lessonID
	}

	if err := s.progressRepo.Save(ctx, progress); err != nil {
		s.log.Error("failed to save progress", "user_id", userID, "lesson_id", lessonID, "error", err)
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	lessons, err := s.lessonRepo.ListByLanguageAndLevel(ctx, language, level)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if len(lessons) == 0 {
		return nil, utils.ErrInvalidLanguageOrLevel
	}
	return lessonAfter(lessons, lessonID), nil
}

func (s *LessonService) NextLesson(ctx context.Context, userID uuid.UUID, language, level string) (*string, error) {
	progress, err := s.progressRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if progress == nil || progress.LastCompletedLesson == "" {
		return nil, nil
	}

	lessons, err := s.lessonRepo.ListByLanguageAndLevel(ctx, language, level)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if len(lessons) == 0 {
		return nil, utils.ErrInvalidLanguageOrLevel
	}
	return lessonAfter(lessons, progress.LastCompletedLesson), nil
}

// lessonAfter returns the id following lessonID in the ordered list, nil when it is last or absent.
func lessonAfter(lessons []db_models.Lesson, lessonID string) *string {
	idx := slices.IndexFunc(lessons, func(l db_models.Lesson) bool { return l.LessonID == lessonID })
	if idx == -1 || idx == len(lessons)-1 {
		return nil
	}
	next := lessons[idx+1].LessonID
	return &next
}
