package services

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"lingua/internal/config"
	"lingua/internal/models/db_models"
	"lingua/pkg/utils"
)

func testConfig() *config.Config {
	return &config.Config{
		AI: config.AIConfig{Model: "course-model", ChatModel: "chat-model", QuizMaxToken: 1000},
	}
}

type fakeCompletion struct {
	mu       sync.Mutex
	reply    string
	err      error
	requests []utils.CompletionRequest
}

func (f *fakeCompletion) Complete(_ context.Context, req utils.CompletionRequest) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	return f.reply, f.err
}

func (f *fakeCompletion) last() utils.CompletionRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[len(f.requests)-1]
}

type fakeQuizRepo struct {
	questions []db_models.QuizQuestion
	results   []*db_models.QuizResult
	insertErr error
}

func (f *fakeQuizRepo) InsertQuestions(_ context.Context, questions []db_models.QuizQuestion) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	for i := range questions {
		questions[i].ID = uuid.New()
	}
	f.questions = append(f.questions, questions...)
	return nil
}

func (f *fakeQuizRepo) FindQuestionsByQuizID(_ context.Context, quizID string) ([]db_models.QuizQuestion, error) {
	var out []db_models.QuizQuestion
	for _, q := range f.questions {
		if q.QuizID == quizID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *fakeQuizRepo) InsertResult(_ context.Context, result *db_models.QuizResult) error {
	f.results = append(f.results, result)
	return nil
}

type fakeLessonRepo struct {
	lessons []db_models.Lesson
}

func (f *fakeLessonRepo) ListByLanguageAndLevel(_ context.Context, language, level string) ([]db_models.Lesson, error) {
	var out []db_models.Lesson
	for _, l := range f.lessons {
		if l.Language == language && l.Level == level {
			out = append(out, l)
		}
	}
	return out, nil
}

type fakeProgressRepo struct {
	byUser map[uuid.UUID]*db_models.Progress
	saves  int
}

func (f *fakeProgressRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*db_models.Progress, error) {
	p, ok := f.byUser[userID]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProgressRepo) Save(_ context.Context, progress *db_models.Progress) error {
	if f.byUser == nil {
		f.byUser = map[uuid.UUID]*db_models.Progress{}
	}
	cp := *progress
	f.byUser[progress.UserID] = &cp
	f.saves++
	return nil
}

type fakeProfileRepo struct {
	byAccount map[uuid.UUID]*db_models.Profile
	err       error
}

func (f *fakeProfileRepo) FindByAccountID(_ context.Context, accountID uuid.UUID) (*db_models.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.byAccount[accountID]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProfileRepo) Upsert(_ context.Context, profile *db_models.Profile) error {
	if f.err != nil {
		return f.err
	}
	if f.byAccount == nil {
		f.byAccount = map[uuid.UUID]*db_models.Profile{}
	}
	cp := *profile
	f.byAccount[profile.AccountID] = &cp
	return nil
}
