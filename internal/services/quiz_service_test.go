package services

import (
	"context"
	"errors"
	"testing"

	"lingua/internal/models/request_models"
	"lingua/pkg/logger"
	"lingua/pkg/utils"
)

const twoQuestionQuiz = "```json\n[" +
	`{"question": "Hello?", "options": ["Hola", "Adios", "Gracias", "Si"], "correctAnswer": "Hola"},` +
	`{"question": "Thanks?", "options": ["Hola", "Adios", "Gracias", "Si"], "correctAnswer": "Gracias"}` +
	"]\n```"

func newTestQuizService(repo *fakeQuizRepo, completion *fakeCompletion) QuizServiceInterface {
	return NewQuizService(repo, completion, NewPromptService(), testConfig(), logger.NewNop())
}

func strPtr(s string) *string    { return &s }
func boolPtr(b bool) *bool       { return &b }
func f64Ptr(f float64) *float64 { return &f }

func TestGenerateQuiz(t *testing.T) {
	repo := &fakeQuizRepo{}
	completion := &fakeCompletion{reply: twoQuestionQuiz}
	svc := newTestQuizService(repo, completion)

	quiz, err := svc.GenerateQuiz(context.Background(), request_models.GenerationRequest{Language: "Spanish", Level: "Beginner"})
	if err != nil {
		t.Fatalf("GenerateQuiz() error = %v", err)
	}

	if quiz.QuizID == "" || len(quiz.Questions) != 2 {
		t.Fatalf("unexpected quiz: %+v", quiz)
	}
	for _, q := range quiz.Questions {
		if q.QuizID != quiz.QuizID || q.ID == "" {
			t.Errorf("question not tied to quiz: %+v", q)
		}
	}
	if len(repo.questions) != 2 || repo.questions[0].Language != "Spanish" || repo.questions[0].Level != "Beginner" {
		t.Errorf("stored questions = %+v", repo.questions)
	}

	req := completion.last()
	if req.MaxTokens != 1000 || req.Model != "course-model" {
		t.Errorf("completion request = %+v", req)
	}
}

func TestGenerateQuizFailures(t *testing.T) {
	tests := []struct {
		name    string
		req     request_models.GenerationRequest
		reply   string
		compErr error
		repoErr error
		wantErr error
	}{
		{"missing level", request_models.GenerationRequest{Language: "Spanish"}, twoQuestionQuiz, nil, nil, utils.ErrLanguageLevelRequired},
		{"upstream failure", request_models.GenerationRequest{Language: "Spanish", Level: "Beginner"}, "", utils.ErrUpstream, nil, utils.ErrUpstream},
		{"no array", request_models.GenerationRequest{Language: "Spanish", Level: "Beginner"}, "I cannot do that.", nil, nil, utils.ErrQuizJSONNotFound},
		{"store failure", request_models.GenerationRequest{Language: "Spanish", Level: "Beginner"}, twoQuestionQuiz, nil, errors.New("conn reset"), utils.ErrDatabaseError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeQuizRepo{insertErr: tt.repoErr}
			svc := newTestQuizService(repo, &fakeCompletion{reply: tt.reply, err: tt.compErr})

			quiz, err := svc.GenerateQuiz(context.Background(), tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("GenerateQuiz() error = %v, want %v", err, tt.wantErr)
			}
			if quiz != nil || len(repo.questions) != 0 {
				t.Errorf("expected nothing returned or stored, got %+v / %d stored", quiz, len(repo.questions))
			}
		})
	}
}

func TestSubmitQuizResultRescores(t *testing.T) {
	repo := &fakeQuizRepo{}
	svc := newTestQuizService(repo, &fakeCompletion{reply: twoQuestionQuiz})

	quiz, err := svc.GenerateQuiz(context.Background(), request_models.GenerationRequest{Language: "Spanish", Level: "Beginner"})
	if err != nil {
		t.Fatalf("GenerateQuiz() error = %v", err)
	}

	res, err := svc.SubmitQuizResult(context.Background(), request_models.QuizSubmitRequest{
		UserID: "user-1",
		QuizID: quiz.QuizID,
		Answers: []request_models.QuizAnswerRequest{
			{QuestionID: quiz.Questions[0].ID, Answer: strPtr(" Hola "), IsCorrect: boolPtr(true)},
			{QuestionID: quiz.Questions[1].ID, Answer: strPtr("Si"), IsCorrect: boolPtr(true)},
			{QuestionID: "unknown", Answer: strPtr("Hola"), IsCorrect: boolPtr(true)},
		},
		Score: f64Ptr(3),
	})
	if err != nil {
		t.Fatalf("SubmitQuizResult() error = %v", err)
	}

	if res.Score != 1 || res.Message != "Quiz results submitted successfully." {
		t.Fatalf("response = %+v", res)
	}
	if len(repo.results) != 1 {
		t.Fatalf("stored %d results, want 1", len(repo.results))
	}
	stored := repo.results[0]
	if stored.Score != 1 || stored.ReportedScore != 3 {
		t.Errorf("stored scores = %v/%v, want 1/3", stored.Score, stored.ReportedScore)
	}
	wantFlags := []bool{true, false, false}
	for i, a := range stored.Answers {
		if a.IsCorrect != wantFlags[i] {
			t.Errorf("answer %d isCorrect = %v, want %v", i, a.IsCorrect, wantFlags[i])
		}
	}
}

func TestSubmitQuizResultUnknownQuiz(t *testing.T) {
	svc := newTestQuizService(&fakeQuizRepo{}, &fakeCompletion{})

	_, err := svc.SubmitQuizResult(context.Background(), request_models.QuizSubmitRequest{
		UserID:  "user-1",
		QuizID:  "missing",
		Answers: []request_models.QuizAnswerRequest{},
		Score:   f64Ptr(0),
	})
	if !errors.Is(err, utils.ErrQuizNotFound) {
		t.Fatalf("SubmitQuizResult() error = %v, want ErrQuizNotFound", err)
	}
}
