package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"lingua/internal/models/request_models"
	"lingua/pkg/logger"
	"lingua/pkg/utils"
)

const generatedCourse = `{
  "days": [{"day": "Day 1", "lessons": [{"title": "Hola", "description": "Greetings", "content": []}]}],
  "quizzes": [
    {"question": "1", "options": ["a"], "answer": "a", "explanation": ""},
    {"question": "2", "options": ["a"], "answer": "a", "explanation": ""},
    {"question": "3", "options": ["a"], "answer": "a", "explanation": ""},
    {"question": "4", "options": ["a"], "answer": "a", "explanation": ""},
    {"question": "5", "options": ["a"], "answer": "a", "explanation": ""}
  ],
  "flashcards": [{"term": "hola", "definition": "hello", "exampleUsage": "Hola, Ana."}],
  "dialogue": {"title": "Cafe", "lines": [{"speaker": "A", "text": "Hola", "translation": "Hi"}]}
}`

func TestGenerateCourse(t *testing.T) {
	completion := &fakeCompletion{reply: "```json\n" + generatedCourse + "\n```"}
	svc := NewContentService(completion, NewPromptService(), testConfig(), logger.NewNop())

	content, err := svc.GenerateCourse(context.Background(), request_models.GenerationRequest{Language: "Spanish", Level: "Beginner"})
	if err != nil {
		t.Fatalf("GenerateCourse() error = %v", err)
	}

	var doc struct {
		Days    []json.RawMessage `json:"days"`
		Quizzes []json.RawMessage `json:"quizzes"`
	}
	if err := json.Unmarshal(content, &doc); err != nil {
		t.Fatalf("content is not JSON: %v", err)
	}
	if len(doc.Days) < 1 || len(doc.Quizzes) != 5 {
		t.Errorf("days = %d, quizzes = %d", len(doc.Days), len(doc.Quizzes))
	}

	req := completion.last()
	if req.Model != "course-model" || !strings.Contains(req.Messages[0].Content, `"Spanish"`) {
		t.Errorf("completion request = %+v", req)
	}
}

func TestGenerateCourseFailures(t *testing.T) {
	tests := []struct {
		name    string
		req     request_models.GenerationRequest
		reply   string
		compErr error
		wantErr error
	}{
		{"missing language", request_models.GenerationRequest{Level: "Beginner"}, generatedCourse, nil, utils.ErrLanguageLevelRequired},
		{"prose reply", request_models.GenerationRequest{Language: "Spanish", Level: "Beginner"}, "Here is a course!", nil, utils.ErrInvalidAIResponse},
		{"missing flashcards", request_models.GenerationRequest{Language: "Spanish", Level: "Beginner"}, `{"days": [], "quizzes": [], "dialogue": {"title": "x"}}`, nil, utils.ErrIncompleteAIContent},
		{"upstream", request_models.GenerationRequest{Language: "Spanish", Level: "Beginner"}, "", utils.ErrUpstream, utils.ErrUpstream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewContentService(&fakeCompletion{reply: tt.reply, err: tt.compErr}, NewPromptService(), testConfig(), logger.NewNop())
			if _, err := svc.GenerateCourse(context.Background(), tt.req); !errors.Is(err, tt.wantErr) {
				t.Fatalf("GenerateCourse() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
