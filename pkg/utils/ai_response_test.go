package utils

import (
	"encoding/json"
	"errors"
	"testing"
)

const validCourse = `{
  "days": [{"day": "Day 1", "lessons": [{"title": "Greetings", "description": "Say hello", "content": []}]}],
  "quizzes": [{"question": "q", "options": ["a", "b"], "answer": "a", "explanation": "e"}],
  "flashcards": [{"term": "hola", "definition": "hello", "exampleUsage": "Hola, Ana"}],
  "dialogue": {"title": "At the cafe", "lines": []}
}`

func TestStripJSONFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"fenced", "```json\n[1,2]\n```", "[1,2]"},
		{"surrounding whitespace", "  \n```json {\"a\":1} ```\n", `{"a":1}`},
		{"no fence", `{"a":1}`, `{"a":1}`},
		{"only trailing fence", "[1]\n```", "[1]"},
		{"other language tag is kept", "```yaml\na: 1\n```", "```yaml\na: 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripJSONFence(tt.in)
			if got != tt.want {
				t.Fatalf("StripJSONFence(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if again := StripJSONFence(got); again != got {
				t.Errorf("second StripJSONFence changed %q to %q", got, again)
			}
		})
	}
}

func TestParseCourseContent(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{"valid", validCourse, nil},
		{"valid fenced", "```json\n" + validCourse + "\n```", nil},
		{"not json", "Sure! Here is your course:", ErrInvalidAIResponse},
		{"truncated", validCourse[:40], ErrInvalidAIResponse},
		{"top level array", `[1,2,3]`, ErrInvalidAIResponse},
		{"missing days", `{"quizzes": [], "flashcards": [], "dialogue": {"title": "x"}}`, ErrIncompleteAIContent},
		{"quizzes not array", `{"days": [], "quizzes": {}, "flashcards": [], "dialogue": {"title": "x"}}`, ErrIncompleteAIContent},
		{"dialogue array", `{"days": [], "quizzes": [], "flashcards": [], "dialogue": []}`, ErrIncompleteAIContent},
		{"dialogue null", `{"days": [], "quizzes": [], "flashcards": [], "dialogue": null}`, ErrIncompleteAIContent},
		{"dialogue missing", `{"days": [], "quizzes": [], "flashcards": []}`, ErrIncompleteAIContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCourseContent(tt.raw)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseCourseContent() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCourseContent() error = %v", err)
			}
			if !json.Valid(got) {
				t.Errorf("ParseCourseContent() returned invalid JSON: %s", got)
			}
		})
	}
}

func TestExtractQuizQuestions(t *testing.T) {
	raw := "Here you go:\n[\n" +
		`{"question": "Hello in Spanish?", "options": ["Hola", "Adios", "Gracias", "Por favor"], "correctAnswer": "Hola"},` + "\n" +
		`{"question": "Thanks in Spanish?", "options": ["Hola", "Adios", "Gracias", "Si"], "correctAnswer": "Gracias"}` +
		"\n]\nGood luck!"

	questions, err := ExtractQuizQuestions(raw)
	if err != nil {
		t.Fatalf("ExtractQuizQuestions() error = %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(questions))
	}
	if questions[1].CorrectAnswer != "Gracias" || len(questions[1].Options) != 4 {
		t.Errorf("unexpected second question: %+v", questions[1])
	}
}

func TestExtractQuizQuestionsFailures(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{"no brackets", `{"question": "x"}`, ErrQuizJSONNotFound},
		{"empty text", "", ErrQuizJSONNotFound},
		{"malformed array", `[{"question": "x", "options": [}]`, ErrInvalidAIResponse},
		{"greedy match spans two arrays", `[{"question": "a"}] and later [1]`, ErrInvalidAIResponse},
		{"empty array", "```json\n[]\n```", ErrEmptyQuiz},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractQuizQuestions(tt.raw)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ExtractQuizQuestions() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// Questions whose answer is not among the options, or that carry a wrong option
// count, are passed through as-is.
func TestExtractQuizQuestionsDoesNotCheckAnswerMembership(t *testing.T) {
	raw := `[{"question": "Pick one", "options": ["a", "b"], "correctAnswer": "z"}]`

	questions, err := ExtractQuizQuestions(raw)
	if err != nil {
		t.Fatalf("ExtractQuizQuestions() error = %v", err)
	}

	q := questions[0]
	found := false
	for _, o := range q.Options {
		if o == q.CorrectAnswer {
			found = true
		}
	}
	if found || len(q.Options) != 2 {
		t.Fatalf("expected an unverified question to pass through, got %+v", q)
	}
}
