package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// GeneratedQuestion is one quiz question as the model returns it.
type GeneratedQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// quizArrayPattern grabs everything from the first '[' to the last ']', across newlines.
var quizArrayPattern = regexp.MustCompile(`(?s)\[.*\]`)

// StripJSONFence removes an optional leading "```json" and trailing "```" from model output.
// Calling it on already stripped text is a no-op.
func StripJSONFence(text string) string {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}

// ParseCourseContent validates a generated course document and returns it unchanged.
// The top level must carry days, quizzes and flashcards arrays plus a non-array dialogue value.
func ParseCourseContent(raw string) (json.RawMessage, error) {
	cleaned := StripJSONFence(raw)

	var doc map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAIResponse, err)
	}

	for _, key := range []string{"days", "quizzes", "flashcards"} {
		if !isJSONArray(doc[key]) {
			return nil, fmt.Errorf("%w: %q must be an array", ErrIncompleteAIContent, key)
		}
	}
	if !isTruthyObject(doc["dialogue"]) {
		return nil, fmt.Errorf("%w: dialogue must be an object", ErrIncompleteAIContent)
	}

	return json.RawMessage(cleaned), nil
}

// ExtractQuizQuestions pulls the question array out of a quiz completion.
// Option count and answer membership are left to the caller.
func ExtractQuizQuestions(raw string) ([]GeneratedQuestion, error) {
	match := quizArrayPattern.FindString(StripJSONFence(raw))
	if match == "" {
		return nil, ErrQuizJSONNotFound
	}

	var questions []GeneratedQuestion
	dec := json.NewDecoder(strings.NewReader(match))
	if err := dec.Decode(&questions); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAIResponse, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after quiz array", ErrInvalidAIResponse)
	}
	if len(questions) == 0 {
		return nil, ErrEmptyQuiz
	}
	return questions, nil
}

func isJSONArray(v json.RawMessage) bool {
	v = bytes.TrimSpace(v)
	return len(v) > 0 && v[0] == '['
}

func isTruthyObject(v json.RawMessage) bool {
	v = bytes.TrimSpace(v)
	if len(v) == 0 || v[0] == '[' {
		return false
	}
	switch string(v) {
	case "null", "false", "0", `""`:
		return false
	}
	return true
}
