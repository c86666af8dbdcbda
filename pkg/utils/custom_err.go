package utils

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrLanguageLevelRequired = errors.New("language and level are required")
	ErrLanguageRequired      = errors.New("language is required")
	ErrNoChatInput           = errors.New("no message or file provided")
	ErrNoVoiceInput          = errors.New("no voice input")

	ErrUpstream            = errors.New("upstream AI call failed")
	ErrEmptyCompletion     = errors.New("empty completion")
	ErrInvalidAIResponse   = errors.New("invalid AI response")
	ErrIncompleteAIContent = errors.New("incomplete AI content structure")
	ErrQuizJSONNotFound    = errors.New("no quiz array in AI response")
	ErrEmptyQuiz           = errors.New("empty quiz")

	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrExtractionFailed    = errors.New("text extraction failed")

	ErrDatabaseError          = errors.New("database error")
	ErrQuizNotFound           = errors.New("quiz not found")
	ErrLessonNotFound         = errors.New("lesson not found")
	ErrInvalidLanguageOrLevel = errors.New("invalid language or level")

	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidToken       = errors.New("invalid token")
)
