package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

type errorMapping struct {
	err     error
	code    int
	message string
}

// Order matters: the first sentinel matched by errors.Is wins.
var serviceErrors = []errorMapping{
	{ErrLanguageLevelRequired, http.StatusBadRequest, "Language and level are required."},
	{ErrLanguageRequired, http.StatusBadRequest, "Language is required"},
	{ErrNoChatInput, http.StatusBadRequest, "No valid message or file uploaded."},
	{ErrNoVoiceInput, http.StatusBadRequest, "No voice input received."},
	{ErrInvalidInput, http.StatusBadRequest, "Invalid request format"},
	{ErrUnsupportedFileType, http.StatusBadRequest, "Unsupported file type"},
	{ErrExtractionFailed, http.StatusBadRequest, "Could not read text from the uploaded file."},
	{ErrInvalidLanguageOrLevel, http.StatusBadRequest, "Invalid language or level"},

	{ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{ErrAccountNotFound, http.StatusUnauthorized, "Invalid email or password"},
	{ErrInvalidToken, http.StatusUnauthorized, "Invalid or expired token"},
	{ErrEmailAlreadyExists, http.StatusConflict, "User already exists"},

	{ErrQuizNotFound, http.StatusNotFound, "Quiz not found"},
	{ErrLessonNotFound, http.StatusNotFound, "No lessons found for this language and level"},

	{ErrEmptyCompletion, http.StatusInternalServerError, "No response from AI."},
	{ErrInvalidAIResponse, http.StatusInternalServerError, "Invalid JSON format from AI."},
	{ErrIncompleteAIContent, http.StatusInternalServerError, "Incomplete or invalid content structure."},
	{ErrQuizJSONNotFound, http.StatusInternalServerError, "Failed to extract quiz JSON from model response."},
	{ErrEmptyQuiz, http.StatusInternalServerError, "Invalid or empty quiz format."},
	{ErrUpstream, http.StatusInternalServerError, "Failed to generate content from the AI service."},
	{ErrDatabaseError, http.StatusInternalServerError, "Internal server error"},
}

func HandleServiceError(c *gin.Context, err error) {
	for _, m := range serviceErrors {
		if errors.Is(err, m.err) {
			if m.code >= http.StatusInternalServerError {
				zap.S().Errorw("service error", "trace_id", c.GetString("trace_id"), "error", err)
			}
			RespondError(c, m.code, m.message)
			return
		}
	}

	zap.S().Errorw("unknown error", "trace_id", c.GetString("trace_id"), "error", err)
	RespondError(c, http.StatusInternalServerError, "Internal server error")
}
