package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"lingua/internal/config"
	"lingua/internal/models/request_models"
	"lingua/pkg/logger"
	"lingua/pkg/utils"
)

type ContentServiceInterface interface {
	// GenerateCourse returns the validated course document exactly as the model produced it.
	GenerateCourse(ctx context.Context, req request_models.GenerationRequest) (json.RawMessage, error)
}

type ContentService struct {
	completion utils.CompletionClient
	prompts    PromptServiceInterface
	model      string
	log        *logger.Logger
}

func NewContentService(
	completion utils.CompletionClient,
	prompts PromptServiceInterface,
	cfg *config.Config,
	log *logger.Logger,
) ContentServiceInterface {
	return &ContentService{
		completion: completion,
		prompts:    prompts,
		model:      cfg.AI.Model,
		log:        log.With("service", "ContentService"),
	}
}

func (s *ContentService) GenerateCourse(ctx context.Context, req request_models.GenerationRequest) (json.RawMessage, error) {
	language := strings.TrimSpace(req.Language)
	level := strings.TrimSpace(req.Level)
	if language == "" || level == "" {
		return nil, utils.ErrLanguageLevelRequired
	}

	prompt := s.prompts.CoursePrompt(language, level)
	raw, err := s.completion.Complete(ctx, utils.CompletionRequest{
		Model:    s.model,
		System:   prompt.System,
		Messages: []utils.ChatMessage{{Role: utils.RoleUser, Content: prompt.Instruction}},
	})
	if err != nil {
		s.log.Error("course completion failed", "language", language, "level", level, "error", err)
		return nil, err
	}

	content, err := utils.ParseCourseContent(raw)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidAIResponse) || errors.Is(err, utils.ErrIncompleteAIContent) {
			s.log.Warn("unusable course content from model", "error", err, "raw", raw)
		}
		return nil, err
	}
	return content, nil
}
