package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"lingua/internal/config"
	"lingua/internal/models/db_models"
	"lingua/internal/models/request_models"
	"lingua/internal/models/response_models"
	"lingua/internal/repositories"
	"lingua/pkg/logger"
	"lingua/pkg/utils"
)

type QuizServiceInterface interface {
	GenerateQuiz(ctx context.Context, req request_models.GenerationRequest) (*response_models.QuizResponse, error)
	SubmitQuizResult(ctx context.Context, req request_models.QuizSubmitRequest) (*response_models.QuizSubmitResponse, error)
}

type QuizService struct {
	quizRepo   repositories.QuizRepository
	completion utils.CompletionClient
	prompts    PromptServiceInterface
	model      string
	maxTokens  int
	log        *logger.Logger
}

func NewQuizService(
	quizRepo repositories.QuizRepository,
	completion utils.CompletionClient,
	prompts PromptServiceInterface,
	cfg *config.Config,
	log *logger.Logger,
) QuizServiceInterface {
	return &QuizService{
		quizRepo:   quizRepo,
		completion: completion,
		prompts:    prompts,
		model:      cfg.AI.Model,
		maxTokens:  cfg.AI.QuizMaxToken,
		log:        log.With("service", "QuizService"),
	}
}

// GenerateQuiz asks the model for questions and stores them under a fresh quiz id.
// Either every question is stored and returned or an error is returned.
func (s *QuizService) GenerateQuiz(ctx context.Context, req request_models.GenerationRequest) (*response_models.QuizResponse, error) {
	language := strings.TrimSpace(req.Language)
	level := strings.TrimSpace(req.Level)
	if language == "" || level == "" {
		return nil, utils.ErrLanguageLevelRequired
	}

	prompt := s.prompts.QuizPrompt(language, level)
	raw, err := s.completion.Complete(ctx, utils.CompletionRequest{
		Model:     s.model,
		System:    prompt.System,
		Messages:  []utils.ChatMessage{{Role: utils.RoleUser, Content: prompt.Instruction}},
		MaxTokens: s.maxTokens,
	})
	if err != nil {
		s.log.Error("quiz completion failed", "language", language, "level", level, "error", err)
		return nil, err
	}

	generated, err := utils.ExtractQuizQuestions(raw)
	if err != nil {
		s.log.Warn("unusable quiz from model", "error", err, "raw", raw)
		return nil, err
	}

	quizID := uuid.New().String()
	questions := make([]db_models.QuizQuestion, 0, len(generated))
	for _, q := range generated {
		questions = append(questions, db_models.QuizQuestion{
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Language:      language,
			Level:         level,
			QuizID:        quizID,
		})
	}

	if err := s.quizRepo.InsertQuestions(ctx, questions); err != nil {
		s.log.Error("failed to store quiz", "quiz_id", quizID, "error", err)
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	s.log.Info("quiz generated", "quiz_id", quizID, "questions", len(questions))

	resp := &response_models.QuizResponse{
		QuizID:    quizID,
		Questions: make([]response_models.QuizQuestionResponse, 0, len(questions)),
	}
	for _, q := range questions {
		resp.Questions = append(resp.Questions, response_models.QuizQuestionResponse{
			ID:            q.ID.String(),
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			QuizID:        q.QuizID,
		})
	}
	return resp, nil
}

// SubmitQuizResult scores the answers against the stored questions and stores the result.
// The client's isCorrect flags and score are kept only for comparison.
func (s *QuizService) SubmitQuizResult(ctx context.Context, req request_models.QuizSubmitRequest) (*response_models.QuizSubmitResponse, error) {
	stored, err := s.quizRepo.FindQuestionsByQuizID(ctx, req.QuizID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if len(stored) == 0 {
		return nil, utils.ErrQuizNotFound
	}

	correctByID := make(map[string]string, len(stored))
	for _, q := range stored {
		correctByID[q.ID.String()] = q.CorrectAnswer
	}

	answers := make([]db_models.QuizAnswer, 0, len(req.Answers))
	score, mismatched := 0, 0
	for _, a := range req.Answers {
		correct, known := correctByID[a.QuestionID]
		isCorrect := known && strings.TrimSpace(*a.Answer) == strings.TrimSpace(correct)
		if isCorrect {
			score++
		}
		if isCorrect != *a.IsCorrect {
			mismatched++
		}
		answers = append(answers, db_models.QuizAnswer{
			QuestionID: a.QuestionID,
			Answer:     *a.Answer,
			IsCorrect:  isCorrect,
		})
	}

	reported := int(*req.Score)
	if reported != score || mismatched > 0 {
		s.log.Warn("client quiz score differs from server score",
			"quiz_id", req.QuizID, "user_id", req.UserID,
			"reported", reported, "scored", score, "mismatched_answers", mismatched)
	}

	result := &db_models.QuizResult{
		UserID:        req.UserID,
		QuizID:        req.QuizID,
		Answers:       answers,
		Score:         score,
		ReportedScore: reported,
		SubmittedAt:   time.Now(),
	}
	if err := s.quizRepo.InsertResult(ctx, result); err != nil {
		s.log.Error("failed to store quiz result", "quiz_id", req.QuizID, "error", err)
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	return &response_models.QuizSubmitResponse{
		Message: "Quiz results submitted successfully.",
		Score:   score,
	}, nil
}
