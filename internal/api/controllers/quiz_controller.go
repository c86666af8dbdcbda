package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lingua/internal/models/request_models"
	"lingua/internal/services"
	"lingua/pkg/utils"
)

const invalidSubmissionMessage = "Invalid request. Include userId, quizId, answers (array of objects with questionId, answer and isCorrect) and score."

type QuizController struct {
	quizService services.QuizServiceInterface
}

func NewQuizController(quizService services.QuizServiceInterface) *QuizController {
	return &QuizController{quizService: quizService}
}

// GenerateQuizHandler godoc
// @Summary Generate a quiz
// @Tags Quizzes
// @Accept json
// @Produce json
// @Param request body request_models.GenerationRequest true "Language and level"
// @Success 200 {object} response_models.QuizResponse
// @Failure 500 {object} utils.APIResponse
// @Router /api/quizzes/generate [post]
func (q *QuizController) GenerateQuizHandler(c *gin.Context) {
	var req request_models.GenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Language and level are required.")
		return
	}

	quiz, err := q.quizService.GenerateQuiz(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, quiz)
}

// SubmitQuizHandler godoc
// @Summary Submit quiz answers
// @Description Answers are scored against the stored questions; the returned score is the server's
// @Tags Quizzes
// @Accept json
// @Produce json
// @Param request body request_models.QuizSubmitRequest true "Submission"
// @Success 200 {object} response_models.QuizSubmitResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/quizzes/submit [post]
func (q *QuizController) SubmitQuizHandler(c *gin.Context) {
	var req request_models.QuizSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, invalidSubmissionMessage)
		return
	}

	result, err := q.quizService.SubmitQuizResult(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
