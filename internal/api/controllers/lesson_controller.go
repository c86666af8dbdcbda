package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"lingua/internal/models/request_models"
	"lingua/internal/models/response_models"
	"lingua/internal/services"
	"lingua/pkg/utils"
)

type LessonController struct {
	lessonService services.LessonServiceInterface
}

func NewLessonController(lessonService services.LessonServiceInterface) *LessonController {
	return &LessonController{lessonService: lessonService}
}

// ListLessonsHandler godoc
// @Summary List lessons for a language and level
// @Tags Lessons
// @Produce json
// @Param language query string true "Language"
// @Param level query string true "Level"
// @Success 200 {object} map[string][]response_models.LessonResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/lessons [get]
func (l *LessonController) ListLessonsHandler(c *gin.Context) {
	var q request_models.LessonQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Language and level are required")
		return
	}

	lessons, err := l.lessonService.ListLessons(c.Request.Context(), q.Language, q.Level)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"lessons": lessons})
}

// CompleteLessonHandler marks a lesson done for the caller. Language and level come from the query.
func (l *LessonController) CompleteLessonHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.CompleteLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Lesson ID is required")
		return
	}

	next, err := l.lessonService.CompleteLesson(c.Request.Context(), userID, req.LessonID, c.Query("language"), c.Query("level"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response_models.CompleteLessonResponse{
		Message:      "Lesson marked as completed",
		NextLessonID: next,
	})
}

func (l *LessonController) NextLessonHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var q request_models.LessonQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Language and level are required")
		return
	}

	next, err := l.lessonService.NextLesson(c.Request.Context(), userID, q.Language, q.Level)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"nextLessonId": next})
}

// currentUserID reads the id set by the JWT middleware, answering 401 itself when it is unusable.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
		return uuid.Nil, false
	}
	return id, true
}
