package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lingua/internal/models/request_models"
	"lingua/internal/services"
	"lingua/pkg/utils"
)

type ContentController struct {
	contentService services.ContentServiceInterface
}

func NewContentController(contentService services.ContentServiceInterface) *ContentController {
	return &ContentController{
		contentService: contentService,
	}
}

// GenerateContentHandler godoc
// @Summary Generate a 5-day course
// @Description Ask the model for days, lessons, quizzes, flashcards and a dialogue for a language and level
// @Tags AI
// @Accept json
// @Produce json
// @Param request body request_models.GenerationRequest true "Language and level"
// @Success 200 {object} map[string]response_models.GeneratedCourse
// @Failure 400 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /api/ai/generate [post]
func (p *ContentController) GenerateContentHandler(c *gin.Context) {
	var req request_models.GenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Language and level are required.")
		return
	}

	content, err := p.contentService.GenerateCourse(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"content": content})
}
