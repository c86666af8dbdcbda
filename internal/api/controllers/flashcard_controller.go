package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lingua/internal/models/request_models"
	"lingua/internal/services"
	"lingua/pkg/utils"
)

type FlashcardController struct {
	flashcardService services.FlashcardServiceInterface
}

func NewFlashcardController(flashcardService services.FlashcardServiceInterface) *FlashcardController {
	return &FlashcardController{flashcardService: flashcardService}
}

// POST /api/flashcards
func (f *FlashcardController) GetFlashcardsHandler(c *gin.Context) {
	var req request_models.FlashcardRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	cards, err := f.flashcardService.GetFlashcards(c.Request.Context(), req.Language)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, cards)
}
