package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"lingua/pkg/utils"
)

// bindOptionalJSON binds the body into obj, treating an empty body as empty fields.
// A malformed body gets a 400 and false.
func bindOptionalJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return false
	}
	return true
}
