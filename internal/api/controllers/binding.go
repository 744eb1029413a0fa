package controllers

import (
	"bytes"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"net/http"
	"trivia/pkg/utils"
)

// bindOneOrMany decodes a JSON object into one, or a JSON array into many,
// validating every element. It reports whether the body was an array.
func bindOneOrMany[T any](c *gin.Context, one *T, many *[]T) (bool, bool) {
	body, err := c.GetRawData()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Could not read request body")
		return false, false
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := binding.JSON.BindBody(trimmed, many); err != nil {
			utils.RespondBindError(c, http.StatusUnprocessableEntity, err)
			return true, false
		}
		return true, true
	}

	if err := binding.JSON.BindBody(trimmed, one); err != nil {
		utils.RespondBindError(c, http.StatusUnprocessableEntity, err)
		return false, false
	}
	return false, true
}

func bindID[T any](c *gin.Context, param *T) bool {
	if err := c.ShouldBindUri(param); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid id: must be a positive integer")
		return false
	}
	return true
}
