package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"trivia/internal/models/response_models"
	"trivia/pkg/utils"
)

type StatusController struct{}

func NewStatusController() *StatusController {
	return &StatusController{}
}

// Status godoc
// @Summary Liveness probe
// @Tags Status
// @Produce json
// @Success 200 {object} response_models.StatusResponse
// @Router /status [get]
func (s *StatusController) Status(c *gin.Context) {
	utils.RespondSuccess(c, http.StatusOK, response_models.StatusResponse{Status: "ok"})
}
