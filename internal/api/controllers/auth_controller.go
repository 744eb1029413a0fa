package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"trivia/internal/models/request_models"
	"trivia/internal/services"
	"trivia/pkg/utils"
)

type AuthController struct {
	authService services.AuthServiceInterface
}

func NewAuthController(authService services.AuthServiceInterface) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Login godoc
// @Summary Obtain an admin token
// @Description Exchanges the admin username and password for a bearer token
// @Tags Auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Admin username"
// @Param password formData string true "Admin password"
// @Success 200 {object} response_models.TokenResponse
// @Failure 400 {object} utils.APIError
// @Router /login [post]
func (a *AuthController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondBindError(c, http.StatusUnprocessableEntity, err)
		return
	}

	token, err := a.authService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, token)
}
