package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"trivia/internal/models/request_models"
	"trivia/internal/services"
	"trivia/pkg/utils"
)

type ClueController struct {
	clueService     services.ClueServiceInterface
	randomByDefault bool
}

func NewClueController(clueService services.ClueServiceInterface, randomByDefault bool) *ClueController {
	return &ClueController{
		clueService:     clueService,
		randomByDefault: randomByDefault,
	}
}

// ListClues godoc
// @Summary List clues
// @Description Clues in id order or shuffled, optionally capped
// @Tags Clues
// @Produce json
// @Param count query int false "Maximum number of clues" minimum(1) maximum(100)
// @Param random query bool false "Shuffle the clues"
// @Success 200 {array} response_models.ClueResponse
// @Failure 400 {object} utils.APIError
// @Router /clues [get]
func (cc *ClueController) ListClues(c *gin.Context) {
	var query request_models.ListCluesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query: count must be 1-100 and random a boolean")
		return
	}

	limit := 0
	if query.Count != nil {
		limit = *query.Count
	}
	random := cc.randomByDefault
	if query.Random != nil {
		random = *query.Random
	}

	clues, err := cc.clueService.ListClues(c.Request.Context(), limit, random)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, clues)
}

// GetClue godoc
// @Summary Get a clue
// @Tags Clues
// @Produce json
// @Param id path int true "Clue ID"
// @Success 200 {object} response_models.ClueResponse
// @Failure 404 {object} utils.APIError
// @Router /clues/{id} [get]
func (cc *ClueController) GetClue(c *gin.Context) {
	var param request_models.ClueIDParam
	if !bindID(c, &param) {
		return
	}

	clue, err := cc.clueService.GetClue(c.Request.Context(), param.ID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, clue)
}

// CreateClue godoc
// @Summary Create one or many clues
// @Description Accepts a single clue or an array; an array is stored all-or-nothing
// @Tags Clues
// @Accept json
// @Produce json
// @Param request body request_models.CreateClueRequest true "Clue payload (or array of them)"
// @Success 201 {object} response_models.ClueResponse
// @Failure 400 {object} utils.APIError
// @Failure 404 {object} utils.APIError
// @Security BearerAuth
// @Router /clues [post]
func (cc *ClueController) CreateClue(c *gin.Context) {
	var (
		one  request_models.CreateClueRequest
		many []request_models.CreateClueRequest
	)
	isList, ok := bindOneOrMany(c, &one, &many)
	if !ok {
		return
	}

	if isList {
		clues, err := cc.clueService.CreateClues(c.Request.Context(), many)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, http.StatusCreated, clues)
		return
	}

	clue, err := cc.clueService.CreateClue(c.Request.Context(), one)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, clue)
}

// UpdateClue godoc
// @Summary Update a clue
// @Description Only the supplied fields change
// @Tags Clues
// @Accept json
// @Produce json
// @Param id path int true "Clue ID"
// @Param request body request_models.UpdateClueRequest true "Fields to change"
// @Success 200 {object} response_models.ClueResponse
// @Failure 400 {object} utils.APIError
// @Failure 404 {object} utils.APIError
// @Security BearerAuth
// @Router /clues/{id} [put]
func (cc *ClueController) UpdateClue(c *gin.Context) {
	var param request_models.ClueIDParam
	if !bindID(c, &param) {
		return
	}

	var req request_models.UpdateClueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindError(c, http.StatusUnprocessableEntity, err)
		return
	}

	clue, err := cc.clueService.UpdateClue(c.Request.Context(), param.ID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, clue)
}

// DeleteClue godoc
// @Summary Delete a clue
// @Tags Clues
// @Produce json
// @Param id path int true "Clue ID"
// @Success 200 {object} response_models.ClueDeletedResponse
// @Failure 404 {object} utils.APIError
// @Security BearerAuth
// @Router /clues/{id} [delete]
func (cc *ClueController) DeleteClue(c *gin.Context) {
	var param request_models.ClueIDParam
	if !bindID(c, &param) {
		return
	}

	deleted, err := cc.clueService.DeleteClue(c.Request.Context(), param.ID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, deleted)
}
