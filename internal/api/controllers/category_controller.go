package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"trivia/internal/models/request_models"
	"trivia/internal/services"
	"trivia/pkg/utils"
)

type CategoryController struct {
	categoryService services.CategoryServiceInterface
	clueService     services.ClueServiceInterface
	gameService     services.GameServiceInterface
}

func NewCategoryController(
	categoryService services.CategoryServiceInterface,
	clueService services.ClueServiceInterface,
	gameService services.GameServiceInterface) *CategoryController {

	return &CategoryController{
		categoryService: categoryService,
		clueService:     clueService,
		gameService:     gameService,
	}
}

// ListCategories godoc
// @Summary List categories
// @Description Categories ordered by id, optionally capped
// @Tags Categories
// @Produce json
// @Param count query int false "Maximum number of categories" minimum(1) maximum(100)
// @Success 200 {array} response_models.CategoryResponse
// @Failure 400 {object} utils.APIError
// @Router /categories [get]
func (cc *CategoryController) ListCategories(c *gin.Context) {
	var query request_models.ListCategoriesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid count (must be 1-100)")
		return
	}

	limit := 0
	if query.Count != nil {
		limit = *query.Count
	}

	categories, err := cc.categoryService.ListCategories(c.Request.Context(), limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, categories)
}

// GetCategory godoc
// @Summary Get a category
// @Tags Categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} response_models.CategoryResponse
// @Failure 404 {object} utils.APIError
// @Router /categories/{id} [get]
func (cc *CategoryController) GetCategory(c *gin.Context) {
	var param request_models.CategoryIDParam
	if !bindID(c, &param) {
		return
	}

	category, err := cc.categoryService.GetCategory(c.Request.Context(), param.ID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, category)
}

// CreateCategory godoc
// @Summary Create one or many categories
// @Description Accepts a single category or an array; an array is stored all-or-nothing
// @Tags Categories
// @Accept json
// @Produce json
// @Param request body request_models.CreateCategoryRequest true "Category payload (or array of them)"
// @Success 201 {object} response_models.CategoryResponse
// @Failure 400 {object} utils.APIError
// @Security BearerAuth
// @Router /categories [post]
func (cc *CategoryController) CreateCategory(c *gin.Context) {
	var (
		one  request_models.CreateCategoryRequest
		many []request_models.CreateCategoryRequest
	)
	isList, ok := bindOneOrMany(c, &one, &many)
	if !ok {
		return
	}

	if isList {
		categories, err := cc.categoryService.CreateCategories(c.Request.Context(), many)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, http.StatusCreated, categories)
		return
	}

	category, err := cc.categoryService.CreateCategory(c.Request.Context(), one)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, category)
}

// UpdateCategory godoc
// @Summary Rename a category
// @Tags Categories
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param request body request_models.UpdateCategoryRequest true "New name"
// @Success 200 {object} response_models.CategoryResponse
// @Failure 400 {object} utils.APIError
// @Failure 404 {object} utils.APIError
// @Security BearerAuth
// @Router /categories/{id} [put]
func (cc *CategoryController) UpdateCategory(c *gin.Context) {
	var param request_models.CategoryIDParam
	if !bindID(c, &param) {
		return
	}

	var req request_models.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindError(c, http.StatusUnprocessableEntity, err)
		return
	}

	category, err := cc.categoryService.UpdateCategory(c.Request.Context(), param.ID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, category)
}

// DeleteCategory godoc
// @Summary Delete a category
// @Description Only categories without clues can be deleted
// @Tags Categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} response_models.CategoryDeletedResponse
// @Failure 400 {object} utils.APIError
// @Failure 404 {object} utils.APIError
// @Security BearerAuth
// @Router /categories/{id} [delete]
func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	var param request_models.CategoryIDParam
	if !bindID(c, &param) {
		return
	}

	deleted, err := cc.categoryService.DeleteCategory(c.Request.Context(), param.ID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, deleted)
}

// ListCategoryClues godoc
// @Summary List the clues of a category
// @Tags Categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {array} response_models.ClueResponse
// @Failure 404 {object} utils.APIError
// @Router /categories/{id}/clues [get]
func (cc *CategoryController) ListCategoryClues(c *gin.Context) {
	var param request_models.CategoryIDParam
	if !bindID(c, &param) {
		return
	}

	clues, err := cc.clueService.ListCluesByCategory(c.Request.Context(), param.ID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, clues)
}

// StartGame godoc
// @Summary Draw a game board
// @Description One random clue for each of 100, 200, 300, 400 and 500 points
// @Tags Categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {array} response_models.ClueResponse
// @Failure 404 {object} utils.APIError
// @Router /categories/{id}/start_game [get]
func (cc *CategoryController) StartGame(c *gin.Context) {
	var param request_models.CategoryIDParam
	if !bindID(c, &param) {
		return
	}

	board, err := cc.gameService.StartGame(c.Request.Context(), param.ID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, board)
}
