package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"trivia/internal/api/controllers"
	"trivia/internal/config"
	"trivia/internal/services"
	"trivia/pkg/middleware"
)

type Controllers struct {
	Status   *controllers.StatusController
	Auth     *controllers.AuthController
	Category *controllers.CategoryController
	Clue     *controllers.ClueController
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	authService services.AuthServiceInterface,
	ctrl Controllers) *gin.Engine {

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Recovery())
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	RegisterRoutes(r, cfg.Auth, authService, ctrl)

	return r
}

// RegisterRoutes wires every endpoint. Admin gating is decided per route from cfg.
func RegisterRoutes(r *gin.Engine,
	cfg config.Auth,
	authService services.AuthServiceInterface,
	ctrl Controllers) {

	admin := middleware.AdminGate(authService)
	mutation := middleware.Gate(cfg.GateMutations, admin)
	clueListing := middleware.Gate(cfg.GateClueListing, admin)

	r.GET("/status", ctrl.Status.Status)
	r.POST("/login", ctrl.Auth.Login)

	categories := r.Group("/categories")
	categories.GET("", ctrl.Category.ListCategories)
	categories.POST("", mutation, ctrl.Category.CreateCategory)
	categories.GET("/:id", ctrl.Category.GetCategory)
	categories.PUT("/:id", mutation, ctrl.Category.UpdateCategory)
	categories.DELETE("/:id", mutation, ctrl.Category.DeleteCategory)
	categories.GET("/:id/clues", ctrl.Category.ListCategoryClues)
	categories.GET("/:id/start_game", ctrl.Category.StartGame)

	clues := r.Group("/clues")
	clues.GET("", clueListing, ctrl.Clue.ListClues)
	clues.POST("", mutation, ctrl.Clue.CreateClue)
	clues.GET("/:id", ctrl.Clue.GetClue)
	clues.PUT("/:id", mutation, ctrl.Clue.UpdateClue)
	clues.DELETE("/:id", mutation, ctrl.Clue.DeleteClue)
}
