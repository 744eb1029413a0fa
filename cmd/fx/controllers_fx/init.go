package controllers_fx

import (
	"go.uber.org/fx"
	"trivia/internal/api"
	"trivia/internal/api/controllers"
	"trivia/internal/config"
	"trivia/internal/services"
)

var Module = fx.Options(
	fx.Provide(controllers.NewStatusController),
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewCategoryController),
	fx.Provide(provideClueController),
	fx.Provide(provideControllers))

func provideClueController(cfg *config.Config, clueService services.ClueServiceInterface) *controllers.ClueController {
	return controllers.NewClueController(clueService, cfg.RandomClues)
}

func provideControllers(
	status *controllers.StatusController,
	auth *controllers.AuthController,
	category *controllers.CategoryController,
	clue *controllers.ClueController) api.Controllers {

	return api.Controllers{
		Status:   status,
		Auth:     auth,
		Category: category,
		Clue:     clue,
	}
}
