package clue_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"trivia/internal/repositories"
	"trivia/internal/services"
)

var Module = fx.Provide(
	provideClueRepo, provideClueService, provideGameService)

func provideClueRepo(db *gorm.DB) repositories.ClueRepository {
	return repositories.NewClueRepository(db)
}

func provideClueService(clueRepo repositories.ClueRepository, categoryRepo repositories.CategoryRepository) services.ClueServiceInterface {
	return services.NewClueService(clueRepo, categoryRepo)
}

func provideGameService(clueRepo repositories.ClueRepository, categoryRepo repositories.CategoryRepository) services.GameServiceInterface {
	return services.NewGameService(clueRepo, categoryRepo)
}
