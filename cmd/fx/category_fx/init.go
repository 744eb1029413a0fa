package category_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"trivia/internal/repositories"
	"trivia/internal/services"
)

var Module = fx.Provide(
	provideCategoryRepo, provideCategoryService)

func provideCategoryRepo(db *gorm.DB) repositories.CategoryRepository {
	return repositories.NewCategoryRepository(db)
}

func provideCategoryService(categoryRepo repositories.CategoryRepository) services.CategoryServiceInterface {
	return services.NewCategoryService(categoryRepo)
}
