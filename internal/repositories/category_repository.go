package repositories

import (
	"context"
	"errors"
	"fmt"
	"gorm.io/gorm"
	"trivia/internal/infra"
	"trivia/internal/models/db_models"
	"trivia/pkg/utils"
)

type CategoryRepository interface {
	List(ctx context.Context, limit int) ([]db_models.Category, error)
	FindByID(ctx context.Context, id uint) (*db_models.Category, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, category *db_models.Category) error
	CreateMany(ctx context.Context, categories []db_models.Category) error
	UpdateName(ctx context.Context, id uint, name string) (*db_models.Category, error)
	Delete(ctx context.Context, id uint) (*db_models.Category, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// List returns categories by ascending id. A limit of zero means no cap.
func (r *categoryRepository) List(ctx context.Context, limit int) ([]db_models.Category, error) {
	var categories []db_models.Category
	q := r.db.WithContext(ctx).Order("id ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) FindByID(ctx context.Context, id uint) (*db_models.Category, error) {
	return findCategory(r.db.WithContext(ctx), id)
}

func (r *categoryRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.Category{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *categoryRepository) Create(ctx context.Context, category *db_models.Category) error {
	err := r.db.WithContext(ctx).Create(category).Error
	return translate(err, utils.ErrCategoryNameTaken, nil)
}

// CreateMany inserts all categories or none of them. A duplicate name is
// reported with the name that collided.
func (r *categoryRepository) CreateMany(ctx context.Context, categories []db_models.Category) (err error) {
	tx, err := infra.StartTransaction(ctx, r.db)
	if err != nil {
		return err
	}
	defer func() { err = infra.ReleaseTransaction(tx, err) }()

	for i := range categories {
		if err = tx.Create(&categories[i]).Error; err != nil {
			err = translate(err, utils.ErrCategoryNameTaken, nil)
			if errors.Is(err, utils.ErrCategoryNameTaken) {
				err = fmt.Errorf("%w: %q", err, categories[i].Name)
			}
			return err
		}
	}
	return nil
}

func (r *categoryRepository) UpdateName(ctx context.Context, id uint, name string) (*db_models.Category, error) {
	var updated *db_models.Category
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		category, err := findCategory(tx, id)
		if err != nil {
			return err
		}
		if category == nil {
			return utils.ErrCategoryNotFound
		}

		if err := tx.Model(category).Update("name", name).Error; err != nil {
			return translate(err, utils.ErrCategoryNameTaken, nil)
		}
		category.Name = name
		updated = category
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a category that no clue references.
func (r *categoryRepository) Delete(ctx context.Context, id uint) (*db_models.Category, error) {
	var deleted *db_models.Category
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		category, err := findCategory(tx, id)
		if err != nil {
			return err
		}
		if category == nil {
			return utils.ErrCategoryNotFound
		}

		var clues int64
		if err := tx.Model(&db_models.Clue{}).Where("category_id = ?", id).Count(&clues).Error; err != nil {
			return err
		}
		if clues > 0 {
			return utils.ErrCategoryHasClues
		}

		if err := tx.Delete(&db_models.Category{}, id).Error; err != nil {
			return translate(err, nil, utils.ErrCategoryHasClues)
		}
		deleted = category
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

func findCategory(db *gorm.DB, id uint) (*db_models.Category, error) {
	var category db_models.Category
	err := db.First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}
