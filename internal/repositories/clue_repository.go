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

// randomOrder is understood by both postgres and sqlite.
const randomOrder = "RANDOM()"

type ClueRepository interface {
	List(ctx context.Context, limit int, random bool) ([]db_models.Clue, error)
	ListByCategory(ctx context.Context, categoryID uint) ([]db_models.Clue, error)
	FindByID(ctx context.Context, id uint) (*db_models.Clue, error)
	FindRandom(ctx context.Context, categoryID uint, value int) (*db_models.Clue, error)
	Create(ctx context.Context, clue *db_models.Clue) error
	CreateMany(ctx context.Context, clues []db_models.Clue) error
	Update(ctx context.Context, id uint, fields map[string]interface{}) (*db_models.Clue, error)
	Delete(ctx context.Context, id uint) (*db_models.Clue, error)
}

type clueRepository struct {
	db *gorm.DB
}

func NewClueRepository(db *gorm.DB) ClueRepository {
	return &clueRepository{db: db}
}

func (r *clueRepository) List(ctx context.Context, limit int, random bool) ([]db_models.Clue, error) {
	var clues []db_models.Clue
	q := r.db.WithContext(ctx)
	if random {
		q = q.Order(randomOrder)
	} else {
		q = q.Order("id ASC")
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&clues).Error; err != nil {
		return nil, err
	}
	return clues, nil
}

func (r *clueRepository) ListByCategory(ctx context.Context, categoryID uint) ([]db_models.Clue, error) {
	var clues []db_models.Clue
	err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("value ASC").
		Order("id ASC").
		Find(&clues).Error
	if err != nil {
		return nil, err
	}
	return clues, nil
}

func (r *clueRepository) FindByID(ctx context.Context, id uint) (*db_models.Clue, error) {
	return findClue(r.db.WithContext(ctx), id)
}

// FindRandom picks one clue of the given value in the category, or nil when there is none.
func (r *clueRepository) FindRandom(ctx context.Context, categoryID uint, value int) (*db_models.Clue, error) {
	var clue db_models.Clue
	err := r.db.WithContext(ctx).
		Where("category_id = ? AND value = ?", categoryID, value).
		Order(randomOrder).
		Take(&clue).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &clue, nil
}

func (r *clueRepository) Create(ctx context.Context, clue *db_models.Clue) error {
	err := r.db.WithContext(ctx).Create(clue).Error
	return translate(err, utils.ErrClueValueTaken, utils.ErrCategoryNotFound)
}

// CreateMany inserts all clues or none of them. A value collision names
// the category and value.
func (r *clueRepository) CreateMany(ctx context.Context, clues []db_models.Clue) (err error) {
	tx, err := infra.StartTransaction(ctx, r.db)
	if err != nil {
		return err
	}
	defer func() { err = infra.ReleaseTransaction(tx, err) }()

	for i := range clues {
		if err = tx.Create(&clues[i]).Error; err != nil {
			err = translate(err, utils.ErrClueValueTaken, utils.ErrCategoryNotFound)
			if errors.Is(err, utils.ErrClueValueTaken) {
				err = fmt.Errorf("%w: category %d, value %d", err, clues[i].CategoryID, clues[i].Value)
			}
			return err
		}
	}
	return nil
}

// Update applies only the given columns and returns the stored row.
func (r *clueRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (*db_models.Clue, error) {
	var updated *db_models.Clue
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		clue, err := findClue(tx, id)
		if err != nil {
			return err
		}
		if clue == nil {
			return utils.ErrClueNotFound
		}
		if len(fields) == 0 {
			updated = clue
			return nil
		}

		if err := tx.Model(clue).Updates(fields).Error; err != nil {
			return translate(err, utils.ErrClueValueTaken, utils.ErrCategoryNotFound)
		}

		updated, err = findClue(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *clueRepository) Delete(ctx context.Context, id uint) (*db_models.Clue, error) {
	var deleted *db_models.Clue
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		clue, err := findClue(tx, id)
		if err != nil {
			return err
		}
		if clue == nil {
			return utils.ErrClueNotFound
		}

		if err := tx.Delete(&db_models.Clue{}, id).Error; err != nil {
			return err
		}
		deleted = clue
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

func findClue(db *gorm.DB, id uint) (*db_models.Clue, error) {
	var clue db_models.Clue
	err := db.First(&clue, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &clue, nil
}
