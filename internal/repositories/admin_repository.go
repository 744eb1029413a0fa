package repositories

import (
	"context"
	"errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"trivia/internal/models/db_models"
)

type AdminRepository interface {
	FindByUsername(ctx context.Context, username string) (*db_models.Admin, error)
	Replace(ctx context.Context, admin *db_models.Admin) error
	DeleteAll(ctx context.Context) error
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (a *adminRepository) FindByUsername(ctx context.Context, username string) (*db_models.Admin, error) {
	var admin db_models.Admin
	err := a.db.WithContext(ctx).First(&admin, "username = ?", username).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &admin, nil
}

// Replace makes admin the only stored identity. An existing row with the
// same username keeps its id and gets the new password hash.
func (a *adminRepository) Replace(ctx context.Context, admin *db_models.Admin) error {
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("username <> ?", admin.Username).Delete(&db_models.Admin{}).Error; err != nil {
			return err
		}

		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "username"}},
			DoUpdates: clause.AssignmentColumns([]string{"password_hash", "updated_at"}),
		}).Create(admin).Error
	})
}

func (a *adminRepository) DeleteAll(ctx context.Context) error {
	return a.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&db_models.Admin{}).Error
}
