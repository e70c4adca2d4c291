package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"doramahub/internal/models/db_models"
)

type AdminRepository interface {
	FindByUsername(ctx context.Context, username string) (*db_models.AdminUser, error)
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) FindByUsername(ctx context.Context, username string) (*db_models.AdminUser, error) {
	var admin db_models.AdminUser
	err := r.db.WithContext(ctx).First(&admin, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}
