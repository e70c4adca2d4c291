package repositories

import (
	"context"

	"gorm.io/gorm"

	"doramahub/internal/models/db_models"
)

type WatchlistRepository interface {
	FindByPhones(ctx context.Context, phones []string) ([]db_models.WatchEntry, error)
	Insert(ctx context.Context, entry *db_models.WatchEntry) error
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

type watchlistRepository struct {
	db *gorm.DB
}

func NewWatchlistRepository(db *gorm.DB) WatchlistRepository {
	return &watchlistRepository{db: db}
}

func (r *watchlistRepository) FindByPhones(ctx context.Context, phones []string) ([]db_models.WatchEntry, error) {
	var entries []db_models.WatchEntry
	err := r.db.WithContext(ctx).
		Where("phone_number IN ?", phones).
		Order("created_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *watchlistRepository) Insert(ctx context.Context, entry *db_models.WatchEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *watchlistRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&db_models.WatchEntry{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *watchlistRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&db_models.WatchEntry{}).Error
}
