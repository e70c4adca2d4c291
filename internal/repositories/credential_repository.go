package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"doramahub/internal/models/db_models"
)

type CredentialRepository interface {
	FindVisibleByService(ctx context.Context, service string) ([]db_models.Credential, error)
	FindVisibleMatching(ctx context.Context, service string) ([]db_models.Credential, error)
	FindConfigRow(ctx context.Context) (*db_models.Credential, error)
	UpsertConfigRow(ctx context.Context, payload string) error
}

type credentialRepository struct {
	db *gorm.DB
}

func NewCredentialRepository(db *gorm.DB) CredentialRepository {
	return &credentialRepository{db: db}
}

func (r *credentialRepository) FindVisibleByService(ctx context.Context, service string) ([]db_models.Credential, error) {
	var creds []db_models.Credential
	err := r.db.WithContext(ctx).
		Where("LOWER(service) = LOWER(?)", service).
		Where("service <> ?", db_models.SystemConfigService).
		Where("is_visible = ?", true).
		Order("published_at ASC").
		Find(&creds).Error
	if err != nil {
		return nil, err
	}
	return creds, nil
}

func (r *credentialRepository) FindVisibleMatching(ctx context.Context, service string) ([]db_models.Credential, error) {
	var creds []db_models.Credential
	err := r.db.WithContext(ctx).
		Where("service ILIKE ?", "%"+service+"%").
		Where("service <> ?", db_models.SystemConfigService).
		Where("is_visible = ?", true).
		Order("published_at ASC").
		Find(&creds).Error
	if err != nil {
		return nil, err
	}
	return creds, nil
}

func (r *credentialRepository) FindConfigRow(ctx context.Context) (*db_models.Credential, error) {
	var row db_models.Credential
	err := r.db.WithContext(ctx).
		First(&row, "service = ?", db_models.SystemConfigService).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *credentialRepository) UpsertConfigRow(ctx context.Context, payload string) error {
	existing, err := r.FindConfigRow(ctx)
	if err != nil {
		return err
	}

	if existing != nil {
		// map updates skip the BaseModel hook, so stamp updated_at here
		return r.db.WithContext(ctx).
			Model(existing).
			Updates(map[string]interface{}{
				"email":        payload,
				"published_at": time.Now().Unix(),
				"updated_at":   time.Now().Unix(),
			}).Error
	}

	row := &db_models.Credential{
		Service:     db_models.SystemConfigService,
		Email:       payload,
		Password:    "CONFIG_IGNORED",
		IsVisible:   false,
		PublishedAt: time.Now().Unix(),
	}
	return r.db.WithContext(ctx).Create(row).Error
}
