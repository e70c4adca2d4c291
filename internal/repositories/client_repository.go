package repositories

import (
	"context"

	"gorm.io/gorm"

	"doramahub/internal/models/db_models"
)

type ClientRepository interface {
	FindAll(ctx context.Context) ([]db_models.Client, error)
	FindByPhone(ctx context.Context, phone string) ([]db_models.Client, error)
	FindByPhoneSuffix(ctx context.Context, digits string) ([]db_models.Client, error)
	Insert(ctx context.Context, client *db_models.Client) error
	Update(ctx context.Context, client *db_models.Client) error
	UpdatePassword(ctx context.Context, phone, password string) (int64, error)
	UpdateName(ctx context.Context, phone, name string) error
	SoftDelete(ctx context.Context, id string) error
	ResetAllPasswords(ctx context.Context, keepPhone string) error
}

type clientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) FindAll(ctx context.Context) ([]db_models.Client, error) {
	var clients []db_models.Client
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&clients).Error
	if err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *clientRepository) FindByPhone(ctx context.Context, phone string) ([]db_models.Client, error) {
	var clients []db_models.Client
	err := r.db.WithContext(ctx).
		Where("phone_number = ?", phone).
		Order("created_at ASC").
		Find(&clients).Error
	if err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *clientRepository) FindByPhoneSuffix(ctx context.Context, digits string) ([]db_models.Client, error) {
	var clients []db_models.Client
	err := r.db.WithContext(ctx).
		Where("phone_number LIKE ?", "%"+digits).
		Find(&clients).Error
	if err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *clientRepository) Insert(ctx context.Context, client *db_models.Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

func (r *clientRepository) Update(ctx context.Context, client *db_models.Client) error {
	// created_at is never client-settable
	return r.db.WithContext(ctx).
		Model(client).
		Omit("created_at").
		Select("phone_number", "client_name", "client_password", "purchase_date",
			"duration_months", "subscriptions", "is_debtor", "is_contacted",
			"deleted", "override_expiration", "updated_at").
		Updates(client).Error
}

func (r *clientRepository) UpdatePassword(ctx context.Context, phone, password string) (int64, error) {
	tx := r.db.WithContext(ctx).
		Model(&db_models.Client{}).
		Where("phone_number = ?", phone).
		Update("client_password", password)
	return tx.RowsAffected, tx.Error
}

func (r *clientRepository) UpdateName(ctx context.Context, phone, name string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Client{}).
		Where("phone_number = ?", phone).
		Update("client_name", name).Error
}

func (r *clientRepository) SoftDelete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Client{}).
		Where("id = ?", id).
		Update("deleted", true).Error
}

func (r *clientRepository) ResetAllPasswords(ctx context.Context, keepPhone string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Client{}).
		Where("phone_number <> ?", keepPhone).
		Update("client_password", "").Error
}
