package services

import (
	"context"
	"encoding/json"
	"log"

	"doramahub/internal/models/response_models"
	"doramahub/internal/repositories"
	"doramahub/pkg/utils"
)

// ConfigServiceInterface reads and writes the global banner/service-status
// singleton. Get never fails: a broken or missing row yields the default
// config so the dashboard always renders.
type ConfigServiceInterface interface {
	Get(ctx context.Context) response_models.SystemConfig
	Save(ctx context.Context, cfg response_models.SystemConfig) error
}

type ConfigService struct {
	credRepo repositories.CredentialRepository
}

func NewConfigService(credRepo repositories.CredentialRepository) ConfigServiceInterface {
	return &ConfigService{credRepo: credRepo}
}

func (s *ConfigService) Get(ctx context.Context) response_models.SystemConfig {
	row, err := s.credRepo.FindConfigRow(ctx)
	if err != nil {
		log.Printf("config fetch failed, using defaults: %v", err)
		return response_models.DefaultSystemConfig()
	}
	if row == nil || row.Email == "" {
		return response_models.DefaultSystemConfig()
	}

	var cfg response_models.SystemConfig
	if err := json.Unmarshal([]byte(row.Email), &cfg); err != nil {
		log.Printf("config row is not valid JSON, using defaults: %v", err)
		return response_models.DefaultSystemConfig()
	}
	return cfg
}

func (s *ConfigService) Save(ctx context.Context, cfg response_models.SystemConfig) error {
	payload, err := json.Marshal(cfg)
	if err != nil {
		return utils.ErrInvalidInput
	}
	if err := s.credRepo.UpsertConfigRow(ctx, string(payload)); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
