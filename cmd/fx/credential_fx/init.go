package credential_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"doramahub/internal/repositories"
	"doramahub/internal/services"
)

var Module = fx.Provide(
	provideCredentialRepo, provideCredentialService, provideConfigService)

func provideCredentialRepo(db *gorm.DB) repositories.CredentialRepository {
	return repositories.NewCredentialRepository(db)
}

func provideCredentialService(credRepo repositories.CredentialRepository) services.CredentialServiceInterface {
	return services.NewCredentialService(credRepo)
}

func provideConfigService(credRepo repositories.CredentialRepository) services.ConfigServiceInterface {
	return services.NewConfigService(credRepo)
}
