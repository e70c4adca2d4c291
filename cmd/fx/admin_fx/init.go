package admin_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"doramahub/internal/repositories"
	"doramahub/internal/services"
)

var Module = fx.Provide(
	provideAdminRepo, provideAdminService)

func provideAdminRepo(db *gorm.DB) repositories.AdminRepository {
	return repositories.NewAdminRepository(db)
}

func provideAdminService(adminRepo repositories.AdminRepository, clientRepo repositories.ClientRepository) services.AdminServiceInterface {
	return services.NewAdminService(adminRepo, clientRepo)
}
