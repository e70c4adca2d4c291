package session_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"doramahub/internal/repositories"
	"doramahub/internal/services"
)

var Module = fx.Provide(
	provideSessionService, provideClientRepo)

func provideClientRepo(db *gorm.DB) repositories.ClientRepository {
	return repositories.NewClientRepository(db)
}

func provideSessionService(clientRepo repositories.ClientRepository, watchlist services.WatchlistServiceInterface) services.SessionServiceInterface {
	return services.NewSessionService(clientRepo, watchlist)
}
