package watchlist_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"doramahub/internal/repositories"
	"doramahub/internal/services"
	"doramahub/pkg/localcache"
)

var Module = fx.Provide(
	provideWatchlistService, provideWatchlistRepo)

func provideWatchlistRepo(db *gorm.DB) repositories.WatchlistRepository {
	return repositories.NewWatchlistRepository(db)
}

func provideWatchlistService(repo repositories.WatchlistRepository, cache localcache.SnapshotStore) services.WatchlistServiceInterface {
	return services.NewWatchlistService(repo, cache)
}
