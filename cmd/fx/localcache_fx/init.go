package localcache_fx

import (
	"os"

	"go.uber.org/fx"

	"doramahub/pkg/localcache"
)

var Module = fx.Provide(
	provideSnapshotStore)

// CACHE_DIR empty means memory-only snapshots.
func provideSnapshotStore() localcache.SnapshotStore {
	return localcache.NewWatchSnapshots(os.Getenv("CACHE_DIR"))
}
