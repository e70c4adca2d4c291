package localcache

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"

	"doramahub/internal/models/response_models"
)

const (
	ListWatching   = "watching"
	ListFavorites  = "favorites"
	ListCompleted  = "completed"
	snapshotPrefix = "dorama_user_"
	snapshotSuffix = ".json"
)

// SnapshotStore keeps the last known watch-list partition per normalized
// phone number. It is the fallback when the remote store is unreachable and
// the staging area for optimistic writes. Callers must pass cleaned phones.
type SnapshotStore interface {
	Get(phone string) response_models.WatchCollections
	Put(phone string, snap response_models.WatchCollections)

	// Append adds an item to one of the three lists, first dropping any
	// existing entry in that list with the same id or the same title, so a
	// retried optimistic add never duplicates.
	Append(phone, listType string, item response_models.WatchItem) response_models.WatchCollections
}

type WatchSnapshots struct {
	mu   sync.Mutex
	dir  string
	data map[string]response_models.WatchCollections
}

// NewWatchSnapshots builds a store. dir may be empty for memory-only
// operation; otherwise each phone gets one JSON file under dir.
func NewWatchSnapshots(dir string) *WatchSnapshots {
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Printf("snapshot dir unavailable, falling back to memory only: %v", err)
			dir = ""
		}
	}
	return &WatchSnapshots{
		dir:  dir,
		data: make(map[string]response_models.WatchCollections),
	}
}

func (s *WatchSnapshots) Get(phone string) response_models.WatchCollections {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(phone)
}

func (s *WatchSnapshots) Put(phone string, snap response_models.WatchCollections) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[phone] = snap
	s.persistLocked(phone, snap)
}

func (s *WatchSnapshots) Append(phone, listType string, item response_models.WatchItem) response_models.WatchCollections {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.loadLocked(phone)
	list := selectList(&snap, listType)

	kept := make([]response_models.WatchItem, 0, len(*list)+1)
	for _, existing := range *list {
		if existing.ID == item.ID || existing.Title == item.Title {
			continue
		}
		kept = append(kept, existing)
	}
	*list = append(kept, item)

	s.data[phone] = snap
	s.persistLocked(phone, snap)
	return snap
}

// loadLocked reads memory first, then disk. A missing or unreadable
// snapshot is an empty partition, never an error.
func (s *WatchSnapshots) loadLocked(phone string) response_models.WatchCollections {
	if snap, ok := s.data[phone]; ok {
		return snap
	}

	var snap response_models.WatchCollections
	if s.dir != "" {
		raw, err := os.ReadFile(s.path(phone))
		if err == nil {
			if err := json.Unmarshal(raw, &snap); err != nil {
				log.Printf("discarding corrupt snapshot for %s: %v", phone, err)
				snap = response_models.WatchCollections{}
			}
		}
	}
	s.data[phone] = snap
	return snap
}

func (s *WatchSnapshots) persistLocked(phone string, snap response_models.WatchCollections) {
	if s.dir == "" {
		return
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		log.Printf("marshal snapshot for %s: %v", phone, err)
		return
	}
	if err := os.WriteFile(s.path(phone), raw, 0o644); err != nil {
		log.Printf("persist snapshot for %s: %v", phone, err)
	}
}

func (s *WatchSnapshots) path(phone string) string {
	return filepath.Join(s.dir, snapshotPrefix+phone+snapshotSuffix)
}

func selectList(snap *response_models.WatchCollections, listType string) *[]response_models.WatchItem {
	switch listType {
	case ListWatching:
		return &snap.Watching
	case ListCompleted:
		return &snap.Completed
	default:
		return &snap.PlanToWatch
	}
}
