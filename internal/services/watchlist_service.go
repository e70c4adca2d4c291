package services

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	"doramahub/internal/models/db_models"
	"doramahub/internal/models/request_models"
	"doramahub/internal/models/response_models"
	"doramahub/internal/repositories"
	"doramahub/pkg/localcache"
	"doramahub/pkg/utils"
)

const localIDPrefix = "local-"

// IsLocalID reports whether an entry id is a client-generated placeholder
// that never reached the remote store.
func IsLocalID(id string) bool {
	return strings.HasPrefix(id, localIDPrefix) || strings.HasPrefix(id, "temp-")
}

// WatchlistServiceInterface reconciles the remote watch-list table with the
// per-phone local snapshot. The remote store wins when reachable; the
// snapshot keeps the dashboard working when it is not. None of these
// operations surface errors to callers.
type WatchlistServiceInterface interface {
	Read(ctx context.Context, phone string) response_models.WatchCollections
	Add(ctx context.Context, phone string, req request_models.AddWatchEntryRequest) response_models.WatchItem
	Update(ctx context.Context, id string, req request_models.UpdateWatchEntryRequest) bool
	Delete(ctx context.Context, id string) bool
}

type WatchlistService struct {
	repo  repositories.WatchlistRepository
	cache localcache.SnapshotStore
}

func NewWatchlistService(repo repositories.WatchlistRepository, cache localcache.SnapshotStore) WatchlistServiceInterface {
	return &WatchlistService{repo: repo, cache: cache}
}

// Read queries the remote table under every known spelling of the phone
// number (rows were historically written with and without the country
// code). A non-empty remote result overwrites the local snapshot; anything
// else falls back to it.
func (s *WatchlistService) Read(ctx context.Context, phone string) response_models.WatchCollections {
	variants := utils.PhoneVariants(phone)
	clean := variants[0]

	entries, err := s.repo.FindByPhones(ctx, variants)
	if err != nil {
		log.Printf("watchlist fetch failed for %s, serving snapshot: %v", clean, err)
		return s.cache.Get(clean)
	}
	if len(entries) == 0 {
		return s.cache.Get(clean)
	}

	var snap response_models.WatchCollections
	for _, entry := range entries {
		item := toWatchItem(entry)
		switch item.Status {
		case db_models.WatchStatusWatching:
			snap.Watching = append(snap.Watching, item)
		case db_models.WatchStatusCompleted:
			snap.Completed = append(snap.Completed, item)
		default:
			snap.PlanToWatch = append(snap.PlanToWatch, item)
		}
	}

	s.cache.Put(clean, snap)
	return snap
}

// Add writes the snapshot first under a placeholder id, then tries the
// remote insert. On success the placeholder is swapped for the remote id;
// on failure the placeholder stays and the next successful Read reconciles.
func (s *WatchlistService) Add(ctx context.Context, phone string, req request_models.AddWatchEntryRequest) response_models.WatchItem {
	clean := utils.CleanPhone(phone)

	item := response_models.WatchItem{
		ID:              localIDPrefix + uuid.NewString(),
		Title:           req.Title,
		Genre:           req.Genre,
		Thumbnail:       req.Thumbnail,
		Status:          statusForList(req.ListType),
		EpisodesWatched: req.EpisodesWatched,
		TotalEpisodes:   req.TotalEpisodes,
		Season:          req.Season,
		Rating:          req.Rating,
	}
	if item.Genre == "" {
		item.Genre = "Dorama"
	}
	if item.TotalEpisodes == 0 {
		item.TotalEpisodes = 16
	}
	if item.Season == 0 {
		item.Season = 1
	}

	s.cache.Append(clean, req.ListType, item)

	entry := &db_models.WatchEntry{
		PhoneNumber:     clean,
		Title:           item.Title,
		Genre:           item.Genre,
		Thumbnail:       item.Thumbnail,
		Status:          item.Status,
		EpisodesWatched: item.EpisodesWatched,
		TotalEpisodes:   item.TotalEpisodes,
		Season:          item.Season,
		Rating:          item.Rating,
		ListType:        req.ListType,
	}
	if err := s.repo.Insert(ctx, entry); err != nil {
		log.Printf("watchlist insert failed for %s, keeping placeholder %s: %v", clean, item.ID, err)
		return item
	}

	item.ID = entry.ID.String()
	s.cache.Append(clean, req.ListType, item)
	return item
}

func (s *WatchlistService) Update(ctx context.Context, id string, req request_models.UpdateWatchEntryRequest) bool {
	if IsLocalID(id) {
		return true
	}

	err := s.repo.Update(ctx, id, map[string]interface{}{
		"episodes_watched": req.EpisodesWatched,
		"rating":           req.Rating,
		"status":           req.Status,
		"season":           req.Season,
		"total_episodes":   req.TotalEpisodes,
	})
	if err != nil {
		log.Printf("watchlist update failed for %s: %v", id, err)
		return false
	}
	return true
}

func (s *WatchlistService) Delete(ctx context.Context, id string) bool {
	if IsLocalID(id) {
		return true
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Printf("watchlist delete failed for %s: %v", id, err)
		return false
	}
	return true
}

func statusForList(listType string) string {
	switch listType {
	case localcache.ListWatching:
		return db_models.WatchStatusWatching
	case localcache.ListCompleted:
		return db_models.WatchStatusCompleted
	default:
		return db_models.WatchStatusPlanToWatch
	}
}

func toWatchItem(entry db_models.WatchEntry) response_models.WatchItem {
	return response_models.WatchItem{
		ID:              entry.ID.String(),
		Title:           entry.Title,
		Genre:           entry.Genre,
		Thumbnail:       entry.Thumbnail,
		Status:          db_models.NormalizeWatchStatus(entry.Status),
		EpisodesWatched: entry.EpisodesWatched,
		TotalEpisodes:   entry.TotalEpisodes,
		Season:          entry.Season,
		Rating:          entry.Rating,
	}
}
