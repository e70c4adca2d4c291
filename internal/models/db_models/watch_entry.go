package db_models

import "strings"

const (
	WatchStatusWatching    = "Watching"
	WatchStatusCompleted   = "Completed"
	WatchStatusPlanToWatch = "Plan to Watch"
)

// WatchEntry is one tracked title for one phone number.
type WatchEntry struct {
	BaseModel
	PhoneNumber     string `gorm:"index"`
	Title           string
	Genre           string
	Thumbnail       string
	Status          string
	EpisodesWatched int
	TotalEpisodes   int `gorm:"default:16"`
	Season          int `gorm:"default:1"`
	Rating          int
	ListType        string
}

func (WatchEntry) TableName() string { return "user_doramas" }

// NormalizeWatchStatus maps legacy lowercase status values onto the three
// canonical ones. Anything unrecognized lands in Plan to Watch.
func NormalizeWatchStatus(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "watching":
		return WatchStatusWatching
	case "completed":
		return WatchStatusCompleted
	default:
		return WatchStatusPlanToWatch
	}
}
