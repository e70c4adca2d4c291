package response_models

// WatchItem is one tracked title as the client sees it. The ID is either a
// remote uuid or a "local-" placeholder that has not synced yet.
type WatchItem struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Genre           string `json:"genre"`
	Thumbnail       string `json:"thumbnail"`
	Status          string `json:"status"`
	EpisodesWatched int    `json:"episodes_watched"`
	TotalEpisodes   int    `json:"total_episodes"`
	Season          int    `json:"season"`
	Rating          int    `json:"rating"`
}

// WatchCollections is the three-list partition persisted per phone number.
// "favorites" in the client UI maps to the plan-to-watch list.
type WatchCollections struct {
	Watching    []WatchItem `json:"watching"`
	PlanToWatch []WatchItem `json:"favorites"`
	Completed   []WatchItem `json:"completed"`
}
