package request_models

type AddWatchEntryRequest struct {
	// "watching" | "favorites" | "completed"
	ListType        string `json:"list_type" binding:"required"`
	Title           string `json:"title" binding:"required"`
	Genre           string `json:"genre"`
	Thumbnail       string `json:"thumbnail"`
	EpisodesWatched int    `json:"episodes_watched"`
	TotalEpisodes   int    `json:"total_episodes"`
	Season          int    `json:"season"`
	Rating          int    `json:"rating"`
}

type UpdateWatchEntryRequest struct {
	Status          string `json:"status"`
	EpisodesWatched int    `json:"episodes_watched"`
	TotalEpisodes   int    `json:"total_episodes"`
	Season          int    `json:"season"`
	Rating          int    `json:"rating"`
}
