package models

// StatusCounts is the per-status breakdown of the tracked library.
type StatusCounts struct {
	Watching    int `json:"watching"`
	Completed   int `json:"completed"`
	PlanToWatch int `json:"plan_to_watch"`
	Dropped     int `json:"dropped"`
	Favorite    int `json:"favorite"`
}

// GenreCount is one row of the top-genre ranking.
type GenreCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ProfileStats is derived from the tracking collection on demand and
// never persisted.
type ProfileStats struct {
	TotalAnime      int          `json:"total_anime"`
	EpisodesWatched int          `json:"episodes_watched"`
	DaysWatched     float64      `json:"days_watched"`
	MeanScore       float64      `json:"mean_score"`
	StatusCounts    StatusCounts `json:"status_counts"`
	TopGenres       []GenreCount `json:"top_genres"`
	Level           string       `json:"level"`
}
