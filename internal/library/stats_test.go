package library

import (
	"testing"

	"github.com/stretchr/testify/require"

	"anihub/pkg/models"
)

func rec(id int, status models.Status, mut func(*models.Anime)) models.TrackingRecord {
	a := anime(id)
	if mut != nil {
		mut(&a)
	}
	return models.TrackingRecord{Anime: a, Status: status}
}

func intp(v int) *int { return &v }

func floatp(v float64) *float64 { return &v }

func genres(names ...string) []models.Genre {
	out := make([]models.Genre, len(names))
	for i, n := range names {
		out[i] = models.Genre{MalID: i + 1, Name: n}
	}
	return out
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil)

	require.Zero(t, stats.TotalAnime)
	require.Zero(t, stats.EpisodesWatched)
	require.Zero(t, stats.DaysWatched)
	require.Zero(t, stats.MeanScore)
	require.Zero(t, stats.StatusCounts)
	require.Empty(t, stats.TopGenres)
	require.Equal(t, "Novice Watcher", stats.Level)
}

func TestComputeStatsLevels(t *testing.T) {
	build := func(n int) []models.TrackingRecord {
		out := make([]models.TrackingRecord, n)
		for i := range out {
			out[i] = rec(i+1, models.StatusCompleted, nil)
		}
		return out
	}

	cases := []struct {
		count int
		level string
	}{
		{0, "Novice Watcher"},
		{10, "Novice Watcher"},
		{11, "Anime Fan"},
		{30, "Anime Fan"},
		{31, "Seasoned Otaku"},
		{71, "Weeb Lord"},
		{151, "Anime God"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.level, ComputeStats(build(tc.count)).Level, "count %d", tc.count)
	}
}

func TestComputeStatsMeanScore(t *testing.T) {
	records := []models.TrackingRecord{
		rec(1, models.StatusCompleted, func(a *models.Anime) { a.Score = floatp(8) }),
		rec(2, models.StatusDropped, func(a *models.Anime) { a.Score = floatp(6) }),
		rec(3, models.StatusPlanToWatch, nil), // unscored, excluded from the mean
	}

	stats := ComputeStats(records)
	require.Equal(t, 7.0, stats.MeanScore)
}

func TestComputeStatsWatchTime(t *testing.T) {
	records := []models.TrackingRecord{
		rec(1, models.StatusCompleted, func(a *models.Anime) {
			a.Episodes = intp(12)
			a.Duration = "24 min per ep"
		}),
	}

	stats := ComputeStats(records)
	require.Equal(t, 12, stats.EpisodesWatched)
	// 12 eps * 24 min = 288 min = 0.2 days
	require.Equal(t, 0.2, stats.DaysWatched)
}

func TestComputeStatsDurationFallbacks(t *testing.T) {
	require.Equal(t, 24, episodeMinutes("Unknown"))
	require.Equal(t, 24, episodeMinutes(""))
	require.Equal(t, 23, episodeMinutes("23 min per ep"))
	require.Equal(t, 115, episodeMinutes("1 hr 55 min"))
	// No minute token but an hour marker still adds 60.
	require.Equal(t, 84, episodeMinutes("2 hr"))
}

func TestComputeStatsEpisodeFallback(t *testing.T) {
	records := []models.TrackingRecord{
		// Currently airing: episode count unknown, assume 12.
		rec(1, models.StatusWatching, func(a *models.Anime) { a.Duration = "24 min" }),
	}

	stats := ComputeStats(records)
	require.Equal(t, 12, stats.EpisodesWatched)
}

func TestComputeStatsOnlyWatchingAndCompletedCount(t *testing.T) {
	mut := func(a *models.Anime) {
		a.Episodes = intp(10)
		a.Duration = "24 min"
	}
	records := []models.TrackingRecord{
		rec(1, models.StatusPlanToWatch, mut),
		rec(2, models.StatusDropped, mut),
		rec(3, models.StatusFavorite, mut),
		rec(4, models.StatusWatching, mut),
	}

	stats := ComputeStats(records)
	require.Equal(t, 10, stats.EpisodesWatched)
	require.Equal(t, 1, stats.StatusCounts.Watching)
	require.Equal(t, 1, stats.StatusCounts.PlanToWatch)
	require.Equal(t, 1, stats.StatusCounts.Dropped)
	require.Equal(t, 1, stats.StatusCounts.Favorite)
}

func TestComputeStatsTopGenres(t *testing.T) {
	records := []models.TrackingRecord{
		rec(1, models.StatusCompleted, func(a *models.Anime) { a.Genres = genres("Action", "Drama") }),
		rec(2, models.StatusCompleted, func(a *models.Anime) { a.Genres = genres("Action", "Comedy") }),
		rec(3, models.StatusCompleted, func(a *models.Anime) { a.Genres = genres("Action", "Drama", "Sci-Fi") }),
	}

	stats := ComputeStats(records)
	require.Equal(t, []models.GenreCount{
		{Name: "Action", Count: 3},
		{Name: "Drama", Count: 2},
		// Comedy and Sci-Fi tie at 1: first-encountered order wins.
		{Name: "Comedy", Count: 1},
		{Name: "Sci-Fi", Count: 1},
	}, stats.TopGenres)
}

func TestComputeStatsTopGenresCappedAtFive(t *testing.T) {
	records := []models.TrackingRecord{
		rec(1, models.StatusCompleted, func(a *models.Anime) {
			a.Genres = genres("A", "B", "C", "D", "E", "F", "G")
		}),
	}

	stats := ComputeStats(records)
	require.Len(t, stats.TopGenres, 5)
	require.Equal(t, "A", stats.TopGenres[0].Name)
	require.Equal(t, "E", stats.TopGenres[4].Name)
}
