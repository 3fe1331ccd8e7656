package library

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"anihub/pkg/models"
)

const (
	fallbackEpisodes = 12
	fallbackMinutes  = 24
	topGenreCount    = 5
)

var durationMinutes = regexp.MustCompile(`(\d+)\s*min`)

// ComputeStats folds the tracked records into the profile summary. It is
// pure: same records in, same stats out, no store access.
func ComputeStats(records []models.TrackingRecord) models.ProfileStats {
	var (
		counts      models.StatusCounts
		totalEps    int
		totalMins   int
		scoreSum    float64
		scoreCount  int
		genreCounts = map[string]int{}
		genreOrder  []string // first-seen order, the tie-break for ranking
	)

	for _, rec := range records {
		switch rec.Status {
		case models.StatusWatching:
			counts.Watching++
		case models.StatusCompleted:
			counts.Completed++
		case models.StatusPlanToWatch:
			counts.PlanToWatch++
		case models.StatusDropped:
			counts.Dropped++
		case models.StatusFavorite:
			counts.Favorite++
		}

		for _, g := range rec.Anime.Genres {
			if _, seen := genreCounts[g.Name]; !seen {
				genreOrder = append(genreOrder, g.Name)
			}
			genreCounts[g.Name]++
		}

		if rec.Status == models.StatusWatching || rec.Status == models.StatusCompleted {
			eps := fallbackEpisodes
			if rec.Anime.Episodes != nil && *rec.Anime.Episodes > 0 {
				eps = *rec.Anime.Episodes
			}
			totalEps += eps
			totalMins += episodeMinutes(rec.Anime.Duration) * eps
		}

		if rec.Anime.Score != nil && *rec.Anime.Score > 0 {
			scoreSum += *rec.Anime.Score
			scoreCount++
		}
	}

	mean := 0.0
	if scoreCount > 0 {
		mean = round(scoreSum/float64(scoreCount), 2)
	}

	top := make([]models.GenreCount, 0, topGenreCount)
	sort.SliceStable(genreOrder, func(i, j int) bool {
		return genreCounts[genreOrder[i]] > genreCounts[genreOrder[j]]
	})
	for _, name := range genreOrder {
		if len(top) == topGenreCount {
			break
		}
		top = append(top, models.GenreCount{Name: name, Count: genreCounts[name]})
	}

	return models.ProfileStats{
		TotalAnime:      len(records),
		EpisodesWatched: totalEps,
		DaysWatched:     round(float64(totalMins)/60/24, 1),
		MeanScore:       mean,
		StatusCounts:    counts,
		TopGenres:       top,
		Level:           levelFor(len(records)),
	}
}

// episodeMinutes extracts a per-episode runtime from Jikan's free-text
// duration ("24 min per ep", "1 hr 55 min", "Unknown"). Unparsable text
// falls back to 24 minutes; an "hr" part adds 60.
func episodeMinutes(duration string) int {
	mins := fallbackMinutes
	if duration == "" {
		return mins
	}
	if m := durationMinutes.FindStringSubmatch(duration); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			mins = n
		}
	}
	if strings.Contains(duration, "hr") {
		mins += 60
	}
	return mins
}

// levelFor classifies the library size into a tier label.
func levelFor(total int) string {
	switch {
	case total > 150:
		return "Anime God"
	case total > 70:
		return "Weeb Lord"
	case total > 30:
		return "Seasoned Otaku"
	case total > 10:
		return "Anime Fan"
	default:
		return "Novice Watcher"
	}
}

func round(v float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(v*pow) / pow
}
