package jikan

import (
	"context"
	"fmt"

	"anihub/pkg/models"
)

// TopAnime lists the top anime ranking. filter is one of Jikan's top
// filters ("airing", "upcoming", "bypopularity", "favorite"); animeType
// optionally narrows to "movie", "tv", etc. Both may be empty.
func (c *Client) TopAnime(ctx context.Context, filter, animeType string, page int) (*Response[[]models.Anime], error) {
	q := pageQuery(page)
	if filter != "" {
		q.Set("filter", filter)
	}
	if animeType != "" {
		q.Set("type", animeType)
	}
	return get[[]models.Anime](ctx, c, "/top/anime", q)
}

func (c *Client) TopManga(ctx context.Context, page int) (*Response[[]models.Manga], error) {
	return get[[]models.Manga](ctx, c, "/top/manga", pageQuery(page))
}

func (c *Client) TopCharacters(ctx context.Context, page int) (*Response[[]models.TopCharacter], error) {
	return get[[]models.TopCharacter](ctx, c, "/top/characters", pageQuery(page))
}

func (c *Client) TopPeople(ctx context.Context, page int) (*Response[[]models.Person], error) {
	return get[[]models.Person](ctx, c, "/top/people", pageQuery(page))
}

func (c *Client) SeasonNow(ctx context.Context, page int) (*Response[[]models.Anime], error) {
	return get[[]models.Anime](ctx, c, "/seasons/now", pageQuery(page))
}

func (c *Client) SeasonUpcoming(ctx context.Context, page int) (*Response[[]models.Anime], error) {
	return get[[]models.Anime](ctx, c, "/seasons/upcoming", pageQuery(page))
}

var weekdays = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

// Schedule lists anime airing on the given weekday (lowercase English).
func (c *Client) Schedule(ctx context.Context, day string, page int) (*Response[[]models.Anime], error) {
	if !weekdays[day] {
		return nil, fmt.Errorf("jikan: invalid schedule day %q", day)
	}
	q := pageQuery(page)
	q.Set("filter", day)
	q.Set("sfw", "true")
	return get[[]models.Anime](ctx, c, "/schedules", q)
}

// SearchAnime runs a free-text search ordered by popularity. genreID and
// producerID are optional comma-separable id filters.
func (c *Client) SearchAnime(ctx context.Context, query string, page int, genreID, producerID string) (*Response[[]models.Anime], error) {
	q := pageQuery(page)
	q.Set("q", query)
	q.Set("sfw", "true")
	q.Set("order_by", "popularity")
	q.Set("sort", "asc")
	if genreID != "" {
		q.Set("genres", genreID)
	}
	if producerID != "" {
		q.Set("producers", producerID)
	}
	return get[[]models.Anime](ctx, c, "/anime", q)
}

func (c *Client) Genres(ctx context.Context) (*Response[[]models.Genre], error) {
	return get[[]models.Genre](ctx, c, "/genres/anime", nil)
}

func (c *Client) Producers(ctx context.Context, page int) (*Response[[]models.Producer], error) {
	q := pageQuery(page)
	q.Set("order_by", "favorites")
	q.Set("sort", "desc")
	return get[[]models.Producer](ctx, c, "/producers", q)
}

func (c *Client) RandomAnime(ctx context.Context) (*Response[models.Anime], error) {
	return get[models.Anime](ctx, c, "/random/anime", nil)
}

func (c *Client) AnimeByID(ctx context.Context, id int) (*Response[models.Anime], error) {
	return get[models.Anime](ctx, c, fmt.Sprintf("/anime/%d", id), nil)
}

func (c *Client) Characters(ctx context.Context, id int) (*Response[[]models.Character], error) {
	return get[[]models.Character](ctx, c, fmt.Sprintf("/anime/%d/characters", id), nil)
}

func (c *Client) Recommendations(ctx context.Context, id int) (*Response[[]models.Recommendation], error) {
	return get[[]models.Recommendation](ctx, c, fmt.Sprintf("/anime/%d/recommendations", id), nil)
}

func (c *Client) Streaming(ctx context.Context, id int) (*Response[[]models.StreamingLink], error) {
	return get[[]models.StreamingLink](ctx, c, fmt.Sprintf("/anime/%d/streaming", id), nil)
}

func (c *Client) Themes(ctx context.Context, id int) (*Response[models.AnimeTheme], error) {
	return get[models.AnimeTheme](ctx, c, fmt.Sprintf("/anime/%d/themes", id), nil)
}

func (c *Client) Reviews(ctx context.Context, id int) (*Response[[]models.Review], error) {
	return get[[]models.Review](ctx, c, fmt.Sprintf("/anime/%d/reviews", id), nil)
}

func (c *Client) Relations(ctx context.Context, id int) (*Response[[]models.Relation], error) {
	return get[[]models.Relation](ctx, c, fmt.Sprintf("/anime/%d/relations", id), nil)
}

func (c *Client) Pictures(ctx context.Context, id int) (*Response[[]models.Picture], error) {
	return get[[]models.Picture](ctx, c, fmt.Sprintf("/anime/%d/pictures", id), nil)
}
