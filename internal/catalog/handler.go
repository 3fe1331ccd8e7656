package catalog

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"anihub/internal/jikan"
)

// Handler proxies the browse/search/detail surface straight to the
// remote catalog. No local state: the UI renders whatever comes back,
// or its empty state when the upstream call fails.
type Handler struct {
	Client *jikan.Client
}

func NewHandler(client *jikan.Client) *Handler {
	return &Handler{Client: client}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/top/anime", h.topAnime)
	rg.GET("/top/manga", h.topManga)
	rg.GET("/top/characters", h.topCharacters)
	rg.GET("/top/people", h.topPeople)

	rg.GET("/seasons/now", h.seasonNow)
	rg.GET("/seasons/upcoming", h.seasonUpcoming)
	rg.GET("/schedules", h.schedule)

	rg.GET("/anime", h.search)
	rg.GET("/anime/:id", h.animeByID)
	rg.GET("/anime/:id/characters", subResource(h.Client, (*jikan.Client).Characters))
	rg.GET("/anime/:id/recommendations", subResource(h.Client, (*jikan.Client).Recommendations))
	rg.GET("/anime/:id/streaming", subResource(h.Client, (*jikan.Client).Streaming))
	rg.GET("/anime/:id/reviews", subResource(h.Client, (*jikan.Client).Reviews))
	rg.GET("/anime/:id/relations", subResource(h.Client, (*jikan.Client).Relations))
	rg.GET("/anime/:id/pictures", subResource(h.Client, (*jikan.Client).Pictures))
	rg.GET("/anime/:id/themes", subResource(h.Client, (*jikan.Client).Themes))

	rg.GET("/genres", h.genres)
	rg.GET("/producers", h.producers)
	rg.GET("/random", h.random)
}

// reply writes the Jikan envelope through, or the generic fetch failure
// the UI degrades on.
func reply[T any](c *gin.Context, resp *jikan.Response[T], err error) {
	if err != nil {
		log.Printf("[catalog] %s: %v", c.FullPath(), err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "fetch failed"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) topAnime(c *gin.Context) {
	resp, err := h.Client.TopAnime(c.Request.Context(),
		c.DefaultQuery("filter", "airing"), c.Query("type"), pageOf(c))
	reply(c, resp, err)
}

func (h *Handler) topManga(c *gin.Context) {
	resp, err := h.Client.TopManga(c.Request.Context(), pageOf(c))
	reply(c, resp, err)
}

func (h *Handler) topCharacters(c *gin.Context) {
	resp, err := h.Client.TopCharacters(c.Request.Context(), pageOf(c))
	reply(c, resp, err)
}

func (h *Handler) topPeople(c *gin.Context) {
	resp, err := h.Client.TopPeople(c.Request.Context(), pageOf(c))
	reply(c, resp, err)
}

func (h *Handler) seasonNow(c *gin.Context) {
	resp, err := h.Client.SeasonNow(c.Request.Context(), pageOf(c))
	reply(c, resp, err)
}

func (h *Handler) seasonUpcoming(c *gin.Context) {
	resp, err := h.Client.SeasonUpcoming(c.Request.Context(), pageOf(c))
	reply(c, resp, err)
}

func (h *Handler) schedule(c *gin.Context) {
	day := strings.ToLower(strings.TrimSpace(c.Query("day")))
	if day == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "day is required (monday..sunday)"})
		return
	}
	resp, err := h.Client.Schedule(c.Request.Context(), day, pageOf(c))
	reply(c, resp, err)
}

func (h *Handler) search(c *gin.Context) {
	resp, err := h.Client.SearchAnime(c.Request.Context(),
		c.Query("q"), pageOf(c), c.Query("genres"), c.Query("producers"))
	reply(c, resp, err)
}

func (h *Handler) animeByID(c *gin.Context) {
	id, ok := idOf(c)
	if !ok {
		return
	}
	resp, err := h.Client.AnimeByID(c.Request.Context(), id)
	reply(c, resp, err)
}

// subResource adapts the per-anime lookups that only differ in the
// client method they call.
func subResource[T any](client *jikan.Client, fetch func(*jikan.Client, context.Context, int) (*jikan.Response[T], error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idOf(c)
		if !ok {
			return
		}
		resp, err := fetch(client, c.Request.Context(), id)
		reply(c, resp, err)
	}
}

func (h *Handler) genres(c *gin.Context) {
	resp, err := h.Client.Genres(c.Request.Context())
	reply(c, resp, err)
}

func (h *Handler) producers(c *gin.Context) {
	resp, err := h.Client.Producers(c.Request.Context(), pageOf(c))
	reply(c, resp, err)
}

func (h *Handler) random(c *gin.Context) {
	resp, err := h.Client.RandomAnime(c.Request.Context())
	reply(c, resp, err)
}

func pageOf(c *gin.Context) int {
	n, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || n <= 0 {
		return 1
	}
	return n
}

func idOf(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
