package library

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"anihub/pkg/models"
)

type Handler struct {
	Manager *Manager
}

func NewHandler(m *Manager) *Handler {
	return &Handler{Manager: m}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/library", h.list)
	rg.POST("/library", h.setStatus)
	rg.GET("/library/:id", h.getOne)
	rg.DELETE("/library/:id", h.remove)

	rg.GET("/recent", h.recent)
	rg.POST("/recent", h.recordView)

	rg.GET("/profile", h.profile)
	rg.PUT("/profile/name", h.setName)
}

type setStatusReq struct {
	Anime  models.Anime `json:"anime"`
	Status string       `json:"status"`
}

func (h *Handler) setStatus(c *gin.Context) {
	var req setStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if req.Anime.MalID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "anime.mal_id required"})
		return
	}

	status, ok := models.ParseStatus(req.Status)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "status must be one of: watching, completed, plan_to_watch, dropped, favorite, none",
		})
		return
	}

	effective, err := h.Manager.SetStatus(req.Anime, status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": effective})
}

func (h *Handler) list(c *gin.Context) {
	items := h.Manager.List()

	// Optional ?status= filter, mirroring the library page tabs.
	if f := strings.TrimSpace(c.Query("status")); f != "" {
		status, ok := models.ParseStatus(f)
		if !ok || status == models.StatusNone {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status filter"})
			return
		}
		filtered := items[:0]
		for _, it := range items {
			if it.Status == status {
				filtered = append(filtered, it)
			}
		}
		items = filtered
	}

	c.JSON(http.StatusOK, gin.H{
		"total": len(items),
		"items": items,
	})
}

func (h *Handler) getOne(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	rec, ok := h.Manager.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not tracked"})
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *Handler) remove(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.Manager.Remove(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": models.StatusNone})
}

func (h *Handler) recent(c *gin.Context) {
	items := h.Manager.RecentlyViewed()
	if items == nil {
		items = []models.Anime{}
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

type recordViewReq struct {
	Anime models.Anime `json:"anime"`
}

func (h *Handler) recordView(c *gin.Context) {
	var req recordViewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if req.Anime.MalID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "anime.mal_id required"})
		return
	}

	if err := h.Manager.RecordView(req.Anime); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) profile(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"username": h.Manager.DisplayName(),
		"stats":    ComputeStats(h.Manager.List()),
	})
}

type setNameReq struct {
	Username string `json:"username"`
}

func (h *Handler) setName(c *gin.Context) {
	var req setNameReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	name := strings.TrimSpace(req.Username)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username required"})
		return
	}

	if err := h.Manager.SetDisplayName(name); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"username": name})
}
