package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wahanakarya/cms_api/internal/models"
	"github.com/wahanakarya/cms_api/internal/repository"
)

// MediaHandler handles admin media item management.
type MediaHandler struct {
	repo *repository.MediaRepository
}

// NewMediaHandler constructs a MediaHandler.
func NewMediaHandler(repo *repository.MediaRepository) *MediaHandler {
	return &MediaHandler{repo: repo}
}

type mediaRequest struct {
	Title       string `json:"title"`
	Kind        string `json:"kind"`
	FileURL     string `json:"fileUrl"`
	SourceName  string `json:"sourceName"`
	PublishedOn string `json:"publishedOn"`
	IsPublished bool   `json:"isPublished"`
}

func (r *mediaRequest) toModel(c *gin.Context) (*models.MediaItem, bool) {
	if r.Title == "" {
		respondError(c, http.StatusBadRequest, "title is required")
		return nil, false
	}
	if r.Kind == "" {
		r.Kind = models.MediaKindPress
	}
	publishedOn, ok := parseDateField(c, r.PublishedOn, "publishedOn")
	if !ok {
		return nil, false
	}
	return &models.MediaItem{
		Title:       r.Title,
		Kind:        r.Kind,
		FileURL:     r.FileURL,
		SourceName:  r.SourceName,
		PublishedOn: publishedOn,
		IsPublished: r.IsPublished,
	}, true
}

// List handles GET /v1/admin/media
func (h *MediaHandler) List(c *gin.Context) {
	if _, ok := requirePrincipal(c); !ok {
		return
	}
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		writeRepoError(c, err, "Media item", "list media")
		return
	}
	c.JSON(http.StatusOK, gin.H{"media": items, "total": len(items)})
}

// Get handles GET /v1/admin/media/:id
func (h *MediaHandler) Get(c *gin.Context) {
	if _, ok := requirePrincipal(c); !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	item, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		writeRepoError(c, err, "Media item", "get media item")
		return
	}
	c.JSON(http.StatusOK, item)
}

// Create handles POST /v1/admin/media
func (h *MediaHandler) Create(c *gin.Context) {
	if _, ok := requirePrincipal(c); !ok {
		return
	}
	var req mediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	item, ok := req.toModel(c)
	if !ok {
		return
	}
	if err := h.repo.Create(c.Request.Context(), item); err != nil {
		writeRepoError(c, err, "Media item", "create media item")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// Update handles PUT /v1/admin/media/:id
func (h *MediaHandler) Update(c *gin.Context) {
	if _, ok := requirePrincipal(c); !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req mediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	item, ok := req.toModel(c)
	if !ok {
		return
	}
	item.ID = id
	if err := h.repo.Update(c.Request.Context(), item); err != nil {
		writeRepoError(c, err, "Media item", "update media item")
		return
	}
	c.JSON(http.StatusOK, item)
}

// Delete handles DELETE /v1/admin/media/:id
func (h *MediaHandler) Delete(c *gin.Context) {
	if _, ok := requirePrincipal(c); !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		writeRepoError(c, err, "Media item", "delete media item")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
