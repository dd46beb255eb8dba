package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wahanakarya/cms_api/internal/models"
	"github.com/wahanakarya/cms_api/internal/repository"
)

// GalleryHandler handles admin gallery and gallery image management.
type GalleryHandler struct {
	repo *repository.GalleryRepository
}

// NewGalleryHandler constructs a GalleryHandler.
func NewGalleryHandler(repo *repository.GalleryRepository) *GalleryHandler {
	return &GalleryHandler{repo: repo}
}

type galleryRequest struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	CoverURL    string `json:"coverUrl"`
	IsPublished bool   `json:"isPublished"`
}

func (r *galleryRequest) validate(c *gin.Context) bool {
	if r.Title == "" {
		respondError(c, http.StatusBadRequest, "title is required")
		return false
	}
	if r.Slug == "" {
		respondError(c, http.StatusBadRequest, "slug is required")
		return false
	}
	return true
}

// List handles GET /v1/admin/galleries
func (h *GalleryHandler) List(c *gin.Context) {
	if _, ok := requirePrincipal(c); !ok {
		return
	}
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		writeRepoError(c, err, "Gallery", "list galleries")
		return
	}
	c.JSON(http.StatusOK, gin.H{"galleries": items, "total": len(items)})
}

// Get handles GET /v1/admin/galleries/:id
func (h *GalleryHandler) Get(c *gin.Context) {
	if _, ok := requirePrincipal(c); !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	item, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		writeRepoError(c, err, "Gallery", "get gallery")
		return
	}
	c.JSON(http.StatusOK, item)
}

// Create handles POST /v1/admin/galleries
func (h *GalleryHandler) Create(c *gin.Context) {
	if _, ok := requirePrincipal(c); !ok {
		return
	}
	var req galleryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !req.validate(c) {
		return
	}

	item := &models.Gallery{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		CoverURL:    req.CoverURL,
		IsPublished: req.IsPublished,
	}
	if err := h.repo.Create(c.Request.Context(), item); err != nil {
		writeRepoError(c, err, "Gallery", "create gallery")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// Update handles PUT /v1/admin/galleries/:id
func (h *GalleryHandler) Update(c *gin.Context) {
	if _, ok := requirePrincipal(c); !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req galleryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !req.validate(c) {
		return
	}

	item := &models.Gallery{
		ID:          id,
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		CoverURL:    req.CoverURL,
		IsPublished: req.IsPublished,
	}
	if err := h.repo.Update(c.Request.Context(), item); err != nil {
		writeRepoError(c, err, "Gallery", "update gallery")
		return
	}
	c.JSON(http.StatusOK, item)
}

// Delete handles DELETE /v1/admin/galleries/:id
func (h *GalleryHandler) Delete(c *gin.Context) {
	if _, ok := requirePrincipal(c); !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		writeRepoError(c, err, "Gallery", "delete gallery")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// AddImage handles POST /v1/admin/galleries/:id/images
func (h *GalleryHandler) AddImage(c *gin.Context) {
	if _, ok := requirePrincipal(c); !ok {
		return
	}
	galleryID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req struct {
		ImageURL  string `json:"imageUrl"`
		Caption   string `json:"caption"`
		SortOrder int    `json:"sortOrder"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ImageURL == "" {
		respondError(c, http.StatusBadRequest, "imageUrl is required")
		return
	}

	img := &models.GalleryImage{
		GalleryID: galleryID,
		ImageURL:  req.ImageURL,
		Caption:   req.Caption,
		SortOrder: req.SortOrder,
	}
	if err := h.repo.AddImage(c.Request.Context(), img); err != nil {
		writeRepoError(c, err, "Gallery", "add gallery image")
		return
	}
	c.JSON(http.StatusCreated, img)
}

// DeleteImage handles DELETE /v1/admin/galleries/:id/images/:imageId
func (h *GalleryHandler) DeleteImage(c *gin.Context) {
	if _, ok := requirePrincipal(c); !ok {
		return
	}
	galleryID, ok := parseIDParam(c)
	if !ok {
		return
	}
	imageID, err := strconv.Atoi(c.Param("imageId"))
	if err != nil || imageID <= 0 {
		respondError(c, http.StatusBadRequest, "imageId is required")
		return
	}
	if err := h.repo.DeleteImage(c.Request.Context(), galleryID, imageID); err != nil {
		writeRepoError(c, err, "Gallery image", "delete gallery image")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
