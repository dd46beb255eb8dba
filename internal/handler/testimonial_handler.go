package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wahanakarya/cms_api/internal/models"
	"github.com/wahanakarya/cms_api/internal/repository"
)

// TestimonialHandler handles admin testimonial management.
type TestimonialHandler struct {
	repo *repository.TestimonialRepository
}

// NewTestimonialHandler constructs a TestimonialHandler.
func NewTestimonialHandler(repo *repository.TestimonialRepository) *TestimonialHandler {
	return &TestimonialHandler{repo: repo}
}

type testimonialRequest struct {
	AuthorName   string `json:"authorName"`
	Organization string `json:"organization"`
	Quote        string `json:"quote"`
	PhotoURL     string `json:"photoUrl"`
	IsPublished  bool   `json:"isPublished"`
	SortOrder    int    `json:"sortOrder"`
}

func (r *testimonialRequest) validate(c *gin.Context) bool {
	if r.AuthorName == "" {
		respondError(c, http.StatusBadRequest, "authorName is required")
		return false
	}
	if r.Quote == "" {
		respondError(c, http.StatusBadRequest, "quote is required")
		return false
	}
	return true
}

// List handles GET /v1/admin/testimonials
func (h *TestimonialHandler) List(c *gin.Context) {
	if _, ok := requirePrincipal(c); !ok {
		return
	}
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		writeRepoError(c, err, "Testimonial", "list testimonials")
		return
	}
	c.JSON(http.StatusOK, gin.H{"testimonials": items, "total": len(items)})
}

// Get handles GET /v1/admin/testimonials/:id
func (h *TestimonialHandler) Get(c *gin.Context) {
	if _, ok := requirePrincipal(c); !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	item, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		writeRepoError(c, err, "Testimonial", "get testimonial")
		return
	}
	c.JSON(http.StatusOK, item)
}

// Create handles POST /v1/admin/testimonials
func (h *TestimonialHandler) Create(c *gin.Context) {
	if _, ok := requirePrincipal(c); !ok {
		return
	}
	var req testimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !req.validate(c) {
		return
	}

	item := &models.Testimonial{
		AuthorName:   req.AuthorName,
		Organization: req.Organization,
		Quote:        req.Quote,
		PhotoURL:     req.PhotoURL,
		IsPublished:  req.IsPublished,
		SortOrder:    req.SortOrder,
	}
	if err := h.repo.Create(c.Request.Context(), item); err != nil {
		writeRepoError(c, err, "Testimonial", "create testimonial")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// Update handles PUT /v1/admin/testimonials/:id
func (h *TestimonialHandler) Update(c *gin.Context) {
	if _, ok := requirePrincipal(c); !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req testimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !req.validate(c) {
		return
	}

	item := &models.Testimonial{
		ID:           id,
		AuthorName:   req.AuthorName,
		Organization: req.Organization,
		Quote:        req.Quote,
		PhotoURL:     req.PhotoURL,
		IsPublished:  req.IsPublished,
		SortOrder:    req.SortOrder,
	}
	if err := h.repo.Update(c.Request.Context(), item); err != nil {
		writeRepoError(c, err, "Testimonial", "update testimonial")
		return
	}
	c.JSON(http.StatusOK, item)
}

// Delete handles DELETE /v1/admin/testimonials/:id
func (h *TestimonialHandler) Delete(c *gin.Context) {
	if _, ok := requirePrincipal(c); !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		writeRepoError(c, err, "Testimonial", "delete testimonial")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
