package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wahanakarya/cms_api/internal/models"
	"github.com/wahanakarya/cms_api/internal/repository"
)

// ReportHandler handles admin report management.
type ReportHandler struct {
	repo *repository.ReportRepository
}

// NewReportHandler constructs a ReportHandler.
func NewReportHandler(repo *repository.ReportRepository) *ReportHandler {
	return &ReportHandler{repo: repo}
}

type reportRequest struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Year        int    `json:"year"`
	FileURL     string `json:"fileUrl"`
	IsPublished bool   `json:"isPublished"`
}

func (r *reportRequest) toModel(c *gin.Context) (*models.Report, bool) {
	if r.Title == "" {
		respondError(c, http.StatusBadRequest, "title is required")
		return nil, false
	}
	if r.FileURL == "" {
		respondError(c, http.StatusBadRequest, "fileUrl is required")
		return nil, false
	}
	if r.Category == "" {
		r.Category = "annual"
	}
	return &models.Report{
		Title:       r.Title,
		Category:    r.Category,
		Year:        r.Year,
		FileURL:     r.FileURL,
		IsPublished: r.IsPublished,
	}, true
}

// List handles GET /v1/admin/reports
func (h *ReportHandler) List(c *gin.Context) {
	if _, ok := requirePrincipal(c); !ok {
		return
	}
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		writeRepoError(c, err, "Report", "list reports")
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": items, "total": len(items)})
}

// Get handles GET /v1/admin/reports/:id
func (h *ReportHandler) Get(c *gin.Context) {
	if _, ok := requirePrincipal(c); !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	item, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		writeRepoError(c, err, "Report", "get report")
		return
	}
	c.JSON(http.StatusOK, item)
}

// Create handles POST /v1/admin/reports
func (h *ReportHandler) Create(c *gin.Context) {
	if _, ok := requirePrincipal(c); !ok {
		return
	}
	var req reportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	item, ok := req.toModel(c)
	if !ok {
		return
	}
	if err := h.repo.Create(c.Request.Context(), item); err != nil {
		writeRepoError(c, err, "Report", "create report")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// Update handles PUT /v1/admin/reports/:id
func (h *ReportHandler) Update(c *gin.Context) {
	if _, ok := requirePrincipal(c); !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req reportRequest
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
		writeRepoError(c, err, "Report", "update report")
		return
	}
	c.JSON(http.StatusOK, item)
}

// Delete handles DELETE /v1/admin/reports/:id
func (h *ReportHandler) Delete(c *gin.Context) {
	if _, ok := requirePrincipal(c); !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		writeRepoError(c, err, "Report", "delete report")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
