package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wahanakarya/cms_api/internal/models"
	"github.com/wahanakarya/cms_api/internal/repository"
)

// JobPostingHandler handles admin vacancy management.
type JobPostingHandler struct {
	repo *repository.JobPostingRepository
}

// NewJobPostingHandler constructs a JobPostingHandler.
func NewJobPostingHandler(repo *repository.JobPostingRepository) *JobPostingHandler {
	return &JobPostingHandler{repo: repo}
}

type jobPostingRequest struct {
	Title       string `json:"title"`
	Department  string `json:"department"`
	Location    string `json:"location"`
	Description string `json:"description"`
	ApplyURL    string `json:"applyUrl"`
	ClosesOn    string `json:"closesOn"`
	IsPublished bool   `json:"isPublished"`
}

func (r *jobPostingRequest) toModel(c *gin.Context) (*models.JobPosting, bool) {
	if r.Title == "" {
		respondError(c, http.StatusBadRequest, "title is required")
		return nil, false
	}
	closesOn, ok := parseDateField(c, r.ClosesOn, "closesOn")
	if !ok {
		return nil, false
	}
	return &models.JobPosting{
		Title:       r.Title,
		Department:  r.Department,
		Location:    r.Location,
		Description: r.Description,
		ApplyURL:    r.ApplyURL,
		ClosesOn:    closesOn,
		IsPublished: r.IsPublished,
	}, true
}

// List handles GET /v1/admin/jobs
func (h *JobPostingHandler) List(c *gin.Context) {
	if _, ok := requirePrincipal(c); !ok {
		return
	}
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		writeRepoError(c, err, "Job posting", "list job postings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": items, "total": len(items)})
}

// Get handles GET /v1/admin/jobs/:id
func (h *JobPostingHandler) Get(c *gin.Context) {
	if _, ok := requirePrincipal(c); !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	item, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		writeRepoError(c, err, "Job posting", "get job posting")
		return
	}
	c.JSON(http.StatusOK, item)
}

// Create handles POST /v1/admin/jobs
func (h *JobPostingHandler) Create(c *gin.Context) {
	if _, ok := requirePrincipal(c); !ok {
		return
	}
	var req jobPostingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	item, ok := req.toModel(c)
	if !ok {
		return
	}
	if err := h.repo.Create(c.Request.Context(), item); err != nil {
		writeRepoError(c, err, "Job posting", "create job posting")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// Update handles PUT /v1/admin/jobs/:id
func (h *JobPostingHandler) Update(c *gin.Context) {
	if _, ok := requirePrincipal(c); !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req jobPostingRequest
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
		writeRepoError(c, err, "Job posting", "update job posting")
		return
	}
	c.JSON(http.StatusOK, item)
}

// Delete handles DELETE /v1/admin/jobs/:id
func (h *JobPostingHandler) Delete(c *gin.Context) {
	if _, ok := requirePrincipal(c); !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		writeRepoError(c, err, "Job posting", "delete job posting")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
