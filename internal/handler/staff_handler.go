package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wahanakarya/cms_api/internal/models"
	"github.com/wahanakarya/cms_api/internal/repository"
)

// StaffHandler handles admin staff profile management.
type StaffHandler struct {
	repo *repository.StaffRepository
}

// NewStaffHandler constructs a StaffHandler.
func NewStaffHandler(repo *repository.StaffRepository) *StaffHandler {
	return &StaffHandler{repo: repo}
}

type staffRequest struct {
	FullName  string `json:"fullName"`
	Position  string `json:"position"`
	Division  string `json:"division"`
	PhotoURL  string `json:"photoUrl"`
	Bio       string `json:"bio"`
	SortOrder int    `json:"sortOrder"`
	IsActive  *bool  `json:"isActive"`
}

func (r *staffRequest) toModel(c *gin.Context) (*models.StaffProfile, bool) {
	if r.FullName == "" {
		respondError(c, http.StatusBadRequest, "fullName is required")
		return nil, false
	}
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return &models.StaffProfile{
		FullName:  r.FullName,
		Position:  r.Position,
		Division:  r.Division,
		PhotoURL:  r.PhotoURL,
		Bio:       r.Bio,
		SortOrder: r.SortOrder,
		IsActive:  active,
	}, true
}

// List handles GET /v1/admin/staff
func (h *StaffHandler) List(c *gin.Context) {
	if _, ok := requirePrincipal(c); !ok {
		return
	}
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		writeRepoError(c, err, "Staff profile", "list staff profiles")
		return
	}
	c.JSON(http.StatusOK, gin.H{"staff": items, "total": len(items)})
}

// Get handles GET /v1/admin/staff/:id
func (h *StaffHandler) Get(c *gin.Context) {
	if _, ok := requirePrincipal(c); !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	item, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		writeRepoError(c, err, "Staff profile", "get staff profile")
		return
	}
	c.JSON(http.StatusOK, item)
}

// Create handles POST /v1/admin/staff
func (h *StaffHandler) Create(c *gin.Context) {
	if _, ok := requirePrincipal(c); !ok {
		return
	}
	var req staffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	item, ok := req.toModel(c)
	if !ok {
		return
	}
	if err := h.repo.Create(c.Request.Context(), item); err != nil {
		writeRepoError(c, err, "Staff profile", "create staff profile")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// Update handles PUT /v1/admin/staff/:id
func (h *StaffHandler) Update(c *gin.Context) {
	if _, ok := requirePrincipal(c); !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req staffRequest
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
		writeRepoError(c, err, "Staff profile", "update staff profile")
		return
	}
	c.JSON(http.StatusOK, item)
}

// Delete handles DELETE /v1/admin/staff/:id
func (h *StaffHandler) Delete(c *gin.Context) {
	if _, ok := requirePrincipal(c); !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		writeRepoError(c, err, "Staff profile", "delete staff profile")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
