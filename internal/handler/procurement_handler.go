package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wahanakarya/cms_api/internal/models"
	"github.com/wahanakarya/cms_api/internal/repository"
)

// ProcurementHandler handles admin procurement notice management.
type ProcurementHandler struct {
	repo *repository.ProcurementRepository
}

// NewProcurementHandler constructs a ProcurementHandler.
func NewProcurementHandler(repo *repository.ProcurementRepository) *ProcurementHandler {
	return &ProcurementHandler{repo: repo}
}

type procurementRequest struct {
	Title       string `json:"title"`
	ReferenceNo string `json:"referenceNo"`
	Summary     string `json:"summary"`
	DocumentURL string `json:"documentUrl"`
	OpensOn     string `json:"opensOn"`
	ClosesOn    string `json:"closesOn"`
	IsPublished bool   `json:"isPublished"`
}

func (r *procurementRequest) toModel(c *gin.Context) (*models.ProcurementNotice, bool) {
	if r.Title == "" {
		respondError(c, http.StatusBadRequest, "title is required")
		return nil, false
	}
	if r.ReferenceNo == "" {
		respondError(c, http.StatusBadRequest, "referenceNo is required")
		return nil, false
	}
	opensOn, ok := parseDateField(c, r.OpensOn, "opensOn")
	if !ok {
		return nil, false
	}
	closesOn, ok := parseDateField(c, r.ClosesOn, "closesOn")
	if !ok {
		return nil, false
	}
	return &models.ProcurementNotice{
		Title:       r.Title,
		ReferenceNo: r.ReferenceNo,
		Summary:     r.Summary,
		DocumentURL: r.DocumentURL,
		OpensOn:     opensOn,
		ClosesOn:    closesOn,
		IsPublished: r.IsPublished,
	}, true
}

// List handles GET /v1/admin/procurement
func (h *ProcurementHandler) List(c *gin.Context) {
	if _, ok := requirePrincipal(c); !ok {
		return
	}
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		writeRepoError(c, err, "Procurement notice", "list procurement notices")
		return
	}
	c.JSON(http.StatusOK, gin.H{"notices": items, "total": len(items)})
}

// Get handles GET /v1/admin/procurement/:id
func (h *ProcurementHandler) Get(c *gin.Context) {
	if _, ok := requirePrincipal(c); !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	item, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		writeRepoError(c, err, "Procurement notice", "get procurement notice")
		return
	}
	c.JSON(http.StatusOK, item)
}

// Create handles POST /v1/admin/procurement
func (h *ProcurementHandler) Create(c *gin.Context) {
	if _, ok := requirePrincipal(c); !ok {
		return
	}
	var req procurementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	item, ok := req.toModel(c)
	if !ok {
		return
	}
	if err := h.repo.Create(c.Request.Context(), item); err != nil {
		writeRepoError(c, err, "Procurement notice", "create procurement notice")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// Update handles PUT /v1/admin/procurement/:id
func (h *ProcurementHandler) Update(c *gin.Context) {
	if _, ok := requirePrincipal(c); !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req procurementRequest
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
		writeRepoError(c, err, "Procurement notice", "update procurement notice")
		return
	}
	c.JSON(http.StatusOK, item)
}

// Delete handles DELETE /v1/admin/procurement/:id
func (h *ProcurementHandler) Delete(c *gin.Context) {
	if _, ok := requirePrincipal(c); !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		writeRepoError(c, err, "Procurement notice", "delete procurement notice")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
