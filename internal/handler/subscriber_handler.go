package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wahanakarya/cms_api/internal/repository"
)

// SubscriberHandler handles admin subscriber management. Subscribers sign up
// through the public endpoint; admins only review and remove them.
type SubscriberHandler struct {
	repo *repository.SubscriberRepository
}

// NewSubscriberHandler constructs a SubscriberHandler.
func NewSubscriberHandler(repo *repository.SubscriberRepository) *SubscriberHandler {
	return &SubscriberHandler{repo: repo}
}

// List handles GET /v1/admin/subscribers
func (h *SubscriberHandler) List(c *gin.Context) {
	if _, ok := requirePrincipal(c); !ok {
		return
	}
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		writeRepoError(c, err, "Subscriber", "list subscribers")
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscribers": items, "total": len(items)})
}

// Delete handles DELETE /v1/admin/subscribers/:id
func (h *SubscriberHandler) Delete(c *gin.Context) {
	if _, ok := requirePrincipal(c); !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		writeRepoError(c, err, "Subscriber", "delete subscriber")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
