package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/wahanakarya/cms_api/internal/cache"
	"github.com/wahanakarya/cms_api/internal/models"
	"github.com/wahanakarya/cms_api/internal/repository"
)

// PublicHandler serves the unauthenticated site: published content reads and
// mailing-list signup.
type PublicHandler struct {
	articles     *repository.ArticleRepository
	testimonials *repository.TestimonialRepository
	media        *repository.MediaRepository
	jobs         *repository.JobPostingRepository
	procurement  *repository.ProcurementRepository
	reports      *repository.ReportRepository
	staff        *repository.StaffRepository
	galleries    *repository.GalleryRepository
	subscribers  *repository.SubscriberRepository
	cache        *cache.ContentCache
}

// PublicHandlerDeps bundles the repositories the public site reads from.
type PublicHandlerDeps struct {
	Articles     *repository.ArticleRepository
	Testimonials *repository.TestimonialRepository
	Media        *repository.MediaRepository
	Jobs         *repository.JobPostingRepository
	Procurement  *repository.ProcurementRepository
	Reports      *repository.ReportRepository
	Staff        *repository.StaffRepository
	Galleries    *repository.GalleryRepository
	Subscribers  *repository.SubscriberRepository
	Cache        *cache.ContentCache
}

// NewPublicHandler constructs a PublicHandler.
func NewPublicHandler(deps PublicHandlerDeps) *PublicHandler {
	return &PublicHandler{
		articles:     deps.Articles,
		testimonials: deps.Testimonials,
		media:        deps.Media,
		jobs:         deps.Jobs,
		procurement:  deps.Procurement,
		reports:      deps.Reports,
		staff:        deps.Staff,
		galleries:    deps.Galleries,
		subscribers:  deps.Subscribers,
		cache:        deps.Cache,
	}
}

// Health handles GET /v1/health
func (h *PublicHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListArticles handles GET /v1/articles. The published list is the hottest
// read on the site, so it goes through the content cache.
func (h *PublicHandler) ListArticles(c *gin.Context) {
	ctx := c.Request.Context()

	if items, ok := h.cache.PublishedArticles(ctx); ok {
		c.JSON(http.StatusOK, gin.H{"articles": items, "total": len(items)})
		return
	}

	items, err := h.articles.ListPublished(ctx)
	if err != nil {
		writeRepoError(c, err, "Article", "list articles")
		return
	}
	h.cache.StorePublishedArticles(ctx, items)
	c.JSON(http.StatusOK, gin.H{"articles": items, "total": len(items)})
}

// GetArticle handles GET /v1/articles/:slug
func (h *PublicHandler) GetArticle(c *gin.Context) {
	item, err := h.articles.GetPublishedBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeRepoError(c, err, "Article", "get article")
		return
	}
	c.JSON(http.StatusOK, item)
}

// ListTestimonials handles GET /v1/testimonials
func (h *PublicHandler) ListTestimonials(c *gin.Context) {
	items, err := h.testimonials.ListPublished(c.Request.Context())
	if err != nil {
		writeRepoError(c, err, "Testimonial", "list testimonials")
		return
	}
	c.JSON(http.StatusOK, gin.H{"testimonials": items, "total": len(items)})
}

// ListMedia handles GET /v1/media
func (h *PublicHandler) ListMedia(c *gin.Context) {
	items, err := h.media.ListPublished(c.Request.Context())
	if err != nil {
		writeRepoError(c, err, "Media item", "list media")
		return
	}
	c.JSON(http.StatusOK, gin.H{"media": items, "total": len(items)})
}

// ListJobs handles GET /v1/jobs
func (h *PublicHandler) ListJobs(c *gin.Context) {
	items, err := h.jobs.ListPublished(c.Request.Context())
	if err != nil {
		writeRepoError(c, err, "Job posting", "list job postings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": items, "total": len(items)})
}

// ListProcurement handles GET /v1/procurement
func (h *PublicHandler) ListProcurement(c *gin.Context) {
	items, err := h.procurement.ListPublished(c.Request.Context())
	if err != nil {
		writeRepoError(c, err, "Procurement notice", "list procurement notices")
		return
	}
	c.JSON(http.StatusOK, gin.H{"notices": items, "total": len(items)})
}

// ListReports handles GET /v1/reports
func (h *PublicHandler) ListReports(c *gin.Context) {
	items, err := h.reports.ListPublished(c.Request.Context())
	if err != nil {
		writeRepoError(c, err, "Report", "list reports")
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": items, "total": len(items)})
}

// ListStaff handles GET /v1/staff
func (h *PublicHandler) ListStaff(c *gin.Context) {
	items, err := h.staff.ListActive(c.Request.Context())
	if err != nil {
		writeRepoError(c, err, "Staff profile", "list staff profiles")
		return
	}
	c.JSON(http.StatusOK, gin.H{"staff": items, "total": len(items)})
}

// ListGalleries handles GET /v1/galleries
func (h *PublicHandler) ListGalleries(c *gin.Context) {
	items, err := h.galleries.ListPublished(c.Request.Context())
	if err != nil {
		writeRepoError(c, err, "Gallery", "list galleries")
		return
	}
	c.JSON(http.StatusOK, gin.H{"galleries": items, "total": len(items)})
}

// GetGallery handles GET /v1/galleries/:slug
func (h *PublicHandler) GetGallery(c *gin.Context) {
	item, err := h.galleries.GetPublishedBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeRepoError(c, err, "Gallery", "get gallery")
		return
	}
	c.JSON(http.StatusOK, item)
}

// Subscribe handles POST /v1/subscribe. Duplicate signups are a conflict,
// not an error worth hiding.
func (h *PublicHandler) Subscribe(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		respondError(c, http.StatusBadRequest, "email is required")
		return
	}

	sub := &models.Subscriber{Email: req.Email}
	if err := h.subscribers.Create(c.Request.Context(), sub); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			respondError(c, http.StatusConflict, "Already subscribed")
			return
		}
		writeRepoError(c, err, "Subscriber", "subscribe")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true})
}
