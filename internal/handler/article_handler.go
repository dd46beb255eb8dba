package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wahanakarya/cms_api/internal/cache"
	"github.com/wahanakarya/cms_api/internal/models"
	"github.com/wahanakarya/cms_api/internal/repository"
)

// ArticleHandler handles admin article management.
type ArticleHandler struct {
	repo  *repository.ArticleRepository
	cache *cache.ContentCache
}

// NewArticleHandler constructs an ArticleHandler.
func NewArticleHandler(repo *repository.ArticleRepository, cc *cache.ContentCache) *ArticleHandler {
	return &ArticleHandler{repo: repo, cache: cc}
}

type articleRequest struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Excerpt     string `json:"excerpt"`
	Body        string `json:"body"`
	CoverURL    string `json:"coverUrl"`
	IsPublished bool   `json:"isPublished"`
}

func (r *articleRequest) validate(c *gin.Context) bool {
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

// List handles GET /v1/admin/articles
func (h *ArticleHandler) List(c *gin.Context) {
	if _, ok := requirePrincipal(c); !ok {
		return
	}
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		writeRepoError(c, err, "Article", "list articles")
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": items, "total": len(items)})
}

// Get handles GET /v1/admin/articles/:id
func (h *ArticleHandler) Get(c *gin.Context) {
	if _, ok := requirePrincipal(c); !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	item, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		writeRepoError(c, err, "Article", "get article")
		return
	}
	c.JSON(http.StatusOK, item)
}

// Create handles POST /v1/admin/articles
func (h *ArticleHandler) Create(c *gin.Context) {
	user, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var req articleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !req.validate(c) {
		return
	}

	item := &models.Article{
		Title:       req.Title,
		Slug:        req.Slug,
		Excerpt:     req.Excerpt,
		Body:        req.Body,
		CoverURL:    req.CoverURL,
		AuthorID:    &user.ID,
		IsPublished: req.IsPublished,
	}
	if err := h.repo.Create(c.Request.Context(), item); err != nil {
		writeRepoError(c, err, "Article", "create article")
		return
	}
	h.cache.InvalidateArticles(c.Request.Context())
	c.JSON(http.StatusCreated, item)
}

// Update handles PUT /v1/admin/articles/:id
func (h *ArticleHandler) Update(c *gin.Context) {
	if _, ok := requirePrincipal(c); !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req articleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !req.validate(c) {
		return
	}

	// Load first so published_at survives edits to an already published
	// article.
	item, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		writeRepoError(c, err, "Article", "update article")
		return
	}
	item.Title = req.Title
	item.Slug = req.Slug
	item.Excerpt = req.Excerpt
	item.Body = req.Body
	item.CoverURL = req.CoverURL
	item.IsPublished = req.IsPublished
	if !req.IsPublished {
		item.PublishedAt = nil
	}

	if err := h.repo.Update(c.Request.Context(), item); err != nil {
		writeRepoError(c, err, "Article", "update article")
		return
	}
	h.cache.InvalidateArticles(c.Request.Context())
	c.JSON(http.StatusOK, item)
}

// Delete handles DELETE /v1/admin/articles/:id
func (h *ArticleHandler) Delete(c *gin.Context) {
	if _, ok := requirePrincipal(c); !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		writeRepoError(c, err, "Article", "delete article")
		return
	}
	h.cache.InvalidateArticles(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"success": true})
}
