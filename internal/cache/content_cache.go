package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/wahanakarya/cms_api/internal/models"
)

const (
	publishedArticlesKey = "content:articles:published"
	publishedArticlesTTL = 5 * time.Minute
)

// ContentCache caches rendered public-site content in Redis. It is a pure
// read-through optimization: every method on a nil receiver or nil client is
// a no-op, so the site works without Redis.
type ContentCache struct {
	redis *RedisClient
}

// NewContentCache creates a new ContentCache. redis may be nil.
func NewContentCache(redis *RedisClient) *ContentCache {
	return &ContentCache{redis: redis}
}

// PublishedArticles returns the cached published-article list, or ok=false
// on a miss (or when caching is disabled).
func (c *ContentCache) PublishedArticles(ctx context.Context) ([]models.Article, bool) {
	if c == nil || c.redis == nil {
		return nil, false
	}
	raw, err := c.redis.Get(ctx, publishedArticlesKey)
	if err != nil {
		return nil, false
	}
	var items []models.Article
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Warn().Err(err).Msg("dropping corrupt article cache entry")
		_ = c.redis.Delete(ctx, publishedArticlesKey)
		return nil, false
	}
	return items, true
}

// StorePublishedArticles caches the published-article list. Failures are
// logged and ignored; the cache is never load-bearing.
func (c *ContentCache) StorePublishedArticles(ctx context.Context, items []models.Article) {
	if c == nil || c.redis == nil {
		return
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := c.redis.Set(ctx, publishedArticlesKey, string(raw), publishedArticlesTTL); err != nil {
		log.Warn().Err(err).Msg("failed to cache published articles")
	}
}

// InvalidateArticles drops the cached article list. Called after any admin
// article mutation.
func (c *ContentCache) InvalidateArticles(ctx context.Context) {
	if c == nil || c.redis == nil {
		return
	}
	if err := c.redis.Delete(ctx, publishedArticlesKey); err != nil {
		log.Warn().Err(err).Msg("failed to invalidate article cache")
	}
}
