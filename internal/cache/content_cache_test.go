package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// The public site must keep working with caching disabled; every method on a
// nil cache or nil client is a no-op.
func TestContentCache_NilSafe(t *testing.T) {
	ctx := context.Background()

	var nilCache *ContentCache
	items, ok := nilCache.PublishedArticles(ctx)
	assert.Nil(t, items)
	assert.False(t, ok)
	nilCache.StorePublishedArticles(ctx, nil)
	nilCache.InvalidateArticles(ctx)

	noClient := NewContentCache(nil)
	items, ok = noClient.PublishedArticles(ctx)
	assert.Nil(t, items)
	assert.False(t, ok)
	noClient.StorePublishedArticles(ctx, nil)
	noClient.InvalidateArticles(ctx)
}
