package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/2az2000/fabioCoffee/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	// MenuListCachePrefix keys cached menu listings; the embedded version
	// makes invalidation a single INCR.
	MenuListCachePrefix = "menu:v:"
	// MenuCacheVersionKey holds the current menu cache version.
	MenuCacheVersionKey = "menu:version"

	// DefaultMenuCacheTTL bounds staleness even if invalidation is missed.
	DefaultMenuCacheTTL = 5 * time.Minute
)

// MenuCache caches menu item listings in Redis. A nil *MenuCache (or one built
// from a nil client) disables caching entirely.
type MenuCache struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewMenuCache creates a MenuCache backed by the given Redis client. Returns
// nil when the client is nil so callers can treat caching as optional.
func NewMenuCache(client *redis.Client) *MenuCache {
	if client == nil {
		return nil
	}
	return &MenuCache{redis: client, ttl: DefaultMenuCacheTTL}
}

// GetItemList retrieves a cached item listing for the given filter key.
func (mc *MenuCache) GetItemList(ctx context.Context, categoryID, search string, activeOnly bool) ([]models.Item, bool) {
	if mc == nil {
		return nil, false
	}

	version, err := mc.getVersion(ctx)
	if err != nil {
		return nil, false
	}

	cached, err := mc.redis.Get(ctx, mc.listKey(version, categoryID, search, activeOnly)).Result()
	if err != nil {
		return nil, false
	}

	var items []models.Item
	if err := json.Unmarshal([]byte(cached), &items); err != nil {
		zap.L().Warn("Failed to unmarshal cached item list", zap.Error(err))
		return nil, false
	}
	return items, true
}

// SetItemListAsync caches an item listing without blocking the response.
func (mc *MenuCache) SetItemListAsync(categoryID, search string, activeOnly bool, items []models.Item) {
	if mc == nil {
		return
	}

	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		version, err := mc.getVersion(bgCtx)
		if err != nil {
			return
		}

		payload, err := json.Marshal(items)
		if err != nil {
			zap.L().Warn("Failed to marshal item list for cache", zap.Error(err))
			return
		}

		key := mc.listKey(version, categoryID, search, activeOnly)
		if err := mc.redis.Set(bgCtx, key, payload, mc.ttl).Err(); err != nil {
			zap.L().Warn("Failed to cache item list", zap.Error(err))
		}
	}()
}

// Invalidate drops every cached listing by bumping the version.
func (mc *MenuCache) Invalidate(ctx context.Context) {
	if mc == nil {
		return
	}
	if err := mc.redis.Incr(ctx, MenuCacheVersionKey).Err(); err != nil {
		zap.L().Warn("Failed to invalidate menu cache", zap.Error(err))
	}
}

func (mc *MenuCache) getVersion(ctx context.Context) (int64, error) {
	ver, err := mc.redis.Get(ctx, MenuCacheVersionKey).Int64()
	if err == redis.Nil {
		if err := mc.redis.Set(ctx, MenuCacheVersionKey, 1, 0).Err(); err != nil {
			return 0, err
		}
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return ver, nil
}

func (mc *MenuCache) listKey(version int64, categoryID, search string, activeOnly bool) string {
	return fmt.Sprintf("%s%d:c:%s:q:%s:a:%t", MenuListCachePrefix, version, categoryID, search, activeOnly)
}
