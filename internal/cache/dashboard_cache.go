package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/ikedoebber/organizer-api/internal/dto"
	"github.com/redis/go-redis/v9"
)

const keySummary = "dashboard:summary:"

// DashboardCache caches per-user dashboard summaries in Redis. The
// payload only changes when the user writes, so every mutation path
// invalidates the user's key.
type DashboardCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewDashboardCache returns a new DashboardCache.
func NewDashboardCache(rdb *redis.Client, ttl time.Duration) *DashboardCache {
	return &DashboardCache{rdb: rdb, ttl: ttl}
}

func summaryKey(userID uint64) string {
	return keySummary + strconv.FormatUint(userID, 10)
}

// GetSummary returns the cached summary or nil on miss.
func (c *DashboardCache) GetSummary(ctx context.Context, userID uint64) (*dto.DashboardSummary, error) {
	b, err := c.rdb.Get(ctx, summaryKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var summary dto.DashboardSummary
	if err := json.Unmarshal(b, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// SetSummary stores the summary in cache.
func (c *DashboardCache) SetSummary(ctx context.Context, userID uint64, summary *dto.DashboardSummary) error {
	b, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, summaryKey(userID), b, c.ttl).Err()
}

// Invalidate removes the user's summary (cache invalidation on write).
func (c *DashboardCache) Invalidate(ctx context.Context, userID uint64) error {
	return c.rdb.Del(ctx, summaryKey(userID)).Err()
}
