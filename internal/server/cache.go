// internal/server/cache.go
package server

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lokeshpolkam/college-recommendation-system/internal/common/logger"
	"github.com/lokeshpolkam/college-recommendation-system/internal/common/metrics"
	"github.com/lokeshpolkam/college-recommendation-system/internal/query"
)

// ResponseCache memoizes serialized recommendation responses in Redis. The
// cache is strictly best effort: any Redis failure is logged and treated as
// a miss, never surfaced to the caller.
type ResponseCache struct {
	client *redis.Client
	logger logger.Logger
	ttl    time.Duration
	// runID scopes keys to one trained model so a retrain never serves
	// stale entries.
	runID string
}

func NewResponseCache(client *redis.Client, log logger.Logger, ttl time.Duration, runID string) *ResponseCache {
	return &ResponseCache{client: client, logger: log, ttl: ttl, runID: runID}
}

func (c *ResponseCache) key(req query.Request) string {
	return fmt.Sprintf("recommend:%s:%s:%d:%s", c.runID, req.Category, req.Rank, req.BranchPreference)
}

// Get returns the cached response body for req, if present.
func (c *ResponseCache) Get(ctx context.Context, req query.Request) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	data, err := c.client.Get(ctx, c.key(req)).Bytes()
	if err == redis.Nil {
		metrics.RecommendCacheHits.WithLabelValues("miss").Inc()
		return nil, false
	}
	if err != nil {
		metrics.RecommendCacheHits.WithLabelValues("error").Inc()
		c.logger.Warn("Response cache read failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, false
	}
	metrics.RecommendCacheHits.WithLabelValues("hit").Inc()
	return data, true
}

// Set stores a response body for req.
func (c *ResponseCache) Set(ctx context.Context, req query.Request, body []byte) {
	if c == nil {
		return
	}
	if err := c.client.Set(ctx, c.key(req), body, c.ttl).Err(); err != nil {
		c.logger.Warn("Response cache write failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
