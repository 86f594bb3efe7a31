package engine

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/scoreline/internal/models"
)

// CachedEngine wraps Engine with projection caching
type CachedEngine struct {
	engine *Engine
	cache  *ResultCache
	logger *logrus.Entry
}

// NewCachedEngine creates a new cached engine
func NewCachedEngine(engine *Engine, cache *ResultCache, logger *logrus.Logger) *CachedEngine {
	return &CachedEngine{
		engine: engine,
		cache:  cache,
		logger: logger.WithField("component", "projection_cache"),
	}
}

// Cache returns the underlying result cache
func (c *CachedEngine) Cache() *ResultCache {
	return c.cache
}

// ProjectSnapshot retrieves a projection with caching. Errors are never cached.
func (c *CachedEngine) ProjectSnapshot(ctx context.Context, s *models.MarketSnapshot) (*models.Projection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key, err := KeyFor(s)
	if err != nil {
		return nil, err
	}

	if cached, ok := c.cache.Get(key); ok {
		c.logger.WithField("cache_key", key.String()).Debug("Cache hit for projection")
		return cached, nil
	}

	c.logger.WithField("cache_key", key.String()).Debug("Cache miss, projecting")
	p, err := c.engine.ProjectSnapshot(ctx, s)
	if err != nil {
		return nil, err
	}

	if !c.cache.Set(key, p) {
		c.logger.WithField("cache_key", key.String()).Warn("Projection cache full, result not stored")
	}
	return p, nil
}
