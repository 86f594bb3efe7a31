package engine

import (
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	cache "github.com/patrickmn/go-cache"

	"github.com/yourusername/scoreline/internal/config"
	"github.com/yourusername/scoreline/internal/metrics"
	"github.com/yourusername/scoreline/internal/models"
)

// snapshotNamespace scopes content-hash keys to snapshots
var snapshotNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("scoreline.market_snapshot"))

// KeyFor derives a content key from the canonical form of the snapshot, so two
// identical snapshots share a projection. Non-finite prices are keyed like any other.
func KeyFor(s *models.MarketSnapshot) (uuid.UUID, error) {
	if s == nil {
		return uuid.Nil, models.ErrNilSnapshot
	}
	return uuid.NewSHA1(snapshotNamespace, canonicalSnapshot(s)), nil
}

func canonicalSnapshot(s *models.MarketSnapshot) []byte {
	var b strings.Builder
	field := func(name, value string) {
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(value)
		b.WriteByte(';')
	}
	num := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	optional := func(v *float64) string {
		if v == nil {
			return "nil"
		}
		return num(*v)
	}
	quotes := func(name string, qs []models.PriceQuote) {
		field(name, strconv.Itoa(len(qs)))
		for _, q := range qs {
			field("label", strconv.Quote(q.Label))
			field("price", num(q.Price))
		}
	}

	field("event", strconv.Quote(s.EventID))
	field("home", strconv.Quote(s.Teams.Home))
	field("away", strconv.Quote(s.Teams.Away))
	field("score", strconv.Itoa(s.Score.Home)+":"+strconv.Itoa(s.Score.Away))

	if s.Moneyline == nil {
		field("moneyline", "nil")
	} else {
		quotes("moneyline", s.Moneyline.Quotes)
	}

	field("totals", strconv.Itoa(len(s.Totals)))
	for _, t := range s.Totals {
		field("line", num(t.Line))
		field("over", optional(t.OverPrice))
		field("under", optional(t.UnderPrice))
	}

	if s.TeamGoals == nil {
		field("team_goals", "nil")
	} else {
		quotes("team_goals_home", s.TeamGoals.Home.Quotes)
		quotes("team_goals_away", s.TeamGoals.Away.Quotes)
	}

	return []byte(b.String())
}

// ResultCache provides in-memory caching for projections
type ResultCache struct {
	cache   *cache.Cache
	ttl     time.Duration
	maxSize int

	mu        sync.Mutex
	hitCount  atomic.Uint64
	missCount atomic.Uint64
}

// NewResultCache creates a new result cache
func NewResultCache(ttl time.Duration, maxSize int) *ResultCache {
	return &ResultCache{
		cache:   cache.New(ttl, ttl*2),
		ttl:     ttl,
		maxSize: maxSize,
	}
}

// NewResultCacheFromConfig creates a result cache from the cache section
func NewResultCacheFromConfig(cfg *config.CacheConfig) *ResultCache {
	return NewResultCache(cfg.TTL(), cfg.MaxSize)
}

// Get retrieves a copy of a cached projection
func (rc *ResultCache) Get(key uuid.UUID) (*models.Projection, bool) {
	if result, found := rc.cache.Get(key.String()); found {
		if p, ok := result.(*models.Projection); ok {
			rc.hitCount.Add(1)
			return p.Clone(), true
		}
	}
	rc.missCount.Add(1)
	return nil, false
}

// Set stores a copy of the projection. When the cache is full after purging
// expired entries, the projection is not stored.
func (rc *ResultCache) Set(key uuid.UUID, p *models.Projection) bool {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	if rc.cache.ItemCount() >= rc.maxSize {
		rc.cache.DeleteExpired()
		if rc.cache.ItemCount() >= rc.maxSize {
			return false
		}
	}

	rc.cache.Set(key.String(), p.Clone(), rc.ttl)
	return true
}

// DeleteExpired purges expired entries
func (rc *ResultCache) DeleteExpired() {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.cache.DeleteExpired()
}

// Clear flushes the entire cache and resets statistics
func (rc *ResultCache) Clear() {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	rc.cache.Flush()
	rc.hitCount.Store(0)
	rc.missCount.Store(0)
}

// Stats returns cache statistics
func (rc *ResultCache) Stats() (hits, misses uint64, ratio float64) {
	hits = rc.hitCount.Load()
	misses = rc.missCount.Load()
	if total := hits + misses; total > 0 {
		ratio = float64(hits) / float64(total)
	}
	return
}

// ItemCount returns the number of items in cache, expired or not
func (rc *ResultCache) ItemCount() int {
	return rc.cache.ItemCount()
}

// PublishMetrics updates the cache gauges
func (rc *ResultCache) PublishMetrics() {
	_, _, ratio := rc.Stats()
	metrics.UpdateCacheStats(ratio, rc.ItemCount())
}
