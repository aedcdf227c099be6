package cache

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/bimakw/wallet-scorer/internal/domain/entities"
	"github.com/bimakw/wallet-scorer/internal/domain/repositories"
)

// Registry data changes rarely, so both caches are process-local with a
// fixed TTL, refreshed lazily on the first read after expiry. There is no
// invalidation API.
const (
	// RankTTL bounds how long the active rank table is served without a
	// registry round trip
	RankTTL = 60 * time.Second

	// MemeTokenTTL bounds how long the meme token set is served
	MemeTokenTTL = 300 * time.Second
)

// FallbackMemeTokenAddresses is served when the registry cannot produce the
// meme token list. Scoring keeps working against a known set rather than
// silently treating every holding as a plain token.
var FallbackMemeTokenAddresses = []string{
	"0x95ad61b0a150d79219dcf64e1e6cc01f0b64c4ce", // SHIB
	"0x6982508145454ce325ddbe47a25d4ec3d2311933", // PEPE
	"0xcf0c122c6b73ff809c693db761e7baebe62b6a2e", // FLOKI
	"0x761d38e5ddf6ccf6cf7c55759d5210750b5d60f3", // ELON
	"0x9813037ee2218799597d83d4a5b6f3b6778218d9", // BONE
	"0xa35923162c49cf95e6bf26623385eb431ad920d3", // TURBO
}

// RankCache serves the active rank table, refreshing from the repository
// once the TTL lapses. A failed refresh is not stamped, so the next read
// retries instead of holding the failure for a full TTL.
type RankCache struct {
	repo   repositories.RankRepository
	logger *zap.Logger
	now    func() time.Time
	ttl    time.Duration

	mu        sync.RWMutex
	ranks     []entities.Rank
	fetchedAt time.Time
}

// NewRankCache creates a rank cache with the standard TTL
func NewRankCache(repo repositories.RankRepository, logger *zap.Logger) *RankCache {
	return &RankCache{
		repo:   repo,
		logger: logger,
		now:    time.Now,
		ttl:    RankTTL,
	}
}

// Get returns the active ranks ordered by min_points ascending. When the
// registry is unreachable it returns an empty list; scoring then resolves
// to a null rank rather than failing the request.
func (c *RankCache) Get(ctx context.Context) []entities.Rank {
	c.mu.RLock()
	if c.fresh() {
		ranks := c.ranks
		c.mu.RUnlock()
		return ranks
	}
	c.mu.RUnlock()

	return c.refresh(ctx)
}

func (c *RankCache) fresh() bool {
	return !c.fetchedAt.IsZero() && c.now().Sub(c.fetchedAt) < c.ttl
}

// refresh runs outside the lock; concurrent refreshes are allowed and
// last-write-wins, which is fine for data this static.
func (c *RankCache) refresh(ctx context.Context) []entities.Rank {
	ranks, err := c.repo.GetActive(ctx)
	if err != nil {
		c.logger.Warn("Failed to refresh rank cache", zap.Error(err))
		return nil
	}

	c.mu.Lock()
	c.ranks = ranks
	c.fetchedAt = c.now()
	c.mu.Unlock()

	return ranks
}

// MemeTokenCache serves the meme token membership set. Unlike the rank
// cache, a failed refresh stamps the slot with the fallback set and holds
// it for the TTL, keeping meme classification deterministic while the
// registry is down.
type MemeTokenCache struct {
	repo   repositories.TokenRegistryRepository
	logger *zap.Logger
	now    func() time.Time
	ttl    time.Duration

	mu        sync.RWMutex
	set       *entities.MemeTokenSet
	fetchedAt time.Time
}

// NewMemeTokenCache creates a meme token cache with the standard TTL
func NewMemeTokenCache(repo repositories.TokenRegistryRepository, logger *zap.Logger) *MemeTokenCache {
	return &MemeTokenCache{
		repo:   repo,
		logger: logger,
		now:    time.Now,
		ttl:    MemeTokenTTL,
	}
}

// Get returns the current meme token set, never nil
func (c *MemeTokenCache) Get(ctx context.Context) *entities.MemeTokenSet {
	c.mu.RLock()
	if c.fresh() {
		set := c.set
		c.mu.RUnlock()
		return set
	}
	c.mu.RUnlock()

	return c.refresh(ctx)
}

func (c *MemeTokenCache) fresh() bool {
	return !c.fetchedAt.IsZero() && c.now().Sub(c.fetchedAt) < c.ttl
}

func (c *MemeTokenCache) refresh(ctx context.Context) *entities.MemeTokenSet {
	addresses, err := c.repo.GetMemeTokenAddresses(ctx)
	if err != nil {
		c.logger.Warn("Failed to refresh meme token cache, using fallback list", zap.Error(err))
		addresses = FallbackMemeTokenAddresses
	}

	set := entities.NewMemeTokenSet(addresses)

	c.mu.Lock()
	c.set = set
	c.fetchedAt = c.now()
	c.mu.Unlock()

	return set
}
