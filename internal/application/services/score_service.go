package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/bimakw/wallet-scorer/internal/domain/entities"
	"github.com/bimakw/wallet-scorer/internal/domain/scoring"
	"github.com/bimakw/wallet-scorer/internal/infrastructure/analytics"
	"github.com/bimakw/wallet-scorer/internal/infrastructure/cache"
)

// nativeAssetAddress keys the synthetic holding that folds the native
// balance into the token value split
const nativeAssetAddress = "0x0000000000000000000000000000000000000000"

// SnapshotFetcher gathers every analytics source for one wallet
type SnapshotFetcher interface {
	Fetch(ctx context.Context, address string) (*analytics.WalletSnapshot, error)
}

// ScoreService computes wallet reputation scores
type ScoreService struct {
	fetcher   SnapshotFetcher
	rankCache *cache.RankCache
	memeCache *cache.MemeTokenCache
	respCache *cache.RedisCache
	logger    *zap.Logger
}

// NewScoreService creates a new score service. respCache may be nil; the
// engine then recomputes every request.
func NewScoreService(
	fetcher SnapshotFetcher,
	rankCache *cache.RankCache,
	memeCache *cache.MemeTokenCache,
	respCache *cache.RedisCache,
	logger *zap.Logger,
) *ScoreService {
	return &ScoreService{
		fetcher:   fetcher,
		rankCache: rankCache,
		memeCache: memeCache,
		respCache: respCache,
		logger:    logger,
	}
}

// WalletScoreResponse wraps the score for API response
type WalletScoreResponse struct {
	Data entities.WalletScore `json:"data"`
}

// CalculateWalletScore fetches every source for the wallet, converts each
// metric to points through the tier tables, sums the total and resolves
// the rank. Only an unavailable primary source returns an error; every
// other failure degrades to zero-valued metrics.
func (s *ScoreService) CalculateWalletScore(ctx context.Context, walletAddress string) (*WalletScoreResponse, error) {
	walletAddress = strings.ToLower(walletAddress)

	// Generate cache key
	cacheKey := fmt.Sprintf("score:%s", walletAddress)

	// Try cache first
	var cached WalletScoreResponse
	if s.respCache != nil {
		if err := s.respCache.Get(ctx, cacheKey, &cached); err == nil {
			s.logger.Debug("Cache hit", zap.String("key", cacheKey))
			return &cached, nil
		}
	}

	// Fan out across all sources
	snapshot, err := s.fetcher.Fetch(ctx, walletAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch wallet metrics: %w", err)
	}

	memeSet := s.memeCache.Get(ctx)
	plainValue, memeValue := splitHoldings(snapshot, memeSet)

	stats := snapshot.Stats
	native := map[string]entities.MetricPoints{
		"balance_usd": {
			Value:  stats.BalanceUsd,
			Points: scoring.BalancePoints(stats.BalanceUsd),
		},
		"wallet_age_days": {
			Value:  float64(stats.AgeDays),
			Points: scoring.WalletAgePoints(stats.AgeDays),
		},
		"total_txns": {
			Value:  float64(stats.TotalTxns),
			Points: scoring.TransactionPoints(stats.TotalTxns),
		},
		"nft_collections": {
			Value:  float64(len(stats.NFTCollections)),
			Points: scoring.NFTCollectionPoints(len(stats.NFTCollections)),
		},
		"token_value_usd": {
			Value:  plainValue,
			Points: scoring.TokenValuePoints(plainValue),
		},
		"meme_token_value_usd": {
			Value:  memeValue,
			Points: scoring.MemeTokenValuePoints(memeValue),
		},
		"swaps": {
			Value:  snapshot.Swaps.TotalUsd,
			Points: scoring.SwapPoints(snapshot.Swaps.TotalUsd, snapshot.Swaps.TxCount),
		},
		"bridge_in_volume": {
			Value:  snapshot.Bridge.BridgedInUsd,
			Points: scoring.BridgeVolumePoints(snapshot.Bridge.BridgedInUsd),
		},
		"bridge_in_count": {
			Value:  float64(snapshot.Bridge.BridgedInCount),
			Points: scoring.BridgeCountPoints(snapshot.Bridge.BridgedInCount),
		},
		"bridge_out_volume": {
			Value:  snapshot.Bridge.BridgedOutUsd,
			Points: scoring.BridgeVolumePoints(snapshot.Bridge.BridgedOutUsd),
		},
		"bridge_out_count": {
			Value:  float64(snapshot.Bridge.BridgedOutCount),
			Points: scoring.BridgeCountPoints(snapshot.Bridge.BridgedOutCount),
		},
		"lending_supply": {
			Value:  snapshot.Lending.CurrentSupplyUsd,
			Points: scoring.LendingPoints(snapshot.Lending.CurrentSupplyUsd, snapshot.Lending.DepositCount),
		},
		"lending_borrow": {
			Value:  snapshot.Lending.CurrentBorrowUsd,
			Points: scoring.LendingPoints(snapshot.Lending.CurrentBorrowUsd, snapshot.Lending.BorrowCount),
		},
	}

	platforms := make(map[string]entities.PlatformPoints, len(snapshot.Platforms))
	for platform, activity := range snapshot.Platforms {
		platforms[platform] = entities.PlatformPoints{
			TxCount:   activity.TxCount,
			UsdVolume: activity.UsdVolume,
			Points:    scoring.PlatformPoints(platform, activity.TxCount, activity.UsdVolume),
		}
	}

	total := 0
	for _, m := range native {
		total += m.Points
	}
	for _, p := range platforms {
		total += p.Points
	}

	rank := scoring.ResolveRank(s.rankCache.Get(ctx), total)

	response := &WalletScoreResponse{
		Data: entities.WalletScore{
			WalletAddress: walletAddress,
			TotalPoints:   total,
			Rank:          rank,
			Breakdown: entities.PointsBreakdown{
				Native:    native,
				Platforms: platforms,
			},
			LastUpdated: time.Now().UTC(),
		},
	}

	s.logger.Debug("Wallet score computed",
		zap.String("wallet", walletAddress),
		zap.Int("total_points", total),
		zap.Int("degraded_sources", len(snapshot.Degraded)),
	)

	// Cache the response
	if s.respCache != nil {
		if err := s.respCache.Set(ctx, cacheKey, response); err != nil {
			s.logger.Warn("Failed to cache response", zap.Error(err))
		}
	}

	return response, nil
}

// splitHoldings folds the native balance in as a synthetic holding, then
// routes each holding's USD value to the meme or plain bucket by registry
// membership
func splitHoldings(snapshot *analytics.WalletSnapshot, memeSet *entities.MemeTokenSet) (plain, meme float64) {
	holdings := make([]analytics.TokenHolding, 0, len(snapshot.Stats.TokenHoldings)+1)
	holdings = append(holdings, snapshot.Stats.TokenHoldings...)
	holdings = append(holdings, analytics.TokenHolding{
		Address:  nativeAssetAddress,
		Symbol:   "ETH",
		UsdValue: snapshot.Stats.BalanceUsd,
	})

	for _, holding := range holdings {
		if memeSet.Contains(holding.Address) {
			meme += holding.UsdValue
		} else {
			plain += holding.UsdValue
		}
	}
	return plain, meme
}
