package testutil

import (
	"github.com/bimakw/wallet-scorer/internal/domain/entities"
	"github.com/bimakw/wallet-scorer/internal/infrastructure/analytics"
)

// Common test addresses
const (
	TestWalletAddress  = "0x1111111111111111111111111111111111111111"
	OtherWalletAddress = "0x2222222222222222222222222222222222222222"
	ShibAddress        = "0x95ad61b0a150d79219dcf64e1e6cc01f0b64c4ce"
	PepeAddress        = "0x6982508145454ce325ddbe47a25d4ec3d2311933"
	PlainTokenAddress  = "0xdac17f958d2ee523a2206206994597c13d831ec7"
)

// CreateTestRank creates a test rank with default values
func CreateTestRank(opts ...RankOption) entities.Rank {
	r := entities.Rank{
		ID:           1,
		Name:         "Bronze",
		MinPoints:    0,
		MaxPoints:    PointerTo(999),
		LogoURL:      "https://cdn.example.com/ranks/bronze.png",
		Color:        "#cd7f32",
		Description:  "Starting out",
		DisplayOrder: 1,
		IsActive:     true,
	}

	for _, opt := range opts {
		opt(&r)
	}

	return r
}

type RankOption func(*entities.Rank)

func RankWithID(id int64) RankOption {
	return func(r *entities.Rank) {
		r.ID = id
	}
}

func RankWithName(name string) RankOption {
	return func(r *entities.Rank) {
		r.Name = name
	}
}

// RankWithBounds sets the points interval; pass nil max for open-ended
func RankWithBounds(min int, max *int) RankOption {
	return func(r *entities.Rank) {
		r.MinPoints = min
		r.MaxPoints = max
	}
}

func RankWithDisplayOrder(order int) RankOption {
	return func(r *entities.Rank) {
		r.DisplayOrder = order
	}
}

func RankWithActive(active bool) RankOption {
	return func(r *entities.Rank) {
		r.IsActive = active
	}
}

// DefaultRankTable returns the ladder used across service tests, ordered
// by min points ascending
func DefaultRankTable() []entities.Rank {
	return []entities.Rank{
		CreateTestRank(RankWithID(1), RankWithName("Bronze"), RankWithBounds(0, PointerTo(999)), RankWithDisplayOrder(1)),
		CreateTestRank(RankWithID(2), RankWithName("Silver"), RankWithBounds(1000, PointerTo(4999)), RankWithDisplayOrder(2)),
		CreateTestRank(RankWithID(3), RankWithName("Gold"), RankWithBounds(5000, PointerTo(9999)), RankWithDisplayOrder(3)),
		CreateTestRank(RankWithID(4), RankWithName("Diamond"), RankWithBounds(10000, nil), RankWithDisplayOrder(4)),
	}
}

// CreateTestSnapshot creates an empty snapshot: every metric zero and an
// activity entry present for every platform. Options add data on top, so
// each test controls exactly which points it expects.
func CreateTestSnapshot(opts ...SnapshotOption) *analytics.WalletSnapshot {
	snap := &analytics.WalletSnapshot{
		Platforms: make(map[string]analytics.PlatformActivity, len(analytics.Platforms)),
	}
	for _, platform := range analytics.Platforms {
		snap.Platforms[platform] = analytics.PlatformActivity{}
	}

	for _, opt := range opts {
		opt(snap)
	}

	return snap
}

type SnapshotOption func(*analytics.WalletSnapshot)

func SnapshotWithBalance(usd float64) SnapshotOption {
	return func(s *analytics.WalletSnapshot) {
		s.Stats.BalanceUsd = usd
	}
}

func SnapshotWithAge(days int) SnapshotOption {
	return func(s *analytics.WalletSnapshot) {
		s.Stats.AgeDays = days
	}
}

func SnapshotWithTxns(count int) SnapshotOption {
	return func(s *analytics.WalletSnapshot) {
		s.Stats.TotalTxns = count
	}
}

func SnapshotWithNFTCollections(count int) SnapshotOption {
	return func(s *analytics.WalletSnapshot) {
		s.Stats.NFTCollections = make([]analytics.NFTCollectionEntry, count)
		for i := range s.Stats.NFTCollections {
			s.Stats.NFTCollections[i] = analytics.NFTCollectionEntry{Count: 1}
		}
	}
}

func SnapshotWithHolding(address, symbol string, usdValue float64) SnapshotOption {
	return func(s *analytics.WalletSnapshot) {
		s.Stats.TokenHoldings = append(s.Stats.TokenHoldings, analytics.TokenHolding{
			Address:  address,
			Symbol:   symbol,
			UsdValue: usdValue,
		})
	}
}

func SnapshotWithBridge(payload analytics.BridgePayload) SnapshotOption {
	return func(s *analytics.WalletSnapshot) {
		s.Bridge = payload
	}
}

func SnapshotWithSwaps(payload analytics.SwapsPayload) SnapshotOption {
	return func(s *analytics.WalletSnapshot) {
		s.Swaps = payload
	}
}

func SnapshotWithLending(payload analytics.LendingPayload) SnapshotOption {
	return func(s *analytics.WalletSnapshot) {
		s.Lending = payload
	}
}

func SnapshotWithPlatform(platform string, txCount int, usdVolume float64) SnapshotOption {
	return func(s *analytics.WalletSnapshot) {
		s.Platforms[platform] = analytics.PlatformActivity{
			TxCount:   txCount,
			UsdVolume: usdVolume,
		}
	}
}

func SnapshotWithDegraded(sources ...string) SnapshotOption {
	return func(s *analytics.WalletSnapshot) {
		s.Degraded = append(s.Degraded, sources...)
	}
}

// PointerTo returns a pointer to the given value
func PointerTo[T any](v T) *T {
	return &v
}
