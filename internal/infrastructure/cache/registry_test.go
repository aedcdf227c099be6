package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/bimakw/wallet-scorer/internal/domain/entities"
	"github.com/bimakw/wallet-scorer/internal/testutil"
)

func TestRankCache_Get_PopulatesOnFirstCall(t *testing.T) {
	repo := testutil.NewMockRankRepository()
	repo.SetRanks(testutil.DefaultRankTable()...)

	rankCache := NewRankCache(repo, zap.NewNop())

	ranks := rankCache.Get(context.Background())
	if len(ranks) != 4 {
		t.Fatalf("expected 4 ranks, got %d", len(ranks))
	}
	if ranks[0].Name != "Bronze" {
		t.Errorf("expected Bronze first, got %s", ranks[0].Name)
	}
}

func TestRankCache_Get_ServesFromCacheWithinTTL(t *testing.T) {
	repo := testutil.NewMockRankRepository()
	calls := 0
	repo.GetActiveFunc = func(ctx context.Context) ([]entities.Rank, error) {
		calls++
		return testutil.DefaultRankTable(), nil
	}

	current := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	rankCache := NewRankCache(repo, zap.NewNop())
	rankCache.now = func() time.Time { return current }

	rankCache.Get(context.Background())
	current = current.Add(RankTTL - time.Second)
	ranks := rankCache.Get(context.Background())

	if calls != 1 {
		t.Errorf("expected 1 repository call within TTL, got %d", calls)
	}
	if len(ranks) != 4 {
		t.Errorf("expected 4 ranks, got %d", len(ranks))
	}
}

func TestRankCache_Get_RefreshesAfterTTL(t *testing.T) {
	repo := testutil.NewMockRankRepository()
	calls := 0
	repo.GetActiveFunc = func(ctx context.Context) ([]entities.Rank, error) {
		calls++
		return testutil.DefaultRankTable(), nil
	}

	current := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	rankCache := NewRankCache(repo, zap.NewNop())
	rankCache.now = func() time.Time { return current }

	rankCache.Get(context.Background())
	current = current.Add(RankTTL + time.Second)
	rankCache.Get(context.Background())

	if calls != 2 {
		t.Errorf("expected a refresh after TTL expiry, got %d calls", calls)
	}
}

func TestRankCache_Get_FailureReturnsEmptyAndRetries(t *testing.T) {
	repo := testutil.NewMockRankRepository()
	calls := 0
	failing := true
	repo.GetActiveFunc = func(ctx context.Context) ([]entities.Rank, error) {
		calls++
		if failing {
			return nil, errors.New("registry down")
		}
		return testutil.DefaultRankTable(), nil
	}

	rankCache := NewRankCache(repo, zap.NewNop())

	// Failure degrades to an empty list and must not stamp the slot
	if ranks := rankCache.Get(context.Background()); len(ranks) != 0 {
		t.Errorf("expected empty ranks on failure, got %d", len(ranks))
	}
	if ranks := rankCache.Get(context.Background()); len(ranks) != 0 {
		t.Errorf("expected empty ranks on repeated failure, got %d", len(ranks))
	}
	if calls != 2 {
		t.Fatalf("failed refresh should retry on the next call, got %d calls", calls)
	}

	// Recovery is picked up immediately
	failing = false
	if ranks := rankCache.Get(context.Background()); len(ranks) != 4 {
		t.Errorf("expected 4 ranks after recovery, got %d", len(ranks))
	}
}

func TestRankCache_Get_FailureDoesNotServeStale(t *testing.T) {
	repo := testutil.NewMockRankRepository()
	failing := false
	repo.GetActiveFunc = func(ctx context.Context) ([]entities.Rank, error) {
		if failing {
			return nil, errors.New("registry down")
		}
		return testutil.DefaultRankTable(), nil
	}

	current := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	rankCache := NewRankCache(repo, zap.NewNop())
	rankCache.now = func() time.Time { return current }

	rankCache.Get(context.Background())

	current = current.Add(RankTTL + time.Second)
	failing = true

	if ranks := rankCache.Get(context.Background()); len(ranks) != 0 {
		t.Errorf("expired entries must not be served on refresh failure, got %d ranks", len(ranks))
	}
}

func TestMemeTokenCache_Get_PopulatesAndCaches(t *testing.T) {
	repo := testutil.NewMockTokenRegistryRepository()
	calls := 0
	repo.GetMemeTokenAddressesFunc = func(ctx context.Context) ([]string, error) {
		calls++
		return []string{testutil.ShibAddress, testutil.PepeAddress}, nil
	}

	current := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	memeCache := NewMemeTokenCache(repo, zap.NewNop())
	memeCache.now = func() time.Time { return current }

	set := memeCache.Get(context.Background())
	if set.Size() != 2 {
		t.Fatalf("expected 2 meme tokens, got %d", set.Size())
	}
	if !set.Contains(testutil.ShibAddress) {
		t.Error("expected set to contain SHIB")
	}
	// Membership is case-insensitive
	if !set.Contains("0x6982508145454CE325DDBE47A25D4EC3D2311933") {
		t.Error("expected case-insensitive membership")
	}
	if set.Contains(testutil.PlainTokenAddress) {
		t.Error("unexpected membership for a plain token")
	}

	current = current.Add(MemeTokenTTL - time.Second)
	memeCache.Get(context.Background())
	if calls != 1 {
		t.Errorf("expected 1 repository call within TTL, got %d", calls)
	}
}

func TestMemeTokenCache_Get_FallbackOnFailureHeldForTTL(t *testing.T) {
	repo := testutil.NewMockTokenRegistryRepository()
	calls := 0
	repo.GetMemeTokenAddressesFunc = func(ctx context.Context) ([]string, error) {
		calls++
		return nil, errors.New("registry down")
	}

	current := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	memeCache := NewMemeTokenCache(repo, zap.NewNop())
	memeCache.now = func() time.Time { return current }

	set := memeCache.Get(context.Background())
	if set.Size() != len(FallbackMemeTokenAddresses) {
		t.Fatalf("expected fallback set of %d, got %d", len(FallbackMemeTokenAddresses), set.Size())
	}
	for _, addr := range FallbackMemeTokenAddresses {
		if !set.Contains(addr) {
			t.Errorf("fallback set missing %s", addr)
		}
	}

	// Unlike the rank cache, the fallback is stamped and held for the TTL
	current = current.Add(MemeTokenTTL - time.Second)
	memeCache.Get(context.Background())
	if calls != 1 {
		t.Errorf("fallback should be held without retry within TTL, got %d calls", calls)
	}

	current = current.Add(2 * time.Second)
	memeCache.Get(context.Background())
	if calls != 2 {
		t.Errorf("expected a retry after TTL expiry, got %d calls", calls)
	}
}

func TestMemeTokenCache_Get_EmptyRegistryIsValid(t *testing.T) {
	repo := testutil.NewMockTokenRegistryRepository()

	memeCache := NewMemeTokenCache(repo, zap.NewNop())

	set := memeCache.Get(context.Background())
	if set == nil {
		t.Fatal("expected non-nil set")
	}
	if set.Size() != 0 {
		t.Errorf("an empty registry result is valid, got %d entries", set.Size())
	}
}
