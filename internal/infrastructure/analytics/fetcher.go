package analytics

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrWalletStatsUnavailable marks a failed fetch of the primary source.
// Every other source degrades to zero; this one aborts the whole call.
var ErrWalletStatsUnavailable = errors.New("wallet stats source unavailable")

// Fetcher fans one wallet address out across every analytics source and
// collects the results into a snapshot. All sources are fetched
// concurrently; there is no ordering dependency between them.
type Fetcher struct {
	client *Client
	logger *zap.Logger
}

// NewFetcher creates a fetcher on top of the analytics client
func NewFetcher(client *Client, logger *zap.Logger) *Fetcher {
	return &Fetcher{
		client: client,
		logger: logger,
	}
}

// Fetch gathers every source for the given wallet. Non-primary failures
// are logged, counted and recorded in Degraded while their metrics stay
// zero. A primary-source failure cancels the remaining fetches and
// returns an error wrapping ErrWalletStatsUnavailable.
func (f *Fetcher) Fetch(ctx context.Context, address string) (*WalletSnapshot, error) {
	snap := &WalletSnapshot{
		Platforms: make(map[string]PlatformActivity, len(Platforms)),
	}

	var mu sync.Mutex
	degrade := func(source string, err error) {
		f.logger.Warn("Analytics source degraded, contributing zero",
			zap.String("source", source),
			zap.String("wallet", address),
			zap.Error(err),
		)
		recordDegraded(source)
		mu.Lock()
		snap.Degraded = append(snap.Degraded, source)
		mu.Unlock()
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var payload WalletStatsPayload
		path := fmt.Sprintf("/wallets/%s/stats", address)
		if err := f.client.GetJSON(gctx, SourceWalletStats, path, &payload); err != nil {
			return fmt.Errorf("%w: %v", ErrWalletStatsUnavailable, err)
		}
		mu.Lock()
		snap.Stats = payload
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		var payload BridgePayload
		path := fmt.Sprintf("/wallets/%s/bridge", address)
		if err := f.client.GetJSON(gctx, SourceBridge, path, &payload); err != nil {
			degrade(SourceBridge, err)
			return nil
		}
		mu.Lock()
		snap.Bridge = payload
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		var payload SwapsPayload
		path := fmt.Sprintf("/wallets/%s/swaps", address)
		if err := f.client.GetJSON(gctx, SourceSwaps, path, &payload); err != nil {
			degrade(SourceSwaps, err)
			return nil
		}
		mu.Lock()
		snap.Swaps = payload
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		var payload LendingPayload
		path := fmt.Sprintf("/wallets/%s/lending", address)
		if err := f.client.GetJSON(gctx, SourceLending, path, &payload); err != nil {
			degrade(SourceLending, err)
			return nil
		}
		mu.Lock()
		snap.Lending = payload
		mu.Unlock()
		return nil
	})

	for _, platform := range Platforms {
		platform := platform
		g.Go(func() error {
			activity, err := f.fetchPlatform(gctx, platform, address)
			if err != nil {
				degrade(platform, err)
				activity = PlatformActivity{}
			}
			mu.Lock()
			snap.Platforms[platform] = activity
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Strings(snap.Degraded)
	return snap, nil
}

// fetchPlatform decodes the platform's payload shape and normalizes it
func (f *Fetcher) fetchPlatform(ctx context.Context, platform, address string) (PlatformActivity, error) {
	path := fmt.Sprintf("/platforms/%s/wallets/%s", platform, address)

	switch platform {
	case PlatformElement:
		var payload ElementPayload
		if err := f.client.GetJSON(ctx, platform, path, &payload); err != nil {
			return PlatformActivity{}, err
		}
		return payload.Activity(), nil

	case PlatformZNS:
		var payload ZNSPayload
		if err := f.client.GetJSON(ctx, platform, path, &payload); err != nil {
			return PlatformActivity{}, err
		}
		return payload.Activity(), nil

	case PlatformMintSquare:
		var payload MintSquarePayload
		if err := f.client.GetJSON(ctx, platform, path, &payload); err != nil {
			return PlatformActivity{}, err
		}
		return payload.Activity(), nil

	case PlatformOrbiter:
		var payload OrbiterPayload
		if err := f.client.GetJSON(ctx, platform, path, &payload); err != nil {
			return PlatformActivity{}, err
		}
		return payload.Activity(), nil

	case PlatformHoldstation:
		var payload HoldstationPayload
		if err := f.client.GetJSON(ctx, platform, path, &payload); err != nil {
			return PlatformActivity{}, err
		}
		return payload.Activity(), nil

	default:
		var payload GenericPlatformPayload
		if err := f.client.GetJSON(ctx, platform, path, &payload); err != nil {
			return PlatformActivity{}, err
		}
		return payload.Activity(), nil
	}
}
