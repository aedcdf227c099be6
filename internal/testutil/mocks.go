package testutil

import (
	"context"
	"errors"
	"sync"

	"github.com/bimakw/wallet-scorer/internal/domain/entities"
	"github.com/bimakw/wallet-scorer/internal/infrastructure/analytics"
)

type MockCall struct {
	Method string
	Args   []interface{}
}

// MockRankRepository is a mock implementation of RankRepository
type MockRankRepository struct {
	mu    sync.RWMutex
	ranks []entities.Rank

	// Function hooks for custom behavior
	GetActiveFunc func(ctx context.Context) ([]entities.Rank, error)
	GetAllFunc    func(ctx context.Context) ([]entities.Rank, error)

	// Call tracking
	Calls []MockCall
}

func NewMockRankRepository() *MockRankRepository {
	return &MockRankRepository{
		ranks: make([]entities.Rank, 0),
		Calls: make([]MockCall, 0),
	}
}

func (m *MockRankRepository) GetActive(ctx context.Context) ([]entities.Rank, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, MockCall{Method: "GetActive", Args: nil})
	m.mu.Unlock()

	if m.GetActiveFunc != nil {
		return m.GetActiveFunc(ctx)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]entities.Rank, 0, len(m.ranks))
	for _, rank := range m.ranks {
		if rank.IsActive {
			result = append(result, rank)
		}
	}
	return result, nil
}

func (m *MockRankRepository) GetAll(ctx context.Context) ([]entities.Rank, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, MockCall{Method: "GetAll", Args: nil})
	m.mu.Unlock()

	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]entities.Rank, len(m.ranks))
	copy(result, m.ranks)
	return result, nil
}

// SetRanks replaces the mock store contents
func (m *MockRankRepository) SetRanks(ranks ...entities.Rank) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ranks = ranks
}

// Reset clears all stored data and calls
func (m *MockRankRepository) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ranks = make([]entities.Rank, 0)
	m.Calls = make([]MockCall, 0)
}

// MockTokenRegistryRepository is a mock implementation of TokenRegistryRepository
type MockTokenRegistryRepository struct {
	mu        sync.RWMutex
	addresses []string
	tokens    []entities.RegistryToken

	// Function hooks
	GetMemeTokenAddressesFunc func(ctx context.Context) ([]string, error)
	GetByCategoryFunc         func(ctx context.Context, category string) ([]entities.RegistryToken, error)

	Calls []MockCall
}

func NewMockTokenRegistryRepository() *MockTokenRegistryRepository {
	return &MockTokenRegistryRepository{
		addresses: make([]string, 0),
		tokens:    make([]entities.RegistryToken, 0),
		Calls:     make([]MockCall, 0),
	}
}

func (m *MockTokenRegistryRepository) GetMemeTokenAddresses(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, MockCall{Method: "GetMemeTokenAddresses", Args: nil})
	m.mu.Unlock()

	if m.GetMemeTokenAddressesFunc != nil {
		return m.GetMemeTokenAddressesFunc(ctx)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]string, len(m.addresses))
	copy(result, m.addresses)
	return result, nil
}

func (m *MockTokenRegistryRepository) GetByCategory(ctx context.Context, category string) ([]entities.RegistryToken, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, MockCall{Method: "GetByCategory", Args: []interface{}{category}})
	m.mu.Unlock()

	if m.GetByCategoryFunc != nil {
		return m.GetByCategoryFunc(ctx, category)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]entities.RegistryToken, 0)
	for _, token := range m.tokens {
		if token.Category == category {
			result = append(result, token)
		}
	}
	return result, nil
}

// AddMemeAddress adds meme token addresses to the mock store
func (m *MockTokenRegistryRepository) AddMemeAddress(addresses ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.addresses = append(m.addresses, addresses...)
}

// AddToken adds a registry token to the mock store
func (m *MockTokenRegistryRepository) AddToken(token entities.RegistryToken) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens = append(m.tokens, token)
}

// Reset clears all stored data and calls
func (m *MockTokenRegistryRepository) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.addresses = make([]string, 0)
	m.tokens = make([]entities.RegistryToken, 0)
	m.Calls = make([]MockCall, 0)
}

// MockSnapshotFetcher is a mock implementation of the snapshot fetcher
type MockSnapshotFetcher struct {
	mu sync.RWMutex

	// Snapshot and Err are returned when FetchFunc is not set
	Snapshot *analytics.WalletSnapshot
	Err      error

	FetchFunc func(ctx context.Context, address string) (*analytics.WalletSnapshot, error)

	Calls []MockCall
}

func NewMockSnapshotFetcher() *MockSnapshotFetcher {
	return &MockSnapshotFetcher{
		Calls: make([]MockCall, 0),
	}
}

func (m *MockSnapshotFetcher) Fetch(ctx context.Context, address string) (*analytics.WalletSnapshot, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, MockCall{Method: "Fetch", Args: []interface{}{address}})
	m.mu.Unlock()

	if m.FetchFunc != nil {
		return m.FetchFunc(ctx, address)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.Err != nil {
		return nil, m.Err
	}
	if m.Snapshot != nil {
		return m.Snapshot, nil
	}
	return CreateTestSnapshot(), nil
}

// MockHealthChecker is a mock implementation of HealthChecker
type MockHealthChecker struct {
	mu sync.RWMutex

	Healthy bool
	Error   error
	Calls   []MockCall
}

func NewMockHealthChecker(healthy bool) *MockHealthChecker {
	var err error
	if !healthy {
		err = errors.New("health check failed")
	}
	return &MockHealthChecker{
		Healthy: healthy,
		Error:   err,
		Calls:   make([]MockCall, 0),
	}
}

func (m *MockHealthChecker) HealthCheck(ctx context.Context) error {
	m.mu.Lock()
	m.Calls = append(m.Calls, MockCall{Method: "HealthCheck", Args: nil})
	m.mu.Unlock()

	return m.Error
}

func (m *MockHealthChecker) SetHealthy(healthy bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Healthy = healthy
	if healthy {
		m.Error = nil
	} else {
		m.Error = errors.New("health check failed")
	}
}
