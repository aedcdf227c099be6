package repositories

import (
	"context"

	"github.com/bimakw/wallet-scorer/internal/domain/entities"
)

// TokenRegistryRepository defines the interface for the curated token registry
type TokenRegistryRepository interface {
	// GetMemeTokenAddresses retrieves contract addresses of enabled meme tokens
	GetMemeTokenAddresses(ctx context.Context) ([]string, error)

	// GetByCategory retrieves enabled tokens in a category
	GetByCategory(ctx context.Context, category string) ([]entities.RegistryToken, error)
}
