package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/bimakw/wallet-scorer/internal/domain/entities"
	"github.com/bimakw/wallet-scorer/internal/domain/repositories"
)

// Ensure TokenRegistryRepo implements TokenRegistryRepository
var _ repositories.TokenRegistryRepository = (*TokenRegistryRepo)(nil)

// TokenRegistryRepo implements TokenRegistryRepository using PostgreSQL
type TokenRegistryRepo struct {
	db *sqlx.DB
}

// NewTokenRegistryRepo creates a new token registry repository
func NewTokenRegistryRepo(db *sqlx.DB) *TokenRegistryRepo {
	return &TokenRegistryRepo{db: db}
}

// GetMemeTokenAddresses retrieves contract addresses of enabled meme tokens
func (r *TokenRegistryRepo) GetMemeTokenAddresses(ctx context.Context) ([]string, error) {
	var addresses []string
	query := `SELECT address FROM token_registry WHERE category = 'meme' AND is_enabled = TRUE ORDER BY address`

	if err := r.db.SelectContext(ctx, &addresses, query); err != nil {
		return nil, fmt.Errorf("failed to get meme token addresses: %w", err)
	}

	return addresses, nil
}

// GetByCategory retrieves enabled tokens in a category
func (r *TokenRegistryRepo) GetByCategory(ctx context.Context, category string) ([]entities.RegistryToken, error) {
	var tokens []entities.RegistryToken
	query := `SELECT address, symbol, name, decimals, category, is_enabled, created_at, updated_at
		FROM token_registry WHERE category = $1 AND is_enabled = TRUE ORDER BY symbol`

	if err := r.db.SelectContext(ctx, &tokens, query, category); err != nil {
		return nil, fmt.Errorf("failed to get registry tokens: %w", err)
	}

	return tokens, nil
}
