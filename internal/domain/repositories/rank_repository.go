package repositories

import (
	"context"

	"github.com/bimakw/wallet-scorer/internal/domain/entities"
)

// RankRepository defines the interface for rank table operations
type RankRepository interface {
	// GetActive retrieves active ranks ordered by min_points ascending
	GetActive(ctx context.Context) ([]entities.Rank, error)

	// GetAll retrieves every rank regardless of active flag
	GetAll(ctx context.Context) ([]entities.Rank, error)
}
