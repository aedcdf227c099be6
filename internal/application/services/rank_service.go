package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/bimakw/wallet-scorer/internal/domain/entities"
	"github.com/bimakw/wallet-scorer/internal/infrastructure/cache"
)

// RankService serves the active rank table
type RankService struct {
	rankCache *cache.RankCache
	logger    *zap.Logger
}

// NewRankService creates a new rank service
func NewRankService(rankCache *cache.RankCache, logger *zap.Logger) *RankService {
	return &RankService{
		rankCache: rankCache,
		logger:    logger,
	}
}

// RanksResponse wraps the rank list for API response
type RanksResponse struct {
	Data []entities.Rank `json:"data"`
}

// GetActiveRanks lists active ranks ordered by min_points ascending.
// A degraded registry yields an empty list, never an error.
func (s *RankService) GetActiveRanks(ctx context.Context) *RanksResponse {
	ranks := s.rankCache.Get(ctx)
	if ranks == nil {
		ranks = []entities.Rank{}
	}
	return &RanksResponse{Data: ranks}
}
