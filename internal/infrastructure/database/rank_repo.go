package database

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/bimakw/wallet-scorer/internal/domain/entities"
	"github.com/bimakw/wallet-scorer/internal/domain/repositories"
)

// Ensure RankRepo implements RankRepository
var _ repositories.RankRepository = (*RankRepo)(nil)

// RankRepo implements RankRepository using PostgreSQL
type RankRepo struct {
	db *sqlx.DB
}

// NewRankRepo creates a new rank repository
func NewRankRepo(db *sqlx.DB) *RankRepo {
	return &RankRepo{db: db}
}

// rankRow mirrors the ranks table. The points bounds are stored as text
// columns, so they are parsed after scanning rather than cast in SQL.
type rankRow struct {
	ID           int64          `db:"id"`
	Name         string         `db:"name"`
	MinPoints    string         `db:"min_points"`
	MaxPoints    sql.NullString `db:"max_points"`
	LogoURL      string         `db:"logo_url"`
	Color        string         `db:"color"`
	Description  string         `db:"description"`
	DisplayOrder int            `db:"display_order"`
	IsActive     bool           `db:"is_active"`
}

// toEntity parses the text bounds. An unparsable min becomes 0 and an
// unparsable or NULL max becomes open-ended.
func (row rankRow) toEntity() entities.Rank {
	rank := entities.Rank{
		ID:           row.ID,
		Name:         row.Name,
		LogoURL:      row.LogoURL,
		Color:        row.Color,
		Description:  row.Description,
		DisplayOrder: row.DisplayOrder,
		IsActive:     row.IsActive,
	}

	if v, err := strconv.Atoi(strings.TrimSpace(row.MinPoints)); err == nil {
		rank.MinPoints = v
	}
	if row.MaxPoints.Valid {
		if v, err := strconv.Atoi(strings.TrimSpace(row.MaxPoints.String)); err == nil {
			rank.MaxPoints = &v
		}
	}

	return rank
}

const rankColumns = `id, name, min_points, max_points, logo_url, color, description, display_order, is_active`

// GetActive retrieves active ranks ordered by min_points ascending
func (r *RankRepo) GetActive(ctx context.Context) ([]entities.Rank, error) {
	var rows []rankRow
	query := `SELECT ` + rankColumns + ` FROM ranks WHERE is_active = TRUE ORDER BY display_order ASC`

	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to get active ranks: %w", err)
	}

	return sortedRanks(rows), nil
}

// GetAll retrieves every rank regardless of active flag
func (r *RankRepo) GetAll(ctx context.Context) ([]entities.Rank, error) {
	var rows []rankRow
	query := `SELECT ` + rankColumns + ` FROM ranks ORDER BY display_order ASC`

	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to get ranks: %w", err)
	}

	return sortedRanks(rows), nil
}

// sortedRanks converts rows and orders them by min points ascending.
// min_points is text in the store, so ordering happens after parsing.
func sortedRanks(rows []rankRow) []entities.Rank {
	ranks := make([]entities.Rank, 0, len(rows))
	for _, row := range rows {
		ranks = append(ranks, row.toEntity())
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].MinPoints < ranks[j].MinPoints
	})
	return ranks
}
