package entities

import "time"

// MetricPoints holds the observed value and awarded points for one native metric
type MetricPoints struct {
	Value  float64 `json:"value"`
	Points int     `json:"points"`
}

// PlatformPoints holds per-platform activity and the points it earned
type PlatformPoints struct {
	TxCount   int     `json:"tx_count"`
	UsdVolume float64 `json:"usd_volume"`
	Points    int     `json:"points"`
}

// PointsBreakdown itemizes where a wallet's points came from
type PointsBreakdown struct {
	Native    map[string]MetricPoints   `json:"native"`
	Platforms map[string]PlatformPoints `json:"platforms"`
}

// WalletScore represents the complete scoring result for a wallet
type WalletScore struct {
	WalletAddress string          `json:"wallet_address"`
	TotalPoints   int             `json:"total_points"`
	Rank          *Rank           `json:"rank"` // nil when no active rank matches
	Breakdown     PointsBreakdown `json:"breakdown"`
	LastUpdated   time.Time       `json:"last_updated"`
}
