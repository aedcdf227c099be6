package analytics

// Source payloads. Every field is optional on the wire; a missing field
// decodes to its zero value and simply earns no points.

// WalletStatsPayload is the primary source response
type WalletStatsPayload struct {
	NFTCollections []NFTCollectionEntry `json:"nftCollections"`
	TokenHoldings  []TokenHolding       `json:"tokenHoldings"`
	BalanceUsd     float64              `json:"balanceUsd"`
	AgeDays        int                  `json:"ageDays"`
	TotalTxns      int                  `json:"totalTxns"`
}

// NFTCollectionEntry is one held collection; scoring uses the number of
// entries, not the per-collection item count
type NFTCollectionEntry struct {
	Count int `json:"count"`
}

// TokenHolding is one token position with its USD valuation
type TokenHolding struct {
	Address  string  `json:"address"`
	Symbol   string  `json:"symbol"`
	UsdValue float64 `json:"usdValue"`
}

// BridgePayload reports bridged volume and counts in both directions
type BridgePayload struct {
	BridgedInUsd    float64 `json:"bridgedInUsd"`
	BridgedInCount  int     `json:"bridgedInCount"`
	BridgedOutUsd   float64 `json:"bridgedOutUsd"`
	BridgedOutCount int     `json:"bridgedOutCount"`
}

// SwapsPayload reports aggregate swap activity
type SwapsPayload struct {
	TotalUsd float64 `json:"totalUsd"`
	TxCount  int     `json:"txCount"`
}

// LendingPayload reports current lending positions and event counts
type LendingPayload struct {
	CurrentSupplyUsd float64 `json:"currentSupplyUsd"`
	CurrentBorrowUsd float64 `json:"currentBorrowUsd"`
	DepositCount     int     `json:"depositCount"`
	BorrowCount      int     `json:"borrowCount"`
}

// PlatformActivity is the normalized view every platform payload reduces
// to before scoring
type PlatformActivity struct {
	TxCount   int
	UsdVolume float64
}

// GenericPlatformPayload covers the DEX-style platforms that share a shape
type GenericPlatformPayload struct {
	TotalCount int     `json:"total_count"`
	TotalValue float64 `json:"total_value"`
}

// Activity normalizes the generic shape
func (p GenericPlatformPayload) Activity() PlatformActivity {
	return PlatformActivity{TxCount: p.TotalCount, UsdVolume: p.TotalValue}
}

// ElementPayload is the NFT marketplace response, itemized per contract
type ElementPayload struct {
	Trades []ElementTrade `json:"trades"`
}

// ElementTrade is trade activity against one NFT contract
type ElementTrade struct {
	ContractAddress string  `json:"contractAddress"`
	Count           int     `json:"count"`
	VolumeUsd       float64 `json:"volumeUsd"`
}

// Activity sums trades across contracts
func (p ElementPayload) Activity() PlatformActivity {
	var activity PlatformActivity
	for _, trade := range p.Trades {
		activity.TxCount += trade.Count
		activity.UsdVolume += trade.VolumeUsd
	}
	return activity
}

// ZNSPayload is the domain registrar response
type ZNSPayload struct {
	RegisteredCount int `json:"registeredCount"`
}

// Activity maps registrations to a count-only activity
func (p ZNSPayload) Activity() PlatformActivity {
	return PlatformActivity{TxCount: p.RegisteredCount}
}

// MintSquarePayload is the NFT minting platform response
type MintSquarePayload struct {
	MintCount          int `json:"mintCount"`
	CollectionsCreated int `json:"collectionsCreated"`
}

// Activity counts mints and created collections together
func (p MintSquarePayload) Activity() PlatformActivity {
	return PlatformActivity{TxCount: p.MintCount + p.CollectionsCreated}
}

// OrbiterPayload is the bridge aggregator response
type OrbiterPayload struct {
	DepositCount int     `json:"depositCount"`
	VolumeUsd    float64 `json:"volumeUsd"`
}

// Activity normalizes deposits and volume
func (p OrbiterPayload) Activity() PlatformActivity {
	return PlatformActivity{TxCount: p.DepositCount, UsdVolume: p.VolumeUsd}
}

// HoldstationPayload is the trading platform response
type HoldstationPayload struct {
	SubAccounts      int     `json:"subAccounts"`
	TradingVolumeUsd float64 `json:"tradingVolumeUsd"`
}

// Activity normalizes sub-accounts and trading volume
func (p HoldstationPayload) Activity() PlatformActivity {
	return PlatformActivity{TxCount: p.SubAccounts, UsdVolume: p.TradingVolumeUsd}
}

// WalletSnapshot is the fan-in result of one fetch across all sources.
// Degraded lists the sources that failed and contributed zeros; the
// primary source never appears there because its failure aborts the fetch.
type WalletSnapshot struct {
	Stats     WalletStatsPayload
	Bridge    BridgePayload
	Swaps     SwapsPayload
	Lending   LendingPayload
	Platforms map[string]PlatformActivity
	Degraded  []string
}
