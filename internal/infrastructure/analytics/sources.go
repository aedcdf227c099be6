package analytics

// Named source keys. wallet_stats is the primary source: without it a
// score cannot be computed, so its failure fails the whole fetch.
const (
	SourceWalletStats = "wallet_stats"
	SourceBridge      = "bridge"
	SourceSwaps       = "swaps"
	SourceLending     = "lending"
)

// Platform source keys. Each doubles as the URL path segment and the
// breakdown key, so they stay lowercase.
const (
	PlatformSyncSwap    = "syncswap"
	PlatformMute        = "mute"
	PlatformSpaceFi     = "spacefi"
	PlatformVelocore    = "velocore"
	PlatformIzumi       = "izumi"
	PlatformMaverick    = "maverick"
	PlatformPancakeSwap = "pancakeswap"
	PlatformOdos        = "odos"
	PlatformElement     = "element"
	PlatformZNS         = "zns"
	PlatformMintSquare  = "mintsquare"
	PlatformOrbiter     = "orbiter"
	PlatformHoldstation = "holdstation"
)

// Platforms lists every platform source in a stable order
var Platforms = []string{
	PlatformSyncSwap,
	PlatformMute,
	PlatformSpaceFi,
	PlatformVelocore,
	PlatformIzumi,
	PlatformMaverick,
	PlatformPancakeSwap,
	PlatformOdos,
	PlatformElement,
	PlatformZNS,
	PlatformMintSquare,
	PlatformOrbiter,
	PlatformHoldstation,
}

// AllSources returns every source key, named endpoints first
func AllSources() []string {
	sources := []string{SourceWalletStats, SourceBridge, SourceSwaps, SourceLending}
	return append(sources, Platforms...)
}
