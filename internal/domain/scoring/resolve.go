package scoring

// BalancePoints scores the wallet's native balance in USD
func BalancePoints(usd float64) int {
	return lookup(balanceTiers, usd)
}

// WalletAgePoints scores the wallet's age in days
func WalletAgePoints(days int) int {
	return lookup(walletAgeTiers, float64(days))
}

// TransactionPoints scores the wallet's lifetime transaction count
func TransactionPoints(txns int) int {
	return lookup(transactionTiers, float64(txns))
}

// NFTCollectionPoints scores the number of distinct NFT collections held
func NFTCollectionPoints(collections int) int {
	return lookup(nftCollectionTiers, float64(collections))
}

// TokenValuePoints scores the combined USD value of plain token holdings
func TokenValuePoints(usd float64) int {
	return lookup(tokenValueTiers, usd)
}

// MemeTokenValuePoints scores the combined USD value of meme token holdings
func MemeTokenValuePoints(usd float64) int {
	return lookup(memeTokenValueTiers, usd)
}

// SwapPoints scores swap activity: volume tier plus count tier
func SwapPoints(usd float64, txCount int) int {
	return lookup(swapVolumeTiers, usd) + lookup(swapCountTiers, float64(txCount))
}

// BridgeVolumePoints scores bridged USD volume in one direction
func BridgeVolumePoints(usd float64) int {
	return lookup(bridgeVolumeTiers, usd)
}

// BridgeCountPoints scores bridge transactions in one direction
func BridgeCountPoints(count int) int {
	return lookup(bridgeCountTiers, float64(count))
}

// LendingPoints scores a lending position: USD tier plus event-count tier.
// Used for both the supply side (deposits) and the borrow side.
func LendingPoints(usd float64, count int) int {
	return lookup(lendingUsdTiers, usd) + lookup(lendingCountTiers, float64(count))
}

// PlatformPoints scores activity on one platform: count tier plus volume
// tier. Platforms with bespoke count tables resolve through their override.
func PlatformPoints(platform string, txCount int, usdVolume float64) int {
	countTiers := platformCountTiers
	if override, ok := platformCountOverrides[platform]; ok {
		countTiers = override
	}
	return lookup(countTiers, float64(txCount)) + lookup(platformVolumeTiers, usdVolume)
}
