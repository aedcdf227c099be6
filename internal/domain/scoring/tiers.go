// Package scoring holds the fixed threshold tables and the pure point/rank
// resolution logic. Nothing here performs I/O.
package scoring

import "math"

// Tier is one row of a threshold table: meeting Threshold earns Points.
type Tier struct {
	Threshold float64
	Points    int
}

// Tables are ordered by descending threshold so the first match wins.
// A value below the lowest threshold, zero, negative or NaN earns nothing.

var balanceTiers = []Tier{
	{10000, 1000},
	{5000, 750},
	{1000, 500},
	{500, 250},
	{100, 100},
}

var walletAgeTiers = []Tier{
	{731, 1000},
	{366, 500},
	{181, 250},
	{31, 100},
}

var transactionTiers = []Tier{
	{500, 1000},
	{250, 750},
	{100, 500},
	{50, 250},
	{10, 100},
	{1, 50},
}

var nftCollectionTiers = []Tier{
	{20, 1000},
	{10, 500},
	{5, 250},
	{1, 100},
}

var tokenValueTiers = []Tier{
	{10000, 1000},
	{1000, 500},
	{500, 250},
	{100, 100},
}

var memeTokenValueTiers = []Tier{
	{1000, 500},
	{500, 250},
	{100, 100},
	{10, 50},
}

var swapVolumeTiers = []Tier{
	{50000, 1000},
	{10000, 500},
	{1000, 250},
	{100, 100},
}

var swapCountTiers = []Tier{
	{100, 500},
	{50, 250},
	{25, 100},
	{10, 50},
	{1, 25},
}

var bridgeVolumeTiers = []Tier{
	{50000, 1000},
	{10000, 500},
	{1000, 250},
	{100, 100},
}

var bridgeCountTiers = []Tier{
	{50, 500},
	{25, 250},
	{10, 100},
	{5, 50},
	{1, 25},
}

var lendingUsdTiers = []Tier{
	{10000, 1000},
	{1000, 500},
	{500, 250},
	{100, 100},
}

var lendingCountTiers = []Tier{
	{50, 500},
	{20, 250},
	{10, 100},
	{1, 50},
}

// Shared platform tables; a few platforms with count-only shapes get their
// own count table below.

var platformCountTiers = []Tier{
	{100, 500},
	{50, 400},
	{25, 300},
	{10, 200},
	{5, 100},
	{1, 50},
}

var platformVolumeTiers = []Tier{
	{100000, 1000},
	{50000, 750},
	{10000, 500},
	{1000, 250},
	{100, 100},
}

var platformCountOverrides = map[string][]Tier{
	"zns": {
		{25, 500},
		{10, 300},
		{5, 200},
		{2, 100},
		{1, 50},
	},
	"mintsquare": {
		{50, 500},
		{25, 300},
		{10, 200},
		{5, 100},
		{1, 50},
	},
}

// lookup returns the points of the first tier whose threshold the value
// meets. NaN and non-positive values earn nothing.
func lookup(tiers []Tier, value float64) int {
	if math.IsNaN(value) || value <= 0 {
		return 0
	}
	for _, t := range tiers {
		if value >= t.Threshold {
			return t.Points
		}
	}
	return 0
}
