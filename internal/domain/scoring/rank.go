package scoring

import "github.com/bimakw/wallet-scorer/internal/domain/entities"

// ResolveRank finds the rank whose interval contains the points total.
// Ranks are expected ordered by min_points ascending; the first match wins.
// Returns nil when nothing matches, which the caller serves as a null rank.
func ResolveRank(ranks []entities.Rank, points int) *entities.Rank {
	for i := range ranks {
		if ranks[i].Contains(points) {
			matched := ranks[i]
			return &matched
		}
	}
	return nil
}
