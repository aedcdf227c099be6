package scoring

import (
	"testing"

	"github.com/bimakw/wallet-scorer/internal/domain/entities"
)

func intPtr(v int) *int { return &v }

func testRanks() []entities.Rank {
	return []entities.Rank{
		{ID: 1, Name: "Bronze", MinPoints: 0, MaxPoints: intPtr(999)},
		{ID: 2, Name: "Silver", MinPoints: 1000, MaxPoints: intPtr(4999)},
		{ID: 3, Name: "Gold", MinPoints: 5000, MaxPoints: intPtr(9999)},
		{ID: 4, Name: "Diamond", MinPoints: 10000, MaxPoints: nil},
	}
}

func TestResolveRank_MiddleInterval(t *testing.T) {
	rank := ResolveRank(testRanks(), 2500)
	if rank == nil {
		t.Fatal("expected a rank, got nil")
	}
	if rank.Name != "Silver" {
		t.Errorf("expected Silver, got %s", rank.Name)
	}
}

func TestResolveRank_BoundsInclusive(t *testing.T) {
	tests := []struct {
		points int
		want   string
	}{
		{0, "Bronze"},
		{999, "Bronze"},
		{1000, "Silver"},
		{4999, "Silver"},
		{5000, "Gold"},
		{10000, "Diamond"},
	}

	for _, tt := range tests {
		rank := ResolveRank(testRanks(), tt.points)
		if rank == nil {
			t.Fatalf("points %d: expected a rank, got nil", tt.points)
		}
		if rank.Name != tt.want {
			t.Errorf("points %d: expected %s, got %s", tt.points, tt.want, rank.Name)
		}
	}
}

func TestResolveRank_OpenEndedTop(t *testing.T) {
	rank := ResolveRank(testRanks(), 1000000)
	if rank == nil {
		t.Fatal("expected a rank, got nil")
	}
	if rank.Name != "Diamond" {
		t.Errorf("expected Diamond, got %s", rank.Name)
	}
}

func TestResolveRank_NoMatch(t *testing.T) {
	ranks := []entities.Rank{
		{ID: 1, Name: "Silver", MinPoints: 1000, MaxPoints: intPtr(4999)},
	}
	if rank := ResolveRank(ranks, 500); rank != nil {
		t.Errorf("expected nil rank, got %s", rank.Name)
	}
}

func TestResolveRank_EmptyList(t *testing.T) {
	if rank := ResolveRank(nil, 500); rank != nil {
		t.Errorf("expected nil rank for empty list, got %s", rank.Name)
	}
}

func TestResolveRank_ReturnsCopy(t *testing.T) {
	ranks := testRanks()
	rank := ResolveRank(ranks, 0)
	if rank == nil {
		t.Fatal("expected a rank, got nil")
	}

	rank.Name = "mutated"
	if ranks[0].Name != "Bronze" {
		t.Errorf("resolved rank aliases the input slice: %s", ranks[0].Name)
	}
}
