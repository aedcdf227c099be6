package entities

import (
	"strings"
	"time"
)

// RegistryToken represents a curated token entry in the registry
type RegistryToken struct {
	Address   string    `db:"address"`
	Symbol    string    `db:"symbol"`
	Name      string    `db:"name"`
	Decimals  int       `db:"decimals"`
	Category  string    `db:"category"`
	IsEnabled bool      `db:"is_enabled"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// MemeTokenSet is a membership set over meme token contract addresses.
// Addresses are lowercased on construction so lookups work no matter
// how upstream sources checksum them.
type MemeTokenSet struct {
	addresses map[string]struct{}
}

// NewMemeTokenSet builds a set from the given addresses
func NewMemeTokenSet(addresses []string) *MemeTokenSet {
	set := &MemeTokenSet{addresses: make(map[string]struct{}, len(addresses))}
	for _, addr := range addresses {
		set.addresses[strings.ToLower(addr)] = struct{}{}
	}
	return set
}

// Contains reports whether the address belongs to the set
func (s *MemeTokenSet) Contains(address string) bool {
	if s == nil {
		return false
	}
	_, ok := s.addresses[strings.ToLower(address)]
	return ok
}

// Size returns the number of addresses in the set
func (s *MemeTokenSet) Size() int {
	if s == nil {
		return 0
	}
	return len(s.addresses)
}

// Addresses returns the normalized addresses in no particular order
func (s *MemeTokenSet) Addresses() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.addresses))
	for addr := range s.addresses {
		out = append(out, addr)
	}
	return out
}
