package entities

// Rank represents a named score bracket from the registry
type Rank struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	MinPoints    int    `json:"min_points"`
	MaxPoints    *int   `json:"max_points"` // nil means no upper bound
	LogoURL      string `json:"logo_url"`
	Color        string `json:"color"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"display_order"`
	IsActive     bool   `json:"is_active"`
}

// Contains reports whether the points total falls inside this rank's interval
func (r *Rank) Contains(points int) bool {
	if points < r.MinPoints {
		return false
	}
	return r.MaxPoints == nil || points <= *r.MaxPoints
}
