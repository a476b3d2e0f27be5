package listing

import "github.com/iota-uz/backoffice/pkg/colfilter"

// ColumnSnapshot is what a filter dropdown renders.
type ColumnSnapshot struct {
	Key      string            `json:"key"`
	Label    string            `json:"label"`
	Options  []string          `json:"options"`
	Selected []string          `json:"selected"`
	Active   bool              `json:"active"`
	Summary  colfilter.Summary `json:"summary"`
}

type Snapshot struct {
	Page    string           `json:"page"`
	Search  string           `json:"search"`
	Active  bool             `json:"active"`
	Total   int              `json:"total"`
	Visible int              `json:"visible"`
	Columns []ColumnSnapshot `json:"columns"`
	// Aggregate is computed over every fetched row, not just the visible ones.
	Aggregate any `json:"aggregate,omitempty"`
}

// SessionState is the persisted part of a listing.
type SessionState struct {
	Search  string                     `json:"search"`
	Columns map[string]colfilter.State `json:"columns"`
}
