package colfilter

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Phase is the lifecycle of a single column filter.
type Phase int

const (
	Uninitialized Phase = iota
	// Initialized is entered exactly once, when the column first sees values.
	Initialized
	// Synchronized is re-entered after every later recompute.
	Synchronized
)

func (p Phase) String() string {
	switch p {
	case Initialized:
		return "initialized"
	case Synchronized:
		return "synchronized"
	default:
		return "uninitialized"
	}
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Phase) UnmarshalText(text []byte) error {
	switch string(text) {
	case "", "uninitialized":
		*p = Uninitialized
	case "initialized":
		*p = Initialized
	case "synchronized":
		*p = Synchronized
	default:
		return fmt.Errorf("unknown filter phase %q", string(text))
	}
	return nil
}

// Initialize returns the all-inclusive selection for values.
func Initialize(values []string) Set {
	return NewSet(values...)
}

// Toggle adds value to selected when absent and removes it otherwise.
// The input set is left untouched. An empty result is legal and hides
// every row of the column.
func Toggle(selected Set, value string) Set {
	out := selected.Clone()
	if out.Contains(value) {
		out.Remove(value)
	} else {
		out.Add(value)
	}
	return out
}

// Clear resets a selection to "show everything".
func Clear(values []string) Set {
	return NewSet(values...)
}

// Matches reports whether the projected value of row is selected.
func Matches[R any](row R, project func(R) string, selected Set) bool {
	return selected.Contains(project(row))
}

// MatchesAny reports whether any projected value of row is selected. A row
// projecting no values never matches.
func MatchesAny[R any](row R, project func(R) []string, selected Set) bool {
	for _, v := range project(row) {
		if selected.Contains(v) {
			return true
		}
	}
	return false
}

// IsActive compares cardinalities only: a selection holding a stale value
// in place of a current one reports inactive. Use Diverged for membership.
func IsActive(selected Set, values []string) bool {
	return selected.Len() != len(values)
}

// Diverged reports whether selected differs from values as a set.
func Diverged(selected Set, values []string) bool {
	return !selected.Equal(NewSet(values...))
}

// State is the serializable part of a column filter.
type State struct {
	Values   []string `json:"values"`
	Selected Set      `json:"selected"`
	Phase    Phase    `json:"phase"`
}

// Sync replaces Values with the freshly computed values and patches
// Selected. The first non-empty sync initializes the selection to every
// value; later syncs add values unseen in both the previous Values and
// Selected. Nothing is ever removed from Selected here. It returns the
// values that were added to the selection.
func (s *State) Sync(values []string) []string {
	if s.Selected == nil {
		s.Selected = NewSet()
	}
	previous := NewSet(s.Values...)
	s.Values = values

	if s.Phase == Uninitialized {
		if len(values) == 0 {
			return nil
		}
		s.Selected = Initialize(values)
		s.Phase = Initialized
		return append([]string(nil), values...)
	}

	var added []string
	for _, v := range values {
		if previous.Contains(v) || s.Selected.Contains(v) {
			continue
		}
		s.Selected.Add(v)
		added = append(added, v)
	}
	s.Phase = Synchronized
	return added
}

func (s *State) Toggle(value string) {
	s.Selected = Toggle(s.selected(), value)
}

// ToggleAll selects nothing when every value is selected and everything
// otherwise.
func (s *State) ToggleAll() {
	if s.selected().Len() == len(s.Values) {
		s.Selected = NewSet()
		return
	}
	s.Selected = Initialize(s.Values)
}

func (s *State) Clear() {
	s.Selected = Clear(s.Values)
}

// Only narrows the selection to value alone. Unlike Toggle it never widens
// an existing selection, so repeated calls are idempotent.
func (s *State) Only(value string) {
	s.Selected = NewSet(value)
}

func (s *State) IsActive() bool {
	return IsActive(s.selected(), s.Values)
}

func (s *State) Diverged() bool {
	return Diverged(s.selected(), s.Values)
}

// Options returns the values containing query, ignoring case. An empty
// query returns every value.
func (s *State) Options(query string) []string {
	query = strings.TrimSpace(query)
	if query == "" {
		return append([]string(nil), s.Values...)
	}
	needle := fold(query)
	out := make([]string, 0, len(s.Values))
	for _, v := range s.Values {
		if strings.Contains(fold(v), needle) {
			out = append(out, v)
		}
	}
	return out
}

// Summary backs the "N of M selected" footer of the filter dropdown.
type Summary struct {
	Selected int  `json:"selected"`
	Total    int  `json:"total"`
	Empty    bool `json:"empty"`
}

func (s *State) Summary() Summary {
	n := s.selected().Len()
	return Summary{Selected: n, Total: len(s.Values), Empty: n == 0}
}

// Clone returns a deep copy.
func (s State) Clone() State {
	return State{
		Values:   append([]string(nil), s.Values...),
		Selected: s.selected().Clone(),
		Phase:    s.Phase,
	}
}

func (s *State) selected() Set {
	if s.Selected == nil {
		s.Selected = NewSet()
	}
	return s.Selected
}

// fold builds a fresh Caser per call; casers keep state and are not safe
// for concurrent use.
func fold(v string) string {
	return cases.Fold().String(v)
}
