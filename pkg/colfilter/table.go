package colfilter

import (
	"errors"
	"strings"
)

var ErrUnknownColumn = errors.New("unknown filter column")

// ColumnDef describes one filterable column of a page.
type ColumnDef[R any] struct {
	Key     string
	Label   string
	Project func(R) string
	Order   Order
	// Fixed replaces the derived values with a constant list shown in the
	// given order, e.g. every inventory status whether or not a row has it.
	Fixed []string
	// ProjectAll marks a multi-valued column (agent roles). A row matches
	// when any of its values is selected. Project still renders the cell.
	ProjectAll func(R) []string
}

// Column is a column definition bound to its per-session state.
type Column[R any] struct {
	ColumnDef[R]
	State
}

// Recompute derives the column values from the full row set and
// synchronizes the selection with them.
func (c *Column[R]) Recompute(rows []R) []string {
	var values []string
	switch {
	case c.Fixed != nil:
		values = append([]string(nil), c.Fixed...)
	case c.ProjectAll != nil:
		values = DistinctAll(rows, c.ProjectAll, c.Order)
	default:
		values = Distinct(rows, c.Project, c.Order)
	}
	c.Sync(values)
	return values
}

func (c *Column[R]) Matches(row R) bool {
	if c.ProjectAll != nil {
		return MatchesAny(row, c.ProjectAll, c.selected())
	}
	return Matches(row, c.Project, c.selected())
}

// Schema is the static filter layout of a page: its columns and the fields
// consulted by the free-text search.
type Schema[R any] struct {
	Columns []ColumnDef[R]
	Search  []func(R) string
}

// NewTable returns a table with every column uninitialized.
func (s Schema[R]) NewTable() *Table[R] {
	t := &Table[R]{
		index:  make(map[string]*Column[R], len(s.Columns)),
		fields: s.Search,
	}
	for _, def := range s.Columns {
		col := &Column[R]{ColumnDef: def, State: State{Selected: NewSet()}}
		t.columns = append(t.columns, col)
		t.index[def.Key] = col
	}
	return t
}

// Table holds every column filter of one listing plus its search term.
// It is not safe for concurrent use.
type Table[R any] struct {
	columns []*Column[R]
	index   map[string]*Column[R]
	fields  []func(R) string
	term    string
}

func (t *Table[R]) Columns() []*Column[R] {
	return t.columns
}

func (t *Table[R]) Column(key string) (*Column[R], error) {
	col, ok := t.index[key]
	if !ok {
		return nil, ErrUnknownColumn
	}
	return col, nil
}

// Recompute refreshes every column from rows, the unfiltered row set.
func (t *Table[R]) Recompute(rows []R) {
	for _, col := range t.columns {
		col.Recompute(rows)
	}
}

func (t *Table[R]) SearchTerm() string {
	return t.term
}

func (t *Table[R]) SetSearch(term string) {
	t.term = term
}

// MatchesSearch is a case-insensitive substring match against the search
// fields. A blank term matches every row.
func (t *Table[R]) MatchesSearch(row R) bool {
	term := strings.TrimSpace(t.term)
	if term == "" {
		return true
	}
	needle := fold(term)
	for _, field := range t.fields {
		if strings.Contains(fold(field(row)), needle) {
			return true
		}
	}
	return false
}

// Matches is the composite predicate: the search and every column.
func (t *Table[R]) Matches(row R) bool {
	if !t.MatchesSearch(row) {
		return false
	}
	for _, col := range t.columns {
		if !col.Matches(row) {
			return false
		}
	}
	return true
}

func (t *Table[R]) Filter(rows []R) []R {
	out := make([]R, 0, len(rows))
	for _, row := range rows {
		if t.Matches(row) {
			out = append(out, row)
		}
	}
	return out
}

func (t *Table[R]) Toggle(key, value string) error {
	col, err := t.Column(key)
	if err != nil {
		return err
	}
	col.Toggle(value)
	return nil
}

func (t *Table[R]) ToggleAll(key string) error {
	col, err := t.Column(key)
	if err != nil {
		return err
	}
	col.ToggleAll()
	return nil
}

// Only shows the rows whose key column equals value.
func (t *Table[R]) Only(key, value string) error {
	col, err := t.Column(key)
	if err != nil {
		return err
	}
	col.Only(value)
	return nil
}

// SelectAll resets one column to every value, leaving the others alone.
func (t *Table[R]) SelectAll(key string) error {
	col, err := t.Column(key)
	if err != nil {
		return err
	}
	col.Clear()
	return nil
}

// Clear resets every column to "all selected" and drops the search term.
func (t *Table[R]) Clear() {
	for _, col := range t.columns {
		col.Clear()
	}
	t.term = ""
}

// IsActive drives the "clear filters" affordance.
func (t *Table[R]) IsActive() bool {
	if strings.TrimSpace(t.term) != "" {
		return true
	}
	for _, col := range t.columns {
		if col.IsActive() {
			return true
		}
	}
	return false
}

// States exports the column states keyed by column key.
func (t *Table[R]) States() map[string]State {
	out := make(map[string]State, len(t.columns))
	for _, col := range t.columns {
		out[col.Key] = col.State.Clone()
	}
	return out
}

// Restore loads previously exported states. Keys that no longer match a
// column are ignored.
func (t *Table[R]) Restore(states map[string]State, term string) {
	for key, st := range states {
		col, ok := t.index[key]
		if !ok {
			continue
		}
		col.State = st.Clone()
	}
	t.term = term
}
