package colfilter

import (
	"slices"

	"github.com/facette/natsort"
)

// Order controls how the distinct values of a column are listed.
type Order int

const (
	// Ascending is plain lexicographic order, used by most columns.
	Ascending Order = iota
	// NumericDescending lists numeric-looking values (document numbers) from
	// the highest to the lowest.
	NumericDescending
	// Descending is reversed lexicographic order (release years).
	Descending
)

func (o Order) String() string {
	switch o {
	case NumericDescending:
		return "numeric_desc"
	case Descending:
		return "desc"
	default:
		return "asc"
	}
}

// SortValues sorts values in place.
func SortValues(values []string, order Order) {
	switch order {
	case NumericDescending:
		slices.SortStableFunc(values, func(a, b string) int {
			switch {
			case natsort.Compare(b, a):
				return -1
			case natsort.Compare(a, b):
				return 1
			default:
				return 0
			}
		})
	case Descending:
		slices.Sort(values)
		slices.Reverse(values)
	default:
		slices.Sort(values)
	}
}

// Distinct projects every row, drops duplicates and sorts the result.
func Distinct[R any](rows []R, project func(R) string, order Order) []string {
	seen := make(Set, len(rows))
	values := make([]string, 0)
	for _, row := range rows {
		v := project(row)
		if seen.Contains(v) {
			continue
		}
		seen.Add(v)
		values = append(values, v)
	}
	SortValues(values, order)
	return values
}

// DistinctAll is Distinct for multi-valued columns.
func DistinctAll[R any](rows []R, project func(R) []string, order Order) []string {
	seen := make(Set, len(rows))
	values := make([]string, 0)
	for _, row := range rows {
		for _, v := range project(row) {
			if seen.Contains(v) {
				continue
			}
			seen.Add(v)
			values = append(values, v)
		}
	}
	SortValues(values, order)
	return values
}
