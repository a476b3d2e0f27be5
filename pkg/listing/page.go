// Package listing owns the row set behind a filterable list page: it fetches
// rows through an injected data source, keeps the column filters in sync with
// every fetch and exposes the visible rows plus the filter state for the UI.
package listing

import (
	"context"

	"github.com/iota-uz/backoffice/pkg/colfilter"
	"github.com/iota-uz/backoffice/pkg/composables"
	"github.com/iota-uz/backoffice/pkg/repo"
)

// Query names the collection to read and the scope predicate applied by the
// data source. Column filters are never pushed down: values must be derived
// from the full scoped row set.
type Query struct {
	Collection string
	Filters    []repo.Filter
}

// DataSource is the data-access capability a page depends on.
type DataSource[R any] interface {
	Fetch(ctx context.Context, q Query) ([]R, error)
}

type DataSourceFunc[R any] func(ctx context.Context, q Query) ([]R, error)

func (f DataSourceFunc[R]) Fetch(ctx context.Context, q Query) ([]R, error) {
	return f(ctx, q)
}

// Page is the static definition of one list page.
type Page[R any] struct {
	// Name identifies the page in session keys, metrics and logs,
	// e.g. "commercial.estimates".
	Name       string
	Collection string
	Scope      []repo.Filter
	Schema     colfilter.Schema[R]
	Source     DataSource[R]
	// Aggregate optionally summarizes the full fetched row set (header cards).
	Aggregate func(rows []R) any
}

func (p *Page[R]) query() Query {
	return Query{
		Collection: p.Collection,
		Filters:    append([]repo.Filter(nil), p.Scope...),
	}
}

// TenantSource reads entities with list inside a tenant transaction and maps
// each one to a row.
func TenantSource[T, R any](list func(ctx context.Context, filters []repo.Filter) ([]T, error), toRow func(T) R) DataSource[R] {
	return DataSourceFunc[R](func(ctx context.Context, q Query) ([]R, error) {
		entities, err := composables.InTenantTxResult(ctx, func(txCtx context.Context) ([]T, error) {
			return list(txCtx, q.Filters)
		})
		if err != nil {
			return nil, err
		}
		rows := make([]R, 0, len(entities))
		for _, e := range entities {
			rows = append(rows, toRow(e))
		}
		return rows, nil
	})
}
