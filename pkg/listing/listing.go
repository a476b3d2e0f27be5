package listing

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/iota-uz/backoffice/pkg/colfilter"
	"github.com/iota-uz/backoffice/pkg/composables"
)

var (
	// ErrStaleFetch is returned by Refresh when a fetch issued later has
	// already been applied; the stale rows are dropped.
	ErrStaleFetch  = errors.New("listing: stale fetch discarded")
	ErrFetchFailed = errors.New("listing: fetch failed")
)

var tracer = otel.Tracer("backoffice-listing")

// Listing is one page-session: the fetched rows and their column filters.
// It is safe for concurrent use.
type Listing[R any] struct {
	page         *Page[R]
	fetchTimeout time.Duration

	mu      sync.Mutex
	table   *colfilter.Table[R]
	rows    []R
	fetched bool
	issued  uint64
	applied uint64
}

func New[R any](page *Page[R]) *Listing[R] {
	return &Listing[R]{
		page:  page,
		table: page.Schema.NewTable(),
	}
}

// Refresh fetches the scoped rows and recomputes every column. A failed
// fetch leaves rows and filters untouched. Every fetch carries a generation
// number, and rows older than the last applied generation are discarded
// with ErrStaleFetch.
func (l *Listing[R]) Refresh(ctx context.Context) error {
	gen := l.begin()
	logger := composables.UseLogger(ctx).WithField("page", l.page.Name).WithField("generation", gen)

	ctx, span := tracer.Start(ctx, "listing.refresh", trace.WithAttributes(
		attribute.String("listing.page", l.page.Name),
		attribute.Int64("listing.generation", int64(gen)),
	))
	defer span.End()

	if l.fetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.fetchTimeout)
		defer cancel()
	}

	start := time.Now()
	rows, err := l.page.Source.Fetch(ctx, l.page.query())
	observeFetch(l.page.Name, start)
	if err != nil {
		countFetch(l.page.Name, "error")
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.WithError(err).Warn("listing: fetch failed; keeping previous rows")
		return fmt.Errorf("%w: %s: %w", ErrFetchFailed, l.page.Name, err)
	}

	if err := l.apply(gen, rows); err != nil {
		countFetch(l.page.Name, "stale")
		logger.Info("listing: dropping stale fetch")
		return err
	}
	countFetch(l.page.Name, "ok")
	setRows(l.page.Name, len(rows))
	span.SetAttributes(attribute.Int("listing.rows", len(rows)))
	return nil
}

func (l *Listing[R]) begin() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.issued++
	return l.issued
}

func (l *Listing[R]) apply(gen uint64, rows []R) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if gen < l.applied {
		return ErrStaleFetch
	}
	l.applied = gen
	l.rows = rows
	l.fetched = true
	l.table.Recompute(rows)
	return nil
}

// Fetched reports whether any fetch has been applied yet.
func (l *Listing[R]) Fetched() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fetched
}

// Update runs fn against the filter table under the listing lock.
func (l *Listing[R]) Update(fn func(t *colfilter.Table[R]) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return fn(l.table)
}

func (l *Listing[R]) Rows() []R {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]R(nil), l.rows...)
}

// Visible returns the rows passing the search and every column filter.
func (l *Listing[R]) Visible() []R {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.table.Filter(l.rows)
}

// Options returns the values of one column matching query.
func (l *Listing[R]) Options(column, query string) ([]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	col, err := l.table.Column(column)
	if err != nil {
		return nil, err
	}
	return col.Options(query), nil
}

// State exports what is persisted between requests.
func (l *Listing[R]) State() SessionState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return SessionState{
		Search:  l.table.SearchTerm(),
		Columns: l.table.States(),
	}
}

// Restore loads persisted filter state. Rows are not part of it: when rows
// are already cached the columns are resynchronized with them at once,
// otherwise the next Refresh does it.
func (l *Listing[R]) Restore(st SessionState) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.table.Restore(st.Columns, st.Search)
	if l.fetched {
		l.table.Recompute(l.rows)
	}
}

// Reset drops every filter, as if the session had never been seen.
func (l *Listing[R]) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.table = l.page.Schema.NewTable()
	if l.fetched {
		l.table.Recompute(l.rows)
	}
}

func (l *Listing[R]) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	visible := l.table.Filter(l.rows)
	snap := Snapshot{
		Page:    l.page.Name,
		Search:  l.table.SearchTerm(),
		Active:  l.table.IsActive(),
		Total:   len(l.rows),
		Visible: len(visible),
		Columns: make([]ColumnSnapshot, 0, len(l.table.Columns())),
	}
	for _, col := range l.table.Columns() {
		snap.Columns = append(snap.Columns, ColumnSnapshot{
			Key:      col.Key,
			Label:    col.Label,
			Options:  append([]string(nil), col.Values...),
			Selected: selectedInOrder(col.Values, col.Selected),
			Active:   col.IsActive(),
			Summary:  col.Summary(),
		})
	}
	if l.page.Aggregate != nil {
		snap.Aggregate = l.page.Aggregate(l.rows)
	}
	return snap
}

// Table renders the visible rows as display strings, one cell per column.
func (l *Listing[R]) Table() (headers []string, cells [][]string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	columns := l.table.Columns()
	headers = make([]string, 0, len(columns))
	for _, col := range columns {
		headers = append(headers, col.Label)
	}
	for _, row := range l.table.Filter(l.rows) {
		line := make([]string, 0, len(columns))
		for _, col := range columns {
			line = append(line, col.Project(row))
		}
		cells = append(cells, line)
	}
	return headers, cells
}

// selectedInOrder lists the selected values in display order, followed by
// stale selections that no longer occur in values.
func selectedInOrder(values []string, selected colfilter.Set) []string {
	out := make([]string, 0, selected.Len())
	seen := colfilter.NewSet()
	for _, v := range values {
		if selected.Contains(v) {
			out = append(out, v)
			seen.Add(v)
		}
	}
	for _, v := range selected.Sorted() {
		if !seen.Contains(v) {
			out = append(out, v)
		}
	}
	return out
}
