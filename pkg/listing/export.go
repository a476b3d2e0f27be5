package listing

import (
	"context"

	"github.com/iota-uz/backoffice/pkg/colfilter"
)

// ExportRequest is the filter state applied to a freshly fetched page when
// no browser session exists.
type ExportRequest struct {
	Search string
	// Exclude hides values per column key. Values not offered by the column
	// are ignored.
	Exclude map[string][]string
}

// Export fetches the page once, applies req and renders the visible rows.
func (p *Page[R]) Export(ctx context.Context, req ExportRequest) (headers []string, cells [][]string, err error) {
	l := New(p)
	if err := l.Refresh(ctx); err != nil {
		return nil, nil, err
	}
	err = l.Update(func(t *colfilter.Table[R]) error {
		t.SetSearch(req.Search)
		for column, values := range req.Exclude {
			col, err := t.Column(column)
			if err != nil {
				return err
			}
			for _, v := range values {
				if col.Selected.Contains(v) {
					col.Toggle(v)
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	headers, cells = l.Table()
	return headers, cells, nil
}
