package listing

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iota-uz/backoffice/pkg/colfilter"
	"github.com/iota-uz/backoffice/pkg/composables"
	"github.com/iota-uz/backoffice/pkg/itf"
	"github.com/iota-uz/backoffice/pkg/repo"
)

func TestPage_Export(t *testing.T) {
	t.Parallel()

	page := testPage(staticSource(estimateRows()...))
	ctx := context.Background()

	headers, cells, err := page.Export(ctx, ExportRequest{
		Search:  "A",
		Exclude: map[string][]string{"status": {"sent", "missing"}},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"Number", "Status"}, headers)
	// the search keeps Ana, Carla and Davi
	require.Equal(t, [][]string{{"1", "draft"}, {"3", "draft"}, {"4", "approved"}}, cells)

	_, _, err = page.Export(ctx, ExportRequest{Exclude: map[string][]string{"nope": {"x"}}})
	require.ErrorIs(t, err, colfilter.ErrUnknownColumn)
}

func TestPage_Export_FetchFailure(t *testing.T) {
	t.Parallel()

	page := testPage(DataSourceFunc[row](func(context.Context, Query) ([]row, error) {
		return nil, context.DeadlineExceeded
	}))
	_, _, err := page.Export(context.Background(), ExportRequest{})
	require.ErrorIs(t, err, ErrFetchFailed)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestTenantSource(t *testing.T) {
	t.Parallel()

	var gotFilters []repo.Filter
	source := TenantSource(func(ctx context.Context, filters []repo.Filter) ([]int, error) {
		gotFilters = filters
		_, err := composables.UseTx(ctx)
		require.NoError(t, err)
		return []int{1, 2}, nil
	}, func(n int) row {
		return row{Number: strconv.Itoa(n), Status: "draft"}
	})

	ctx := itf.NewTestContext().WithTx(&itf.Tx{}).Build()
	rows, err := source.Fetch(ctx, Query{Filters: []repo.Filter{repo.IsNull("deleted_at")}})
	require.NoError(t, err)
	require.Equal(t, []row{{Number: "1", Status: "draft"}, {Number: "2", Status: "draft"}}, rows)
	require.Equal(t, []repo.Filter{repo.IsNull("deleted_at")}, gotFilters)

	boom := errors.New("boom")
	failing := TenantSource(func(context.Context, []repo.Filter) ([]int, error) {
		return nil, boom
	}, func(n int) row { return row{} })
	_, err = failing.Fetch(ctx, Query{})
	require.ErrorIs(t, err, boom)
}
