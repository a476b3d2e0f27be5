package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/iota-uz/backoffice/modules/inventory/domain/aggregates/manufacturer"
	"github.com/iota-uz/backoffice/modules/inventory/domain/aggregates/product"
	"github.com/iota-uz/backoffice/modules/inventory/domain/aggregates/producttype"
	"github.com/iota-uz/backoffice/modules/inventory/domain/aggregates/stocklocation"
	"github.com/iota-uz/backoffice/modules/inventory/presentation/mappers"
	"github.com/iota-uz/backoffice/pkg/itf"
	"github.com/iota-uz/backoffice/pkg/listing"
	"github.com/iota-uz/backoffice/pkg/repo"
)

type fakeList[T any] struct {
	items   []T
	filters []repo.Filter
}

func (f *fakeList[T]) List(_ context.Context, filters []repo.Filter) ([]T, error) {
	f.filters = filters
	return f.items, nil
}

func txCtx() context.Context {
	return itf.NewTestContext().WithTx(&itf.Tx{}).Build()
}

func TestStockLocationsPage_PlaceholdersAreFilterable(t *testing.T) {
	t.Parallel()

	fake := &fakeList[stocklocation.StockLocation]{items: []stocklocation.StockLocation{
		stocklocation.Hydrate(uuid.New(), uuid.Nil, "Wind SP", "São Paulo", "SP", "", true),
		stocklocation.Hydrate(uuid.New(), uuid.Nil, "Depósito", "", "", "", false),
	}}
	svc := listing.NewService(NewStockLocationsPage(fake, false), listing.Options{})
	ctx := txCtx()

	res, err := svc.View(ctx)
	require.NoError(t, err)
	require.Equal(t, []repo.Filter{repo.IsNull(stocklocation.FilterDeletedAt)}, fake.filters)
	require.Equal(t, []string{mappers.NoCity, "São Paulo"}, res.Snapshot.Columns[1].Options)

	res, err = svc.Only(ctx, "state", mappers.NoState)
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	require.Equal(t, "Depósito", res.Rows[0].Name)
}

func TestProductTypesPage_Deleted(t *testing.T) {
	t.Parallel()

	fake := &fakeList[producttype.ProductType]{items: []producttype.ProductType{
		producttype.Hydrate(uuid.New(), uuid.Nil, "Smartphone", producttype.TrackSerial),
		producttype.Hydrate(uuid.New(), uuid.Nil, "Cabo", producttype.TrackQuantity),
	}}
	page := NewProductTypesPage(fake, true)
	require.Equal(t, DeletedProductTypesPage, page.Name)

	res, err := listing.NewService(page, listing.Options{}).Toggle(txCtx(), "tracking_method", "serial")
	require.NoError(t, err)
	require.Equal(t, []repo.Filter{repo.NotNull(producttype.FilterDeletedAt)}, fake.filters)
	require.Len(t, res.Rows, 1)
	require.Equal(t, "Cabo", res.Rows[0].Name)
}

func TestManufacturersPage_SearchByName(t *testing.T) {
	t.Parallel()

	fake := &fakeList[manufacturer.Manufacturer]{items: []manufacturer.Manufacturer{
		manufacturer.Hydrate(uuid.New(), uuid.Nil, "Apple", "https://apple.com"),
		manufacturer.Hydrate(uuid.New(), uuid.Nil, "Xiaomi", ""),
	}}
	svc := listing.NewService(NewManufacturersPage(fake, false), listing.Options{})

	res, err := svc.SetSearch(txCtx(), "xiao")
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	require.Equal(t, mappers.NoWebsite, res.Rows[0].Website)
}

func TestCatalogPage_YearsNewestFirst(t *testing.T) {
	t.Parallel()

	fake := &fakeList[product.Product]{items: []product.Product{
		product.Hydrate(uuid.New(), uuid.Nil, "iPhone 11", "Smartphone", "Apple", 2019),
		product.Hydrate(uuid.New(), uuid.Nil, "iPhone 13", "Smartphone", "Apple", 2021),
		product.Hydrate(uuid.New(), uuid.Nil, "Galaxy Tab", "Tablet", "Samsung", 0),
	}}
	svc := listing.NewService(NewCatalogPage(fake, false), listing.Options{})
	ctx := txCtx()

	res, err := svc.View(ctx)
	require.NoError(t, err)
	year := res.Snapshot.Columns[3]
	require.Equal(t, "year", year.Key)
	require.Equal(t, []string{"2021", "2019", mappers.NoYear}, year.Options)

	res, err = svc.SetSearch(ctx, "2021")
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	require.Equal(t, "iPhone 13", res.Rows[0].Model)

	_, err = svc.SetSearch(ctx, "")
	require.NoError(t, err)
	res, err = svc.Toggle(ctx, "manufacturer", "Apple")
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	require.Equal(t, "Galaxy Tab", res.Rows[0].Model)
}
