package services

import (
	"github.com/iota-uz/backoffice/modules/inventory/domain/aggregates/manufacturer"
	"github.com/iota-uz/backoffice/modules/inventory/domain/aggregates/product"
	"github.com/iota-uz/backoffice/modules/inventory/domain/aggregates/producttype"
	"github.com/iota-uz/backoffice/modules/inventory/domain/aggregates/stocklocation"
	"github.com/iota-uz/backoffice/modules/inventory/presentation/mappers"
	"github.com/iota-uz/backoffice/modules/inventory/presentation/viewmodels"
	"github.com/iota-uz/backoffice/pkg/colfilter"
	"github.com/iota-uz/backoffice/pkg/listing"
	"github.com/iota-uz/backoffice/pkg/repo"
)

const (
	StockLocationsPage        = "inventory.stock-locations"
	DeletedStockLocationsPage = "inventory.stock-locations.deleted"
	ProductTypesPage          = "inventory.product-types"
	DeletedProductTypesPage   = "inventory.product-types.deleted"
	ManufacturersPage         = "inventory.manufacturers"
	DeletedManufacturersPage  = "inventory.manufacturers.deleted"
	CatalogPage               = "inventory.catalog"
	DeletedCatalogPage        = "inventory.catalog.deleted"
)

// liveOrDeleted picks the page name and soft-delete scope of a catalog page.
func liveOrDeleted(live, trash, deletedAt string, deleted bool) (string, repo.Filter) {
	if deleted {
		return trash, repo.NotNull(deletedAt)
	}
	return live, repo.IsNull(deletedAt)
}

func StockLocationsSchema() colfilter.Schema[viewmodels.StockLocation] {
	return colfilter.Schema[viewmodels.StockLocation]{
		Columns: []colfilter.ColumnDef[viewmodels.StockLocation]{
			{Key: "name", Label: "Nome", Project: func(r viewmodels.StockLocation) string { return r.Name }},
			{Key: "city", Label: "Cidade", Project: func(r viewmodels.StockLocation) string { return r.City }},
			{Key: "state", Label: "Estado", Project: func(r viewmodels.StockLocation) string { return r.State }},
		},
		Search: []func(viewmodels.StockLocation) string{
			func(r viewmodels.StockLocation) string { return r.Name },
		},
	}
}

func NewStockLocationsPage(locations stocklocation.Repository, deleted bool) *listing.Page[viewmodels.StockLocation] {
	name, scope := liveOrDeleted(StockLocationsPage, DeletedStockLocationsPage, stocklocation.FilterDeletedAt, deleted)
	return &listing.Page[viewmodels.StockLocation]{
		Name:       name,
		Collection: "stock_locations",
		Scope:      []repo.Filter{scope},
		Schema:     StockLocationsSchema(),
		Source:     listing.TenantSource(locations.List, mappers.StockLocationToRow),
	}
}

func ProductTypesSchema() colfilter.Schema[viewmodels.ProductType] {
	return colfilter.Schema[viewmodels.ProductType]{
		Columns: []colfilter.ColumnDef[viewmodels.ProductType]{
			{Key: "name", Label: "Nome", Project: func(r viewmodels.ProductType) string { return r.Name }},
			{Key: "tracking_method", Label: "Controle", Project: func(r viewmodels.ProductType) string { return r.TrackingMethod }},
		},
		Search: []func(viewmodels.ProductType) string{
			func(r viewmodels.ProductType) string { return r.Name },
		},
	}
}

func NewProductTypesPage(types producttype.Repository, deleted bool) *listing.Page[viewmodels.ProductType] {
	name, scope := liveOrDeleted(ProductTypesPage, DeletedProductTypesPage, producttype.FilterDeletedAt, deleted)
	return &listing.Page[viewmodels.ProductType]{
		Name:       name,
		Collection: "product_types",
		Scope:      []repo.Filter{scope},
		Schema:     ProductTypesSchema(),
		Source:     listing.TenantSource(types.List, mappers.ProductTypeToRow),
	}
}

func ManufacturersSchema() colfilter.Schema[viewmodels.Manufacturer] {
	return colfilter.Schema[viewmodels.Manufacturer]{
		Columns: []colfilter.ColumnDef[viewmodels.Manufacturer]{
			{Key: "name", Label: "Nome", Project: func(r viewmodels.Manufacturer) string { return r.Name }},
			{Key: "website", Label: "Website", Project: func(r viewmodels.Manufacturer) string { return r.Website }},
		},
		Search: []func(viewmodels.Manufacturer) string{
			func(r viewmodels.Manufacturer) string { return r.Name },
		},
	}
}

func NewManufacturersPage(manufacturers manufacturer.Repository, deleted bool) *listing.Page[viewmodels.Manufacturer] {
	name, scope := liveOrDeleted(ManufacturersPage, DeletedManufacturersPage, manufacturer.FilterDeletedAt, deleted)
	return &listing.Page[viewmodels.Manufacturer]{
		Name:       name,
		Collection: "manufacturers",
		Scope:      []repo.Filter{scope},
		Schema:     ManufacturersSchema(),
		Source:     listing.TenantSource(manufacturers.List, mappers.ManufacturerToRow),
	}
}

// CatalogSchema lists release years newest first.
func CatalogSchema() colfilter.Schema[viewmodels.Product] {
	return colfilter.Schema[viewmodels.Product]{
		Columns: []colfilter.ColumnDef[viewmodels.Product]{
			{Key: "type", Label: "Tipo", Project: func(r viewmodels.Product) string { return r.Type }},
			{Key: "model", Label: "Modelo", Project: func(r viewmodels.Product) string { return r.Model }},
			{Key: "manufacturer", Label: "Fabricante", Project: func(r viewmodels.Product) string { return r.Manufacturer }},
			{Key: "year", Label: "Ano", Project: func(r viewmodels.Product) string { return r.Year }, Order: colfilter.Descending},
		},
		Search: []func(viewmodels.Product) string{
			func(r viewmodels.Product) string { return r.Model },
			func(r viewmodels.Product) string { return r.Type },
			func(r viewmodels.Product) string { return r.Manufacturer },
			func(r viewmodels.Product) string { return r.Year },
		},
	}
}

func NewCatalogPage(products product.Repository, deleted bool) *listing.Page[viewmodels.Product] {
	name, scope := liveOrDeleted(CatalogPage, DeletedCatalogPage, product.FilterDeletedAt, deleted)
	return &listing.Page[viewmodels.Product]{
		Name:       name,
		Collection: "product_catalog",
		Scope:      []repo.Filter{scope},
		Schema:     CatalogSchema(),
		Source:     listing.TenantSource(products.List, mappers.ProductToRow),
	}
}
