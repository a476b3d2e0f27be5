package services

import (
	"github.com/iota-uz/backoffice/modules/inventory/domain/aggregates/item"
	"github.com/iota-uz/backoffice/modules/inventory/presentation/mappers"
	"github.com/iota-uz/backoffice/modules/inventory/presentation/viewmodels"
	"github.com/iota-uz/backoffice/pkg/colfilter"
	"github.com/iota-uz/backoffice/pkg/listing"
	"github.com/iota-uz/backoffice/pkg/repo"
)

const ItemsPage = "inventory.items"

// ItemsSchema lists the filterable columns of the inventory page.
func ItemsSchema() colfilter.Schema[viewmodels.Item] {
	return colfilter.Schema[viewmodels.Item]{
		Columns: []colfilter.ColumnDef[viewmodels.Item]{
			{Key: "model", Label: "Modelo", Project: func(r viewmodels.Item) string { return r.Model }},
			{Key: "capacity", Label: "Capacidade", Project: func(r viewmodels.Item) string { return r.Capacity }},
			{Key: "color", Label: "Cor", Project: func(r viewmodels.Item) string { return r.Color }},
			{Key: "grade", Label: "Grade", Project: func(r viewmodels.Item) string { return r.Grade }},
			{Key: "status", Label: "Status", Project: func(r viewmodels.Item) string { return r.Status }, Fixed: mappers.StatusOptions()},
			{Key: "location", Label: "Local", Project: func(r viewmodels.Item) string { return r.Location }},
		},
		Search: []func(viewmodels.Item) string{
			func(r viewmodels.Item) string { return r.Model },
			func(r viewmodels.Item) string { return r.IMEI },
			func(r viewmodels.Item) string { return r.SerialNumber },
		},
	}
}

// NewItemsPage shows live stock only: soft-deleted items and items outside
// wind stock locations are excluded at the source. The location column
// doubles as the quick filter bar, where "only" narrows to one location and
// "select-all" brings every location back.
func NewItemsPage(items item.Repository) *listing.Page[viewmodels.Item] {
	return &listing.Page[viewmodels.Item]{
		Name:       ItemsPage,
		Collection: "inventory",
		Scope: []repo.Filter{
			repo.IsNull(item.FilterDeletedAt),
			repo.NotFalse(item.FilterWindStock),
		},
		Schema: ItemsSchema(),
		Source: listing.TenantSource(items.List, mappers.ItemToRow),
	}
}
