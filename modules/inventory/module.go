package inventory

import (
	"github.com/iota-uz/backoffice/modules/core/presentation/controllers"
	"github.com/iota-uz/backoffice/modules/inventory/infrastructure/persistence"
	"github.com/iota-uz/backoffice/modules/inventory/services"
	"github.com/iota-uz/backoffice/pkg/application"
)

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Register(app application.Application) error {
	controllers.MountListings(app, m.Listings()...)
	return nil
}

func (m *Module) Listings() []controllers.ListingRoute {
	locations := persistence.NewStockLocationRepository()
	types := persistence.NewProductTypeRepository()
	manufacturers := persistence.NewManufacturerRepository()
	products := persistence.NewProductRepository()
	return []controllers.ListingRoute{
		controllers.NewListingRoute("/api/inventory/items", services.NewItemsPage(persistence.NewItemRepository())),
		controllers.NewListingRoute("/api/inventory/stock-locations", services.NewStockLocationsPage(locations, false)),
		controllers.NewListingRoute("/api/inventory/deleted-stock-locations", services.NewStockLocationsPage(locations, true)),
		controllers.NewListingRoute("/api/inventory/product-types", services.NewProductTypesPage(types, false)),
		controllers.NewListingRoute("/api/inventory/deleted-product-types", services.NewProductTypesPage(types, true)),
		controllers.NewListingRoute("/api/inventory/manufacturers", services.NewManufacturersPage(manufacturers, false)),
		controllers.NewListingRoute("/api/inventory/deleted-manufacturers", services.NewManufacturersPage(manufacturers, true)),
		controllers.NewListingRoute("/api/inventory/catalog", services.NewCatalogPage(products, false)),
		controllers.NewListingRoute("/api/inventory/deleted-catalog", services.NewCatalogPage(products, true)),
	}
}

func (m *Module) Name() string {
	return "inventory"
}
