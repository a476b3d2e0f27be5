package modules

import (
	"github.com/iota-uz/backoffice/modules/commercial"
	"github.com/iota-uz/backoffice/modules/core/presentation/controllers"
	"github.com/iota-uz/backoffice/modules/finance"
	"github.com/iota-uz/backoffice/modules/inventory"
	"github.com/iota-uz/backoffice/modules/security"
	"github.com/iota-uz/backoffice/pkg/application"
)

var BuiltInModules = []application.Module{
	inventory.NewModule(),
	commercial.NewModule(),
	finance.NewModule(),
	security.NewModule(),
}

// listingModule is a module publishing list pages.
type listingModule interface {
	Listings() []controllers.ListingRoute
}

func Load(app application.Application, modules ...application.Module) error {
	for _, module := range modules {
		if err := module.Register(app); err != nil {
			return err
		}
	}
	return nil
}

// ListingRoutes collects the list pages of modules in registration order.
// The server mounts these and the export tool looks pages up in them.
func ListingRoutes(modules ...application.Module) []controllers.ListingRoute {
	var routes []controllers.ListingRoute
	for _, module := range modules {
		if m, ok := module.(listingModule); ok {
			routes = append(routes, m.Listings()...)
		}
	}
	return routes
}
