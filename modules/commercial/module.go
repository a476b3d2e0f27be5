package commercial

import (
	"github.com/iota-uz/backoffice/modules/commercial/infrastructure/persistence"
	"github.com/iota-uz/backoffice/modules/commercial/services"
	"github.com/iota-uz/backoffice/modules/core/presentation/controllers"
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
	return []controllers.ListingRoute{
		controllers.NewListingRoute("/api/commercial/estimates", services.NewEstimatesPage(persistence.NewEstimateRepository())),
	}
}

func (m *Module) Name() string {
	return "commercial"
}
