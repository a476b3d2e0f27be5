package security

import (
	"github.com/iota-uz/backoffice/modules/core/presentation/controllers"
	"github.com/iota-uz/backoffice/modules/security/infrastructure/persistence"
	"github.com/iota-uz/backoffice/modules/security/services"
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
	users := persistence.NewUserRepository()
	return []controllers.ListingRoute{
		controllers.NewListingRoute("/api/security/users", services.NewUsersPage(users, false)),
		controllers.NewListingRoute("/api/security/deleted-users", services.NewUsersPage(users, true)),
	}
}

func (m *Module) Name() string {
	return "security"
}
