package finance

import (
	"github.com/iota-uz/backoffice/modules/core/presentation/controllers"
	"github.com/iota-uz/backoffice/modules/finance/infrastructure/persistence"
	"github.com/iota-uz/backoffice/modules/finance/services"
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
	accounts := persistence.NewAccountRepository()
	agents := persistence.NewAgentRepository()
	costCenters := persistence.NewCostCenterRepository()
	return []controllers.ListingRoute{
		controllers.NewListingRoute("/api/finance/accounts", services.NewAccountsPage(accounts, false)),
		controllers.NewListingRoute("/api/finance/all-accounts", services.NewAccountsPage(accounts, true)),
		controllers.NewListingRoute("/api/finance/agents", services.NewAgentsPage(agents, false)),
		controllers.NewListingRoute("/api/finance/deleted-agents", services.NewAgentsPage(agents, true)),
		controllers.NewListingRoute("/api/dashboard/agents", services.NewAgentsDashboardPage(agents)),
		controllers.NewListingRoute("/api/finance/bank-accounts", services.NewBankAccountsPage(persistence.NewBankAccountRepository())),
		controllers.NewListingRoute("/api/finance/classes", services.NewClassesPage(persistence.NewClassRepository())),
		controllers.NewListingRoute("/api/finance/cost-centers", services.NewCostCentersPage(costCenters, false)),
		controllers.NewListingRoute("/api/finance/deleted-cost-centers", services.NewCostCentersPage(costCenters, true)),
	}
}

func (m *Module) Name() string {
	return "finance"
}
