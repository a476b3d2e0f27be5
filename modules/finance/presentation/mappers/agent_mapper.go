package mappers

import (
	"slices"

	"github.com/iota-uz/backoffice/modules/finance/domain/aggregates/agent"
	"github.com/iota-uz/backoffice/modules/finance/presentation/viewmodels"
)

// NoRole is the filter value of agents without any role, so they can be
// selected like any other type.
const NoRole = "(Sem tipo)"

func AgentToRow(a agent.Agent) viewmodels.Agent {
	personType := "PJ"
	if a.PersonType() == agent.Individual {
		personType = "PF"
	}
	roles := make([]string, 0, len(a.Roles()))
	for _, r := range a.Roles() {
		roles = append(roles, string(r))
	}
	if len(roles) == 0 {
		roles = append(roles, NoRole)
	}
	return viewmodels.Agent{
		ID:         a.ID().String(),
		Name:       a.Name(),
		LegalName:  a.LegalName(),
		TaxID:      orPlaceholder(a.TaxID(), NoValue),
		Country:    a.Country(),
		PersonType: personType,
		Roles:      roles,
	}
}

func hasRole(row viewmodels.Agent, roles ...agent.Role) bool {
	for _, r := range roles {
		if slices.Contains(row.Roles, string(r)) {
			return true
		}
	}
	return false
}

// AgentStatsOf counts the fetched agents; suppliers are stock suppliers
// plus supplies vendors.
func AgentStatsOf(rows []viewmodels.Agent) viewmodels.AgentStats {
	stats := viewmodels.AgentStats{Total: len(rows)}
	for _, row := range rows {
		if hasRole(row, agent.RoleStockSupplier, agent.RoleSupplies) {
			stats.Suppliers++
		}
		if hasRole(row, agent.RoleStockSupplier) {
			stats.StockSuppliers++
		}
		if hasRole(row, agent.RoleCustomer) {
			stats.Customers++
		}
		if hasRole(row, agent.RoleProvider) {
			stats.Providers++
		}
	}
	return stats
}
