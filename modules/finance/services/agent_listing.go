package services

import (
	"strings"

	"github.com/iota-uz/backoffice/modules/finance/domain/aggregates/agent"
	"github.com/iota-uz/backoffice/modules/finance/presentation/mappers"
	"github.com/iota-uz/backoffice/modules/finance/presentation/viewmodels"
	"github.com/iota-uz/backoffice/pkg/colfilter"
	"github.com/iota-uz/backoffice/pkg/listing"
	"github.com/iota-uz/backoffice/pkg/repo"
)

const (
	AgentsPage          = "finance.agents"
	DeletedAgentsPage   = "finance.agents.deleted"
	AgentsDashboardPage = "dashboard.agents"
)

// AgentsSchema filters on name, country and role. An agent holds several
// roles and matches the types filter when any of them is selected.
func AgentsSchema() colfilter.Schema[viewmodels.Agent] {
	return colfilter.Schema[viewmodels.Agent]{
		Columns: []colfilter.ColumnDef[viewmodels.Agent]{
			{Key: "name", Label: "Nome", Project: func(r viewmodels.Agent) string { return r.Name }},
			{Key: "country", Label: "País", Project: func(r viewmodels.Agent) string { return r.Country }},
			{
				Key:        "types",
				Label:      "Tipos",
				Project:    func(r viewmodels.Agent) string { return strings.Join(r.Roles, ", ") },
				ProjectAll: func(r viewmodels.Agent) []string { return r.Roles },
			},
		},
		Search: []func(viewmodels.Agent) string{
			func(r viewmodels.Agent) string { return r.Name },
			func(r viewmodels.Agent) string { return r.LegalName },
			func(r viewmodels.Agent) string { return r.TaxID },
		},
	}
}

func agentsPage(name string, scope repo.Filter, agents agent.Repository) *listing.Page[viewmodels.Agent] {
	return &listing.Page[viewmodels.Agent]{
		Name:       name,
		Collection: "agents",
		Scope:      []repo.Filter{scope},
		Schema:     AgentsSchema(),
		Source:     listing.TenantSource(agents.List, mappers.AgentToRow),
	}
}

// NewAgentsPage lists live agents, or soft-deleted ones when deleted is set.
func NewAgentsPage(agents agent.Repository, deleted bool) *listing.Page[viewmodels.Agent] {
	if deleted {
		return agentsPage(DeletedAgentsPage, repo.NotNull(agent.FilterDeletedAt), agents)
	}
	return agentsPage(AgentsPage, repo.IsNull(agent.FilterDeletedAt), agents)
}

// NewAgentsDashboardPage is the live agent list with role counts over every
// fetched agent, independent of the filters.
func NewAgentsDashboardPage(agents agent.Repository) *listing.Page[viewmodels.Agent] {
	page := agentsPage(AgentsDashboardPage, repo.IsNull(agent.FilterDeletedAt), agents)
	page.Aggregate = func(rows []viewmodels.Agent) any {
		return mappers.AgentStatsOf(rows)
	}
	return page
}
