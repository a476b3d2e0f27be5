package persistence

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/iota-uz/backoffice/modules/finance/domain/aggregates/agent"
	"github.com/iota-uz/backoffice/pkg/composables"
	"github.com/iota-uz/backoffice/pkg/repo"
)

const agentListQuery = `
        SELECT
            a.id,
            a.tenant_id,
            a.name,
            a.legal_name,
            a.tax_id,
            a.country,
            a.person_type,
            a.roles,
            a.deleted_at
        FROM agents a`

var agentFilterColumns = map[string]string{
	agent.FilterDeletedAt: "a.deleted_at",
}

type AgentRepository struct{}

func NewAgentRepository() agent.Repository {
	return &AgentRepository{}
}

func (r *AgentRepository) List(ctx context.Context, filters []repo.Filter) ([]agent.Agent, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return nil, err
	}

	query, args, err := repo.TenantQuery(agentListQuery, "a.tenant_id", tenantID, filters, agentFilterColumns, "a.name")
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "query agents")
	}
	defer rows.Close()

	var out []agent.Agent
	for rows.Next() {
		var (
			id, rowTenantID                       uuid.UUID
			name                                  string
			legalName, taxID, country, personType *string
			roles                                 []string
			deletedAt                             *time.Time
		)
		if err := rows.Scan(&id, &rowTenantID, &name, &legalName, &taxID, &country, &personType, &roles, &deletedAt); err != nil {
			return nil, errors.Wrap(err, "scan agent")
		}
		agentRoles := make([]agent.Role, 0, len(roles))
		for _, role := range roles {
			agentRoles = append(agentRoles, agent.Role(role))
		}
		out = append(out, agent.Hydrate(
			id, rowTenantID, name, deref(legalName), deref(taxID), deref(country),
			agent.PersonType(deref(personType)), agentRoles, deletedAt,
		))
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate agents")
	}
	return out, nil
}
