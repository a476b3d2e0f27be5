package persistence

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/iota-uz/backoffice/modules/finance/domain/aggregates/costcenter"
	"github.com/iota-uz/backoffice/pkg/composables"
	"github.com/iota-uz/backoffice/pkg/repo"
)

const costCenterListQuery = `
        SELECT
            cc.id,
            cc.tenant_id,
            cc.code,
            cc.name,
            cc.description
        FROM cost_centers cc`

var costCenterFilterColumns = map[string]string{
	costcenter.FilterDeletedAt: "cc.deleted_at",
}

type CostCenterRepository struct{}

func NewCostCenterRepository() costcenter.Repository {
	return &CostCenterRepository{}
}

func (r *CostCenterRepository) List(ctx context.Context, filters []repo.Filter) ([]costcenter.CostCenter, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return nil, err
	}

	query, args, err := repo.TenantQuery(costCenterListQuery, "cc.tenant_id", tenantID, filters, costCenterFilterColumns, "cc.name")
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "query cost centers")
	}
	defer rows.Close()

	var out []costcenter.CostCenter
	for rows.Next() {
		var (
			id, rowTenantID uuid.UUID
			code, name      string
			description     *string
		)
		if err := rows.Scan(&id, &rowTenantID, &code, &name, &description); err != nil {
			return nil, errors.Wrap(err, "scan cost center")
		}
		out = append(out, costcenter.Hydrate(id, rowTenantID, code, name, deref(description)))
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate cost centers")
	}
	return out, nil
}
