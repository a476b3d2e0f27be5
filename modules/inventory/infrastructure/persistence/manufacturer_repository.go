package persistence

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/iota-uz/backoffice/modules/inventory/domain/aggregates/manufacturer"
	"github.com/iota-uz/backoffice/pkg/composables"
	"github.com/iota-uz/backoffice/pkg/repo"
)

const manufacturerListQuery = `
        SELECT
            m.id,
            m.tenant_id,
            m.name,
            m.website
        FROM manufacturers m`

var manufacturerFilterColumns = map[string]string{
	manufacturer.FilterDeletedAt: "m.deleted_at",
}

type ManufacturerRepository struct{}

func NewManufacturerRepository() manufacturer.Repository {
	return &ManufacturerRepository{}
}

func (r *ManufacturerRepository) List(ctx context.Context, filters []repo.Filter) ([]manufacturer.Manufacturer, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return nil, err
	}

	query, args, err := repo.TenantQuery(manufacturerListQuery, "m.tenant_id", tenantID, filters, manufacturerFilterColumns, "m.name")
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "query manufacturers")
	}
	defer rows.Close()

	var out []manufacturer.Manufacturer
	for rows.Next() {
		var (
			id, rowTenantID uuid.UUID
			name            string
			website         *string
		)
		if err := rows.Scan(&id, &rowTenantID, &name, &website); err != nil {
			return nil, errors.Wrap(err, "scan manufacturer")
		}
		out = append(out, manufacturer.Hydrate(id, rowTenantID, name, deref(website)))
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate manufacturers")
	}
	return out, nil
}
