package persistence

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/iota-uz/backoffice/modules/inventory/domain/aggregates/stocklocation"
	"github.com/iota-uz/backoffice/pkg/composables"
	"github.com/iota-uz/backoffice/pkg/repo"
)

const stockLocationListQuery = `
        SELECT
            l.id,
            l.tenant_id,
            l.name,
            l.city,
            l.state,
            l.address,
            l.is_wind_stock
        FROM stock_locations l`

var stockLocationFilterColumns = map[string]string{
	stocklocation.FilterDeletedAt: "l.deleted_at",
}

type StockLocationRepository struct{}

func NewStockLocationRepository() stocklocation.Repository {
	return &StockLocationRepository{}
}

func (r *StockLocationRepository) List(ctx context.Context, filters []repo.Filter) ([]stocklocation.StockLocation, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return nil, err
	}

	query, args, err := repo.TenantQuery(stockLocationListQuery, "l.tenant_id", tenantID, filters, stockLocationFilterColumns, "l.name")
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "query stock locations")
	}
	defer rows.Close()

	var out []stocklocation.StockLocation
	for rows.Next() {
		var (
			id, rowTenantID      uuid.UUID
			name                 string
			city, state, address *string
			windStock            *bool
		)
		if err := rows.Scan(&id, &rowTenantID, &name, &city, &state, &address, &windStock); err != nil {
			return nil, errors.Wrap(err, "scan stock location")
		}
		out = append(out, stocklocation.Hydrate(
			id, rowTenantID, name, deref(city), deref(state), deref(address), windStock != nil && *windStock,
		))
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate stock locations")
	}
	return out, nil
}
