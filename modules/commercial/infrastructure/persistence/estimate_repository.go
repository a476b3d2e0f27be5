package persistence

import (
	"context"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/iota-uz/backoffice/modules/commercial/domain/aggregates/estimate"
	"github.com/iota-uz/backoffice/pkg/composables"
	"github.com/iota-uz/backoffice/pkg/repo"
)

const estimateListQuery = `
        SELECT
            e.id,
            e.tenant_id,
            e.estimate_number,
            a.name,
            e.status,
            e.estimate_date,
            e.ship_date,
            COALESCE(e.total, 0)::text
        FROM estimates e
        LEFT JOIN agents a ON a.id = e.customer_id AND a.tenant_id = e.tenant_id`

var estimateFilterColumns = map[string]string{
	estimate.FilterStatus: "e.status",
}

type EstimateRepository struct{}

func NewEstimateRepository() estimate.Repository {
	return &EstimateRepository{}
}

func (r *EstimateRepository) List(ctx context.Context, filters []repo.Filter) ([]estimate.Estimate, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return nil, err
	}

	where, args, err := repo.BuildWhere(filters, estimateFilterColumns, 2)
	if err != nil {
		return nil, err
	}
	where = append([]string{"e.tenant_id = $1"}, where...)
	args = append([]any{tenantID}, args...)

	query := estimateListQuery + "\n        WHERE " + strings.Join(where, " AND ") + "\n        ORDER BY e.estimate_number DESC"
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "query estimates")
	}
	defer rows.Close()

	var out []estimate.Estimate
	for rows.Next() {
		var (
			id, rowTenantID uuid.UUID
			number          int64
			customer        *string
			status, total   string
			estimateDate    time.Time
			shipDate        *time.Time
		)
		if err := rows.Scan(&id, &rowTenantID, &number, &customer, &status, &estimateDate, &shipDate, &total); err != nil {
			return nil, errors.Wrap(err, "scan estimate")
		}
		amount, err := decimal.NewFromString(total)
		if err != nil {
			return nil, errors.Wrapf(err, "parse total of estimate %d", number)
		}
		name := ""
		if customer != nil {
			name = *customer
		}
		out = append(out, estimate.Hydrate(
			id, rowTenantID, number, name, estimate.Status(status), estimateDate, shipDate, amount,
		))
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate estimates")
	}
	return out, nil
}
