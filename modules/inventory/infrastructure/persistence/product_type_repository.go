package persistence

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/iota-uz/backoffice/modules/inventory/domain/aggregates/producttype"
	"github.com/iota-uz/backoffice/pkg/composables"
	"github.com/iota-uz/backoffice/pkg/repo"
)

const productTypeListQuery = `
        SELECT
            t.id,
            t.tenant_id,
            t.name,
            t.tracking_method
        FROM product_types t`

var productTypeFilterColumns = map[string]string{
	producttype.FilterDeletedAt: "t.deleted_at",
}

type ProductTypeRepository struct{}

func NewProductTypeRepository() producttype.Repository {
	return &ProductTypeRepository{}
}

func (r *ProductTypeRepository) List(ctx context.Context, filters []repo.Filter) ([]producttype.ProductType, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return nil, err
	}

	query, args, err := repo.TenantQuery(productTypeListQuery, "t.tenant_id", tenantID, filters, productTypeFilterColumns, "t.name")
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "query product types")
	}
	defer rows.Close()

	var out []producttype.ProductType
	for rows.Next() {
		var (
			id, rowTenantID uuid.UUID
			name, tracking  string
		)
		if err := rows.Scan(&id, &rowTenantID, &name, &tracking); err != nil {
			return nil, errors.Wrap(err, "scan product type")
		}
		out = append(out, producttype.Hydrate(id, rowTenantID, name, producttype.TrackingMethod(tracking)))
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate product types")
	}
	return out, nil
}
