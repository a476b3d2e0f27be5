package persistence

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/iota-uz/backoffice/modules/inventory/domain/aggregates/product"
	"github.com/iota-uz/backoffice/pkg/composables"
	"github.com/iota-uz/backoffice/pkg/repo"
)

const productListQuery = `
        SELECT
            p.id,
            p.tenant_id,
            p.name,
            p.type,
            p.manufacturer,
            p.release_year
        FROM product_catalog p`

var productFilterColumns = map[string]string{
	product.FilterDeletedAt: "p.deleted_at",
}

type ProductRepository struct{}

func NewProductRepository() product.Repository {
	return &ProductRepository{}
}

func (r *ProductRepository) List(ctx context.Context, filters []repo.Filter) ([]product.Product, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return nil, err
	}

	query, args, err := repo.TenantQuery(productListQuery, "p.tenant_id", tenantID, filters, productFilterColumns, "p.manufacturer, p.name")
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "query product catalog")
	}
	defer rows.Close()

	var out []product.Product
	for rows.Next() {
		var (
			id, rowTenantID           uuid.UUID
			name                      string
			productType, manufacturer *string
			releaseYear               *int32
		)
		if err := rows.Scan(&id, &rowTenantID, &name, &productType, &manufacturer, &releaseYear); err != nil {
			return nil, errors.Wrap(err, "scan product")
		}
		year := 0
		if releaseYear != nil {
			year = int(*releaseYear)
		}
		out = append(out, product.Hydrate(id, rowTenantID, name, deref(productType), deref(manufacturer), year))
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate product catalog")
	}
	return out, nil
}
