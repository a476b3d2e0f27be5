package persistence

import (
	"context"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/iota-uz/backoffice/modules/inventory/domain/aggregates/item"
	"github.com/iota-uz/backoffice/pkg/composables"
	"github.com/iota-uz/backoffice/pkg/repo"
)

const itemListQuery = `
        SELECT
            i.id,
            i.tenant_id,
            i.model,
            i.capacity,
            i.color,
            i.grade,
            i.status,
            i.imei,
            i.serial_number,
            l.name,
            l.is_wind_stock,
            i.created_at
        FROM inventory i
        LEFT JOIN stock_locations l ON l.id = i.location_id AND l.tenant_id = i.tenant_id`

var itemFilterColumns = map[string]string{
	item.FilterDeletedAt: "i.deleted_at",
	item.FilterWindStock: "l.is_wind_stock",
	item.FilterStatus:    "i.status",
}

type ItemRepository struct{}

func NewItemRepository() item.Repository {
	return &ItemRepository{}
}

func (r *ItemRepository) List(ctx context.Context, filters []repo.Filter) ([]item.Item, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return nil, err
	}

	where, args, err := repo.BuildWhere(filters, itemFilterColumns, 2)
	if err != nil {
		return nil, err
	}
	where = append([]string{"i.tenant_id = $1"}, where...)
	args = append([]any{tenantID}, args...)

	query := itemListQuery + "\n        WHERE " + strings.Join(where, " AND ") + "\n        ORDER BY i.created_at DESC"
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "query inventory")
	}
	defer rows.Close()

	var out []item.Item
	for rows.Next() {
		var (
			id, rowTenantID                          uuid.UUID
			model, capacity, status                  string
			color, grade, imei, serial, locationName *string
			windStock                                *bool
			createdAt                                time.Time
		)
		if err := rows.Scan(
			&id, &rowTenantID, &model, &capacity, &color, &grade, &status,
			&imei, &serial, &locationName, &windStock, &createdAt,
		); err != nil {
			return nil, errors.Wrap(err, "scan inventory")
		}
		var location *item.Location
		if locationName != nil || windStock != nil {
			location = &item.Location{Name: deref(locationName), WindStock: windStock != nil && *windStock}
		}
		out = append(out, item.Hydrate(
			id, rowTenantID, model, capacity, deref(color), deref(grade), item.Status(status),
			deref(imei), deref(serial), location, createdAt,
		))
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate inventory")
	}
	return out, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
