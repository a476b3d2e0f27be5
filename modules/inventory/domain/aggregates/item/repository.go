package item

import (
	"context"

	"github.com/iota-uz/backoffice/pkg/repo"
)

// Filter column names understood by Repository.List.
const (
	FilterDeletedAt = "deleted_at"
	FilterWindStock = "wind_stock"
	FilterStatus    = "status"
)

type Repository interface {
	List(ctx context.Context, filters []repo.Filter) ([]Item, error)
}
