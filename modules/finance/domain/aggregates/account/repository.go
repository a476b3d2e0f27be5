package account

import (
	"context"

	"github.com/iota-uz/backoffice/pkg/repo"
)

const (
	FilterDeletedAt = "deleted_at"
	FilterCode      = "account_code"
	FilterActive    = "active"
	FilterType      = "type"
)

type Repository interface {
	List(ctx context.Context, filters []repo.Filter) ([]Account, error)
}
