package services

import (
	"github.com/iota-uz/backoffice/modules/security/domain/aggregates/user"
	"github.com/iota-uz/backoffice/modules/security/presentation/mappers"
	"github.com/iota-uz/backoffice/modules/security/presentation/viewmodels"
	"github.com/iota-uz/backoffice/pkg/colfilter"
	"github.com/iota-uz/backoffice/pkg/listing"
	"github.com/iota-uz/backoffice/pkg/repo"
)

const (
	UsersPage        = "security.users"
	DeletedUsersPage = "security.users.deleted"
)

func UsersSchema() colfilter.Schema[viewmodels.User] {
	return colfilter.Schema[viewmodels.User]{
		Columns: []colfilter.ColumnDef[viewmodels.User]{
			{Key: "name", Label: "Nome", Project: func(r viewmodels.User) string { return r.Name }},
			{Key: "email", Label: "E-mail", Project: func(r viewmodels.User) string { return r.Email }},
			{Key: "role", Label: "Perfil", Project: func(r viewmodels.User) string { return r.Role }},
		},
		Search: []func(viewmodels.User) string{
			func(r viewmodels.User) string { return r.Name },
			func(r viewmodels.User) string { return r.Email },
			func(r viewmodels.User) string { return r.Role },
		},
	}
}

// NewUsersPage lists active users, or soft-deleted ones when deleted is set.
func NewUsersPage(users user.Repository, deleted bool) *listing.Page[viewmodels.User] {
	name, scope := UsersPage, repo.IsNull(user.FilterDeletedAt)
	if deleted {
		name, scope = DeletedUsersPage, repo.NotNull(user.FilterDeletedAt)
	}
	return &listing.Page[viewmodels.User]{
		Name:       name,
		Collection: "profiles",
		Scope:      []repo.Filter{scope},
		Schema:     UsersSchema(),
		Source:     listing.TenantSource(users.List, mappers.UserToRow),
	}
}
