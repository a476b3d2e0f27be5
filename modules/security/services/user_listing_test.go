package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/iota-uz/backoffice/modules/security/domain/aggregates/user"
	"github.com/iota-uz/backoffice/pkg/itf"
	"github.com/iota-uz/backoffice/pkg/listing"
	"github.com/iota-uz/backoffice/pkg/repo"
)

type fakeUserRepository struct {
	users   []user.User
	filters []repo.Filter
}

func (f *fakeUserRepository) List(_ context.Context, filters []repo.Filter) ([]user.User, error) {
	f.filters = filters
	return f.users, nil
}

func newUser(name, email, role string) user.User {
	return user.Hydrate(uuid.New(), uuid.Nil, name, email, role, nil, time.Now(), nil)
}

func TestUsersPage(t *testing.T) {
	t.Parallel()

	fake := &fakeUserRepository{users: []user.User{
		newUser("Ana", "ana@example.com", "socio"),
		newUser("", "ops@example.com", "operacional"),
		newUser("Bruno", "bruno@example.com", "socio"),
	}}
	svc := listing.NewService(NewUsersPage(fake, false), listing.Options{})
	ctx := itf.NewTestContext().WithTx(&itf.Tx{}).Build()

	res, err := svc.View(ctx)
	require.NoError(t, err)
	require.Equal(t, []repo.Filter{repo.IsNull(user.FilterDeletedAt)}, fake.filters)
	require.Equal(t, []string{"---", "Ana", "Bruno"}, res.Snapshot.Columns[0].Options)
	require.Equal(t, []string{"Operacional", "Sócio"}, res.Snapshot.Columns[2].Options)
	require.False(t, res.Snapshot.Active)

	res, err = svc.Toggle(ctx, "role", "Sócio")
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	require.Equal(t, "ops@example.com", res.Rows[0].Email)
	require.True(t, res.Snapshot.Active)

	res, err = svc.ToggleAll(ctx, "role")
	require.NoError(t, err)
	require.Len(t, res.Rows, 3)

	res, err = svc.SetSearch(ctx, "SÓCIO")
	require.NoError(t, err)
	require.Len(t, res.Rows, 2)
}

func TestDeletedUsersPage_Scope(t *testing.T) {
	t.Parallel()

	fake := &fakeUserRepository{}
	page := NewUsersPage(fake, true)
	require.Equal(t, DeletedUsersPage, page.Name)

	svc := listing.NewService(page, listing.Options{})
	ctx := itf.NewTestContext().WithTx(&itf.Tx{}).Build()
	res, err := svc.View(ctx)
	require.NoError(t, err)
	require.Empty(t, res.Rows)
	require.Equal(t, []repo.Filter{repo.NotNull(user.FilterDeletedAt)}, fake.filters)
}
