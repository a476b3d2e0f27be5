package listing

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/iota-uz/backoffice/pkg/colfilter"
	"github.com/iota-uz/backoffice/pkg/composables"
)

func sessionCtx(tenantID uuid.UUID, sid string) context.Context {
	ctx := composables.WithTenantID(context.Background(), tenantID)
	return composables.WithSessionID(ctx, sid)
}

func estimateRows() []row {
	return []row{
		{Number: "1", Status: "draft", Owner: "Ana"},
		{Number: "2", Status: "sent", Owner: "Bruno"},
		{Number: "3", Status: "draft", Owner: "Carla"},
		{Number: "4", Status: "approved", Owner: "Davi"},
	}
}

func TestService_RequiresTenantAndSession(t *testing.T) {
	t.Parallel()

	svc := NewService(testPage(staticSource(estimateRows()...)), Options{})

	_, err := svc.View(context.Background())
	require.ErrorIs(t, err, composables.ErrNoTenant)

	ctx := composables.WithTenantID(context.Background(), uuid.New())
	_, err = svc.View(ctx)
	require.ErrorIs(t, err, composables.ErrNoSession)
}

func TestService_ToggleIsScopedPerSession(t *testing.T) {
	t.Parallel()

	svc := NewService(testPage(staticSource(estimateRows()...)), Options{SessionTTL: time.Hour})
	tenantID := uuid.New()
	a := sessionCtx(tenantID, "a")
	b := sessionCtx(tenantID, "b")

	res, err := svc.Toggle(a, "status", "draft")
	require.NoError(t, err)
	require.Equal(t, 2, res.Snapshot.Visible)
	require.True(t, res.Snapshot.Active)

	res, err = svc.View(b)
	require.NoError(t, err)
	require.Equal(t, 4, res.Snapshot.Visible)
	require.False(t, res.Snapshot.Active)

	res, err = svc.View(a)
	require.NoError(t, err)
	require.Equal(t, 2, res.Snapshot.Visible)

	_, err = svc.Toggle(a, "missing", "x")
	require.ErrorIs(t, err, colfilter.ErrUnknownColumn)
}

func TestService_RestoresFromStore(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore(16, time.Hour)
	page := testPage(staticSource(estimateRows()...))
	ctx := sessionCtx(uuid.New(), "sid-1")

	first := NewService(page, Options{Store: store})
	_, err := first.ToggleAll(ctx, "status")
	require.NoError(t, err)
	_, err = first.Toggle(ctx, "status", "approved")
	require.NoError(t, err)
	_, err = first.SetSearch(ctx, "davi")
	require.NoError(t, err)

	// A fresh service has nothing live and rebuilds from the store.
	second := NewService(page, Options{Store: store})
	res, err := second.View(ctx)
	require.NoError(t, err)
	require.Equal(t, "davi", res.Snapshot.Search)
	require.Len(t, res.Rows, 1)
	require.Equal(t, "4", res.Rows[0].Number)

	opts, err := second.Options(ctx, "status", "")
	require.NoError(t, err)
	require.Equal(t, []string{"approved", "draft", "sent"}, opts)

	headers, cells, err := second.Export(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"Number", "Status"}, headers)
	require.Equal(t, [][]string{{"4", "approved"}}, cells)

	res, err = second.Clear(ctx)
	require.NoError(t, err)
	require.False(t, res.Snapshot.Active)
	require.Len(t, res.Rows, 4)

	require.NoError(t, second.Forget(ctx))
	key, err := second.Key(ctx)
	require.NoError(t, err)
	_, found, err := store.Load(ctx, key)
	require.NoError(t, err)
	require.False(t, found)
}

func TestService_InstancesSharingRedisKeepEachOthersToggles(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := NewRedisStore(client, "backoffice:filters", time.Hour)
	page := testPage(staticSource(estimateRows()...))
	a := NewService(page, Options{Store: store, SessionTTL: time.Hour})
	b := NewService(page, Options{Store: store, SessionTTL: time.Hour})
	ctx := sessionCtx(uuid.New(), "shared")

	// both instances have the session cached before either toggles
	_, err := a.View(ctx)
	require.NoError(t, err)
	_, err = b.View(ctx)
	require.NoError(t, err)

	_, err = a.Toggle(ctx, "status", "sent")
	require.NoError(t, err)
	res, err := b.Toggle(ctx, "status", "draft")
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	require.Equal(t, "4", res.Rows[0].Number)

	res, err = a.View(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, res.Snapshot.Visible)
	status := res.Snapshot.Columns[1]
	require.Equal(t, "status", status.Key)
	require.Equal(t, []string{"approved"}, status.Selected)

	// forgetting on one instance resets the other
	require.NoError(t, b.Forget(ctx))
	res, err = a.View(ctx)
	require.NoError(t, err)
	require.False(t, res.Snapshot.Active)
	require.Equal(t, 4, res.Snapshot.Visible)
}

func TestService_OnlyAndSelectAll(t *testing.T) {
	t.Parallel()

	svc := NewService(testPage(staticSource(estimateRows()...)), Options{SessionTTL: time.Hour})
	ctx := sessionCtx(uuid.New(), "sid")

	res, err := svc.Only(ctx, "status", "draft")
	require.NoError(t, err)
	require.Len(t, res.Rows, 2)
	require.True(t, res.Snapshot.Active)

	res, err = svc.SelectAll(ctx, "status")
	require.NoError(t, err)
	require.Len(t, res.Rows, 4)
	require.False(t, res.Snapshot.Active)

	_, err = svc.Only(ctx, "missing", "x")
	require.ErrorIs(t, err, colfilter.ErrUnknownColumn)
}
