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
)

func TestRedisStore_RoundTrip(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := NewRedisStore(client, "backoffice:filters", time.Hour)
	ctx := context.Background()
	key := SessionKey{TenantID: uuid.New(), Page: "commercial.estimates", SessionID: "sid"}

	_, found, err := store.Load(ctx, key)
	require.NoError(t, err)
	require.False(t, found)

	want := SessionState{
		Search: "acme",
		Columns: map[string]colfilter.State{
			"status": {
				Values:   []string{"Aprovado", "Rascunho"},
				Selected: colfilter.NewSet("Aprovado"),
				Phase:    colfilter.Synchronized,
			},
		},
	}
	require.NoError(t, store.Save(ctx, key, want))
	require.True(t, mr.Exists("backoffice:filters:"+key.String()))
	require.Equal(t, time.Hour, mr.TTL("backoffice:filters:"+key.String()))

	got, found, err := store.Load(ctx, key)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, want.Search, got.Search)
	require.Equal(t, want.Columns["status"].Values, got.Columns["status"].Values)
	require.True(t, want.Columns["status"].Selected.Equal(got.Columns["status"].Selected))
	require.Equal(t, colfilter.Synchronized, got.Columns["status"].Phase)

	mr.FastForward(2 * time.Hour)
	_, found, err = store.Load(ctx, key)
	require.NoError(t, err)
	require.False(t, found)
}

func TestRedisStore_DeleteAndCorruptValue(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := NewRedisStore(client, "p", time.Minute)
	ctx := context.Background()
	key := SessionKey{TenantID: uuid.New(), Page: "finance.accounts", SessionID: "s"}

	require.NoError(t, store.Save(ctx, key, SessionState{Search: "x"}))
	require.NoError(t, store.Delete(ctx, key))
	_, found, err := store.Load(ctx, key)
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, mr.Set("p:"+key.String(), "{not json"))
	_, _, err = store.Load(ctx, key)
	require.Error(t, err)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore(4, time.Minute)
	ctx := context.Background()
	key := SessionKey{TenantID: uuid.New(), Page: "p", SessionID: "s"}
	st := SessionState{Columns: map[string]colfilter.State{
		"status": {Values: []string{"a"}, Selected: colfilter.NewSet("a"), Phase: colfilter.Initialized},
	}}
	require.NoError(t, store.Save(ctx, key, st))
	st.Columns["status"].Selected.Remove("a")

	got, found, err := store.Load(ctx, key)
	require.NoError(t, err)
	require.True(t, found)
	require.True(t, got.Columns["status"].Selected.Contains("a"))
}
