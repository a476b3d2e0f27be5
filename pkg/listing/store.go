package listing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/iota-uz/backoffice/pkg/colfilter"
)

// SessionKey scopes filter state to one page of one browser session within
// a tenant.
type SessionKey struct {
	TenantID  uuid.UUID
	Page      string
	SessionID string
}

func (k SessionKey) String() string {
	return fmt.Sprintf("%s:%s:%s", k.TenantID, k.Page, k.SessionID)
}

// Store persists filter state between requests.
type Store interface {
	Load(ctx context.Context, key SessionKey) (SessionState, bool, error)
	Save(ctx context.Context, key SessionKey, st SessionState) error
	Delete(ctx context.Context, key SessionKey) error
}

// MemoryStore keeps state in process, bounded by size and ttl.
type MemoryStore struct {
	cache *expirable.LRU[SessionKey, SessionState]
}

func NewMemoryStore(size int, ttl time.Duration) *MemoryStore {
	return &MemoryStore{cache: expirable.NewLRU[SessionKey, SessionState](size, nil, ttl)}
}

func (s *MemoryStore) Load(_ context.Context, key SessionKey) (SessionState, bool, error) {
	st, ok := s.cache.Get(key)
	if !ok {
		return SessionState{}, false, nil
	}
	return cloneSessionState(st), true, nil
}

func (s *MemoryStore) Save(_ context.Context, key SessionKey, st SessionState) error {
	s.cache.Add(key, cloneSessionState(st))
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key SessionKey) error {
	s.cache.Remove(key)
	return nil
}

func cloneSessionState(st SessionState) SessionState {
	out := SessionState{Search: st.Search}
	if st.Columns != nil {
		out.Columns = make(map[string]colfilter.State, len(st.Columns))
		for k, v := range st.Columns {
			out.Columns[k] = v.Clone()
		}
	}
	return out
}
