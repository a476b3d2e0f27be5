package listing

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/iota-uz/backoffice/pkg/colfilter"
	"github.com/iota-uz/backoffice/pkg/composables"
)

type Options struct {
	Store        Store
	LiveSessions int
	SessionTTL   time.Duration
	FetchTimeout time.Duration
}

// Result is what a page view returns: the filter state and the visible rows.
type Result[R any] struct {
	Snapshot Snapshot
	Rows     []R
}

// Service serves one list page to many sessions. Fetched rows are kept in
// an expiring LRU; filter state lives in the store.
type Service[R any] struct {
	page         *Page[R]
	store        Store
	fetchTimeout time.Duration

	mu   sync.Mutex
	live *expirable.LRU[SessionKey, *Listing[R]]
}

func NewService[R any](page *Page[R], opts Options) *Service[R] {
	if opts.LiveSessions <= 0 {
		opts.LiveSessions = 1024
	}
	if opts.Store == nil {
		opts.Store = NewMemoryStore(opts.LiveSessions, opts.SessionTTL)
	}
	return &Service[R]{
		page:         page,
		store:        opts.Store,
		fetchTimeout: opts.FetchTimeout,
		live:         expirable.NewLRU[SessionKey, *Listing[R]](opts.LiveSessions, nil, opts.SessionTTL),
	}
}

func (s *Service[R]) Page() *Page[R] {
	return s.page
}

// Key derives the session key from the request context.
func (s *Service[R]) Key(ctx context.Context) (SessionKey, error) {
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return SessionKey{}, err
	}
	sid, err := composables.UseSessionID(ctx)
	if err != nil {
		return SessionKey{}, err
	}
	return SessionKey{TenantID: tenantID, Page: s.page.Name, SessionID: sid}, nil
}

// Open returns the listing for key with the latest persisted filter state
// applied. Only rows are cached per instance: the filter state is reloaded
// from the store on every call, so instances sharing a store see each
// other's changes.
func (s *Service[R]) Open(ctx context.Context, key SessionKey) (*Listing[R], error) {
	st, found, err := s.store.Load(ctx, key)
	if err != nil {
		countStoreError(s.page.Name, "load")
		return nil, err
	}
	l := s.cached(key)
	if found {
		l.Restore(st)
	} else {
		l.Reset()
	}
	return l, nil
}

func (s *Service[R]) cached(key SessionKey) *Listing[R] {
	if l, ok := s.live.Get(key); ok {
		return l
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if l, ok := s.live.Get(key); ok {
		return l
	}
	l := New(s.page)
	l.fetchTimeout = s.fetchTimeout
	s.live.Add(key, l)
	return l
}

func (s *Service[R]) save(ctx context.Context, key SessionKey, l *Listing[R]) error {
	if err := s.store.Save(ctx, key, l.State()); err != nil {
		countStoreError(s.page.Name, "save")
		return err
	}
	return nil
}

// session opens the listing of the current request, fetching once if the
// session has no rows yet.
func (s *Service[R]) session(ctx context.Context) (SessionKey, *Listing[R], error) {
	key, err := s.Key(ctx)
	if err != nil {
		return SessionKey{}, nil, err
	}
	l, err := s.Open(ctx, key)
	if err != nil {
		return SessionKey{}, nil, err
	}
	if !l.Fetched() {
		if err := l.Refresh(ctx); err != nil && !errors.Is(err, ErrStaleFetch) {
			return SessionKey{}, nil, err
		}
	}
	return key, l, nil
}

func (s *Service[R]) result(l *Listing[R]) Result[R] {
	return Result[R]{Snapshot: l.Snapshot(), Rows: l.Visible()}
}

// View refetches the page rows and returns the filtered result. A stale
// fetch still returns the newer state already applied.
func (s *Service[R]) View(ctx context.Context) (Result[R], error) {
	key, err := s.Key(ctx)
	if err != nil {
		return Result[R]{}, err
	}
	l, err := s.Open(ctx, key)
	if err != nil {
		return Result[R]{}, err
	}
	if err := l.Refresh(ctx); err != nil && !errors.Is(err, ErrStaleFetch) {
		return Result[R]{}, err
	}
	if err := s.save(ctx, key, l); err != nil {
		return Result[R]{}, err
	}
	return s.result(l), nil
}

func (s *Service[R]) mutate(ctx context.Context, fn func(t *colfilter.Table[R]) error) (Result[R], error) {
	key, l, err := s.session(ctx)
	if err != nil {
		return Result[R]{}, err
	}
	if err := l.Update(fn); err != nil {
		return Result[R]{}, err
	}
	if err := s.save(ctx, key, l); err != nil {
		return Result[R]{}, err
	}
	return s.result(l), nil
}

func (s *Service[R]) Toggle(ctx context.Context, column, value string) (Result[R], error) {
	return s.mutate(ctx, func(t *colfilter.Table[R]) error {
		return t.Toggle(column, value)
	})
}

func (s *Service[R]) ToggleAll(ctx context.Context, column string) (Result[R], error) {
	return s.mutate(ctx, func(t *colfilter.Table[R]) error {
		return t.ToggleAll(column)
	})
}

func (s *Service[R]) SetSearch(ctx context.Context, term string) (Result[R], error) {
	return s.mutate(ctx, func(t *colfilter.Table[R]) error {
		t.SetSearch(term)
		return nil
	})
}

func (s *Service[R]) Clear(ctx context.Context) (Result[R], error) {
	return s.mutate(ctx, func(t *colfilter.Table[R]) error {
		t.Clear()
		return nil
	})
}

func (s *Service[R]) Only(ctx context.Context, column, value string) (Result[R], error) {
	return s.mutate(ctx, func(t *colfilter.Table[R]) error {
		return t.Only(column, value)
	})
}

func (s *Service[R]) SelectAll(ctx context.Context, column string) (Result[R], error) {
	return s.mutate(ctx, func(t *colfilter.Table[R]) error {
		return t.SelectAll(column)
	})
}

func (s *Service[R]) Options(ctx context.Context, column, query string) ([]string, error) {
	_, l, err := s.session(ctx)
	if err != nil {
		return nil, err
	}
	return l.Options(column, query)
}

// Export returns the visible rows of the current session as display cells.
func (s *Service[R]) Export(ctx context.Context) (headers []string, cells [][]string, err error) {
	_, l, err := s.session(ctx)
	if err != nil {
		return nil, nil, err
	}
	headers, cells = l.Table()
	return headers, cells, nil
}

// Forget drops the session from memory and the store.
func (s *Service[R]) Forget(ctx context.Context) error {
	key, err := s.Key(ctx)
	if err != nil {
		return err
	}
	s.live.Remove(key)
	return s.store.Delete(ctx, key)
}
