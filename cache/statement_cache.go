package cache

import (
	"context"
	"sync"

	"github.com/Konsultn-Engineering/smartcrud/database"
	lru "github.com/hashicorp/golang-lru/v2"
)

const DefaultStatementCacheSize = 256

// stmtEntry is a cached statement plus the number of callers currently
// holding it. An entry dropped from the cache while held is closed by the
// last release instead of immediately.
type stmtEntry struct {
	query   string
	stmt    database.Statement
	refs    int
	dropped bool
}

// StatementCache keeps prepared statements keyed by their SQL text.
// Statements are handed out through Acquire and stay open until released,
// even if evicted in the meantime.
type StatementCache struct {
	cache *lru.Cache[uint64, *stmtEntry]
	mu    sync.Mutex
}

func NewStatementCache(size int) *StatementCache {
	if size <= 0 {
		size = DefaultStatementCacheSize
	}
	s := &StatementCache{}
	// The callback runs inside Add and Purge, which are only called with mu held.
	s.cache, _ = lru.NewWithEvict(size, func(_ uint64, e *stmtEntry) {
		s.drop(e)
	})
	return s
}

// Acquire returns the cached statement for query, preparing it on a miss.
// The caller must call release once it is done with the statement, including
// any rows read from it.
func (s *StatementCache) Acquire(ctx context.Context, p database.Preparer, query string) (database.Statement, func(), error) {
	key := Fingerprint(query)

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.cache.Get(key)
	if !ok || e.query != query {
		stmt, err := p.PrepareContext(ctx, query)
		if err != nil {
			return nil, nil, err
		}
		if ok {
			// Fingerprint collision: Add replaces without firing the callback.
			s.cache.Remove(key)
		}
		e = &stmtEntry{query: query, stmt: stmt}
		s.cache.Add(key, e)
	}
	e.refs++

	var once sync.Once
	release := func() {
		once.Do(func() { s.release(e) })
	}
	return e.stmt, release, nil
}

func (s *StatementCache) release(e *stmtEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.refs--
	if e.dropped && e.refs == 0 {
		_ = e.stmt.Close()
	}
}

// drop is called with mu held.
func (s *StatementCache) drop(e *stmtEntry) {
	e.dropped = true
	if e.refs == 0 {
		_ = e.stmt.Close()
	}
}

func (s *StatementCache) Len() int {
	return s.cache.Len()
}

// Close drops every cached statement. Statements still held are closed when
// released.
func (s *StatementCache) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache.Purge()
	return nil
}
