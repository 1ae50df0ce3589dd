package profile

import (
	"context"
	"errors"

	"github.com/muhammadolammi/futureframe/internal/database"
)

type cacheEntry struct {
	info  database.UserInfo
	found bool
}

// RequestCache remembers profile reads for the lifetime of one request so
// a handler chain hits the store at most once per identity. It is not safe
// for concurrent use and must not outlive the request that created it.
type RequestCache struct {
	entries map[string]cacheEntry
}

func NewRequestCache() *RequestCache {
	return &RequestCache{entries: map[string]cacheEntry{}}
}

// load returns the cached outcome for userID, or reads it with fetch.
// Failures are returned but not remembered.
func (c *RequestCache) load(ctx context.Context, userID string, fetch func(context.Context, string) (database.UserInfo, error)) (database.UserInfo, error) {
	if c == nil {
		return fetch(ctx, userID)
	}
	if e, ok := c.entries[userID]; ok {
		if !e.found {
			return database.UserInfo{}, database.ErrNotFound
		}
		return e.info, nil
	}

	info, err := fetch(ctx, userID)
	switch {
	case err == nil:
		c.entries[userID] = cacheEntry{info: info, found: true}
	case errors.Is(err, database.ErrNotFound):
		c.entries[userID] = cacheEntry{}
	}
	return info, err
}

func (c *RequestCache) store(info database.UserInfo) {
	if c == nil {
		return
	}
	c.entries[info.UserID] = cacheEntry{info: info, found: true}
}

func (c *RequestCache) forget(userID string) {
	if c == nil {
		return
	}
	delete(c.entries, userID)
}
