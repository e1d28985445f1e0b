package store

import (
	"context"
	"io"

	lru "github.com/hashicorp/golang-lru"
	"github.com/minaorangina/cardtable/game"
	"github.com/pkg/errors"
)

// CachedStore reads through an LRU cache of encoded snapshots in front of
// another store. Writes go to the backing store first.
type CachedStore struct {
	next  Store
	cache *lru.Cache
}

func NewCachedStore(next Store, size int) (*CachedStore, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, errors.Wrap(err, "Unable to initialize snapshot cache")
	}
	return &CachedStore{next: next, cache: c}, nil
}

func (c *CachedStore) Backend() string { return c.next.Backend() }

func (c *CachedStore) Save(ctx context.Context, s game.Snapshot) error {
	data, err := Encode(s)
	if err != nil {
		return err
	}
	if err := c.next.Save(ctx, s); err != nil {
		c.cache.Remove(s.SessionID)
		return err
	}
	c.cache.Add(s.SessionID, data)
	return nil
}

func (c *CachedStore) Load(ctx context.Context, sessionID string) (game.Snapshot, error) {
	if v, ok := c.cache.Get(sessionID); ok {
		return Decode(v.([]byte))
	}

	s, err := c.next.Load(ctx, sessionID)
	if err != nil {
		return game.Snapshot{}, err
	}
	data, err := Encode(s)
	if err != nil {
		return game.Snapshot{}, err
	}
	c.cache.Add(sessionID, data)
	return s, nil
}

func (c *CachedStore) List(ctx context.Context, variant game.Variant) ([]string, error) {
	return c.next.List(ctx, variant)
}

func (c *CachedStore) Delete(ctx context.Context, sessionID string) error {
	c.cache.Remove(sessionID)
	return c.next.Delete(ctx, sessionID)
}

// Close closes the backing store if it holds connections.
func (c *CachedStore) Close() error {
	c.cache.Purge()
	if closer, ok := c.next.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
