package store

import (
	"context"
	"sort"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/minaorangina/cardtable/game"
	"github.com/pkg/errors"
)

var (
	ErrNotFound       = errors.New("snapshot not found")
	ErrMissingSession = errors.New("snapshot has no session id")
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Store keeps one snapshot per session id. Saving a session again replaces
// its snapshot.
type Store interface {
	Save(ctx context.Context, s game.Snapshot) error
	Load(ctx context.Context, sessionID string) (game.Snapshot, error)
	// List returns the ids of the stored sessions of a variant, sorted.
	List(ctx context.Context, variant game.Variant) ([]string, error)
	Delete(ctx context.Context, sessionID string) error
	// Backend names the storage behind the store, for logs and metrics.
	Backend() string
}

// Encode serialises a snapshot for storage.
func Encode(s game.Snapshot) ([]byte, error) {
	if s.SessionID == "" {
		return nil, ErrMissingSession
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, errors.Wrapf(err, "encoding snapshot %s", s.SessionID)
	}
	return data, nil
}

func Decode(data []byte) (game.Snapshot, error) {
	var s game.Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return game.Snapshot{}, errors.Wrap(err, "decoding snapshot")
	}
	return s, nil
}

type entry struct {
	variant game.Variant
	data    []byte
}

// InMemoryStore maps session id to encoded snapshot
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]entry
}

// NewInMemoryStore constructs an InMemoryStore
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		sessions: map[string]entry{},
	}
}

func (s *InMemoryStore) Backend() string { return "memory" }

func (s *InMemoryStore) Save(ctx context.Context, snap game.Snapshot) error {
	data, err := Encode(snap)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[snap.SessionID] = entry{variant: snap.Variant, data: data}
	return nil
}

func (s *InMemoryStore) Load(ctx context.Context, sessionID string) (game.Snapshot, error) {
	s.mu.RLock()
	e, ok := s.sessions[sessionID]
	s.mu.RUnlock()

	if !ok {
		return game.Snapshot{}, errors.Wrap(ErrNotFound, sessionID)
	}
	return Decode(e.data)
}

func (s *InMemoryStore) List(ctx context.Context, variant game.Variant) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := []string{}
	for id, e := range s.sessions {
		if e.variant == variant {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func (s *InMemoryStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return errors.Wrap(ErrNotFound, sessionID)
	}
	delete(s.sessions, sessionID)
	return nil
}
