package sessiongate

import (
	"context"
	"encoding/base64"
	"fmt"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/sessiongate/sessiongate/credential"
)

// memoryUserStore is an in-memory UserStore with the same sentinel contract
// as the MongoDB adapter, including the storage-level uniqueness guard.
type memoryUserStore struct {
	mu      sync.Mutex
	nextID  int
	byID    map[string]*UserRecord
	byIdent map[string]*UserRecord
}

func newMemoryUserStore() *memoryUserStore {
	return &memoryUserStore{
		byID:    make(map[string]*UserRecord),
		byIdent: make(map[string]*UserRecord),
	}
}

func (s *memoryUserStore) seed(identifier, secret string) *UserRecord {
	id, err := s.Insert(context.Background(), identifier, credential.Digest(secret))
	if err != nil {
		panic(err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.byID[id]
}

func (s *memoryUserStore) FindByIdentifier(_ context.Context, identifier string) (*UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec, ok := s.byIdent[identifier]; ok {
		copied := *rec
		return &copied, nil
	}
	return nil, ErrUserNotFound
}

func (s *memoryUserStore) FindByIdentifierAndDigest(_ context.Context, identifier, digest string) (*UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec, ok := s.byIdent[identifier]; ok && rec.SecretDigest == digest {
		copied := *rec
		return &copied, nil
	}
	return nil, ErrUserNotFound
}

func (s *memoryUserStore) FindByID(_ context.Context, id string) (*UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec, ok := s.byID[id]; ok {
		copied := *rec
		return &copied, nil
	}
	return nil, ErrUserNotFound
}

func (s *memoryUserStore) Insert(_ context.Context, identifier, digest string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byIdent[identifier]; ok {
		return "", ErrDuplicateIdentifier
	}
	s.nextID++
	rec := &UserRecord{
		ID:           fmt.Sprintf("user-%d", s.nextID),
		Identifier:   identifier,
		SecretDigest: digest,
	}
	s.byID[rec.ID] = rec
	s.byIdent[identifier] = rec
	return rec.ID, nil
}

func (s *memoryUserStore) remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec, ok := s.byID[id]; ok {
		delete(s.byIdent, rec.Identifier)
		delete(s.byID, id)
	}
}

type testEngine struct {
	engine *Engine
	users  *memoryUserStore
	mr     *miniredis.Miniredis
	rdb    *redis.Client
}

func newTestEngine(t *testing.T, opts ...func(*Builder)) (*testEngine, func()) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis start: %v", err)
	}
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	users := newMemoryUserStore()

	builder := New().WithRedis(rdb).WithUserStore(users)
	for _, opt := range opts {
		opt(builder)
	}

	engine, err := builder.Build()
	if err != nil {
		t.Fatalf("build engine: %v", err)
	}

	te := &testEngine{
		engine: engine,
		users:  users,
		mr:     mr,
		rdb:    rdb,
	}
	return te, func() {
		engine.Close()
		rdb.Close()
		mr.Close()
	}
}

// basicBlob builds the transport encoding Authenticate consumes.
func basicBlob(identifier, secret string) string {
	return base64.StdEncoding.EncodeToString([]byte(identifier + ":" + secret))
}
