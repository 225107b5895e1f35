package session

import (
	"context"
	"sync"
	"time"

	"github.com/wonny/growthmap/internal/contracts"
	"github.com/wonny/growthmap/internal/metrics"
	"github.com/wonny/growthmap/pkg/logger"
)

// DefaultID is used when a request carries no session id
const DefaultID = "default"

// SnapshotStore is an optional second-level store for built datasets
type SnapshotStore interface {
	Load(ctx context.Context, seed int64, universeHash string) (*contracts.Dataset, bool, error)
	Save(ctx context.Context, ds *contracts.Dataset) error
}

type entry struct {
	dataset    *contracts.Dataset
	lastAccess time.Time
}

// Store caches one dataset per session
// ⭐ SSOT: 세션별 데이터셋 캐시는 이 구조체에서만
type Store struct {
	mu        sync.Mutex
	sessions  map[string]*entry
	builder   *metrics.Builder
	snapshots SnapshotStore
	idleTTL   time.Duration
	now       func() time.Time
	logger    *logger.Logger
}

// NewStore creates a session store. snapshots may be nil.
func NewStore(builder *metrics.Builder, snapshots SnapshotStore, idleTTL time.Duration, log *logger.Logger) *Store {
	return &Store{
		sessions:  make(map[string]*entry),
		builder:   builder,
		snapshots: snapshots,
		idleTTL:   idleTTL,
		now:       time.Now,
		logger:    log,
	}
}

// Get returns the session's dataset, building it on first use or when
// the requested seed differs from the cached one.
// 유니버스는 Store 수명 동안 고정, 유니버스 변경은 재시작 + 스냅샷 키(hash)로 분리됨
func (s *Store) Get(ctx context.Context, sessionID string, seed int64) *contracts.Dataset {
	s.mu.Lock()
	if e, ok := s.sessions[sessionID]; ok && e.dataset.Seed == seed {
		e.lastAccess = s.now()
		s.mu.Unlock()
		return e.dataset
	}
	s.mu.Unlock()

	// 빌드는 락 밖에서, 결과는 시드에 대해 결정적
	ds := s.load(ctx, seed)

	s.mu.Lock()
	s.sessions[sessionID] = &entry{dataset: ds, lastAccess: s.now()}
	s.mu.Unlock()

	s.logger.WithSession(sessionID).WithField("seed", seed).Info("Session dataset ready")
	return ds
}

// Peek returns the cached dataset without building or touching access time
func (s *Store) Peek(sessionID string) (*contracts.Dataset, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[sessionID]
	if !ok {
		return nil, false
	}
	return e.dataset, true
}

// Invalidate drops the session's dataset; the next Get rebuilds it
func (s *Store) Invalidate(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	return ok
}

// Sweep evicts sessions idle for longer than the TTL and returns the count
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.idleTTL)
	removed := 0
	for id, e := range s.sessions {
		if e.lastAccess.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of cached sessions
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// load tries the snapshot store first; snapshot errors degrade to a local build
func (s *Store) load(ctx context.Context, seed int64) *contracts.Dataset {
	if s.snapshots != nil {
		ds, found, err := s.snapshots.Load(ctx, seed, s.builder.UniverseHash())
		if err != nil {
			s.logger.WithError(err).Warn("Snapshot load failed, building locally")
		} else if found {
			return ds
		}
	}

	ds := s.builder.Build(seed)

	if s.snapshots != nil {
		if err := s.snapshots.Save(ctx, ds); err != nil {
			s.logger.WithError(err).Warn("Snapshot save failed")
		}
	}

	return ds
}
