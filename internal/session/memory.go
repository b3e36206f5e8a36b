package session

import (
	"context"
	"sync"
	"time"

	"github.com/gmkornilov/crazymoves-backend/pkg/puzzle"
	"github.com/gmkornilov/crazymoves-backend/pkg/sequence"
)

// DefaultIdleTimeout is how long an untouched in-memory session is kept.
const DefaultIdleTimeout = 30 * time.Minute

type memorySession struct {
	mu       sync.Mutex
	show     *sequence.Slideshow
	lastSeen time.Time
}

// MemoryStore keeps sessions in process memory. Sessions idle for longer than
// the idle timeout are dropped on the next Create.
type MemoryStore struct {
	catalogs puzzle.Catalogs
	idle     time.Duration
	now      func() time.Time

	mu       sync.RWMutex
	sessions map[string]*memorySession
}

// NewMemoryStore returns a store evicting sessions idle for longer than idle.
// A non-positive idle uses DefaultIdleTimeout.
func NewMemoryStore(catalogs puzzle.Catalogs, idle time.Duration) *MemoryStore {
	if idle <= 0 {
		idle = DefaultIdleTimeout
	}
	return &MemoryStore{
		catalogs: catalogs,
		idle:     idle,
		now:      time.Now,
		sessions: make(map[string]*memorySession),
	}
}

func (m *MemoryStore) Create(ctx context.Context) (string, sequence.View, error) {
	show := sequence.New(m.catalogs)
	view := show.Start()
	id := newID()
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.evict(now)
	m.sessions[id] = &memorySession{show: show, lastSeen: now}
	return id, view, nil
}

// evict drops idle sessions. Callers hold m.mu for writing.
func (m *MemoryStore) evict(now time.Time) {
	for id, s := range m.sessions {
		s.mu.Lock()
		idle := now.Sub(s.lastSeen) > m.idle
		s.mu.Unlock()
		if idle {
			delete(m.sessions, id)
		}
	}
}

func (m *MemoryStore) Apply(ctx context.Context, id string, cmd Command) (sequence.View, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return sequence.View{}, ErrSessionNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	now := m.now()
	if now.Sub(s.lastSeen) > m.idle {
		return sequence.View{}, ErrSessionNotFound
	}
	s.lastSeen = now

	work, err := sequence.Restore(m.catalogs, s.show.Snapshot())
	if err != nil {
		return sequence.View{}, err
	}
	view, err := cmd(work)
	if err != nil {
		return view, err
	}
	s.show = work
	return view, nil
}

// Len reports how many sessions are held.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *MemoryStore) Close() error {
	return nil
}
