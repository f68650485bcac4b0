package session

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	context Context
	turns   []Turn
	touched time.Time
}

// MemoryStore keeps session state in process memory. With a zero TTL entries
// live for the lifetime of the process; otherwise a janitor goroutine sweeps
// sessions idle for longer than the TTL.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*memoryEntry
	maxTurns int
	ttl      time.Duration
	stop     chan struct{}
	stopOnce sync.Once
}

// NewMemoryStore creates an in-memory store retaining at most maxTurns turns
// per session. If ttl > 0, idle sessions are evicted.
func NewMemoryStore(maxTurns int, ttl time.Duration) *MemoryStore {
	s := &MemoryStore{
		sessions: make(map[string]*memoryEntry),
		maxTurns: maxTurns,
		ttl:      ttl,
		stop:     make(chan struct{}),
	}
	if ttl > 0 {
		go s.sweep()
	}
	return s
}

// entry returns the session's entry, creating one on first write. Read paths
// use the map directly so unknown session IDs never allocate.
func (s *MemoryStore) entry(sessionID string) *memoryEntry {
	e, ok := s.sessions[sessionID]
	if !ok {
		e = &memoryEntry{}
		s.sessions[sessionID] = e
	}
	e.touched = time.Now()
	return e
}

func (s *MemoryStore) LoadContext(_ context.Context, sessionID string) (*Context, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[sessionID]
	if !ok {
		return &Context{}, nil
	}
	e.touched = time.Now()
	sc := e.context
	if sc.RecentTopics != nil {
		sc.RecentTopics = append([]string(nil), sc.RecentTopics...)
	}
	return &sc, nil
}

func (s *MemoryStore) SaveContext(_ context.Context, sessionID string, sc *Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.entry(sessionID)
	e.context = *sc
	e.context.RecentTopics = append([]string(nil), sc.RecentTopics...)
	return nil
}

func (s *MemoryStore) History(_ context.Context, sessionID string) ([]Turn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	e.touched = time.Now()
	return append([]Turn(nil), e.turns...), nil
}

func (s *MemoryStore) AppendTurns(_ context.Context, sessionID string, turns ...Turn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.entry(sessionID)
	e.turns = append(e.turns, turns...)
	if len(e.turns) > s.maxTurns {
		e.turns = append([]Turn(nil), e.turns[len(e.turns)-s.maxTurns:]...)
	}
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

// Close stops the janitor goroutine.
func (s *MemoryStore) Close() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *MemoryStore) sweep() {
	interval := s.ttl / 2
	if interval > time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-s.ttl)
			s.mu.Lock()
			for id, e := range s.sessions {
				if e.touched.Before(cutoff) {
					delete(s.sessions, id)
				}
			}
			s.mu.Unlock()
		}
	}
}

var _ Store = (*MemoryStore)(nil)
