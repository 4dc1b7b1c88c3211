package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Default TTLs for the challenge and session tables.
const (
	DefaultChallengeTTL = 300 * time.Second
	DefaultSessionTTL   = 3600 * time.Second

	sweepInterval = 30 * time.Second
)

type ttlEntry[T any] struct {
	value     T
	expiresAt time.Time
}

// MemoryStore is an in-process Store backed by plain Go maps guarded by
// mutexes. The example pack carries no TTL-cache or concurrent-map
// library to wire in here, so expiry is handled with a lazy check on read
// plus a background sweep goroutine, and the user table (which never
// expires) uses a bare sync.RWMutex.
type MemoryStore struct {
	challengeTTL time.Duration
	sessionTTL   time.Duration

	usersMu sync.RWMutex
	users   map[string]User

	challengesMu sync.Mutex
	challenges   map[string]ttlEntry[Challenge]

	sessionsMu sync.Mutex
	sessions   map[string]ttlEntry[Session]

	closeOnce sync.Once
	stop      chan struct{}
}

// NewMemoryStore returns a MemoryStore with the given challenge and
// session TTLs, and starts its background sweep goroutine. Callers must
// call Close when done with it.
func NewMemoryStore(challengeTTL, sessionTTL time.Duration) *MemoryStore {
	s := &MemoryStore{
		challengeTTL: challengeTTL,
		sessionTTL:   sessionTTL,
		users:        make(map[string]User),
		challenges:   make(map[string]ttlEntry[Challenge]),
		sessions:     make(map[string]ttlEntry[Session]),
		stop:         make(chan struct{}),
	}
	go s.sweepLoop()
	return s
}

// NewDefaultMemoryStore returns a MemoryStore using DefaultChallengeTTL and
// DefaultSessionTTL.
func NewDefaultMemoryStore() *MemoryStore {
	return NewMemoryStore(DefaultChallengeTTL, DefaultSessionTTL)
}

// Close stops the background sweep goroutine. Safe to call more than once.
func (s *MemoryStore) Close() {
	s.closeOnce.Do(func() { close(s.stop) })
}

func (s *MemoryStore) sweepLoop() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case now := <-ticker.C:
			s.sweep(now)
		}
	}
}

func (s *MemoryStore) sweep(now time.Time) {
	s.challengesMu.Lock()
	for k, e := range s.challenges {
		if now.After(e.expiresAt) {
			delete(s.challenges, k)
		}
	}
	s.challengesMu.Unlock()

	s.sessionsMu.Lock()
	for k, e := range s.sessions {
		if now.After(e.expiresAt) {
			delete(s.sessions, k)
		}
	}
	s.sessionsMu.Unlock()
}

// InsertUser stores user under username, overwriting any prior record.
// Races between concurrent InsertUser calls for the same username are
// allowed to resolve either way; callers that require exclusivity must
// check GetUser first.
func (s *MemoryStore) InsertUser(username string, user User) {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()
	s.users[username] = user
}

// GetUser returns the stored record for username, if any.
func (s *MemoryStore) GetUser(username string) (User, bool) {
	s.usersMu.RLock()
	defer s.usersMu.RUnlock()
	u, ok := s.users[username]
	return u, ok
}

// InsertChallenge stores challenge under authID, to expire after the
// store's challenge TTL.
func (s *MemoryStore) InsertChallenge(authID uuid.UUID, challenge Challenge) {
	s.challengesMu.Lock()
	defer s.challengesMu.Unlock()
	s.challenges[authID.String()] = ttlEntry[Challenge]{
		value:     challenge,
		expiresAt: time.Now().Add(s.challengeTTL),
	}
}

// GetChallenge returns the challenge stored under authID, if present and
// not yet expired. An expired entry is evicted and reported as absent.
func (s *MemoryStore) GetChallenge(authID uuid.UUID) (Challenge, bool) {
	s.challengesMu.Lock()
	defer s.challengesMu.Unlock()
	key := authID.String()
	e, ok := s.challenges[key]
	if !ok {
		return Challenge{}, false
	}
	if time.Now().After(e.expiresAt) {
		delete(s.challenges, key)
		return Challenge{}, false
	}
	return e.value, true
}

// InsertSession stores session under key, to expire after the store's
// session TTL.
func (s *MemoryStore) InsertSession(key string, session Session) {
	s.sessionsMu.Lock()
	defer s.sessionsMu.Unlock()
	s.sessions[key] = ttlEntry[Session]{
		value:     session,
		expiresAt: time.Now().Add(s.sessionTTL),
	}
}

// GetSession returns the session stored under key, if present and not yet
// expired. An expired entry is evicted and reported as absent.
func (s *MemoryStore) GetSession(key string) (Session, bool) {
	s.sessionsMu.Lock()
	defer s.sessionsMu.Unlock()
	e, ok := s.sessions[key]
	if !ok {
		return Session{}, false
	}
	if time.Now().After(e.expiresAt) {
		delete(s.sessions, key)
		return Session{}, false
	}
	return e.value, true
}

var _ Store = (*MemoryStore)(nil)
