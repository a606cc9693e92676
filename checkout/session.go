package checkout

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("checkout session not found")

// Session ties a wizard to the cart session it was started from. The store
// hands the same pointer to every request for the checkout id, so callers
// hold the embedded mutex while reading or mutating the wizard.
type Session struct {
	sync.Mutex
	ID        string
	CartToken string // the browsing session that owns the cart
	Wizard    *Wizard
	CreatedAt time.Time
}

// SessionStore holds live checkout sessions. It is an explicit, injectable
// store with a defined lifecycle: a session is created at /checkout/start
// and destroyed on completion or expiry.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

// Start creates a session for the cart token, replacing any previous one so
// a session never has two concurrent checkouts.
func (s *SessionStore) Start(cartToken string) *Session {
	sess := &Session{
		ID:        uuid.NewString(),
		CartToken: cartToken,
		Wizard:    NewWizard(),
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, old := range s.sessions {
		if old.CartToken == cartToken {
			delete(s.sessions, id)
		}
	}
	s.sessions[sess.ID] = sess
	return sess
}

// Get returns the session if it exists, belongs to the cart token, and has
// not expired.
func (s *SessionStore) Get(id, cartToken string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok || sess.CartToken != cartToken {
		return nil, ErrSessionNotFound
	}
	if s.ttl > 0 && time.Since(sess.CreatedAt) > s.ttl {
		s.End(id)
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// End removes a session (completion, expiry, or cart clear).
func (s *SessionStore) End(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Len reports the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
