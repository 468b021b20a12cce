package service

import (
	"sync"

	"github.com/set-night/cryptoshop/internal/domain"
)

// SessionStore keeps checkout sessions in memory for the life of the process.
// The map lock only guards lookup and insert; each session has its own lock.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[int64]*domain.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[int64]*domain.Session)}
}

// Get returns the chat's session, creating an empty one on first access.
func (s *SessionStore) Get(chatID int64) *domain.Session {
	s.mu.RLock()
	sess, ok := s.sessions[chatID]
	s.mu.RUnlock()
	if ok {
		return sess
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[chatID]; ok {
		return sess
	}
	sess = domain.NewSession(chatID)
	s.sessions[chatID] = sess
	return sess
}

func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// ActiveInvoices counts sessions currently holding an unresolved invoice.
func (s *SessionStore) ActiveInvoices() int {
	s.mu.RLock()
	all := make([]*domain.Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		all = append(all, sess)
	}
	s.mu.RUnlock()

	n := 0
	for _, sess := range all {
		sess.Lock()
		if sess.Invoice != nil {
			n++
		}
		sess.Unlock()
	}
	return n
}
