package server

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// historyLimit caps how many calls a session remembers; older entries
// are dropped first.
const historyLimit = 8

// SessionEntry is one recorded tool call.
type SessionEntry struct {
	Tool      string         `json:"tool"`
	Arguments map[string]any `json:"arguments,omitempty"`
	At        time.Time      `json:"at"`
}

// Session is a caller-visible call history.
type Session struct {
	ID      string         `json:"id"`
	History []SessionEntry `json:"history"`
}

type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[string]*Session)}
}

// record appends an entry under id, creating the session first when id
// is empty or unknown. It returns the session id actually used.
func (s *sessionStore) record(id string, entry SessionEntry) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == "" {
		id = uuid.NewString()
	}
	sess, ok := s.sessions[id]
	if !ok {
		sess = &Session{ID: id}
		s.sessions[id] = sess
	}

	sess.History = append(sess.History, entry)
	if len(sess.History) > historyLimit {
		sess.History = sess.History[len(sess.History)-historyLimit:]
	}
	return id
}

func (s *sessionStore) get(id string) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, false
	}
	// Copy so callers never alias the stored history.
	out := Session{ID: sess.ID, History: make([]SessionEntry, len(sess.History))}
	copy(out.History, sess.History)
	return out, true
}
