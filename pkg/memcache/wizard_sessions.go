// pkg/memcache/wizard_sessions.go
package mem

import (
	"errors"
	"sync"
	"time"
)

var ErrSessionNotFound = errors.New("session not found")

// WizardQA is one diagnostic question with the answer collected so far.
// Order in the session slice is the order the model delivered the questions
// and is never changed.
type WizardQA struct {
	QuestionID string
	Question   string
	Answer     string
}

// WizardSession is the server-side state of one diagnostic wizard run.
type WizardSession struct {
	ID         string
	Topic      string
	Items      []WizardQA
	Step       int
	Submitting bool
}

type WizardSessionStore interface {
	Put(session *WizardSession, ttl time.Duration)

	// Get returns a copy of the session so callers cannot mutate stored
	// state outside Update.
	Get(id string) (*WizardSession, bool)

	// Update applies fn to the stored session under the store lock. When fn
	// returns an error the mutation is kept anyway only if fn already applied
	// it; fn is expected to leave the session untouched on error.
	Update(id string, fn func(*WizardSession) error) (*WizardSession, error)

	Delete(id string)
}

type sessionEntry struct {
	session   *WizardSession
	expiresAt time.Time
}

type WizardSessions struct {
	mu   sync.RWMutex
	ttl  time.Duration
	data map[string]sessionEntry
}

func NewWizardSessions() *WizardSessions {
	return &WizardSessions{
		data: make(map[string]sessionEntry),
	}
}

func (s *WizardSessions) Put(session *WizardSession, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[session.ID] = sessionEntry{
		session:   session,
		expiresAt: time.Now().Add(ttl),
	}

	// opportunistic cleanup, the store only ever holds live wizard runs
	if len(s.data) > 10000 {
		now := time.Now()
		for id, e := range s.data {
			if now.After(e.expiresAt) {
				delete(s.data, id)
			}
		}
	}
}

func (s *WizardSessions) Get(id string) (*WizardSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[id]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return copySession(e.session), true
}

func (s *WizardSessions) Update(id string, fn func(*WizardSession) error) (*WizardSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if time.Now().After(e.expiresAt) {
		delete(s.data, id)
		return nil, ErrSessionNotFound
	}

	if err := fn(e.session); err != nil {
		return nil, err
	}
	return copySession(e.session), nil
}

func (s *WizardSessions) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
}

func copySession(in *WizardSession) *WizardSession {
	out := &WizardSession{
		ID:         in.ID,
		Topic:      in.Topic,
		Step:       in.Step,
		Submitting: in.Submitting,
		Items:      make([]WizardQA, len(in.Items)),
	}
	copy(out.Items, in.Items)
	return out
}
