package domain

import "sync"

type State int

const (
	// StateLoading is the initial state, before the one-shot profile check
	// at startup has resolved.
	StateLoading State = iota
	StateAnonymous
	StateAuthenticated
)

type User struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

// Session is the process-wide authentication state. It is constructed once
// at bootstrap and injected into every collaborator; only the auth usecase
// writes it. Reads can come from TUI command goroutines, hence the lock.
type Session struct {
	mu    sync.RWMutex
	state State
	user  User
}

func NewSession() *Session {
	return &Session{state: StateLoading}
}

// Resolve moves the session out of the loading state. It is a no-op after
// the first call: the startup profile check resolves the session exactly once.
func (s *Session) Resolve(user User, authenticated bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateLoading {
		return
	}
	if authenticated {
		s.state = StateAuthenticated
		s.user = user
	} else {
		s.state = StateAnonymous
	}
}

// SetUser transitions to authenticated with the given user. Used by login.
func (s *Session) SetUser(user User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateAuthenticated
	s.user = user
}

// Clear drops the current user. Used by logout and by an explicit 401 from
// the server; both tear down client state without treating it as fatal.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateAnonymous
	s.user = User{}
}

func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// User returns the current user and whether the session is authenticated.
func (s *Session) User() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user, s.state == StateAuthenticated
}
