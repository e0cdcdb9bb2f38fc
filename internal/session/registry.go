package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/abhisek/interviewer/internal/questionbank"
)

// ErrSessionNotFound is returned for an unknown session id.
var ErrSessionNotFound = errors.New("session not found")

// Registry holds independent sessions keyed by id. Sessions share only the
// read-only bank.
type Registry struct {
	mu       sync.RWMutex
	bank     *questionbank.Bank
	opts     Options
	sessions map[string]*Session
}

// NewRegistry creates a Registry whose sessions use bank and opts. A Rand
// in opts is shared by every session, so it is wrapped in a lock.
func NewRegistry(bank *questionbank.Bank, opts Options) *Registry {
	if opts.Rand != nil {
		opts.Rand = &lockedRand{r: opts.Rand}
	}
	return &Registry{bank: bank, opts: opts, sessions: make(map[string]*Session)}
}

type lockedRand struct {
	mu sync.Mutex
	r  Rand
}

func (l *lockedRand) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}

// Start begins a new session and registers it.
func (r *Registry) Start(skills []string) (*Session, StartInfo, error) {
	s, info, err := Start(r.bank, skills, r.opts)
	if err != nil {
		return nil, StartInfo{}, err
	}

	r.mu.Lock()
	r.sessions[s.id] = s
	r.mu.Unlock()
	return s, info, nil
}

// Get returns the session with the given id.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return s, nil
}

// End removes the session and returns its final summary.
func (r *Registry) End(id string) (Summary, error) {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	if !ok {
		return Summary{}, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return s.Summary(), nil
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
