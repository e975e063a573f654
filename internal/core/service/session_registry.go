package service

import (
	"sync"

	"github.com/webproshub/marketplace-gateway/internal/core/domain"
)

// SessionRegistry is the in-memory half of the credential store: a
// process-local map from session token to principal, one namespace per
// kind. It is populated on login and evicted on logout, on failed token
// validation, and on admin-auth-failure signals.
//
// State is local to one gateway instance. A principal whose registry entry
// is missing can still authenticate through its cached profile snapshot, so
// losing this map on restart degrades gracefully rather than logging
// everyone out. Cross-instance eviction is not coordinated; last write wins.
type SessionRegistry struct {
	mu     sync.RWMutex
	users  map[string]*domain.Principal
	admins map[string]*domain.Principal
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{
		users:  make(map[string]*domain.Principal),
		admins: make(map[string]*domain.Principal),
	}
}

func (r *SessionRegistry) bucket(kind domain.Kind) map[string]*domain.Principal {
	if kind == domain.KindAdmin {
		return r.admins
	}
	return r.users
}

// Put registers the principal for a token. Empty tokens are ignored.
func (r *SessionRegistry) Put(kind domain.Kind, token string, p *domain.Principal) {
	if token == "" || p == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bucket(kind)[token] = p
}

// Get returns the principal registered for a token, or nil.
func (r *SessionRegistry) Get(kind domain.Kind, token string) *domain.Principal {
	if token == "" {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.bucket(kind)[token]
}

// Delete evicts a token. Safe to call for tokens never registered.
func (r *SessionRegistry) Delete(kind domain.Kind, token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.bucket(kind), token)
}
