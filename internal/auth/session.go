package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"chronosdeck/internal/errors"
	"chronosdeck/internal/logging"
	"chronosdeck/internal/model"
	"chronosdeck/internal/storage"
)

// sessionKey is where the current principal is persisted between runs. It
// lives outside any per-user collection.
const sessionKey = "session:current"

// ChangeFunc is called whenever the session's principal changes. The
// principal is nil after sign-out.
type ChangeFunc func(*model.Principal)

// Session exposes the current authenticated principal and keeps it updated
// across sign-in and sign-out. An anonymous principal may exist silently for
// bootstrap; callers gate features on Principal.Named.
type Session struct {
	db       *storage.DB
	provider Provider

	mu        sync.RWMutex
	current   *model.Principal
	listeners []ChangeFunc
}

// NewSession creates a session backed by the given provider.
func NewSession(db *storage.DB, provider Provider) *Session {
	return &Session{db: db, provider: provider}
}

// Bootstrap restores the persisted session, or establishes one: with the
// bootstrap token when present, anonymously otherwise. A failed bootstrap
// leaves the session signed out rather than failing the caller.
func (s *Session) Bootstrap(ctx context.Context, token string) {
	data, err := s.db.GetBytes(sessionKey)
	if err == nil {
		var p model.Principal
		if err := json.Unmarshal(data, &p); err == nil {
			s.setCurrent(&p)
			return
		}
	}

	var p *model.Principal
	if token != "" {
		p, err = s.provider.SignInWithToken(ctx, token)
	} else {
		p, err = s.provider.SignInAnonymous(ctx)
	}
	if err != nil {
		logging.Warn("initial auth attempt failed", logging.KeyError, err)
		return
	}

	if err := s.persist(p); err != nil {
		logging.Warn("failed to persist session", logging.KeyError, err)
	}
	s.setCurrent(p)
}

// Current returns the current principal, or nil when signed out.
func (s *Session) Current() *model.Principal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// SignIn performs an interactive sign-in and makes the principal current.
// Failure surfaces to the caller as a blocking error.
func (s *Session) SignIn(ctx context.Context, displayName, email string) (*model.Principal, error) {
	p, err := s.provider.SignIn(ctx, displayName, email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrSignInFailed, err)
	}

	if err := s.persist(p); err != nil {
		return nil, errors.NewSystemErrorWithOp("sign-in", "failed to persist session", err)
	}
	s.setCurrent(p)
	return p, nil
}

// SignOut clears the session. Provider-side failures are logged, not
// surfaced.
func (s *Session) SignOut(ctx context.Context) {
	if err := s.provider.SignOut(ctx); err != nil {
		logging.Warn("provider sign-out failed", logging.KeyError, err)
	}
	if err := s.db.DeleteBytes(sessionKey); err != nil && !storage.IsErrDocNotFound(err) {
		logging.Warn("failed to clear persisted session", logging.KeyError, err)
	}
	s.setCurrent(nil)
}

// OnChange registers a listener for session changes.
func (s *Session) OnChange(fn ChangeFunc) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

func (s *Session) persist(p *model.Principal) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return s.db.SetBytes(sessionKey, data)
}

func (s *Session) setCurrent(p *model.Principal) {
	s.mu.Lock()
	s.current = p
	listeners := make([]ChangeFunc, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(p)
	}
}
