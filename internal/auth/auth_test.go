package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "chronosdeck/internal/errors"
	"chronosdeck/internal/model"
	"chronosdeck/internal/storage"
)

func setupTestDB(t *testing.T) *storage.DB {
	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

// =============================================================================
// LocalProvider Tests
// =============================================================================

func TestSignInRequiresName(t *testing.T) {
	p := NewLocalProvider()

	_, err := p.SignIn(context.Background(), "", "")
	require.Error(t, err)
	assert.True(t, apperrors.IsUserError(err))
}

func TestSignInCreatesNamedPrincipal(t *testing.T) {
	p := NewLocalProvider()

	principal, err := p.SignIn(context.Background(), "Dana", "dana@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, principal.UID)
	assert.Equal(t, "Dana", principal.DisplayName)
	assert.Equal(t, "dana@example.com", principal.Email)
	assert.False(t, principal.IsAnonymous)
	assert.True(t, principal.Named())
}

func TestSignInAnonymous(t *testing.T) {
	p := NewLocalProvider()

	principal, err := p.SignInAnonymous(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, principal.UID)
	assert.True(t, principal.IsAnonymous)
	assert.False(t, principal.Named())
}

func TestSignInWithTokenIsDeterministic(t *testing.T) {
	p := NewLocalProvider()

	a, err := p.SignInWithToken(context.Background(), "token-1")
	require.NoError(t, err)
	b, err := p.SignInWithToken(context.Background(), "token-1")
	require.NoError(t, err)
	c, err := p.SignInWithToken(context.Background(), "token-2")
	require.NoError(t, err)

	assert.Equal(t, a.UID, b.UID)
	assert.NotEqual(t, a.UID, c.UID)
	assert.True(t, a.Named())
}

// =============================================================================
// Session Tests
// =============================================================================

func TestBootstrapAnonymous(t *testing.T) {
	db := setupTestDB(t)
	s := NewSession(db, NewLocalProvider())

	s.Bootstrap(context.Background(), "")

	principal := s.Current()
	require.NotNil(t, principal)
	assert.True(t, principal.IsAnonymous)
	assert.False(t, principal.Named())
}

func TestBootstrapWithToken(t *testing.T) {
	db := setupTestDB(t)
	s := NewSession(db, NewLocalProvider())

	s.Bootstrap(context.Background(), "bootstrap-token")

	principal := s.Current()
	require.NotNil(t, principal)
	assert.True(t, principal.Named())
}

func TestBootstrapRestoresPersistedSession(t *testing.T) {
	db := setupTestDB(t)

	first := NewSession(db, NewLocalProvider())
	signedIn, err := first.SignIn(context.Background(), "Dana", "")
	require.NoError(t, err)

	// A second session against the same store restores the same principal.
	second := NewSession(db, NewLocalProvider())
	second.Bootstrap(context.Background(), "")

	restored := second.Current()
	require.NotNil(t, restored)
	assert.Equal(t, signedIn.UID, restored.UID)
	assert.Equal(t, "Dana", restored.DisplayName)
}

func TestBootstrapFailureLeavesSignedOut(t *testing.T) {
	db := setupTestDB(t)
	s := NewSession(db, &failingProvider{})

	s.Bootstrap(context.Background(), "")
	assert.Nil(t, s.Current())
}

func TestSignInFailureWrapsError(t *testing.T) {
	db := setupTestDB(t)
	s := NewSession(db, &failingProvider{})

	_, err := s.SignIn(context.Background(), "Dana", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrSignInFailed)
	assert.Nil(t, s.Current())
}

func TestSignOutClearsSession(t *testing.T) {
	db := setupTestDB(t)
	s := NewSession(db, NewLocalProvider())

	_, err := s.SignIn(context.Background(), "Dana", "")
	require.NoError(t, err)
	require.NotNil(t, s.Current())

	s.SignOut(context.Background())
	assert.Nil(t, s.Current())

	// Nothing persisted: a new session bootstraps fresh.
	next := NewSession(db, NewLocalProvider())
	next.Bootstrap(context.Background(), "")
	require.NotNil(t, next.Current())
	assert.True(t, next.Current().IsAnonymous)
}

func TestOnChangeListeners(t *testing.T) {
	db := setupTestDB(t)
	s := NewSession(db, NewLocalProvider())

	var changes []*model.Principal
	s.OnChange(func(p *model.Principal) {
		changes = append(changes, p)
	})

	_, err := s.SignIn(context.Background(), "Dana", "")
	require.NoError(t, err)
	s.SignOut(context.Background())

	require.Len(t, changes, 2)
	assert.Equal(t, "Dana", changes[0].DisplayName)
	assert.Nil(t, changes[1])
}

// failingProvider errors on every operation.
type failingProvider struct{}

func (p *failingProvider) SignIn(ctx context.Context, displayName, email string) (*model.Principal, error) {
	return nil, errors.New("provider unavailable")
}

func (p *failingProvider) SignInAnonymous(ctx context.Context) (*model.Principal, error) {
	return nil, errors.New("provider unavailable")
}

func (p *failingProvider) SignInWithToken(ctx context.Context, token string) (*model.Principal, error) {
	return nil, errors.New("provider unavailable")
}

func (p *failingProvider) SignOut(ctx context.Context) error {
	return errors.New("provider unavailable")
}
