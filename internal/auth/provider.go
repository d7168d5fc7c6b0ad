// Package auth wraps the identity provider and tracks the current session.
package auth

import (
	"context"

	"github.com/google/uuid"

	"chronosdeck/internal/errors"
	"chronosdeck/internal/model"
)

// Provider is the identity provider behind the session. It issues principals
// and is treated as an external collaborator; the local provider below is the
// offline implementation.
type Provider interface {
	// SignIn performs an interactive sign-in and returns a named principal.
	SignIn(ctx context.Context, displayName, email string) (*model.Principal, error)
	// SignInAnonymous issues an anonymous principal for bootstrap.
	SignInAnonymous(ctx context.Context) (*model.Principal, error)
	// SignInWithToken signs in with a bootstrap credential.
	SignInWithToken(ctx context.Context, token string) (*model.Principal, error)
	// SignOut ends the provider-side session.
	SignOut(ctx context.Context) error
}

// tokenNamespace derives stable uids from bootstrap tokens, so the same
// credential always resolves to the same principal.
var tokenNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

// LocalProvider issues principals locally, with uids generated on sign-in.
type LocalProvider struct{}

// NewLocalProvider creates a local identity provider.
func NewLocalProvider() *LocalProvider {
	return &LocalProvider{}
}

// SignIn issues a named principal.
func (p *LocalProvider) SignIn(ctx context.Context, displayName, email string) (*model.Principal, error) {
	if displayName == "" {
		return nil, errors.NewUserError(
			"Display name is required to sign in",
			"Run 'chronosdeck login --name <your name>'")
	}
	return &model.Principal{
		UID:         uuid.NewString(),
		DisplayName: displayName,
		Email:       email,
		IsAnonymous: false,
	}, nil
}

// SignInAnonymous issues an anonymous principal.
func (p *LocalProvider) SignInAnonymous(ctx context.Context) (*model.Principal, error) {
	return &model.Principal{
		UID:         uuid.NewString(),
		IsAnonymous: true,
	}, nil
}

// SignInWithToken derives a named principal from a bootstrap credential.
func (p *LocalProvider) SignInWithToken(ctx context.Context, token string) (*model.Principal, error) {
	if token == "" {
		return nil, errors.ErrSignInFailed
	}
	return &model.Principal{
		UID:         uuid.NewSHA1(tokenNamespace, []byte(token)).String(),
		DisplayName: "Bootstrap User",
		IsAnonymous: false,
	}, nil
}

// SignOut is a no-op for the local provider.
func (p *LocalProvider) SignOut(ctx context.Context) error {
	return nil
}
