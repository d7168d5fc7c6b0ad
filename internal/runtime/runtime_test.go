package runtime

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "chronosdeck/internal/errors"
)

func setupTestContext(t *testing.T) *Context {
	t.Setenv("CHRONOSDECK_DATABASE", ":memory:")
	t.Setenv("CHRONOSDECK_NOTIFICATIONS", "false")
	t.Setenv("CHRONOSDECK_CONFIG", "")
	t.Setenv("CHRONOSDECK_BOOTSTRAP_TOKEN", "")
	t.Setenv("GEMINI_API_KEY", "")

	ctx, err := New(context.Background(), DefaultOptions())
	require.NoError(t, err)
	t.Cleanup(func() { ctx.Close() })
	return ctx
}

func TestNewBootstrapsAnonymous(t *testing.T) {
	ctx := setupTestContext(t)

	principal := ctx.Session.Current()
	require.NotNil(t, principal)
	assert.True(t, principal.IsAnonymous)
}

func TestRepositoriesRequireNamedUser(t *testing.T) {
	ctx := setupTestContext(t)

	// Anonymous bootstrap does not grant repository access.
	_, err := ctx.Subjects()
	require.Error(t, err)
	assert.True(t, apperrors.IsUserError(err))

	_, err = ctx.Session.SignIn(context.Background(), "Dana", "")
	require.NoError(t, err)

	repo, err := ctx.Subjects()
	require.NoError(t, err)
	assert.NotNil(t, repo)
}

func TestBootstrapTokenGrantsAccess(t *testing.T) {
	t.Setenv("CHRONOSDECK_DATABASE", ":memory:")
	t.Setenv("CHRONOSDECK_BOOTSTRAP_TOKEN", "ci-token")

	ctx, err := New(context.Background(), DefaultOptions())
	require.NoError(t, err)
	defer ctx.Close()

	_, err = ctx.RequireUser()
	assert.NoError(t, err)
}

func TestAIRequiresKey(t *testing.T) {
	ctx := setupTestContext(t)

	_, err := ctx.AI()
	require.Error(t, err)
	assert.True(t, apperrors.IsUserError(err))
}

func TestAIWithKey(t *testing.T) {
	ctx := setupTestContext(t)
	ctx.Config.GeminiAPIKey = "test-key"

	client, err := ctx.AI()
	require.NoError(t, err)
	assert.NotNil(t, client)
}
