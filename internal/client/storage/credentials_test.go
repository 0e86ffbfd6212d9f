package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/salesdesk/internal/client/models"
)

func newCredentials(t *testing.T) *Credentials {
	t.Helper()
	db, err := InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewCredentials(db)
}

func TestInitDatabase_MigrationsAreIdempotent(t *testing.T) {
	ctx := context.Background()
	db, err := InitDatabase(ctx, ":memory:")
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RunMigrations(ctx, db))

	var n int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM metadata`).Scan(&n))
	assert.Zero(t, n)
}

func TestCredentials_EmptyStore(t *testing.T) {
	c := newCredentials(t)
	ctx := context.Background()

	tok, err := c.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)

	u, err := c.Identity(ctx)
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestCredentials_SaveAndClear(t *testing.T) {
	c := newCredentials(t)
	ctx := context.Background()
	user := models.User{ID: "u1", Name: "Asha", Email: "asha@example.com", Role: models.RoleManager}

	require.NoError(t, c.Save(ctx, "jwt-token", user))

	tok, err := c.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", tok)

	got, err := c.Identity(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, user.Role, got.Role)

	require.NoError(t, c.Clear(ctx))
	tok, err = c.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)
	got, err = c.Identity(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCredentials_SaveWithoutTokenDropsOldOne(t *testing.T) {
	c := newCredentials(t)
	ctx := context.Background()

	require.NoError(t, c.Save(ctx, "old", models.User{ID: "u1"}))
	// cookie-only login: backend sent no token
	require.NoError(t, c.Save(ctx, "", models.User{ID: "u2"}))

	tok, err := c.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)
	u, err := c.Identity(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u2", u.ID)
}

func TestCredentials_CorruptIdentity(t *testing.T) {
	c := newCredentials(t)
	ctx := context.Background()
	require.NoError(t, c.repo.Set(ctx, keyUser, []byte("{not json")))

	_, err := c.Identity(ctx)
	require.ErrorContains(t, err, "decode stored identity")
}
