package session

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamestore-api/pkg/models"
)

func setupRedis(t *testing.T) {
	t.Helper()
	mr := miniredis.RunT(t)
	t.Setenv("REDIS_ADDRESS", mr.Addr())
	t.Setenv("REDIS_PASSWORD", "")
}

func TestSessionRoundTrip(t *testing.T) {
	setupRedis(t)
	ctx := context.Background()

	identity := models.Identity{
		AccountID:   "acc-1",
		DisplayName: "Ada Lovelace",
		Email:       "ada@example.com",
	}

	token, err := Create(ctx, identity)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	resolved, err := Get(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, identity, *resolved)
}

func TestGetUnknownToken(t *testing.T) {
	setupRedis(t)

	_, err := Get(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestDeleteInvalidatesSession(t *testing.T) {
	setupRedis(t)
	ctx := context.Background()

	token, err := Create(ctx, models.Identity{AccountID: "acc-1"})
	require.NoError(t, err)

	require.NoError(t, Delete(ctx, token))

	_, err = Get(ctx, token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestDeleteUnknownTokenIsNoOp(t *testing.T) {
	setupRedis(t)

	assert.NoError(t, Delete(context.Background(), "never-issued"))
}

func TestTokensAreUnique(t *testing.T) {
	setupRedis(t)
	ctx := context.Background()

	first, err := Create(ctx, models.Identity{AccountID: "acc-1"})
	require.NoError(t, err)
	second, err := Create(ctx, models.Identity{AccountID: "acc-1"})
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
