package tokens

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDenylist(t *testing.T) (*Denylist, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewDenylist(client), mr
}

func TestDenylistRevoke(t *testing.T) {
	d, _ := newDenylist(t)
	ctx := context.Background()

	revoked, err := d.Revoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, d.Revoke(ctx, "jti-1", time.Now().Add(time.Hour)))

	revoked, err = d.Revoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestDenylistEntryExpiresWithToken(t *testing.T) {
	d, mr := newDenylist(t)
	ctx := context.Background()

	require.NoError(t, d.Revoke(ctx, "jti-1", time.Now().Add(time.Minute)))

	mr.FastForward(2 * time.Minute)

	revoked, err := d.Revoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked, "entry is pointless after the token itself expired")
}

func TestDenylistIgnoresExpiredTokens(t *testing.T) {
	d, mr := newDenylist(t)
	ctx := context.Background()

	require.NoError(t, d.Revoke(ctx, "jti-1", time.Now().Add(-time.Minute)))
	assert.Empty(t, mr.Keys(), "nothing stored for already-expired tokens")
}
