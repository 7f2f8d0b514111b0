package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenDenylist(t *testing.T) {
	ctx := context.Background()
	d := NewTokenDenylist()

	revoked, err := d.IsRevoked(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, d.Revoke(ctx, "abc", time.Now().Add(time.Hour)))

	revoked, err = d.IsRevoked(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestTokenDenylistIgnoresExpiredTokens(t *testing.T) {
	ctx := context.Background()
	d := NewTokenDenylist()

	require.NoError(t, d.Revoke(ctx, "old", time.Now().Add(-time.Minute)))

	revoked, err := d.IsRevoked(ctx, "old")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestTokenDenylistEntryExpires(t *testing.T) {
	ctx := context.Background()
	d := NewTokenDenylist()

	require.NoError(t, d.Revoke(ctx, "short", time.Now().Add(50*time.Millisecond)))
	time.Sleep(100 * time.Millisecond)

	revoked, err := d.IsRevoked(ctx, "short")
	require.NoError(t, err)
	assert.False(t, revoked)
}
