package memory

import (
	"context"
	"time"

	"event-management-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

// TokenDenylist keeps revoked token ids in process memory. It is used when Redis is not reachable,
// so revocations do not survive a restart and are not shared between instances.
type TokenDenylist struct {
	cache *cache.Cache
}

func NewTokenDenylist() contract.TokenDenylist {
	// Entries carry their own expiry; purge expired items every 10 minutes
	return &TokenDenylist{
		cache: cache.New(cache.NoExpiration, 10*time.Minute),
	}
}

func (d *TokenDenylist) Revoke(_ context.Context, tokenId string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	d.cache.Set(tokenId, struct{}{}, ttl)
	return nil
}

func (d *TokenDenylist) IsRevoked(_ context.Context, tokenId string) (bool, error) {
	_, found := d.cache.Get(tokenId)
	return found, nil
}
