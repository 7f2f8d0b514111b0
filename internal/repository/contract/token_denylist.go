package contract

import (
	"context"
	"time"
)

// TokenDenylist remembers revoked access tokens until they would have expired anyway.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenId string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenId string) (bool, error)
}
