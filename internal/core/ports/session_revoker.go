package ports

import (
	"context"
	"time"
)

// SessionRevoker records tokens invalidated before their natural expiry
// (logout) and answers whether a given token id is on the list.
type SessionRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
