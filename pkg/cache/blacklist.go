package cache

import (
	"context"
	"fmt"
	"time"
)

// TokenBlacklist stores revoked refresh-token IDs until they would have
// expired anyway. Rotated and logged-out tokens are both recorded here.
type TokenBlacklist struct {
	redis *RedisClient
}

func NewTokenBlacklist(redis *RedisClient) *TokenBlacklist {
	return &TokenBlacklist{redis: redis}
}

func blacklistKey(jti string) string {
	return "auth:blacklist:" + jti
}

func (b *TokenBlacklist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		// Already expired; nothing to remember.
		return nil
	}
	if err := b.redis.Set(ctx, blacklistKey(jti), 1, ttl); err != nil {
		return fmt.Errorf("failed to blacklist token: %w", err)
	}
	return nil
}

func (b *TokenBlacklist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := b.redis.Exists(ctx, blacklistKey(jti))
	if err != nil {
		return false, fmt.Errorf("failed to check token blacklist: %w", err)
	}
	return n > 0, nil
}
