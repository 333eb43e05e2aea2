package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	lockTTL       = 5 * time.Second
	lockRetryWait = 20 * time.Millisecond
)

// CartLock serializes cart writes per user with a Redis SET NX lock.
// Key format: cartlock:<user_id>
//
// The TTL bounds how long a crashed holder can block other writers; release
// is best-effort (an expired lock may already belong to someone else, which
// only widens the window back to last-writer-wins).
type CartLock struct {
	client *redis.Client
}

// NewCartLock creates a CartLock wrapping the given Redis client.
func NewCartLock(client *redis.Client) *CartLock {
	return &CartLock{client: client}
}

// Acquire polls SET NX until the user's lock is held or ctx is done. The
// returned release function deletes the lock key.
func (l *CartLock) Acquire(ctx context.Context, userID string) (func(), error) {
	key := l.key(userID)

	for {
		ok, err := l.client.SetNX(ctx, key, "1", lockTTL).Result()
		if err != nil {
			return nil, fmt.Errorf("cart lock: %w", err)
		}
		if ok {
			return func() {
				// Release outlives a cancelled request context.
				releaseCtx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				_ = l.client.Del(releaseCtx, key).Err()
			}, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(lockRetryWait):
		}
	}
}

func (l *CartLock) key(userID string) string {
	return fmt.Sprintf("cartlock:%s", userID)
}
