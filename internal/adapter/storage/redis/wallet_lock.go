package redis

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// releaseScript deletes the lock only if this holder still owns it.
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// extendScript pushes the expiry out only if this holder still owns the lock.
var extendScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 0
`)

// WalletLock implements ports.WalletLocker across gateway instances using
// SET NX with a per-holder token. While held, the lock's expiry is extended
// every ttl/3 so a slow holder keeps it; ttl only bounds how long a crashed
// holder can block a wallet.
type WalletLock struct {
	client  *goredis.Client
	prefix  string
	ttl     time.Duration
	retry   time.Duration
	refresh time.Duration
	log     zerolog.Logger
}

// NewWalletLock creates a Redis-backed wallet lock.
func NewWalletLock(client *goredis.Client, ttl time.Duration, log zerolog.Logger) *WalletLock {
	return &WalletLock{
		client:  client,
		prefix:  "lock:",
		ttl:     ttl,
		retry:   50 * time.Millisecond,
		refresh: ttl / 3,
		log:     log,
	}
}

// Acquire polls until the lock is taken or ctx ends.
func (l *WalletLock) Acquire(ctx context.Context, key string) (func(), error) {
	redisKey := l.prefix + key
	token := uuid.NewString()

	ticker := time.NewTicker(l.retry)
	defer ticker.Stop()

	for {
		ok, err := l.client.SetNX(ctx, redisKey, token, l.ttl).Result()
		if err != nil && !errors.Is(err, goredis.Nil) {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("acquire lock %s: %w", key, ctx.Err())
			}
			return nil, fmt.Errorf("redis lock setnx: %w", err)
		}
		if ok {
			stop := make(chan struct{})
			done := make(chan struct{})
			go l.keepAlive(redisKey, token, stop, done)
			return l.releaser(redisKey, token, stop, done), nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("acquire lock %s: %w", key, ctx.Err())
		case <-ticker.C:
		}
	}
}

// keepAlive extends the lock until stop is closed or ownership is lost.
func (l *WalletLock) keepAlive(redisKey, token string, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	if l.refresh <= 0 {
		return
	}
	ticker := time.NewTicker(l.refresh)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
		}

		ctx, cancel := context.WithTimeout(context.Background(), l.refresh)
		n, err := extendScript.Run(ctx, l.client, []string{redisKey}, token, l.ttl.Milliseconds()).Int()
		cancel()
		switch {
		case err != nil:
			// Try again next tick; the key survives until ttl runs out.
			l.log.Warn().Err(err).Str("key", redisKey).Msg("failed to extend wallet lock")
		case n == 0:
			l.log.Error().Str("key", redisKey).Msg("wallet lock lost while held")
			return
		}
	}
}

func (l *WalletLock) releaser(redisKey, token string, stop chan<- struct{}, done <-chan struct{}) func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			close(stop)
			<-done

			// The caller's context may already be cancelled; the lock must still go.
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := releaseScript.Run(ctx, l.client, []string{redisKey}, token).Err(); err != nil {
				l.log.Warn().Err(err).Str("key", redisKey).Msg("failed to release wallet lock")
			}
		})
	}
}
