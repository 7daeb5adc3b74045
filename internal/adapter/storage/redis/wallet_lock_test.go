package redis

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLock(t *testing.T) (*WalletLock, *miniredis.Miniredis) {
	t.Helper()
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	t.Cleanup(func() { client.Close() })
	l := NewWalletLock(client, time.Minute, zerolog.Nop())
	l.retry = 5 * time.Millisecond
	return l, s
}

func TestWalletLock_AcquireRelease(t *testing.T) {
	l, s := newTestLock(t)
	ctx := context.Background()

	release, err := l.Acquire(ctx, "agent-wallet:1")
	require.NoError(t, err)
	assert.True(t, s.Exists("lock:agent-wallet:1"))

	release()
	assert.False(t, s.Exists("lock:agent-wallet:1"))

	// Second call is a no-op.
	release()
}

func TestWalletLock_WaitsForHolder(t *testing.T) {
	l, _ := newTestLock(t)
	ctx := context.Background()

	var inside, maxInside int32
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := l.Acquire(ctx, "agent-wallet:shared")
			if !assert.NoError(t, err) {
				return
			}
			n := atomic.AddInt32(&inside, 1)
			for {
				m := atomic.LoadInt32(&maxInside)
				if n <= m || atomic.CompareAndSwapInt32(&maxInside, m, n) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			atomic.AddInt32(&inside, -1)
			release()
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), maxInside)
}

func TestWalletLock_ContextDeadline(t *testing.T) {
	l, _ := newTestLock(t)

	release, err := l.Acquire(context.Background(), "agent-wallet:busy")
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	_, err = l.Acquire(ctx, "agent-wallet:busy")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestWalletLock_ReleaseKeepsForeignLock(t *testing.T) {
	l, s := newTestLock(t)

	release, err := l.Acquire(context.Background(), "agent-wallet:2")
	require.NoError(t, err)

	// The lock expired and another instance took it.
	s.FastForward(2 * time.Minute)
	require.NoError(t, s.Set("lock:agent-wallet:2", "other-holder"))

	release()
	got, err := s.Get("lock:agent-wallet:2")
	require.NoError(t, err)
	assert.Equal(t, "other-holder", got)
}

func TestWalletLock_HeldPastTTL(t *testing.T) {
	l, s := newTestLock(t)
	l.refresh = 5 * time.Millisecond

	release, err := l.Acquire(context.Background(), "agent-wallet:slow")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		s.FastForward(50 * time.Second)
		require.Eventually(t, func() bool {
			return s.TTL("lock:agent-wallet:slow") > 50*time.Second
		}, time.Second, 5*time.Millisecond, "lock expiry was not extended")
	}
	// 150s after acquiring a 60s lock it still belongs to the first holder.
	assert.True(t, s.Exists("lock:agent-wallet:slow"))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	_, err = l.Acquire(ctx, "agent-wallet:slow")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	release()
	assert.False(t, s.Exists("lock:agent-wallet:slow"))
}

func TestWalletLock_StopsExtendingAfterRelease(t *testing.T) {
	l, s := newTestLock(t)
	l.refresh = 5 * time.Millisecond

	release, err := l.Acquire(context.Background(), "agent-wallet:3")
	require.NoError(t, err)
	release()

	// Another instance takes the key without expiry; nothing may touch it.
	require.NoError(t, s.Set("lock:agent-wallet:3", "other-holder"))
	time.Sleep(30 * time.Millisecond)
	assert.Zero(t, s.TTL("lock:agent-wallet:3"))
}

func TestWalletLock_LostLockIsNotExtended(t *testing.T) {
	l, s := newTestLock(t)
	l.refresh = 5 * time.Millisecond

	release, err := l.Acquire(context.Background(), "agent-wallet:4")
	require.NoError(t, err)
	defer release()

	require.NoError(t, s.Set("lock:agent-wallet:4", "other-holder"))
	time.Sleep(30 * time.Millisecond)
	assert.Zero(t, s.TTL("lock:agent-wallet:4"))

	got, err := s.Get("lock:agent-wallet:4")
	require.NoError(t, err)
	assert.Equal(t, "other-holder", got)
}
