package redis

import (
	"context"
	"testing"
	"time"

	"delegated-trading-gateway/internal/core/domain"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*SubmissionStore, *miniredis.Miniredis) {
	t.Helper()
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewSubmissionStore(client), s
}

func TestSubmissionStore_ReserveOnce(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	ok, rec, err := store.Reserve(ctx, "u1:deposit:k1", time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, domain.SubmissionPending, rec.State)

	ok, rec, err = store.Reserve(ctx, "u1:deposit:k1", time.Hour)
	require.NoError(t, err)
	assert.False(t, ok)
	require.NotNil(t, rec)
	assert.Equal(t, domain.SubmissionPending, rec.State)
}

func TestSubmissionStore_SaveThenReserveReturnsRecord(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	_, _, err := store.Reserve(ctx, "u1:withdraw-gas:k2", time.Hour)
	require.NoError(t, err)

	err = store.Save(ctx, &domain.SubmissionRecord{
		Key:        "u1:withdraw-gas:k2",
		State:      domain.SubmissionCompleted,
		Signatures: []string{"sig-1"},
		Response:   []byte(`{"signature":"sig-1"}`),
	}, time.Hour)
	require.NoError(t, err)

	ok, rec, err := store.Reserve(ctx, "u1:withdraw-gas:k2", time.Hour)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, domain.SubmissionCompleted, rec.State)
	assert.Equal(t, []string{"sig-1"}, rec.Signatures)
	assert.JSONEq(t, `{"signature":"sig-1"}`, string(rec.Response))
}

func TestSubmissionStore_Release(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	_, _, err := store.Reserve(ctx, "u1:deposit:k3", time.Hour)
	require.NoError(t, err)
	require.NoError(t, store.Release(ctx, "u1:deposit:k3"))

	ok, _, err := store.Reserve(ctx, "u1:deposit:k3", time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSubmissionStore_Expiry(t *testing.T) {
	store, s := newTestStore(t)
	ctx := context.Background()

	_, _, err := store.Reserve(ctx, "u1:deposit:k4", time.Second)
	require.NoError(t, err)

	s.FastForward(2 * time.Second)

	ok, _, err := store.Reserve(ctx, "u1:deposit:k4", time.Second)
	require.NoError(t, err)
	assert.True(t, ok, "expired reservation should be claimable again")
}
