package redis

import (
	"context"
	"strconv"
	"testing"
	"time"

	"delegated-trading-gateway/config"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientOptions(t *testing.T) {
	opts := clientOptions(config.RedisConfig{
		Host:     "redis.example.com",
		Port:     6380,
		Password: "pw",
		DB:       2,
		PoolSize: 32,
	})

	assert.Equal(t, "redis.example.com:6380", opts.Addr)
	assert.Equal(t, "pw", opts.Password)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, 32, opts.PoolSize)
	assert.Equal(t, clientName, opts.ClientName)
	assert.Equal(t, 3*time.Second, opts.DialTimeout)
}

func TestNewClient(t *testing.T) {
	s := miniredis.RunT(t)
	port, err := strconv.Atoi(s.Port())
	require.NoError(t, err)

	client, err := NewClient(context.Background(), config.RedisConfig{Host: s.Host(), Port: port}, zerolog.Nop())
	require.NoError(t, err)
	defer client.Close()
	assert.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())
}

func TestNewClient_Unreachable(t *testing.T) {
	s := miniredis.RunT(t)
	port, err := strconv.Atoi(s.Port())
	require.NoError(t, err)
	s.Close()

	_, err = NewClient(context.Background(), config.RedisConfig{Host: "127.0.0.1", Port: port}, zerolog.Nop())
	assert.ErrorContains(t, err, "ping redis")
}

func TestWriteCheck(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	t.Cleanup(func() { client.Close() })
	c := NewWriteCheck(client)
	assert.Equal(t, "redis", c.Name())

	require.NoError(t, c.Ping(context.Background()))
	assert.True(t, s.Exists(healthKey))
	assert.Greater(t, s.TTL(healthKey), time.Duration(0))

	s.SetError("READONLY You can't write against a read only replica.")
	assert.ErrorContains(t, c.Ping(context.Background()), "READONLY")

	s.SetError("")
	assert.NoError(t, c.Ping(context.Background()))
}
