package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"delegated-trading-gateway/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// SubmissionStore implements ports.SubmissionStore. Records are JSON documents
// keyed by the scoped idempotency key.
type SubmissionStore struct {
	client *goredis.Client
	prefix string
}

// NewSubmissionStore creates a new Redis-backed submission store.
func NewSubmissionStore(client *goredis.Client) *SubmissionStore {
	return &SubmissionStore{
		client: client,
		prefix: "submission:",
	}
}

// Reserve atomically claims key with a PENDING record. When the key is
// already taken it returns false and the stored record.
func (s *SubmissionStore) Reserve(ctx context.Context, key string, ttl time.Duration) (bool, *domain.SubmissionRecord, error) {
	pending := &domain.SubmissionRecord{
		Key:       key,
		State:     domain.SubmissionPending,
		UpdatedAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(pending)
	if err != nil {
		return false, nil, fmt.Errorf("marshal submission record: %w", err)
	}

	ok, err := s.client.SetNX(ctx, s.prefix+key, payload, ttl).Result()
	if err != nil && !errors.Is(err, goredis.Nil) {
		return false, nil, fmt.Errorf("redis submission reserve: %w", err)
	}
	if ok {
		return true, pending, nil
	}

	existing, err := s.get(ctx, key)
	if err != nil {
		return false, nil, err
	}
	if existing == nil {
		// Expired between SETNX and GET; try once more.
		ok, err = s.client.SetNX(ctx, s.prefix+key, payload, ttl).Result()
		if err != nil && !errors.Is(err, goredis.Nil) {
			return false, nil, fmt.Errorf("redis submission reserve: %w", err)
		}
		if ok {
			return true, pending, nil
		}
		return false, pending, nil
	}
	return false, existing, nil
}

// Save overwrites the record for record.Key.
func (s *SubmissionStore) Save(ctx context.Context, record *domain.SubmissionRecord, ttl time.Duration) error {
	record.UpdatedAt = time.Now().UTC()
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal submission record: %w", err)
	}
	if err := s.client.Set(ctx, s.prefix+record.Key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis submission save: %w", err)
	}
	return nil
}

// Release drops a reservation so the client may retry with the same key.
func (s *SubmissionStore) Release(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis submission release: %w", err)
	}
	return nil
}

func (s *SubmissionStore) get(ctx context.Context, key string) (*domain.SubmissionRecord, error) {
	val, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis submission get: %w", err)
	}
	var rec domain.SubmissionRecord
	if err := json.Unmarshal(val, &rec); err != nil {
		return nil, fmt.Errorf("decode submission record: %w", err)
	}
	return &rec, nil
}
