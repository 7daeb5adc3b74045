package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"delegated-trading-gateway/internal/core/domain"
	"delegated-trading-gateway/internal/core/ports"
	"delegated-trading-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

// submissionGuard makes client-keyed requests safe to retry: a repeat never
// signs a second transaction for the same key.
type submissionGuard struct {
	store     ports.SubmissionStore
	submitter *TxSubmitter
	ttl       time.Duration
	log       zerolog.Logger
}

// guarded runs fn once per key. fn returns whatever it managed to submit even
// when it fails, so the signatures can be recorded.
func guarded[T any](
	ctx context.Context,
	g *submissionGuard,
	key string,
	fn func() (*T, error),
	signaturesOf func(*T) []string,
) (*T, error) {
	if g == nil || g.store == nil || key == "" {
		res, err := fn()
		if err != nil {
			return nil, err
		}
		return res, nil
	}

	reserved, existing, err := g.store.Reserve(ctx, key, g.ttl)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("reserve idempotency key: %w", err))
	}
	if !reserved {
		return replay[T](ctx, g, existing)
	}

	res, runErr := fn()
	var sigs []string
	if res != nil {
		sigs = signaturesOf(res)
	}

	record := &domain.SubmissionRecord{
		Key:        key,
		Signatures: sigs,
		UpdatedAt:  time.Now().UTC(),
	}
	switch {
	case runErr == nil:
		record.State = domain.SubmissionCompleted
		if record.Response, err = json.Marshal(res); err != nil {
			g.log.Error().Err(err).Str("key", key).Msg("failed to encode idempotent response")
		}
		g.save(ctx, record)
		return res, nil
	case len(sigs) > 0:
		record.State = domain.SubmissionSubmitted
		g.save(ctx, record)
	default:
		if err := g.store.Release(ctx, key); err != nil {
			g.log.Error().Err(err).Str("key", key).Msg("failed to release idempotency key")
		}
	}
	return nil, runErr
}

func replay[T any](ctx context.Context, g *submissionGuard, existing *domain.SubmissionRecord) (*T, error) {
	if existing == nil {
		return nil, apperror.ErrDuplicateRequest()
	}

	switch existing.State {
	case domain.SubmissionCompleted:
		var res T
		if err := json.Unmarshal(existing.Response, &res); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("decode idempotent response: %w", err))
		}
		return &res, nil
	case domain.SubmissionSubmitted:
		if len(existing.Signatures) == 0 {
			return nil, apperror.ErrDuplicateRequest()
		}
		last := existing.Signatures[len(existing.Signatures)-1]
		if err := g.submitter.Confirm(ctx, last); err != nil {
			return nil, err
		}
		g.log.Info().Str("key", existing.Key).Str("signature", last).Msg("repeated request already landed")
		return nil, apperror.ErrDuplicateRequest()
	default:
		return nil, apperror.ErrDuplicateRequest()
	}
}

// save outlives the request context: the record must land even when the client hung up.
func (g *submissionGuard) save(ctx context.Context, record *domain.SubmissionRecord) {
	if err := g.store.Save(context.WithoutCancel(ctx), record, g.ttl); err != nil {
		g.log.Error().Err(err).Str("key", record.Key).Msg("failed to record submission")
	}
}
