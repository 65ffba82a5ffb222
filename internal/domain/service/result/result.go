// Package result keeps sanitized negotiation results for a fixed retention
// window so that either party can reveal them by id.
package result

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"closing_table/internal/domain"
	"closing_table/internal/domain/entity"
	"closing_table/internal/domain/service/idgen"
	"closing_table/internal/domain/value"
	"closing_table/pkg/contextx"
	"closing_table/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type Backend interface {
	Put(ctx context.Context, key string, value entity.Result, evictAt time.Time) error
	Get(ctx context.Context, key string) (entity.Result, error)
	Take(ctx context.Context, key string) (entity.Result, error)
	Sweep(ctx context.Context, now time.Time) (int, error)
}

type Store struct {
	backend Backend
	ttl     time.Duration
	now     func() time.Time
}

func NewStore(backend Backend, ttl time.Duration) *Store {
	return &Store{
		backend: backend,
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// Create stores the revealable part of outcome under a fresh id.
func (s *Store) Create(ctx context.Context, outcome entity.Outcome) (value.ResultID, error) {
	id, err := idgen.NewResultID()
	if err != nil {
		return "", fmt.Errorf("idgen.NewResultID: %w", err)
	}

	now := s.now()
	result := entity.NewResult(id, outcome, now, now.Add(s.ttl))

	if err = s.backend.Put(ctx, id.String(), result, result.ExpiresAt); err != nil {
		return "", fmt.Errorf("backend.Put: %w", err)
	}

	logger(ctx).Debug("result stored", slog.String(logx.FieldResultID, id.String()))

	return id, nil
}

// Get resolves id. A lapsed result is evicted and reported as expired once;
// afterwards it is indistinguishable from an unknown id.
func (s *Store) Get(ctx context.Context, id value.ResultID) (entity.Result, value.LookupStatus, error) {
	result, err := s.backend.Get(ctx, id.String())
	if errors.Is(err, domain.ErrNotFound) {
		return entity.Result{}, value.LookupInvalid, nil
	}

	if err != nil {
		return entity.Result{}, "", fmt.Errorf("backend.Get: %w", err)
	}

	if !result.Expired(s.now()) {
		return result, value.LookupOK, nil
	}

	status, err := s.evict(ctx, id)
	if err != nil {
		return entity.Result{}, "", err
	}

	return entity.Result{}, status, nil
}

// Reap drops every result that lapsed before now.
func (s *Store) Reap(ctx context.Context) (int, error) {
	removed, err := s.backend.Sweep(ctx, s.now())
	if err != nil {
		return removed, fmt.Errorf("backend.Sweep: %w", err)
	}

	return removed, nil
}

func (s *Store) evict(ctx context.Context, id value.ResultID) (value.LookupStatus, error) {
	_, err := s.backend.Take(ctx, id.String())

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return value.LookupInvalid, nil
	case err != nil:
		return "", fmt.Errorf("backend.Take: %w", err)
	default:
		return value.LookupExpired, nil
	}
}
