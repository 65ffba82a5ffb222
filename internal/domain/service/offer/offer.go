// Package offer keeps pending offers until they are consumed by a single
// counterparty submission or lapse.
package offer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"closing_table/internal/domain"
	"closing_table/internal/domain/entity"
	"closing_table/internal/domain/service/idgen"
	"closing_table/internal/domain/service/mechanism"
	"closing_table/internal/domain/value"
	"closing_table/pkg/contextx"
	"closing_table/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type Backend interface {
	Put(ctx context.Context, key string, value entity.Offer, evictAt time.Time) error
	Get(ctx context.Context, key string) (entity.Offer, error)
	Take(ctx context.Context, key string) (entity.Offer, error)
	Sweep(ctx context.Context, now time.Time) (int, error)
}

type resultCreator interface {
	Create(ctx context.Context, outcome entity.Outcome) (value.ResultID, error)
}

// Consumption is what a submission against an offer produced. Outcome and
// ResultID are set only when Status is ok.
type Consumption struct {
	Status   value.LookupStatus
	Outcome  entity.Outcome
	ResultID value.ResultID
}

type Store struct {
	backend Backend
	results resultCreator
	params  mechanism.Params
	ttl     time.Duration
	now     func() time.Time
}

func NewStore(backend Backend, results resultCreator, params mechanism.Params, ttl time.Duration) *Store {
	return &Store{
		backend: backend,
		results: results,
		params:  params,
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// Create validates ceiling and stores a new offer under a fresh id.
func (s *Store) Create(ctx context.Context, ceiling float64) (value.OfferID, error) {
	if err := mechanism.ValidateCeiling(ceiling, s.params); err != nil {
		return "", fmt.Errorf("mechanism.ValidateCeiling: %w", err)
	}

	id, err := idgen.NewOfferID()
	if err != nil {
		return "", fmt.Errorf("idgen.NewOfferID: %w", err)
	}

	now := s.now()
	offer := entity.Offer{
		ID:        id,
		Ceiling:   ceiling,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	if err = s.backend.Put(ctx, id.String(), offer, offer.ExpiresAt); err != nil {
		return "", fmt.Errorf("backend.Put: %w", err)
	}

	logger(ctx).Debug("offer stored", slog.String(logx.FieldOfferID, id.String()))

	return id, nil
}

// Peek reports whether id can still be submitted against. It never reveals
// anything about the offer itself.
func (s *Store) Peek(ctx context.Context, id value.OfferID) (value.LookupStatus, error) {
	offer, err := s.backend.Get(ctx, id.String())
	if errors.Is(err, domain.ErrNotFound) {
		return value.LookupInvalid, nil
	}

	if err != nil {
		return "", fmt.Errorf("backend.Get: %w", err)
	}

	if !offer.Expired(s.now()) {
		return value.LookupOK, nil
	}

	return s.evict(ctx, id)
}

// Consume runs the mechanism against the offer and removes it. Of any number
// of concurrent calls for one id, at most one gets an ok status. A rejected
// floor leaves the offer untouched, and a failure to persist the result puts
// the offer back.
func (s *Store) Consume(ctx context.Context, id value.OfferID, floor float64) (Consumption, error) {
	if err := mechanism.ValidateFloor(floor, s.params); err != nil {
		return Consumption{}, fmt.Errorf("mechanism.ValidateFloor: %w", err)
	}

	offer, err := s.backend.Take(ctx, id.String())
	if errors.Is(err, domain.ErrNotFound) {
		return Consumption{Status: value.LookupInvalid}, nil
	}

	if err != nil {
		return Consumption{}, fmt.Errorf("backend.Take: %w", err)
	}

	if offer.Expired(s.now()) {
		return Consumption{Status: value.LookupExpired}, nil
	}

	outcome, err := mechanism.Compute(offer.Ceiling, floor, s.params)
	if err != nil {
		return Consumption{}, s.restore(ctx, offer, fmt.Errorf("mechanism.Compute: %w", err))
	}

	resultID, err := s.results.Create(ctx, outcome)
	if err != nil {
		return Consumption{}, s.restore(ctx, offer, fmt.Errorf("results.Create: %w", err))
	}

	logger(ctx).Debug(
		"offer consumed",
		slog.String(logx.FieldOfferID, id.String()),
		slog.String(logx.FieldResultID, resultID.String()),
		slog.String(logx.FieldOutcome, outcome.Status.String()),
	)

	return Consumption{
		Status:   value.LookupOK,
		Outcome:  outcome,
		ResultID: resultID,
	}, nil
}

// Reap drops every offer that lapsed before now.
func (s *Store) Reap(ctx context.Context) (int, error) {
	removed, err := s.backend.Sweep(ctx, s.now())
	if err != nil {
		return removed, fmt.Errorf("backend.Sweep: %w", err)
	}

	return removed, nil
}

func (s *Store) restore(ctx context.Context, offer entity.Offer, cause error) error {
	if err := s.backend.Put(context.WithoutCancel(ctx), offer.ID.String(), offer, offer.ExpiresAt); err != nil {
		logger(ctx).Error(
			"offer restore failed",
			slog.String(logx.FieldOfferID, offer.ID.String()),
			logx.Error(err),
		)

		return errors.Join(cause, fmt.Errorf("backend.Put: %w", err))
	}

	return cause
}

func (s *Store) evict(ctx context.Context, id value.OfferID) (value.LookupStatus, error) {
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
