// Package negotiation exposes the four client operations of a blind
// negotiation on top of the offer and result stores.
package negotiation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"closing_table/internal/domain/entity"
	"closing_table/internal/domain/service/offer"
	"closing_table/internal/domain/value"
	"closing_table/pkg/contextx"
	"closing_table/pkg/logx"
	"closing_table/pkg/metrics"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type offerStore interface {
	Create(ctx context.Context, ceiling float64) (value.OfferID, error)
	Peek(ctx context.Context, id value.OfferID) (value.LookupStatus, error)
	Consume(ctx context.Context, id value.OfferID, floor float64) (offer.Consumption, error)
}

type resultStore interface {
	Get(ctx context.Context, id value.ResultID) (entity.Result, value.LookupStatus, error)
}

type notifier interface {
	Notify(ctx context.Context, notification entity.Notification) error
}

// Submission is the reply to a counterparty. Final and Suggested mirror the
// outcome; nothing else derived from the ceiling is exposed.
type Submission struct {
	Lookup    value.LookupStatus
	Outcome   value.OutcomeStatus
	Final     *int64
	Suggested *int64
	ResultID  value.ResultID
}

// Status is the outcome class for a consumed offer and the lookup status
// otherwise.
func (s Submission) Status() string {
	if s.Lookup == value.LookupOK {
		return s.Outcome.String()
	}

	return s.Lookup.String()
}

type ResultLookup struct {
	Status value.LookupStatus
	Result *entity.Result
}

type Service struct {
	offers       offerStore
	results      resultStore
	notifier     notifier
	frontendBase string
	metrics      *metrics.Negotiation
}

func NewService(offers offerStore, results resultStore) *Service {
	return &Service{
		offers:  offers,
		results: results,
		metrics: metrics.NewNegotiation(nil),
	}
}

// WithNotifier enables result notifications. Reveal links point at
// frontendBase.
func (s *Service) WithNotifier(n notifier, frontendBase string) *Service {
	s.notifier = n
	s.frontendBase = strings.TrimSuffix(frontendBase, "/")
	return s
}

func (s *Service) WithMetrics(m *metrics.Negotiation) *Service {
	s.metrics = m
	return s
}

func (s *Service) CreateOffer(ctx context.Context, ceiling float64) (value.OfferID, error) {
	id, err := s.offers.Create(ctx, ceiling)
	if err != nil {
		return "", fmt.Errorf("offers.Create: %w", err)
	}

	s.metrics.OffersCreated.Inc()

	return id, nil
}

func (s *Service) GetOfferStatus(ctx context.Context, rawID string) (value.LookupStatus, error) {
	id, ok := value.ParseOfferID(rawID)
	if !ok {
		s.metrics.OfferLookups.WithLabelValues(value.LookupInvalid.String()).Inc()
		return value.LookupInvalid, nil
	}

	status, err := s.offers.Peek(ctx, id)
	if err != nil {
		return "", fmt.Errorf("offers.Peek: %w", err)
	}

	s.metrics.OfferLookups.WithLabelValues(status.String()).Inc()

	return status, nil
}

// SubmitOffer consumes the offer with the counterparty's floor. contact is
// optional; when set and the outcome is settled, the counterparty is told where
// to reveal the result. Delivery problems never fail the submission.
func (s *Service) SubmitOffer(ctx context.Context, rawID string, floor float64, contact string) (Submission, error) {
	id, ok := value.ParseOfferID(rawID)
	if !ok {
		s.metrics.Submissions.WithLabelValues(value.LookupInvalid.String()).Inc()
		return Submission{Lookup: value.LookupInvalid}, nil
	}

	consumption, err := s.offers.Consume(ctx, id, floor)
	if err != nil {
		return Submission{}, fmt.Errorf("offers.Consume: %w", err)
	}

	submission := Submission{Lookup: consumption.Status}

	if consumption.Status == value.LookupOK {
		submission.Outcome = consumption.Outcome.Status
		submission.Final = consumption.Outcome.Final
		submission.Suggested = consumption.Outcome.Suggested
		submission.ResultID = consumption.ResultID

		s.notify(ctx, contact, submission)
	}

	s.metrics.Submissions.WithLabelValues(submission.Status()).Inc()

	return submission, nil
}

func (s *Service) GetResult(ctx context.Context, rawID string) (ResultLookup, error) {
	id, ok := value.ParseResultID(rawID)
	if !ok {
		s.metrics.ResultLookups.WithLabelValues(value.LookupInvalid.String()).Inc()
		return ResultLookup{Status: value.LookupInvalid}, nil
	}

	result, status, err := s.results.Get(ctx, id)
	if err != nil {
		return ResultLookup{}, fmt.Errorf("results.Get: %w", err)
	}

	s.metrics.ResultLookups.WithLabelValues(status.String()).Inc()

	if status != value.LookupOK {
		return ResultLookup{Status: status}, nil
	}

	return ResultLookup{Status: status, Result: &result}, nil
}

// RevealLink is where a result can be viewed in the browser client.
func (s *Service) RevealLink(id value.ResultID) string {
	return s.frontendBase + "/#result=" + id.String()
}

func (s *Service) notify(ctx context.Context, contact string, submission Submission) {
	if s.notifier == nil || contact == "" || !submission.Outcome.Settled() {
		return
	}

	notification := entity.Notification{
		Contact:    contact,
		ResultID:   submission.ResultID,
		Status:     submission.Outcome,
		RevealLink: s.RevealLink(submission.ResultID),
	}

	if err := s.notifier.Notify(ctx, notification); err != nil {
		s.metrics.Notifications.WithLabelValues("failed").Inc()
		logger(ctx).Error(
			"result notification failed",
			slog.String(logx.FieldResultID, submission.ResultID.String()),
			logx.Error(err),
		)

		return
	}

	s.metrics.Notifications.WithLabelValues("sent").Inc()
}
