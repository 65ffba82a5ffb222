package entity

import (
	"time"

	"closing_table/internal/domain/value"
)

// Result is the revealable, sanitized form of an Outcome.
type Result struct {
	ID        value.ResultID      `json:"id"`
	Status    value.OutcomeStatus `json:"status"`
	Final     *int64              `json:"final,omitempty"`
	Suggested *int64              `json:"suggested,omitempty"`
	CreatedAt time.Time           `json:"createdAt"`
	ExpiresAt time.Time           `json:"expiresAt"`
}

// NewResult keeps only the fields that are safe to reveal.
func NewResult(id value.ResultID, outcome Outcome, createdAt, expiresAt time.Time) Result {
	result := Result{
		ID:        id,
		Status:    outcome.Status,
		CreatedAt: createdAt,
		ExpiresAt: expiresAt,
	}

	switch outcome.Status {
	case value.OutcomeSuccess:
		result.Final = outcome.Final
	case value.OutcomeClose:
		result.Suggested = outcome.Suggested
	case value.OutcomeFail:
	}

	return result
}

func (r Result) Expired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}
