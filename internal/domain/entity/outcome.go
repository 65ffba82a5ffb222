package entity

import (
	"github.com/shopspring/decimal"

	"closing_table/internal/domain/value"
)

// Outcome is what the mechanism computes for one ceiling/floor pair.
//
// Surplus and Gap are derived from both private inputs and are kept out of
// every serialized form.
type Outcome struct {
	Status    value.OutcomeStatus `json:"status"`
	Final     *int64              `json:"final,omitempty"`
	Suggested *int64              `json:"suggested,omitempty"`

	Surplus decimal.Decimal `json:"-"`
	Gap     decimal.Decimal `json:"-"`
}
