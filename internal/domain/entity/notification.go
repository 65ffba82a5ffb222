package entity

import "closing_table/internal/domain/value"

// Notification tells the counterparty where to find a settled result.
// Contact is used for delivery only and is never persisted with the result.
type Notification struct {
	Contact    string              `json:"email"`
	ResultID   value.ResultID      `json:"resultId"`
	Status     value.OutcomeStatus `json:"status"`
	RevealLink string              `json:"revealLink"`
}
