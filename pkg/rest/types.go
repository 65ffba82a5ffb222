// Package rest holds the JSON shapes of the public HTTP API.
package rest

import "time"

// CreateOfferRequest carries the initiator's private ceiling.
type CreateOfferRequest struct {
	Ceiling *float64 `json:"ceiling" validate:"required"`
}

type CreateOfferResponse struct {
	OfferID string `json:"offerId"`
}

// OfferStatusResponse never says anything about the offer beyond its state.
type OfferStatusResponse struct {
	Status string `json:"status"`
}

// SubmitOfferRequest carries the counterparty's private floor and an optional
// contact used only to send the reveal link.
type SubmitOfferRequest struct {
	Floor *float64 `json:"floor" validate:"required"`
	Email string   `json:"email,omitempty" validate:"omitempty,email,max=254"`
}

type SubmitOfferResponse struct {
	Status    string `json:"status"`
	Final     *int64 `json:"final,omitempty"`
	Suggested *int64 `json:"suggested,omitempty"`
	ResultID  string `json:"resultId,omitempty"`
}

type ResultResponse struct {
	Status string  `json:"status"`
	Result *Result `json:"result,omitempty"`
}

// Result is the only view of a stored result that leaves the service.
type Result struct {
	Status    string    `json:"status"`
	Final     *int64    `json:"final,omitempty"`
	Suggested *int64    `json:"suggested,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type HealthResponse struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
}

// Error is the body of every non-2xx response.
type Error struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	SupportID string    `json:"supportId"`
}

type ErrorCode string
