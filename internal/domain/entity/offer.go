package entity

import (
	"time"

	"closing_table/internal/domain/value"
)

// Offer holds the initiator's ceiling until the counterparty submits or the
// offer lapses. Ceiling must never leave the process except inside the store.
type Offer struct {
	ID        value.OfferID `json:"id"`
	Ceiling   float64       `json:"ceiling"`
	CreatedAt time.Time     `json:"createdAt"`
	ExpiresAt time.Time     `json:"expiresAt"`
}

// Expired reports whether the offer has lapsed at now. An offer is still live
// at exactly its expiry instant.
func (o Offer) Expired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}
