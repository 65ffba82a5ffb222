// Package idgen issues the opaque bearer ids for offers and results. Holding an
// id is the only authorization the service knows, so ids come from a CSPRNG.
package idgen

import (
	"fmt"

	"github.com/google/uuid"

	"closing_table/internal/domain/value"
)

func NewOfferID() (value.OfferID, error) {
	raw, err := random(value.OfferIDPrefix)
	if err != nil {
		return "", err
	}

	return value.OfferID(raw), nil
}

func NewResultID() (value.ResultID, error) {
	raw, err := random(value.ResultIDPrefix)
	if err != nil {
		return "", err
	}

	return value.ResultID(raw), nil
}

func random(prefix string) (string, error) {
	u, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("uuid.NewRandom: %w", err)
	}

	return value.FormatID(prefix, u), nil
}
