package value

import (
	"strings"

	"github.com/google/uuid"
)

const (
	OfferIDPrefix  = "o"
	ResultIDPrefix = "r"
)

type OfferID string

func (id OfferID) String() string {
	return string(id)
}

type ResultID string

func (id ResultID) String() string {
	return string(id)
}

// ParseOfferID reports ok only for ids of the generated shape. Callers treat a
// malformed id exactly like an unknown one.
func ParseOfferID(s string) (OfferID, bool) {
	return OfferID(s), validID(OfferIDPrefix, s)
}

func ParseResultID(s string) (ResultID, bool) {
	return ResultID(s), validID(ResultIDPrefix, s)
}

// FormatID renders "<prefix>_<32 lowercase hex>".
func FormatID(prefix string, u uuid.UUID) string {
	return prefix + "_" + strings.ReplaceAll(u.String(), "-", "")
}

func validID(prefix, s string) bool {
	rest, ok := strings.CutPrefix(s, prefix+"_")
	if !ok || len(rest) != 32 || strings.ToLower(rest) != rest {
		return false
	}

	_, err := uuid.Parse(rest)

	return err == nil
}
