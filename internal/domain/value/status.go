package value

// LookupStatus is the outcome of resolving an opaque id. Absent and expired
// ids are ordinary values, not errors.
type LookupStatus string

const (
	LookupOK      LookupStatus = "ok"
	LookupInvalid LookupStatus = "invalid"
	LookupExpired LookupStatus = "expired"
)

func (s LookupStatus) String() string {
	return string(s)
}

// OutcomeStatus classifies a computed negotiation.
type OutcomeStatus string

const (
	OutcomeSuccess OutcomeStatus = "success"
	OutcomeClose   OutcomeStatus = "close"
	OutcomeFail    OutcomeStatus = "fail"
)

func (s OutcomeStatus) String() string {
	return string(s)
}

// Settled reports whether the outcome carries a number worth announcing.
func (s OutcomeStatus) Settled() bool {
	return s == OutcomeSuccess || s == OutcomeClose
}
