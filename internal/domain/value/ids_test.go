package value

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestParseOfferID(t *testing.T) {
	t.Parallel()

	generated := FormatID(OfferIDPrefix, uuid.New())

	tests := []struct {
		name string
		in   string
		ok   bool
	}{
		{name: "Generated", in: generated, ok: true},
		{name: "Empty", in: "", ok: false},
		{name: "Result prefix", in: FormatID(ResultIDPrefix, uuid.New()), ok: false},
		{name: "No prefix", in: generated[2:], ok: false},
		{name: "Short", in: generated[:20], ok: false},
		{name: "Upper case", in: "o_" + "ABCDEF0123456789ABCDEF0123456789", ok: false},
		{name: "Not hex", in: "o_" + "zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz", ok: false},
		{name: "Path traversal", in: "../../etc/passwd", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rq := require.New(t)

			id, ok := ParseOfferID(tt.in)
			rq.Equal(tt.ok, ok)
			rq.Equal(tt.in, id.String())
		})
	}
}

func TestFormatID(t *testing.T) {
	t.Parallel()

	rq := require.New(t)

	id := FormatID(ResultIDPrefix, uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"))
	rq.Equal("r_6ba7b8109dad11d180b400c04fd430c8", id)

	_, ok := ParseResultID(id)
	rq.True(ok)
}

func TestOutcomeStatusSettled(t *testing.T) {
	t.Parallel()

	rq := require.New(t)

	rq.True(OutcomeSuccess.Settled())
	rq.True(OutcomeClose.Settled())
	rq.False(OutcomeFail.Settled())
}
