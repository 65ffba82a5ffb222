package idgen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"closing_table/internal/domain/value"
)

func TestNewOfferID(t *testing.T) {
	t.Parallel()

	rq := require.New(t)

	seen := make(map[value.OfferID]struct{}, 1000)

	for range 1000 {
		id, err := NewOfferID()
		rq.NoError(err)
		rq.Len(id.String(), 34)

		_, ok := value.ParseOfferID(id.String())
		rq.True(ok)

		_, dup := seen[id]
		rq.False(dup)
		seen[id] = struct{}{}
	}
}

func TestNewResultID(t *testing.T) {
	t.Parallel()

	rq := require.New(t)

	id, err := NewResultID()
	rq.NoError(err)

	_, ok := value.ParseResultID(id.String())
	rq.True(ok)

	_, ok = value.ParseOfferID(id.String())
	rq.False(ok)
}
