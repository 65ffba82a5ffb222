package connectors_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"closing_table/pkg/application/connectors"
)

func TestRedisConnectUnreachable(t *testing.T) {
	t.Parallel()

	rq := require.New(t)
	ctx := context.Background()

	conn := &connectors.Redis{Address: "127.0.0.1:1", PoolSize: 1} //nolint:exhaustruct
	defer conn.Close(ctx)

	err := conn.Connect(ctx)
	rq.Error(err)
	rq.ErrorContains(err, "redis.Ping")

	rq.Equal(err, conn.Connect(ctx))
	rq.Panics(func() { conn.Client(ctx) })
}
