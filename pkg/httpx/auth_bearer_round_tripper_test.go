package httpx_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"closing_table/pkg/httpx"
)

func TestAuthBearerRoundTripper(t *testing.T) {
	rq := require.New(t)

	var gotAuthorization string

	httpServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuthorization = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusAccepted)
	}))
	defer httpServer.Close()

	client := &http.Client{
		Transport: httpx.NewAuthBearerRoundTripper(
			http.DefaultTransport,
			httpx.NewStaticBearer("relay-key"),
		),
	}

	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, httpServer.URL, http.NoBody)
	rq.NoError(err)

	resp, err := client.Do(req)
	rq.NoError(err)

	defer resp.Body.Close()

	rq.Equal(http.StatusAccepted, resp.StatusCode)
	rq.Equal("Bearer relay-key", gotAuthorization)
}
