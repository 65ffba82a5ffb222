package notifier

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/require"

	"closing_table/internal/domain/entity"
	"closing_table/internal/domain/value"
	"closing_table/pkg/contextx"
	"closing_table/pkg/httpx"
	"closing_table/pkg/logx"
)

func newNotification() entity.Notification {
	return entity.Notification{
		Contact:    "jane@example.com",
		ResultID:   "r_0123456789abcdef0123456789abcdef",
		Status:     value.OutcomeSuccess,
		RevealLink: "https://example.test/#result=r_0123456789abcdef0123456789abcdef",
	}
}

func TestLogNotifier(t *testing.T) {
	t.Parallel()

	rq := require.New(t)

	var buf bytes.Buffer

	ctx := contextx.WithLogger(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))

	rq.NoError(NewLogNotifier().Notify(ctx, newNotification()))
	rq.Contains(buf.String(), "j***@example.com")
	rq.Contains(buf.String(), "#result=r_0123456789abcdef0123456789abcdef")
	rq.NotContains(buf.String(), "jane@example.com")
}

func TestWebhookNotifier(t *testing.T) {
	t.Parallel()

	rq := require.New(t)

	var (
		gotAuth string
		gotBody []byte
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	var logs bytes.Buffer

	ctx := contextx.WithLogger(context.Background(), slog.New(slog.NewJSONHandler(&logs, nil)))
	n := NewWebhookNotifier(srv.URL, "s3cret", httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()))

	rq.NoError(n.Notify(ctx, newNotification()))
	rq.Equal("Bearer s3cret", gotAuth)

	var decoded entity.Notification
	rq.NoError(json.Unmarshal(gotBody, &decoded))
	rq.Equal(newNotification(), decoded)

	rq.NotContains(logs.String(), "jane@example.com")
}

func TestWebhookNotifierRejected(t *testing.T) {
	t.Parallel()

	rq := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	err := NewWebhookNotifier(srv.URL, "").Notify(context.Background(), newNotification())
	rq.ErrorContains(err, "502")
}

type fakeEnqueuer struct {
	task *asynq.Task
	err  error
}

func (f *fakeEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	if f.err != nil {
		return nil, f.err
	}

	f.task = task

	return &asynq.TaskInfo{ID: "task-1", Type: task.Type()}, nil
}

func TestAsynqNotifier(t *testing.T) {
	t.Parallel()

	rq := require.New(t)

	client := &fakeEnqueuer{}

	rq.NoError(NewAsynqNotifier(client, "notifications").Notify(context.Background(), newNotification()))
	rq.Equal(TaskTypeResultNotify, client.task.Type())

	decoded, err := DecodeTask(client.task)
	rq.NoError(err)
	rq.Equal(newNotification(), decoded)

	client.err = errors.New("redis down")
	rq.Error(NewAsynqNotifier(client, "notifications").Notify(context.Background(), newNotification()))
}
