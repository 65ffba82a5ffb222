package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"closing_table/internal/domain"
	"closing_table/internal/domain/entity"
	"closing_table/pkg/errcodes"
	"closing_table/pkg/logx"
)

const (
	asynqMaxRetry = 5
	asynqTimeout  = 30 * time.Second
)

type enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// AsynqNotifier moves delivery off the request path. The task payload holds
// the contact only until a worker has delivered it.
type AsynqNotifier struct {
	client enqueuer
	queue  string
}

func NewAsynqNotifier(client enqueuer, queue string) AsynqNotifier {
	return AsynqNotifier{
		client: client,
		queue:  queue,
	}
}

func (a AsynqNotifier) Notify(ctx context.Context, n entity.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	info, err := a.client.EnqueueContext(
		ctx,
		asynq.NewTask(TaskTypeResultNotify, payload),
		asynq.Queue(a.queue),
		asynq.MaxRetry(asynqMaxRetry),
		asynq.Timeout(asynqTimeout),
	)
	if err != nil {
		return domain.WrapError(err, errcodes.NotifyFailed, "enqueue notification")
	}

	logger(ctx).Debug(
		"notification enqueued",
		slog.String(logx.FieldResultID, n.ResultID.String()),
		slog.String(logx.FieldMessageID, info.ID),
	)

	return nil
}

// DecodeTask restores the notification carried by a result:notify task.
func DecodeTask(task *asynq.Task) (entity.Notification, error) {
	var n entity.Notification

	if err := json.Unmarshal(task.Payload(), &n); err != nil {
		return n, fmt.Errorf("json.Unmarshal: %w", err)
	}

	return n, nil
}
