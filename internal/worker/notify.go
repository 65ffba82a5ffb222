package worker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"closing_table/internal/domain/entity"
	"closing_table/internal/infrastructure/notifier"
	"closing_table/pkg/application/modules"
	"closing_table/pkg/logx"
)

type deliverer interface {
	Notify(ctx context.Context, n entity.Notification) error
}

// NotifyHandler delivers queued result notifications. A task that cannot be
// decoded or that fails on its last attempt is dropped rather than archived,
// so no contact outlives delivery in the queue.
func NotifyHandler(delivery deliverer) modules.AsynqHandler {
	return notifyHandler(delivery, lastAttempt)
}

func notifyHandler(delivery deliverer, isLastAttempt func(context.Context) bool) modules.AsynqHandler {
	return modules.AsynqHandler{
		Pattern: notifier.TaskTypeResultNotify,
		Handle: func(ctx context.Context, task *asynq.Task) error {
			n, err := notifier.DecodeTask(task)
			if err != nil {
				logger(ctx).Error(
					"notification dropped",
					slog.String(logx.FieldTaskType, task.Type()),
					logx.Error(err),
				)

				return nil
			}

			if err = delivery.Notify(ctx, n); err != nil {
				if isLastAttempt(ctx) {
					logger(ctx).Error(
						"notification dropped",
						slog.String(logx.FieldTaskType, task.Type()),
						slog.String(logx.FieldResultID, n.ResultID.String()),
						logx.Error(err),
					)

					return nil
				}

				return fmt.Errorf("delivery.Notify: %w", err)
			}

			logger(ctx).Debug(
				"notification delivered",
				slog.String(logx.FieldTaskType, task.Type()),
				slog.String(logx.FieldResultID, n.ResultID.String()),
			)

			return nil
		},
	}
}

func lastAttempt(ctx context.Context) bool {
	retried, ok := asynq.GetRetryCount(ctx)
	if !ok {
		return false
	}

	maxRetry, ok := asynq.GetMaxRetry(ctx)
	if !ok {
		return false
	}

	return retried >= maxRetry
}
