package notifier

import (
	"context"
	"log/slog"

	"closing_table/internal/domain/entity"
	"closing_table/pkg/logx"
)

// LogNotifier writes the notification to the log with the contact masked. It
// is the default when no outbound channel is configured.
type LogNotifier struct{}

func NewLogNotifier() LogNotifier {
	return LogNotifier{}
}

func (LogNotifier) Notify(ctx context.Context, n entity.Notification) error {
	logger(ctx).Info(
		"result notification",
		slog.String(logx.FieldContact, logx.MaskEmail(n.Contact)),
		slog.String(logx.FieldResultID, n.ResultID.String()),
		slog.String(logx.FieldOutcome, n.Status.String()),
		slog.String(logx.FieldRevealLink, n.RevealLink),
	)

	return nil
}
