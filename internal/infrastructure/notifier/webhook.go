package notifier

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"closing_table/internal/domain"
	"closing_table/internal/domain/entity"
	"closing_table/pkg/errcodes"
	"closing_table/pkg/httpx"
)

const webhookTimeout = 10 * time.Second

// WebhookNotifier posts the notification as JSON to an external mailer.
type WebhookNotifier struct {
	client *http.Client
	url    string
}

// NewWebhookNotifier sends requests through the logging round tripper, so the
// masker passed in opts decides what of the payload reaches the logs. A non
// empty token is sent as a bearer credential.
func NewWebhookNotifier(url, token string, opts ...httpx.Option) *WebhookNotifier {
	var transport http.RoundTripper = http.DefaultTransport

	if token != "" {
		transport = httpx.NewAuthBearerRoundTripper(transport, httpx.NewStaticBearer(token))
	}

	return &WebhookNotifier{
		client: &http.Client{
			Transport: httpx.NewLoggingRoundTripper(transport, opts...),
			Timeout:   webhookTimeout,
		},
		url: url,
	}
}

func (w *WebhookNotifier) Notify(ctx context.Context, n entity.Notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return domain.WrapError(err, errcodes.NotifyFailed, "webhook request failed")
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusMultipleChoices {
		return domain.NewError(errcodes.NotifyFailed, fmt.Sprintf("webhook responded %d", resp.StatusCode))
	}

	return nil
}
