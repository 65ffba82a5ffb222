package config

import "errors"

const (
	NotifierLog     = "log"
	NotifierWebhook = "webhook"
	NotifierAsynq   = "asynq"
)

type Notifier struct {
	Kind         string `env:"NOTIFIER" envDefault:"log"`
	FrontendBase string `env:"FRONTEND_BASE" envDefault:"https://closing-table.pages.dev"`
	WebhookURL   string `env:"NOTIFY_WEBHOOK_URL"`
	WebhookToken string `env:"NOTIFY_WEBHOOK_TOKEN" json:"-"`
	// Delivery is what asynq workers use to hand the notification on: log or webhook.
	Delivery    string `env:"NOTIFY_DELIVERY" envDefault:"log"`
	Queue       string `env:"NOTIFY_QUEUE" envDefault:"notifications"`
	Concurrency int    `env:"NOTIFY_CONCURRENCY" envDefault:"4"`
}

func (n Notifier) validate(redis Redis) []error {
	var errs []error

	switch n.Kind {
	case NotifierLog:
	case NotifierWebhook:
		if n.WebhookURL == "" {
			errs = append(errs, errors.New("NOTIFY_WEBHOOK_URL is required for the webhook notifier"))
		}
	case NotifierAsynq:
		if redis.Address == "" {
			errs = append(errs, errors.New("REDIS_ADDRESS is required for the asynq notifier"))
		}

		if n.Delivery == NotifierWebhook && n.WebhookURL == "" {
			errs = append(errs, errors.New("NOTIFY_WEBHOOK_URL is required for webhook delivery"))
		}

		if n.Delivery != NotifierLog && n.Delivery != NotifierWebhook {
			errs = append(errs, errors.New("NOTIFY_DELIVERY must be log or webhook"))
		}
	default:
		errs = append(errs, errors.New("NOTIFIER must be log, webhook or asynq"))
	}

	return errs
}
