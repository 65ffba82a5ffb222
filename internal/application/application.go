package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/hibiken/asynq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"closing_table/internal/config"
	"closing_table/internal/domain/entity"
	"closing_table/internal/domain/service/mechanism"
	"closing_table/internal/domain/service/negotiation"
	"closing_table/internal/domain/service/offer"
	"closing_table/internal/domain/service/result"
	"closing_table/internal/infrastructure/notifier"
	"closing_table/internal/infrastructure/persistence"
	"closing_table/internal/server"
	"closing_table/internal/worker"
	"closing_table/pkg/application/connectors"
	"closing_table/pkg/application/modules"
	"closing_table/pkg/contextx"
	"closing_table/pkg/httpx"
	"closing_table/pkg/logx"
	"closing_table/pkg/metrics"
	"closing_table/pkg/probe"
)

const httpReadHeaderTimeout = 5 * time.Second

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type Notifier interface {
	Notify(ctx context.Context, n entity.Notification) error
}

// Run starts every module and blocks until ctx is cancelled or one of them
// fails.
func Run(ctx context.Context, cfg config.Config) error { //nolint:funlen
	params := DealParams(cfg.Deal)
	if err := params.Validate(); err != nil {
		return fmt.Errorf("params.Validate: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}), //nolint:exhaustruct
	)

	m := metrics.NewNegotiation(registry)

	var redisConn *connectors.Redis

	if cfg.Store.Backend == config.StoreBackendRedis || cfg.Notifier.Kind == config.NotifierAsynq {
		redisConn = &connectors.Redis{ //nolint:exhaustruct
			Username:           cfg.Redis.Username,
			Password:           cfg.Redis.Password,
			Address:            cfg.Redis.Address,
			DatabaseNumber:     cfg.Redis.DatabaseNumber,
			PoolSize:           cfg.Redis.PoolSize,
			MinIdleConnections: cfg.Redis.MinIdleConnections,
			MaxIdleConnections: cfg.Redis.MaxIdleConnections,
		}
		defer redisConn.Close(ctx)

		if err := redisConn.Connect(ctx); err != nil {
			return fmt.Errorf("redisConn.Connect: %w", err)
		}
	}

	var (
		offerBackend  offer.Backend
		resultBackend result.Backend
	)

	switch cfg.Store.Backend {
	case config.StoreBackendRedis:
		client := redisConn.Client(ctx)
		offerBackend = persistence.NewRedisBackend[entity.Offer](client, cfg.Redis.Namespace+":offer").
			WithExpiryGrace(cfg.Redis.ExpiryGrace)
		resultBackend = persistence.NewRedisBackend[entity.Result](client, cfg.Redis.Namespace+":result").
			WithExpiryGrace(cfg.Redis.ExpiryGrace)
	default:
		offerBackend = persistence.NewMemoryBackend[entity.Offer]()
		resultBackend = persistence.NewMemoryBackend[entity.Result]()
	}

	logger(ctx).Info("stores ready", slog.String(logx.FieldStoreBackend, cfg.Store.Backend))

	results := result.NewStore(resultBackend, cfg.Store.ResultTTL)
	offers := offer.NewStore(offerBackend, results, params, cfg.Store.OfferTTL)

	n, closeNotifier, err := newNotifier(cfg, redisConn)
	if err != nil {
		return fmt.Errorf("newNotifier: %w", err)
	}
	defer closeNotifier()

	svc := negotiation.NewService(offers, results).
		WithNotifier(n, cfg.Notifier.FrontendBase).
		WithMetrics(m)

	router := server.NewRouter(
		server.NewServer(server.NewNegotiationServer(svc), server.NewHealthServer()),
		logx.NewSensitiveDataMasker(),
		cfg.Log.FieldMaxLen,
	)

	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{ShutdownTimeout: cfg.App.ShutdownTimeout}.Run(ctx, g, &http.Server{ //nolint:exhaustruct
		Addr:              cfg.HTTP.ListenAddress,
		Handler:           router,
		ReadHeaderTimeout: httpReadHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	})

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.App.ProbeAddress,
		Readiness:     readiness(redisConn),
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress: cfg.App.MetricsAddress,
		Gatherer:      registry,
	}.Run(ctx, g)

	if cfg.Notifier.Kind == config.NotifierAsynq {
		modules.AsynqServer{
			Redis:       redisConn.AsynqConnOpt(),
			Concurrency: cfg.Notifier.Concurrency,
		}.Run(
			ctx,
			g,
			modules.AsynqQueues{cfg.Notifier.Queue: 1},
			worker.NotifyHandler(newDelivery(cfg)),
		)
	}

	reaper := worker.NewReaper(cfg.Store.ReapInterval).
		WithStore("offers", offers).
		WithStore("results", results).
		WithMetrics(m)

	if err = reaper.Start(ctx); err != nil {
		return fmt.Errorf("reaper.Start: %w", err)
	}

	g.Go(func() error {
		<-ctx.Done()
		reaper.Stop()

		return nil
	})

	if err = g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}

// DealParams maps the deal configuration onto the mechanism.
func DealParams(deal config.Deal) mechanism.Params {
	return mechanism.Params{
		TotalMin:      deal.TotalMin,
		TotalMax:      deal.TotalMax,
		BridgeZonePct: deal.BridgeZonePct,
		Granularity:   deal.Granularity,
	}
}

func newNotifier(cfg config.Config, redisConn *connectors.Redis) (Notifier, func(), error) {
	switch cfg.Notifier.Kind {
	case config.NotifierWebhook:
		return newWebhookNotifier(cfg), func() {}, nil
	case config.NotifierAsynq:
		client := asynq.NewClient(redisConn.AsynqConnOpt())

		return notifier.NewAsynqNotifier(client, cfg.Notifier.Queue), func() { _ = client.Close() }, nil
	case config.NotifierLog:
		return notifier.NewLogNotifier(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown notifier %q", cfg.Notifier.Kind)
	}
}

// newDelivery picks how queued notifications leave the process.
func newDelivery(cfg config.Config) Notifier {
	if cfg.Notifier.Delivery == config.NotifierWebhook {
		return newWebhookNotifier(cfg)
	}

	return notifier.NewLogNotifier()
}

func newWebhookNotifier(cfg config.Config) *notifier.WebhookNotifier {
	return notifier.NewWebhookNotifier(
		cfg.Notifier.WebhookURL,
		cfg.Notifier.WebhookToken,
		httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
		httpx.WithLogFieldMaxLen(cfg.Log.FieldMaxLen),
	)
}

func readiness(redisConn *connectors.Redis) probe.Check {
	if redisConn == nil {
		return nil
	}

	return func(ctx context.Context) error {
		if err := redisConn.Client(ctx).Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis.Ping: %w", err)
		}

		return nil
	}
}
