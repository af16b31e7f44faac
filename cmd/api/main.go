package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/leadwise-ai/scheduling-platform/internal/api/router"
	"github.com/leadwise-ai/scheduling-platform/internal/appointments"
	"github.com/leadwise-ai/scheduling-platform/internal/booking"
	"github.com/leadwise-ai/scheduling-platform/internal/cache"
	appconfig "github.com/leadwise-ai/scheduling-platform/internal/config"
	"github.com/leadwise-ai/scheduling-platform/internal/crm"
	"github.com/leadwise-ai/scheduling-platform/internal/db"
	"github.com/leadwise-ai/scheduling-platform/internal/events"
	"github.com/leadwise-ai/scheduling-platform/internal/http/handlers"
	"github.com/leadwise-ai/scheduling-platform/internal/observability/metrics"
	"github.com/leadwise-ai/scheduling-platform/internal/provider"
	"github.com/leadwise-ai/scheduling-platform/internal/provider/calapi"
	"github.com/leadwise-ai/scheduling-platform/internal/provider/highlevel"
	"github.com/leadwise-ai/scheduling-platform/internal/schedule"
	"github.com/leadwise-ai/scheduling-platform/pkg/logging"
)

func main() {
	// Load .env if present; environment variables win in deployed setups.
	_ = godotenv.Load()

	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting scheduling-platform API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.ConnectPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to connect to postgres", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	schedulingMetrics := metrics.NewSchedulingMetrics(registry)

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	defer rdb.Close()
	tzCache := cache.NewTimezoneCache(rdb, cfg.TimezoneCacheTTL, logger)

	crmClient := crm.NewClient(cfg.CRMBaseURL, cfg.CRMAPIKey, logger)

	calAdapter := calapi.NewAdapter(
		calapi.NewClient(cfg.CalAPIBaseURL, logger),
		schedule.SearchPolicy{
			WindowDays:  cfg.CalSearchWindowDays,
			MaxAttempts: cfg.CalSearchMaxAttempts,
		},
		logger,
	)
	highlevelAdapter := highlevel.NewAdapter(
		highlevel.NewClient(cfg.HighLevelBaseURL, cfg.HighLevelAPIVersion, logger),
		schedule.SearchPolicy{
			WindowDays:        cfg.HighLevelSearchWindowDays,
			MaxAttempts:       cfg.HighLevelSearchAttempts,
			InterAttemptDelay: cfg.HighLevelSearchDelay,
		},
		logger,
	)
	calendars := map[string]provider.Calendar{
		calAdapter.Name():       calAdapter,
		highlevelAdapter.Name(): highlevelAdapter,
	}

	store := appointments.NewStore(pool, logger)
	outbox := events.NewOutboxStore(pool)

	coordinator := booking.NewService(crmClient, calendars, store, outbox, tzCache, schedulingMetrics, logger)

	// Outbox delivery to the automation queue runs alongside the server.
	if cfg.AutomationQueueURL != "" {
		sqsClient, err := newSQSClient(ctx, cfg)
		if err != nil {
			logger.Error("failed to configure sqs client", "error", err)
			os.Exit(1)
		}
		deliverer := events.NewDeliverer(outbox, events.NewSQSHandler(sqsClient, cfg.AutomationQueueURL, logger), logger).
			WithBatchSize(int32(cfg.OutboxBatchSize)).
			WithInterval(cfg.OutboxPollInterval)
		go deliverer.Start(ctx)
	} else {
		logger.Warn("AUTOMATION_QUEUE_URL not set, outbox delivery disabled")
	}

	schedulingHandler := handlers.NewSchedulingHandler(coordinator, logger)
	r := router.New(&router.Config{
		Logger:         logger,
		Scheduling:     schedulingHandler,
		MetricsHandler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

func newSQSClient(ctx context.Context, cfg *appconfig.Config) (*sqs.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.AWSRegion),
	}
	if cfg.AWSAccessKeyID != "" && cfg.AWSSecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return sqs.NewFromConfig(awsCfg, func(o *sqs.Options) {
		// Local development against localstack or elasticmq.
		if cfg.AWSEndpointOverride != "" {
			o.BaseEndpoint = aws.String(cfg.AWSEndpointOverride)
		}
	}), nil
}
