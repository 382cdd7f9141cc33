// Package app собирает зависимости сервиса из конфигурации.
// Используется HTTP-сервером и утилитой ewsctl.
package app

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/food_insecurity_ews/internal/alert"
	"github.com/shenikar/food_insecurity_ews/internal/config"
	"github.com/shenikar/food_insecurity_ews/internal/model"
	"github.com/shenikar/food_insecurity_ews/internal/observability"
	"github.com/shenikar/food_insecurity_ews/internal/reference"
	"github.com/shenikar/food_insecurity_ews/internal/repository"
	"github.com/shenikar/food_insecurity_ews/internal/service"
	"github.com/shenikar/food_insecurity_ews/pkg/postgres"
	redisclient "github.com/shenikar/food_insecurity_ews/pkg/redis"
	"github.com/sirupsen/logrus"
)

// LoadCatalog загружает справочник округов из PostgreSQL, если задан DATABASE_URL,
// иначе из REFERENCE_FILE или встроенного YAML
func LoadCatalog(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*reference.Catalog, error) {
	if cfg.DatabaseURL == "" {
		catalog, err := reference.Load(cfg.ReferenceFile)
		if err != nil {
			return nil, err
		}
		log.WithField("source", sourceName(cfg.ReferenceFile)).Info("County catalog loaded")
		return catalog, nil
	}

	log.Info("Running database migrations...")
	changed, err := postgres.RunMigrations(cfg.MigrationsDir, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if changed {
		log.Info("Database migrations applied successfully")
	}

	dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	// справочник неизменяем, соединения после загрузки не нужны
	defer dbpool.Close()

	catalog, err := reference.FromSource(ctx, repository.NewCountyRepository(dbpool))
	if err != nil {
		return nil, err
	}
	log.WithField("source", "postgres").Info("County catalog loaded")
	return catalog, nil
}

func sourceName(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}

// Alerts - издатель алертов и, для Redis, воркер доставки вебхуков
type Alerts struct {
	Publisher alert.Publisher
	Worker    *alert.Worker
	closers   []func() error
}

// NewAlerts создает приемник алертов по ALERT_SINK
func NewAlerts(ctx context.Context, cfg *config.Config, log *logrus.Logger, metrics *observability.Metrics, clock clockwork.Clock) (*Alerts, error) {
	switch cfg.AlertSink {
	case config.AlertSinkRedis:
		client, err := redisclient.NewRedisClient(ctx, redisclient.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, err
		}
		log.Info("Successfully connected to Redis")

		queue := alert.NewRedisQueue(client)
		worker := alert.NewWorker(queue, alert.WorkerConfig{
			URL:        cfg.WebhookURL,
			Secret:     cfg.WebhookSecret,
			Timeout:    cfg.WebhookTimeout,
			MaxRetries: cfg.WebhookMaxRetries,
			BaseDelay:  cfg.WebhookBaseDelay,
		}, log, metrics, clock)
		return &Alerts{
			Publisher: alert.NewQueuePublisher(queue),
			Worker:    worker,
			closers:   []func() error{client.Close},
		}, nil

	case config.AlertSinkKafka:
		publisher := alert.NewKafkaPublisher(alert.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaAlertTopic))
		log.WithField("topic", cfg.KafkaAlertTopic).Info("Publishing alerts to Kafka")
		return &Alerts{
			Publisher: publisher,
			closers:   []func() error{publisher.Close},
		}, nil

	case config.AlertSinkNone:
		return &Alerts{Publisher: alert.NoopPublisher{}}, nil

	default:
		return nil, fmt.Errorf("unknown alert sink %q", cfg.AlertSink)
	}
}

// Close освобождает соединения приемника
func (a *Alerts) Close() error {
	var firstErr error
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Service - собранный сервис прогнозов с артефактами
type Service struct {
	Prediction service.PredictionService
	Catalog    *reference.Catalog
	Scorer     *model.Scorer
}

// NewService загружает справочник и модель и собирает сервис прогнозов
func NewService(
	ctx context.Context,
	cfg *config.Config,
	log *logrus.Logger,
	metrics *observability.Metrics,
	publisher alert.Publisher,
	clock clockwork.Clock,
) (*Service, error) {
	catalog, err := LoadCatalog(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("could not load county catalog: %w", err)
	}
	metrics.ReferenceCounties.Set(float64(catalog.Len()))

	scorer, err := model.Load(cfg.ModelDir)
	if err != nil {
		return nil, fmt.Errorf("could not load model artifacts: %w", err)
	}
	meta := scorer.Metadata()
	log.WithFields(logrus.Fields{
		"model":     meta.Name(),
		"threshold": meta.DecisionThreshold(),
		"features":  len(scorer.TopFeatures()),
	}).Info("Model artifacts loaded")

	return &Service{
		Prediction: service.NewPredictionService(catalog, scorer, publisher, log, metrics, clock),
		Catalog:    catalog,
		Scorer:     scorer,
	}, nil
}
