package alert

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/food_insecurity_ews/internal/observability"
	"github.com/sirupsen/logrus"
)

// SignatureHeader - заголовок с HMAC-SHA256 подписью тела запроса
const SignatureHeader = "X-Webhook-Signature"

const defaultPollTimeout = time.Second

// WorkerConfig - параметры доставки вебхуков
type WorkerConfig struct {
	URL         string
	Secret      string
	Timeout     time.Duration
	MaxRetries  int
	BaseDelay   time.Duration
	PollTimeout time.Duration
}

// Worker забирает алерты из очереди и отправляет их на WEBHOOK_URL
type Worker struct {
	queue      Queue
	cfg        WorkerConfig
	httpClient *http.Client
	clock      clockwork.Clock
	logger     *logrus.Logger
	metrics    *observability.Metrics
}

// NewWorker создает новый Worker
func NewWorker(queue Queue, cfg WorkerConfig, logger *logrus.Logger, metrics *observability.Metrics, clock clockwork.Clock) *Worker {
	if cfg.PollTimeout <= 0 {
		cfg.PollTimeout = defaultPollTimeout
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 1
	}
	return &Worker{
		queue:      queue,
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		clock:      clock,
		logger:     logger,
		metrics:    metrics,
	}
}

// Run обрабатывает очередь до отмены контекста
func (w *Worker) Run(ctx context.Context) error {
	w.logger.Info("Starting alert webhook worker...")
	w.metrics.AlertWorkerRunning.Set(1)
	defer func() {
		w.metrics.AlertWorkerRunning.Set(0)
		w.logger.Info("Stopping alert webhook worker.")
	}()

	for {
		payload, err := w.queue.Pop(ctx, w.cfg.PollTimeout)
		if ctx.Err() != nil {
			return nil
		}
		if errors.Is(err, ErrQueueEmpty) {
			continue
		}
		if err != nil {
			w.logger.WithError(err).Error("Failed to pop alert event from queue")
			if !w.sleep(ctx, w.cfg.BaseDelay) {
				return nil
			}
			continue
		}

		var event Event
		if err := json.Unmarshal(payload, &event); err != nil {
			w.logger.WithError(err).Error("Failed to unmarshal alert event")
			continue
		}

		log := w.logger.WithFields(logrus.Fields{
			"alert_id":   event.ID,
			"county":     event.County,
			"risk_level": event.RiskLevel,
		})
		if err := w.Deliver(ctx, payload); err != nil {
			log.WithError(err).Error("Failed to deliver alert webhook")
			continue
		}
		log.Info("Alert webhook delivered successfully.")
	}
}

// Deliver отправляет payload с экспоненциальной задержкой между попытками
func (w *Worker) Deliver(ctx context.Context, payload []byte) error {
	if w.cfg.URL == "" {
		w.metrics.WebhookDeliveries.WithLabelValues("dropped").Inc()
		w.logger.Warn("Webhook URL is not configured. Skipping alert delivery.")
		return nil
	}

	delay := w.cfg.BaseDelay
	var lastErr error
	for attempt := 1; attempt <= w.cfg.MaxRetries; attempt++ {
		lastErr = w.post(ctx, payload)
		if lastErr == nil {
			w.metrics.WebhookDeliveries.WithLabelValues("success").Inc()
			return nil
		}
		if attempt == w.cfg.MaxRetries {
			break
		}

		w.metrics.WebhookDeliveries.WithLabelValues("retry").Inc()
		w.logger.WithError(lastErr).Warnf("Webhook delivery failed. Retrying in %v. Retries left: %d", delay, w.cfg.MaxRetries-attempt)
		if !w.sleep(ctx, delay) {
			return ctx.Err()
		}
		delay *= 2
	}

	w.metrics.WebhookDeliveries.WithLabelValues("dropped").Inc()
	return fmt.Errorf("webhook delivery failed after %d attempts: %w", w.cfg.MaxRetries, lastErr)
}

func (w *Worker) post(ctx context.Context, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.URL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if w.cfg.Secret != "" {
		req.Header.Set(SignatureHeader, Sign(payload, w.cfg.Secret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook responded with status %d", resp.StatusCode)
	}
	return nil
}

func (w *Worker) sleep(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-w.clock.After(d):
		return true
	}
}

// Sign возвращает hex HMAC-SHA256 подпись payload
func Sign(payload []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(payload)
	return hex.EncodeToString(h.Sum(nil))
}
