package alert_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shenikar/food_insecurity_ews/internal/alert"
	"github.com/shenikar/food_insecurity_ews/internal/alert/mocks"
	"github.com/shenikar/food_insecurity_ews/internal/observability"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

// statusSequence отвечает кодами из списка, последний код повторяется
func statusSequence(calls *int32, codes ...int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n := int(atomic.AddInt32(calls, 1))
		if n > len(codes) {
			n = len(codes)
		}
		w.WriteHeader(codes[n-1])
	}
}

func TestSign_KnownVector(t *testing.T) {
	sig := alert.Sign([]byte("The quick brown fox jumps over the lazy dog"), "key")
	assert.Equal(t, "f7bc83f430538424b13298e6aa6fb143ef4d59a14946175997479dbc2d1a3cd8", sig)
}

func TestWorker_Deliver_SignsPayload(t *testing.T) {
	payload := []byte(`{"county":"Turkana"}`)
	var gotBody []byte
	var gotSignature, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		gotSignature = r.Header.Get(alert.SignatureHeader)
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	metrics := observability.NewMetricsForTesting()
	worker := alert.NewWorker(nil, alert.WorkerConfig{
		URL:        srv.URL,
		Secret:     "s3cret",
		Timeout:    time.Second,
		MaxRetries: 3,
		BaseDelay:  time.Second,
	}, newTestLogger(), metrics, clockwork.NewFakeClock())

	require.NoError(t, worker.Deliver(context.Background(), payload))
	assert.Equal(t, payload, gotBody)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, alert.Sign(payload, "s3cret"), gotSignature)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.WebhookDeliveries.WithLabelValues("success")))
}

func TestWorker_Deliver_NoSecretNoSignature(t *testing.T) {
	var hasSignature atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := r.Header[alert.SignatureHeader]
		hasSignature.Store(ok)
	}))
	defer srv.Close()

	worker := alert.NewWorker(nil, alert.WorkerConfig{URL: srv.URL, Timeout: time.Second, MaxRetries: 1},
		newTestLogger(), observability.NewMetricsForTesting(), clockwork.NewFakeClock())

	require.NoError(t, worker.Deliver(context.Background(), []byte(`{}`)))
	assert.False(t, hasSignature.Load())
}

func TestWorker_Deliver_RetriesWithBackoff(t *testing.T) {
	// Подготовка
	var calls int32
	srv := httptest.NewServer(statusSequence(&calls, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusOK))
	defer srv.Close()

	clock := clockwork.NewFakeClock()
	metrics := observability.NewMetricsForTesting()
	worker := alert.NewWorker(nil, alert.WorkerConfig{
		URL:        srv.URL,
		Timeout:    time.Second,
		MaxRetries: 3,
		BaseDelay:  time.Second,
	}, newTestLogger(), metrics, clock)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Действие
	errCh := make(chan error, 1)
	go func() { errCh <- worker.Deliver(ctx, []byte(`{}`)) }()

	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	clock.Advance(time.Second)
	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	clock.Advance(2 * time.Second)

	// Проверки
	require.NoError(t, <-errCh)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.WebhookDeliveries.WithLabelValues("retry")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.WebhookDeliveries.WithLabelValues("success")))
}

func TestWorker_Deliver_GivesUp(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(statusSequence(&calls, http.StatusInternalServerError))
	defer srv.Close()

	clock := clockwork.NewFakeClock()
	metrics := observability.NewMetricsForTesting()
	worker := alert.NewWorker(nil, alert.WorkerConfig{
		URL:        srv.URL,
		Timeout:    time.Second,
		MaxRetries: 2,
		BaseDelay:  time.Second,
	}, newTestLogger(), metrics, clock)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- worker.Deliver(ctx, []byte(`{}`)) }()

	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	clock.Advance(time.Second)

	err := <-errCh
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.WebhookDeliveries.WithLabelValues("dropped")))
}

func TestWorker_Deliver_CanceledDuringBackoff(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(statusSequence(&calls, http.StatusInternalServerError))
	defer srv.Close()

	clock := clockwork.NewFakeClock()
	worker := alert.NewWorker(nil, alert.WorkerConfig{
		URL:        srv.URL,
		Timeout:    time.Second,
		MaxRetries: 5,
		BaseDelay:  time.Minute,
	}, newTestLogger(), observability.NewMetricsForTesting(), clock)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- worker.Deliver(ctx, []byte(`{}`)) }()

	waitCtx, waitCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer waitCancel()
	require.NoError(t, clock.BlockUntilContext(waitCtx, 1))
	cancel()

	assert.ErrorIs(t, <-errCh, context.Canceled)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestWorker_Deliver_NoURL(t *testing.T) {
	metrics := observability.NewMetricsForTesting()
	worker := alert.NewWorker(nil, alert.WorkerConfig{}, newTestLogger(), metrics, clockwork.NewFakeClock())

	require.NoError(t, worker.Deliver(context.Background(), []byte(`{}`)))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.WebhookDeliveries.WithLabelValues("dropped")))
}

func TestWorker_Run_DeliversAndStops(t *testing.T) {
	defer goleak.VerifyNone(t,
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
		goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"),
	)

	// Подготовка
	received := make(chan []byte, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received <- body
	}))
	defer srv.Close()

	ctrl := gomock.NewController(t)
	queue := mocks.NewMockQueue(ctrl)
	payload := []byte(`{"county":"Marsabit","risk_level":"High Risk"}`)
	metrics := observability.NewMetricsForTesting()
	worker := alert.NewWorker(queue, alert.WorkerConfig{
		URL:         srv.URL,
		Timeout:     time.Second,
		MaxRetries:  1,
		PollTimeout: 50 * time.Millisecond,
	}, newTestLogger(), metrics, clockwork.NewRealClock())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Ожидания
	queue.EXPECT().Pop(gomock.Any(), 50*time.Millisecond).Return(payload, nil).Times(1)
	queue.EXPECT().Pop(gomock.Any(), 50*time.Millisecond).Return(nil, alert.ErrQueueEmpty).Times(1)
	queue.EXPECT().
		Pop(gomock.Any(), 50*time.Millisecond).
		DoAndReturn(func(ctx context.Context, _ time.Duration) ([]byte, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		}).
		AnyTimes()

	// Действие
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	// Проверки
	select {
	case body := <-received:
		assert.Equal(t, payload, body)
	case <-time.After(5 * time.Second):
		t.Fatal("webhook was not delivered")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("worker did not stop")
	}
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.AlertWorkerRunning))
}
