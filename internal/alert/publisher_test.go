package alert_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/food_insecurity_ews/internal/alert"
	"github.com/shenikar/food_insecurity_ews/internal/alert/mocks"
	"github.com/shenikar/food_insecurity_ews/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testEvent() alert.Event {
	return alert.Event{
		ID:           uuid.MustParse("0b8f6a2e-4c1d-4f5e-9a3b-2d7c8e9f0a1b"),
		PredictionID: uuid.MustParse("7d2e1c4b-8a9f-4b3e-a5d6-1f0e2c3b4a59"),
		County:       "Turkana",
		Region:       models.RegionRiftValley,
		Probability:  0.875,
		RiskLevel:    "Severe Risk",
		Label:        "⚠ Famine Risk Detected",
		Threshold:    0.45,
		CreatedAt:    time.Date(2026, time.July, 1, 9, 30, 0, 0, time.UTC),
	}
}

func TestNewEvent(t *testing.T) {
	result := &models.PredictionResult{
		ID:          uuid.New(),
		County:      "Mandera",
		Probability: 0.55,
		Label:       "⚠ Crisis — Food Insecure",
		RiskLevel:   "Moderate Risk",
		Threshold:   0.45,
		CountyInfo:  models.CountyInfo{Region: models.RegionNorthEastern},
	}
	now := time.Date(2026, time.March, 3, 12, 0, 0, 0, time.FixedZone("EAT", 3*3600))

	event := alert.NewEvent(result, now)

	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.Equal(t, result.ID, event.PredictionID)
	assert.Equal(t, "Mandera", event.County)
	assert.Equal(t, models.RegionNorthEastern, event.Region)
	assert.Equal(t, 0.55, event.Probability)
	assert.Equal(t, "Moderate Risk", event.RiskLevel)
	assert.Equal(t, time.UTC, event.CreatedAt.Location())
	assert.True(t, event.CreatedAt.Equal(now))
}

func TestQueuePublisher_Publish(t *testing.T) {
	// Подготовка
	ctrl := gomock.NewController(t)
	queue := mocks.NewMockQueue(ctrl)
	publisher := alert.NewQueuePublisher(queue)
	ctx := context.Background()
	event := testEvent()

	// Ожидания
	queue.EXPECT().
		Push(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, payload []byte) error {
			var got alert.Event
			require.NoError(t, json.Unmarshal(payload, &got))
			assert.Equal(t, event, got)
			return nil
		}).
		Times(1)

	// Действие
	err := publisher.Publish(ctx, event)

	// Проверки
	require.NoError(t, err)
}

func TestQueuePublisher_PushError(t *testing.T) {
	ctrl := gomock.NewController(t)
	queue := mocks.NewMockQueue(ctrl)
	publisher := alert.NewQueuePublisher(queue)
	pushErr := errors.New("connection refused")

	queue.EXPECT().Push(gomock.Any(), gomock.Any()).Return(pushErr).Times(1)

	err := publisher.Publish(context.Background(), testEvent())

	require.Error(t, err)
	assert.ErrorIs(t, err, pushErr)
}

func TestNoopPublisher(t *testing.T) {
	var publisher alert.Publisher = alert.NoopPublisher{}
	assert.NoError(t, publisher.Publish(context.Background(), testEvent()))
}
