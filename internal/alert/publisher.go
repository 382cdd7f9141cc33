package alert

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Приемники алертов, значения ALERT_SINK
const (
	SinkNone  = "none"
	SinkRedis = "redis"
	SinkKafka = "kafka"
)

// QueueKey - список Redis с алертами для webhook worker
const QueueKey = "risk_alerts"

// ErrQueueEmpty - за время ожидания в очереди ничего не появилось
var ErrQueueEmpty = errors.New("alert queue is empty")

//go:generate mockgen -source=publisher.go -destination=mocks/publisher_mock.go -package=mocks

// Publisher - интерфейс для публикации алертов
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Queue - очередь сериализованных алертов
type Queue interface {
	Push(ctx context.Context, payload []byte) error
	Pop(ctx context.Context, timeout time.Duration) ([]byte, error)
}

// NoopPublisher отбрасывает алерты, используется при ALERT_SINK=none
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, Event) error {
	return nil
}

// QueuePublisher кладет алерты в очередь, откуда их забирает Worker
type QueuePublisher struct {
	queue Queue
}

// NewQueuePublisher создает новый QueuePublisher
func NewQueuePublisher(queue Queue) *QueuePublisher {
	return &QueuePublisher{queue: queue}
}

// Publish сериализует событие и кладет его в очередь
func (p *QueuePublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal alert event: %w", err)
	}
	if err := p.queue.Push(ctx, payload); err != nil {
		return fmt.Errorf("failed to enqueue alert event: %w", err)
	}
	return nil
}

// RedisQueue - очередь на списке Redis: LPUSH на запись, BRPOP на чтение
type RedisQueue struct {
	client *redis.Client
	key    string
}

// NewRedisQueue создает очередь на ключе QueueKey
func NewRedisQueue(client *redis.Client) *RedisQueue {
	return &RedisQueue{client: client, key: QueueKey}
}

func (q *RedisQueue) Push(ctx context.Context, payload []byte) error {
	return q.client.LPush(ctx, q.key, payload).Err()
}

// Pop блокируется до timeout. Пустая очередь возвращает ErrQueueEmpty.
func (q *RedisQueue) Pop(ctx context.Context, timeout time.Duration) ([]byte, error) {
	result, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrQueueEmpty
	}
	if err != nil {
		return nil, err
	}
	// result[0] - ключ, result[1] - значение
	return []byte(result[1]), nil
}
