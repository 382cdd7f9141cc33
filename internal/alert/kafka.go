package alert

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	kafkago "github.com/segmentio/kafka-go"
)

// MessageWriter - часть kafka.Writer, нужная издателю
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// KafkaPublisher пишет алерты в топик Kafka, ключ сообщения - округ
type KafkaPublisher struct {
	writer MessageWriter
}

// Алерты пишутся по одному из обработчика запроса: без этих настроек
// kafka-go ждет заполнения пачки или секундного таймаута.
const (
	alertBatchSize    = 1
	alertBatchTimeout = 10 * time.Millisecond
)

// NewKafkaWriter создает producer для топика алертов
func NewKafkaWriter(brokers []string, topic string) *kafkago.Writer {
	return &kafkago.Writer{
		Addr:         kafkago.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
		BatchSize:    alertBatchSize,
		BatchTimeout: alertBatchTimeout,
	}
}

// NewKafkaPublisher создает новый KafkaPublisher
func NewKafkaPublisher(writer MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event Event) error {
	msg, err := toMessage(event)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write alert to kafka: %w", err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

func toMessage(event Event) (kafkago.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("failed to marshal alert event: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(event.County),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "risk_level", Value: []byte(event.RiskLevel)},
			{Key: "created_at", Value: []byte(event.CreatedAt.Format(time.RFC3339))},
		},
	}, nil
}
