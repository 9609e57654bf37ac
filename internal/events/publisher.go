package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/AaravAsthana/Bajaj-SDK/internal/models"
)

// Publisher emits executed trades to a Kafka topic for downstream
// consumers. It is optional: a nil *Publisher is valid and every method
// is a no-op on it, so the engine path never branches on configuration.
// Publishing is synchronous with a short timeout and failures are
// logged, never propagated — the in-memory ledger stays authoritative.
type Publisher struct {
	writer *kafka.Writer
	logger *zap.Logger
}

const publishTimeout = 2 * time.Second

// NewPublisher builds a publisher for the given brokers, or nil when no
// brokers are configured.
func NewPublisher(brokers []string, topic string, logger *zap.Logger) *Publisher {
	if len(brokers) == 0 {
		return nil
	}
	w := kafka.NewWriter(kafka.WriterConfig{
		Brokers:      brokers,
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 200 * time.Millisecond,
		RequiredAcks: int(kafka.RequireOne),
	})
	return &Publisher{writer: w, logger: logger}
}

// Publish sends one executed trade. Errors are logged and swallowed.
func (p *Publisher) Publish(ctx context.Context, t models.Trade) {
	if p == nil {
		return
	}
	msg, err := message(t)
	if err != nil {
		p.logger.Error("trade event marshal", zap.Error(err), zap.String("trade_id", t.TradeID))
		return
	}
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("trade event publish", zap.Error(err), zap.String("trade_id", t.TradeID))
		return
	}
	p.logger.Debug("trade event published", zap.String("trade_id", t.TradeID))
}

func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}

// message keys trade events by symbol so one symbol's fills stay ordered
// within a partition.
func message(t models.Trade) (kafka.Message, error) {
	b, err := json.Marshal(t)
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{Key: []byte(t.Symbol), Value: b, Time: t.ExecutedAt}, nil
}
