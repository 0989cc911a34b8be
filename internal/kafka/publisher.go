package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/Gunvolt24/bloodbank/internal/domain"
	"github.com/Gunvolt24/bloodbank/internal/ports"
	"github.com/Gunvolt24/bloodbank/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

var (
	_ ports.VerdictPublisher = (*Publisher)(nil)
	_ ports.VerdictPublisher = NopPublisher{}
)

// writer — контракт над kafka.Writer.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// VerdictEvent — событие о результате обследования донации.
type VerdictEvent struct {
	DonationID  string          `json:"donation_id"`
	Eligible    bool            `json:"eligible"`
	Outcome     domain.Outcome  `json:"outcome"`
	Reasons     []domain.Reason `json:"reasons"`
	EvaluatedAt time.Time       `json:"evaluated_at"`
}

// NewVerdictEvent — событие по записи журнала; причины всегда массив.
func NewVerdictEvent(rec *domain.ScreeningRecord) VerdictEvent {
	reasons := rec.Verdict.Reasons
	if reasons == nil {
		reasons = []domain.Reason{}
	}
	return VerdictEvent{
		DonationID:  rec.DonationID,
		Eligible:    rec.Verdict.Eligible,
		Outcome:     rec.Verdict.Outcome(),
		Reasons:     reasons,
		EvaluatedAt: rec.EvaluatedAt,
	}
}

// Publisher — отправка вердиктов в топик результатов (ключ — ID донации).
type Publisher struct {
	writer    writer
	topic     string
	closeOnce sync.Once
}

func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{}, // все события донации в одной партиции
			RequiredAcks:           kafka.RequireAll,
			BatchTimeout:           10 * time.Millisecond,
			AllowAutoTopicCreation: true,
		},
		topic: topic,
	}
}

func (p *Publisher) Publish(ctx context.Context, rec *domain.ScreeningRecord) error {
	if rec == nil {
		return nil
	}
	payload, err := json.Marshal(NewVerdictEvent(rec))
	if err != nil {
		return fmt.Errorf("marshal verdict event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(rec.DonationID),
		Value: payload,
	})
	if err != nil {
		metrics.KafkaMessagesPublished.WithLabelValues(p.topic, "error").Inc()
		return fmt.Errorf("write verdict event: %w", err)
	}
	metrics.KafkaMessagesPublished.WithLabelValues(p.topic, "ok").Inc()
	return nil
}

func (p *Publisher) Close() (err error) {
	p.closeOnce.Do(func() {
		err = p.writer.Close()
	})
	return err
}

// NopPublisher — публикация выключена (топик результатов не задан).
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, *domain.ScreeningRecord) error { return nil }
func (NopPublisher) Close() error                                          { return nil }
