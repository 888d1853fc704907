package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-kafka/v2/pkg/kafka"
	"github.com/ThreeDotsLabs/watermill/message"
)

// EventPublisher publishes quiz and catalog events to the event stream.
type EventPublisher interface {
	PublishQuizCompleted(ctx context.Context, event *QuizCompletedEvent) error
	PublishCareersImported(ctx context.Context, event *CareersImportedEvent) error
	Close() error
}

// PublisherConfig holds configuration for the Kafka-backed publisher.
type PublisherConfig struct {
	KafkaBrokers []string
	TopicName    string
	Logger       *slog.Logger
}

// KafkaEventPublisher implements EventPublisher using Watermill with Kafka.
type KafkaEventPublisher struct {
	publisher message.Publisher
	logger    *slog.Logger
	topicName string
}

func NewKafkaEventPublisher(config PublisherConfig) (*KafkaEventPublisher, error) {
	logger := watermill.NewSlogLogger(config.Logger)

	publisher, err := kafka.NewPublisher(kafka.PublisherConfig{
		Brokers:   config.KafkaBrokers,
		Marshaler: kafka.DefaultMarshaler{},
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka publisher: %w", err)
	}

	return &KafkaEventPublisher{
		publisher: publisher,
		logger:    config.Logger,
		topicName: config.TopicName,
	}, nil
}

func (p *KafkaEventPublisher) PublishQuizCompleted(ctx context.Context, event *QuizCompletedEvent) error {
	return p.publish(event.SubmissionID, EventQuizCompleted, event)
}

func (p *KafkaEventPublisher) PublishCareersImported(ctx context.Context, event *CareersImportedEvent) error {
	return p.publish(event.JobID, EventCareersImported, event)
}

func (p *KafkaEventPublisher) publish(id string, eventType EventType, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", eventType, err)
	}

	msg := message.NewMessage(id, data)
	msg.Metadata.Set("event_type", string(eventType))
	msg.Metadata.Set("source", "career-finder")

	if err := p.publisher.Publish(p.topicName, msg); err != nil {
		p.logger.Error("failed to publish event",
			"event_id", id,
			"event_type", eventType,
			"error", err)
		return fmt.Errorf("failed to publish %s event: %w", eventType, err)
	}

	p.logger.Info("published event",
		"event_id", id,
		"event_type", eventType,
		"topic", p.topicName)
	return nil
}

func (p *KafkaEventPublisher) Close() error {
	return p.publisher.Close()
}

// NoopEventPublisher drops all events. Used when no brokers are configured.
type NoopEventPublisher struct{}

func (NoopEventPublisher) PublishQuizCompleted(ctx context.Context, event *QuizCompletedEvent) error {
	return nil
}

func (NoopEventPublisher) PublishCareersImported(ctx context.Context, event *CareersImportedEvent) error {
	return nil
}

func (NoopEventPublisher) Close() error { return nil }

// MockEventPublisher records events in memory for tests.
type MockEventPublisher struct {
	QuizCompleted   []QuizCompletedEvent
	CareersImported []CareersImportedEvent
}

func (m *MockEventPublisher) PublishQuizCompleted(ctx context.Context, event *QuizCompletedEvent) error {
	m.QuizCompleted = append(m.QuizCompleted, *event)
	return nil
}

func (m *MockEventPublisher) PublishCareersImported(ctx context.Context, event *CareersImportedEvent) error {
	m.CareersImported = append(m.CareersImported, *event)
	return nil
}

func (m *MockEventPublisher) Close() error { return nil }
