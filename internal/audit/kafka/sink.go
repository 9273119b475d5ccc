// Package kafka forwards audit events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"

	"roster/internal/audit"
)

// Sink produces one record per audit event, keyed by entity id so every
// event for a record lands on the same partition.
type Sink struct {
	client  *kgo.Client
	topic   string
	logger  *slog.Logger
	breaker *breaker
}

// ErrCircuitOpen is returned by Append while repeated delivery failures have
// paused producing.
var ErrCircuitOpen = errors.New("kafka audit sink circuit open")

const (
	breakerThreshold = 5
	breakerCooldown  = 30 * time.Second
)

// NewSink connects to brokers, verifies reachability and makes sure topic
// exists (single partition, replication factor 1 when it has to create it).
func NewSink(ctx context.Context, brokers []string, topic string, logger *slog.Logger) (*Sink, error) {
	if len(brokers) == 0 {
		return nil, errors.New("kafka audit sink requires at least one broker")
	}
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.AllowAutoTopicCreation(),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}
	if err := client.Ping(ctx); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping kafka: %w", err)
	}
	if err := ensureTopic(ctx, kadm.NewClient(client), topic); err != nil {
		client.Close()
		return nil, err
	}
	return &Sink{
		client:  client,
		topic:   topic,
		logger:  logger,
		breaker: newBreaker(breakerThreshold, breakerCooldown),
	}, nil
}

func ensureTopic(ctx context.Context, adm *kadm.Client, topic string) error {
	resp, err := adm.CreateTopics(ctx, 1, 1, nil, topic)
	if err != nil {
		return fmt.Errorf("create audit topic: %w", err)
	}
	for _, r := range resp {
		if r.Err != nil && !errors.Is(r.Err, kerr.TopicAlreadyExists) {
			return fmt.Errorf("create audit topic %s: %w", r.Topic, r.Err)
		}
	}
	return nil
}

// Append encodes the event and produces it asynchronously. Delivery failures
// are logged and feed the circuit breaker; the caller's context only bounds
// buffering, not delivery.
func (s *Sink) Append(ctx context.Context, event audit.Event) error {
	if !s.breaker.allow() {
		return ErrCircuitOpen
	}
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode audit event: %w", err)
	}
	record := &kgo.Record{
		Topic: s.topic,
		Key:   []byte(event.EntityID),
		Value: body,
	}
	s.client.Produce(context.WithoutCancel(ctx), record, func(r *kgo.Record, err error) {
		if err == nil {
			s.breaker.success()
			return
		}
		opened := s.breaker.failure()
		if s.logger != nil {
			s.logger.Error("audit event delivery failed",
				"topic", r.Topic,
				"action", event.Action,
				"entity_id", event.EntityID,
				"circuit_opened", opened,
				"error", err,
			)
		}
	})
	return nil
}

// Close flushes buffered records and closes the client.
func (s *Sink) Close(ctx context.Context) error {
	err := s.client.Flush(ctx)
	s.client.Close()
	return err
}
