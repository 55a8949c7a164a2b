package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	kafka "github.com/segmentio/kafka-go"

	"restaurant-orders/internal/models"
)

type Publisher struct {
	writer *kafka.Writer
}

func NewPublisher(brokers []string, topic string) *Publisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		BatchTimeout:           10 * time.Millisecond,
	}
	return &Publisher{writer: w}
}

// Publish keys every event by order ID so one order's events stay on one partition.
func (p *Publisher) Publish(ctx context.Context, evt models.OrderEvent) error {
	msg, err := newMessage(evt)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, msg)
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

func newMessage(evt models.OrderEvent) (kafka.Message, error) {
	body, err := json.Marshal(evt)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("encode %s event: %w", evt.Type, err)
	}
	return kafka.Message{
		Key:   []byte(evt.Order.OrderId),
		Value: body,
		Time:  evt.OccurredAt,
		Headers: []kafka.Header{
			{Key: "x-event-type", Value: []byte(evt.Type)},
			{Key: "x-order-status", Value: []byte(evt.Order.Status)},
		},
	}, nil
}
