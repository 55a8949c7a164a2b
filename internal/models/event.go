package models

import "time"

type EventType string

const (
	EventOrderCreated          EventType = "order.created"
	EventOrderPaymentSubmitted EventType = "order.payment_submitted"
	EventOrderSnapshot         EventType = "order.snapshot"
)

type OrderEvent struct {
	Type       EventType `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Order      Order     `json:"order"`
}
