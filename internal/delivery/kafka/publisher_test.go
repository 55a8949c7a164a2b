package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"restaurant-orders/internal/models"
)

func TestNewMessage_KeyedByOrderID(t *testing.T) {
	at := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	evt := models.OrderEvent{
		Type:       models.EventOrderPaymentSubmitted,
		OccurredAt: at,
		Order:      models.Order{OrderId: "MK-M8ABCDEF-X1Y2Z", Status: models.StatusPaymentSubmitted},
	}

	msg, err := newMessage(evt)
	require.NoError(t, err)
	require.Equal(t, "MK-M8ABCDEF-X1Y2Z", string(msg.Key))
	require.Equal(t, at, msg.Time)
	require.Len(t, msg.Headers, 2)
	require.Equal(t, "order.payment_submitted", string(msg.Headers[0].Value))
	require.Equal(t, "payment_submitted", string(msg.Headers[1].Value))

	var back models.OrderEvent
	require.NoError(t, json.Unmarshal(msg.Value, &back))
	require.Equal(t, evt.Type, back.Type)
	require.Equal(t, evt.Order.OrderId, back.Order.OrderId)
}
