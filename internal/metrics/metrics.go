package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "orders"

var (
	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "created_total",
		Help:      "Pending orders accepted.",
	})

	PaymentProofs = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payment_proofs_total",
		Help:      "Payment proof submissions by outcome.",
	}, []string{"result"})

	Notifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Emails attempted by kind and outcome.",
	}, []string{"kind", "result"})

	Events = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_published_total",
		Help:      "Lifecycle events handed to the broker by outcome.",
	}, []string{"type", "result"})
)

func Result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
