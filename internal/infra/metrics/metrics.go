package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "physio_scheduler"

var (
	once sync.Once

	bookingCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_created_total",
			Help:      "Booking creation attempts by result.",
		},
		[]string{"result"},
	)

	bookingTransition = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_transition_total",
			Help:      "Booking status transitions by action and result.",
		},
		[]string{"action", "result"},
	)

	paymentEvent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payment_event_total",
			Help:      "Payment notifications by outcome.",
		},
		[]string{"outcome"},
	)

	outboxPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outbox_publish_total",
			Help:      "Outbox jobs published by topic and result.",
		},
		[]string{"topic", "result"},
	)

	rateLimited = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the rate limiter.",
		},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingCreated, bookingTransition, paymentEvent, outboxPublished, rateLimited)
	})
}

func IncBookingCreated(result string) {
	bookingCreated.WithLabelValues(result).Inc()
}

func IncBookingTransition(action, result string) {
	bookingTransition.WithLabelValues(action, result).Inc()
}

func IncPaymentEvent(outcome string) {
	paymentEvent.WithLabelValues(outcome).Inc()
}

func IncOutboxPublished(topic, result string) {
	outboxPublished.WithLabelValues(topic, result).Inc()
}

func IncRateLimited() {
	rateLimited.Inc()
}
