package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the shop's Prometheus collectors. Each instance registers
// on its own registry so tests can build as many as they like.
type Metrics struct {
	Registry *prometheus.Registry

	ItemsAdded        prometheus.Counter
	OrdersCreated     prometheus.Counter
	PaymentRejections *prometheus.CounterVec
	Requests          *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		ItemsAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "noemie_cart_items_added_total",
			Help: "Items added to carts.",
		}),
		OrdersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "noemie_orders_created_total",
			Help: "Orders created after an accepted payment.",
		}),
		PaymentRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "noemie_payment_rejections_total",
			Help: "Payment submissions rejected by validation, by field.",
		}, []string{"field"}),
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "noemie_http_requests_total",
			Help: "HTTP requests served.",
		}, []string{"method", "route", "status"}),
	}

	m.Registry.MustRegister(
		m.ItemsAdded,
		m.OrdersCreated,
		m.PaymentRejections,
		m.Requests,
		prometheus.NewGoCollector(),
	)
	return m
}

func (m *Metrics) ItemAdded(qty int) {
	m.ItemsAdded.Add(float64(qty))
}

func (m *Metrics) OrderCreated() {
	m.OrdersCreated.Inc()
}

func (m *Metrics) PaymentRejected(field string) {
	m.PaymentRejections.WithLabelValues(field).Inc()
}
