package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	RequestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_requests_latency_seconds",
			Help:    "Latency of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method", "status"},
	)

	// TransactionsCreated counts accepted orders.
	TransactionsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "transactions_created_total",
			Help: "Total transactions created",
		},
	)

	// TransactionTransitions counts lifecycle updates by resulting state.
	TransactionTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transaction_transitions_total",
			Help: "Transaction lifecycle updates by resulting status",
		},
		[]string{"status_ordered", "status_payment"},
	)

	registerOnce sync.Once
)

// Handler serves the default registry.
var Handler = promhttp.Handler

func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(RequestsTotal)
		prometheus.MustRegister(RequestLatency)
		prometheus.MustRegister(TransactionsCreated)
		prometheus.MustRegister(TransactionTransitions)
	})
}
