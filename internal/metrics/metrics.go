package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	// Buckets reach past the simulated payment latency so checkout lands in a finite bucket.
	RequestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_requests_latency_seconds",
			Help:    "Latency of HTTP requests",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2, 3, 5, 10},
		},
		[]string{"method", "route", "status"},
	)

	// Cart
	CartOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_operations_total",
			Help: "Cart mutations by operation",
		},
		[]string{"op"}, // add|remove|update|clear
	)

	// Auth
	AuthAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_attempts_total",
			Help: "Login and registration attempts by outcome",
		},
		[]string{"op", "result"},
	)

	// Orders
	OrdersPlaced = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_placed_total",
			Help: "Orders created after a successful payment",
		},
	)
	OrderRevenue = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "order_revenue_naira_total",
			Help: "Sum of placed order totals in whole naira",
		},
	)

	// Admin
	AdminMutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admin_mutations_total",
			Help: "Admin catalog and directory changes",
		},
		[]string{"kind", "op"},
	)

	// Worker queue
	WorkerQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "worker_queue_depth",
			Help: "Current worker queue depth",
		},
	)

	initOnce sync.Once
)

// Handler serves /metrics.
var Handler = promhttp.Handler

func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(RequestsTotal)
		prometheus.MustRegister(RequestLatency)
		prometheus.MustRegister(CartOperations)
		prometheus.MustRegister(AuthAttempts)
		prometheus.MustRegister(OrdersPlaced)
		prometheus.MustRegister(OrderRevenue)
		prometheus.MustRegister(AdminMutations)
		prometheus.MustRegister(WorkerQueueDepth)
	})
}
