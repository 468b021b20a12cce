package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func init() {
	register(
		invoicesCreatedTotal,
		invoiceResolutionsTotal,
		watchdogSuppressedTotal,
		watchdogsPending,
		gatewayRequestDuration,
	)
}

var (
	invoicesCreatedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "invoices_created_total",
			Help: "Invoice creation attempts by result (ok/gateway_error).",
		},
		[]string{"result"},
	)

	invoiceResolutionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "invoice_resolutions_total",
			Help: "Invoice lifecycle outcomes by kind and by the path that resolved them.",
		},
		[]string{"outcome", "source"},
	)

	watchdogSuppressedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "invoice_watchdog_suppressed_total",
			Help: "Expiry watchdogs that fired without expiring the invoice, by reason.",
		},
		[]string{"reason"},
	)

	watchdogsPending = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "invoice_watchdogs_pending",
			Help: "Expiry watchdogs scheduled and not yet fired.",
		},
	)

	gatewayRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gateway_request_duration_seconds",
			Help:    "Latency of payment gateway calls by operation and result.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "result"},
	)
)

func IncInvoiceCreated(result string) {
	invoicesCreatedTotal.WithLabelValues(norm(result)).Inc()
}

func IncInvoiceResolution(outcome, source string) {
	invoiceResolutionsTotal.WithLabelValues(norm(outcome), norm(source)).Inc()
}

func IncWatchdogSuppressed(reason string) {
	watchdogSuppressedTotal.WithLabelValues(norm(reason)).Inc()
}

func WatchdogScheduled() { watchdogsPending.Inc() }
func WatchdogFired()     { watchdogsPending.Dec() }

func ObserveGatewayRequest(operation string, err error, d time.Duration) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	gatewayRequestDuration.WithLabelValues(norm(operation), result).Observe(d.Seconds())
}
