package metrics

import "github.com/prometheus/client_golang/prometheus"

func init() {
	register(updatesTotal, handlerPanicsTotal, rateLimitedTotal)
}

var (
	updatesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_updates_total",
			Help: "Telegram updates processed, by type.",
		},
		[]string{"type"},
	)

	handlerPanicsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bot_handler_panics_total",
			Help: "Panics recovered while handling updates.",
		},
	)

	rateLimitedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bot_rate_limited_total",
			Help: "Updates dropped by the per-chat rate limit.",
		},
	)
)

func IncUpdate(updateType string) {
	updatesTotal.WithLabelValues(norm(updateType)).Inc()
}

func IncHandlerPanic() {
	handlerPanicsTotal.Inc()
}

func IncRateLimited() {
	rateLimitedTotal.Inc()
}
