package metrics

import "github.com/prometheus/client_golang/prometheus"

func init() {
	register(
		salesTotal,
		salesRevenueTotal,
		accountsDeliveredTotal,
	)
}

var (
	salesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "sales_total",
			Help: "Paid orders delivered to buyers.",
		},
	)

	salesRevenueTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sales_revenue_total",
			Help: "The total value of paid orders, labeled by asset.",
		},
		[]string{"asset"},
	)

	accountsDeliveredTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "accounts_delivered_total",
			Help: "Credential pairs generated for paid orders.",
		},
	)
)

func AddSale(asset string, amount float64, accounts int) {
	salesTotal.Inc()
	salesRevenueTotal.WithLabelValues(norm(asset)).Add(amount)
	accountsDeliveredTotal.Add(float64(accounts))
}
