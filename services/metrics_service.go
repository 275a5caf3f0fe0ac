package services

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type MetricsService struct {
	registry   *prometheus.Registry
	snapshots  *prometheus.CounterVec
	renders    *prometheus.CounterVec
	priceMoves *prometheus.CounterVec
	levels     prometheus.Gauge
	algo       *prometheus.CounterVec
	openOrders *prometheus.GaugeVec
}

func NewMetricsService() *MetricsService {
	ms := &MetricsService{
		registry: prometheus.NewRegistry(),
		snapshots: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "depthview_snapshots_total",
			Help: "Depth snapshots received from the provider.",
		}, []string{"provider"}),
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "depthview_renders_total",
			Help: "Market depth panel renders.",
		}, []string{"target"}),
		priceMoves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "depthview_price_moves_total",
			Help: "Price cells rendered with a direction indicator.",
		}, []string{"direction"}),
		levels: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "depthview_levels",
			Help: "Rows in the last rendered panel.",
		}),
		algo: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "depthview_algo_actions_total",
			Help: "Algo decisions per snapshot.",
		}, []string{"strategy", "action"}),
		openOrders: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "depthview_algo_open_orders",
			Help: "Active algo child orders.",
		}, []string{"side"}),
	}
	ms.registry.MustRegister(ms.snapshots, ms.renders, ms.priceMoves, ms.levels, ms.algo, ms.openOrders)
	return ms
}

func (ms *MetricsService) Snapshot(provider string) {
	ms.snapshots.WithLabelValues(provider).Inc()
}

// Render records one panel render with its row count and indicator totals.
func (ms *MetricsService) Render(target string, rows int, up int, down int) {
	ms.renders.WithLabelValues(target).Inc()
	ms.priceMoves.WithLabelValues("up").Add(float64(up))
	ms.priceMoves.WithLabelValues("down").Add(float64(down))
	ms.levels.Set(float64(rows))
}

func (ms *MetricsService) AlgoAction(strategy string, action string) {
	ms.algo.WithLabelValues(strategy, action).Inc()
}

func (ms *MetricsService) OpenOrders(buy int, sell int) {
	ms.openOrders.WithLabelValues("buy").Set(float64(buy))
	ms.openOrders.WithLabelValues("sell").Set(float64(sell))
}

func (ms *MetricsService) Handler() http.Handler {
	return promhttp.HandlerFor(ms.registry, promhttp.HandlerOpts{})
}
