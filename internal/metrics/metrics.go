// Package metrics exposes Prometheus collectors for the galactic economy.
package metrics

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mnky9800n/egatrader/internal/agents"
	"github.com/mnky9800n/egatrader/internal/economy"
)

// Metrics holds the game's collectors on a private registry.
type Metrics struct {
	Registry *prometheus.Registry

	TradesTotal     *prometheus.CounterVec
	TradeUnitsTotal *prometheus.CounterVec
	AIUpdatesTotal  prometheus.Counter
	CommodityPrice  *prometheus.GaugeVec
	Turn            prometheus.Gauge
}

// New creates and registers the collectors.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		TradesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "egatrader_trades_total", Help: "Trades executed"},
			[]string{"side", "commodity"},
		),
		TradeUnitsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "egatrader_trade_units_total", Help: "Units traded"},
			[]string{"side", "commodity"},
		),
		AIUpdatesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{Name: "egatrader_ai_updates_total", Help: "Trader update passes"},
		),
		CommodityPrice: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{Name: "egatrader_commodity_price", Help: "Mean price across all stations"},
			[]string{"commodity"},
		),
		Turn: prometheus.NewGauge(
			prometheus.GaugeOpts{Name: "egatrader_turn", Help: "Turns processed"},
		),
	}
	m.Registry.MustRegister(m.TradesTotal, m.TradeUnitsTotal, m.AIUpdatesTotal, m.CommodityPrice, m.Turn)
	return m
}

// ObserveTrade counts one executed trade.
func (m *Metrics) ObserveTrade(t agents.Trade) {
	side, c := t.Side.String(), t.Commodity.String()
	m.TradesTotal.WithLabelValues(side, c).Inc()
	m.TradeUnitsTotal.WithLabelValues(side, c).Add(float64(t.Quantity))
}

// SetPrices records the mean price of every commodity.
func (m *Metrics) SetPrices(prices [economy.NumCommodities]float64) {
	for _, c := range economy.AllCommodities {
		m.CommodityPrice.WithLabelValues(c.String()).Set(prices[c])
	}
}

// Serve exposes /metrics on addr in the background.
func (m *Metrics) Serve(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("metrics server failed", "addr", addr, "error", err)
		}
	}()
	slog.Info("metrics endpoint started", "addr", addr)
	return srv
}
