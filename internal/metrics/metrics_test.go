package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mnky9800n/egatrader/internal/agents"
	"github.com/mnky9800n/egatrader/internal/economy"
)

func TestObserveTrade(t *testing.T) {
	m := New()
	m.ObserveTrade(agents.Trade{Commodity: economy.Food, Side: agents.SideBuy, Quantity: 5})
	m.ObserveTrade(agents.Trade{Commodity: economy.Food, Side: agents.SideBuy, Quantity: 3})
	m.ObserveTrade(agents.Trade{Commodity: economy.Fuel, Side: agents.SideSell, Quantity: 10})

	mfs, err := m.Registry.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	var trades, units float64
	for _, mf := range mfs {
		for _, metric := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range metric.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			if labels["side"] != "buy" || labels["commodity"] != "Food" {
				continue
			}
			switch mf.GetName() {
			case "egatrader_trades_total":
				trades = metric.GetCounter().GetValue()
			case "egatrader_trade_units_total":
				units = metric.GetCounter().GetValue()
			}
		}
	}
	if trades != 2 || units != 8 {
		t.Fatalf("expected 2 food buys for 8 units, got %v and %v", trades, units)
	}
}

func TestHandlerExposesPrices(t *testing.T) {
	m := New()
	var prices [economy.NumCommodities]float64
	for _, c := range economy.AllCommodities {
		prices[c] = economy.BasePrice(c)
	}
	m.SetPrices(prices)
	m.AIUpdatesTotal.Inc()

	srv := httptest.NewServer(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}))
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	if err != nil {
		t.Fatalf("scrape: %v", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	text := string(body)
	for _, want := range []string{
		`egatrader_commodity_price{commodity="Luxuries"} 800`,
		`egatrader_ai_updates_total 1`,
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("missing %q in scrape output", want)
		}
	}
}

func TestServe(t *testing.T) {
	srv := New().Serve("127.0.0.1:0")
	defer srv.Close()
	if srv.Handler == nil {
		t.Fatal("expected a handler")
	}
}
