// Trade memory — the prices an agent has seen, keyed by quadrant.
package agents

import (
	"github.com/mnky9800n/egatrader/internal/economy"
	"github.com/mnky9800n/egatrader/internal/galaxy"
)

// PriceObservation is one remembered price and when it was seen.
type PriceObservation struct {
	Price float64 `json:"price"`
	Time  float64 `json:"time"`
}

// QuadrantPrices holds the latest observation of every commodity in a quadrant.
type QuadrantPrices [economy.NumCommodities]PriceObservation

// TradeMemory maps quadrants to the most recent prices observed there.
// Sector detail is dropped: all stations in a quadrant share one entry.
// Iteration follows the order quadrants were first recorded; re-recording
// a quadrant overwrites its prices without moving it.
//
// Size is bounded by the number of quadrants, so no eviction is needed.
type TradeMemory struct {
	order   []galaxy.Quadrant
	entries map[galaxy.Quadrant]*QuadrantPrices
}

// NewTradeMemory creates an empty memory.
func NewTradeMemory() *TradeMemory {
	return &TradeMemory{entries: make(map[galaxy.Quadrant]*QuadrantPrices)}
}

// Record stores the given prices for a quadrant, stamped with now.
func (m *TradeMemory) Record(q galaxy.Quadrant, prices [economy.NumCommodities]float64, now float64) {
	entry, ok := m.entries[q]
	if !ok {
		entry = &QuadrantPrices{}
		m.entries[q] = entry
		m.order = append(m.order, q)
	}
	for _, c := range economy.AllCommodities {
		entry[c] = PriceObservation{Price: prices[c], Time: now}
	}
}

// Lookup returns the remembered prices for a quadrant.
func (m *TradeMemory) Lookup(q galaxy.Quadrant) (QuadrantPrices, bool) {
	entry, ok := m.entries[q]
	if !ok {
		return QuadrantPrices{}, false
	}
	return *entry, true
}

// Prices returns every remembered price of c in first-recorded quadrant order.
func (m *TradeMemory) Prices(c economy.Commodity) []float64 {
	prices := make([]float64, 0, len(m.order))
	for _, q := range m.order {
		prices = append(prices, m.entries[q][c].Price)
	}
	return prices
}

// Quadrants returns the remembered quadrants in first-recorded order.
func (m *TradeMemory) Quadrants() []galaxy.Quadrant {
	out := make([]galaxy.Quadrant, len(m.order))
	copy(out, m.order)
	return out
}

// Len returns the number of remembered quadrants.
func (m *TradeMemory) Len() int {
	return len(m.order)
}
