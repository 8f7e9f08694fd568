package economy

import (
	"sync"

	"golang.org/x/exp/constraints"
)

// Price bounds relative to BasePrice.
const (
	MinPriceFactor = 0.5
	MaxPriceFactor = 2.0
)

// MarketEntry is the state of one commodity at one station.
type MarketEntry struct {
	Commodity    Commodity `json:"commodity"`
	Price        float64   `json:"price"`
	SupplyDemand float64   `json:"supply_demand"` // Fixed at creation: <1 produced here, >1 needed here
	Stock        int       `json:"stock"`
}

// Market holds the prices and stock of a single station.
// All methods are safe for concurrent use; AdjustPrice is atomic per market.
type Market struct {
	mu      sync.Mutex
	entries [NumCommodities]MarketEntry
}

// NewMarket creates a market from per-commodity prices, supply/demand
// multipliers, and stock levels. Prices are clamped into their legal range
// and negative stock is raised to zero.
func NewMarket(prices, supplyDemand [NumCommodities]float64, stock [NumCommodities]int) *Market {
	m := &Market{}
	for _, c := range AllCommodities {
		base := BasePrice(c)
		m.entries[c] = MarketEntry{
			Commodity:    c,
			Price:        clamp(prices[c], base*MinPriceFactor, base*MaxPriceFactor),
			SupplyDemand: supplyDemand[c],
			Stock:        max(0, stock[c]),
		}
	}
	return m
}

// AdjustPrice applies an elastic price response to a change in supply.
// A positive quantityChange is a sale to the station (stock rises, price
// falls); a negative one is a purchase from it. The impact is damped by the
// larger of 100 or the pre-trade stock, so one call moves the price by at
// most about 10% per 100 units.
func (m *Market) AdjustPrice(c Commodity, quantityChange int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := &m.entries[c]
	stock := e.Stock
	impact := -float64(quantityChange) / float64(max(100, stock)) * 0.1

	base := BasePrice(c)
	e.Price = clamp(e.Price*(1+impact), base*MinPriceFactor, base*MaxPriceFactor)
	e.Stock = max(0, stock+quantityChange)
}

// Price returns the current price of a commodity.
func (m *Market) Price(c Commodity) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.entries[c].Price
}

// Stock returns the current stock level of a commodity.
func (m *Market) Stock(c Commodity) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.entries[c].Stock
}

// SupplyDemand returns the fixed supply/demand multiplier of a commodity.
func (m *Market) SupplyDemand(c Commodity) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.entries[c].SupplyDemand
}

// Prices returns a copy of all current prices.
func (m *Market) Prices() [NumCommodities]float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out [NumCommodities]float64
	for i, e := range m.entries {
		out[i] = e.Price
	}
	return out
}

// Snapshot returns a copy of every entry in canonical commodity order.
func (m *Market) Snapshot() [NumCommodities]MarketEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.entries
}

func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
