package agents

import (
	"github.com/mnky9800n/egatrader/internal/economy"
	"github.com/mnky9800n/egatrader/internal/galaxy"
)

// scriptedRand returns queued values, then fallback forever.
type scriptedRand struct {
	vals     []float64
	fallback float64
	calls    int
}

func (r *scriptedRand) Float64() float64 {
	r.calls++
	if len(r.vals) == 0 {
		return r.fallback
	}
	v := r.vals[0]
	r.vals = r.vals[1:]
	return v
}

// baseMarket returns a market with every commodity at its base price, with
// overrides applied as price factors.
func baseMarket(stock int, factors map[economy.Commodity]float64) *economy.Market {
	var prices, sd [economy.NumCommodities]float64
	var stocks [economy.NumCommodities]int
	for _, c := range economy.AllCommodities {
		f := 1.0
		if v, ok := factors[c]; ok {
			f = v
		}
		prices[c] = economy.BasePrice(c) * f
		sd[c] = 1
		stocks[c] = stock
	}
	return economy.NewMarket(prices, sd, stocks)
}

func station(name string, t galaxy.StationType, pos galaxy.Position, m *economy.Market) *galaxy.Station {
	return &galaxy.Station{Name: name, Type: t, Position: pos, Market: m}
}

func traderShip(p Personality, pos galaxy.Position) *Ship {
	personality := p
	return &Ship{
		ID:            "test",
		Name:          "Test Trader",
		Kind:          KindTrader,
		Position:      pos,
		MaxCargo:      100,
		Credits:       1000,
		Personality:   &personality,
		Preferred:     []economy.Commodity{},
		RiskTolerance: 0.5,
		Patience:      0.5,
	}
}

func pos(qx, qy, sx, sy int) galaxy.Position {
	return galaxy.Position{QuadrantX: qx, QuadrantY: qy, SectorX: sx, SectorY: sy}
}
