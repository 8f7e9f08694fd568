package galaxy

import (
	"fmt"
	"math/rand"

	"github.com/mnky9800n/egatrader/internal/economy"
)

// stockRange is an inclusive [lo, hi] range for initial stock rolls.
type stockRange struct{ lo, hi int }

// marketProfile describes what a station type produces and needs.
type marketProfile struct {
	supplyDemand [economy.NumCommodities]float64
	stock        [economy.NumCommodities]stockRange
}

// profileFor returns the market bias for a station type. Trading posts have
// no fixed profile; their multipliers are rolled per station.
func profileFor(t StationType) (marketProfile, bool) {
	switch t {
	case MiningColony:
		return marketProfile{
			//                Food Minerals Tech Medicine Luxuries Fuel
			supplyDemand: [economy.NumCommodities]float64{1.5, 0.7, 1.3, 1.2, 1.1, 0.9},
			stock: [economy.NumCommodities]stockRange{
				{5, 20}, {50, 200}, {10, 30}, {10, 25}, {5, 15}, {30, 80},
			},
		}, true
	case ManufacturingHub:
		return marketProfile{
			supplyDemand: [economy.NumCommodities]float64{1.1, 1.4, 0.8, 1.0, 0.9, 1.1},
			stock: [economy.NumCommodities]stockRange{
				{20, 60}, {10, 30}, {40, 120}, {15, 40}, {20, 80}, {20, 50},
			},
		}, true
	case ResearchStation:
		return marketProfile{
			supplyDemand: [economy.NumCommodities]float64{1.3, 1.2, 0.9, 0.8, 1.4, 1.2},
			stock: [economy.NumCommodities]stockRange{
				{10, 30}, {5, 20}, {20, 60}, {40, 100}, {5, 15}, {15, 40},
			},
		}, true
	case TradingPost:
		return marketProfile{}, false
	}
	panic(fmt.Sprintf("galaxy: no market profile for %v", t))
}

// GenerateMarket rolls the initial market of a station of the given type.
// Price = base × supply/demand multiplier × ±10% variance.
func GenerateMarket(t StationType, rng *rand.Rand) *economy.Market {
	var prices, sd [economy.NumCommodities]float64
	var stock [economy.NumCommodities]int

	profile, fixed := profileFor(t)
	if fixed {
		sd = profile.supplyDemand
		for _, c := range economy.AllCommodities {
			r := profile.stock[c]
			stock[c] = r.lo + rng.Intn(r.hi-r.lo+1)
		}
	} else {
		for _, c := range economy.AllCommodities {
			sd[c] = uniform(rng, 0.9, 1.1)
		}
		for _, c := range economy.AllCommodities {
			stock[c] = 20 + rng.Intn(61)
		}
	}

	for _, c := range economy.AllCommodities {
		variance := uniform(rng, 0.9, 1.1)
		prices[c] = economy.BasePrice(c) * sd[c] * variance
	}

	return economy.NewMarket(prices, sd, stock)
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
