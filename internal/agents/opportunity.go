// Opportunity scoring — ranks stations by expected profit for one trader.
package agents

import (
	"fmt"

	"github.com/mnky9800n/egatrader/internal/economy"
	"github.com/mnky9800n/egatrader/internal/galaxy"
)

const (
	// arbitrageMargin is how far another station's price must exceed a
	// station's price before buying there counts as an opportunity.
	arbitrageMargin = 1.1
	// notionalLot is the trade size assumed when valuing an arbitrage.
	notionalLot = 10
	// specialistAffinity multiplies the score of stations matching a
	// specialist's preferred goods.
	specialistAffinity = 1.5
)

// affinityCommodity returns the commodity a station type attracts
// specialists with, if any.
func affinityCommodity(t galaxy.StationType) (economy.Commodity, bool) {
	switch t {
	case galaxy.MiningColony:
		return economy.Minerals, true
	case galaxy.ResearchStation:
		return economy.Medicine, true
	case galaxy.TradingPost, galaxy.ManufacturingHub:
		return 0, false
	}
	panic(fmt.Sprintf("agents: no affinity rule for %v", t))
}

// EvaluateStation scores how attractive station is to a trader: potential
// sale value of the cargo aboard, plus arbitrage from buying here and
// selling at the best other station, minus a patience-weighted distance
// penalty. Specialists weight stations matching their goods by 1.5.
func EvaluateStation(ship *Ship, p Personality, station *galaxy.Station, stations []*galaxy.Station) float64 {
	score := 0.0

	for _, c := range economy.AllCommodities {
		qty := ship.Cargo[c]
		if qty > 0 {
			score += float64(qty) * (station.Market.Price(c) - economy.BasePrice(c))
		}
	}

	for _, c := range economy.AllCommodities {
		buyPrice := station.Market.Price(c)
		best := 0.0
		for _, other := range stations {
			if other == station {
				continue
			}
			best = max(best, other.Market.Price(c))
		}
		if best > buyPrice*arbitrageMargin {
			score += (best - buyPrice) * notionalLot
		}
	}

	score -= ship.Position.DistanceTo(station.Position) * (1.0 - ship.Patience)

	if p == Specialist {
		if c, ok := affinityCommodity(station.Type); ok && ship.Prefers(c) {
			score *= specialistAffinity
		}
	}

	return score
}

// ChooseDestination returns the highest-scoring station other than the one
// at the ship's position. Only strictly positive scores qualify and ties
// keep the earlier station. Returns nil when nothing scores above zero.
func ChooseDestination(ship *Ship, p Personality, stations []*galaxy.Station) *galaxy.Station {
	var best *galaxy.Station
	bestScore := 0.0
	for _, st := range stations {
		if st.Position == ship.Position {
			continue
		}
		score := EvaluateStation(ship, p, st, stations)
		if score > bestScore {
			bestScore = score
			best = st
		}
	}
	return best
}
