package engine

import (
	"github.com/mnky9800n/egatrader/internal/agents"
	"github.com/mnky9800n/egatrader/internal/economy"
	"github.com/mnky9800n/egatrader/internal/galaxy"
)

func flatMarket(stock int) *economy.Market {
	var prices, sd [economy.NumCommodities]float64
	var stocks [economy.NumCommodities]int
	for _, c := range economy.AllCommodities {
		prices[c] = economy.BasePrice(c)
		sd[c] = 1
		stocks[c] = stock
	}
	return economy.NewMarket(prices, sd, stocks)
}

func at(qx, qy, sx, sy int) galaxy.Position {
	return galaxy.Position{QuadrantX: qx, QuadrantY: qy, SectorX: sx, SectorY: sy}
}

// testSim builds a two-station galaxy with the player at Q1,1 S3,3.
func testSim() *Simulation {
	stations := []*galaxy.Station{
		{Name: "Alpha Station 1", Type: galaxy.TradingPost, Position: at(1, 1, 3, 4), Market: flatMarket(50)},
		{Name: "Zeta Mining 2", Type: galaxy.MiningColony, Position: at(4, 2, 0, 0), Market: flatMarket(50)},
	}
	player := agents.NewPlayerShip(at(1, 1, 3, 3), 5000, 1000, 100)
	return NewSimulation(galaxy.NewGalaxy(stations), player, nil)
}
