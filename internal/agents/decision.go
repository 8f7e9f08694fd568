// Decision policy — personality-driven rules for what to sell and buy at a
// docked station. Every function here is pure: the same ship state, prices,
// and trend always produce the same decision.
package agents

import (
	"fmt"
	"math"

	"github.com/mnky9800n/egatrader/internal/economy"
)

// Trend and patience above which a trader holds stock in a rising market.
const (
	holdTrend    = 0.1
	holdPatience = 0.7
)

// minSellMargin returns the profit margin over base price a trader requires
// before selling c.
func minSellMargin(p Personality, ship *Ship, c economy.Commodity) float64 {
	switch p {
	case Cautious:
		return 0.05
	case Aggressive:
		return 0.15
	case Opportunist:
		return 0.08
	case Specialist:
		if ship.Prefers(c) {
			return 0.12
		}
		return 0.03
	}
	panic(fmt.Sprintf("agents: no sell margin for %v", p))
}

// ShouldSell decides whether to sell c at sellPrice given the remembered trend.
// Patient traders refuse to sell into a clearly rising market.
func ShouldSell(ship *Ship, p Personality, c economy.Commodity, sellPrice, trend float64) bool {
	base := economy.BasePrice(c)
	margin := (sellPrice - base) / base

	if trend > holdTrend && ship.Patience > holdPatience {
		return false
	}
	return margin >= minSellMargin(p, ship, c)
}

// SellAmount returns how many of held units a trader sells in one visit.
func SellAmount(p Personality, held int) int {
	switch p {
	case Cautious:
		return min(held, 5)
	case Aggressive:
		return min(held, 15)
	case Opportunist, Specialist:
		return min(held, 10)
	}
	panic(fmt.Sprintf("agents: no sell lot for %v", p))
}

// maxBuyRatio returns the highest price/base ratio at which p will buy.
func maxBuyRatio(p Personality) float64 {
	switch p {
	case Cautious:
		return 1.05
	case Aggressive:
		return 1.25
	case Opportunist, Specialist:
		return 1.15
	}
	panic(fmt.Sprintf("agents: no buy ceiling for %v", p))
}

// buyLot returns the personality cap on units bought in one visit.
func buyLot(p Personality, ship *Ship, c economy.Commodity, priceRatio float64) int {
	switch p {
	case Cautious:
		return 5
	case Aggressive:
		return 25
	case Opportunist:
		if priceRatio < 0.9 {
			return 20
		}
		return 10
	case Specialist:
		if ship.Prefers(c) {
			return 30
		}
		return 0
	}
	panic(fmt.Sprintf("agents: no buy lot for %v", p))
}

// BuyAmount decides how many units of c to buy at buyPrice from a station
// holding stock units. Zero means do not buy. Only credits × RiskTolerance
// are committed; the result never exceeds free cargo space or stock.
func BuyAmount(ship *Ship, p Personality, c economy.Commodity, buyPrice float64, stock int) int {
	if buyPrice <= 0 {
		return 0
	}
	ratio := buyPrice / economy.BasePrice(c)
	if ratio > maxBuyRatio(p) {
		return 0
	}
	if p == Specialist && !ship.Prefers(c) {
		return 0
	}

	funds := ship.Credits * ship.RiskTolerance
	affordable := int(math.Floor(funds / buyPrice))

	amount := min(buyLot(p, ship, c, ratio), affordable, ship.CargoSpace(), stock)
	return max(0, amount)
}

// TradeInterval returns the simulated time a trader waits between trading
// sessions. Risk-tolerant traders trade more often.
func TradeInterval(riskTolerance float64) float64 {
	return 2.0 - riskTolerance
}
