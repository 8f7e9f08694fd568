// Autonomous trader — runs memory, trend analysis, trading, destination
// planning, and movement once per simulation tick for one ship.
package agents

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/mnky9800n/egatrader/internal/economy"
	"github.com/mnky9800n/egatrader/internal/galaxy"
)

// MaxProfitHistory is the number of recent trading-session profits kept.
const MaxProfitHistory = 10

// ErrNoPersonality is returned when a trader is built from a ship that has
// no personality assigned.
var ErrNoPersonality = errors.New("ship has no personality")

// StationDirectory is the view of the galaxy a trader needs.
type StationDirectory interface {
	StationList() []*galaxy.Station
	StationAt(pos galaxy.Position) *galaxy.Station
}

// Side is the direction of a trade from the ship's point of view.
type Side uint8

const (
	SideBuy Side = iota
	SideSell
)

// String returns "buy" or "sell".
func (s Side) String() string {
	if s == SideSell {
		return "sell"
	}
	return "buy"
}

// Trade records one executed trade.
type Trade struct {
	Time      float64           `json:"time"`
	ShipID    string            `json:"ship_id"`
	ShipName  string            `json:"ship_name"`
	Station   string            `json:"station"`
	Commodity economy.Commodity `json:"commodity"`
	Side      Side              `json:"side"`
	Quantity  int               `json:"quantity"`
	Price     float64           `json:"price"` // Unit price before the trade moved the market
}

// Trader drives one autonomous ship. A Trader is the only writer of its
// ship and memory; markets are shared with every other trader and the player.
type Trader struct {
	ship        *Ship
	personality Personality
	world       StationDirectory
	rng         Rand

	memory       *TradeMemory
	trends       Trends
	lastAnalysis float64
	profits      []float64

	// OnTrade, if set, is called after every executed trade.
	OnTrade func(Trade)
}

// NewTrader creates a trader for ship. The ship must carry a personality.
func NewTrader(ship *Ship, world StationDirectory, rng Rand) (*Trader, error) {
	if ship.Personality == nil {
		return nil, fmt.Errorf("new trader %q: %w", ship.Name, ErrNoPersonality)
	}
	return &Trader{
		ship:        ship,
		personality: *ship.Personality,
		world:       world,
		rng:         rng,
		memory:      NewTradeMemory(),
		profits:     make([]float64, 0, MaxProfitHistory),
	}, nil
}

// Update advances the trader by one tick at simulated time now.
func (t *Trader) Update(now float64) {
	station := t.world.StationAt(t.ship.Position)

	if station != nil {
		t.memory.Record(station.Position.Quadrant(), station.Market.Prices(), now)
	}

	if now-t.lastAnalysis > TrendInterval {
		t.trends = AnalyzeTrends(t.memory, t.trends)
		t.lastAnalysis = now
	}

	if station != nil {
		t.tradeAtStation(station, now)
	}

	t.planMovement()
	t.move()
}

// tradeAtStation sells cargo that clears the personality's margin, then buys
// what the policy allows. The session is stamped even if nothing traded.
func (t *Trader) tradeAtStation(station *galaxy.Station, now float64) {
	s := t.ship
	if now-s.LastTradeTime < TradeInterval(s.RiskTolerance) {
		return
	}

	market := station.Market
	profit := 0.0

	for _, c := range economy.AllCommodities {
		held := s.Cargo[c]
		if held <= 0 {
			continue
		}
		price := market.Price(c)
		if !ShouldSell(s, t.personality, c, price, t.trends[c]) {
			continue
		}
		amount := SellAmount(t.personality, held)
		s.Cargo[c] -= amount
		s.Credits += float64(amount) * price
		profit += float64(amount) * (price - economy.BasePrice(c))
		market.AdjustPrice(c, amount)
		t.emit(station, c, SideSell, amount, price, now)
	}

	for _, c := range economy.AllCommodities {
		price := market.Price(c)
		amount := BuyAmount(s, t.personality, c, price, market.Stock(c))
		if amount <= 0 {
			continue
		}
		s.Cargo[c] += amount
		s.Credits -= float64(amount) * price
		market.AdjustPrice(c, -amount)
		t.emit(station, c, SideBuy, amount, price, now)
	}

	if profit != 0 {
		t.profits = append(t.profits, profit)
		if len(t.profits) > MaxProfitHistory {
			t.profits = t.profits[1:]
		}
	}

	s.LastTradeTime = now
}

func (t *Trader) emit(station *galaxy.Station, c economy.Commodity, side Side, qty int, price, now float64) {
	slog.Debug("trader trade",
		"ship", t.ship.Name,
		"station", station.Name,
		"side", side.String(),
		"commodity", c.String(),
		"qty", qty,
		"price", price,
	)
	if t.OnTrade != nil {
		t.OnTrade(Trade{
			Time:      now,
			ShipID:    t.ship.ID,
			ShipName:  t.ship.Name,
			Station:   station.Name,
			Commodity: c,
			Side:      side,
			Quantity:  qty,
			Price:     price,
		})
	}
}

// planMovement picks a destination when idle, and occasionally re-plans
// while en route. Risk-tolerant traders change their minds more often.
func (t *Trader) planMovement() {
	s := t.ship
	if s.Destination != nil && t.rng.Float64() >= 0.05+s.RiskTolerance*0.15 {
		return
	}
	if best := ChooseDestination(s, t.personality, t.world.StationList()); best != nil {
		dest := best.Position
		s.Destination = &dest
	}
}

// move takes one step toward the destination. Opportunists sometimes detour
// to a nearby high-value station for this step only; the stored destination
// is kept. Reaching the destination clears it.
func (t *Trader) move() {
	s := t.ship
	if s.Destination == nil {
		return
	}

	dest := *s.Destination
	if t.personality == Opportunist && t.rng.Float64() < detourChance {
		if st := findDetour(s, t.personality, t.world.StationList()); st != nil {
			dest = st.Position
		}
	}

	next, arrived := Step(s.Position, dest)
	if arrived {
		s.Destination = nil
		return
	}
	s.Position = next
}

// Ship returns the trader's ship. Callers must treat it as read-only.
func (t *Trader) Ship() *Ship { return t.ship }

// Position returns the ship's current position.
func (t *Trader) Position() galaxy.Position { return t.ship.Position }

// Cargo returns a copy of the ship's cargo.
func (t *Trader) Cargo() economy.Cargo { return t.ship.Cargo }

// Credits returns the ship's credits.
func (t *Trader) Credits() float64 { return t.ship.Credits }

// Personality returns the trader's personality.
func (t *Trader) Personality() Personality { return t.personality }

// Trends returns the latest trend estimates.
func (t *Trader) Trends() Trends { return t.trends }

// Memory returns the trader's trade memory.
func (t *Trader) Memory() *TradeMemory { return t.memory }

// ProfitHistory returns a copy of the recent session profits, oldest first.
func (t *Trader) ProfitHistory() []float64 {
	out := make([]float64, len(t.profits))
	copy(out, t.profits)
	return out
}
