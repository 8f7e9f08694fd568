// Simulation ties the galaxy, the player ship, and the autonomous traders
// together and runs them on the engine's schedule.
package engine

import (
	"fmt"
	"log/slog"

	"github.com/mnky9800n/egatrader/internal/agents"
	"github.com/mnky9800n/egatrader/internal/economy"
	"github.com/mnky9800n/egatrader/internal/galaxy"
)

// MaxEvents bounds the in-memory event log.
const MaxEvents = 1000

// Simulation holds the complete game state.
type Simulation struct {
	Galaxy  *galaxy.Galaxy
	Player  *agents.Ship
	Traders []*agents.Trader // Stable spawn order; earlier traders move first
	Events  []Event          // Most recent events, oldest first

	Turn     uint64  // Most recent turn processed
	Stardate float64 // Simulated time of the most recent turn

	Stats SimStats

	// OnTrade, if set, is called for every trade by the player or a trader.
	OnTrade func(agents.Trade)

	pending []agents.Trade // Trades not yet handed to storage
}

// Event is a notable occurrence in the galaxy.
type Event struct {
	Turn        uint64  `json:"turn"`
	Stardate    float64 `json:"stardate"`
	Description string  `json:"description"`
	Category    string  `json:"category"` // "trade", "player", "system"
}

// SimStats tracks aggregate economy statistics.
type SimStats struct {
	Traders      int     `json:"traders"`
	TraderWealth float64 `json:"trader_wealth"`
	TraderCargo  int     `json:"trader_cargo"`
	Trades       int     `json:"trades"`
	UnitsTraded  int     `json:"units_traded"`
	AIUpdates    int     `json:"ai_updates"`
}

// NewSimulation creates a Simulation. Every trader's trade hook is routed
// through the simulation's event log.
func NewSimulation(g *galaxy.Galaxy, player *agents.Ship, traders []*agents.Trader) *Simulation {
	s := &Simulation{
		Galaxy:  g,
		Player:  player,
		Traders: traders,
	}
	for _, t := range traders {
		t.OnTrade = s.recordTrade
	}
	s.updateStats()
	return s
}

// Attach wires the simulation into an engine's callbacks.
func (s *Simulation) Attach(e *Engine) {
	e.OnTurn = s.TickTurn
	e.OnAIUpdate = s.UpdateTraders
	e.OnReport = s.TickReport
}

// TickTurn records the clock after every processed turn.
func (s *Simulation) TickTurn(turn uint64, stardate float64) {
	s.Turn = turn
	s.Stardate = stardate
}

// UpdateTraders runs one update of every trader, in spawn order.
func (s *Simulation) UpdateTraders(turn uint64, stardate float64) {
	for _, t := range s.Traders {
		t.Update(stardate)
	}
	s.Stats.AIUpdates++
	slog.Debug("traders updated", "turn", turn, "stardate", FormatStardate(stardate), "traders", len(s.Traders))
}

// TickReport logs a summary of the economy.
func (s *Simulation) TickReport(turn uint64, stardate float64) {
	s.updateStats()
	avg := s.AveragePrices()

	attrs := []any{
		"turn", turn,
		"stardate", FormatStardate(stardate),
		"traders", s.Stats.Traders,
		"trader_wealth", fmt.Sprintf("%.0f", s.Stats.TraderWealth),
		"trader_cargo", s.Stats.TraderCargo,
		"trades", s.Stats.Trades,
		"units", s.Stats.UnitsTraded,
	}
	for _, c := range economy.AllCommodities {
		attrs = append(attrs, "avg_"+c.String(), fmt.Sprintf("%.2f", avg[c]))
	}
	slog.Info("market report", attrs...)
}

// AveragePrices returns the mean price of each commodity across all stations.
func (s *Simulation) AveragePrices() [economy.NumCommodities]float64 {
	var sum [economy.NumCommodities]float64
	stations := s.Galaxy.StationList()
	if len(stations) == 0 {
		return sum
	}
	for _, st := range stations {
		prices := st.Market.Prices()
		for _, c := range economy.AllCommodities {
			sum[c] += prices[c]
		}
	}
	for _, c := range economy.AllCommodities {
		sum[c] /= float64(len(stations))
	}
	return sum
}

// ShipsInQuadrant returns the autonomous ships currently in quadrant q, in
// spawn order.
func (s *Simulation) ShipsInQuadrant(q galaxy.Quadrant) []*agents.Ship {
	var ships []*agents.Ship
	for _, t := range s.Traders {
		if t.Position().Quadrant() == q {
			ships = append(ships, t.Ship())
		}
	}
	return ships
}

// CurrentStation returns the station at the player's position, or nil.
func (s *Simulation) CurrentStation() *galaxy.Station {
	return s.Galaxy.StationAt(s.Player.Position)
}

// DrainTrades returns the trades recorded since the last call and clears
// the buffer.
func (s *Simulation) DrainTrades() []agents.Trade {
	out := s.pending
	s.pending = nil
	return out
}

// AddEvent appends an event, keeping only the most recent MaxEvents.
func (s *Simulation) AddEvent(category, description string) {
	s.Events = append(s.Events, Event{
		Turn:        s.Turn,
		Stardate:    s.Stardate,
		Description: description,
		Category:    category,
	})
	if len(s.Events) > MaxEvents {
		s.Events = s.Events[len(s.Events)-MaxEvents:]
	}
}

func (s *Simulation) recordTrade(t agents.Trade) {
	verb := "bought"
	if t.Side == agents.SideSell {
		verb = "sold"
	}
	s.AddEvent("trade", fmt.Sprintf("%s %s %d %s at %s for %.2f",
		t.ShipName, verb, t.Quantity, t.Commodity, t.Station, t.Price))

	s.Stats.Trades++
	s.Stats.UnitsTraded += t.Quantity
	s.pending = append(s.pending, t)
	if len(s.pending) > MaxEvents {
		s.pending = s.pending[len(s.pending)-MaxEvents:]
	}

	if s.OnTrade != nil {
		s.OnTrade(t)
	}
}

func (s *Simulation) updateStats() {
	wealth := 0.0
	cargo := 0
	for _, t := range s.Traders {
		wealth += t.Credits()
		cargo += t.Cargo().Total()
	}
	s.Stats.Traders = len(s.Traders)
	s.Stats.TraderWealth = wealth
	s.Stats.TraderCargo = cargo
}
