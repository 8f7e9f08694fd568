// Player commands — movement, docking, scanning, and trading for the
// player's ship. A failed command returns an error and changes nothing.
package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/mnky9800n/egatrader/internal/agents"
	"github.com/mnky9800n/egatrader/internal/economy"
	"github.com/mnky9800n/egatrader/internal/galaxy"
)

// QuadrantMoveCost is the energy per quadrant crossed; each sector crossed
// costs 1.
const QuadrantMoveCost = 100

var (
	ErrNotDocked          = errors.New("no station at current location")
	ErrInsufficientEnergy = errors.New("insufficient energy")
	ErrInvalidQuantity    = errors.New("invalid quantity")
	ErrOutOfRange         = errors.New("coordinates must be between 0 and 7")
	ErrNoStationInRange   = errors.New("no stations within docking range")
	ErrNothingToSell      = errors.New("no goods to sell")
)

// MoveCost returns the energy needed to jump from one position to another:
// 100 per quadrant plus 1 per sector, both Manhattan.
func MoveCost(from, to galaxy.Position) int {
	q := abs(to.QuadrantX-from.QuadrantX) + abs(to.QuadrantY-from.QuadrantY)
	sec := abs(to.SectorX-from.SectorX) + abs(to.SectorY-from.SectorY)
	return q*QuadrantMoveCost + sec
}

// MoveTo jumps the player to pos and returns the energy spent.
func (s *Simulation) MoveTo(pos galaxy.Position) (int, error) {
	if !pos.Valid() {
		return 0, ErrOutOfRange
	}
	ship := s.Player
	cost := MoveCost(ship.Position, pos)
	if ship.Energy < cost {
		return 0, fmt.Errorf("need %d, have %d: %w", cost, ship.Energy, ErrInsufficientEnergy)
	}
	ship.Position = pos
	ship.Energy -= cost
	s.AddEvent("player", fmt.Sprintf("%s moved to %s", ship.Name, pos))
	return cost, nil
}

// MoveSector moves the player within the current quadrant.
func (s *Simulation) MoveSector(sx, sy int) (int, error) {
	pos := s.Player.Position
	pos.SectorX, pos.SectorY = sx, sy
	return s.MoveTo(pos)
}

// Dock moves the player onto the nearest station in the same quadrant at
// most one sector away. If the player is already at a station it is
// returned with docked set to false.
func (s *Simulation) Dock() (st *galaxy.Station, docked bool, err error) {
	if cur := s.CurrentStation(); cur != nil {
		return cur, false, nil
	}

	ship := s.Player
	best, bestDist := (*galaxy.Station)(nil), math.MaxInt
	for _, cand := range s.Galaxy.StationList() {
		if cand.Position.Quadrant() != ship.Position.Quadrant() {
			continue
		}
		d := abs(cand.Position.SectorX-ship.Position.SectorX) + abs(cand.Position.SectorY-ship.Position.SectorY)
		if d <= 1 && d < bestDist {
			best, bestDist = cand, d
		}
	}
	if best == nil {
		return nil, false, ErrNoStationInRange
	}

	ship.Position = best.Position
	s.AddEvent("player", fmt.Sprintf("%s docked at %s", ship.Name, best.Name))
	return best, true, nil
}

// MarketAt returns the station the player is docked at.
func (s *Simulation) MarketAt() (*galaxy.Station, error) {
	st := s.CurrentStation()
	if st == nil {
		return nil, ErrNotDocked
	}
	return st, nil
}

// MaxBuy returns the most units of c the player can buy here: limited by
// credits, free cargo space, and station stock.
func (s *Simulation) MaxBuy(c economy.Commodity) (int, error) {
	st, err := s.MarketAt()
	if err != nil {
		return 0, err
	}
	return maxBuy(s.Player, st, c), nil
}

func maxBuy(ship *agents.Ship, st *galaxy.Station, c economy.Commodity) int {
	price := st.Market.Price(c)
	affordable := 0
	if price > 0 {
		affordable = int(ship.Credits / price)
	}
	return max(0, min(affordable, ship.CargoSpace(), st.Market.Stock(c)))
}

// Buy purchases qty units of c at the current station price and returns the
// executed trade.
func (s *Simulation) Buy(c economy.Commodity, qty int) (agents.Trade, error) {
	st, err := s.MarketAt()
	if err != nil {
		return agents.Trade{}, err
	}
	limit := maxBuy(s.Player, st, c)
	if qty <= 0 || qty > limit {
		return agents.Trade{}, fmt.Errorf("buy %d %s (max %d): %w", qty, c, limit, ErrInvalidQuantity)
	}

	price := st.Market.Price(c)
	s.Player.Cargo[c] += qty
	s.Player.Credits -= float64(qty) * price
	st.Market.AdjustPrice(c, -qty)

	return s.playerTrade(st, c, agents.SideBuy, qty, price), nil
}

// Sell sells qty units of c from the player's hold at the current station
// price and returns the executed trade.
func (s *Simulation) Sell(c economy.Commodity, qty int) (agents.Trade, error) {
	st, err := s.MarketAt()
	if err != nil {
		return agents.Trade{}, err
	}
	held := s.Player.Cargo[c]
	if held <= 0 {
		return agents.Trade{}, fmt.Errorf("sell %s: %w", c, ErrNothingToSell)
	}
	if qty <= 0 || qty > held {
		return agents.Trade{}, fmt.Errorf("sell %d %s (max %d): %w", qty, c, held, ErrInvalidQuantity)
	}

	price := st.Market.Price(c)
	s.Player.Cargo[c] -= qty
	s.Player.Credits += float64(qty) * price
	st.Market.AdjustPrice(c, qty)

	return s.playerTrade(st, c, agents.SideSell, qty, price), nil
}

func (s *Simulation) playerTrade(st *galaxy.Station, c economy.Commodity, side agents.Side, qty int, price float64) agents.Trade {
	t := agents.Trade{
		Time:      s.Stardate,
		ShipID:    s.Player.ID,
		ShipName:  s.Player.Name,
		Station:   st.Name,
		Commodity: c,
		Side:      side,
		Quantity:  qty,
		Price:     price,
	}
	s.recordTrade(t)
	return t
}

// Contact is a station or ship found by a scan.
type Contact struct {
	Station  *galaxy.Station
	Ship     *agents.Ship
	Distance float64
}

// ScanResult describes the player's current quadrant.
type ScanResult struct {
	Quadrant galaxy.Quadrant
	Stations []Contact
	Ships    []Contact
	Planets  int
}

// Scan reports the stations, autonomous ships, and planets in the player's
// quadrant.
func (s *Simulation) Scan() ScanResult {
	pos := s.Player.Position
	q := pos.Quadrant()
	res := ScanResult{Quadrant: q}

	if info := s.Galaxy.Quadrant(q); info != nil {
		for _, st := range info.Stations {
			res.Stations = append(res.Stations, Contact{Station: st, Distance: pos.DistanceTo(st.Position)})
		}
		res.Planets = len(info.Planets)
	}
	for _, sh := range s.ShipsInQuadrant(q) {
		res.Ships = append(res.Ships, Contact{Ship: sh, Distance: pos.DistanceTo(sh.Position)})
	}
	return res
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
