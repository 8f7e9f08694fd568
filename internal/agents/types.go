// Package agents provides ships, trader personalities, and the autonomous
// trading agent: trade memory, trend analysis, buy/sell policy, station
// scoring, and step-wise movement.
package agents

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/mnky9800n/egatrader/internal/economy"
	"github.com/mnky9800n/egatrader/internal/galaxy"
)

// ShipKind classifies a ship.
type ShipKind uint8

const (
	KindPlayer    ShipKind = iota // Human-controlled
	KindTrader                    // Autonomous trader
	KindFreighter                 // Reserved: bulk hauler
	KindPirate                    // Reserved: hostile
)

// String returns the display name of the ship kind.
func (k ShipKind) String() string {
	switch k {
	case KindPlayer:
		return "Player Ship"
	case KindTrader:
		return "AI Trader"
	case KindFreighter:
		return "AI Freighter"
	case KindPirate:
		return "Pirate"
	}
	return fmt.Sprintf("ShipKind(%d)", uint8(k))
}

// Personality is the fixed behavioural variant of an autonomous trader.
type Personality uint8

const (
	Cautious    Personality = iota // Small lots, tight buy ceilings
	Aggressive                     // Large lots, demands big margins
	Opportunist                    // Buys heavily into dips, takes detours
	Specialist                     // Trades only its preferred commodities
)

// NumPersonalities is the total number of personality variants.
const NumPersonalities = 4

// String returns the display name of the personality.
func (p Personality) String() string {
	switch p {
	case Cautious:
		return "Cautious"
	case Aggressive:
		return "Aggressive"
	case Opportunist:
		return "Opportunist"
	case Specialist:
		return "Specialist"
	}
	return fmt.Sprintf("Personality(%d)", uint8(p))
}

// Systems holds ship subsystem efficiencies (0–100).
type Systems struct {
	Engines         int `json:"engines"`
	LifeSupport     int `json:"life_support"`
	CargoBay        int `json:"cargo_bay"`
	TradingComputer int `json:"trading_computer"`
	Shields         int `json:"shields"`
}

// Ship is a vessel in the galaxy, either player-controlled or autonomous.
type Ship struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Kind ShipKind `json:"kind"`

	// Location
	Position    galaxy.Position  `json:"position"`
	Destination *galaxy.Position `json:"destination,omitempty"` // nil = idle

	// Resources
	Energy     int           `json:"energy"`
	MaxEnergy  int           `json:"max_energy"`
	Cargo      economy.Cargo `json:"cargo"`
	MaxCargo   int           `json:"max_cargo"`
	Credits    float64       `json:"credits"`
	WarpFactor float64       `json:"warp_factor"`
	MaxWarp    float64       `json:"max_warp"`
	Systems    Systems       `json:"systems"`

	// Autonomous behaviour. Personality is nil for the player.
	Personality   *Personality        `json:"personality,omitempty"`
	Preferred     []economy.Commodity `json:"preferred,omitempty"` // Non-empty only for specialists
	RiskTolerance float64             `json:"risk_tolerance"`      // 0.0–1.0
	Patience      float64             `json:"patience"`            // 0.0–1.0
	LastTradeTime float64             `json:"last_trade_time"`
}

// NewPlayerShip creates the player's starting vessel at pos.
func NewPlayerShip(pos galaxy.Position, credits float64, energy, maxCargo int) *Ship {
	return &Ship{
		ID:            uuid.NewString(),
		Name:          "Merchant Vessel",
		Kind:          KindPlayer,
		Position:      pos,
		Energy:        energy,
		MaxEnergy:     energy,
		MaxCargo:      maxCargo,
		Credits:       credits,
		WarpFactor:    1.0,
		MaxWarp:       6.0,
		Systems:       Systems{Engines: 100, LifeSupport: 100, CargoBay: 100, TradingComputer: 100, Shields: 100},
		Preferred:     []economy.Commodity{},
		RiskTolerance: 0.5,
		Patience:      0.5,
	}
}

// TotalCargo returns the number of units aboard.
func (s *Ship) TotalCargo() int {
	return s.Cargo.Total()
}

// CargoSpace returns the number of free cargo units.
func (s *Ship) CargoSpace() int {
	return max(0, s.MaxCargo-s.Cargo.Total())
}

// Prefers reports whether c is in the ship's preferred set.
func (s *Ship) Prefers(c economy.Commodity) bool {
	for _, p := range s.Preferred {
		if p == c {
			return true
		}
	}
	return false
}

// Rand is the random source agents draw from. *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}
