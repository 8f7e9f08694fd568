package galaxy

import (
	"fmt"

	"github.com/mnky9800n/egatrader/internal/economy"
)

// StationType classifies a station; it biases the station's market.
type StationType uint8

const (
	TradingPost      StationType = iota // Balanced, mildly randomised prices
	ResearchStation                     // Produces medicine, needs luxuries
	MiningColony                        // Produces minerals, needs food
	ManufacturingHub                    // Produces technology, needs minerals
)

// NumStationTypes is the total number of station types.
const NumStationTypes = 4

// String returns the display name of the station type.
func (t StationType) String() string {
	switch t {
	case TradingPost:
		return "Trading Post"
	case ResearchStation:
		return "Research Station"
	case MiningColony:
		return "Mining Colony"
	case ManufacturingHub:
		return "Manufacturing Hub"
	}
	return fmt.Sprintf("StationType(%d)", uint8(t))
}

// Station is a fixed trading location. Stations are created once at
// generation and only mutate through their Market.
type Station struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Type     StationType     `json:"type"`
	Position Position        `json:"position"`
	Market   *economy.Market `json:"-"`
}
