// Game setup — builds a galaxy, its traders, and the player's ship from a
// seed. The same seed always yields the same galaxy and traders.
package engine

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/google/uuid"

	"github.com/mnky9800n/egatrader/internal/agents"
	"github.com/mnky9800n/egatrader/internal/galaxy"
)

// PlayerStart holds the player's starting resources.
type PlayerStart struct {
	Credits  float64
	Energy   int
	MaxCargo int
}

// DefaultPlayerStart returns the standard starting ship.
func DefaultPlayerStart() PlayerStart {
	return PlayerStart{Credits: 5000, Energy: 1000, MaxCargo: 100}
}

// NewWorld generates the galaxy and its traders from seed and wraps them in
// a Simulation. The player ship is nil; use NewGame or set Player directly.
func NewWorld(seed int64) (*Simulation, error) {
	cfg := galaxy.DefaultGenConfig()
	cfg.Seed = seed
	g := galaxy.Generate(cfg)

	spawner := agents.NewSpawner(g.Seed)
	ships := spawner.SpawnTraders(len(g.Stations) / 2)

	traders := make([]*agents.Trader, 0, len(ships))
	for _, sh := range ships {
		t, err := agents.NewTrader(sh, g, spawner.Rand())
		if err != nil {
			return nil, fmt.Errorf("spawn traders: %w", err)
		}
		traders = append(traders, t)
	}

	slog.Info("galaxy generated",
		"seed", g.Seed,
		"stations", len(g.Stations),
		"traders", len(traders),
	)
	return NewSimulation(g, nil, traders), nil
}

// NewGame generates a world and places a fresh player ship in the quadrant
// of a random station. The player's ID comes from the same seeded source.
func NewGame(seed int64, start PlayerStart) (*Simulation, error) {
	sim, err := NewWorld(seed)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(sim.Galaxy.Seed + 500))
	sim.Player = agents.NewPlayerShip(startPosition(sim.Galaxy, rng), start.Credits, start.Energy, start.MaxCargo)
	sim.Player.ID = uuid.Must(uuid.NewRandomFromReader(rng)).String()
	return sim, nil
}

func startPosition(g *galaxy.Galaxy, rng *rand.Rand) galaxy.Position {
	if len(g.Stations) == 0 {
		return galaxy.Position{
			QuadrantX: rng.Intn(galaxy.GridSize), QuadrantY: rng.Intn(galaxy.GridSize),
			SectorX: rng.Intn(galaxy.GridSize), SectorY: rng.Intn(galaxy.GridSize),
		}
	}
	st := g.Stations[rng.Intn(len(g.Stations))]
	return galaxy.Position{
		QuadrantX: st.Position.QuadrantX, QuadrantY: st.Position.QuadrantY,
		SectorX: rng.Intn(galaxy.GridSize), SectorY: rng.Intn(galaxy.GridSize),
	}
}
