// Trader spawning — creates autonomous ships with personality-driven traits.
package agents

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/mnky9800n/egatrader/internal/economy"
	"github.com/mnky9800n/egatrader/internal/galaxy"
)

// traitRanges bounds the random rolls for one personality.
type traitRanges struct {
	risk       [2]float64
	patience   [2]float64
	credits    [2]float64
	cargo      [2]int
	namePrefix string
}

func traitsFor(p Personality) traitRanges {
	switch p {
	case Cautious:
		return traitRanges{[2]float64{0.2, 0.4}, [2]float64{0.6, 0.9}, [2]float64{3000, 6000}, [2]int{60, 80}, "Careful"}
	case Aggressive:
		return traitRanges{[2]float64{0.7, 0.9}, [2]float64{0.1, 0.4}, [2]float64{1500, 4000}, [2]int{80, 120}, "Bold"}
	case Opportunist:
		return traitRanges{[2]float64{0.5, 0.7}, [2]float64{0.3, 0.6}, [2]float64{2500, 7000}, [2]int{70, 100}, "Swift"}
	case Specialist:
		return traitRanges{[2]float64{0.4, 0.6}, [2]float64{0.5, 0.8}, [2]float64{2000, 5000}, [2]int{50, 90}, "Expert"}
	}
	panic(fmt.Sprintf("agents: no traits for %v", p))
}

// Spawner creates autonomous trader ships.
type Spawner struct {
	rng    *rand.Rand
	nextID int
}

// NewSpawner creates a trader spawner with the given seed.
func NewSpawner(seed int64) *Spawner {
	return &Spawner{
		rng:    rand.New(rand.NewSource(seed + 300)),
		nextID: 1,
	}
}

// Rand exposes the spawner's random source so traders built from the same
// seed share one reproducible stream.
func (s *Spawner) Rand() *rand.Rand {
	return s.rng
}

// SpawnTraders creates count trader ships at random positions. Ship IDs are
// drawn from the spawner's source, so a seed reproduces them too.
func (s *Spawner) SpawnTraders(count int) []*Ship {
	ships := make([]*Ship, 0, count)
	for i := 0; i < count; i++ {
		ships = append(ships, s.spawnOne())
	}
	return ships
}

func (s *Spawner) spawnOne() *Ship {
	n := s.nextID
	s.nextID++
	id := uuid.Must(uuid.NewRandomFromReader(s.rng))

	pos := galaxy.Position{
		QuadrantX: s.rng.Intn(galaxy.GridSize),
		QuadrantY: s.rng.Intn(galaxy.GridSize),
		SectorX:   s.rng.Intn(galaxy.GridSize),
		SectorY:   s.rng.Intn(galaxy.GridSize),
	}

	p := Personality(s.rng.Intn(NumPersonalities))
	tr := traitsFor(p)

	risk := s.uniform(tr.risk)
	patience := s.uniform(tr.patience)
	credits := s.uniform(tr.credits)
	maxCargo := tr.cargo[0] + s.rng.Intn(tr.cargo[1]-tr.cargo[0]+1)

	// Specialists pick 1–2 commodities; everyone else gets a fresh empty list.
	preferred := []economy.Commodity{}
	if p == Specialist {
		k := 1 + s.rng.Intn(2)
		for _, idx := range s.rng.Perm(economy.NumCommodities)[:k] {
			preferred = append(preferred, economy.Commodity(idx))
		}
	}

	var cargo economy.Cargo
	for _, c := range economy.AllCommodities {
		cargo[c] = s.rng.Intn(4)
	}

	personality := p
	return &Ship{
		ID:         id.String(),
		Name:       fmt.Sprintf("%s Trader %d", tr.namePrefix, n),
		Kind:       KindTrader,
		Position:   pos,
		Energy:     800,
		MaxEnergy:  800,
		Cargo:      cargo,
		MaxCargo:   maxCargo,
		Credits:    credits,
		WarpFactor: s.uniform([2]float64{2.0, 4.0}),
		MaxWarp:    5.0,
		Systems: Systems{
			Engines:         80 + s.rng.Intn(21),
			LifeSupport:     100,
			CargoBay:        100,
			TradingComputer: 70 + s.rng.Intn(31),
			Shields:         60 + s.rng.Intn(31),
		},
		Personality:   &personality,
		Preferred:     preferred,
		RiskTolerance: risk,
		Patience:      patience,
	}
}

func (s *Spawner) uniform(r [2]float64) float64 {
	return r[0] + s.rng.Float64()*(r[1]-r[0])
}
