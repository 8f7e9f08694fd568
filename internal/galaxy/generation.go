// Galaxy generation. A seeded opensimplex field sets how crowded each
// quadrant is; the station rolls, sector placement, and markets come from a
// seeded math/rand source so the same seed always yields the same galaxy.
package galaxy

import (
	"fmt"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// GenConfig holds galaxy generation parameters.
type GenConfig struct {
	Seed          int64   // Random seed (0 = random)
	StationChance float64 // Mean chance of a station per quadrant
	DensityScale  float64 // Noise frequency across quadrants
	MaxPlanets    int     // Planets per quadrant are rolled in [0, MaxPlanets]
}

// DefaultGenConfig returns the standard 8×8 galaxy configuration.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Seed:          42,
		StationChance: 0.4,
		DensityScale:  0.35,
		MaxPlanets:    2,
	}
}

// QuadrantInfo is what a scan of one quadrant reveals.
type QuadrantInfo struct {
	Quadrant Quadrant
	Stations []*Station
	Planets  []Position
	Density  float64 // Noise density in [0, 1] that biased station placement
}

// Galaxy holds every station and quadrant. Stations never change after
// generation; only their markets do.
type Galaxy struct {
	Seed      int64
	Stations  []*Station
	Quadrants map[Quadrant]*QuadrantInfo
}

var stationNames = []string{
	"Alpha Station", "Beta Outpost", "Gamma Trading Post", "Delta Colony",
	"Epsilon Research", "Zeta Mining", "Eta Manufacturing", "Theta Hub",
}

// Generate creates a galaxy with stations and markets.
func Generate(cfg GenConfig) *Galaxy {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}

	density := opensimplex.NewNormalized(seed)
	rng := rand.New(rand.NewSource(seed + 100))

	g := &Galaxy{
		Seed:      seed,
		Quadrants: make(map[Quadrant]*QuadrantInfo, GridSize*GridSize),
	}

	for qx := 0; qx < GridSize; qx++ {
		for qy := 0; qy < GridSize; qy++ {
			q := Quadrant{X: qx, Y: qy}
			d := density.Eval2(float64(qx)*cfg.DensityScale, float64(qy)*cfg.DensityScale)
			info := &QuadrantInfo{Quadrant: q, Density: d}

			// Chance ranges over [0.5, 1.5] × StationChance, averaging StationChance.
			if rng.Float64() < cfg.StationChance*(0.5+d) {
				st := generateStation(q, len(g.Stations), rng)
				info.Stations = append(info.Stations, st)
				g.Stations = append(g.Stations, st)
			}

			planets := rng.Intn(cfg.MaxPlanets + 1)
			for i := 0; i < planets; i++ {
				info.Planets = append(info.Planets, Position{
					QuadrantX: qx, QuadrantY: qy,
					SectorX: rng.Intn(GridSize), SectorY: rng.Intn(GridSize),
				})
			}

			g.Quadrants[q] = info
		}
	}

	return g
}

func generateStation(q Quadrant, id int, rng *rand.Rand) *Station {
	t := StationType(rng.Intn(NumStationTypes))
	pos := Position{
		QuadrantX: q.X, QuadrantY: q.Y,
		SectorX: rng.Intn(GridSize), SectorY: rng.Intn(GridSize),
	}
	market := GenerateMarket(t, rng)
	name := fmt.Sprintf("%s %d", stationNames[rng.Intn(len(stationNames))], id+1)

	return &Station{
		ID:       id,
		Name:     name,
		Type:     t,
		Position: pos,
		Market:   market,
	}
}

// NewGalaxy wraps an explicit station list, mainly for tests and tools that
// build worlds by hand.
func NewGalaxy(stations []*Station) *Galaxy {
	g := &Galaxy{Quadrants: make(map[Quadrant]*QuadrantInfo)}
	for i, st := range stations {
		st.ID = i
		g.Stations = append(g.Stations, st)
		q := st.Position.Quadrant()
		info := g.Quadrants[q]
		if info == nil {
			info = &QuadrantInfo{Quadrant: q}
			g.Quadrants[q] = info
		}
		info.Stations = append(info.Stations, st)
	}
	return g
}

// StationAt returns the station at exactly pos, or nil.
func (g *Galaxy) StationAt(pos Position) *Station {
	for _, st := range g.Stations {
		if st.Position == pos {
			return st
		}
	}
	return nil
}

// StationList returns every station in generation order.
func (g *Galaxy) StationList() []*Station {
	return g.Stations
}

// Quadrant returns the scan info for a quadrant, or nil if outside the grid.
func (g *Galaxy) Quadrant(q Quadrant) *QuadrantInfo {
	return g.Quadrants[q]
}

// String returns a summary of the galaxy.
func (g *Galaxy) String() string {
	return fmt.Sprintf("Galaxy(seed=%d, stations=%d)", g.Seed, len(g.Stations))
}
