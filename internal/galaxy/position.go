// Package galaxy provides the two-tier quadrant/sector grid, stations, and
// seeded galaxy generation.
package galaxy

import "fmt"

// GridSize is the number of quadrants per axis and sectors per quadrant axis.
const GridSize = 8

// QuadrantDistanceScale is the distance of one quadrant step, expressed in
// sector steps. Inter-quadrant travel dominates any sector offset.
const QuadrantDistanceScale = 8

// Quadrant identifies one cell of the coarse grid.
type Quadrant struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Position is a location in the galaxy: a quadrant plus a sector within it.
// All four coordinates lie in [0, GridSize).
type Position struct {
	QuadrantX int `json:"quadrant_x"`
	QuadrantY int `json:"quadrant_y"`
	SectorX   int `json:"sector_x"`
	SectorY   int `json:"sector_y"`
}

// String renders the position as "Q1,2 S3,4".
func (p Position) String() string {
	return fmt.Sprintf("Q%d,%d S%d,%d", p.QuadrantX, p.QuadrantY, p.SectorX, p.SectorY)
}

// Quadrant returns the quadrant component of the position.
func (p Position) Quadrant() Quadrant {
	return Quadrant{X: p.QuadrantX, Y: p.QuadrantY}
}

// Valid reports whether every coordinate lies inside the grid.
func (p Position) Valid() bool {
	return inGrid(p.QuadrantX) && inGrid(p.QuadrantY) && inGrid(p.SectorX) && inGrid(p.SectorY)
}

// DistanceTo returns the travel distance between two positions. Positions in
// different quadrants are QuadrantDistanceScale apart per quadrant step
// (Manhattan); within one quadrant the Manhattan sector distance is used.
func (p Position) DistanceTo(o Position) float64 {
	q := abs(p.QuadrantX-o.QuadrantX) + abs(p.QuadrantY-o.QuadrantY)
	if q == 0 {
		return float64(abs(p.SectorX-o.SectorX) + abs(p.SectorY-o.SectorY))
	}
	return float64(q * QuadrantDistanceScale)
}

func inGrid(v int) bool {
	return v >= 0 && v < GridSize
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
