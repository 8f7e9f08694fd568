// Movement — one grid step per tick toward a destination.
package agents

import "github.com/mnky9800n/egatrader/internal/galaxy"

const (
	detourChance = 0.1
	detourRange  = 2.0
	detourScore  = 100.0
)

// Step moves pos one unit toward dest along the first differing axis in the
// order quadrant-x, quadrant-y, sector-x, sector-y. If pos already equals
// dest it is returned unchanged with arrived set.
func Step(pos, dest galaxy.Position) (next galaxy.Position, arrived bool) {
	next = pos
	switch {
	case pos.QuadrantX != dest.QuadrantX:
		next.QuadrantX += sign(dest.QuadrantX - pos.QuadrantX)
	case pos.QuadrantY != dest.QuadrantY:
		next.QuadrantY += sign(dest.QuadrantY - pos.QuadrantY)
	case pos.SectorX != dest.SectorX:
		next.SectorX += sign(dest.SectorX - pos.SectorX)
	case pos.SectorY != dest.SectorY:
		next.SectorY += sign(dest.SectorY - pos.SectorY)
	default:
		return pos, true
	}
	return next, false
}

// findDetour returns the first station within detourRange of the ship
// (excluding its own position) whose score beats detourScore.
func findDetour(ship *Ship, p Personality, stations []*galaxy.Station) *galaxy.Station {
	for _, st := range stations {
		if st.Position == ship.Position {
			continue
		}
		if st.Position.DistanceTo(ship.Position) > detourRange {
			continue
		}
		if EvaluateStation(ship, p, st, stations) > detourScore {
			return st
		}
	}
	return nil
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
