package console

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/mnky9800n/egatrader/internal/agents"
	"github.com/mnky9800n/egatrader/internal/economy"
	"github.com/mnky9800n/egatrader/internal/engine"
)

const ruleWidth = 60

func (c *Console) showStatus() {
	ship := c.sim.Player
	c.printf("\n%s\n", strings.Repeat("=", ruleWidth))
	c.printf("SHIP STATUS - %s | Stardate: %s\n", ship.Name, engine.FormatStardate(c.eng.Stardate))
	c.printf("%s\n", strings.Repeat("=", ruleWidth))
	c.printf("Position: %s\n", ship.Position)
	c.printf("Credits: %s | Energy: %s/%s\n", money(ship.Credits),
		humanize.Comma(int64(ship.Energy)), humanize.Comma(int64(ship.MaxEnergy)))
	c.printf("Cargo: %d/%d\n", ship.TotalCargo(), ship.MaxCargo)

	if !ship.Cargo.IsEmpty() {
		var parts []string
		for _, cm := range economy.AllCommodities {
			if n := ship.Cargo[cm]; n > 0 {
				parts = append(parts, fmt.Sprintf("%s: %d", cm, n))
			}
		}
		c.printf("  %s\n", strings.Join(parts, ", "))
	}
}

func (c *Console) showLocalInfo() {
	if st := c.sim.CurrentStation(); st != nil {
		c.printf("Docked at: %s (%s)\n", st.Name, st.Type)
	}

	ships := c.sim.ShipsInQuadrant(c.sim.Player.Position.Quadrant())
	if len(ships) == 0 {
		return
	}
	c.printf("Ships in quadrant: %d AI traders (%s)\n", len(ships), personalityCounts(ships))
}

// personalityCounts summarises ships as "2 Cautious, 1 Specialist" in
// order of first appearance.
func personalityCounts(ships []*agents.Ship) string {
	var order []agents.Personality
	counts := make(map[agents.Personality]int)
	for _, sh := range ships {
		if sh.Personality == nil {
			continue
		}
		p := *sh.Personality
		if counts[p] == 0 {
			order = append(order, p)
		}
		counts[p]++
	}
	parts := make([]string, 0, len(order))
	for _, p := range order {
		parts = append(parts, fmt.Sprintf("%d %s", counts[p], p))
	}
	return strings.Join(parts, ", ")
}

func (c *Console) showScan() {
	res := c.sim.Scan()
	c.printf("\nScan results for Quadrant %d,%d:\n", res.Quadrant.X, res.Quadrant.Y)

	if len(res.Stations) > 0 {
		c.println("Stations:")
		for _, ct := range res.Stations {
			st := ct.Station
			c.printf("  %s (%s) at S%d,%d - Distance: %g\n",
				st.Name, st.Type, st.Position.SectorX, st.Position.SectorY, ct.Distance)
		}
	}
	if len(res.Ships) > 0 {
		c.println("Other ships:")
		for _, ct := range res.Ships {
			sh := ct.Ship
			personality := ""
			if sh.Personality != nil {
				personality = fmt.Sprintf(" (%s)", *sh.Personality)
			}
			c.printf("  %s%s at S%d,%d - Distance: %g - Cargo: %d/%d\n",
				sh.Name, personality, sh.Position.SectorX, sh.Position.SectorY, ct.Distance,
				sh.TotalCargo(), sh.MaxCargo)
		}
	}
	if res.Planets > 0 {
		c.printf("Planets: %d\n", res.Planets)
	}
}

func (c *Console) showMarket() {
	st, err := c.sim.MarketAt()
	if err != nil {
		c.reportError(err)
		return
	}
	c.printf("\nMarket prices at %s:\n", st.Name)
	c.printf("%-12s %-8s %-8s\n", "Commodity", "Price", "Stock")
	c.println(strings.Repeat("-", 30))
	for _, e := range st.Market.Snapshot() {
		c.printf("%-12s $%7.2f %6d\n", e.Commodity, e.Price, e.Stock)
	}
}

func (c *Console) showLog() {
	events := c.sim.Events
	start := max(0, len(events)-10)
	if start == len(events) {
		c.println("No events recorded.")
		return
	}
	c.println("\nRecent events:")
	for _, e := range events[start:] {
		c.printf("  [%s] %s\n", engine.FormatStardate(e.Stardate), e.Description)
	}
}

func (c *Console) showHelp() {
	c.println("\nEGA Trader Commands:")
	c.println("  move, m1234  - Move to quadrant 1,2 sector 3,4")
	c.println("  m34          - Move to sector 3,4 in current quadrant")
	c.println("  scan, s      - Scan current quadrant for stations and ships")
	c.println("  dock, d      - Dock at nearby station")
	c.println("  market, mk   - View market prices at current station")
	c.println("  trade, t     - Enter trading menu")
	c.println("  buy <c> <n>  - Buy n units of commodity c")
	c.println("  sell <c> <n> - Sell n units of commodity c")
	c.println("  log, l       - Show recent events")
	c.println("  status       - Show ship status")
	c.println("  save         - Save game")
	c.println("  help, h      - Show this help")
	c.println("  quit, q      - Exit game")
}
