package console

import (
	"strconv"

	"github.com/mnky9800n/egatrader/internal/economy"
	"github.com/mnky9800n/egatrader/internal/galaxy"
)

// tradeMenu runs the numbered buy/sell menu until the player exits or input
// ends. The whole menu session is one turn.
func (c *Console) tradeMenu() {
	st, err := c.sim.MarketAt()
	if err != nil {
		c.println("No station at current location. Move to a station to trade.")
		return
	}

	for {
		c.printf("\nTrading at %s\n", st.Name)
		c.println("1. Buy goods")
		c.println("2. Sell goods")
		c.println("3. View market")
		c.println("4. Exit trading")

		choice, ok := c.prompt("Choice: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			c.buyMenu(st)
		case "2":
			c.sellMenu(st)
		case "3":
			c.showMarket()
		case "4":
			return
		default:
			c.println("Invalid choice")
		}
	}
}

func (c *Console) buyMenu(st *galaxy.Station) {
	c.println("\nAvailable goods:")
	for i, e := range st.Market.Snapshot() {
		c.printf("%d. %s - $%.2f (Stock: %d)\n", i+1, e.Commodity, e.Price, e.Stock)
	}

	commodity, ok := c.pickCommodity("Select commodity (number): ", economy.AllCommodities[:])
	if !ok {
		return
	}
	limit, err := c.sim.MaxBuy(commodity)
	if err != nil {
		c.reportError(err)
		return
	}
	if limit <= 0 {
		c.println("Cannot buy any of this commodity (insufficient credits, space, or stock)")
		return
	}

	qty, ok := c.readInt("Quantity to buy (max " + strconv.Itoa(limit) + "): ")
	if !ok {
		return
	}
	c.buy(commodity, qty)
}

func (c *Console) sellMenu(st *galaxy.Station) {
	var held []economy.Commodity
	for _, cm := range economy.AllCommodities {
		if c.sim.Player.Cargo[cm] > 0 {
			held = append(held, cm)
		}
	}
	if len(held) == 0 {
		c.println("No goods to sell")
		return
	}

	c.println("\nYour cargo:")
	for i, cm := range held {
		c.printf("%d. %s - %d units @ $%.2f each\n", i+1, cm, c.sim.Player.Cargo[cm], st.Market.Price(cm))
	}

	commodity, ok := c.pickCommodity("Select commodity to sell (number): ", held)
	if !ok {
		return
	}
	qty, ok := c.readInt("Quantity to sell (max " + strconv.Itoa(c.sim.Player.Cargo[commodity]) + "): ")
	if !ok {
		return
	}
	c.sell(commodity, qty)
}

// pickCommodity reads a 1-based menu number from the player.
func (c *Console) pickCommodity(text string, options []economy.Commodity) (economy.Commodity, bool) {
	n, ok := c.readInt(text)
	if !ok {
		return 0, false
	}
	if n < 1 || n > len(options) {
		c.println("Invalid selection")
		return 0, false
	}
	return options[n-1], true
}

// readInt prompts for an integer. It returns false at end of input or on a
// malformed number, after telling the player.
func (c *Console) readInt(text string) (int, bool) {
	line, ok := c.prompt(text)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		c.println("Invalid input")
		return 0, false
	}
	return n, true
}
