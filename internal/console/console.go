// Package console runs the interactive command loop: it reads player
// commands, applies them to the simulation, and renders the results as text.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/mnky9800n/egatrader/internal/economy"
	"github.com/mnky9800n/egatrader/internal/engine"
	"github.com/mnky9800n/egatrader/internal/galaxy"
)

// Console reads commands from in and writes game text to out. Each
// processed command advances the engine by one turn.
type Console struct {
	sim  *engine.Simulation
	eng  *engine.Engine
	in   *bufio.Scanner
	out  io.Writer
	echo bool // Echo commands when input is not a terminal

	// Save, if set, is called by the save command.
	Save func() error

	running bool
}

// New creates a console. Commands are echoed to out unless in is an
// interactive terminal.
func New(sim *engine.Simulation, eng *engine.Engine, in io.Reader, out io.Writer) *Console {
	echo := true
	if f, ok := in.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		echo = false
	}
	return &Console{
		sim:  sim,
		eng:  eng,
		in:   bufio.NewScanner(in),
		out:  out,
		echo: echo,
	}
}

// Run loops until quit or end of input.
func (c *Console) Run() {
	c.println("Welcome to EGA Trader!")
	c.println("A space trading game inspired by EGA Trek")
	c.println("Type 'help' for commands")

	c.running = true
	for c.running {
		c.showStatus()
		c.showLocalInfo()

		line, ok := c.prompt("\nCommand: ")
		if !ok {
			c.println("\nNo input available. Exiting game.")
			return
		}
		c.Execute(line)
		c.eng.Advance()
	}
}

// Execute runs one command line.
func (c *Console) Execute(line string) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		c.println("Unknown command. Type 'help' for available commands.")
		return
	}

	switch cmd := fields[0]; cmd {
	case "help", "h":
		c.showHelp()
	case "scan", "s":
		c.showScan()
	case "market", "mk":
		c.showMarket()
	case "trade", "t":
		c.tradeMenu()
	case "buy", "sell":
		c.quickTrade(cmd, fields[1:])
	case "dock", "d":
		c.dock()
	case "log", "l":
		c.showLog()
	case "quit", "q":
		c.running = false
	case "save":
		c.save()
	case "status":
		// Status is shown every turn.
	default:
		if strings.HasPrefix(cmd, "m") {
			c.move(cmd)
			return
		}
		c.println("Unknown command. Type 'help' for available commands.")
	}
}

// Running reports whether the loop continues after the last command.
func (c *Console) Running() bool { return c.running }

func (c *Console) move(cmd string) {
	coords := strings.TrimPrefix(cmd, "m")
	digits, err := parseDigits(coords)

	switch {
	case cmd == "move" || (len(coords) != 4 && len(coords) != 2):
		c.println("Movement format: m1234 for quadrant 1,2 sector 3,4 or m34 for sector 3,4")
	case err != nil:
		c.println("Invalid coordinates format")
	case len(digits) == 4:
		pos := galaxy.Position{QuadrantX: digits[0], QuadrantY: digits[1], SectorX: digits[2], SectorY: digits[3]}
		cost, err := c.sim.MoveTo(pos)
		if err != nil {
			c.reportError(err)
			return
		}
		c.printf("Moved to %s. Energy consumed: %d\n", c.sim.Player.Position, cost)
	default:
		cost, err := c.sim.MoveSector(digits[0], digits[1])
		if err != nil {
			c.reportError(err)
			return
		}
		c.printf("Moved to sector %d,%d. Energy consumed: %d\n", digits[0], digits[1], cost)
	}
}

func parseDigits(s string) ([]int, error) {
	out := make([]int, 0, len(s))
	for _, r := range s {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("not a digit: %q", r)
		}
		out = append(out, int(r-'0'))
	}
	return out, nil
}

func (c *Console) dock() {
	st, docked, err := c.sim.Dock()
	if err != nil {
		c.reportError(err)
		return
	}
	if !docked {
		c.printf("Already docked at %s\n", st.Name)
		return
	}
	c.printf("Docked at %s\n", st.Name)
}

func (c *Console) quickTrade(cmd string, args []string) {
	if len(args) != 2 {
		c.printf("Usage: %s <commodity> <quantity>\n", cmd)
		return
	}
	commodity, err := economy.ParseCommodity(args[0])
	if err != nil {
		c.println("Invalid selection")
		return
	}
	qty, err := strconv.Atoi(args[1])
	if err != nil {
		c.println("Invalid quantity")
		return
	}
	if cmd == "buy" {
		c.buy(commodity, qty)
	} else {
		c.sell(commodity, qty)
	}
}

func (c *Console) buy(commodity economy.Commodity, qty int) {
	t, err := c.sim.Buy(commodity, qty)
	if err != nil {
		c.reportError(err)
		return
	}
	c.printf("Bought %d %s for %s\n", t.Quantity, commodity, money(float64(t.Quantity)*t.Price))
}

func (c *Console) sell(commodity economy.Commodity, qty int) {
	t, err := c.sim.Sell(commodity, qty)
	if err != nil {
		c.reportError(err)
		return
	}
	c.printf("Sold %d %s for %s\n", t.Quantity, commodity, money(float64(t.Quantity)*t.Price))
}

func (c *Console) save() {
	if c.Save == nil {
		c.println("Saving is not available.")
		return
	}
	if err := c.Save(); err != nil {
		c.printf("Save failed: %v\n", err)
		return
	}
	c.println("Game saved.")
}

// reportError prints a player-facing message for a failed command.
func (c *Console) reportError(err error) {
	switch {
	case errors.Is(err, engine.ErrNotDocked):
		c.println("No station at current location. Use 'scan' to find nearby stations.")
	case errors.Is(err, engine.ErrNoStationInRange):
		c.println("No stations within docking range. Use 'scan' to locate stations.")
	case errors.Is(err, engine.ErrOutOfRange):
		c.println("Coordinates must be between 0-7")
	case errors.Is(err, engine.ErrInsufficientEnergy):
		c.printf("Insufficient energy: %v\n", err)
	case errors.Is(err, engine.ErrNothingToSell):
		c.println("No goods to sell")
	case errors.Is(err, engine.ErrInvalidQuantity):
		c.printf("Invalid quantity: %v\n", err)
	default:
		c.printf("Error: %v\n", err)
	}
}

// prompt writes text and reads one line. It returns false at end of input.
func (c *Console) prompt(text string) (string, bool) {
	fmt.Fprint(c.out, text)
	if !c.in.Scan() {
		return "", false
	}
	line := strings.TrimSpace(c.in.Text())
	if c.echo {
		fmt.Fprintln(c.out, line)
	}
	return line, true
}

func (c *Console) println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

// money formats credits as $1,234.56.
func money(v float64) string {
	return "$" + humanize.FormatFloat("#,###.##", v)
}
