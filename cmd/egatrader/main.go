// Command egatrader runs the EGA Trader space trading game.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath  string
	seedFlag    int64
	dbFlag      string
	metricsFlag string
	logLevel    string
)

var rootCmd = &cobra.Command{
	Use:   "egatrader",
	Short: "EGA Trader space trading game",
	Long: `EGA Trader is a turn-based space trading game. Fly between stations in an
8x8 galaxy, trade six commodities, and compete with autonomous traders whose
buying and selling moves every market they touch.`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "YAML config file")
	pf.Int64Var(&seedFlag, "seed", 0, "galaxy seed (overrides config)")
	pf.StringVar(&dbFlag, "db", "", "SQLite database path (overrides config)")
	pf.StringVar(&metricsFlag, "metrics-addr", "", "serve Prometheus metrics on this address")
	pf.StringVar(&logLevel, "log-level", "", "debug, info, warn, or error")

	rootCmd.Flags().BoolVar(&newGame, "new", false, "start a new game even if a save exists")

	rootCmd.AddCommand(observeCmd)
	rootCmd.AddCommand(tradesCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
