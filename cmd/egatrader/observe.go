package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/mnky9800n/egatrader/internal/engine"
	"github.com/mnky9800n/egatrader/internal/metrics"
)

var (
	observeTurns    uint64
	observeInterval time.Duration
)

// observeCmd runs the trader economy without a player.
var observeCmd = &cobra.Command{
	Use:   "observe",
	Short: "Run the autonomous trader economy headless",
	Long: `Run the galaxy's autonomous traders without a player, advancing one turn per
interval. Market reports go to the log and trades to the trade log.`,
	RunE: runObserve,
}

func init() {
	observeCmd.Flags().Uint64Var(&observeTurns, "turns", 0, "stop after this many turns (0 = until interrupted)")
	observeCmd.Flags().DurationVar(&observeInterval, "interval", 100*time.Millisecond, "wall-clock time per turn")
}

func runObserve(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	setupLogging(cfg.App.LogLevel)

	db, err := openDB(cfg.App.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	sim, err := engine.NewWorld(cfg.Game.Seed)
	if err != nil {
		return err
	}
	eng := newEngine(cfg)
	eng.Interval = observeInterval

	m := metrics.New()
	wire(sim, eng, m, db)
	if srv := serveMetrics(m, cfg.App.MetricsAddr); srv != nil {
		defer srv.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	eng.Run(ctx, observeTurns)
	flushTrades(sim, db)

	sim.TickReport(eng.Turn, eng.Stardate)
	fmt.Fprintf(os.Stdout, "Observed %s turns: %s trades, %s units moved.\n",
		humanize.Comma(int64(eng.Turn)),
		humanize.Comma(int64(sim.Stats.Trades)),
		humanize.Comma(int64(sim.Stats.UnitsTraded)),
	)
	return nil
}
