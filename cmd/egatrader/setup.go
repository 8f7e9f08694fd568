package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mnky9800n/egatrader/internal/config"
	"github.com/mnky9800n/egatrader/internal/engine"
	"github.com/mnky9800n/egatrader/internal/metrics"
	"github.com/mnky9800n/egatrader/internal/persistence"
)

// loadConfig layers defaults, the config file, .env and EGATRADER_*
// variables, and finally any flags set on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	config.LoadEnv()

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Game.Seed = seedFlag
	}
	if flags.Changed("db") {
		cfg.App.DBPath = dbFlag
	}
	if flags.Changed("metrics-addr") {
		cfg.App.MetricsAddr = metricsFlag
	}
	if flags.Changed("log-level") {
		cfg.App.LogLevel = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// setupLogging installs a text slog handler on stderr so game text on
// stdout stays clean.
func setupLogging(level string) {
	lvl, _ := config.ParseLevel(level)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: lvl,
	}))
	slog.SetDefault(logger)
}

func openDB(path string) (*persistence.DB, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}
	db, err := persistence.Open(path)
	if err != nil {
		return nil, err
	}
	slog.Info("database opened", "path", path)
	return db, nil
}

func newEngine(cfg *config.Config) *engine.Engine {
	eng := engine.NewEngine()
	eng.TimeStep = cfg.Game.TimeStep
	eng.AIInterval = uint64(cfg.Game.AIInterval)
	eng.ReportInterval = uint64(cfg.Game.ReportInterval)
	return eng
}

// wire attaches the simulation to the engine and routes trades and reports
// into metrics and the trade log.
func wire(sim *engine.Simulation, eng *engine.Engine, m *metrics.Metrics, db *persistence.DB) {
	sim.OnTrade = m.ObserveTrade

	eng.OnTurn = func(turn uint64, stardate float64) {
		sim.TickTurn(turn, stardate)
		m.Turn.Set(float64(turn))
	}
	eng.OnAIUpdate = func(turn uint64, stardate float64) {
		sim.UpdateTraders(turn, stardate)
		m.AIUpdatesTotal.Inc()
	}
	eng.OnReport = func(turn uint64, stardate float64) {
		sim.TickReport(turn, stardate)
		m.SetPrices(sim.AveragePrices())
		flushTrades(sim, db)
	}
	m.SetPrices(sim.AveragePrices())
}

// flushTrades hands pending trades to the trade log.
func flushTrades(sim *engine.Simulation, db *persistence.DB) {
	trades := sim.DrainTrades()
	if err := db.AppendTrades(trades); err != nil {
		slog.Error("trade log write failed", "trades", len(trades), "error", err)
	}
}

func serveMetrics(m *metrics.Metrics, addr string) *http.Server {
	if addr == "" {
		return nil
	}
	return m.Serve(addr)
}
