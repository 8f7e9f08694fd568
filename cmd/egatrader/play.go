package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mnky9800n/egatrader/internal/config"
	"github.com/mnky9800n/egatrader/internal/console"
	"github.com/mnky9800n/egatrader/internal/engine"
	"github.com/mnky9800n/egatrader/internal/metrics"
	"github.com/mnky9800n/egatrader/internal/persistence"
)

var newGame bool

func runPlay(cmd *cobra.Command, _ []string) error {
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

	sim, eng, err := loadOrCreate(cfg, db, newGame)
	if err != nil {
		return err
	}

	m := metrics.New()
	wire(sim, eng, m, db)
	if srv := serveMetrics(m, cfg.App.MetricsAddr); srv != nil {
		defer srv.Close()
	}

	con := console.New(sim, eng, os.Stdin, os.Stdout)
	con.Save = func() error {
		flushTrades(sim, db)
		return db.SaveGame(persistence.SaveRecord{
			Seed:     sim.Galaxy.Seed,
			Stardate: eng.Stardate,
			Turn:     eng.Turn,
			Player:   sim.Player,
		})
	}
	con.Run()

	flushTrades(sim, db)
	fmt.Println("Safe travels, trader.")
	return nil
}

// loadOrCreate restores the saved game, or starts a new one. A restored
// game regenerates the galaxy and traders from the saved seed; only the
// player ship and the clock come from the save.
func loadOrCreate(cfg *config.Config, db *persistence.DB, fresh bool) (*engine.Simulation, *engine.Engine, error) {
	eng := newEngine(cfg)

	if !fresh && db.HasSave() {
		rec, err := db.LoadGame()
		if err != nil && !errors.Is(err, persistence.ErrNoSave) {
			return nil, nil, fmt.Errorf("load game: %w", err)
		}
		if err == nil {
			sim, err := engine.NewWorld(rec.Seed)
			if err != nil {
				return nil, nil, err
			}
			sim.Player = rec.Player
			eng.Turn = rec.Turn
			eng.Stardate = rec.Stardate
			sim.TickTurn(rec.Turn, rec.Stardate)
			slog.Info("saved game restored",
				"seed", rec.Seed,
				"turn", rec.Turn,
				"stardate", engine.FormatStardate(rec.Stardate),
				"position", rec.Player.Position.String(),
			)
			return sim, eng, nil
		}
	}

	sim, err := engine.NewGame(cfg.Game.Seed, engine.PlayerStart{
		Credits:  cfg.Player.StartCredits,
		Energy:   cfg.Player.StartEnergy,
		MaxCargo: cfg.Player.MaxCargo,
	})
	if err != nil {
		return nil, nil, err
	}
	slog.Info("new game started", "seed", sim.Galaxy.Seed, "position", sim.Player.Position.String())
	return sim, eng, nil
}
