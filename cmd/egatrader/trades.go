package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var tradesLimit int

// tradesCmd prints the most recent entries of the trade log.
var tradesCmd = &cobra.Command{
	Use:   "trades",
	Short: "Show recent trades from the trade log",
	RunE: func(cmd *cobra.Command, _ []string) error {
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

		trades, err := db.RecentTrades(tradesLimit)
		if err != nil {
			return fmt.Errorf("read trade log: %w", err)
		}
		if len(trades) == 0 {
			fmt.Println("No trades recorded.")
			return nil
		}
		for _, t := range trades {
			fmt.Printf("%8.1f  %-22s %-4s %4d %-10s @ $%s  %s\n",
				t.Time, t.ShipName, t.Side, t.Quantity, t.Commodity,
				humanize.FormatFloat("#,###.##", t.Price), t.Station)
		}
		return nil
	},
}

func init() {
	tradesCmd.Flags().IntVar(&tradesLimit, "limit", 20, "number of trades to show")
}
