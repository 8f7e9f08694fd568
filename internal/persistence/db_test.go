package persistence

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/mnky9800n/egatrader/internal/agents"
	"github.com/mnky9800n/egatrader/internal/economy"
	"github.com/mnky9800n/egatrader/internal/galaxy"
)

func openTemp(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestLoadGameWithoutSave(t *testing.T) {
	db := openTemp(t)
	if db.HasSave() {
		t.Fatal("fresh database reports a save")
	}
	if _, err := db.LoadGame(); !errors.Is(err, ErrNoSave) {
		t.Fatalf("expected ErrNoSave, got %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	db := openTemp(t)

	ship := agents.NewPlayerShip(galaxy.Position{QuadrantX: 2, QuadrantY: 5, SectorX: 1, SectorY: 7}, 4321.5, 900, 100)
	ship.Cargo[economy.Medicine] = 12
	ship.Energy = 640
	ship.Systems.Shields = 85

	rec := SaveRecord{Seed: 42, Stardate: 12.3, Turn: 123, Player: ship}
	if err := db.SaveGame(rec); err != nil {
		t.Fatalf("save: %v", err)
	}
	if !db.HasSave() {
		t.Fatal("expected a save after SaveGame")
	}

	got, err := db.LoadGame()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Seed != 42 || got.Stardate != 12.3 || got.Turn != 123 {
		t.Fatalf("unexpected meta: %+v", got)
	}
	p := got.Player
	if p.ID != ship.ID || p.Name != ship.Name || p.Position != ship.Position {
		t.Fatalf("identity or position lost: %+v", p)
	}
	if p.Credits != 4321.5 || p.Energy != 640 || p.MaxEnergy != 900 || p.Cargo != ship.Cargo {
		t.Fatalf("resources lost: %+v", p)
	}
	if p.Systems != ship.Systems || p.Kind != agents.KindPlayer || p.Personality != nil {
		t.Fatalf("systems or kind lost: %+v", p)
	}
	if p.Preferred == nil {
		t.Fatal("preferred list should be non-nil after load")
	}
}

func TestSaveGameOverwrites(t *testing.T) {
	db := openTemp(t)
	ship := agents.NewPlayerShip(galaxy.Position{}, 5000, 1000, 100)

	if err := db.SaveGame(SaveRecord{Seed: 1, Turn: 1, Player: ship}); err != nil {
		t.Fatal(err)
	}
	ship.Credits = 10
	if err := db.SaveGame(SaveRecord{Seed: 1, Turn: 9, Player: ship}); err != nil {
		t.Fatal(err)
	}

	got, err := db.LoadGame()
	if err != nil {
		t.Fatal(err)
	}
	if got.Turn != 9 || got.Player.Credits != 10 {
		t.Fatalf("expected latest save, got turn %d credits %.2f", got.Turn, got.Player.Credits)
	}
}

func TestLoadGameRejectsOffGridShip(t *testing.T) {
	db := openTemp(t)
	ship := agents.NewPlayerShip(galaxy.Position{QuadrantX: 1, QuadrantY: 1}, 5000, 1000, 100)
	if err := db.SaveGame(SaveRecord{Seed: 1, Player: ship}); err != nil {
		t.Fatal(err)
	}

	// Edit the stored record by hand, as a player tampering with the file would.
	if _, err := db.conn.Exec(`UPDATE player_ship SET ship_json = json_set(ship_json, '$.position.sector_x', 9) WHERE slot = 1`); err != nil {
		t.Fatal(err)
	}

	if _, err := db.LoadGame(); !errors.Is(err, ErrBadSave) {
		t.Fatalf("expected ErrBadSave for an off-grid ship, got %v", err)
	}
}

func TestSaveGameRequiresPlayer(t *testing.T) {
	db := openTemp(t)
	if err := db.SaveGame(SaveRecord{Seed: 1}); err == nil {
		t.Fatal("expected error saving without a player ship")
	}
}

func TestTradeLog(t *testing.T) {
	db := openTemp(t)

	if err := db.AppendTrades(nil); err != nil {
		t.Fatalf("empty append: %v", err)
	}

	trades := []agents.Trade{
		{Time: 0.3, ShipID: "a", ShipName: "Careful Trader 1", Station: "Alpha Station 1", Commodity: economy.Food, Side: agents.SideBuy, Quantity: 5, Price: 98.5},
		{Time: 0.6, ShipID: "b", ShipName: "Bold Trader 2", Station: "Theta Hub 3", Commodity: economy.Luxuries, Side: agents.SideSell, Quantity: 15, Price: 910},
		{Time: 0.9, ShipID: "a", ShipName: "Careful Trader 1", Station: "Alpha Station 1", Commodity: economy.Fuel, Side: agents.SideSell, Quantity: 2, Price: 84},
	}
	if err := db.AppendTrades(trades); err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err := db.RecentTrades(2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 trades, got %d", len(got))
	}
	if got[0] != trades[2] || got[1] != trades[1] {
		t.Fatalf("expected newest first, got %+v", got)
	}
}

func TestMeta(t *testing.T) {
	db := openTemp(t)
	if err := db.SaveMeta("k", "v1"); err != nil {
		t.Fatal(err)
	}
	if err := db.SaveMeta("k", "v2"); err != nil {
		t.Fatal(err)
	}
	v, err := db.GetMeta("k")
	if err != nil || v != "v2" {
		t.Fatalf("expected v2, got %q (%v)", v, err)
	}
}
