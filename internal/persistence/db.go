// Package persistence provides SQLite-based save games and the trade log.
package persistence

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/mnky9800n/egatrader/internal/agents"
	"github.com/mnky9800n/egatrader/internal/economy"
)

// ErrNoSave is returned by LoadGame when the database holds no saved game.
var ErrNoSave = errors.New("no saved game")

// ErrBadSave is returned by LoadGame when the saved ship is off the grid.
var ErrBadSave = errors.New("corrupt saved game")

// Meta keys.
const (
	metaSeed     = "galaxy_seed"
	metaStardate = "stardate"
	metaTurn     = "turn"
)

// DB wraps a SQLite connection for game persistence.
type DB struct {
	conn *sqlx.DB
}

// SaveRecord is everything a save game holds. Stations, markets, and
// traders are not saved; they are regenerated from Seed on load.
type SaveRecord struct {
	Seed     int64
	Stardate float64
	Turn     uint64
	Player   *agents.Ship
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS world_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS player_ship (
		slot INTEGER PRIMARY KEY,
		ship_id TEXT NOT NULL,
		ship_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS trade_log (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		stardate REAL NOT NULL,
		ship_id TEXT NOT NULL,
		ship_name TEXT NOT NULL,
		station TEXT NOT NULL,
		commodity INTEGER NOT NULL,
		side INTEGER NOT NULL,
		quantity INTEGER NOT NULL,
		price REAL NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_trade_log_stardate ON trade_log(stardate);
	CREATE INDEX IF NOT EXISTS idx_trade_log_ship ON trade_log(ship_id);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveMeta stores a key-value pair in world metadata.
func (db *DB) SaveMeta(key, value string) error {
	_, err := db.conn.Exec(
		"INSERT OR REPLACE INTO world_meta (key, value) VALUES (?, ?)",
		key, value,
	)
	return err
}

// GetMeta retrieves a metadata value.
func (db *DB) GetMeta(key string) (string, error) {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM world_meta WHERE key = ?", key)
	return value, err
}

// HasSave reports whether a saved game exists.
func (db *DB) HasSave() bool {
	var n int
	if err := db.conn.Get(&n, "SELECT COUNT(*) FROM player_ship"); err != nil {
		return false
	}
	return n > 0
}

// SaveGame replaces the saved game with rec.
func (db *DB) SaveGame(rec SaveRecord) error {
	if rec.Player == nil {
		return errors.New("save game: no player ship")
	}
	shipJSON, err := json.Marshal(rec.Player)
	if err != nil {
		return fmt.Errorf("encode player ship: %w", err)
	}

	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	meta := map[string]string{
		metaSeed:     strconv.FormatInt(rec.Seed, 10),
		metaStardate: strconv.FormatFloat(rec.Stardate, 'f', -1, 64),
		metaTurn:     strconv.FormatUint(rec.Turn, 10),
	}
	for k, v := range meta {
		if _, err := tx.Exec("INSERT OR REPLACE INTO world_meta (key, value) VALUES (?, ?)", k, v); err != nil {
			return fmt.Errorf("save meta %s: %w", k, err)
		}
	}

	if _, err := tx.Exec(
		"INSERT OR REPLACE INTO player_ship (slot, ship_id, ship_json) VALUES (1, ?, ?)",
		rec.Player.ID, string(shipJSON),
	); err != nil {
		return fmt.Errorf("save player ship: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	slog.Info("game saved", "seed", rec.Seed, "turn", rec.Turn, "ship", rec.Player.Name)
	return nil
}

// LoadGame reads the saved game. It returns ErrNoSave if there is none.
func (db *DB) LoadGame() (*SaveRecord, error) {
	var shipJSON string
	err := db.conn.Get(&shipJSON, "SELECT ship_json FROM player_ship WHERE slot = 1")
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSave
	}
	if err != nil {
		return nil, fmt.Errorf("load player ship: %w", err)
	}

	var ship agents.Ship
	if err := json.Unmarshal([]byte(shipJSON), &ship); err != nil {
		return nil, fmt.Errorf("decode player ship: %w", err)
	}
	if !ship.Position.Valid() {
		return nil, fmt.Errorf("player position %v: %w", ship.Position, ErrBadSave)
	}
	if ship.Destination != nil && !ship.Destination.Valid() {
		return nil, fmt.Errorf("player destination %v: %w", *ship.Destination, ErrBadSave)
	}
	if ship.Preferred == nil {
		ship.Preferred = []economy.Commodity{}
	}

	rec := &SaveRecord{Player: &ship}

	seed, err := db.GetMeta(metaSeed)
	if err != nil {
		return nil, fmt.Errorf("load seed: %w", err)
	}
	if rec.Seed, err = strconv.ParseInt(seed, 10, 64); err != nil {
		return nil, fmt.Errorf("parse seed %q: %w", seed, err)
	}

	if v, err := db.GetMeta(metaStardate); err == nil {
		if sd, err := strconv.ParseFloat(v, 64); err == nil {
			rec.Stardate = sd
		}
	}
	if v, err := db.GetMeta(metaTurn); err == nil {
		if t, err := strconv.ParseUint(v, 10, 64); err == nil {
			rec.Turn = t
		}
	}

	return rec, nil
}

// tradeRow is one trade_log row.
type tradeRow struct {
	Stardate  float64 `db:"stardate"`
	ShipID    string  `db:"ship_id"`
	ShipName  string  `db:"ship_name"`
	Station   string  `db:"station"`
	Commodity int     `db:"commodity"`
	Side      int     `db:"side"`
	Quantity  int     `db:"quantity"`
	Price     float64 `db:"price"`
}

// AppendTrades appends trades to the trade log.
func (db *DB) AppendTrades(trades []agents.Trade) error {
	if len(trades) == 0 {
		return nil
	}

	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareNamed(`INSERT INTO trade_log
		(stardate, ship_id, ship_name, station, commodity, side, quantity, price)
		VALUES (:stardate, :ship_id, :ship_name, :station, :commodity, :side, :quantity, :price)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, t := range trades {
		row := tradeRow{
			Stardate:  t.Time,
			ShipID:    t.ShipID,
			ShipName:  t.ShipName,
			Station:   t.Station,
			Commodity: int(t.Commodity),
			Side:      int(t.Side),
			Quantity:  t.Quantity,
			Price:     t.Price,
		}
		if _, err := stmt.Exec(row); err != nil {
			return fmt.Errorf("insert trade by %s: %w", t.ShipName, err)
		}
	}

	return tx.Commit()
}

// RecentTrades returns the most recent trades, newest first.
func (db *DB) RecentTrades(limit int) ([]agents.Trade, error) {
	var rows []tradeRow
	err := db.conn.Select(&rows,
		`SELECT stardate, ship_id, ship_name, station, commodity, side, quantity, price
		 FROM trade_log ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}

	trades := make([]agents.Trade, 0, len(rows))
	for _, r := range rows {
		trades = append(trades, agents.Trade{
			Time:      r.Stardate,
			ShipID:    r.ShipID,
			ShipName:  r.ShipName,
			Station:   r.Station,
			Commodity: economy.Commodity(r.Commodity),
			Side:      agents.Side(r.Side),
			Quantity:  r.Quantity,
			Price:     r.Price,
		})
	}
	return trades, nil
}
