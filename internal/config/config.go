// Package config exposes the game configuration loaded from YAML, with
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings.
const (
	EnvSeed        = "EGATRADER_SEED"
	EnvDB          = "EGATRADER_DB"
	EnvMetricsAddr = "EGATRADER_METRICS_ADDR"
	EnvLogLevel    = "EGATRADER_LOG_LEVEL"
)

// App captures process-wide settings: storage, metrics, and logging.
type App struct {
	DBPath      string `yaml:"db_path"`
	MetricsAddr string `yaml:"metrics_addr"` // Empty disables the metrics endpoint
	LogLevel    string `yaml:"log_level"`
}

// Game holds the world seed and the turn schedule.
type Game struct {
	Seed           int64   `yaml:"seed"` // 0 picks a random galaxy
	TimeStep       float64 `yaml:"time_step"`
	AIInterval     int     `yaml:"ai_interval"`
	ReportInterval int     `yaml:"report_interval"`
}

// Player sets the starting ship.
type Player struct {
	StartCredits float64 `yaml:"start_credits"`
	StartEnergy  int     `yaml:"start_energy"`
	MaxCargo     int     `yaml:"max_cargo"`
}

// Config collects every configuration leaf.
type Config struct {
	App    App    `yaml:"app"`
	Game   Game   `yaml:"game"`
	Player Player `yaml:"player"`
}

// Default returns the standard configuration.
func Default() *Config {
	return &Config{
		App: App{
			DBPath:   "data/egatrader.db",
			LogLevel: "info",
		},
		Game: Game{
			Seed:           42,
			TimeStep:       0.1,
			AIInterval:     3,
			ReportInterval: 30,
		},
		Player: Player{
			StartCredits: 5000,
			StartEnergy:  1000,
			MaxCargo:     100,
		},
	}
}

// Load reads a YAML file from disk over the defaults. Fields missing from
// the file keep their default values.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	config := Default()
	if err := yaml.NewDecoder(file).Decode(config); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return config, nil
}

// Save persists a Config struct to disk as YAML.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config")
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// LoadEnv reads an optional .env file into the process environment.
func LoadEnv(files ...string) {
	if err := godotenv.Load(files...); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}
}

// ApplyEnv overrides cfg with any EGATRADER_* variables that are set.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Game.Seed = seed
	}
	if v := os.Getenv(EnvDB); v != "" {
		c.App.DBPath = v
	}
	if v, ok := os.LookupEnv(EnvMetricsAddr); ok {
		c.App.MetricsAddr = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.App.LogLevel = v
	}
	return nil
}

// Validate checks the configuration for values the game cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.App.DBPath == "" {
		errs = append(errs, errors.New("app.db_path is required"))
	}
	if _, err := ParseLevel(c.App.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if c.Game.TimeStep <= 0 {
		errs = append(errs, fmt.Errorf("game.time_step must be positive, got %v", c.Game.TimeStep))
	}
	if c.Game.AIInterval <= 0 {
		errs = append(errs, fmt.Errorf("game.ai_interval must be positive, got %d", c.Game.AIInterval))
	}
	if c.Game.ReportInterval < 0 {
		errs = append(errs, fmt.Errorf("game.report_interval must not be negative, got %d", c.Game.ReportInterval))
	}
	if c.Player.StartCredits < 0 || c.Player.StartEnergy < 0 || c.Player.MaxCargo <= 0 {
		errs = append(errs, errors.New("player start values must be non-negative with positive max_cargo"))
	}
	return errors.Join(errs...)
}

// ParseLevel maps a log level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}
