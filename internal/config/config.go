package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the deeploop daemon.
type Config struct {
	// Logging: debug, info, warn, error
	LogLevel string `yaml:"log_level"`

	// Simulation
	TickIntervalMS int `yaml:"tick_interval_ms"`
	PartySize      int `yaml:"party_size"`

	// Persistence
	SaveSlot      string         `yaml:"save_slot"`
	AutosaveTicks int            `yaml:"autosave_ticks"`
	Database      DatabaseConfig `yaml:"database"`
}

// DatabaseConfig holds PostgreSQL connection parameters. With Enabled false
// the daemon runs purely in memory.
type DatabaseConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// Default returns the config with sensible defaults.
func Default() Config {
	return Config{
		LogLevel:       "info",
		TickIntervalMS: 600,
		PartySize:      4,
		SaveSlot:       "default",
		AutosaveTicks:  50,
		Database: DatabaseConfig{
			Enabled:  false,
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "deeploop",
			Password: "deeploop",
			DBName:   "deeploop",
			SSLMode:  "disable",
		},
	}
}

// Load reads config from a YAML file over the defaults. A missing file is
// not an error; defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
