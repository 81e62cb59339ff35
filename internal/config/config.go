// Package config defines the explicit runtime configuration for the loader:
// database connection parameters and load settings. Values come from an
// optional YAML file overlaid by SPOTIFY_* environment variables, and are
// validated once before any connection attempt.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/jarretjeter/Spotify-Data-Loader/internal/storage"
)

// ErrConfigNotFound is returned by Load when the config file does not
// exist. Callers can check for it with errors.Is.
var ErrConfigNotFound = errors.New("config file not found")

// DBConfig holds the relational database connection parameters.
type DBConfig struct {
	Driver   string            `yaml:"driver"`
	Host     string            `yaml:"host"`
	Port     int               `yaml:"port"`
	User     string            `yaml:"user"`
	Password string            `yaml:"password,omitempty"`
	Database string            `yaml:"database"`
	Params   map[string]string `yaml:"params,omitempty"`
}

// Addr returns host:port.
func (d DBConfig) Addr() string { return fmt.Sprintf("%s:%d", d.Host, d.Port) }

// LoadConfig holds settings for the load run itself.
type LoadConfig struct {
	// DataDir is the directory holding the source CSV files.
	DataDir string `yaml:"data_dir"`

	// BatchSize is the number of rows per insert batch.
	BatchSize int `yaml:"batch_size"`
}

// Config is the full runtime configuration.
type Config struct {
	DB   DBConfig   `yaml:"db"`
	Load LoadConfig `yaml:"load"`
}

// Default returns the configuration used when no file and no environment
// overrides are present: a local MySQL instance and ./data for CSVs,
// matching the development docker setup in scripts/.
func Default() Config {
	return Config{
		DB: DBConfig{
			Driver:   "mysql",
			Host:     "127.0.0.1",
			Port:     3306,
			User:     "root",
			Database: "spotify",
		},
		Load: LoadConfig{
			DataDir:   "data",
			BatchSize: storage.DefaultBatchSize,
		},
	}
}

// Load reads a YAML config file into a Config based on Default. A missing
// file yields ErrConfigNotFound so callers can fall back to defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// FromEnv overlays SPOTIFY_* environment variables onto cfg and returns the
// result. Recognized variables:
//
//	SPOTIFY_DB_DRIVER, SPOTIFY_DB_HOST, SPOTIFY_DB_PORT, SPOTIFY_DB_USER,
//	SPOTIFY_DB_PASSWORD, SPOTIFY_DB_NAME, SPOTIFY_DATA_DIR,
//	SPOTIFY_BATCH_SIZE
//
// Unset variables leave cfg untouched; a malformed numeric value is an
// error rather than a silent fallback.
func FromEnv(cfg Config) (Config, error) {
	setStr := func(dst *string, key string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}
	setStr(&cfg.DB.Driver, "SPOTIFY_DB_DRIVER")
	setStr(&cfg.DB.Host, "SPOTIFY_DB_HOST")
	setStr(&cfg.DB.User, "SPOTIFY_DB_USER")
	setStr(&cfg.DB.Password, "SPOTIFY_DB_PASSWORD")
	setStr(&cfg.DB.Database, "SPOTIFY_DB_NAME")
	setStr(&cfg.Load.DataDir, "SPOTIFY_DATA_DIR")

	if v, ok := os.LookupEnv("SPOTIFY_DB_PORT"); ok {
		p, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("config: SPOTIFY_DB_PORT %q: %w", v, err)
		}
		cfg.DB.Port = p
	}
	if v, ok := os.LookupEnv("SPOTIFY_BATCH_SIZE"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("config: SPOTIFY_BATCH_SIZE %q: %w", v, err)
		}
		cfg.Load.BatchSize = n
	}
	return cfg, nil
}

// StorageConfig converts the DB section into the storage package's
// connection config.
func (c Config) StorageConfig() storage.Config {
	return storage.Config{
		Driver:   c.DB.Driver,
		Host:     c.DB.Host,
		Port:     c.DB.Port,
		User:     c.DB.User,
		Password: c.DB.Password,
		Database: c.DB.Database,
		Params:   c.DB.Params,
	}
}
