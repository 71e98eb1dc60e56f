package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gravitas-015/hexcore/hex"
	"github.com/gravitas-015/hexcore/internal/logging"
)

// Storage backends accepted in StoreConfig.Backend.
const (
	BackendMemory  = "memory"
	BackendChunked = "chunked"
	BackendRedis   = "redis"
)

// Config holds all hexstamp configuration
type Config struct {
	Layout LayoutConfig `yaml:"layout"`
	Store  StoreConfig  `yaml:"store"`
	Redis  RedisConfig  `yaml:"redis"`
	Log    LogConfig    `yaml:"log"`
}

// LayoutConfig maps cells to pixels
type LayoutConfig struct {
	Orientation hex.Orientation `yaml:"orientation"`
	Size        float64         `yaml:"size"`
	OriginX     float64         `yaml:"origin_x"`
	OriginY     float64         `yaml:"origin_y"`
}

// StoreConfig selects where stamped cells are written
type StoreConfig struct {
	Backend   string `yaml:"backend"`
	ChunkSize int    `yaml:"chunk_size"` // cells per chunk side
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Key      string `yaml:"key"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration, fills defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Set defaults if not provided
	if cfg.Layout.Size == 0 {
		cfg.Layout.Size = 32
	}
	if cfg.Store.Backend == "" {
		cfg.Store.Backend = BackendMemory
	}
	if cfg.Store.ChunkSize == 0 {
		cfg.Store.ChunkSize = 16
	}
	if cfg.Redis.Address == "" {
		cfg.Redis.Address = "localhost:6379"
	}
	if cfg.Redis.Key == "" {
		cfg.Redis.Key = "hexcore:cells"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if _, err := c.HexLayout(); err != nil {
		return fmt.Errorf("invalid layout: %w", err)
	}
	switch c.Store.Backend {
	case BackendMemory, BackendChunked, BackendRedis:
	default:
		return fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}
	if c.Store.ChunkSize < 0 {
		return fmt.Errorf("chunk size must be positive, got %d", c.Store.ChunkSize)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	return nil
}

// HexLayout builds the validated pixel layout.
func (c *Config) HexLayout() (hex.Layout, error) {
	l, err := hex.NewLayout(c.Layout.Orientation, c.Layout.Size)
	if err != nil {
		return hex.Layout{}, err
	}
	l.Origin = hex.Point{X: c.Layout.OriginX, Y: c.Layout.OriginY}
	return l, nil
}
