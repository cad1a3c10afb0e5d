package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"payoff-grid/internal/betgrid"
	"payoff-grid/internal/render"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment overrides, e.g. BETGRID_GRID_SIZE=12.
const EnvPrefix = "BETGRID"

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Grid   GridConfig   `yaml:"grid"`
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
}

type GridConfig struct {
	// Size is used when a request omits grid_size.
	Size int `yaml:"size"`
	// MaxSize caps grid_size for API requests. The CLI is not capped.
	MaxSize int    `yaml:"max_size"`
	Output  string `yaml:"output"` // text | json
	Color   bool   `yaml:"color"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
	Env  string `yaml:"env"` // development | production
	// CacheTTL keeps computed grids in memory; "0s" disables the cache.
	CacheTTL        string `yaml:"cache_ttl"`
	CacheMaxEntries int    `yaml:"cache_max_entries"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// DefaultMaxGridSize bounds API grids to 10k cells.
const DefaultMaxGridSize = 100

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Grid: GridConfig{
			Size:    betgrid.DefaultGridSize,
			MaxSize: DefaultMaxGridSize,
			Output:  string(render.ModeText),
			Color:   true,
		},
		Server: ServerConfig{
			Port:            "8080",
			Env:             "development",
			CacheTTL:        "10m",
			CacheMaxEntries: 1000,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load starts from Default, overlays the YAML file at path (if path is not
// empty), applies BETGRID_* environment overrides and validates the result.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.applyEnv()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked reads defaults plus the file, without env overrides or validation.
func LoadUnchecked(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return c, nil
}

// applyEnv layers environment variables over the loaded values. Keys follow the
// YAML layout with "." replaced by "_": BETGRID_SERVER_PORT, BETGRID_LOG_LEVEL.
func (c *Config) applyEnv() {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("grid.size", c.Grid.Size)
	v.SetDefault("grid.max_size", c.Grid.MaxSize)
	v.SetDefault("grid.output", c.Grid.Output)
	v.SetDefault("grid.color", c.Grid.Color)
	v.SetDefault("server.port", c.Server.Port)
	v.SetDefault("server.env", c.Server.Env)
	v.SetDefault("server.cache_ttl", c.Server.CacheTTL)
	v.SetDefault("server.cache_max_entries", c.Server.CacheMaxEntries)
	v.SetDefault("log.level", c.Log.Level)

	c.Grid.Size = v.GetInt("grid.size")
	c.Grid.MaxSize = v.GetInt("grid.max_size")
	c.Grid.Output = v.GetString("grid.output")
	c.Grid.Color = v.GetBool("grid.color")
	c.Server.Port = v.GetString("server.port")
	c.Server.Env = v.GetString("server.env")
	c.Server.CacheTTL = v.GetString("server.cache_ttl")
	c.Server.CacheMaxEntries = v.GetInt("server.cache_max_entries")
	c.Log.Level = v.GetString("log.level")
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Grid.Size < 0 {
		return fmt.Errorf("grid.size must be >= 0, got %d", c.Grid.Size)
	}
	if c.Grid.MaxSize < 1 {
		return fmt.Errorf("grid.max_size must be >= 1, got %d", c.Grid.MaxSize)
	}
	if c.Grid.Size > c.Grid.MaxSize {
		return fmt.Errorf("grid.size (%d) must not exceed grid.max_size (%d)", c.Grid.Size, c.Grid.MaxSize)
	}
	if !render.KnownMode(c.Grid.Output) {
		return fmt.Errorf("grid.output must be text or json, got %q", c.Grid.Output)
	}
	if c.Server.Port == "" {
		return errors.New("server.port is required")
	}
	if _, err := c.Server.CacheDuration(); err != nil {
		return err
	}
	if c.Server.CacheMaxEntries < 1 {
		return fmt.Errorf("server.cache_max_entries must be >= 1, got %d", c.Server.CacheMaxEntries)
	}
	return nil
}

// CacheDuration parses CacheTTL. Empty means disabled.
func (s ServerConfig) CacheDuration() (time.Duration, error) {
	if s.CacheTTL == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s.CacheTTL)
	if err != nil {
		return 0, fmt.Errorf("server.cache_ttl invalid: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("server.cache_ttl must be >= 0, got %s", s.CacheTTL)
	}
	return d, nil
}

// Production reports whether the server runs in release mode.
func (s ServerConfig) Production() bool {
	return s.Env == "production"
}

// OutputMode is the configured default render mode.
func (g GridConfig) OutputMode() render.Mode {
	return render.ParseMode(g.Output)
}
