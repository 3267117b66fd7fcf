package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/2beens/musclelog/pkg"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string
	// db
	DBPath string `toml:"db_path"`
	// logging
	LogLevel    string `toml:"log_level"`
	LogsPath    string `toml:"logs_path"`
	LogToStdout bool   `toml:"log_to_stdout"`
	// notification bus
	BusDebounceMillis int `toml:"bus_debounce_millis"`
}

func (c *Config) BusDebounceWindow() time.Duration {
	return time.Duration(c.BusDebounceMillis) * time.Millisecond
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Load reads the TOML config file and returns the section for env.
// A missing file is not an error: defaults are used, so the CLI runs
// without any setup.
func Load(env, path string) (*Config, error) {
	exists, err := pkg.PathExists(path, false)
	if err != nil {
		return nil, fmt.Errorf("check config file: %w", err)
	}
	if !exists {
		cfg := Default()
		cfg.Environment = env
		return cfg, nil
	}

	var tomlCfg Toml
	if _, err := toml.DecodeFile(path, &tomlCfg); err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}

	cfg, err := tomlCfg.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}

	cfg.Environment = env
	applyDefaults(cfg)
	return cfg, nil
}

func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		cfg.DBPath = filepath.Join(home, ".musclelog", "musclelog.db")
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.BusDebounceMillis <= 0 {
		cfg.BusDebounceMillis = 300
	}
}
