package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"sprintboard/internal/util"
)

// Environment variables that override file values.
const (
	EnvConfig    = "SPRINTBOARD_CONFIG"
	EnvAddr      = "SPRINTBOARD_ADDR"
	EnvDBPath    = "SPRINTBOARD_DB_PATH"
	EnvStaticDir = "SPRINTBOARD_STATIC_DIR"
	EnvLogLevel  = "SPRINTBOARD_LOG_LEVEL"
	EnvSeed      = "SPRINTBOARD_SEED"
)

// Config represents the application configuration
type Config struct {
	Addr            string        `yaml:"addr"`
	DBPath          string        `yaml:"db_path"`
	StaticDir       string        `yaml:"static_dir"`
	Seed            bool          `yaml:"seed"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	Log             Log           `yaml:"log"`
}

// Log configures the slog handler.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Addr:            ":8080",
		DBPath:          "data/sprintboard.db",
		StaticDir:       "web/dist",
		Seed:            true,
		ShutdownTimeout: 5 * time.Second,
		Log: Log{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads the config file at path, or the default location when path is
// empty, and applies environment overrides. A missing default file is not an
// error; a missing explicit file is.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = util.EnvOrDefault(EnvConfig, "")
		explicit = path != ""
	}
	if !explicit {
		path = defaultPath()
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err) && !explicit:
		case err != nil:
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config file %s: %w", path, err)
			}
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	cfg.Addr = util.EnvOrDefault(EnvAddr, cfg.Addr)
	cfg.DBPath = util.EnvOrDefault(EnvDBPath, cfg.DBPath)
	cfg.StaticDir = util.EnvOrDefault(EnvStaticDir, cfg.StaticDir)
	cfg.Log.Level = util.EnvOrDefault(EnvLogLevel, cfg.Log.Level)
	seed, err := util.EnvBoolOrDefault(EnvSeed, cfg.Seed)
	if err != nil {
		return err
	}
	cfg.Seed = seed
	return nil
}

func defaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "sprintboard", "config.yaml")
}
