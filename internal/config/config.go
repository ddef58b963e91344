package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper/internal/mines"
)

type Log struct {
	Level      string `json:"level"`
	File       string `json:"file"`
	MaxSizeMB  int    `json:"max_size_mb"`
	MaxBackups int    `json:"max_backups"`
	MaxAgeDays int    `json:"max_age_days"`
}

type Config struct {
	Mode            string   `json:"mode"`
	Addr            string   `json:"addr"`
	Difficulty      string   `json:"difficulty"`
	Custom          string   `json:"custom"`
	AllowedOrigins  []string `json:"allowed_origins"`
	ShutdownTimeout Duration `json:"shutdown_timeout"`
	Log             Log      `json:"log"`
}

func Default() *Config {
	return &Config{
		Mode:            "production",
		Addr:            "localhost:8080",
		Difficulty:      string(mines.Easy),
		ShutdownTimeout: Duration{15 * time.Second},
		Log: Log{
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Load reads the defaults, then the JSON file at path (if any), then the
// environment.
func Load(path string) (*Config, error) {
	config := Default()
	if path != "" {
		if err := ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to read config %s: %w", path, err)
		}
	}
	if err := config.ApplyEnv(); err != nil {
		return nil, err
	}
	return config, nil
}

func ReadConfig(path string, config *Config) error {
	if b, err := os.ReadFile(path); err != nil {
		return err
	} else {
		return json.Unmarshal(b, config)
	}
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":             c.Mode,
		"addr":             c.Addr,
		"difficulty":       c.Difficulty,
		"custom":           c.Custom,
		"allowed_origins":  c.AllowedOrigins,
		"shutdown_timeout": c.ShutdownTimeout.Duration.String(),
		"log_level":        c.Log.Level,
		"log_file":         c.Log.File,
	}
}

func (c Config) Production() bool {
	return c.Mode == "production"
}

func (c Config) Development() bool {
	return c.Mode != "production"
}

// Params resolves the board a new game starts with: the custom seed if set,
// the difficulty preset otherwise.
func (c Config) Params() (mines.GameParams, error) {
	if c.Custom != "" {
		p, err := mines.ParseSeed(c.Custom)
		if err != nil {
			return mines.GameParams{}, err
		}
		return *p, nil
	}
	d, err := mines.ParseDifficulty(c.Difficulty)
	if err != nil {
		return mines.GameParams{}, err
	}
	return d.Params()
}
