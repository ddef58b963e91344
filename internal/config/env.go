package config

import (
	"fmt"
	"os"
	"strings"
)

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}

// ApplyEnv overrides the config with MINES_* variables.
func (c *Config) ApplyEnv() error {
	if Development() {
		c.Mode = "development"
	}
	if addr, ok := os.LookupEnv("MINES_ADDR"); ok {
		c.Addr = addr
	}
	if difficulty, ok := os.LookupEnv("MINES_DIFFICULTY"); ok {
		c.Difficulty = difficulty
	}
	if custom, ok := os.LookupEnv("MINES_CUSTOM"); ok {
		c.Custom = custom
	}
	if origins, ok := os.LookupEnv("MINES_ALLOWED_ORIGINS"); ok {
		c.AllowedOrigins = strings.Split(origins, ",")
	}
	if level, ok := os.LookupEnv("MINES_LOG_LEVEL"); ok {
		c.Log.Level = level
	}
	if file, ok := os.LookupEnv("MINES_LOG_FILE"); ok {
		c.Log.File = file
	}
	if timeout, ok := os.LookupEnv("MINES_SHUTDOWN_TIMEOUT"); ok {
		if err := c.ShutdownTimeout.UnmarshalText([]byte(timeout)); err != nil {
			return fmt.Errorf("invalid MINES_SHUTDOWN_TIMEOUT: %w", err)
		}
	}
	return nil
}
