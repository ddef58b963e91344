package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/minesweeper/internal/config"
)

// New builds the application logger. Development mode logs debug output in
// colour; production logs JSON at info level. The configured level wins over
// both.
func New(c *config.Config, out io.Writer) (*logrus.Logger, error) {
	log := logrus.New()
	if out == nil {
		out = os.Stderr
	}
	log.SetOutput(out)

	logLevel := logrus.InfoLevel
	if c.Development() {
		logLevel = logrus.DebugLevel
	}
	if c.Log.Level != "" {
		level, err := logrus.ParseLevel(c.Log.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level: %w", err)
		}
		logLevel = level
	}
	log.SetLevel(logLevel)

	if c.Development() {
		log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	}

	if c.Log.File != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   c.Log.File,
			MaxSize:    c.Log.MaxSizeMB,
			MaxBackups: c.Log.MaxBackups,
			MaxAge:     c.Log.MaxAgeDays,
			Level:      logLevel,
			Formatter:  &logrus.JSONFormatter{TimestampFormat: time.RFC3339},
		})
		if err != nil {
			return nil, fmt.Errorf("unable to open log file %s: %w", c.Log.File, err)
		}
		log.AddHook(hook)
	}

	return log, nil
}
