package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper/internal/config"
)

func TestLevels(t *testing.T) {
	c := config.Default()
	log, err := New(c, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())

	c.Mode = "development"
	log, err = New(c, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())

	c.Log.Level = "warn"
	log, err = New(c, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())

	c.Log.Level = "chatty"
	_, err = New(c, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestProductionLogsJSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(config.Default(), &buf)
	require.NoError(t, err)

	log.WithField("width", 9).Info("new game")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "new game", entry["msg"])
	assert.Equal(t, float64(9), entry["width"])
}

func TestLogFile(t *testing.T) {
	c := config.Default()
	c.Log.File = filepath.Join(t.TempDir(), "mines.log")

	log, err := New(c, &bytes.Buffer{})
	require.NoError(t, err)
	log.Info("hello file")

	b, err := os.ReadFile(c.Log.File)
	require.NoError(t, err)
	assert.Contains(t, string(b), "hello file")
}
