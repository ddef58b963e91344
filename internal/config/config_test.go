package config

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper/internal/mines"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	c := Default()
	assert.True(t, c.Production())
	assert.False(t, c.Development())
	assert.Equal(t, "localhost:8080", c.Addr)
	assert.Equal(t, 15*time.Second, c.ShutdownTimeout.Duration)

	p, err := c.Params()
	require.NoError(t, err)
	assert.Equal(t, mines.GameParams{Width: 9, Height: 9, MineCount: 10}, p)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `{
		"mode": "development",
		"addr": ":9000",
		"difficulty": "hard",
		"shutdown_timeout": "3s",
		"log": {"level": "debug", "file": "/tmp/mines.log"}
	}`)

	c, err := Load(path)
	require.NoError(t, err)
	assert.True(t, c.Development())
	assert.Equal(t, ":9000", c.Addr)
	assert.Equal(t, 3*time.Second, c.ShutdownTimeout.Duration)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, "/tmp/mines.log", c.Log.File)
	assert.Equal(t, 3, c.Log.MaxBackups, "defaults survive partial files")

	p, err := c.Params()
	require.NoError(t, err)
	assert.Equal(t, mines.GameParams{Width: 30, Height: 16, MineCount: 99}, p)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeConfig(t, `{"shutdown_timeout": true}`))
	assert.Error(t, err)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `{"addr": ":9000", "difficulty": "hard"}`)
	t.Setenv("MINES_ADDR", ":7000")
	t.Setenv("MINES_CUSTOM", "5:4:3")
	t.Setenv("MINES_ALLOWED_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("MINES_SHUTDOWN_TIMEOUT", "1m")
	t.Setenv("DEVELOPMENT", "1")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7000", c.Addr)
	assert.True(t, c.Development())
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, c.AllowedOrigins)
	assert.Equal(t, time.Minute, c.ShutdownTimeout.Duration)

	p, err := c.Params()
	require.NoError(t, err)
	assert.Equal(t, mines.GameParams{Width: 5, Height: 4, MineCount: 3}, p)
}

func TestEnvInvalidTimeout(t *testing.T) {
	t.Setenv("MINES_SHUTDOWN_TIMEOUT", "soon")
	_, err := Load("")
	assert.Error(t, err)
}

func TestDevelopmentEnv(t *testing.T) {
	t.Setenv("DEVELOPMENT", "0")
	assert.False(t, Development())
	t.Setenv("DEVELOPMENT", "yes")
	assert.True(t, Development())
}

func TestParamsErrors(t *testing.T) {
	c := Default()
	c.Difficulty = "legendary"
	_, err := c.Params()
	assert.ErrorIs(t, err, mines.ErrUnknownDifficulty)

	c.Custom = "1:1:1"
	_, err = c.Params()
	assert.ErrorIs(t, err, mines.ErrInvalidConfiguration)
}

func TestDuration(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"1h30m"`), &d))
	assert.Equal(t, 90*time.Minute, d.Duration)

	require.NoError(t, json.Unmarshal([]byte(`1000`), &d))
	assert.Equal(t, time.Microsecond, d.Duration)

	assert.Error(t, json.Unmarshal([]byte(`"later"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`[]`), &d))

	b, err := json.Marshal(Duration{2 * time.Second})
	require.NoError(t, err)
	assert.Equal(t, `"2s"`, string(b))
}

func TestWebSocketOrigins(t *testing.T) {
	request := func(origin string) *http.Request {
		r := httptest.NewRequest(http.MethodGet, "http://localhost:8080/play", nil)
		if origin != "" {
			r.Header.Set("Origin", origin)
		}
		return r
	}

	ws := NewWebSocket(nil)
	assert.Nil(t, ws.Upgrader.CheckOrigin)

	ws = NewWebSocket([]string{"*"})
	assert.True(t, ws.Upgrader.CheckOrigin(request("http://evil.test")))

	ws = NewWebSocket([]string{"http://a.test"})
	assert.True(t, ws.Upgrader.CheckOrigin(request("http://a.test")))
	assert.True(t, ws.Upgrader.CheckOrigin(request("http://localhost:8080")))
	assert.True(t, ws.Upgrader.CheckOrigin(request("")))
	assert.False(t, ws.Upgrader.CheckOrigin(request("http://b.test")))
}
