package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper/internal/mines"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	cmd := NewRootCmd(&logs)
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestPlayCustom(t *testing.T) {
	out, err := run(t, "q\n", "play", "--custom", "4:2:1")
	require.NoError(t, err)

	assert.Contains(t, out, ":)  0 / 1")
	assert.Contains(t, out, "  0 1 2 3\n")
}

func TestPlayDifficulty(t *testing.T) {
	out, err := run(t, "", "play", "-d", "medium")
	require.NoError(t, err)
	assert.Contains(t, out, "0 / 40")
}

func TestPlayConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"difficulty": "hard"}`), 0o600))

	out, err := run(t, "", "play", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "0 / 99")

	// Flags win over the file.
	out, err = run(t, "", "play", "--config", path, "-d", "e")
	require.NoError(t, err)
	assert.Contains(t, out, "0 / 10")
}

func TestInvalidBoard(t *testing.T) {
	_, err := run(t, "", "play", "--custom", "2:2:4")
	assert.ErrorIs(t, err, mines.ErrInvalidConfiguration)

	_, err = run(t, "", "play", "-d", "nightmare")
	assert.ErrorIs(t, err, mines.ErrUnknownDifficulty)
}

func TestMissingConfig(t *testing.T) {
	_, err := run(t, "", "play", "--config", filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
