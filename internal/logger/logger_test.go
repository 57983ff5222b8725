package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDisabledDiscards(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Init(Options{Enabled: false, Output: &out}))
	L.Error("dropped")
	assert.Empty(t, out.String())
}

func TestInitLevelFilters(t *testing.T) {
	t.Cleanup(func() { _ = Close() })

	var out bytes.Buffer
	require.NoError(t, Init(Options{Enabled: true, Level: "info", Output: &out}))

	L.Debug("hidden")
	L.Info("directory ready", "slots", 16)

	got := out.String()
	assert.NotContains(t, got, "hidden")
	assert.Contains(t, got, "directory ready")
	assert.Contains(t, got, "slots=16")
	assert.Contains(t, got, "minifs")
}

func TestInitBadLevel(t *testing.T) {
	err := Init(Options{Enabled: true, Level: "loud"})
	require.Error(t, err)
}

func TestInitFileAppends(t *testing.T) {
	t.Cleanup(func() { _ = Close() })

	path := filepath.Join(t.TempDir(), "logs", "minifs.log")
	require.NoError(t, Init(Options{Enabled: true, Level: "debug", File: path}))
	L.Debug("first")
	require.NoError(t, Close())

	require.NoError(t, Init(Options{Enabled: true, Level: "debug", File: path}))
	L.Debug("second")
	require.NoError(t, Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "first")
	assert.Contains(t, string(data), "second")
}

func TestOrDiscard(t *testing.T) {
	assert.NotNil(t, OrDiscard(nil))
	l := Discard()
	assert.Same(t, l, OrDiscard(l))
}
