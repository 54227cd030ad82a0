package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/wanderer/internal/observability"
	"github.com/san-kum/wanderer/internal/physics"
	"github.com/san-kum/wanderer/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	root := newRootCmd()
	root.SetArgs(append(args, "--log-level", "error"))
	root.SetOut(new(nopWriter))
	root.SetErr(new(nopWriter))
	return root.Execute()
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestLoadConfigLayers(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "over.yaml")
	require.NoError(t, os.WriteFile(file, []byte("movement:\n  base_speed: 3\n"), 0644))

	root := newRootCmd()
	cmd, _, err := root.Find([]string{"run"})
	require.NoError(t, err)
	require.NoError(t, cmd.ParseFlags([]string{"--preset", "fast", "--config", file, "--boundary", "wrap", "--start", "center"}))

	cfg, err := loadConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, 3.0, cfg.Movement.BaseSpeed, "file overrides preset")
	assert.Equal(t, physics.EdgeWrap, cfg.Behavior.BoundaryBehavior)
	assert.Equal(t, physics.CenterStart(), cfg.Behavior.StartPosition)

	require.NoError(t, cmd.ParseFlags([]string{"--speed", "7"}))
	cfg, err = loadConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, 7.0, cfg.Movement.BaseSpeed, "flag overrides file")
}

func TestLoadConfigRejectsBadInput(t *testing.T) {
	for _, args := range [][]string{
		{"--preset", "nope"},
		{"--boundary", "sideways"},
		{"--start", "corner"},
	} {
		root := newRootCmd()
		cmd, _, err := root.Find([]string{"run"})
		require.NoError(t, err)
		require.NoError(t, cmd.ParseFlags(args))
		_, err = loadConfig(cmd)
		assert.Error(t, err, "%v", args)
	}
}

func TestRunSavesTrace(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, execute(t, "run", "--data", dir, "--ticks", "30", "--seed", "7", "--pointer", "center"))

	st := storage.New(dir)
	runs, err := st.List()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, int64(7), runs[0].Seed)
	assert.Equal(t, 30, runs[0].Ticks)
	assert.Equal(t, "center", runs[0].Pointer)

	trace, err := st.LoadTrace(runs[0].ID)
	require.NoError(t, err)
	assert.Len(t, trace, 31)

	svg := filepath.Join(dir, "run.svg")
	require.NoError(t, execute(t, "export-svg", runs[0].ID, "--data", dir, "--out", svg))
	data, err := os.ReadFile(svg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestRunNoSave(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, execute(t, "run", "--data", dir, "--ticks", "5", "--no-save"))

	runs, err := storage.New(dir).List()
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestRunUnknownPointer(t *testing.T) {
	assert.Error(t, execute(t, "run", "--data", t.TempDir(), "--pointer", "spiral", "--no-save"))
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "w.yaml")
	require.NoError(t, execute(t, "config", "init", path))
	assert.FileExists(t, path)
	assert.Error(t, execute(t, "config", "init", path), "refuses to overwrite")
}

func TestDebugRaisesLogLevel(t *testing.T) {
	root := newRootCmd()
	cmd, _, err := root.Find([]string{"run"})
	require.NoError(t, err)
	require.NoError(t, cmd.ParseFlags([]string{"--debug"}))

	_, err = loadConfig(cmd)
	require.NoError(t, err)
	assert.True(t, observability.GetLogger().Core().Enabled(zap.DebugLevel))
	assert.True(t, log.Core().Enabled(zap.DebugLevel))
}

func TestDebugKeepsExplicitLogLevel(t *testing.T) {
	log = zap.NewNop()
	root := newRootCmd()
	cmd, _, err := root.Find([]string{"run"})
	require.NoError(t, err)
	require.NoError(t, cmd.ParseFlags([]string{"--debug", "--log-level", "error"}))

	_, err = loadConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, "error", logLevel)
	assert.False(t, log.Core().Enabled(zap.DebugLevel))
}

func TestPresetDebugRaisesLogLevel(t *testing.T) {
	root := newRootCmd()
	cmd, _, err := root.Find([]string{"run"})
	require.NoError(t, err)
	require.NoError(t, cmd.ParseFlags([]string{"--preset", "chaotic"}))

	cfg, err := loadConfig(cmd)
	require.NoError(t, err)
	require.True(t, cfg.Advanced.EnableDebug)
	assert.Equal(t, "debug", logLevel)
}
