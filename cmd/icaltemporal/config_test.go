package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ics "github.com/arran4/ical-temporal"
)

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("ICALTEMPORAL_ZONE", "Asia/Beirut")
	t.Setenv("ICALTEMPORAL_OUTPUT", "yaml")
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "Asia/Beirut", cfg.Zone)
	assert.Equal(t, "yaml", cfg.Output)
	assert.Equal(t, 75, cfg.LineLength)
	assert.Equal(t, "crlf", cfg.NewLine)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("zone: \"-03:30\"\nline-length: 40\nnewline: lf\noutput: json\n"), 0644))
	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Config{Zone: "-03:30", LineLength: 40, NewLine: "lf", Output: "json"}, cfg)

	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestConfigLocation(t *testing.T) {
	loc, err := Config{Zone: "-03:30"}.location()
	require.NoError(t, err)
	_, seconds := time.Date(2020, 1, 1, 0, 0, 0, 0, loc).Zone()
	assert.Equal(t, -(3*3600 + 30*60), seconds)

	loc, err = Config{Zone: "UTC"}.location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	loc, err = Config{}.location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	_, err = Config{Zone: "Nowhere/Special"}.location()
	assert.Error(t, err)
	_, err = Config{Zone: "+5x"}.location()
	assert.ErrorIs(t, err, ics.ErrMalformedOffset)
}

func TestConfigFoldOps(t *testing.T) {
	ops, err := Config{LineLength: 20, NewLine: "LF"}.foldOps()
	require.NoError(t, err)
	assert.Equal(t, []any{ics.WithLineLength(20), ics.WithNewLineUnix}, ops)

	ops, err = Config{LineLength: 75, NewLine: "native"}.foldOps()
	require.NoError(t, err)
	assert.Equal(t, []any{ics.WithLineLength(75), ics.NewLine}, ops)

	_, err = Config{NewLine: "cr"}.foldOps()
	assert.Error(t, err)
}
