package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"runlog"
)

func TestLoadConfigMissingDefaultIsEmpty(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(wd) })

	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)
}

func TestLoadConfigExplicitMissingIsError(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfigReadsRelay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runlog.json")
	data := `{"relay":{"Server":"mail.example.com","Port":587,"From":"script@example.com","To":"ops@example.com"}}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "mail.example.com", cfg.Relay.Server)
	assert.Equal(t, 587, cfg.Relay.Port)
}

func TestLoadConfigRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runlog.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0600))

	_, err := loadConfig(path)
	assert.Error(t, err)
}

func TestMergeFlagsOverrideConfig(t *testing.T) {
	cfg := Config{Relay: runlog.Relay{Server: "mail.example.com", Port: 25, From: "script@example.com", To: "ops@example.com"}}

	merged := cfg.merge(runlog.Relay{To: "oncall@example.com", Subject: "override"})
	assert.Equal(t, "mail.example.com", merged.Server)
	assert.Equal(t, "oncall@example.com", merged.To)
	assert.Equal(t, "override", merged.Subject)

	unchanged := cfg.merge(runlog.Relay{})
	assert.Equal(t, cfg.Relay, unchanged)
}
