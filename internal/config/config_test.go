package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("OSCWIRE_CONFIG", "")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "oscwire.yaml")
	data := []byte(`
listen: 127.0.0.1:7001
send: 127.0.0.1:7002
address: /ping
interval: 2s
read_timeout: 250ms
codec:
  pad_blobs: true
metrics:
  listen: 127.0.0.1:9100
log:
  level: debug
  format: json
  outputs: [stdout]
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:7001", cfg.Listen)
	assert.Equal(t, "127.0.0.1:7002", cfg.Send)
	assert.Equal(t, "/ping", cfg.Address)
	assert.Equal(t, 2*time.Second, cfg.Interval)
	assert.Equal(t, 250*time.Millisecond, cfg.ReadTimeout)
	assert.True(t, cfg.Codec.PadBlobs)
	assert.Equal(t, "127.0.0.1:9100", cfg.Metrics.Listen)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, []string{"stdout"}, cfg.Log.Outputs)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("OSCWIRE_CONFIG", "")
	t.Setenv("OSCWIRE_LOG_LEVEL", "warn")
	t.Setenv("OSCWIRE_CODEC_PAD_BLOBS", "true")
	t.Setenv("OSCWIRE_INTERVAL", "1s")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.True(t, cfg.Codec.PadBlobs)
	assert.Equal(t, time.Second, cfg.Interval)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	for _, tt := range []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, false},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, false},
		{"zero interval", func(c *Config) { c.Interval = 0 }, false},
		{"negative timeout", func(c *Config) { c.ReadTimeout = -time.Second }, false},
		{"empty address", func(c *Config) { c.Address = " " }, false},
		{"empty outputs", func(c *Config) { c.Log.Outputs = nil }, true},
	} {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
