package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "127.0.0.1:50051", c.ServerEndpointAddr)
	assert.Equal(t, "file:tokenkeeper_cache.db", c.CacheDSN)
	assert.Equal(t, 5*time.Second, c.RequestTimeout)
	assert.Equal(t, 3*time.Second, c.OnlineCheckInterval)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "127.0.0.1:50051", cfg.ServerEndpointAddr)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("TOKENKEEPER_CLIENT_SERVER_ADDR", "remote:1")
	t.Setenv("TOKENKEEPER_CLIENT_REQUEST_TIMEOUT", "2s")

	cfg := &Config{CacheDSN: "keep"}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "remote:1", cfg.ServerEndpointAddr)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "keep", cfg.CacheDSN)
}

func TestParseEnv_BadDuration(t *testing.T) {
	t.Setenv("TOKENKEEPER_CLIENT_REQUEST_TIMEOUT", "soon")
	assert.Error(t, parseEnv(&Config{}))
}
