package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_Overlays(t *testing.T) {
	t.Setenv("TOKENKEEPER_GRPC_ADDR", ":6000")
	t.Setenv("TOKENKEEPER_ACCESS_TOKEN_TTL", "90s")
	t.Setenv("TOKENKEEPER_NATS_STREAM", "EVENTS")

	cfg := defaults()
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, ":6000", cfg.EndpointAddrGRPC)
	assert.Equal(t, 90*time.Second, cfg.AccessTokenValidityDuration)
	assert.Equal(t, "EVENTS", cfg.NATSStream)
	assert.Equal(t, "secretKey", cfg.SecretKey)
	assert.Equal(t, 3*time.Minute, cfg.RefreshTokenValidityDuration)
}

func TestParseEnv_BadDuration(t *testing.T) {
	t.Setenv("TOKENKEEPER_REFRESH_TOKEN_TTL", "soon")

	err := parseEnv(defaults())
	require.ErrorContains(t, err, "parse env")
}
