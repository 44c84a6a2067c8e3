// Package config loads runtime configuration for the tokenkeeper CLI.
//
// Sources, later ones winning:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. TOKENKEEPER_CLIENT_* environment variables.
//  4. Command-line flags.
//
// JSON durations accept strings like "5s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "cache_dsn": "file:tokenkeeper_cache.db",
//	  "request_timeout": "5s",
//	  "online_check_interval": "3s"
//	}
package config

import "time"

// Config holds runtime settings for the tokenkeeper CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - CacheDSN: SQLite DSN of the local cache of seen tokens.
//   - RequestTimeout: deadline applied to every remote call.
//   - OnlineCheckInterval: how often the CLI checks that the server is reachable.
type Config struct {
	ServerEndpointAddr  string        `env:"TOKENKEEPER_CLIENT_SERVER_ADDR"`
	CacheDSN            string        `env:"TOKENKEEPER_CLIENT_CACHE_DSN"`
	RequestTimeout      time.Duration `env:"TOKENKEEPER_CLIENT_REQUEST_TIMEOUT"`
	OnlineCheckInterval time.Duration `env:"TOKENKEEPER_CLIENT_ONLINE_CHECK_INTERVAL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.CacheDSN = "file:tokenkeeper_cache.db"
	c.RequestTimeout = 5 * time.Second
	c.OnlineCheckInterval = 3 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays the JSON
// file, the environment and the flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	if err := parseEnv(cfg); err != nil {
		panic(err)
	}
	parseFlags(cfg)
	return cfg
}
