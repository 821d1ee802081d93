package config

import "time"

// Config holds runtime settings for the BookSwap CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the backend REST API, including the
//     version prefix (e.g. "https://bookswap.example.com/api/v1").
//   - RequestTimeout: per-request deadline applied by both HTTP clients.
//   - CacheTTL: staleness window for cached query results.
//   - CacheSize: maximum number of cached query entries.
//   - LogLevel: minimum level for structured logs ("debug".."error").
//
// Units: RequestTimeout and CacheTTL are time.Duration values.
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	CacheTTL       time.Duration
	CacheSize      int
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
//
// The backend enforces no request deadline of its own, so the client picks
// one; 15s is generous for every endpoint the CLI talks to.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8000/api/v1"
	c.RequestTimeout = 15 * time.Second
	c.CacheTTL = 5 * time.Minute
	c.CacheSize = 256
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
