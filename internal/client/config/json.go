package config

import (
	"encoding/json"
	"errors"
	"os"
	"time"

	"github.com/dmitrijs2005/bookswap/internal/flagx"
)

// Duration wraps time.Duration so JSON can specify intervals either as
// strings like "15s" or as integer nanoseconds.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		d.Duration = parsed
	default:
		return errors.New("invalid duration")
	}
	return nil
}

// JsonConfig is a DTO used exclusively for JSON unmarshalling. After parsing,
// values are copied into the runtime Config.
type JsonConfig struct {
	ServerBaseURL  string   `json:"server_base_url"`
	RequestTimeout Duration `json:"request_timeout"`
	CacheTTL       Duration `json:"cache_ttl"`
	CacheSize      int      `json:"cache_size"`
	LogLevel       string   `json:"log_level"`
}

// parseJson overlays Config with values loaded from a JSON file resolved via
// the -c/-config flags. When no file is given the function is a no-op. Zero
// values in the file leave the corresponding Config field untouched, so a
// partial file only overrides what it names.
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.CacheTTL.Duration != 0 {
		cfg.CacheTTL = jc.CacheTTL.Duration
	}
	if jc.CacheSize != 0 {
		cfg.CacheSize = jc.CacheSize
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
