// Package config loads pantry's layered configuration: built-in defaults,
// then an optional YAML file, then PANTRY_* environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/tayloree/pantry/internal/validation"
)

// PathEnvVar overrides the config file location.
const PathEnvVar = "PANTRY_CONFIG"

// EnvPrefix marks the environment variables that override settings:
// PANTRY_STORE_URL sets store.url.
const EnvPrefix = "PANTRY_"

// DefaultPaths are tried, in order, when no path is given.
var DefaultPaths = []string{"pantry.yaml", "pantry.yml"}

// Config is the full runtime configuration.
type Config struct {
	Store     StoreConfig     `koanf:"store"`
	Recommend RecommendConfig `koanf:"recommend"`
	Log       LogConfig       `koanf:"log"`
}

// StoreConfig points at the hosted data store. An empty URL means only
// local snapshot files can be used.
type StoreConfig struct {
	URL     string        `koanf:"url" validate:"omitempty,http_url"`
	Token   string        `koanf:"token"`
	Timeout time.Duration `koanf:"timeout" validate:"gt=0"`
}

type RecommendConfig struct {
	Limit int `koanf:"limit" validate:"gte=1,lte=100"`
}

type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn warning error disabled off none"`
	Format string `koanf:"format" validate:"oneof=json console"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Store: StoreConfig{
			Timeout: 15 * time.Second,
		},
		Recommend: RecommendConfig{
			Limit: 5,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Load builds the configuration. path may be empty, in which case
// PANTRY_CONFIG and then DefaultPaths are consulted; a missing default file
// is not an error, a missing explicit one is.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	configPath, err := resolvePath(path)
	if err != nil {
		return nil, err
	}
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decoding configuration: %w", err)
	}
	cfg.Store.URL = strings.TrimRight(strings.TrimSpace(cfg.Store.URL), "/")
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	cfg.Log.Format = strings.ToLower(strings.TrimSpace(cfg.Log.Format))

	if err := validation.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func resolvePath(explicit string) (string, error) {
	candidate := strings.TrimSpace(explicit)
	if candidate == "" {
		candidate = strings.TrimSpace(os.Getenv(PathEnvVar))
	}
	if candidate != "" {
		if _, err := os.Stat(candidate); err != nil {
			return "", fmt.Errorf("config file %s: %w", candidate, err)
		}
		return candidate, nil
	}

	for _, p := range DefaultPaths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", nil
}

// envKey maps PANTRY_STORE_URL to store.url and PANTRY_RECOMMEND_LIMIT to
// recommend.limit. Only the first underscore after the prefix separates
// section from key.
func envKey(name string) string {
	key := strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}
