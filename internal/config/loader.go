package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, an optional YAML file and env vars.
// Order of precedence (low -> high):
//  1. Defaults()
//  2. YAML file named by NBABOT_CONFIG
//  3. environment variables (PORT, LINE_CHANNEL_SECRET, STATS_TIMEOUT, ...)
func Load() (Config, error) {
	k := koanf.New(".")

	if path := os.Getenv(envConfigFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, loadError("file "+path, err)
		}
	}

	envProvider := env.Provider("", ".", func(s string) string {
		// Unknown variables map to "" and are skipped.
		return envKeys[strings.TrimSpace(s)]
	})
	if err := k.Load(envProvider, nil); err != nil {
		return Config{}, loadError("env", err)
	}

	cfg := Defaults()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Config{}, loadError("unmarshal", err)
	}
	cfg.normalize()
	return cfg, nil
}
