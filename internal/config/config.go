// Package config loads the optional palintape.yaml configuration file.
// All fields have defaults; the file and every key in it are optional.
package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Config is the application configuration shared by the CLI commands.
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Server  ServerConfig  `mapstructure:"server"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Display DisplayConfig `mapstructure:"display"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type RedisConfig struct {
	// Addr empty means "use the in-memory store".
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	// TTLSeconds of zero keeps runs forever.
	TTLSeconds int `mapstructure:"ttl_seconds"`
}

type DisplayConfig struct {
	// Style selects the tape renderer: plain, boxed or neon.
	Style string `mapstructure:"style"`
	// DelayMS is the pause between animated frames.
	DelayMS int `mapstructure:"delay_ms"`
	// Width is the number of tape cells around the head.
	Width int `mapstructure:"width"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log:     LogConfig{Level: "info"},
		Server:  ServerConfig{Addr: ":8080"},
		Display: DisplayConfig{Style: "plain", DelayMS: 100, Width: 40},
	}
}

// Load reads path (when non-empty) and overlays it on the defaults.
// A missing file at the default path is not an error; an explicit path
// that cannot be read is.
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	// YAML into a loose map first, then a strict mapstructure decode so
	// typos in keys surface instead of being silently dropped.
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &cfg,
		ErrorUnused: true,
	})
	if err != nil {
		return cfg, err
	}
	if err := decoder.Decode(raw); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}
