// Package config loads the runtime configuration from TOML, with every
// field defaulting to the built-in parameters.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/veilstar/lumen/scene"
)

// SceneConfig selects population sizes and the banner text
type SceneConfig struct {
	Ornaments     int    `toml:"ornaments"`
	Meteors       int    `toml:"meteors"`
	Snow          int    `toml:"snow"`
	RippleRings   int    `toml:"ripple_rings"`
	RipplePerRing int    `toml:"ripple_per_ring"`
	Banner        string `toml:"banner"`
}

// AudioConfig gates the formation-transition chime
type AudioConfig struct {
	Enabled bool `toml:"enabled"`
}

// Config is the full runtime configuration
type Config struct {
	// Seed drives all scene generation; 0 means the built-in default
	Seed uint64 `toml:"seed"`

	// FeedURL is the websocket landmark detector endpoint; empty means
	// the synthetic gesture source
	FeedURL string `toml:"feed_url"`

	Scene SceneConfig `toml:"scene"`
	Audio AudioConfig `toml:"audio"`
}

// Default returns the zero-config setup: built-in counts, synthetic
// gestures, audio on
func Default() Config {
	return Config{
		Audio: AudioConfig{Enabled: true},
	}
}

// Load reads a TOML file over the defaults. An empty path returns the
// defaults; a missing file is an error so typos don't silently fall back
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config read: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config parse %s: %w", path, err)
	}
	return cfg, nil
}

// SceneOptions maps the config onto scene construction options
func (c Config) SceneOptions() scene.Options {
	return scene.Options{
		Seed:          c.Seed,
		OrnamentCount: c.Scene.Ornaments,
		MeteorCount:   c.Scene.Meteors,
		SnowCount:     c.Scene.Snow,
		RippleRings:   c.Scene.RippleRings,
		RipplePerRing: c.Scene.RipplePerRing,
		BannerText:    c.Scene.Banner,
	}
}
