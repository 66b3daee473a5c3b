// Package config loads optional CLI defaults from a whatscript.toml
// found in the working directory or any parent. Flags always override
// config values; a missing file is not an error.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"
)

// FileName is the config file looked up from the working directory upward.
const FileName = "whatscript.toml"

// Config holds CLI defaults.
type Config struct {
	Detect DetectConfig `toml:"detect"`
	Output OutputConfig `toml:"output"`
}

// DetectConfig configures the detector.
type DetectConfig struct {
	Shards int64 `toml:"shards"`
}

// OutputConfig configures how results are rendered.
type OutputConfig struct {
	Format string `toml:"format"`
	Color  string `toml:"color"`
}

// Default returns the config used when no file is found.
func Default() Config {
	return Config{
		Output: OutputConfig{Format: "pretty", Color: "auto"},
	}
}

// Shards returns the configured shard count as an int.
func (c Config) Shards() int {
	n, err := safecast.Conv[int](c.Detect.Shards)
	if err != nil {
		panic(fmt.Errorf("shards overflow: %w", err))
	}
	return n
}

func find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load searches for a config file upward from startDir and parses it.
// found is false (with Default values) when no file exists.
func Load(startDir string) (cfg Config, found bool, err error) {
	cfg = Default()
	path, found, err := find(startDir)
	if err != nil || !found {
		return cfg, found, err
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, true, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, true, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, true, nil
}

func (c Config) validate() error {
	switch c.Output.Format {
	case "pretty", "json", "msgpack":
	default:
		return fmt.Errorf("invalid output.format %q (must be pretty, json, or msgpack)", c.Output.Format)
	}
	switch c.Output.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("invalid output.color %q (must be auto, on, or off)", c.Output.Color)
	}
	if c.Detect.Shards < 0 {
		return fmt.Errorf("invalid detect.shards %d (must be >= 0)", c.Detect.Shards)
	}
	return nil
}
