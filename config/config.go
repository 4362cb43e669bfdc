// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ChainSafe/gotries/internal/log"
	"github.com/klauspost/compress/gzip"
	"github.com/naoina/toml"
)

// Config is the configuration of the triectl tool.
type Config struct {
	Global  GlobalConfig  `toml:"global,omitempty"`
	Log     LogConfig     `toml:"log,omitempty"`
	Codec   CodecConfig   `toml:"codec,omitempty"`
	Metrics MetricsConfig `toml:"metrics,omitempty"`
}

// GlobalConfig is to marshal/unmarshal toml global config vars
type GlobalConfig struct {
	LogLvl string `toml:"log,omitempty" validate:"required,loglevel"`
}

// LogConfig represents the log levels for individual packages.
// An empty level falls back to the global log level.
type LogConfig struct {
	CodecLvl    string `toml:"codec,omitempty" validate:"omitempty,loglevel"`
	WordlistLvl string `toml:"wordlist,omitempty" validate:"omitempty,loglevel"`
	QueryLvl    string `toml:"query,omitempty" validate:"omitempty,loglevel"`
	CLILvl      string `toml:"cli,omitempty" validate:"omitempty,loglevel"`
}

// CodecConfig is to marshal/unmarshal toml codec config vars
type CodecConfig struct {
	Gzip             bool `toml:"gzip"`
	CompressionLevel int  `toml:"compression-level" validate:"min=-2,max=9"`
}

// MetricsConfig is to marshal/unmarshal toml metrics config vars
type MetricsConfig struct {
	Enabled bool `toml:"enabled"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Global: GlobalConfig{
			LogLvl: log.Info.String(),
		},
		Codec: CodecConfig{
			CompressionLevel: gzip.DefaultCompression,
		},
	}
}

// Load reads the toml configuration file at path on top of
// the default configuration and validates the result.
func Load(path string) (cfg Config, err error) {
	cfg = Default()

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return cfg, fmt.Errorf("reading configuration file: %w", err)
	}

	err = toml.Unmarshal(data, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("decoding configuration file %s: %w", path, err)
	}

	err = cfg.Validate()
	if err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Export writes the configuration given to a toml file at path.
func Export(cfg Config, path string) (err error) {
	raw, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding configuration: %w", err)
	}

	err = os.WriteFile(path, raw, 0600)
	if err != nil {
		return fmt.Errorf("writing configuration file: %w", err)
	}

	return nil
}

// Level returns the log level parsed from packageLevel,
// or from the global log level if packageLevel is empty.
func (c Config) Level(packageLevel string) (level log.Level, err error) {
	if packageLevel == "" {
		packageLevel = c.Global.LogLvl
	}
	return log.ParseLevel(packageLevel)
}
