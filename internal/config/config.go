// Package config loads the configuration of the rwf command line tool.
package config

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/chaisql/rwf"
	"github.com/cockroachdb/errors"
)

// Config holds the settings shared by every command.
type Config struct {
	MajorVersion int
	MinorVersion int
	// StorePath is the directory of the sample store.
	StorePath string
	LogLevel  string
	// Workers bounds the number of inputs decoded at the same time.
	Workers int
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		MajorVersion: rwf.MajorVersion,
		MinorVersion: rwf.MinorVersion,
		StorePath:    "rwf-samples",
		LogLevel:     "info",
		Workers:      4,
	}
}

type fileConfig struct {
	MajorVersion int    `toml:"major_version"`
	MinorVersion int    `toml:"minor_version"`
	StorePath    string `toml:"store_path"`
	LogLevel     string `toml:"log_level"`
	Workers      int    `toml:"workers"`
}

// Load reads the TOML file at path. Keys missing from the file keep their
// default value.
func Load(path string) (Config, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, errors.Wrapf(err, "load config %s", path)
	}

	return fromFile(raw, meta)
}

// Parse is like Load for a configuration held in memory.
func Parse(data string) (Config, error) {
	var raw fileConfig
	meta, err := toml.Decode(data, &raw)
	if err != nil {
		return Config{}, errors.Wrap(err, "parse config")
	}

	return fromFile(raw, meta)
}

func fromFile(raw fileConfig, meta toml.MetaData) (Config, error) {
	cfg := Default()

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.Newf("unknown config key %q", undecoded[0].String())
	}

	if meta.IsDefined("major_version") {
		cfg.MajorVersion = raw.MajorVersion
	}
	if meta.IsDefined("minor_version") {
		cfg.MinorVersion = raw.MinorVersion
	}
	if meta.IsDefined("store_path") {
		cfg.StorePath = strings.TrimSpace(raw.StorePath)
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("workers") {
		cfg.Workers = raw.Workers
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration can be used.
func (c Config) Validate() error {
	if c.MajorVersion != rwf.MajorVersion {
		return errors.Wrapf(rwf.ErrVersionNotSupported, "major version %d", c.MajorVersion)
	}
	if c.MinorVersion < 0 {
		return errors.Newf("invalid minor version %d", c.MinorVersion)
	}
	if c.StorePath == "" {
		return errors.New("config missing store_path")
	}
	if c.Workers < 1 {
		return errors.Newf("workers must be positive, got %d", c.Workers)
	}
	return nil
}
