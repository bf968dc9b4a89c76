// Package config loads tool settings from an optional yaml dotfile.
package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const (
	configFileName = ".pdfdeck.yaml"
	configEnvVar   = "PDFDECK_CONFIG"

	defaultListenAddr = "localhost:8449"
)

// Config holds the settings every surface of the tool shares.
type Config struct {
	// OutputDir is where merge and split results are written. Empty means
	// the current working directory.
	OutputDir string `yaml:"output_dir"`

	// IgnoreEncryption accepts documents that carry an encryption
	// dictionary, such as owner-locked files, instead of rejecting them.
	IgnoreEncryption bool `yaml:"ignore_encryption"`

	// ListenAddr is the bind address for serve mode.
	ListenAddr string `yaml:"listen_addr"`
}

// Overrides carries command line settings that take precedence over the
// config file. A nil field means the flag was not given, so the file value
// stands either way.
type Overrides struct {
	OutputDir        *string
	IgnoreEncryption *bool
}

// Apply folds the given overrides into cfg.
func (o Overrides) Apply(cfg Config) Config {
	if o.OutputDir != nil {
		cfg.OutputDir = *o.OutputDir
	}
	if o.IgnoreEncryption != nil {
		cfg.IgnoreEncryption = *o.IgnoreEncryption
	}
	return cfg
}

// Path returns the config file location: $PDFDECK_CONFIG if set, otherwise
// ~/.pdfdeck.yaml.
func Path() string {
	if p, ok := os.LookupEnv(configEnvVar); ok && p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return configFileName
	}
	return filepath.Join(home, configFileName)
}

// Load reads the config at path. A missing file yields the defaults; a
// present but unreadable or malformed file is an error.
func Load(path string) (Config, error) {
	cfg := Config{ListenAddr: defaultListenAddr}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = defaultListenAddr
	}
	return cfg, nil
}
