// Package config loads the optional YAML settings of the cleanfolders command.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/lerenn/clean-folders/configs"
	"github.com/lerenn/clean-folders/pkg/fs"
	"gopkg.in/yaml.v3"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=manager.go -destination=mocks/manager.gen.go -package=mocks

// DefaultConfigPath is where the configuration is looked up when no path is given.
const DefaultConfigPath = "~/.config/cleanfolders/config.yaml"

// Manager interface provides configuration management functionality with an embedded config path.
type Manager interface {
	GetConfig() (Config, error)
	GetConfigWithFallback() (Config, error)
	GetConfigPath() string
	DefaultConfig() Config
}

// realManager manages configuration with an embedded config path.
type realManager struct {
	fs         fs.FS
	configPath string
}

// NewManager creates a new Manager instance with the specified config path.
// An empty path selects DefaultConfigPath.
func NewManager(fsys fs.FS, configPath string) Manager {
	if configPath == "" {
		configPath = DefaultConfigPath
	}

	return &realManager{
		fs:         fsys,
		configPath: configPath,
	}
}

// GetConfig loads configuration from the embedded config path.
func (c *realManager) GetConfig() (Config, error) {
	path, err := c.fs.ExpandPath(c.configPath)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileRead, err)
	}

	exists, err := c.fs.Exists(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileRead, err)
	}
	if !exists {
		return Config{}, fmt.Errorf("%w: %s", ErrConfigFileNotFound, path)
	}

	data, err := c.fs.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileRead, err)
	}

	// Unset keys keep their default values
	config := c.DefaultConfig()
	if err := decode(data, &config); err != nil {
		return Config{}, fmt.Errorf("%w %s: %w", ErrConfigFileParse, filepath.Base(path), err)
	}

	if err := config.expandTildes(c.fs); err != nil {
		return Config{}, err
	}

	return config, nil
}

// GetConfigWithFallback loads the configuration from the embedded config path,
// falling back to default if the file does not exist. A file that exists but
// cannot be read or parsed is still an error.
func (c *realManager) GetConfigWithFallback() (Config, error) {
	config, err := c.GetConfig()
	if err == nil {
		return config, nil
	}

	if errors.Is(err, ErrConfigFileNotFound) {
		return c.DefaultConfig(), nil
	}

	return Config{}, err
}

// GetConfigPath returns the embedded config path.
func (c *realManager) GetConfigPath() string {
	return c.configPath
}

// DefaultConfig returns the default configuration, as shipped in configs/default.yaml.
func (c *realManager) DefaultConfig() Config {
	var config Config
	if err := decode(configs.DefaultConfigYAML, &config); err != nil {
		// The embedded file is part of the build
		panic(fmt.Sprintf("embedded default configuration is invalid: %v", err))
	}
	return config
}

// decode parses YAML strictly: unknown keys are rejected.
func decode(data []byte, config *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(config); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
