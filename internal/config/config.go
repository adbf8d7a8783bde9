package config

import (
	"fmt"
	"os"

	"github.com/LeJamon/xrplcodec/internal/codec/binary-codec/definitions"
)

// DefaultConfigFile is the file LoadDefaultConfig reads when it exists.
const DefaultConfigFile = "xrplcodec.toml"

// Config represents the complete xrplcodec configuration
type Config struct {
	// Path of a definitions.json replacing the embedded table. Empty means
	// the embedded table.
	DefinitionsPath string `toml:"definitions_path" mapstructure:"definitions_path"`

	// One of trace, debug, info, warn, error, critical, off
	LogLevel string `toml:"log_level" mapstructure:"log_level"`

	Output OutputConfig `toml:"output" mapstructure:"output"`
	Batch  BatchConfig  `toml:"batch" mapstructure:"batch"`

	configPath string `toml:"-" mapstructure:"-"`
}

// OutputConfig controls how decoded JSON is written
type OutputConfig struct {
	// Spaces per indentation level, 0 for compact output
	Indent int `toml:"indent" mapstructure:"indent"`
}

// BatchConfig controls the batch command
type BatchConfig struct {
	Workers int `toml:"workers" mapstructure:"workers"`
}

// GetConfigPath returns the path of the file the configuration was read
// from, or "" when only defaults and environment were used
func (c *Config) GetConfigPath() string {
	return c.configPath
}

// LoadDefinitions returns the definitions table selected by the
// configuration.
func (c *Config) LoadDefinitions() (*definitions.Definitions, error) {
	if c.DefinitionsPath == "" {
		return definitions.Get(), nil
	}
	data, err := os.ReadFile(c.DefinitionsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions %s: %w", c.DefinitionsPath, err)
	}
	defs, err := definitions.Load(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load definitions %s: %w", c.DefinitionsPath, err)
	}
	return defs, nil
}
