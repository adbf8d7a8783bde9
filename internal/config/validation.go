package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/decred/slog"
)

const (
	maxIndent       = 8
	maxBatchWorkers = 1024
)

// ValidateConfig checks every setting and reports the first invalid one
func ValidateConfig(config *Config) error {
	if _, ok := slog.LevelFromString(strings.ToLower(config.LogLevel)); !ok {
		return fmt.Errorf("invalid log_level: %q", config.LogLevel)
	}

	if config.DefinitionsPath != "" {
		if _, err := os.Stat(config.DefinitionsPath); err != nil {
			return fmt.Errorf("definitions_path: %w", err)
		}
	}

	if config.Output.Indent < 0 || config.Output.Indent > maxIndent {
		return fmt.Errorf("output.indent must be between 0 and %d, got %d", maxIndent, config.Output.Indent)
	}

	if config.Batch.Workers < 1 || config.Batch.Workers > maxBatchWorkers {
		return fmt.Errorf("batch.workers must be between 1 and %d, got %d", maxBatchWorkers, config.Batch.Workers)
	}

	return nil
}
