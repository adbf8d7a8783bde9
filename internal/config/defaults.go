package config

import (
	"runtime"

	"github.com/spf13/viper"
)

// setDefaults sets every key so that environment overrides are seen by
// Unmarshal
func setDefaults(v *viper.Viper) {
	v.SetDefault("definitions_path", "")
	v.SetDefault("log_level", "info")

	v.SetDefault("output.indent", 2)

	v.SetDefault("batch.workers", runtime.NumCPU())
}
