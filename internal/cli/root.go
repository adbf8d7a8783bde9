package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	binarycodec "github.com/LeJamon/xrplcodec/internal/codec/binary-codec"
	"github.com/LeJamon/xrplcodec/internal/config"
)

var (
	// Global flags
	configFile      string
	debug           bool
	logLevel        string
	definitionsPath string
	indent          int

	// Set up by initConfig before any command runs
	appConfig *config.Config
	appCodec  *binarycodec.Codec
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "xrplcodec",
	Short: "xrplcodec - XRPL canonical binary codec",
	Long: `xrplcodec converts XRP Ledger transactions and ledger objects between
their JSON form and the canonical binary form, builds signing data and
transaction IDs, and encodes and decodes base58 addresses, keys and seeds.

Arguments that take JSON or hex accept the value inline, "@path" to read a
file, or "-" (or nothing) to read stdin. JSON input may contain comments.`,
	Version:           "0.1.0-dev",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initConfig,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "conf", "", "configuration file path (default ./"+config.DefaultConfigFile+" when present)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error, critical, off")
	rootCmd.PersistentFlags().StringVar(&definitionsPath, "definitions", "", "definitions.json replacing the embedded table")
	rootCmd.PersistentFlags().IntVar(&indent, "indent", -1, "JSON output indentation, 0 for compact (default from config)")
}

// initConfig loads the configuration, applies flag overrides and builds the
// codec shared by all commands.
func initConfig(cmd *cobra.Command, _ []string) error {
	var (
		cfg *config.Config
		err error
	)
	if configFile != "" {
		cfg, err = config.LoadConfig(configFile)
	} else {
		cfg, err = config.LoadDefaultConfig()
	}
	if err != nil {
		return err
	}

	if definitionsPath != "" {
		cfg.DefinitionsPath = definitionsPath
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if debug {
		cfg.LogLevel = "debug"
	}
	if indent >= 0 {
		cfg.Output.Indent = indent
	}
	if err := config.ValidateConfig(cfg); err != nil {
		return err
	}

	if err := setLogLevels(cfg.LogLevel); err != nil {
		return err
	}

	defs, err := cfg.LoadDefinitions()
	if err != nil {
		return err
	}
	log.Debugf("Config %q, definitions %q", cfg.GetConfigPath(), cfg.DefinitionsPath)

	appConfig = cfg
	appCodec = binarycodec.NewCodec(defs)
	return nil
}
