package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/decred/slog"

	"github.com/LeJamon/xrplcodec/internal/codec/binary-codec/definitions"
)

// backendLog is the logging backend used to create all subsystem loggers.
// Output goes to stderr so that stdout carries only command results.
var backendLog = slog.NewBackend(os.Stderr)

var (
	log     = backendLog.Logger("CDEC")
	defsLog = backendLog.Logger("DEFS")
)

// subsystemLoggers maps each subsystem identifier to its associated logger.
var subsystemLoggers = map[string]slog.Logger{
	"CDEC": log,
	"DEFS": defsLog,
}

func init() {
	definitions.UseLogger(defsLog)
}

// setLogLevels sets the logging level for all subsystem loggers.
func setLogLevels(logLevel string) error {
	level, ok := slog.LevelFromString(strings.ToLower(logLevel))
	if !ok {
		return fmt.Errorf("invalid log level %q", logLevel)
	}
	for _, logger := range subsystemLoggers {
		logger.SetLevel(level)
	}
	return nil
}
