// Package logging holds the process-wide zerolog logger. All packages obtain
// their logger from here so output formatting stays consistent across the CLI.
package logging

import (
	"os"

	"github.com/rs/zerolog"
)

var global zerolog.Logger

func init() {
	global = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05.000",
	}).With().
		Timestamp().
		Logger().
		Level(zerolog.InfoLevel)
}

// GetLogger returns the global logger.
func GetLogger() zerolog.Logger {
	return global
}

// SetVerbose lowers the global log level to debug.
func SetVerbose(v bool) {
	if v {
		global = global.Level(zerolog.DebugLevel)
	}
}
