// Package shared holds helpers common to the bukvoed commands.
package shared

import (
	"os"

	"github.com/charmbracelet/log"
)

// SetupLogger configures a console logger for interactive use. The
// debug flag wins over the configured level.
func SetupLogger(level string, debug bool) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	if debug {
		lvl = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level: lvl,
	})
}
