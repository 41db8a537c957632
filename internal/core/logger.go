package core

import (
	"os"

	"github.com/charmbracelet/log"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "variant-audit",
	Level:  log.WarnLevel,
})

// Logger returns the package logger used for verbose diagnostics.
func Logger() *log.Logger {
	return logger
}

// SetVerbose raises the package logger to debug level when on.
func SetVerbose(on bool) {
	if on {
		logger.SetLevel(log.DebugLevel)
		return
	}
	logger.SetLevel(log.WarnLevel)
}
