package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/reaandrew/slitherreport/core"
	log "github.com/sirupsen/logrus"
)

const (
	ExitPassed          = 0
	ExitGateFailed      = 1
	ExitProcessingError = 2
)

// Version is overridden at build time with -ldflags "-X main.Version=...".
var Version = "dev"

// setupLogging returns the opened log file, or nil when logging to stderr.
// The caller closes it once the command has finished.
func setupLogging(level, logFile string) (*os.File, error) {
	logLevel, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level '%s': %w", level, err)
	}
	log.SetLevel(logLevel)

	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})

	log.SetOutput(os.Stderr)
	if logFile == "" {
		return nil, nil
	}
	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file '%s': %w", logFile, err)
	}
	log.SetOutput(file)
	return file, nil
}

// ExitCode separates a failed gate from errors that stopped the run.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitPassed
	case errors.Is(err, core.ErrGateFailed):
		return ExitGateFailed
	default:
		return ExitProcessingError
	}
}

func main() {
	cli := &Cli{}
	err := cli.Execute()
	if err != nil && !errors.Is(err, core.ErrGateFailed) {
		log.Errorf("Error executing command: %v", err)
	}
	os.Exit(ExitCode(err))
}
