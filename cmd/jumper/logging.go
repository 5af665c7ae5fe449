package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
)

// parseLogLevel maps a flag value to a log level; unknown values mean info.
func parseLogLevel(level string) log.Level {
	l, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return log.InfoLevel
	}
	return l
}

// setupLogging sends the default logger to the XDG state log file so the
// terminal UI is left alone. The caller closes the returned file.
func setupLogging(level string) (*os.File, error) {
	logPath, err := xdg.StateFile("carrot-jump/jumper.log")
	if err != nil {
		return nil, fmt.Errorf("could not get log path: %w", err)
	}

	f, err := os.OpenFile(logPath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("could not open log file: %w", err)
	}

	log.SetDefault(log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           parseLogLevel(level),
		Prefix:          "jumper",
	}))
	return f, nil
}

func setupStderrLogging(level string) error {
	log.SetDefault(log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           parseLogLevel(level),
	}))
	return nil
}
