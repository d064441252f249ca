// Package logging configures zerolog for alx. Human-readable output goes to
// stderr and a JSON copy of every event is appended to the log file under
// $XDG_STATE_HOME/alx.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogFileName is the name of the log file inside the alx state directory
const LogFileName = "alx.log"

// SetupLogger installs the global logger. verbosity is the -v count:
// 0 warn, 1 info, 2 debug, 3 or more trace. Debug and trace events also
// carry the caller.
func SetupLogger(verbosity int) {
	level := levelFor(verbosity)
	zerolog.SetGlobalLevel(level)

	console := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
		NoColor:    os.Getenv("NO_COLOR") != "",
	}

	path := getLogFilePath()
	file, fileErr := openLogFile(path)

	var out io.Writer = console
	if fileErr == nil {
		out = zerolog.MultiLevelWriter(console, file)
	}

	ctx := zerolog.New(out).With().Timestamp()
	if level <= zerolog.DebugLevel {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()

	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", path).Msg("Logging to console only")
	}
	log.Debug().Int("verbosity", verbosity).Str("logFile", path).Msg("Logger initialized")
}

func levelFor(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// GetLogger returns a logger tagged with component, e.g. "alias.store"
func GetLogger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// getLogFilePath resolves $XDG_STATE_HOME/alx/alx.log, falling back to
// ~/.local/state when the variable is unset
func getLogFilePath() string {
	state := os.Getenv("XDG_STATE_HOME")
	if state == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return LogFileName
		}
		state = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(state, "alx", LogFileName)
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}

// LogCommand records a CLI invocation
func LogCommand(cmd string, args []string) {
	log.Debug().Str("command", cmd).Strs("args", args).Msg("Command started")
}

// LogOperationStart logs the start of operation on logger and returns a
// func that logs its completion with the elapsed time
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().Str("operation", operation).Msg("Operation started")

	return func() {
		logger.Debug().Str("operation", operation).Dur("duration", time.Since(start)).Msg("Operation completed")
	}
}
